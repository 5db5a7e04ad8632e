package sequences

import (
	"github.com/adamluzsi/streams"
)

// Fold consumes the sequence to completion, and reduces its values into a single accumulator value.
// The accumulator is threaded linearly through the caller supplied combine block:
// it starts out as the initial value, and it is replaced with the block's result after each consumed value.
// The combine block is invoked exactly once per produced value, strictly in production order.
// Fold has no failure mode of its own; it only surfaces the error cause of the sequence,
// or the error the combine block reported.
// The sequence is closed by the time Fold returns.
func Fold[
	T, Result any,
	BLK func(Result, T) Result |
		func(Result, T) (Result, error),
](s streams.Sequence[T], initial Result, blk BLK) (rv Result, rErr error) {
	var do func(Result, T) (Result, error)
	switch blk := any(blk).(type) {
	case func(Result, T) Result:
		do = func(result Result, t T) (Result, error) {
			return blk(result, t), nil
		}
	case func(Result, T) (Result, error):
		do = blk
	}
	defer func() {
		cErr := s.Close()
		if rErr != nil {
			return
		}
		rErr = cErr
	}()
	var v = initial
	for s.Next() {
		var err error
		v, err = do(v, s.Value())
		if err != nil {
			return v, err
		}
	}
	return v, s.Err()
}
