package sequences

import (
	"github.com/adamluzsi/streams"
)

// First returns the first value of the sequence and closes the sequence.
// The returned bool reports whether the sequence had at least one value.
func First[T any](s streams.Sequence[T]) (value T, found bool, rErr error) {
	defer func() {
		cErr := s.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()
	if !s.Next() {
		return value, false, s.Err()
	}
	value = s.Value()
	if err := s.Err(); err != nil {
		return value, false, err
	}
	return value, true, nil
}
