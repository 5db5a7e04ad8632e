package sequences

import (
	"github.com/adamluzsi/streams"
)

// Map allows you to do additional transformation on the values.
// This is useful in cases, where you have to alter the input value,
// or change the type all together.
// Like when you read lines from an input stream,
// and then you map the line content to a certain data structure,
// in order to not expose what steps needed in order to unserialize the input stream,
// thus protect the business rules from this information.
func Map[T, U any,
	BLK func(T) U |
		func(T) (U, error),
](s streams.Sequence[T], transform BLK) *MapSeq[T, U] {
	var do func(T) (U, error)
	switch transform := any(transform).(type) {
	case func(T) U:
		do = func(v T) (U, error) {
			return transform(v), nil
		}
	case func(T) (U, error):
		do = transform
	}
	return &MapSeq[T, U]{src: s, transform: do}
}

type MapSeq[T, U any] struct {
	src       streams.Sequence[T]
	transform func(T) (U, error)

	value U
	err   error
}

func (i *MapSeq[T, U]) Close() error {
	return i.src.Close()
}

func (i *MapSeq[T, U]) Err() error {
	if i.err != nil {
		return i.err
	}
	return i.src.Err()
}

func (i *MapSeq[T, U]) Next() bool {
	if i.err != nil {
		return false
	}
	if !i.src.Next() {
		return false
	}
	v, err := i.transform(i.src.Value())
	if err != nil {
		i.err = err
		return false
	}
	i.value = v
	return true
}

func (i *MapSeq[T, U]) Value() U {
	return i.value
}
