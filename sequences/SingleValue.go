package sequences

// SingleValue creates a sequence that can return one single value and will ensure that Next can only be called once.
func SingleValue[T any](v T) *SingleValueSeq[T] {
	return &SingleValueSeq[T]{V: v}
}

type SingleValueSeq[T any] struct {
	V T

	index  int
	closed bool
}

func (i *SingleValueSeq[T]) Close() error {
	i.closed = true
	return nil
}

func (i *SingleValueSeq[T]) Next() bool {
	if i.closed {
		return false
	}

	if i.index == 0 {
		i.index++
		return true
	}
	return false
}

func (i *SingleValueSeq[T]) Err() error {
	return nil
}

func (i *SingleValueSeq[T]) Value() T {
	return i.V
}
