package sequences

func Slice[T any](slice []T) *SliceSeq[T] {
	return &SliceSeq[T]{Slice: slice}
}

type SliceSeq[T any] struct {
	Slice []T

	closed bool
	index  int
	value  T
}

func (i *SliceSeq[T]) Close() error {
	i.closed = true
	return nil
}

func (i *SliceSeq[T]) Err() error {
	return nil
}

func (i *SliceSeq[T]) Next() bool {
	if i.closed {
		return false
	}

	if len(i.Slice) <= i.index {
		return false
	}

	i.value = i.Slice[i.index]
	i.index++
	return true
}

func (i *SliceSeq[T]) Value() T {
	return i.value
}
