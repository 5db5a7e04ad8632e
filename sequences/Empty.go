package sequences

// Empty sequence is used to represent nil result with Null object pattern
func Empty[T any]() *EmptySeq[T] {
	return &EmptySeq[T]{}
}

// EmptySeq can help achieve Null Object Pattern when no value is logically expected and a sequence should be returned
type EmptySeq[T any] struct{}

func (i *EmptySeq[T]) Close() error {
	return nil
}

func (i *EmptySeq[T]) Next() bool {
	return false
}

func (i *EmptySeq[T]) Err() error {
	return nil
}

func (i *EmptySeq[T]) Value() T {
	var v T
	return v
}
