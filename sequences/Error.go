package sequences

// Error returns a sequence which only can do is returning an Err and never have a next element
func Error[T any](err error) *ErrorSeq[T] {
	return &ErrorSeq[T]{err}
}

// ErrorSeq can be used for returning an error wrapped with the sequence interface.
// This can be used when an external resource encounter an unexpected non recoverable error during query execution.
type ErrorSeq[T any] struct {
	err error
}

func (i *ErrorSeq[T]) Close() error {
	return nil
}

func (i *ErrorSeq[T]) Next() bool {
	return false
}

func (i *ErrorSeq[T]) Err() error {
	return i.err
}

func (i *ErrorSeq[T]) Value() T {
	var v T
	return v
}
