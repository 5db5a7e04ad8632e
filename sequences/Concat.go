package sequences

import (
	"github.com/adamluzsi/streams"
)

// Concat chains sequences together, one after the other.
// The resulting sequence is exhausted when the last source sequence reports completion,
// or at the first source that reports an error cause.
func Concat[T any](seqs ...streams.Sequence[T]) *ConcatSeq[T] {
	return &ConcatSeq[T]{seqs: seqs}
}

type ConcatSeq[T any] struct {
	seqs []streams.Sequence[T]

	index  int
	closed bool
	err    error
	value  T
}

func (i *ConcatSeq[T]) Close() error {
	if i.closed {
		return nil
	}
	i.closed = true
	var cErr error
	for _, s := range i.seqs[i.index:] {
		if err := s.Close(); err != nil && cErr == nil {
			cErr = err
		}
	}
	return cErr
}

func (i *ConcatSeq[T]) Err() error {
	return i.err
}

func (i *ConcatSeq[T]) Next() bool {
	if i.closed || i.err != nil {
		return false
	}
	for i.index < len(i.seqs) {
		src := i.seqs[i.index]
		if src.Next() {
			i.value = src.Value()
			return true
		}
		if err := src.Err(); err != nil {
			i.err = err
			return false
		}
		if err := src.Close(); err != nil {
			i.err = err
			return false
		}
		i.index++
	}
	return false
}

func (i *ConcatSeq[T]) Value() T {
	return i.value
}
