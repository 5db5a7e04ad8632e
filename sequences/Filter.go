package sequences

import (
	"github.com/adamluzsi/streams"
)

func Filter[T any](s streams.Sequence[T], match func(T) bool) *FilterSeq[T] {
	return &FilterSeq[T]{src: s, match: match}
}

type FilterSeq[T any] struct {
	src   streams.Sequence[T]
	match func(T) bool

	value T
}

func (i *FilterSeq[T]) Close() error {
	return i.src.Close()
}

func (i *FilterSeq[T]) Err() error {
	return i.src.Err()
}

func (i *FilterSeq[T]) Next() bool {
	for i.src.Next() {
		v := i.src.Value()
		if i.match(v) {
			i.value = v
			return true
		}
	}
	return false
}

func (i *FilterSeq[T]) Value() T {
	return i.value
}
