package sequences

import (
	"sync"

	"github.com/adamluzsi/streams"
)

// Deferred delays the construction of a sequence until the first time it is actually used.
// This allows expressing sequences where even the setup work has to remain lazy,
// such as opening a query against an external resource.
func Deferred[T any](init func() streams.Sequence[T]) *DeferredSeq[T] {
	return &DeferredSeq[T]{Init: init}
}

type DeferredSeq[T any] struct {
	Init func() streams.Sequence[T]

	once sync.Once
	seq  streams.Sequence[T]
}

func (i *DeferredSeq[T]) source() streams.Sequence[T] {
	i.once.Do(func() { i.seq = i.Init() })
	return i.seq
}

func (i *DeferredSeq[T]) Close() error {
	return i.source().Close()
}

func (i *DeferredSeq[T]) Err() error {
	return i.source().Err()
}

func (i *DeferredSeq[T]) Next() bool {
	return i.source().Next()
}

func (i *DeferredSeq[T]) Value() T {
	return i.source().Value()
}
