package sequences

import (
	"sync"

	"github.com/adamluzsi/streams"
)

// WithConcurrentAccess allows you to convert any sequence into one that is safe to use from concurrent access.
// The caveat with this, that this protection only allows 1 Value call for each Next call.
func WithConcurrentAccess[T any](s streams.Sequence[T]) *ConcurrentAccessSeq[T] {
	return &ConcurrentAccessSeq[T]{Sequence: s}
}

type ConcurrentAccessSeq[T any] struct {
	streams.Sequence[T]
	mutex sync.Mutex
}

func (i *ConcurrentAccessSeq[T]) Next() bool {
	i.mutex.Lock()
	return i.Sequence.Next()
}

func (i *ConcurrentAccessSeq[T]) Value() T {
	defer i.mutex.Unlock()
	return i.Sequence.Value()
}
