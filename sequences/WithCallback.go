package sequences

import (
	"io"

	"github.com/adamluzsi/streams"
)

func WithCallback[T any](s streams.Sequence[T], c Callback) streams.Sequence[T] {
	return &CallbackSeq[T]{Sequence: s, Callback: c}
}

type Callback struct {
	OnClose func(io.Closer) error
}

type CallbackSeq[T any] struct {
	streams.Sequence[T]
	Callback
}

func (i *CallbackSeq[T]) Close() error {
	if i.Callback.OnClose != nil {
		return i.Callback.OnClose(i.Sequence)
	}
	return i.Sequence.Close()
}
