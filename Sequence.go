package streams

import (
	"io"
)

// Sequence define a separate object that encapsulates accessing and traversing an aggregate object.
// Clients use a sequence to access and traverse a stream of values without knowing its representation (data structures).
// Interface design inspirited by https://golang.org/pkg/encoding/json/#Decoder
// https://en.wikipedia.org/wiki/Iterator_pattern
//
// A Sequence has exactly one active consumer at a time, and yields its values in a single strict order.
// A Sequence is not required to be restartable; once it reported completion or it was closed, it stays exhausted.
type Sequence[V any] interface {
	// Closer is required to make it able to cancel sequences where resources are being used behind the scene.
	// For all other cases where the underling io is handled on a higher level, it should simply return nil.
	// After Close, an in-flight value production must be abandoned cleanly, without any further delivery.
	io.Closer
	// Err return the error cause.
	Err() error
	// Next will ensure that Value returns the next item when executed.
	// If the next value is not retrievable, Next should return false and ensure Err() will return the error cause.
	// Next may suspend the calling goroutine until the next value or the completion becomes known,
	// but it must not report completion before that, and completion is terminal.
	Next() bool
	// Value returns the current value in the sequence.
	// The action should be repeatable without side effects.
	Value() V
}
