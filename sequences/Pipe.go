package sequences

// Pipe return a sender and a receiver.
// The receiver side implements the sequence interface while values can still being produced, used for streaming.
// The receiver's Next suspends the consumer goroutine until the sender made the next value or the completion known.
// Closing the receiver abandons the stream: the sender is notified and no further value delivery takes place.
func Pipe[T any]() (*PipeIn[T], *PipeOut[T]) {
	pipeChan := makePipeChan[T]()
	return &PipeIn[T]{pipeChan: pipeChan},
		&PipeOut[T]{pipeChan: pipeChan}
}

func makePipeChan[T any]() pipeChan[T] {
	return pipeChan[T]{
		values: make(chan T),
		done:   make(chan struct{}, 1),
		err:    make(chan error, 1),
	}
}

type pipeChan[T any] struct {
	values chan T
	done   chan struct{}
	err    chan error
}

// PipeOut implements the sequence interface while it's still being able to receive values, used for streaming
type PipeOut[T any] struct {
	pipeChan[T]
	value   T
	lastErr error
	closed  bool
}

// Close sends a signal back that no more value should be sent because the receiver stopped listening
func (i *PipeOut[T]) Close() error {
	i.closed = true
	defer func() { recover() }()
	i.done <- struct{}{}
	close(i.done)
	return nil
}

// Next set the current value to the next value.
// It suspends the calling goroutine until the sender produced a value or reported completion,
// and returns false once no more value can be expected.
func (i *PipeOut[T]) Next() bool {
	if i.closed {
		return false
	}

	v, ok := <-i.pipeChan.values
	if !ok {
		return false
	}

	i.value = v
	return true
}

// Err returns an error object that the pipe sender wanted to present for the pipe receiver
func (i *PipeOut[T]) Err() error {
	select {
	case err, ok := <-i.pipeChan.err:
		if ok {
			i.lastErr = err
		}
	default:
	}

	return i.lastErr
}

// Value returns the current value in the sequence
func (i *PipeOut[T]) Value() T {
	return i.value
}

// PipeIn provides access to feed a pipe receiver with values
type PipeIn[T any] struct {
	pipeChan[T]
}

// Value sends a value to the PipeOut.Value.
// It suspends the calling goroutine until the receiver consumed it or abandoned the stream,
// and reports whether sending was possible.
func (f *PipeIn[T]) Value(v T) (ok bool) {
	select {
	case f.pipeChan.values <- v:
		return true
	case <-f.pipeChan.done:
		return false
	}
}

// Error send an error object to the PipeOut side, so it will be accessible with sequence.Err()
func (f *PipeIn[T]) Error(err error) {
	if err == nil {
		return
	}

	defer func() { recover() }()
	f.pipeChan.err <- err
}

// Close will close the feed and err channels, which eventually notify the receiver that no more value is expected
func (f *PipeIn[T]) Close() error {
	defer func() { recover() }()
	close(f.pipeChan.values)
	close(f.pipeChan.err)
	return nil
}
