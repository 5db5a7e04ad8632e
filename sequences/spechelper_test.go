package sequences_test

import (
	"errors"
	"io"
	"sync"
)

type Entity struct {
	Text string
}

type ReadCloser struct {
	IsClosed bool
	io       io.Reader
}

func NewReadCloser(r io.Reader) *ReadCloser {
	return &ReadCloser{io: r, IsClosed: false}
}

func (rc *ReadCloser) Read(p []byte) (n int, err error) {
	return rc.io.Read(p)
}

func (rc *ReadCloser) Close() error {
	if rc.IsClosed {
		return errors.New("already closed")
	}

	rc.IsClosed = true
	return nil
}

type BrokenReader struct{}

func (b *BrokenReader) Read(p []byte) (n int, err error) { return 0, io.ErrUnexpectedEOF }

// SingleUseSeq yields a single value and then reports completion, at most once.
type SingleUseSeq[T any] struct {
	V      T
	once   sync.Once
	closed bool
}

func (s *SingleUseSeq[T]) Close() error {
	s.closed = true
	return nil
}

func (s *SingleUseSeq[T]) Next() bool {
	var has bool
	s.once.Do(func() { has = true })
	return has
}

func (s *SingleUseSeq[T]) Err() error {
	return nil
}

func (s *SingleUseSeq[T]) Value() T {
	return s.V
}
