package sequences

import (
	"bufio"
	"io"
)

func Scanner[T string | []byte](rc io.Reader) *ScannerSeq[T] {
	return &ScannerSeq[T]{
		Scanner: bufio.NewScanner(rc),
		Reader:  rc,
	}
}

type ScannerSeq[T string | []byte] struct {
	*bufio.Scanner
	Reader io.Reader

	value T
}

func (i *ScannerSeq[T]) Next() bool {
	if i.Scanner.Err() != nil {
		return false
	}
	if !i.Scanner.Scan() {
		return false
	}
	var v T
	var iface interface{} = v
	switch iface.(type) {
	case string:
		i.value = T(i.Scanner.Text())
	case []byte:
		i.value = T(i.Scanner.Bytes())
	}
	return true
}

func (i *ScannerSeq[T]) Err() error {
	return i.Scanner.Err()
}

func (i *ScannerSeq[T]) Close() error {
	rc, ok := i.Reader.(io.ReadCloser)
	if !ok {
		return nil
	}

	return rc.Close()
}

func (i *ScannerSeq[T]) Value() T {
	return i.value
}
