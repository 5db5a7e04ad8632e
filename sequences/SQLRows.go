package sequences

import (
	"io"
)

func SQLRows[T any](rows SQLRowsSource, mapper SQLRowMapper[T]) *SQLRowsSeq[T] {
	return &SQLRowsSeq[T]{Rows: rows, Mapper: mapper}
}

// SQLRowsSeq allow you to use the same sequence pattern with the sql.Rows structure.
// It allows you to do dynamic filtering, pipeline/middleware pattern on your sql results
// by using this wrapping around it.
// It also makes testing easier with the same sequence interface.
type SQLRowsSeq[T any] struct {
	Rows   SQLRowsSource
	Mapper SQLRowMapper[T]

	value T
	err   error
}

func (i *SQLRowsSeq[T]) Close() error {
	return i.Rows.Close()
}

func (i *SQLRowsSeq[T]) Next() bool {
	if i.err != nil {
		return false
	}
	if !i.Rows.Next() {
		return false
	}
	v, err := i.Mapper.Map(i.Rows)
	if err != nil {
		i.err = err
		return false
	}
	i.value = v
	return true
}

func (i *SQLRowsSeq[T]) Err() error {
	if i.err != nil {
		return i.err
	}
	return i.Rows.Err()
}

func (i *SQLRowsSeq[T]) Value() T {
	return i.value
}

// sql rows sequence dependencies

type SQLRowScanner interface {
	Scan(...interface{}) error
}

type SQLRowMapper[T any] interface {
	Map(s SQLRowScanner) (T, error)
}

type SQLRowMapperFunc[T any] func(SQLRowScanner) (T, error)

func (fn SQLRowMapperFunc[T]) Map(s SQLRowScanner) (T, error) { return fn(s) }

type SQLRowsSource interface {
	io.Closer
	Next() bool
	Err() error
	Scan(dest ...interface{}) error
}
