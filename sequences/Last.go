package sequences

import (
	"github.com/adamluzsi/streams"
)

// Last consumes the sequence to completion and returns the last value it produced.
// The returned bool reports whether the sequence had at least one value.
func Last[T any](s streams.Sequence[T]) (value T, found bool, rErr error) {
	defer func() {
		cErr := s.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()
	for s.Next() {
		value = s.Value()
		found = true
	}
	if err := s.Err(); err != nil {
		return value, false, err
	}
	return value, found, nil
}
