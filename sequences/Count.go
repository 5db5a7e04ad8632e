package sequences

import (
	"github.com/adamluzsi/streams"
)

// Count will iterate over and count the total iterations number
//
// Good when all you want is counting all the elements in a sequence but don't want to do anything else.
func Count[T any](s streams.Sequence[T]) (total int, rErr error) {
	defer func() {
		cErr := s.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()
	for s.Next() {
		total++
	}
	return total, s.Err()
}
