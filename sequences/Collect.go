package sequences

import (
	"github.com/adamluzsi/streams"
)

// Collect consumes the sequence to completion and gathers the produced values into a slice.
// As a rule of thumb, if the consumer is not the final destination of the data stream,
// it should not collect, but keep working with the sequence to avoid bottlenecks with local resources such as memory.
func Collect[T any](s streams.Sequence[T]) (vs []T, rErr error) {
	defer func() {
		cErr := s.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()
	for s.Next() {
		vs = append(vs, s.Value())
	}
	return vs, s.Err()
}
