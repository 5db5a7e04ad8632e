package sequences

import (
	"github.com/adamluzsi/streams"
	"github.com/adamluzsi/streams/consterr"
)

// Break can be returned from the ForEach block to stop the iteration early without reporting an error.
const Break consterr.Error = `sequences:break`

func ForEach[T any](s streams.Sequence[T], fn func(T) error) (rErr error) {
	defer func() {
		cErr := s.Close()
		if rErr == nil {
			rErr = cErr
		}
	}()
	for s.Next() {
		v := s.Value()
		err := fn(v)
		if err == Break {
			break
		}
		if err != nil {
			return err
		}
	}
	return s.Err()
}
