package sequences

import (
	"sync"

	"github.com/adamluzsi/streams"
)

// Merge will join multiple sequences into a single one.
// Values are surfaced as their source sequence produces them;
// the order between values of the same source is kept,
// while the interleaving between sources is not specified.
// Closing the merged sequence abandons all source sequences.
func Merge[T any](seqs ...streams.Sequence[T]) streams.Sequence[T] {
	in, out := Pipe[T]()

	var wg sync.WaitGroup
	var onError sync.Once
	for _, seq := range seqs {
		wg.Add(1)
		go func(src streams.Sequence[T]) {
			defer wg.Done()
			defer src.Close()
			for src.Next() {
				if !in.Value(src.Value()) {
					return
				}
			}
			if err := src.Err(); err != nil {
				onError.Do(func() { in.Error(err) })
			}
		}(seq)
	}

	go func() {
		wg.Wait()
		in.Close()
	}()

	return out
}
