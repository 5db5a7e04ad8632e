package sequences_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/adamluzsi/streams/sequences"
)

func TestLast_ValuesGiven_LastValueReturned(t *testing.T) {
	t.Parallel()

	expected := Entity{Text: "The Phoenix Project"}

	v, found, err := sequences.Last[Entity](sequences.Slice([]Entity{
		{Text: "hitchhiker's guide to the galaxy"},
		{Text: "The Art of Agile Development"},
		expected,
	}))
	require.Nil(t, err)
	require.True(t, found)
	require.Equal(t, expected, v)
}

func TestLast_EmptySequence_NotFoundReported(t *testing.T) {
	t.Parallel()

	_, found, err := sequences.Last[Entity](sequences.Empty[Entity]())
	require.Nil(t, err)
	require.False(t, found)
}

func TestLast_SequenceHasError_ErrorReturned(t *testing.T) {
	t.Parallel()

	expected := errors.New("Boom!")

	_, found, err := sequences.Last[Entity](sequences.Error[Entity](expected))
	require.Equal(t, expected, err)
	require.False(t, found)
}

func TestLast_SequenceClosedAfterConsumption(t *testing.T) {
	t.Parallel()

	var closed bool
	m := sequences.Stub[Entity](sequences.Slice([]Entity{{Text: "yolo"}}))
	m.StubClose = func() error {
		closed = true
		return nil
	}

	_, _, err := sequences.Last[Entity](m)
	require.Nil(t, err)
	require.True(t, closed)
}
