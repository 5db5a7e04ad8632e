package sequences

import (
	"github.com/adamluzsi/streams/consterr"
)

const (
	// ErrClosed is the value that will be returned if a sequence has been closed but consuming it is still attempted.
	ErrClosed consterr.Error = "Closed"
)
