package seqbuffer

import "github.com/pkg/errors"

// Errors returned by a SequentialBuffer. They are always wrapped with
// context, use errors.Cause (or errors.Is) to match them.
var (
	// ErrInvalidConfiguration is returned for a bad capacity, a growth factor
	// that would never terminate, or an unknown encoding or byte order
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrOutOfRange is returned when a position is set beyond the limit
	ErrOutOfRange = errors.New("position is beyond buffer limit")

	// ErrReadBeyondLimit is returned when a read would cross the limit
	ErrReadBeyondLimit = errors.New("reading beyond buffer limit")

	// ErrCapacityExceeded is returned when a write does not fit and growth is disabled
	ErrCapacityExceeded = errors.New("not enough space available in buffer")
)
