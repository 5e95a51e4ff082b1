package board

import "errors"

// ErrInvalidLocation is returned by checked accessors on out-of-range
// coordinates.
var ErrInvalidLocation = errors.New("board: location out of range")
