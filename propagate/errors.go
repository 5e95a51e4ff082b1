package propagate

import "errors"

// ErrInvalidBoard indicates a primitive would clear (or has found) a cell
// with zero remaining candidates: a contradiction in the board state.
var ErrInvalidBoard = errors.New("propagate: invalid board, no remaining candidates")

// ErrDomain indicates an externally supplied value lies outside 0..elem.
var ErrDomain = errors.New("propagate: value outside 0..elem")
