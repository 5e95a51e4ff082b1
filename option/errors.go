package option

import "errors"

// ErrInvalidOption indicates construction of an option value outside 1..E.
var ErrInvalidOption = errors.New("option: value outside 1..elem")
