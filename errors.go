package sudoku

import (
	"github.com/brennanfield/sudoku-core/board"
	"github.com/brennanfield/sudoku-core/option"
	"github.com/brennanfield/sudoku-core/propagate"
)

// Boundary-compatibility aliases (§6/§7): one import path can errors.Is
// against any of these regardless of which internal package raised it.
var (
	// DomainError indicates an input value outside 0..elem, or an input
	// sequence whose length is not base⁴.
	DomainError = propagate.ErrDomain

	// InvalidLocation indicates access with out-of-range coordinates.
	InvalidLocation = board.ErrInvalidLocation

	// InvalidOption indicates construction of an option value outside
	// 1..elem.
	InvalidOption = option.ErrInvalidOption

	// InvalidBoard is raised and consumed internally by the search driver
	// on contradictions; it surfaces to callers only when the top-level
	// input itself is inconsistent.
	InvalidBoard = propagate.ErrInvalidBoard
)
