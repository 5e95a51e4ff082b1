// Package sudoku is a thin facade over size, option, board, propagate,
// rules, and search: it accepts and returns the dense cell-value sequences
// described by the boundary contract and hides the Options-board machinery
// those subpackages implement.
//
// Most callers need only Solve. The subpackages remain independently usable
// for anyone building a different front end (a different input encoding, a
// step-by-step UI, a custom search policy).
package sudoku
