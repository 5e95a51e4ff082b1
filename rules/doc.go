// Package rules implements the board-level propagation strategies: naked
// pairs and k-subsets, hidden singles, and section-exclusive (locked
// candidate) elimination. Each rule reads and mutates an option.Options
// board through the propagate package and returns the number of
// eliminations it performed; a rule that finds nothing to do returns 0,
// never an error, unless propagation itself surfaces a contradiction.
//
// ChooseSolver composes UniqueInSection over every row, column and block to
// a fixed point: the cheap, always-safe pass the search driver runs before
// resorting to branching.
package rules
