// Package search implements the branch-and-bound driver: a LIFO work queue
// of candidate boards, seeded from external input, narrowed to a fixed
// point by rules.ChooseSolver between guesses, and forked on the
// most-constrained unanswered cell when propagation alone cannot finish.
//
// The driver is total: it never raises for an internal contradiction, only
// prunes the offending branch and continues, mirroring the teacher's
// tsp.bbEngine bounded-search shape.
package search
