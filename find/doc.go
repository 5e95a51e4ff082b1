// Package find provides pure, read-only scans over option boards: locating
// cells by candidate shape, and the appearance-counting primitives
// (appearance_once, appearance_sets) that the hidden-single and
// locked-candidate rules build on.
//
// Every function here reads a board.Section[option.Options] or, for the
// *Board variants, a whole board.Board[option.Options], and allocates only
// for its returned slice; none mutate the board.
package find
