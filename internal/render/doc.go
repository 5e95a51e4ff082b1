// Package render prints a dense cell-value sequence as an ASCII grid with
// block separators, generalizing thriqon-sudoku's fixed 9x9 String() method
// to an arbitrary base N.
package render
