// Package size defines the compile/load-time board dimensions and the
// immutable cell coordinate used throughout the solver.
//
// A Size fixes a base order N, from which the element (side length) and
// full (cell count) sizes are derived: elem = base², full = elem² = base⁴.
// A Location is an element index paired with the Size it was built from;
// every row/column/block coordinate is a total, constant-time derivation
// from that single index.
//
// The package declares Size, Location, BlockLocation, their sentinel errors,
// and the NewSize/NewLocation family of constructors.
package size
