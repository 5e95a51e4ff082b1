// Package option implements the per-cell candidate set used by the
// constraint-propagation engine: a fixed-width bitmask over 1..E plus an
// "unsolved" flag occupying bit 0.
//
// Bit v (1 <= v <= E) is set iff value v is still a candidate. Bit 0 is
// clear once the cell has been committed to its sole remaining value.
// A cell is solved iff bit 0 is clear and exactly one candidate bit is set;
// it is empty/invalid iff no bit at all is set, which never happens in a
// valid resting state and is reserved for transient contradiction checks.
//
// All operations are O(1) with respect to E: the mask fits a single uint32,
// which supports any base order whose element size (base²) is at most 31 —
// far beyond base = 3, the canonical 9x9 board.
package option
