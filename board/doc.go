// Package board provides the dense N⁴-cell board container and the Row,
// Column and Block section views over it.
//
// Board[T] owns a flat slice of exactly sz.Full cells of type T, indexed by
// size.Location, (row, col), or flat element index. A Section is a
// non-owning (board, kind, id) view: element e of a Row maps to
// Location(id, e); of a Column to Location(e, id); of a Block to
// BlockLocation(id, e). Sections borrow the board and must not outlive it.
//
// The solver is single-threaded (see spec §5); Board and Section carry no
// locking of their own. Callers are responsible for not aliasing a mutating
// Section against concurrent reads through another view, the same
// discipline the teacher library enforces with RWMutex for genuine
// cross-goroutine safety — here there are no goroutines to guard against.
package board
