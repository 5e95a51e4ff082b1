package board

import "github.com/brennanfield/sudoku-core/size"

// Kind identifies which of the three section shapes a Section represents.
type Kind int

const (
	// KindRow identifies a Row section.
	KindRow Kind = iota
	// KindCol identifies a Column section.
	KindCol
	// KindBlock identifies a Block section.
	KindBlock
)

// Section is a non-owning (board, kind, id) view over one row, column or
// block of a Board. It borrows the board and must not outlive it.
//
// Sections are deliberately a single type for both reading and mutation
// (see doc.go): the spec's source keeps separate const/mutable section
// hierarchies, which a single-threaded, non-concurrent engine has no job
// for — callers simply must not interleave a mutating pass over one
// Section with reads through another live view of the same board, the same
// discipline the teacher enforces with locks where goroutines are actually
// involved.
type Section[T any] struct {
	board *Board[T]
	kind  Kind
	id    int
}

// Kind returns which section shape this view represents.
func (s Section[T]) Kind() Kind { return s.kind }

// ID returns the section's index in [0, elem).
func (s Section[T]) ID() int { return s.id }

// Size returns the board's Size.
func (s Section[T]) Size() size.Size { return s.board.Size() }

// Len returns elem, the number of cells in any section.
func (s Section[T]) Len() int { return s.board.Size().Elem }

// Location returns the board-wide Location of the i-th cell of this
// section, i in [0, elem).
func (s Section[T]) Location(i int) size.Location {
	sz := s.board.Size()
	switch s.kind {
	case KindRow:
		loc, _ := size.NewLocationRC(sz, s.id, i)
		return loc
	case KindCol:
		loc, _ := size.NewLocationRC(sz, i, s.id)
		return loc
	default: // KindBlock
		bl, _ := size.NewBlockLocation(sz, s.id, i)
		loc, _ := bl.ToLocation()
		return loc
	}
}

// LocationChecked is the checked variant of Location: it validates i is in
// [0, elem) before constructing the Location.
func (s Section[T]) LocationChecked(i int) (size.Location, error) {
	if i < 0 || i >= s.Len() {
		return size.Location{}, ErrInvalidLocation
	}

	return s.Location(i), nil
}

// At returns the i-th cell's value.
func (s Section[T]) At(i int) T { return s.board.At(s.Location(i)) }

// AtChecked is the checked variant of At.
func (s Section[T]) AtChecked(i int) (T, error) {
	loc, err := s.LocationChecked(i)
	if err != nil {
		var zero T
		return zero, err
	}

	return s.board.At(loc), nil
}

// Set overwrites the i-th cell's value.
func (s Section[T]) Set(i int, v T) { s.board.Set(s.Location(i), v) }

// Front returns the section's first cell value.
func (s Section[T]) Front() T { return s.At(0) }

// Back returns the section's last cell value.
func (s Section[T]) Back() T { return s.At(s.Len() - 1) }

// Each calls fn for every cell of the section in ascending element order,
// passing the cell's Location and value.
func (s Section[T]) Each(fn func(loc size.Location, v T)) {
	for i := 0; i < s.Len(); i++ {
		loc := s.Location(i)
		fn(loc, s.board.At(loc))
	}
}

// EachReverse calls fn for every cell of the section in descending order.
func (s Section[T]) EachReverse(fn func(loc size.Location, v T)) {
	for i := s.Len() - 1; i >= 0; i-- {
		loc := s.Location(i)
		fn(loc, s.board.At(loc))
	}
}

// Values returns a freshly allocated snapshot of this section's cell values
// in ascending element order.
func (s Section[T]) Values() []T {
	out := make([]T, s.Len())
	for i := range out {
		out[i] = s.At(i)
	}

	return out
}

// Through returns the section of the given kind passing through pivot's
// element i, e.g. Through(row, i, KindCol) derives the column through the
// i-th cell of a row.
func Through[T any](pivot Section[T], i int, kind Kind) Section[T] {
	loc := pivot.Location(i)
	switch kind {
	case KindRow:
		return pivot.board.Row(loc.Row())
	case KindCol:
		return pivot.board.Col(loc.Col())
	default:
		return pivot.board.Block(loc.Block())
	}
}

// IsSameSection reports whether loc lies within section s.
func IsSameSection[T any](s Section[T], loc size.Location) bool {
	switch s.kind {
	case KindRow:
		return loc.Row() == s.id
	case KindCol:
		return loc.Col() == s.id
	default:
		return loc.Block() == s.id
	}
}

// IsSameSectionRange reports whether every Location in locs lies within s.
func IsSameSectionRange[T any](s Section[T], locs []size.Location) bool {
	for _, l := range locs {
		if !IsSameSection(s, l) {
			return false
		}
	}

	return true
}

// IntersectBlock reports whether the row or column section s passes through
// the block containing blockLoc.
func IntersectBlock[T any](s Section[T], blockLoc size.Location) bool {
	base := s.Size().Base
	switch s.kind {
	case KindRow:
		return s.id/base == blockLoc.Row()/base
	case KindCol:
		return s.id/base == blockLoc.Col()/base
	default:
		return false
	}
}
