package propagate

import (
	"github.com/brennanfield/sudoku-core/board"
	"github.com/brennanfield/sudoku-core/option"
	"github.com/brennanfield/sudoku-core/size"
)

// RemoveOption clears value from the cell at loc. If that leaves exactly
// one live candidate, the value is committed via SingleOption and the
// elimination cascades to loc's row, column and block.
//
// Returns the number of cells whose candidate count strictly decreased,
// including cascaded work. Returns ErrInvalidBoard if the removal would
// leave the cell with zero candidates.
func RemoveOption(b *board.Board[option.Options], loc size.Location, value int) (int, error) {
	cell := b.At(loc)
	if !cell.Test(value) {
		return 0, nil
	}

	updated := cell.Remove(value)
	b.Set(loc, updated)
	changes := 1

	if updated.CountAll() == 0 {
		return changes, ErrInvalidBoard
	}
	if updated.CountAll() == 1 && !updated.IsAnswer() {
		n, err := SingleOption(b, loc)
		changes += n
		if err != nil {
			return changes, err
		}
	}

	return changes, nil
}

// RemoveOptionMask clears every candidate bit set in mask from the cell at
// loc. mask must be answered-shaped (its unsolved flag clear); RemoveOption
// is the single-value equivalent. Cascades exactly like RemoveOption when
// the cell is reduced to one live candidate.
func RemoveOptionMask(b *board.Board[option.Options], loc size.Location, mask option.Options) (int, error) {
	cell := b.At(loc)
	before := cell.CountAll()

	updated := cell.Sub(mask)
	b.Set(loc, updated)
	changes := before - updated.CountAll()

	if changes == 0 {
		return 0, nil
	}
	if updated.CountAll() == 0 {
		return changes, ErrInvalidBoard
	}
	if updated.CountAll() == 1 && !updated.IsAnswer() {
		n, err := SingleOption(b, loc)
		changes += n
		if err != nil {
			return changes, err
		}
	}

	return changes, nil
}

// RemoveOptionSection clears value from every cell of section except
// ignoreLoc, which must already hold value as its committed answer.
func RemoveOptionSection(
	b *board.Board[option.Options], section board.Section[option.Options], ignoreLoc size.Location, value int,
) (int, error) {
	changes := 0
	for i := 0; i < section.Len(); i++ {
		loc := section.Location(i)
		if loc.Equal(ignoreLoc) {
			continue
		}
		n, err := RemoveOption(b, loc, value)
		changes += n
		if err != nil {
			return changes, err
		}
	}

	return changes, nil
}

// RemoveOptionSectionMany clears value from every cell of section not
// listed in ignoreLocs. ignoreLocs is expected to share section with at
// least one of its members (the naked-subset callers guarantee this).
func RemoveOptionSectionMany(
	b *board.Board[option.Options], section board.Section[option.Options], ignoreLocs []size.Location, value int,
) (int, error) {
	changes := 0
	for i := 0; i < section.Len(); i++ {
		loc := section.Location(i)
		if containsLocation(ignoreLocs, loc) {
			continue
		}
		n, err := RemoveOption(b, loc, value)
		changes += n
		if err != nil {
			return changes, err
		}
	}

	return changes, nil
}

// RemoveOptionSectionValues clears every value in values from every cell of
// section not listed in ignoreLocs, cascading per value.
func RemoveOptionSectionValues(
	b *board.Board[option.Options], section board.Section[option.Options], ignoreLocs []size.Location, values []int,
) (int, error) {
	changes := 0
	for _, value := range values {
		n, err := RemoveOptionSectionMany(b, section, ignoreLocs, value)
		changes += n
		if err != nil {
			return changes, err
		}
	}

	return changes, nil
}

// RemoveOptionOutsideBlock clears value from every cell of the row or
// column section that does not lie in the same block as blockLoc. section
// must intersect that block.
func RemoveOptionOutsideBlock(
	b *board.Board[option.Options], section board.Section[option.Options], blockLoc size.Location, value int,
) (int, error) {
	changes := 0
	for i := 0; i < section.Len(); i++ {
		loc := section.Location(i)
		if loc.Block() == blockLoc.Block() {
			continue
		}
		n, err := RemoveOption(b, loc, value)
		changes += n
		if err != nil {
			return changes, err
		}
	}

	return changes, nil
}

func containsLocation(locs []size.Location, loc size.Location) bool {
	for _, l := range locs {
		if l.Equal(loc) {
			return true
		}
	}

	return false
}
