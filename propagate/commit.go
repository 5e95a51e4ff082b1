package propagate

import (
	"github.com/brennanfield/sudoku-core/board"
	"github.com/brennanfield/sudoku-core/option"
	"github.com/brennanfield/sudoku-core/size"
)

// SetValue commits the cell at loc to value, replacing its mask with
// option.FromValue(value). value must currently be a candidate of the
// cell; SetValue does not propagate to peers. Returns the number of
// candidate bits eliminated by the commit (count_all - 1), or 0 with no
// change if the cell is already committed to value (idempotent).
//
// Returns ErrInvalidBoard if value is not currently a candidate.
func SetValue(b *board.Board[option.Options], loc size.Location, value int) (int, error) {
	cell := b.At(loc)
	if !cell.Test(value) {
		return 0, ErrInvalidBoard
	}
	if cell.IsAnswer() {
		return 0, nil
	}

	eliminated := cell.CountAll() - 1
	b.Set(loc, cell.Set(value))

	return eliminated, nil
}

// SingleOption commits loc's sole remaining candidate (if it has exactly
// one) and removes that value from every peer in loc's row, column and
// block. It is a no-op returning 0 if loc has zero or more than one live
// candidate.
func SingleOption(b *board.Board[option.Options], loc size.Location) (int, error) {
	answer := b.At(loc).GetAnswer()
	if answer == 0 {
		return 0, nil
	}

	return SingleOptionValue(b, loc, answer)
}

// SingleOptionValue commits loc to value (which must currently be a
// candidate of the cell, not necessarily its only one) and removes value
// from every peer in loc's row, column and block.
func SingleOptionValue(b *board.Board[option.Options], loc size.Location, value int) (int, error) {
	changes, err := SetValue(b, loc, value)
	if err != nil {
		return changes, err
	}

	n, err := RemoveOptionSection(b, b.Row(loc.Row()), loc, value)
	changes += n
	if err != nil {
		return changes, err
	}
	n, err = RemoveOptionSection(b, b.Col(loc.Col()), loc, value)
	changes += n
	if err != nil {
		return changes, err
	}
	n, err = RemoveOptionSection(b, b.Block(loc.Block()), loc, value)
	changes += n
	if err != nil {
		return changes, err
	}

	return changes, nil
}

// SetValueFrom consumes exactly sz.Full values from values, in
// element-index order, committing each non-zero entry via
// SingleOptionValue. Entries of 0 mean "unknown" and are skipped. Returns
// ErrDomain if any value lies outside 0..elem, or if len(values) != sz.Full.
//
// Unlike the original loader (which commits eagerly and so can silently
// absorb a literal duplicate once the first occurrence's cascade has
// already stripped the candidate from the second), SetValueFrom rejects a
// repeated nonzero value sharing a row, column, or block up front, as
// ErrInvalidBoard: this is the only way a flat "same value twice in one
// section" input can be distinguished from a no-op.
func SetValueFrom(b *board.Board[option.Options], values []int) (int, error) {
	sz := b.Size()
	if len(values) != sz.Full {
		return 0, ErrDomain
	}
	for _, value := range values {
		if value < 0 || value > sz.Elem {
			return 0, ErrDomain
		}
	}
	if err := rejectDuplicateGivens(sz, values); err != nil {
		return 0, err
	}

	changes := 0
	for i, value := range values {
		if value == 0 {
			continue
		}

		loc, err := size.NewLocation(sz, i)
		if err != nil {
			return changes, err
		}
		if !b.At(loc).IsOption(value) {
			continue
		}

		n, err := SingleOptionValue(b, loc, value)
		changes += n
		if err != nil {
			return changes, err
		}
	}

	return changes, nil
}

// rejectDuplicateGivens reports ErrInvalidBoard if any nonzero value
// appears twice within the same row, column, or block of the dense input.
func rejectDuplicateGivens(sz size.Size, values []int) error {
	seenRow := make([][]bool, sz.Elem)
	seenCol := make([][]bool, sz.Elem)
	seenBlock := make([][]bool, sz.Elem)
	for i := range seenRow {
		seenRow[i] = make([]bool, sz.Elem+1)
		seenCol[i] = make([]bool, sz.Elem+1)
		seenBlock[i] = make([]bool, sz.Elem+1)
	}

	for idx, value := range values {
		if value == 0 {
			continue
		}

		row := idx / sz.Elem
		col := idx % sz.Elem
		block := (row/sz.Base)*sz.Base + col/sz.Base

		if seenRow[row][value] || seenCol[col][value] || seenBlock[block][value] {
			return ErrInvalidBoard
		}
		seenRow[row][value] = true
		seenCol[col][value] = true
		seenBlock[block][value] = true
	}

	return nil
}
