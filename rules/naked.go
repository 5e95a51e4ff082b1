package rules

import (
	"github.com/brennanfield/sudoku-core/board"
	"github.com/brennanfield/sudoku-core/find"
	"github.com/brennanfield/sudoku-core/option"
	"github.com/brennanfield/sudoku-core/propagate"
	"github.com/brennanfield/sudoku-core/size"
)

// NakedPair implements dual_option: loc must carry exactly two live
// candidates. It scans the whole board for another cell with the identical
// mask and, for every match, removes those two candidates from the rest of
// every section (row, column, block) the two locations share. Same-block
// removal is skipped if loc is already answered (a defensive mirror of the
// original's own guard; NakedPair's precondition rules this out in
// practice).
func NakedPair(b *board.Board[option.Options], loc size.Location) (int, error) {
	cell := b.At(loc)
	if cell.Count() != 2 {
		return 0, nil
	}

	sz := b.Size()
	values := cell.Available()
	changes := 0
	for i := 0; i < sz.Full; i++ {
		peer, err := size.NewLocation(sz, i)
		if err != nil {
			return changes, err
		}
		if peer.Equal(loc) || !b.At(peer).Equal(cell) {
			continue
		}

		pair := sortedPair(loc, peer)
		if size.IsSameRow(loc, peer) {
			n, err := propagate.RemoveOptionSectionValues(b, b.Row(loc.Row()), pair, values)
			changes += n
			if err != nil {
				return changes, err
			}
		} else if size.IsSameCol(loc, peer) {
			n, err := propagate.RemoveOptionSectionValues(b, b.Col(loc.Col()), pair, values)
			changes += n
			if err != nil {
				return changes, err
			}
		}
		if size.IsSameBlock(loc, peer) && !cell.IsAnswer() {
			n, err := propagate.RemoveOptionSectionValues(b, b.Block(loc.Block()), pair, values)
			changes += n
			if err != nil {
				return changes, err
			}
		}
	}

	return changes, nil
}

// NakedSubset implements multi_option for 2 < k <= elem/2: loc must carry
// exactly k live candidates. It scans the whole board once via
// find.LocationsSubsetOfBoard for cells whose candidates are a subset of
// loc's mask, then filters that single list down to loc's row, column, and
// block in turn; whenever exactly k of the matches share one of those
// sections, the k values are removed from the rest of it.
func NakedSubset(b *board.Board[option.Options], loc size.Location, k int) (int, error) {
	cell := b.At(loc)
	sz := b.Size()
	if cell.Count() != k || k < 3 || k > sz.Elem/2 {
		return 0, nil
	}

	values := cell.Available()
	list := find.LocationsSubsetOfBoard(b, cell)
	changes := 0

	if inRow := size.GetSameRow(loc, list); len(inRow) == k {
		n, err := propagate.RemoveOptionSectionValues(b, b.Row(loc.Row()), inRow, values)
		changes += n
		if err != nil {
			return changes, err
		}
	}
	if inCol := size.GetSameCol(loc, list); len(inCol) == k {
		n, err := propagate.RemoveOptionSectionValues(b, b.Col(loc.Col()), inCol, values)
		changes += n
		if err != nil {
			return changes, err
		}
	}
	if inBlock := size.GetSameBlock(loc, list); len(inBlock) == k {
		n, err := propagate.RemoveOptionSectionValues(b, b.Block(loc.Block()), inBlock, values)
		changes += n
		if err != nil {
			return changes, err
		}
	}

	return changes, nil
}

func sortedPair(a, b size.Location) []size.Location {
	if a.Less(b) {
		return []size.Location{a, b}
	}

	return []size.Location{b, a}
}
