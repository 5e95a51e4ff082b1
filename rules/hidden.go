package rules

import (
	"github.com/brennanfield/sudoku-core/board"
	"github.com/brennanfield/sudoku-core/find"
	"github.com/brennanfield/sudoku-core/option"
	"github.com/brennanfield/sudoku-core/propagate"
	"github.com/brennanfield/sudoku-core/size"
)

// UniqueInSection implements unique_in_section: it computes
// find.AppearanceOnce(section) and commits, for every set bit v, the
// section's sole remaining cell that still carries v.
func UniqueInSection(b *board.Board[option.Options], section board.Section[option.Options]) (int, error) {
	return setUniques(b, section, find.AppearanceOnce(section))
}

// setUniques commits, for every value v set in worker, the section's sole
// cell still carrying v as a live candidate. A value with no such cell
// (already settled by an earlier commit this pass) is silently skipped.
func setUniques(b *board.Board[option.Options], section board.Section[option.Options], worker option.Options) (int, error) {
	changes := 0
	for v := 1; v <= section.Size().Elem; v++ {
		if !worker.Test(v) {
			continue
		}
		locs := find.LocationsWithOption(section, v, 1)
		if len(locs) == 0 {
			continue
		}

		n, err := propagate.SingleOptionValue(b, locs[0], v)
		changes += n
		if err != nil {
			return changes, err
		}
	}

	return changes, nil
}

// SectionExclusive implements section_exclusive: using
// find.AppearanceSets(section), it folds hidden singles (level 1) through
// setUniques, and for each k in [2, base] removes value v (appearing
// exactly k times) from the complementary section — the rest of the block
// for a row/column, or the rest of the row/column for a block — whenever
// all k locations line up in a single such section (locked candidates).
// Any successful elimination invalidates the counts, so the scan restarts
// from k=2 with a freshly recomputed AppearanceSets.
//
// A non-empty level-0 entry (a value appearing nowhere in section) is
// treated as ErrInvalidBoard: the degenerate case of a value with zero
// remaining candidates.
func SectionExclusive(b *board.Board[option.Options], section board.Section[option.Options]) (int, error) {
	changes := 0
	appearing := find.AppearanceSets(section)
	if appearing[0].CountAll() > 0 {
		return changes, propagate.ErrInvalidBoard
	}

	i := 2
	for i < len(appearing) {
		if appearing[1].CountAll() > 0 {
			n, err := setUniques(b, section, appearing[1])
			changes += n
			if err != nil {
				return changes, err
			}
			appearing = find.AppearanceSets(section)
			if appearing[0].CountAll() > 0 {
				return changes, propagate.ErrInvalidBoard
			}
			i = 2
			continue
		}

		if appearing[i].CountAll() > 0 {
			n, err := setSectionLocals(b, section, i, appearing[i])
			changes += n
			if err != nil {
				return changes, err
			}
			if n > 0 {
				appearing = find.AppearanceSets(section)
				if appearing[0].CountAll() > 0 {
					return changes, propagate.ErrInvalidBoard
				}
				i = 2
				continue
			}
		}
		i++
	}

	return changes, nil
}

// setSectionLocals handles one appearance level of section_exclusive: for
// each value v in values appearing exactly repCount times in section, it
// locates those repCount cells and, if they line up in one complementary
// section, removes v from the rest of it.
func setSectionLocals(
	b *board.Board[option.Options], section board.Section[option.Options], repCount int, values option.Options,
) (int, error) {
	changes := 0
	for v := 1; v <= section.Size().Elem; v++ {
		if !values.Test(v) {
			continue
		}
		locs := find.LocationsWithOption(section, v, repCount)
		if len(locs) != repCount {
			continue
		}

		var (
			n   int
			err error
		)
		switch section.Kind() {
		case board.KindBlock:
			if size.IsSameRowRange(locs[0], locs) {
				n, err = propagate.RemoveOptionOutsideBlock(b, b.Row(locs[0].Row()), locs[0], v)
			} else if size.IsSameColRange(locs[0], locs) {
				n, err = propagate.RemoveOptionOutsideBlock(b, b.Col(locs[0].Col()), locs[0], v)
			}
		default: // KindRow or KindCol
			if size.IsSameBlockRange(locs[0], locs) {
				n, err = propagate.RemoveOptionSectionMany(b, b.Block(locs[0].Block()), locs, v)
			}
		}
		changes += n
		if err != nil {
			return changes, err
		}
	}

	return changes, nil
}

// ChooseSolver composes UniqueInSection over every row, then every column,
// then every block, to a fixed point: it repeats the three passes until one
// full round eliminates nothing. This is the cheap, always-safe pass the
// search driver runs before resorting to branching.
func ChooseSolver(b *board.Board[option.Options]) (int, error) {
	total := 0
	for {
		before := total
		for id := 0; id < b.Size().Elem; id++ {
			n, err := UniqueInSection(b, b.Row(id))
			total += n
			if err != nil {
				return total, err
			}
		}
		for id := 0; id < b.Size().Elem; id++ {
			n, err := UniqueInSection(b, b.Col(id))
			total += n
			if err != nil {
				return total, err
			}
		}
		for id := 0; id < b.Size().Elem; id++ {
			n, err := UniqueInSection(b, b.Block(id))
			total += n
			if err != nil {
				return total, err
			}
		}
		if total == before {
			break
		}
	}

	return total, nil
}
