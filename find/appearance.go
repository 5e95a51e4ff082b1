package find

import (
	"github.com/brennanfield/sudoku-core/board"
	"github.com/brennanfield/sudoku-core/option"
)

// AppearanceOnce returns a mask where bit v is set iff value v appears as a
// live candidate in exactly one unanswered cell of section; values already
// held as an answer somewhere in section are not set. It is the
// hidden-single detector: for a value appearing once, that cell is the only
// place left for it.
//
// Algorithm: accumulate sum, the union of candidates seen so far, and
// worker, the union of bits seen more than once (sum & cell at the moment
// cell is folded in) plus every answered value. The complement of worker is
// exactly "appeared, and appeared exactly once" under the section-coverage
// invariant that every value appears somewhere in a well-formed section.
//
// Complexity: O(elem).
func AppearanceOnce(section board.Section[option.Options]) option.Options {
	elem := section.Size().Elem

	var sum, worker option.Options
	for i := 0; i < section.Len(); i++ {
		cell := section.At(i)
		if cell.IsAnswer() {
			worker = worker.Union(cell)
			continue
		}
		worker = worker.Union(sum.Intersect(cell))
		sum = sum.Union(cell)
	}

	return worker.Flip(elem) | option.Options(1)
}

// AppearanceSets returns a slice of length base+1; entry k has bit v set iff
// v appears exactly k times as a live candidate across section; values held
// as an answer in section are set in no entry. Entry 0
// is empty in a well-formed section (see rules.SectionExclusive, which
// treats a non-empty entry 0 as a contradiction).
//
// Algorithm (carry-propagate, then decumulate): worker[k] is updated per
// cell by folding the cell's mask into worker[k-1]'s prior state (answers
// fold into every level directly); after the full pass each level is
// flipped so worker[k] reads "appears <= k times", then adjacent levels are
// XORed (from base down to 1) so worker[k] reads "appears exactly k times".
//
// Complexity: O(elem * base).
func AppearanceSets(section board.Section[option.Options]) []option.Options {
	elem := section.Size().Elem
	base := section.Size().Base

	worker := make([]option.Options, base+1)
	for i := 0; i < section.Len(); i++ {
		cell := section.At(i)
		if cell.IsAnswer() {
			for k := 0; k <= base; k++ {
				worker[k] = worker[k].Union(cell)
			}
			continue
		}
		for k := base; k >= 1; k-- {
			worker[k] = worker[k].Union(worker[k-1].Intersect(cell))
		}
		worker[0] = worker[0].Union(cell)
	}

	for k := 0; k <= base; k++ {
		worker[k] = worker[k].Flip(elem)
	}
	for k := base; k >= 1; k-- {
		worker[k] = worker[k].Xor(worker[k-1])
	}

	for k := 0; k <= base; k++ {
		worker[k] |= option.Options(1)
	}

	return worker
}
