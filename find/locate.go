package find

import (
	"github.com/brennanfield/sudoku-core/board"
	"github.com/brennanfield/sudoku-core/option"
	"github.com/brennanfield/sudoku-core/size"
)

// LocationsWithOption returns the Locations in section whose mask still
// carries value as a live candidate (option.IsOption), in ascending element
// order. maxCount bounds both the returned capacity and the scan: once
// maxCount matches are found the scan stops early. maxCount <= 0 means no
// bound.
//
// Complexity: O(elem), or less with an early exit.
func LocationsWithOption(section board.Section[option.Options], value, maxCount int) []size.Location {
	capHint := maxCount
	if capHint <= 0 {
		capHint = section.Len()
	}
	out := make([]size.Location, 0, capHint)
	for i := 0; i < section.Len(); i++ {
		if section.At(i).IsOption(value) {
			out = append(out, section.Location(i))
			if maxCount > 0 && len(out) == maxCount {
				break
			}
		}
	}

	return out
}

// LocationsEqual returns the Locations in section whose mask is identical
// to sample, flag included. Used for naked-subset detection: a peer cell
// sharing exactly the same candidate set as the pivot.
//
// Complexity: O(elem).
func LocationsEqual(section board.Section[option.Options], sample option.Options) []size.Location {
	var out []size.Location
	for i := 0; i < section.Len(); i++ {
		if section.At(i).Equal(sample) {
			out = append(out, section.Location(i))
		}
	}

	return out
}

// LocationsSubsetOf returns the Locations (excluding answered cells) of
// section whose candidates are a non-empty subset of sample.
//
// Complexity: O(elem).
func LocationsSubsetOf(section board.Section[option.Options], sample option.Options) []size.Location {
	var out []size.Location
	for i := 0; i < section.Len(); i++ {
		cell := section.At(i)
		if cell.IsAnswer() || cell.IsEmpty() {
			continue
		}
		if cell.Intersect(sample) == cell {
			out = append(out, section.Location(i))
		}
	}

	return out
}

// LocationsSubsetOfBoard is the board-wide counterpart of LocationsSubsetOf:
// it scans every cell of b (excluding answered cells) and returns those
// whose candidates are a subset of sample. Callers that need the result
// partitioned by row, column, or block (rules.NakedSubset) filter this
// single scan with size.GetSameRow/GetSameCol/GetSameBlock rather than
// rescanning per section.
//
// Complexity: O(full).
func LocationsSubsetOfBoard(b *board.Board[option.Options], sample option.Options) []size.Location {
	sz := b.Size()
	var out []size.Location
	for i := 0; i < sz.Full; i++ {
		loc, err := size.NewLocation(sz, i)
		if err != nil {
			continue
		}
		cell := b.At(loc)
		if cell.IsAnswer() || cell.IsEmpty() {
			continue
		}
		if cell.Intersect(sample) == cell {
			out = append(out, loc)
		}
	}

	return out
}

// LocationsWithAny returns the Locations (excluding answered cells) of
// section that share at least one candidate bit with sample.
//
// Complexity: O(elem).
func LocationsWithAny(section board.Section[option.Options], sample option.Options) []size.Location {
	var out []size.Location
	for i := 0; i < section.Len(); i++ {
		cell := section.At(i)
		if cell.IsAnswer() || cell.IsEmpty() {
			continue
		}
		if cell.Intersect(sample) != 0 {
			out = append(out, section.Location(i))
		}
	}

	return out
}
