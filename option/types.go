package option

import "math/bits"

// MaxElem is the largest element size (E) representable by Options: bit 0
// is reserved for the unsolved flag, leaving bits 1..31 for candidates.
const MaxElem = 31

// Options is a fixed-width bitmask over 1..E plus an unsolved flag in bit 0.
// The zero value represents the empty/invalid mask (no candidates, flag
// clear); it is never a valid resting state for a cell.
type Options uint32

// New returns a mask with every candidate 1..elem set and the unsolved flag
// set: the starting state of an unconstrained cell.
func New(elem int) Options {
	return universe(elem)
}

// FromValue returns a mask with only bit v set and the unsolved flag clear:
// a cell already committed to its answer. It fails with ErrInvalidOption if
// v is outside 1..elem.
func FromValue(elem, v int) (Options, error) {
	if v < 1 || v > elem {
		return 0, ErrInvalidOption
	}

	return Options(1 << uint(v)), nil
}

// universe returns the bitmask with bits 0..elem all set.
func universe(elem int) Options {
	return Options((uint64(1)<<uint(elem+1)) - 1)
}

// Clear returns the empty mask: no candidates, flag clear. This is a
// transient, invalid resting state used internally to detect contradictions.
func (o Options) Clear() Options { return 0 }

// Reset returns a mask with every candidate 1..elem set and the unsolved
// flag set, identical to New(elem).
func (o Options) Reset(elem int) Options { return New(elem) }

// Flip inverts every bit in 0..elem, including the unsolved flag.
func (o Options) Flip(elem int) Options {
	return o ^ universe(elem)
}

// Remove clears candidate bit v. The caller is responsible for ensuring v is
// not the cell's already-committed answer.
func (o Options) Remove(v int) Options {
	return o &^ (1 << uint(v))
}

// Add sets candidate bit v.
func (o Options) Add(v int) Options {
	return o | (1 << uint(v))
}

// Set replaces the mask with the committed answer v: bit v set, flag clear,
// all other bits clear.
func (o Options) Set(v int) Options {
	return Options(1 << uint(v))
}

// Count returns the number of candidate bits when the mask is unsolved,
// or 0 when it has been committed to an answer.
func (o Options) Count() int {
	if !o.unsolved() {
		return 0
	}

	return o.CountAll()
}

// CountAll returns the number of candidate bits irrespective of the
// unsolved flag; an answered cell reports 1.
func (o Options) CountAll() int {
	return bits.OnesCount32(uint32(o &^ 1))
}

// Test reports whether bit v is set, regardless of the unsolved flag.
func (o Options) Test(v int) bool {
	return o&(1<<uint(v)) != 0
}

// unsolved reports whether bit 0 (the unsolved flag) is set.
func (o Options) unsolved() bool { return o&1 != 0 }

// IsAnswer reports whether the mask represents a committed answer: the
// unsolved flag is clear and exactly one candidate bit is set.
func (o Options) IsAnswer() bool {
	return !o.unsolved() && o.CountAll() == 1
}

// IsAnswerValue reports whether the mask is the committed answer v,
// equivalent to comparing against FromValue(elem, v).
func (o Options) IsAnswerValue(v int) bool {
	return o.IsAnswer() && o.Test(v)
}

// IsOption reports whether v is a live (not yet committed) candidate.
func (o Options) IsOption(v int) bool {
	return o.Test(v) && o.unsolved()
}

// IsEmpty reports whether no bit at all is set: a contradiction.
func (o Options) IsEmpty() bool { return o == 0 }

// Available returns the candidate values still live, in ascending order.
// It is empty when the mask is answered or empty.
func (o Options) Available() []int {
	if o.IsAnswer() || o.IsEmpty() {
		return nil
	}

	out := make([]int, 0, o.CountAll())
	for v := 1; v <= MaxElem; v++ {
		if o.Test(v) {
			out = append(out, v)
		}
	}

	return out
}

// GetAnswer returns the sole value when CountAll() == 1, else 0.
func (o Options) GetAnswer() int {
	if o.CountAll() != 1 {
		return 0
	}

	for v := 1; v <= MaxElem; v++ {
		if o.Test(v) {
			return v
		}
	}

	return 0
}

// Union returns the bitwise OR of the two masks, flag included.
func (o Options) Union(other Options) Options { return o | other }

// Intersect returns the bitwise AND of the two masks, flag included.
// Also known as "shared" options between two cells.
func (o Options) Intersect(other Options) Options { return o & other }

// Xor returns the bitwise XOR of the two masks, flag included.
func (o Options) Xor(other Options) Options { return o ^ other }

// Sub removes the candidate bits of other from o. other must be answered
// (its flag clear); the flag of o is left untouched.
func (o Options) Sub(other Options) Options { return o &^ other }

// Equal reports whether the two masks are identical, including the flag.
func (o Options) Equal(other Options) bool { return o == other }
