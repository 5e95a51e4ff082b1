package find_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brennanfield/sudoku-core/board"
	"github.com/brennanfield/sudoku-core/find"
	"github.com/brennanfield/sudoku-core/option"
	"github.com/brennanfield/sudoku-core/size"
)

func newOptionsBoard(t *testing.T) (*board.Board[option.Options], size.Size) {
	sz, err := size.NewSize(3)
	require.NoError(t, err)

	b := board.New[option.Options](sz)
	for i := 0; i < sz.Full; i++ {
		loc, err := size.NewLocation(sz, i)
		require.NoError(t, err)
		b.Set(loc, option.New(sz.Elem))
	}

	return b, sz
}

func TestLocationsWithOption(t *testing.T) {
	b, sz := newOptionsBoard(t)
	row := b.Row(0)

	locs := find.LocationsWithOption(row, 5, 0)
	assert.Len(t, locs, sz.Elem)

	row.Set(0, row.At(0).Set(5))
	locs = find.LocationsWithOption(row, 5, 0)
	assert.Len(t, locs, sz.Elem-1)

	bounded := find.LocationsWithOption(row, 5, 2)
	assert.Len(t, bounded, 2)
}

func TestLocationsEqual(t *testing.T) {
	b, _ := newOptionsBoard(t)
	row := b.Row(0)

	sample := row.At(0).Remove(1).Remove(2)
	row.Set(0, sample)
	row.Set(3, sample)

	locs := find.LocationsEqual(row, sample)
	require.Len(t, locs, 2)
	assert.Equal(t, row.Location(0), locs[0])
	assert.Equal(t, row.Location(3), locs[1])
}

func TestLocationsSubsetOfExcludesAnswered(t *testing.T) {
	b, sz := newOptionsBoard(t)
	row := b.Row(0)

	pairMask := row.At(0).Remove(3).Remove(4).Remove(5).Remove(6).Remove(7).Remove(8).Remove(9)
	row.Set(1, pairMask)
	row.Set(2, row.At(0).Set(1)) // answered cell, excluded regardless of overlap

	locs := find.LocationsSubsetOf(row, pairMask)
	for _, l := range locs {
		assert.NotEqual(t, row.Location(2), l)
	}
	assert.Contains(t, locs, row.Location(1))
	_ = sz
}

func TestLocationsSubsetOfBoardExcludesAnsweredAndScansWholeBoard(t *testing.T) {
	b, _ := newOptionsBoard(t)

	tripleMask := b.At(b.Row(0).Location(0)).Remove(4).Remove(5).Remove(6).Remove(7).Remove(8).Remove(9)
	row0 := b.Row(0)
	row0.Set(0, tripleMask)
	row0.Set(1, tripleMask)

	block3 := b.Block(3) // rows 3-5, cols 0-2: disjoint from row 0
	block3.Set(0, tripleMask)

	row0.Set(2, row0.At(0).Set(1)) // answered cell carrying the same value, excluded

	locs := find.LocationsSubsetOfBoard(b, tripleMask)
	assert.Contains(t, locs, row0.Location(0))
	assert.Contains(t, locs, row0.Location(1))
	assert.Contains(t, locs, block3.Location(0))
	assert.NotContains(t, locs, row0.Location(2))
}

func TestLocationsWithAny(t *testing.T) {
	b, _ := newOptionsBoard(t)
	row := b.Row(0)

	sample, err := option.FromValue(9, 1)
	require.NoError(t, err)

	locs := find.LocationsWithAny(row, sample)
	assert.Len(t, locs, row.Len())
}
