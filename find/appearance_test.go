package find_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brennanfield/sudoku-core/board"
	"github.com/brennanfield/sudoku-core/option"
	"github.com/brennanfield/sudoku-core/size"

	"github.com/brennanfield/sudoku-core/find"
)

func TestAppearanceOnceFindsHiddenSingle(t *testing.T) {
	sz, err := size.NewSize(3)
	require.NoError(t, err)
	b := board.New[option.Options](sz)
	for i := 0; i < sz.Full; i++ {
		loc, err := size.NewLocation(sz, i)
		require.NoError(t, err)
		b.Set(loc, option.New(sz.Elem))
	}
	row := b.Row(0)

	// Confine value 7 to cell 0 only; every other cell loses it.
	for i := 1; i < row.Len(); i++ {
		row.Set(i, row.At(i).Remove(7))
	}

	mask := find.AppearanceOnce(row)
	assert.True(t, mask.Test(7))
}

func TestAppearanceOnceAllUnconstrainedIsEmptyOfSingles(t *testing.T) {
	sz, err := size.NewSize(3)
	require.NoError(t, err)
	b := board.New[option.Options](sz)
	for i := 0; i < sz.Full; i++ {
		loc, err := size.NewLocation(sz, i)
		require.NoError(t, err)
		b.Set(loc, option.New(sz.Elem))
	}
	row := b.Row(0)

	mask := find.AppearanceOnce(row)
	for v := 1; v <= sz.Elem; v++ {
		assert.False(t, mask.Test(v), "value %d should appear in >1 cell, not flagged hidden-single", v)
	}
}

func TestAppearanceSetsShape(t *testing.T) {
	sz, err := size.NewSize(3)
	require.NoError(t, err)
	b := board.New[option.Options](sz)
	for i := 0; i < sz.Full; i++ {
		loc, err := size.NewLocation(sz, i)
		require.NoError(t, err)
		b.Set(loc, option.New(sz.Elem))
	}
	row := b.Row(0)

	sets := find.AppearanceSets(row)
	require.Len(t, sets, sz.Base+1)

	// Every value appears in all 9 cells, which exceeds base (3); none of
	// the counted levels 1..base should claim it, but entry 0 ("never
	// appears") must stay empty since every value is live everywhere.
	for v := 1; v <= sz.Elem; v++ {
		assert.False(t, sets[0].Test(v))
	}
}

func TestAppearanceSetsLockedTriple(t *testing.T) {
	sz, err := size.NewSize(3)
	require.NoError(t, err)
	b := board.New[option.Options](sz)
	for i := 0; i < sz.Full; i++ {
		loc, err := size.NewLocation(sz, i)
		require.NoError(t, err)
		b.Set(loc, option.New(sz.Elem))
	}
	row := b.Row(0)

	// Confine value 4 to exactly three cells of the row.
	for i := 3; i < row.Len(); i++ {
		row.Set(i, row.At(i).Remove(4))
	}

	sets := find.AppearanceSets(row)
	assert.True(t, sets[3].Test(4))
	assert.False(t, sets[2].Test(4))
}
