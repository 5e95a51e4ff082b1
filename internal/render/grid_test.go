package render_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brennanfield/sudoku-core/internal/render"
)

func ExampleGrid() {
	solution := []int{
		5, 3, 4, 6, 7, 8, 9, 1, 2,
		6, 7, 2, 1, 9, 5, 3, 4, 8,
		1, 9, 8, 3, 4, 2, 5, 6, 7,
		8, 5, 9, 7, 6, 1, 4, 2, 3,
		4, 2, 6, 8, 5, 3, 7, 9, 1,
		7, 1, 3, 9, 2, 4, 8, 5, 6,
		9, 6, 1, 5, 3, 7, 2, 8, 4,
		2, 8, 7, 4, 1, 9, 6, 3, 5,
		3, 4, 5, 2, 8, 6, 1, 7, 9,
	}

	out, err := render.Grid(3, solution)
	if err != nil {
		panic(err)
	}
	fmt.Print(out)
	// Output:
	// 5 3 4 |6 7 8 |9 1 2
	// 6 7 2 |1 9 5 |3 4 8
	// 1 9 8 |3 4 2 |5 6 7
	// ------+------+------
	// 8 5 9 |7 6 1 |4 2 3
	// 4 2 6 |8 5 3 |7 9 1
	// 7 1 3 |9 2 4 |8 5 6
	// ------+------+------
	// 9 6 1 |5 3 7 |2 8 4
	// 2 8 7 |4 1 9 |6 3 5
	// 3 4 5 |2 8 6 |1 7 9
}

func TestGridRendersBlanksAsDots(t *testing.T) {
	values := make([]int, 81)
	values[0] = 7

	out, err := render.Grid(3, values)
	require.NoError(t, err)
	assert.Contains(t, out, "7 . . |. . . |. . .\n")
}

func TestGridRejectsWrongLength(t *testing.T) {
	_, err := render.Grid(3, []int{1, 2, 3})
	require.ErrorIs(t, err, render.ErrWrongLength)
}
