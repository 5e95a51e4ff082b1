package sudoku

import (
	"github.com/brennanfield/sudoku-core/board"
	"github.com/brennanfield/sudoku-core/option"
	"github.com/brennanfield/sudoku-core/search"
	"github.com/brennanfield/sudoku-core/size"
)

// Solve computes completions of a base-N board given as a dense, row-major
// cell-value sequence of length base⁴ (0 meaning unknown, 1..base² an
// answer). It returns zero or more completed boards in the same dense
// form, up to the MAX_ANSWERS configured via opts (see
// search.WithMaxAnswers); an empty result means unsolvable under the given
// rules, not necessarily an error.
//
// Solve fails fast with DomainError if values is the wrong length or
// carries an out-of-range entry, and with InvalidBoard only when the
// starting board is itself inconsistent before any guess is made (e.g. a
// repeated value in one row).
func Solve(base int, values []int, opts ...search.Option) ([][]int, error) {
	sz, err := size.NewSize(base)
	if err != nil {
		return nil, err
	}

	initial, err := search.Seed(sz, values)
	if err != nil {
		return nil, err
	}

	answers, err := search.New(opts...).Solve(initial)
	if err != nil {
		return nil, err
	}

	out := make([][]int, len(answers))
	for i, b := range answers {
		out[i] = dense(b)
	}

	return out, nil
}

// dense flattens a solved Options board into the external, row-major
// cell-value sequence form.
func dense(b *board.Board[option.Options]) []int {
	cells := b.Cells()
	out := make([]int, len(cells))
	for i, cell := range cells {
		out[i] = cell.GetAnswer()
	}

	return out
}
