package sudoku_test

import (
	"fmt"

	sudoku "github.com/brennanfield/sudoku-core"
	"github.com/brennanfield/sudoku-core/search"
)

func ExampleSolve() {
	answers, err := sudoku.Solve(3, hiddenSingleResolvable, search.WithMaxAnswers(1))
	if err != nil {
		fmt.Println(err)

		return
	}
	fmt.Println(len(answers), answers[0][:9])
	// Output: 1 [6 7 3 8 9 4 5 1 2]
}
