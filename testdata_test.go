package sudoku_test

// Named puzzle fixtures used by solve_test.go, mirroring the teacher's
// table-driven fixture style and the source's Console.cpp b1/b2 literals.

// hiddenSingleResolvable is spec.md's S1: solvable by hidden singles alone.
var hiddenSingleResolvable = []int{
	0, 0, 0, 0, 0, 0, 0, 1, 2,
	0, 0, 0, 0, 3, 5, 0, 0, 0,
	0, 0, 0, 6, 0, 0, 0, 7, 0,
	7, 0, 0, 0, 0, 0, 3, 0, 0,
	0, 0, 0, 4, 0, 0, 8, 0, 0,
	1, 0, 0, 0, 0, 0, 0, 0, 0,
	0, 0, 0, 1, 2, 0, 0, 0, 0,
	0, 8, 0, 0, 0, 0, 0, 4, 0,
	0, 5, 0, 0, 0, 0, 6, 0, 0,
}

var hiddenSingleResolvableAnswer = []int{
	6, 7, 3, 8, 9, 4, 5, 1, 2,
	9, 1, 2, 7, 3, 5, 4, 8, 6,
	8, 4, 5, 6, 1, 2, 9, 7, 3,
	7, 9, 8, 2, 6, 1, 3, 5, 4,
	5, 2, 6, 4, 7, 3, 8, 9, 1,
	1, 3, 4, 5, 8, 9, 2, 6, 7,
	4, 6, 9, 1, 2, 8, 7, 3, 5,
	2, 8, 7, 3, 5, 6, 1, 4, 9,
	3, 5, 1, 9, 4, 7, 6, 2, 8,
}

// requiresBranching is spec.md's S2: a well-formed puzzle with few enough
// givens that hidden-single propagation alone cannot finish it (the widely
// cited "AI Escargot" puzzle).
var requiresBranching = []int{
	1, 0, 0, 0, 0, 7, 0, 9, 0,
	0, 3, 0, 0, 2, 0, 0, 0, 8,
	0, 0, 9, 6, 0, 0, 5, 0, 0,
	0, 0, 5, 3, 0, 0, 9, 0, 0,
	0, 1, 0, 0, 8, 0, 0, 0, 2,
	6, 0, 0, 0, 0, 4, 0, 0, 0,
	3, 0, 0, 0, 0, 0, 0, 1, 0,
	0, 4, 0, 0, 0, 0, 0, 0, 7,
	0, 0, 7, 0, 0, 0, 3, 0, 0,
}

// classicTextbookPuzzle is spec.md's S3: the canonical Wikipedia example.
var classicTextbookPuzzle = []int{
	5, 3, 0, 0, 7, 0, 0, 0, 0,
	6, 0, 0, 1, 9, 5, 0, 0, 0,
	0, 9, 8, 0, 0, 0, 0, 6, 0,
	8, 0, 0, 0, 6, 0, 0, 0, 3,
	4, 0, 0, 8, 0, 3, 0, 0, 1,
	7, 0, 0, 0, 2, 0, 0, 0, 6,
	0, 6, 0, 0, 0, 0, 2, 8, 0,
	0, 0, 0, 4, 1, 9, 0, 0, 5,
	0, 0, 0, 0, 8, 0, 0, 7, 9,
}

var classicTextbookPuzzleAnswer = []int{
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
