package search

import (
	"github.com/brennanfield/sudoku-core/board"
	"github.com/brennanfield/sudoku-core/option"
	"github.com/brennanfield/sudoku-core/propagate"
	"github.com/brennanfield/sudoku-core/rules"
	"github.com/brennanfield/sudoku-core/size"
)

// Solver owns a work queue and an answer list, exclusively, for one Solve
// call: the core is single-threaded and keeps no state between calls.
type Solver struct {
	cfg Config
}

// New builds a Solver from the given options.
func New(opts ...Option) *Solver {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Solver{cfg: cfg}
}

// Seed builds the initial Options board for a Size from a dense cell-value
// sequence (len(values) == sz.Full, 0 meaning unknown). Every given value
// is committed via propagate.SingleOptionValue. If nothing was given (an
// entirely blank board), row 0 is pre-seeded with the identity permutation
// 1..elem, which loses no distinct solution up to a relabelling of values
// (see fill_begin_empty_board's rationale).
func Seed(sz size.Size, values []int) (*board.Board[option.Options], error) {
	b := board.New[option.Options](sz)
	for i := 0; i < sz.Full; i++ {
		loc, err := size.NewLocation(sz, i)
		if err != nil {
			return nil, err
		}
		b.Set(loc, option.New(sz.Elem))
	}

	changes, err := propagate.SetValueFrom(b, values)
	if err != nil {
		return nil, err
	}
	if changes == 0 {
		if _, err := seedIdentityRow(b); err != nil {
			return nil, err
		}
	}

	return b, nil
}

// seedIdentityRow commits row 0 to [1, elem] in order, then removes each
// value from the rest of its column and block (row 0's own cells need no
// further removal among themselves: every value there is already distinct).
func seedIdentityRow(b *board.Board[option.Options]) (int, error) {
	sz := b.Size()
	changes := sz.Elem
	for i := 0; i < sz.Elem; i++ {
		loc, err := size.NewLocation(sz, i)
		if err != nil {
			return changes, err
		}
		value := i + 1

		if _, err := propagate.SetValue(b, loc, value); err != nil {
			return changes, err
		}
		n, err := propagate.RemoveOptionSection(b, b.Col(loc.Col()), loc, value)
		changes += n
		if err != nil {
			return changes, err
		}
		n, err = propagate.RemoveOptionSection(b, b.Block(loc.Block()), loc, value)
		changes += n
		if err != nil {
			return changes, err
		}
	}

	return changes, nil
}

// Solve runs the driver starting from initial until the queue is exhausted
// or, for a non-negative MaxAnswers, until a completed board is found while
// the answer list already holds MaxAnswers boards. It returns the collected
// answer boards (possibly empty: unsolvable under the given rules) or a
// context error if cancelled mid-search. Solve consumes initial: callers
// must not use it afterward.
func (s *Solver) Solve(initial *board.Board[option.Options]) ([]*board.Board[option.Options], error) {
	queue := []*board.Board[option.Options]{initial}
	var answers []*board.Board[option.Options]

	for len(queue) > 0 {
		select {
		case <-s.cfg.Ctx.Done():
			return answers, s.cfg.Ctx.Err()
		default:
		}

		item := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		if Solved(item) {
			answers = recordAnswer(answers, item, s.cfg.MaxAnswers)
			if s.cfg.MaxAnswers >= 0 && len(answers) >= s.cfg.MaxAnswers {
				break
			}
			continue
		}

		if _, err := rules.ChooseSolver(item); err != nil {
			continue // contradiction: discard this branch
		}

		if Solved(item) {
			answers = recordAnswer(answers, item, s.cfg.MaxAnswers)
			if s.cfg.MaxAnswers >= 0 && len(answers) >= s.cfg.MaxAnswers {
				break
			}
			continue
		}

		queue = guess(queue, item)
	}

	return answers, nil
}

// Solved reports whether every cell of b is committed to an answer.
func Solved(b *board.Board[option.Options]) bool {
	for _, cell := range b.Cells() {
		if !cell.IsAnswer() {
			return false
		}
	}

	return true
}

func recordAnswer(
	answers []*board.Board[option.Options], item *board.Board[option.Options], maxAnswers int,
) []*board.Board[option.Options] {
	if maxAnswers == 0 {
		return answers
	}
	if maxAnswers > 0 && len(answers) >= maxAnswers {
		return answers
	}

	return append(answers, item)
}

// guess picks the unanswered cell with the fewest live candidates (ties
// broken by ascending element index), and for each of its candidates in
// ascending order, clones b, commits the candidate, and pushes the clone
// onto queue. A candidate whose commit contradicts the board is dropped.
// Because queue is a LIFO stack, the candidates pushed last (the largest
// values) are explored first.
func guess(
	queue []*board.Board[option.Options], b *board.Board[option.Options],
) []*board.Board[option.Options] {
	loc, ok := pickLocation(b)
	if !ok {
		return queue
	}

	for _, v := range b.At(loc).Available() {
		clone := b.Clone()
		if _, err := propagate.SingleOptionValue(clone, loc, v); err != nil {
			continue
		}
		queue = append(queue, clone)
	}

	return queue
}

// pickLocation returns the unanswered cell with the fewest live
// candidates, ties broken by ascending element index. ok is false if every
// cell is already answered.
func pickLocation(b *board.Board[option.Options]) (loc size.Location, ok bool) {
	sz := b.Size()
	best := -1
	bestCount := sz.Elem + 1

	for i := 0; i < sz.Full; i++ {
		candidate, err := size.NewLocation(sz, i)
		if err != nil {
			return size.Location{}, false
		}
		cell := b.At(candidate)
		if cell.IsAnswer() {
			continue
		}
		if c := cell.Count(); c < bestCount {
			bestCount = c
			best = i
		}
	}
	if best == -1 {
		return size.Location{}, false
	}

	loc, _ = size.NewLocation(sz, best)

	return loc, true
}
