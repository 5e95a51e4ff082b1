// Command sudoku reads one or more dense cell-value sequences and prints
// their solved grids. It is a consumer of the sudoku package, not part of
// the core: input parsing, logging, and rendering all live here.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	sudoku "github.com/brennanfield/sudoku-core"
	"github.com/brennanfield/sudoku-core/internal/render"
	"github.com/brennanfield/sudoku-core/search"
)

func main() {
	base := flag.Int("base", 3, "board base order N (board side is N², canonically 9x9 for N=3)")
	maxAnswers := flag.Int("max-answers", 1, "answer cap: positive caps, zero collects none, negative is unlimited")
	file := flag.String("file", "", "read the board from this file instead of stdin")
	interactive := flag.Bool("interactive", false, "read boards one at a time from stdin until EOF, solving each in turn")
	flag.Parse()

	in := os.Stdin
	if *file != "" {
		f, err := os.Open(*file)
		if err != nil {
			log.Fatalf("sudoku: open %s: %v", *file, err)
		}
		defer f.Close()
		in = f
	}

	r := bufio.NewReader(in)
	elem := *base * *base
	full := elem * elem

	if !*interactive {
		if err := solveOne(r, *base, full, *maxAnswers); err != nil {
			log.Fatalf("sudoku: %v", err)
		}

		return
	}

	for count := 1; ; count++ {
		if err := solveOne(r, *base, full, *maxAnswers); err != nil {
			if errors.Is(err, io.EOF) {
				return
			}
			log.Printf("sudoku: board %d: %v", count, err)
		}
	}
}

func solveOne(r *bufio.Reader, base, full, maxAnswers int) error {
	values, err := parseBoard(r, full)
	if err != nil {
		return err
	}

	start := time.Now()
	answers, err := sudoku.Solve(base, values, search.WithMaxAnswers(maxAnswers))
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	log.Printf("solved in %s, %d answer(s)", time.Since(start), len(answers))

	if len(answers) == 0 {
		fmt.Println("no solution")

		return nil
	}
	for i, a := range answers {
		if i > 0 {
			fmt.Println()
		}
		grid, err := render.Grid(base, a)
		if err != nil {
			return err
		}
		fmt.Print(grid)
	}

	return nil
}

// parseBoard reads exactly full whitespace-separated tokens, each either an
// integer or "." (an alias for 0, matching the convention in thriqon's
// ParseReader). It returns io.EOF only if the very first token of a board
// is missing, so callers reading multiple boards can detect a clean stop.
func parseBoard(r *bufio.Reader, full int) ([]int, error) {
	values := make([]int, 0, full)
	for len(values) < full {
		tok, err := nextToken(r)
		if err != nil {
			if err == io.EOF {
				if len(values) == 0 {
					return nil, io.EOF
				}
				err = io.ErrUnexpectedEOF
			}

			return nil, fmt.Errorf("read cell %d: %w", len(values), err)
		}
		if tok == "." {
			values = append(values, 0)
			continue
		}

		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("cell %d: %q is not a number or '.': %w", len(values), tok, err)
		}
		values = append(values, v)
	}

	return values, nil
}

func nextToken(r *bufio.Reader) (string, error) {
	var tok []byte
	for {
		b, err := r.ReadByte()
		if err != nil {
			if len(tok) > 0 {
				return string(tok), nil
			}

			return "", err
		}
		if b == ' ' || b == '\t' || b == '\n' || b == '\r' {
			if len(tok) > 0 {
				return string(tok), nil
			}

			continue
		}
		tok = append(tok, b)
	}
}
