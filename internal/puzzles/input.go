package puzzles

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gridpath/board"
)

// ReadLines reads r line by line, dropping carriage returns and trailing
// blank lines.
func ReadLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("puzzles: reading input: %w", err)
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}

// digits parses a map of decimal digits.
func digits(lines []string) (*board.Grid[int], error) {
	raw, err := board.FromLines(lines)
	if err != nil {
		return nil, err
	}
	if bad := raw.Find(func(r rune) bool { return r < '0' || r > '9' }); len(bad) > 0 {
		return nil, fmt.Errorf("%w: non-digit at %s", ErrBadInput, bad[0])
	}
	return board.Map(raw, func(_ board.Cell, r rune) int { return int(r - '0') }), nil
}

// single returns the only cell of cells or an ErrBadInput naming what.
func single(cells []board.Cell, what string) (board.Cell, error) {
	if len(cells) != 1 {
		return board.Cell{}, fmt.Errorf("%w: want one %s, found %d", ErrBadInput, what, len(cells))
	}
	return cells[0], nil
}
