package board

import (
	"fmt"
)

// Glyphs used by drift fields.
const (
	Wall = '#'
	Open = '.'
)

// DriftGlyphs maps the obstacle glyphs of a drift field to their motion.
var DriftGlyphs = map[rune]Delta{
	'^': {DRow: -1},
	'v': {DRow: 1},
	'<': {DCol: -1},
	'>': {DCol: 1},
}

type drifter struct {
	at   Cell
	move Delta
}

// Drift is a walled field whose obstacles move one cell per time step and
// wrap within the inner rectangle (the field minus its one-cell border).
type Drift struct {
	*Timeline[rune]
}

// NewDrift parses a walled field and precomputes one snapshot per phase of
// the period lcm(innerHeight, innerWidth). In each snapshot walls are Wall,
// free cells are Open, a cell holding one obstacle shows its glyph and a
// cell holding several shows their count.
//
// Returns ErrNotPeriodic if the obstacle layout after one period differs
// from the initial layout.
func NewDrift(lines []string) (*Drift, error) {
	base, err := FromLines(lines)
	if err != nil {
		return nil, err
	}
	innerH, innerW := base.height-2, base.width-2
	if innerH <= 0 || innerW <= 0 {
		return nil, fmt.Errorf("%w: field %dx%d has no interior", ErrEmptyGrid, base.height, base.width)
	}

	var drifters []drifter
	for r, row := range base.cells {
		for c, v := range row {
			if d, ok := DriftGlyphs[v]; ok {
				drifters = append(drifters, drifter{at: Cell{Row: r, Col: c}, move: d})
			}
		}
	}

	period := lcm(innerH, innerW)
	snapshots := make([]*Grid[rune], 0, period)
	for t := 0; t <= period; t++ {
		snap := render(base, drifters)
		if t == period {
			if snap.Fingerprint() != snapshots[0].Fingerprint() {
				return nil, fmt.Errorf("%w: period %d", ErrNotPeriodic, period)
			}
			break
		}
		snapshots = append(snapshots, snap)
		for i := range drifters {
			drifters[i].at = step(drifters[i].at.Add(drifters[i].move), innerH, innerW)
		}
	}

	tl, err := NewTimeline(snapshots)
	if err != nil {
		return nil, err
	}
	return &Drift{Timeline: tl}, nil
}

// Gaps returns the open columns of row r in the initial snapshot.
func (d *Drift) Gaps(r int) []Cell {
	snap := d.SnapshotAt(0)
	var out []Cell
	for c := 0; c < snap.width; c++ {
		if v := snap.at(Cell{Row: r, Col: c}); v != Wall {
			out = append(out, Cell{Row: r, Col: c})
		}
	}
	return out
}

// step wraps a cell that drifted onto the border back into the interior.
func step(c Cell, innerH, innerW int) Cell {
	return Cell{Row: mod(c.Row-1, innerH) + 1, Col: mod(c.Col-1, innerW) + 1}
}

// render draws walls from base and the given drifter positions.
func render(base *Grid[rune], drifters []drifter) *Grid[rune] {
	snap := Map(base, func(_ Cell, v rune) rune {
		if v == Wall {
			return Wall
		}
		return Open
	})
	counts := make(map[Cell][]rune, len(drifters))
	for _, d := range drifters {
		counts[d.at] = append(counts[d.at], glyphOf(d.move))
	}
	for c, gl := range counts {
		if len(gl) == 1 {
			snap.cells[c.Row][c.Col] = gl[0]
		} else {
			snap.cells[c.Row][c.Col] = rune('0' + len(gl))
		}
	}
	return snap
}

func glyphOf(d Delta) rune {
	for g, m := range DriftGlyphs {
		if m == d {
			return g
		}
	}
	return '?'
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
