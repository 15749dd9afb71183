package puzzles

import (
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Sentinel errors for puzzle drivers.
var (
	// ErrBadInput indicates input that does not match the puzzle format.
	ErrBadInput = errors.New("puzzles: malformed input")

	// ErrUnknownPuzzle indicates a name with no registered solver.
	ErrUnknownPuzzle = errors.New("puzzles: unknown puzzle")

	// ErrBadSettings indicates settings no solver can run with.
	ErrBadSettings = errors.New("puzzles: invalid settings")
)

// Answer holds both answers of a puzzle.
type Answer struct {
	Part1 int64
	Part2 int64
}

func (a Answer) String() string {
	return fmt.Sprintf("part 1: %d, part 2: %d", a.Part1, a.Part2)
}

// Settings tunes the solvers.
//
// AStar       – guide searches with a Manhattan heuristic.
// RiskTiles   – the risk map repeats RiskTiles×RiskTiles times for part 2.
// RiskModulus – tiled risk values wrap to 1..RiskModulus.
// ValleyTrips – number of crossings chained for valley part 2.
// BasinsTop   – number of largest basins multiplied for basins part 2.
type Settings struct {
	AStar       bool
	RiskTiles   int
	RiskModulus int
	ValleyTrips int
	BasinsTop   int
}

// DefaultSettings returns the settings of the published puzzles.
func DefaultSettings() Settings {
	return Settings{
		AStar:       true,
		RiskTiles:   5,
		RiskModulus: 9,
		ValleyTrips: 3,
		BasinsTop:   3,
	}
}

// Validate reports the first setting out of range.
func (s Settings) Validate() error {
	switch {
	case s.RiskTiles < 1:
		return fmt.Errorf("%w: risk tiles %d", ErrBadSettings, s.RiskTiles)
	case s.RiskModulus < 1:
		return fmt.Errorf("%w: risk modulus %d", ErrBadSettings, s.RiskModulus)
	case s.ValleyTrips < 1:
		return fmt.Errorf("%w: valley trips %d", ErrBadSettings, s.ValleyTrips)
	case s.BasinsTop < 1:
		return fmt.Errorf("%w: basins top %d", ErrBadSettings, s.BasinsTop)
	}
	return nil
}

// Solver computes both answers of one puzzle from its input lines.
type Solver func(lines []string, s Settings, log *zap.Logger) (Answer, error)

// orNop returns log, or a no-op logger when log is nil.
func orNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

// Solvers maps puzzle names to their solvers.
var Solvers = map[string]Solver{
	"hills":  Hills,
	"risk":   Risk,
	"valley": Valley,
	"basins": Basins,
}
