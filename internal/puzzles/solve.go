package puzzles

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/sync/errgroup"
)

// Names returns the registered puzzle names in sorted order.
func Names() []string {
	names := maps.Keys(Solvers)
	sort.Strings(names)
	return names
}

// Solve reads the input of the named puzzle from r and solves it.
func Solve(name string, r io.Reader, s Settings, log *zap.Logger) (Answer, error) {
	solver, ok := Solvers[name]
	if !ok {
		return Answer{}, fmt.Errorf("%w: %q", ErrUnknownPuzzle, name)
	}
	lines, err := ReadLines(r)
	if err != nil {
		return Answer{}, err
	}
	return solver(lines, s, orNop(log).Named(name))
}

// SolveFile solves the named puzzle with the input stored at path.
func SolveFile(name, path string, s Settings, log *zap.Logger) (Answer, error) {
	f, err := os.Open(path)
	if err != nil {
		return Answer{}, fmt.Errorf("puzzles: %w", err)
	}
	defer f.Close()
	return Solve(name, f, s, log)
}

// SolveAll solves every puzzle in inputs (name → input path) concurrently.
// The first failure cancels the puzzles not yet started and is returned.
func SolveAll(ctx context.Context, inputs map[string]string, s Settings, log *zap.Logger) (map[string]Answer, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	var (
		mu  sync.Mutex
		out = make(map[string]Answer, len(inputs))
	)
	g, ctx := errgroup.WithContext(ctx)
	for name, path := range inputs {
		name, path := name, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			ans, err := SolveFile(name, path, s, log)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			mu.Lock()
			out[name] = ans
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
