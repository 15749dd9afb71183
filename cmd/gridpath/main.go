// Command gridpath solves grid pathfinding puzzles from their text input.
//
//	gridpath risk input.txt
//	gridpath all --hills h.txt --risk r.txt --valley v.txt --basins b.txt
package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/logging"
	"github.com/katalvlaran/gridpath/internal/puzzles"
)

// app carries the state shared by all commands of one invocation.
type app struct {
	verbose    bool
	configPath string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "gridpath",
		Short: "Solve grid pathfinding puzzles",
		Long: `gridpath parses a puzzle input, runs the shared shortest-path engine on it
and prints both answers.

Puzzles:
  hills   fewest steps up a height map
  risk    lowest total risk across a digit map and its tiled expansion
  valley  fastest walk through drifting obstacles
  basins  low points and the largest basins of a height map`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "gridpath.yaml", "Configuration file")

	for _, name := range puzzles.Names() {
		root.AddCommand(a.puzzleCmd(name))
	}
	root.AddCommand(a.allCmd())
	return root
}

// setup loads the configuration and builds the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	level := cfg.Log.Level
	if a.verbose {
		level = "debug"
	}
	logger, err := logging.New(level, cfg.Log.Development)
	if err != nil {
		return err
	}
	a.cfg, a.logger = cfg, logger
	a.logger.Debug("configuration loaded", zap.String("path", a.configPath), zap.Any("settings", cfg.Settings()))
	return nil
}

func (a *app) puzzleCmd(name string) *cobra.Command {
	return &cobra.Command{
		Use:   name + " <input-file>",
		Short: "Solve the " + name + " puzzle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ans, err := puzzles.SolveFile(name, args[0], a.cfg.Settings(), a.logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Solution for part 1 is %d\n", ans.Part1)
			fmt.Fprintf(cmd.OutOrStdout(), "Solution for part 2 is %d\n", ans.Part2)
			return nil
		},
	}
}

func (a *app) allCmd() *cobra.Command {
	paths := make(map[string]*string)
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Solve several puzzles in parallel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs := make(map[string]string)
			for name, p := range paths {
				if *p != "" {
					inputs[name] = *p
				}
			}
			if len(inputs) == 0 {
				return fmt.Errorf("no inputs given; use at least one of --%s", strings.Join(puzzles.Names(), ", --"))
			}
			answers, err := puzzles.SolveAll(context.Background(), inputs, a.cfg.Settings(), a.logger)
			if err != nil {
				return err
			}
			for _, name := range puzzles.Names() {
				if ans, ok := answers[name]; ok {
					fmt.Fprintf(cmd.OutOrStdout(), "%-7s %s\n", name, ans)
				}
			}
			return nil
		},
	}
	for _, name := range puzzles.Names() {
		paths[name] = cmd.Flags().String(name, "", "Input file for the "+name+" puzzle")
	}
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
