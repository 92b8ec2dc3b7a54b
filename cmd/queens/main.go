// Command queens solves region-placement puzzles from text grids or
// zstd-compressed puzzle packs.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/queens"
	"github.com/hupe1980/queens/solver"
	"github.com/hupe1980/queens/store"
)

var (
	gridArg  string
	budget   uint64
	timeout  time.Duration
	verbose  bool
	jsonLogs bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "queens [files...]",
		Short: "Solve region-placement puzzles",
		Long: `Solve region-placement puzzles: one marker per row, column, and region,
no two markers diagonally adjacent.

Puzzles are text grids, one symbol per cell, identical symbols forming a
region. Inputs are grid files, .qzp puzzle packs, or an inline grid:

  queens --grid "11111 22222 33333 44444 55555"
  queens puzzles/daily.txt
  queens --budget 1000000 packs/archive.qzp`,
		Args: cobra.ArbitraryArgs,
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&gridArg, "grid", "g", "", "Inline text-grid puzzle definition")
	rootCmd.Flags().Uint64Var(&budget, "budget", 0, "Attempt budget, 0 for unbounded")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 0, "Overall solve timeout, 0 for none")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&jsonLogs, "json", false, "Emit JSON-formatted logs")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if gridArg == "" && len(args) == 0 {
		return fmt.Errorf("nothing to solve: pass --grid or at least one file")
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	logger := buildLogger()

	if gridArg != "" {
		return solveOne(ctx, "inline", gridArg, logger)
	}

	// Files are independent; fan out across cores. Output stays serialized
	// per puzzle via the printer mutex in solveOne.
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for _, path := range args {
		g.Go(func() error {
			return solveFile(ctx, path, logger)
		})
	}
	return g.Wait()
}

func solveFile(ctx context.Context, path string, logger *queens.Logger) error {
	if filepath.Ext(path) == ".qzp" {
		pack, err := store.LoadPack(path)
		if err != nil {
			return err
		}
		for _, entry := range pack.Entries {
			name := fmt.Sprintf("%s: %s", path, entry.Name)
			if err := solveOne(ctx, name, entry.Grid, logger); err != nil {
				return err
			}
		}
		return nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return solveOne(ctx, path, string(raw), logger)
}

var printMu sync.Mutex

func solveOne(ctx context.Context, name, grid string, logger *queens.Logger) error {
	start := time.Now()
	result, err := queens.SolveGrid(ctx, strings.TrimSpace(grid),
		queens.WithLogger(logger),
		queens.WithMaxAttempts(budget),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	elapsed := time.Since(start)

	printMu.Lock()
	defer printMu.Unlock()

	switch result.Outcome {
	case solver.OutcomeFound:
		fmt.Printf("%s: solved in %d attempts (%s)\n", name, result.Attempts, elapsed.Round(time.Microsecond))
		fmt.Print(result.Board)
	case solver.OutcomeExhausted:
		fmt.Printf("%s: no solution, %d attempts exhausted (%s)\n", name, result.Attempts, elapsed.Round(time.Microsecond))
	case solver.OutcomeBudgetExceeded:
		fmt.Printf("%s: stopped at budget after %d attempts (%s) - unsolvability NOT proven\n",
			name, result.Attempts, elapsed.Round(time.Microsecond))
	}
	return nil
}

func buildLogger() *queens.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	if jsonLogs {
		return queens.NewJSONLogger(level)
	}
	return queens.NewTextLogger(level)
}
