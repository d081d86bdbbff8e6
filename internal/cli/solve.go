package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/roundplan/internal/config"
	"github.com/katalvlaran/roundplan/internal/ctxlog"
	"github.com/katalvlaran/roundplan/internal/instance"
	"github.com/katalvlaran/roundplan/network"
	"github.com/katalvlaran/roundplan/rounds"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		input      string
		algo       string
		outDir     string
		timeout    time.Duration
		maxRounds  int
		components bool
		noMirror   bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Allocate update rounds and write the rounds and allocation files",
		Long: `Allocate update rounds for a network instance.

  exact    backtracking search for the minimum number of rounds
  greedy   first-fit in server order (fast, may use extra rounds)
  compare  run both and log the gap; the exact allocation is written`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			flags := cmd.Flags()
			if flags.Changed("algo") {
				cfg.Solver.Algorithm = algo
			}
			if flags.Changed("out-dir") {
				cfg.Output.Dir = outDir
			}
			if flags.Changed("timeout") {
				cfg.Solver.Timeout = timeout
			}
			if flags.Changed("max-rounds") {
				cfg.Solver.MaxRounds = maxRounds
			}
			if flags.Changed("components") {
				cfg.Solver.Components = components
			}
			if noMirror {
				cfg.Output.Mirror = false
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			g, err := loadInstance(cmd, input)
			if err != nil {
				return fmt.Errorf("load instance: %w", err)
			}

			return solve(cmd, cfg, g)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", instance.Stdin, "Instance file (- for stdin)")
	cmd.Flags().StringVar(&algo, "algo", string(rounds.AlgoExact), "Algorithm (exact, greedy, compare)")
	cmd.Flags().StringVar(&outDir, "out-dir", ".", "Directory for the rounds and allocation files")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Abort the search after this long (0 = no limit)")
	cmd.Flags().IntVar(&maxRounds, "max-rounds", 0, "Fail if more rounds are needed (0 = no limit)")
	cmd.Flags().BoolVar(&components, "components", false, "Search each connected component separately")
	cmd.Flags().BoolVar(&noMirror, "no-mirror", false, "Do not echo the artifacts to stdout")

	return cmd
}

func solve(cmd *cobra.Command, cfg config.Config, g *network.Graph) error {
	ctx := cmd.Context()
	if cfg.Solver.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Solver.Timeout)
		defer cancel()
	}
	logger := ctxlog.FromContext(ctx)
	opts := append(cfg.SolverOptions(), rounds.WithContext(ctx), rounds.WithLogger(logger))

	logger.Info("solving", "algorithm", cfg.Solver.Algorithm, "servers", g.VertexCount(), "connections", g.EdgeCount())
	start := time.Now()

	var (
		res rounds.Result
		err error
	)
	if strings.EqualFold(cfg.Solver.Algorithm, config.AlgoCompare) {
		var c rounds.Comparison
		if c, err = rounds.Compare(g, opts...); err == nil {
			logger.Info("comparison", "greedy_rounds", c.Greedy.Rounds, "exact_rounds", c.Exact.Rounds, "gap", c.Gap)
			res = c.Exact
		}
	} else {
		var algo rounds.Algorithm
		if algo, err = rounds.ParseAlgorithm(strings.ToLower(cfg.Solver.Algorithm)); err != nil {
			return err
		}
		if algo == rounds.AlgoGreedy {
			res, err = rounds.Greedy(g, opts...)
		} else {
			res, err = rounds.Minimum(g, opts...)
		}
	}
	if err != nil {
		return fmt.Errorf("solve: %w", err)
	}
	if err = rounds.Validate(g); err != nil {
		return fmt.Errorf("solve: %s allocation rejected: %w", res.Algorithm, err)
	}

	mirror := cmd.OutOrStdout()
	if !cfg.Output.Mirror {
		mirror = nil
	}
	roundsPath, allocPath, err := instance.SaveFiles(cfg.Output, res.Rounds, res.Allocation, mirror)
	if err != nil {
		return fmt.Errorf("save allocation: %w", err)
	}

	logger.Info("allocation saved",
		"algorithm", res.Algorithm,
		"rounds", res.Rounds,
		"elapsed", time.Since(start),
		"rounds_file", roundsPath,
		"allocation_file", allocPath,
	)

	return nil
}
