package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mpavel/cliquer/pkg/cache"
	"github.com/mpavel/cliquer/pkg/errors"
	"github.com/mpavel/cliquer/pkg/graph"
	"github.com/mpavel/cliquer/pkg/solver"
)

// solveOpts holds the command-line flags for the solve command.
type solveOpts struct {
	target        int    // requested clique size; -1 uses the file hint, 0 searches for the maximum
	algorithms    string // comma-separated solver names, or "all"
	maxIterations int    // tabu iteration budget
	tenure        int    // tabu tenure
	seed          int64  // tabu seed; 0 draws a fresh one
	timeout       time.Duration
	noCache       bool
	output        string // JSON results file (stdout summary always printed)
}

// solveCommand creates the solve command.
func (c *CLI) solveCommand() *cobra.Command {
	opts := solveOpts{target: -1}

	cmd := &cobra.Command{
		Use:   "solve <graph.edgelist>",
		Short: "Search a graph for a k-clique",
		Long: `Search an edge-list graph for a clique of the requested size.

The target size comes from -k, falling back to a "# k: N" hint in the input
file, then to 5. Pass -k 0 to search for the maximum clique instead. Every
reported clique is re-checked by an independent validator before it is
printed.

Examples:
  cliquer solve graph.edgelist                      # target from file hint or 5
  cliquer solve graph.edgelist -k 7                 # explicit target
  cliquer solve graph.edgelist -k 0                 # maximum clique
  cliquer solve graph.edgelist --algo exact         # one solver only
  cliquer solve graph.edgelist --timeout 30s`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runSolve(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().IntVarP(&opts.target, "target", "k", opts.target, "clique size to find (0 = maximum clique)")
	cmd.Flags().StringVar(&opts.algorithms, "algo", algoAll, "solver(s): all, exact, greedy-coloring, tabu-search (comma-separated)")
	cmd.Flags().IntVar(&opts.maxIterations, "max-iterations", solver.DefaultMaxIterations, "tabu search iteration budget")
	cmd.Flags().IntVar(&opts.tenure, "tenure", solver.DefaultTenure, "tabu tenure in iterations")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "tabu random seed (0 = time-based)")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "abort solving after this duration")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable result caching")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "write results as JSON to this file")

	return cmd
}

func (c *CLI) runSolve(ctx context.Context, path string, opts solveOpts) error {
	logger := loggerFromContext(ctx)

	if err := errors.ValidatePath(path); err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}

	g, hints, err := loadGraph(ctx, runner.Cache, runner.Keyer, path, func(format string, args ...any) {
		logger.Warnf(format, args...)
	})
	if err != nil {
		return err
	}

	target := resolveTarget(opts.target, hints.Target)
	if err := errors.ValidateTarget(target); err != nil {
		return err
	}

	names := parseAlgorithms(opts.algorithms)
	tabuOpts := solver.TabuOptions{
		MaxIterations: opts.maxIterations,
		Tenure:        opts.tenure,
		Seed:          opts.seed,
	}
	solvers := make([]solver.Solver, 0, len(names))
	for _, name := range names {
		if err := errors.ValidateAlgorithmName(name); err != nil {
			return err
		}
		s, err := solver.ByName(name, tabuOpts)
		if err != nil {
			return err
		}
		solvers = append(solvers, s)
	}

	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	data, err := graph.MarshalGraph(g)
	if err != nil {
		return err
	}
	graphHash := cache.Hash(data)

	if target > 0 {
		logger.Infof("Searching for a %d-clique in %s", target, path)
	} else {
		logger.Infof("Searching for the maximum clique in %s", path)
	}
	printStats(g.NodeCount(), g.EdgeCount(), false)
	printNewline()

	prog := newProgress(logger)
	results := make([]solver.Result, 0, len(solvers))
	for _, s := range solvers {
		spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Running %s...", s.Name()))
		spinner.Start()

		res, hit, err := runner.SolveWithCacheInfo(ctx, g, graphHash, s, target, tabuOpts)
		spinner.Stop()
		if err != nil {
			// A timed-out solve still reports its incumbent clique.
			printWarning("%s aborted: %v", s.Name(), err)
		}
		if res.Found && !res.Valid {
			printWarning("%s reported a clique that failed validation", s.Name())
		}
		printResult(res, hit)
		results = append(results, res)
	}
	prog.done(fmt.Sprintf("Ran %d solver(s)", len(solvers)))

	printNewline()
	best := bestResult(results)
	if best.Found {
		printSuccess("Found a %d-clique", best.Size())
		printKeyValue("clique", formatClique(best.Clique))
		printKeyValue("algorithm", best.Algorithm)
	} else if best.Size() > 0 {
		printError("No clique of size %d found", target)
		printKeyValue("best partial", formatClique(best.Clique))
	} else {
		printError("No clique found")
	}

	if opts.output != "" {
		if err := writeResults(opts.output, path, graphHash, target, results); err != nil {
			return err
		}
		printFile(opts.output)
	}

	printNextStep("Visualize it", fmt.Sprintf("cliquer render %s -k %d", path, target))
	return nil
}

// bestResult picks the largest valid clique, preferring found results.
func bestResult(results []solver.Result) solver.Result {
	var best solver.Result
	for _, res := range results {
		if !res.Valid {
			continue
		}
		if res.Found != best.Found {
			if res.Found {
				best = res
			}
			continue
		}
		if res.Size() > best.Size() {
			best = res
		}
	}
	return best
}

// solveOutput is the JSON document written by --output.
type solveOutput struct {
	Input     string          `json:"input"`
	GraphHash string          `json:"graph_hash"`
	Target    int             `json:"target"`
	Results   []solver.Result `json:"results"`
}

func writeResults(path, input, graphHash string, target int, results []solver.Result) error {
	doc := solveOutput{
		Input:     input,
		GraphHash: graphHash,
		Target:    target,
		Results:   results,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
