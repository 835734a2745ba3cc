package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mpavel/cliquer/pkg/bench"
	"github.com/mpavel/cliquer/pkg/cache"
	"github.com/mpavel/cliquer/pkg/store"
)

// benchOpts holds the command-line flags for the bench command.
type benchOpts struct {
	noCache     bool
	redisURL    string // Redis cache backend instead of the file cache
	mongoURI    string // MongoDB run history
	jsonOut     string // write the full report as JSON
	interactive bool   // browse results in a TUI after the run
}

// benchCommand creates the bench command.
func (c *CLI) benchCommand() *cobra.Command {
	var opts benchOpts

	cmd := &cobra.Command{
		Use:   "bench <suite.toml>",
		Short: "Run a benchmark suite and compare solvers",
		Long: `Run every dataset of a TOML benchmark suite with every configured solver.

Results are cached by graph content, so re-running a suite only recomputes
datasets whose graphs or parameters changed. With --mongo, each dataset's
results are also appended to a durable run history.

Example suite:

  [defaults]
  target = 5
  algorithms = ["exact", "tabu-search"]
  seed = 42

  [[dataset]]
  name = "demo"
  generator = "demo"

  [[dataset]]
  name = "web-graph"
  file = "data/web.edgelist"
  target = 7`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runBench(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable result caching")
	cmd.Flags().StringVar(&opts.redisURL, "redis", "", "Redis URL for the result cache (default: file cache)")
	cmd.Flags().StringVar(&opts.mongoURI, "mongo", "", "MongoDB URI for run history")
	cmd.Flags().StringVar(&opts.jsonOut, "json", "", "write the full report as JSON to this file")
	cmd.Flags().BoolVarP(&opts.interactive, "interactive", "i", false, "browse results interactively after the run")

	return cmd
}

func (c *CLI) runBench(ctx context.Context, suitePath string, opts benchOpts) error {
	logger := loggerFromContext(ctx)

	suite, err := bench.LoadSuite(suitePath)
	if err != nil {
		return err
	}
	suite.ResolvePaths()
	logger.Infof("Loaded suite %s", suite)

	runner, err := c.benchRunner(ctx, opts)
	if err != nil {
		return err
	}
	defer runner.Cache.Close()
	if runner.Store != nil {
		defer runner.Store.Close(context.Background())
	}

	prog := newProgress(logger)
	report, err := runner.RunSuite(ctx, suite)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Benchmarked %d dataset(s)", len(report.Entries)))

	printNewline()
	fmt.Println(renderReportTable(report))
	printNewline()
	printDetail("run %s · %d cache hit(s) · %d/%d found",
		report.RunID, report.TotalCacheHits(), report.FoundCount(), len(report.Entries))

	if opts.jsonOut != "" {
		data, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.jsonOut, append(data, '\n'), 0644); err != nil {
			return err
		}
		printFile(opts.jsonOut)
	}

	if opts.interactive {
		model := NewReportModel(report)
		if _, err := tea.NewProgram(model).Run(); err != nil {
			return fmt.Errorf("interactive browser: %w", err)
		}
	}

	return nil
}

// benchRunner assembles the runner from the bench flags: cache backend,
// optional Mongo history, shared logger.
func (c *CLI) benchRunner(ctx context.Context, opts benchOpts) (*bench.Runner, error) {
	var cch cache.Cache
	var err error
	switch {
	case opts.noCache:
		cch = cache.NewNullCache()
	case opts.redisURL != "":
		cch, err = cache.NewRedisCache(ctx, opts.redisURL)
		if err != nil {
			return nil, fmt.Errorf("redis cache: %w", err)
		}
	default:
		cch, err = newCache(false)
		if err != nil {
			return nil, err
		}
	}

	runner := bench.NewRunner(cch, nil, c.Logger)

	if opts.mongoURI != "" {
		st, err := store.NewMongoStore(ctx, opts.mongoURI)
		if err != nil {
			cch.Close()
			return nil, fmt.Errorf("mongo store: %w", err)
		}
		runner.Store = st
	}

	return runner, nil
}
