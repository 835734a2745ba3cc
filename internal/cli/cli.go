// Package cli implements the cliquer command-line interface.
//
// This package provides commands for finding k-cliques in undirected graphs,
// generating synthetic datasets, running benchmark suites, rendering graphs
// with highlighted cliques, and serving the solvers over HTTP. The CLI is
// built using cobra and supports verbose logging via the charmbracelet/log
// library.
//
// # Commands
//
// The main commands are:
//   - solve: Search for a k-clique in an edge-list graph
//   - gen: Generate synthetic benchmark graphs
//   - bench: Run a benchmark suite and compare solvers
//   - render: Draw a graph (optionally with its clique highlighted)
//   - serve: Expose the solvers over HTTP
//   - cache: Manage the solver result cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mpavel/cliquer/pkg/bench"
	"github.com/mpavel/cliquer/pkg/buildinfo"
	"github.com/mpavel/cliquer/pkg/cache"
	"github.com/mpavel/cliquer/pkg/solver"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "cliquer"

	// algoAll selects every registered solver.
	algoAll = "all"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "cliquer",
		Short:        "Cliquer searches undirected graphs for k-cliques",
		Long:         `Cliquer finds cliques in undirected graphs using an exact branch-and-bound search plus greedy-coloring and tabu-search heuristics, and cross-checks every answer with an independent validator.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.solveCommand())
	root.AddCommand(c.genCommand())
	root.AddCommand(c.benchCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a bench runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*bench.Runner, error) {
	cch, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return bench.NewRunner(cch, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/cliquer/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Flag Helpers
// =============================================================================

// parseAlgorithms parses the --algo flag into solver names.
// Empty or "all" selects every registered solver.
func parseAlgorithms(s string) []string {
	if s == "" || s == algoAll {
		return solver.Names()
	}
	parts := strings.Split(s, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// resolveTarget picks the clique size to search for: an explicit flag value
// wins, then a k hint from the input file, then the standard default. A
// flag value of 0 selects maximum-clique mode.
func resolveTarget(flagValue, hint int) int {
	if flagValue >= 0 {
		return flagValue
	}
	if hint > 0 {
		return hint
	}
	return solver.DefaultTarget
}
