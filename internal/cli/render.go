package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mpavel/cliquer/pkg/bench"
	"github.com/mpavel/cliquer/pkg/cache"
	"github.com/mpavel/cliquer/pkg/errors"
	"github.com/mpavel/cliquer/pkg/graph"
	"github.com/mpavel/cliquer/pkg/render"
	"github.com/mpavel/cliquer/pkg/solver"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	format    string // dot, svg, or png
	output    string // output path; derived from the input when empty
	target    int    // clique size to find and highlight; -1 uses the file hint
	algorithm string // solver used for highlighting
	plain     bool   // skip solving, draw the bare graph
	engine    string // graphviz layout engine
	noCache   bool
}

// renderCommand creates the render command.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: "svg", target: -1, algorithm: solver.NameExact}

	cmd := &cobra.Command{
		Use:   "render <graph.edgelist>",
		Short: "Draw a graph with its clique highlighted",
		Long: `Render an edge-list graph to DOT, SVG, or PNG.

By default the graph is solved first and the found clique is highlighted:
members are filled and the edges among them drawn bold. Use --plain to draw
the bare graph.

Examples:
  cliquer render graph.edgelist                    # solve, highlight, write graph.svg
  cliquer render graph.edgelist -f png -o out.png
  cliquer render graph.edgelist -f dot             # DOT text to stdout
  cliquer render graph.edgelist --plain`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateRenderFormat(opts.format); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: dot, svg, png")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (derived from input if empty; dot prints to stdout)")
	cmd.Flags().IntVarP(&opts.target, "target", "k", opts.target, "clique size to highlight (0 = maximum clique)")
	cmd.Flags().StringVar(&opts.algorithm, "algo", opts.algorithm, "solver used for highlighting")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "draw the graph without solving")
	cmd.Flags().StringVar(&opts.engine, "engine", "", "graphviz layout engine (default neato)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable result caching")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, path string, opts renderOpts) error {
	logger := loggerFromContext(ctx)

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}

	g, hints, err := loadGraph(ctx, runner.Cache, runner.Keyer, path, func(format string, args ...any) {
		logger.Warnf(format, args...)
	})
	if err != nil {
		return err
	}

	var clique []int
	label := filepath.Base(path)
	if !opts.plain {
		target := resolveTarget(opts.target, hints.Target)
		res, err := c.solveForRender(ctx, runner, g, target, opts)
		if err != nil {
			return err
		}
		if res.Found {
			clique = res.Clique
			label = fmt.Sprintf("%s · %d-clique (%s)", label, res.Size(), res.Algorithm)
		} else {
			printWarning("No clique of size %d found, rendering without highlight", target)
		}
	}

	dot := render.ToDOT(g, clique, render.Options{Label: label, Engine: opts.engine})

	if opts.format == "dot" && opts.output == "" {
		fmt.Print(dot)
		return nil
	}

	out := opts.output
	if out == "" {
		out = strings.TrimSuffix(path, filepath.Ext(path)) + "." + opts.format
	}

	var data []byte
	switch opts.format {
	case "dot":
		data = []byte(dot)
	case "svg":
		data, err = render.RenderSVG(ctx, dot)
	case "png":
		data, err = render.RenderPNG(ctx, dot)
	}
	if err != nil {
		return fmt.Errorf("render %s: %w", opts.format, err)
	}

	if err := os.WriteFile(out, data, 0644); err != nil {
		return err
	}
	printSuccess("Rendered graph")
	printStats(g.NodeCount(), g.EdgeCount(), false)
	printFile(out)
	return nil
}

// solveForRender finds the clique to highlight, going through the cached
// runner so render and solve share results.
func (c *CLI) solveForRender(ctx context.Context, runner *bench.Runner, g *graph.Graph, target int, opts renderOpts) (solver.Result, error) {
	s, err := solver.ByName(opts.algorithm, solver.TabuOptions{})
	if err != nil {
		return solver.Result{}, err
	}

	data, err := graph.MarshalGraph(g)
	if err != nil {
		return solver.Result{}, err
	}

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Solving with %s...", s.Name()))
	spinner.Start()
	res, _, err := runner.SolveWithCacheInfo(ctx, g, cache.Hash(data), s, target, solver.TabuOptions{})
	spinner.Stop()
	return res, err
}
