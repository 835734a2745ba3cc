package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mpavel/cliquer/pkg/gen"
	"github.com/mpavel/cliquer/pkg/graph"
)

// genOpts holds the command-line flags for the gen command.
type genOpts struct {
	nodes    int     // node count
	edgeProb float64 // edge probability for random graphs
	clique   int     // planted clique size
	count    int     // number of planted cliques
	seed     int64   // generator seed
	output   string  // output edge-list path
}

// genCommand creates the gen command with generator subcommands.
func (c *CLI) genCommand() *cobra.Command {
	opts := genOpts{nodes: 50, edgeProb: 0.3, clique: 5, count: 1, seed: 42}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate synthetic benchmark graphs",
		Long: `Generate synthetic graphs in edge-list format.

Generators:
  random    Erdős–Rényi G(n, p)
  planted   G(n, p) with one or more embedded k-cliques
  complete  the complete graph K_n
  demo      the fixed 15-node reference graph

Examples:
  cliquer gen random -n 100 -p 0.2 -o random.edgelist
  cliquer gen planted -n 80 -p 0.15 -k 6 --count 2 -o planted.edgelist
  cliquer gen demo -o demo.edgelist`,
	}

	cmd.PersistentFlags().IntVarP(&opts.nodes, "nodes", "n", opts.nodes, "node count")
	cmd.PersistentFlags().Float64VarP(&opts.edgeProb, "edge-prob", "p", opts.edgeProb, "edge probability")
	cmd.PersistentFlags().Int64Var(&opts.seed, "seed", opts.seed, "generator seed")
	cmd.PersistentFlags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")

	random := &cobra.Command{
		Use:   "random",
		Short: "Generate an Erdős–Rényi random graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g := gen.New(opts.seed).Random(opts.nodes, opts.edgeProb)
			return c.writeGenerated(g, &opts, 0)
		},
	}

	planted := &cobra.Command{
		Use:   "planted",
		Short: "Generate a random graph with planted k-cliques",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, cliques, err := gen.New(opts.seed).PlantedMany(opts.nodes, opts.edgeProb, opts.clique, opts.count)
			if err != nil {
				return err
			}
			for _, members := range cliques {
				printDetail("planted %d-clique at %s", len(members), formatClique(members))
			}
			return c.writeGenerated(g, &opts, opts.clique)
		},
	}
	planted.Flags().IntVarP(&opts.clique, "clique-size", "k", opts.clique, "planted clique size")
	planted.Flags().IntVar(&opts.count, "count", opts.count, "number of planted cliques")

	complete := &cobra.Command{
		Use:   "complete",
		Short: "Generate the complete graph K_n",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.writeGenerated(gen.Complete(opts.nodes), &opts, 0)
		},
	}

	demo := &cobra.Command{
		Use:   "demo",
		Short: "Generate the fixed 15-node reference graph",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.writeGenerated(gen.Demo(), &opts, 5)
		},
	}

	cmd.AddCommand(random, planted, complete, demo)
	return cmd
}

// writeGenerated writes the graph as an edge list to the output flag (or
// stdout) and prints stats. A non-zero target is recorded as a "# k:" hint
// so solve picks it up automatically.
func (c *CLI) writeGenerated(g *graph.Graph, opts *genOpts, target int) error {
	if opts.output == "" {
		return graph.WriteEdgeList(g, os.Stdout, target)
	}

	if err := graph.WriteEdgeListFile(g, opts.output, target); err != nil {
		return err
	}
	printSuccess("Generated graph")
	printStats(g.NodeCount(), g.EdgeCount(), false)
	printFile(opts.output)
	printNextStep("Solve it", fmt.Sprintf("cliquer solve %s", opts.output))
	return nil
}
