// Package gen produces synthetic graphs for exercising and benchmarking
// the clique solvers: Erdős–Rényi random graphs, graphs with planted
// cliques, complete graphs, and the fixed demo graph used throughout the
// test suite.
//
// A Generator owns its random source; the same seed always reproduces the
// same graph. No process-global random state is touched.
package gen

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/mpavel/cliquer/pkg/graph"
)

// Generator creates synthetic graphs from a private seeded source.
type Generator struct {
	rng *rand.Rand
}

// New creates a generator. A seed of 0 produces an unseeded-style
// generator only in the sense that callers who want variability should
// pass a varying seed; the generator itself is always deterministic for
// a given seed value.
func New(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Random generates an Erdős–Rényi G(n, p) graph: every unordered pair is
// an edge independently with probability p.
func (gen *Generator) Random(n int, p float64) *graph.Graph {
	g := graph.New(n)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			if gen.rng.Float64() < p {
				g.AddEdge(u, v)
			}
		}
	}
	return g
}

// Planted generates G(n, p) with a k-clique embedded on k random nodes
// and returns the graph together with the planted member set (ascending).
// It returns an error if k exceeds n.
func (gen *Generator) Planted(n int, p float64, k int) (*graph.Graph, []int, error) {
	if k > n {
		return nil, nil, fmt.Errorf("cannot plant a %d-clique in %d nodes", k, n)
	}
	g := gen.Random(n, p)
	members := gen.rng.Perm(n)[:k]
	plantClique(g, members)
	return g, sorted(members), nil
}

// PlantedMany embeds count k-cliques, each on an independently drawn
// random node set (overlaps allowed, as in the original datasets), and
// returns the member sets.
func (gen *Generator) PlantedMany(n int, p float64, k, count int) (*graph.Graph, [][]int, error) {
	if k > n {
		return nil, nil, fmt.Errorf("cannot plant a %d-clique in %d nodes", k, n)
	}
	g := gen.Random(n, p)
	cliques := make([][]int, 0, count)
	for i := 0; i < count; i++ {
		members := gen.rng.Perm(n)[:k]
		plantClique(g, members)
		cliques = append(cliques, sorted(members))
	}
	return g, cliques, nil
}

// Complete generates K_n.
func Complete(n int) *graph.Graph {
	g := graph.New(n)
	for u := 0; u < n; u++ {
		for v := u + 1; v < n; v++ {
			g.AddEdge(u, v)
		}
	}
	return g
}

// Demo generates the fixed 15-node reference graph: a 5-clique on
// {0,1,2,3,4} with a chain of extra edges through nodes 5-14. It is the
// smallest graph on which all three solvers disagree interestingly about
// effort while agreeing on the answer.
func Demo() *graph.Graph {
	g := graph.New(15)
	plantClique(g, []int{0, 1, 2, 3, 4})
	chain := [][2]int{
		{4, 5}, {5, 6}, {6, 7}, {7, 8}, {1, 8}, {2, 9}, {9, 10},
		{10, 11}, {11, 12}, {12, 13}, {13, 14}, {3, 10},
	}
	for _, e := range chain {
		g.AddEdge(e[0], e[1])
	}
	return g
}

// plantClique adds every edge among members.
func plantClique(g *graph.Graph, members []int) {
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			g.AddEdge(members[i], members[j])
		}
	}
}

func sorted(nodes []int) []int {
	out := slices.Clone(nodes)
	slices.Sort(out)
	return out
}
