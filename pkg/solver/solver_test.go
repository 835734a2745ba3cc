package solver

import (
	"context"
	"math/rand"
	"testing"

	"github.com/mpavel/cliquer/pkg/graph"
)

// demoGraph is the canonical 15-node test graph: a 5-clique on {0..4}
// plus a chain of extra edges into nodes 5-14.
func demoGraph() *graph.Graph {
	g := graph.New(15)
	for i := 0; i < 5; i++ {
		for j := i + 1; j < 5; j++ {
			g.AddEdge(i, j)
		}
	}
	chain := [][2]int{
		{4, 5}, {5, 6}, {6, 7}, {7, 8}, {1, 8}, {2, 9}, {9, 10},
		{10, 11}, {11, 12}, {12, 13}, {13, 14}, {3, 10},
	}
	for _, e := range chain {
		g.AddEdge(e[0], e[1])
	}
	return g
}

func completeGraph(n int) *graph.Graph {
	g := graph.New(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.AddEdge(i, j)
		}
	}
	return g
}

// randomGraph builds a deterministic G(n, p) for cross-check tests.
func randomGraph(n int, p float64, seed int64) *graph.Graph {
	rng := rand.New(rand.NewSource(seed))
	g := graph.New(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				g.AddEdge(i, j)
			}
		}
	}
	return g
}

// bruteForceHasClique reports whether g contains a clique of exactly size k
// by enumerating all k-subsets. Only usable for small n.
func bruteForceHasClique(g *graph.Graph, k int) bool {
	n := g.NodeCount()
	if k == 0 {
		return true
	}
	if k > n {
		return false
	}
	subset := make([]int, 0, k)
	var rec func(start int) bool
	rec = func(start int) bool {
		if len(subset) == k {
			return g.IsClique(subset)
		}
		for v := start; v < n; v++ {
			subset = append(subset, v)
			if rec(v + 1) {
				return true
			}
			subset = subset[:len(subset)-1]
		}
		return false
	}
	return rec(0)
}

// bruteForceMaxClique returns the maximum clique size by brute force.
func bruteForceMaxClique(g *graph.Graph) int {
	for k := g.NodeCount(); k > 0; k-- {
		if bruteForceHasClique(g, k) {
			return k
		}
	}
	return 0
}

func allSolvers() []Solver {
	return All(TabuOptions{Seed: 1})
}

// Scenario 2: empty graph, all solvers report found=false.
func TestAllSolversEmptyGraph(t *testing.T) {
	g := graph.New(10)
	for _, s := range allSolvers() {
		t.Run(s.Name(), func(t *testing.T) {
			res, err := s.Solve(context.Background(), g, 2)
			if err != nil {
				t.Fatalf("Solve error: %v", err)
			}
			if res.Found {
				t.Errorf("found=true on an edgeless graph, clique %v", res.Clique)
			}
		})
	}
}

// Scenario 3: K6, target 6, every solver returns all six nodes.
func TestAllSolversCompleteK6(t *testing.T) {
	g := completeGraph(6)
	for _, s := range allSolvers() {
		t.Run(s.Name(), func(t *testing.T) {
			res, err := s.Solve(context.Background(), g, 6)
			if err != nil {
				t.Fatalf("Solve error: %v", err)
			}
			if !res.Found {
				t.Fatal("found=false on K6 with target 6")
			}
			if res.Size() != 6 {
				t.Errorf("clique size = %d, want 6", res.Size())
			}
			if !Validate(g, res.Clique) {
				t.Errorf("result failed validation: %v", res.Clique)
			}
		})
	}
}

// Every found=true result must pass the validator (the core invariant).
func TestFoundImpliesValid(t *testing.T) {
	graphs := map[string]*graph.Graph{
		"demo":    demoGraph(),
		"k6":      completeGraph(6),
		"sparse":  randomGraph(20, 0.2, 7),
		"dense":   randomGraph(20, 0.7, 8),
		"single":  graph.New(1),
		"no-edge": graph.New(5),
	}
	for name, g := range graphs {
		for _, s := range allSolvers() {
			for _, target := range []int{0, 2, 3, 5} {
				res, err := s.Solve(context.Background(), g, target)
				if err != nil {
					t.Fatalf("%s/%s: Solve error: %v", name, s.Name(), err)
				}
				if res.Found && !Validate(g, res.Clique) {
					t.Errorf("%s/%s target=%d: found=true but invalid clique %v",
						name, s.Name(), target, res.Clique)
				}
				if res.Found != (res.Found && res.Valid) {
					t.Errorf("%s/%s target=%d: Found/Valid inconsistent", name, s.Name(), target)
				}
			}
		}
	}
}

// Heuristics can never beat the exact solver in maximum mode.
func TestHeuristicsNeverBeatExact(t *testing.T) {
	exact := NewExact()
	for seed := int64(0); seed < 5; seed++ {
		g := randomGraph(18, 0.4, seed)
		exactRes, err := exact.Solve(context.Background(), g, 0)
		if err != nil {
			t.Fatalf("exact error: %v", err)
		}
		for _, s := range []Solver{NewGreedy(), NewTabu(TabuOptions{Seed: seed + 1})} {
			res, err := s.Solve(context.Background(), g, 0)
			if err != nil {
				t.Fatalf("%s error: %v", s.Name(), err)
			}
			if res.Size() > exactRes.Size() {
				t.Errorf("seed %d: %s found %d > exact %d",
					seed, s.Name(), res.Size(), exactRes.Size())
			}
		}
	}
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		s, err := ByName(name, TabuOptions{})
		if err != nil {
			t.Fatalf("ByName(%q) error: %v", name, err)
		}
		if s.Name() != name {
			t.Errorf("ByName(%q).Name() = %q", name, s.Name())
		}
	}
	if _, err := ByName("simulated-annealing", TabuOptions{}); err == nil {
		t.Error("unknown name should error")
	}
}
