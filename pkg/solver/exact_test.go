package solver

import (
	"context"
	"slices"
	"testing"

	"github.com/mpavel/cliquer/pkg/graph"
)

// Scenario 1: the demo graph holds exactly one 5-clique, {0,1,2,3,4}.
func TestExactFindsPlantedClique(t *testing.T) {
	g := demoGraph()
	res, err := NewExact().Solve(context.Background(), g, 5)
	if err != nil {
		t.Fatalf("Solve error: %v", err)
	}
	if !res.Found {
		t.Fatal("found=false, want the planted 5-clique")
	}
	got := slices.Clone(res.Clique)
	slices.Sort(got)
	if want := []int{0, 1, 2, 3, 4}; !slices.Equal(got, want) {
		t.Errorf("clique = %v, want %v", got, want)
	}
	if res.Explored == 0 {
		t.Error("Explored should count recursive calls")
	}
}

// Scenario 4: single edge in a 3-node graph, no triangle exists.
func TestExactExhaustsWithoutTarget(t *testing.T) {
	g := graph.New(3)
	g.AddEdge(0, 1)
	res, err := NewExact().Solve(context.Background(), g, 3)
	if err != nil {
		t.Fatalf("Solve error: %v", err)
	}
	if res.Found {
		t.Errorf("found=true, but no 3-clique exists (clique %v)", res.Clique)
	}
	if res.Explored == 0 {
		t.Error("an exhausted search still explores nodes")
	}
}

func TestExactMaximumMode(t *testing.T) {
	tests := []struct {
		name string
		g    *graph.Graph
		want int
	}{
		{"demo graph", demoGraph(), 5},
		{"k6", completeGraph(6), 6},
		{"edgeless", graph.New(4), 1},
		{"empty", graph.New(0), 0},
		{"single edge", func() *graph.Graph { g := graph.New(3); g.AddEdge(0, 1); return g }(), 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := NewExact().Solve(context.Background(), tt.g, 0)
			if err != nil {
				t.Fatalf("Solve error: %v", err)
			}
			if res.Size() != tt.want {
				t.Errorf("max clique size = %d, want %d", res.Size(), tt.want)
			}
			wantFound := tt.g.NodeCount() > 0
			if res.Found != wantFound {
				t.Errorf("found = %v, want %v", res.Found, wantFound)
			}
		})
	}
}

// Exhaustiveness: found=false means no clique of that size exists,
// cross-checked against brute-force enumeration on small graphs.
func TestExactExhaustiveCrossCheck(t *testing.T) {
	for seed := int64(0); seed < 8; seed++ {
		g := randomGraph(12, 0.35, seed)
		for target := 2; target <= 6; target++ {
			res, err := NewExact().Solve(context.Background(), g, target)
			if err != nil {
				t.Fatalf("Solve error: %v", err)
			}
			want := bruteForceHasClique(g, target)
			if res.Found != want {
				t.Errorf("seed %d target %d: found = %v, brute force says %v",
					seed, target, res.Found, want)
			}
		}
	}
}

// The maximum-mode result must match brute force exactly.
func TestExactMaximumCrossCheck(t *testing.T) {
	for seed := int64(10); seed < 16; seed++ {
		g := randomGraph(13, 0.5, seed)
		res, err := NewExact().Solve(context.Background(), g, 0)
		if err != nil {
			t.Fatalf("Solve error: %v", err)
		}
		if want := bruteForceMaxClique(g); res.Size() != want {
			t.Errorf("seed %d: max clique = %d, brute force = %d", seed, res.Size(), want)
		}
	}
}

// noPruneMax is a reference branch-and-bound with the bound removed.
// Pruning must never change the answer, only the node count.
func noPruneMax(g *graph.Graph) (best []int, explored int64) {
	var current []int
	var rec func(cands []int)
	rec = func(cands []int) {
		explored++
		if len(current) > len(best) {
			best = slices.Clone(current)
		}
		for i, v := range cands {
			var next []int
			for _, u := range cands[i+1:] {
				if g.HasEdge(v, u) {
					next = append(next, u)
				}
			}
			current = append(current, v)
			rec(next)
			current = current[:len(current)-1]
		}
	}
	rec(nodesByDegree(g))
	return best, explored
}

func TestExactPruningPreservesResult(t *testing.T) {
	for seed := int64(20); seed < 25; seed++ {
		g := randomGraph(12, 0.5, seed)
		res, err := NewExact().Solve(context.Background(), g, 0)
		if err != nil {
			t.Fatalf("Solve error: %v", err)
		}
		ref, refExplored := noPruneMax(g)
		if res.Size() != len(ref) {
			t.Errorf("seed %d: pruned size %d != reference size %d", seed, res.Size(), len(ref))
		}
		if res.Explored > refExplored {
			t.Errorf("seed %d: pruning explored more nodes (%d) than reference (%d)",
				seed, res.Explored, refExplored)
		}
	}
}

func TestExactDeterministic(t *testing.T) {
	g := randomGraph(15, 0.4, 3)
	first, err := NewExact().Solve(context.Background(), g, 0)
	if err != nil {
		t.Fatalf("Solve error: %v", err)
	}
	second, err := NewExact().Solve(context.Background(), g, 0)
	if err != nil {
		t.Fatalf("Solve error: %v", err)
	}
	if !slices.Equal(first.Clique, second.Clique) || first.Explored != second.Explored {
		t.Error("exact solver should be fully deterministic")
	}
}

func TestExactCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res, err := NewExact().Solve(ctx, randomGraph(30, 0.9, 1), 0)
	if err == nil {
		t.Fatal("cancelled solve should return ctx error")
	}
	if res.Found {
		t.Error("immediately cancelled solve cannot claim success")
	}
}

func BenchmarkExactMaximum(b *testing.B) {
	g := randomGraph(40, 0.5, 42)
	s := NewExact()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Solve(context.Background(), g, 0); err != nil {
			b.Fatal(err)
		}
	}
}
