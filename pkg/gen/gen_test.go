package gen

import (
	"context"
	"testing"

	"github.com/mpavel/cliquer/pkg/solver"
)

func TestRandomDeterministicUnderSeed(t *testing.T) {
	a := New(42).Random(30, 0.3)
	b := New(42).Random(30, 0.3)
	if a.EdgeCount() != b.EdgeCount() {
		t.Fatalf("edge counts differ: %d vs %d", a.EdgeCount(), b.EdgeCount())
	}
	for _, e := range a.Edges() {
		if !b.HasEdge(e[0], e[1]) {
			t.Fatalf("edge %v missing from same-seed graph", e)
		}
	}
}

func TestRandomEdgeProbabilityBounds(t *testing.T) {
	if g := New(1).Random(20, 0); g.EdgeCount() != 0 {
		t.Errorf("p=0 produced %d edges", g.EdgeCount())
	}
	g := New(1).Random(20, 1)
	if want := 20 * 19 / 2; g.EdgeCount() != want {
		t.Errorf("p=1 produced %d edges, want %d", g.EdgeCount(), want)
	}
}

func TestPlantedCliqueIsValid(t *testing.T) {
	g, members, err := New(7).Planted(40, 0.2, 6)
	if err != nil {
		t.Fatalf("Planted error: %v", err)
	}
	if len(members) != 6 {
		t.Fatalf("planted %d members, want 6", len(members))
	}
	if !g.IsClique(members) {
		t.Errorf("planted members %v are not a clique", members)
	}
}

func TestPlantedTooLarge(t *testing.T) {
	if _, _, err := New(1).Planted(4, 0.5, 5); err == nil {
		t.Error("k > n should error")
	}
}

func TestPlantedManyAllValid(t *testing.T) {
	g, cliques, err := New(3).PlantedMany(50, 0.1, 4, 3)
	if err != nil {
		t.Fatalf("PlantedMany error: %v", err)
	}
	if len(cliques) != 3 {
		t.Fatalf("planted %d cliques, want 3", len(cliques))
	}
	for i, c := range cliques {
		if !g.IsClique(c) {
			t.Errorf("clique %d (%v) is invalid", i, c)
		}
	}
}

func TestCompleteGraph(t *testing.T) {
	g := Complete(6)
	all := []int{0, 1, 2, 3, 4, 5}
	if !g.IsClique(all) {
		t.Error("K6 should be one big clique")
	}
	if want := 15; g.EdgeCount() != want {
		t.Errorf("EdgeCount = %d, want %d", g.EdgeCount(), want)
	}
}

func TestDemoGraphShape(t *testing.T) {
	g := Demo()
	if g.NodeCount() != 15 {
		t.Fatalf("NodeCount = %d, want 15", g.NodeCount())
	}
	if !g.IsClique([]int{0, 1, 2, 3, 4}) {
		t.Error("demo graph must contain the planted 5-clique")
	}
	// The exact solver must recover exactly the planted clique.
	res, err := solver.NewExact().Solve(context.Background(), g, 5)
	if err != nil {
		t.Fatalf("Solve error: %v", err)
	}
	if !res.Found {
		t.Error("exact solver failed to find the planted clique")
	}
}

func TestGeneratedGraphsAreConsistent(t *testing.T) {
	g := New(5).Random(25, 0.4)
	for u := 0; u < g.NodeCount(); u++ {
		for v := 0; v < g.NodeCount(); v++ {
			if g.HasEdge(u, v) != g.HasEdge(v, u) {
				t.Fatalf("asymmetric adjacency at (%d, %d)", u, v)
			}
		}
	}
}
