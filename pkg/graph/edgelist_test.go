package graph

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestReadEdgeListWithHints(t *testing.T) {
	input := `# Generated dataset
# n_nodes: 5
# n_edges: 4
# k: 3
0 1
1 2
0 2
3 4
`
	g, hints, err := ReadEdgeList(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("ReadEdgeList error: %v", err)
	}
	if hints.Nodes != 5 || hints.Edges != 4 || hints.Target != 3 {
		t.Errorf("hints = %+v, want {5 4 3}", hints)
	}
	if g.NodeCount() != 5 || g.EdgeCount() != 4 {
		t.Errorf("graph has %d nodes / %d edges, want 5 / 4", g.NodeCount(), g.EdgeCount())
	}
	if !g.IsClique([]int{0, 1, 2}) {
		t.Error("{0,1,2} should be a triangle")
	}
}

func TestReadEdgeListHeaderForm(t *testing.T) {
	input := "3 1\n0 1\n"
	g, hints, err := ReadEdgeList(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("ReadEdgeList error: %v", err)
	}
	if hints.Nodes != 3 || hints.Edges != 1 {
		t.Errorf("hints = %+v, want {3 1 0}", hints)
	}
	if !g.HasEdge(0, 1) {
		t.Error("edge (0,1) missing")
	}
}

func TestReadEdgeListHintTolerance(t *testing.T) {
	// Whitespace-tolerant, colon optional.
	input := "#n_nodes 4\n#  k :  2\n0 1\n"
	g, hints, err := ReadEdgeList(strings.NewReader(input), nil)
	if err != nil {
		t.Fatalf("ReadEdgeList error: %v", err)
	}
	if hints.Nodes != 4 || hints.Target != 2 {
		t.Errorf("hints = %+v, want nodes 4, target 2", hints)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount = %d, want 1", g.EdgeCount())
	}
}

func TestReadEdgeListRecoversFromBadLines(t *testing.T) {
	input := `# n_nodes: 3
0 1
banana
2 2
0 99
1 2
`
	var warnings int
	g, _, err := ReadEdgeList(strings.NewReader(input), func(string, ...any) { warnings++ })
	if err != nil {
		t.Fatalf("malformed lines must not be fatal: %v", err)
	}
	if g.EdgeCount() != 2 {
		t.Errorf("EdgeCount = %d, want 2", g.EdgeCount())
	}
	if warnings != 3 {
		t.Errorf("got %d warnings, want 3 (bad token, self-loop, out of range)", warnings)
	}
}

func TestReadEdgeListMissingNodeCount(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty input", ""},
		{"comments only", "# just a comment\n"},
		{"non-numeric header", "a b\n0 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := ReadEdgeList(strings.NewReader(tt.input), nil)
			if !errors.Is(err, ErrMissingNodeCount) {
				t.Errorf("err = %v, want ErrMissingNodeCount", err)
			}
		})
	}
}

func TestReadEdgeListNoEdges(t *testing.T) {
	g, _, err := ReadEdgeList(strings.NewReader("# n_nodes: 10\n"), nil)
	if err != nil {
		t.Fatalf("ReadEdgeList error: %v", err)
	}
	if g.NodeCount() != 10 || g.EdgeCount() != 0 {
		t.Errorf("got %d nodes / %d edges, want 10 / 0", g.NodeCount(), g.EdgeCount())
	}
}

func TestEdgeListRoundTrip(t *testing.T) {
	g := New(5)
	g.AddEdge(0, 1)
	g.AddEdge(1, 2)
	g.AddEdge(3, 4)

	var buf bytes.Buffer
	if err := WriteEdgeList(g, &buf, 3); err != nil {
		t.Fatalf("WriteEdgeList error: %v", err)
	}

	back, hints, err := ReadEdgeList(&buf, nil)
	if err != nil {
		t.Fatalf("ReadEdgeList error: %v", err)
	}
	if hints.Target != 3 {
		t.Errorf("target hint = %d, want 3", hints.Target)
	}
	if back.NodeCount() != g.NodeCount() || back.EdgeCount() != g.EdgeCount() {
		t.Errorf("round trip changed shape: %d/%d vs %d/%d",
			back.NodeCount(), back.EdgeCount(), g.NodeCount(), g.EdgeCount())
	}
	for _, e := range g.Edges() {
		if !back.HasEdge(e[0], e[1]) {
			t.Errorf("edge %v lost in round trip", e)
		}
	}
}

func TestMarshalGraphDeterministic(t *testing.T) {
	g := New(4)
	g.AddEdge(2, 0)
	g.AddEdge(1, 3)

	d1, err := MarshalGraph(g)
	if err != nil {
		t.Fatalf("MarshalGraph error: %v", err)
	}
	d2, _ := MarshalGraph(g)
	if !bytes.Equal(d1, d2) {
		t.Error("MarshalGraph should be deterministic")
	}

	back, err := UnmarshalGraph(d1, nil)
	if err != nil {
		t.Fatalf("UnmarshalGraph error: %v", err)
	}
	if !back.HasEdge(0, 2) || !back.HasEdge(1, 3) {
		t.Error("edges lost in JSON round trip")
	}
	if back.NodeCount() != 4 {
		t.Errorf("NodeCount = %d, want 4", back.NodeCount())
	}
}
