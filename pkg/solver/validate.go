package solver

import (
	"github.com/mpavel/cliquer/pkg/graph"
)

// Validate reports whether nodes is a clique in g: every unordered pair
// adjacent, duplicates rejected (a node is never adjacent to itself).
//
// It is a pure O(len²) check with no side effects and is the single
// authority for clique validity. Every solver runs its final candidate
// through Validate before reporting Found=true, and test harnesses use it
// to cross-check solver output.
func Validate(g *graph.Graph, nodes []int) bool {
	return g.IsClique(nodes)
}
