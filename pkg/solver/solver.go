package solver

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/mpavel/cliquer/pkg/graph"
)

// Algorithm names as reported in results and accepted by ByName.
const (
	NameExact  = "exact"
	NameGreedy = "greedy-coloring"
	NameTabu   = "tabu-search"
)

// DefaultTarget is the clique size assumed when a dataset carries no
// k hint and the caller specifies none.
const DefaultTarget = 5

// ErrUnknownSolver is returned by [ByName] for unrecognized algorithm names.
var ErrUnknownSolver = errors.New("unknown solver")

// Result is the outcome of a single Solve call. It is produced once and
// never mutated afterwards.
type Result struct {
	Algorithm string        `json:"algorithm" bson:"algorithm"`
	Clique    []int         `json:"clique" bson:"clique"`
	Found     bool          `json:"found" bson:"found"`
	Elapsed   time.Duration `json:"elapsed" bson:"elapsed"`
	Explored  int64         `json:"explored" bson:"explored"` // recursion nodes (exact) or iterations (tabu); 0 for greedy
	Valid     bool          `json:"valid" bson:"valid"`       // Validate re-check of Clique
}

// Size returns the number of nodes in the result clique.
func (r Result) Size() int { return len(r.Clique) }

// Solver is the uniform contract shared by all three algorithms.
// Implementations are not safe for concurrent Solve calls on the same
// instance; use one instance per goroutine.
type Solver interface {
	// Name returns the stable algorithm identifier.
	Name() string

	// Solve searches g for a clique of the given target size (or the
	// maximum clique when target is 0). The only possible error is
	// ctx.Err(); in that case the returned Result still holds the best
	// clique found before cancellation.
	Solve(ctx context.Context, g *graph.Graph, target int) (Result, error)
}

// ByName constructs the solver registered under name. Heuristic tuning in
// opts only applies to the tabu solver.
func ByName(name string, opts TabuOptions) (Solver, error) {
	switch name {
	case NameExact:
		return NewExact(), nil
	case NameGreedy:
		return NewGreedy(), nil
	case NameTabu:
		return NewTabu(opts), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSolver, name)
	}
}

// All returns one instance of every solver, exact first, in the order the
// comparison harness reports them.
func All(opts TabuOptions) []Solver {
	return []Solver{NewExact(), NewGreedy(), NewTabu(opts)}
}

// Names lists the registered algorithm names in report order.
func Names() []string {
	return []string{NameExact, NameGreedy, NameTabu}
}

// nodesByDegree returns all node ids ordered by descending degree,
// breaking ties by ascending id so the ordering is deterministic.
func nodesByDegree(g *graph.Graph) []int {
	nodes := make([]int, g.NodeCount())
	for i := range nodes {
		nodes[i] = i
	}
	sort.SliceStable(nodes, func(i, j int) bool {
		return g.Degree(nodes[i]) > g.Degree(nodes[j])
	})
	return nodes
}

// connections counts how many members of set are adjacent to v.
func connections(g *graph.Graph, v int, set []int) int {
	n := 0
	for _, u := range set {
		if g.HasEdge(v, u) {
			n++
		}
	}
	return n
}

// adjacentToAll reports whether v is adjacent to every member of set.
func adjacentToAll(g *graph.Graph, v int, set []int) bool {
	for _, u := range set {
		if !g.HasEdge(v, u) {
			return false
		}
	}
	return true
}
