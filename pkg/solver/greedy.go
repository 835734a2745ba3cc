package solver

import (
	"context"
	"sort"
	"time"

	"github.com/mpavel/cliquer/pkg/graph"
)

// Greedy is the coloring-based heuristic. It partitions nodes into
// independent-set color classes with classic greedy sequential coloring,
// then tries to densify each class large enough to plausibly hold a
// target-size clique. Color classes are candidate pools, not certified
// bounds - the final candidate is always re-validated.
//
// The solver is deterministic: it depends only on the degree ordering.
type Greedy struct{}

// NewGreedy creates the greedy coloring solver.
func NewGreedy() *Greedy { return &Greedy{} }

// Name implements Solver.
func (*Greedy) Name() string { return NameGreedy }

// Solve runs three stages: greedy coloring in descending-degree order,
// per-class max-connectivity densification, and a fallback densification
// over all nodes when no class produced a target-size clique. Found is
// computed by re-validating the best candidate; the densification steps
// alone do not certify adjacency.
func (s *Greedy) Solve(ctx context.Context, g *graph.Graph, target int) (Result, error) {
	start := time.Now()

	limit := target
	if limit <= 0 {
		limit = g.NodeCount()
	}

	var best []int
	for _, class := range colorClasses(g) {
		if err := ctx.Err(); err != nil {
			return s.finish(g, best, target, start), err
		}
		if target > 0 && len(class) < target {
			continue
		}
		clique := densify(g, class, limit)
		if target > 0 && len(clique) >= target && Validate(g, clique) {
			best = clique[:target]
			break
		}
		if len(clique) > len(best) {
			best = clique
		}
	}

	// Fallback: ignore color classes and densify over every node in
	// descending-degree order.
	if target > 0 && len(best) < target {
		best = densify(g, nodesByDegree(g), limit)
	}

	return s.finish(g, best, target, start), nil
}

func (s *Greedy) finish(g *graph.Graph, best []int, target int, start time.Time) Result {
	valid := Validate(g, best)
	found := valid && len(best) > 0
	if target > 0 {
		found = valid && len(best) >= target
	}
	return Result{
		Algorithm: NameGreedy,
		Clique:    best,
		Found:     found,
		Elapsed:   time.Since(start),
		Valid:     valid,
	}
}

// colorClasses greedily colors g and returns the classes in ascending
// color order, each class listing its nodes in ascending id order.
//
// Nodes are processed by descending degree; each node takes the smallest
// color unused among its already-colored neighbors, so every class is an
// independent set.
func colorClasses(g *graph.Graph) [][]int {
	n := g.NodeCount()
	colors := make([]int, n)
	for i := range colors {
		colors[i] = -1
	}

	maxColor := -1
	for _, v := range nodesByDegree(g) {
		used := make(map[int]bool, g.Degree(v))
		for _, u := range g.Neighbors(v) {
			if colors[u] >= 0 {
				used[colors[u]] = true
			}
		}
		c := 0
		for used[c] {
			c++
		}
		colors[v] = c
		if c > maxColor {
			maxColor = c
		}
	}

	classes := make([][]int, maxColor+1)
	for v := 0; v < n; v++ {
		c := colors[v]
		classes[c] = append(classes[c], v)
	}
	return classes
}

// densify grows a clique out of candidates by repeatedly taking the node
// with the most connections to the remaining pool, then intersecting the
// pool with that node's neighborhood. Each pick is adjacent to all earlier
// picks by construction, but callers must still re-validate the result.
func densify(g *graph.Graph, candidates []int, limit int) []int {
	pool := make([]int, len(candidates))
	copy(pool, candidates)

	var clique []int
	for len(pool) > 0 && len(clique) < limit {
		bestNode := -1
		maxConn := -1
		for _, v := range pool {
			if conn := connections(g, v, pool); conn > maxConn {
				maxConn = conn
				bestNode = v
			}
		}
		if bestNode < 0 {
			break
		}
		clique = append(clique, bestNode)

		next := pool[:0]
		for _, v := range pool {
			if v != bestNode && g.HasEdge(bestNode, v) {
				next = append(next, v)
			}
		}
		pool = next
	}
	sort.Ints(clique)
	return clique
}
