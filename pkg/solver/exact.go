package solver

import (
	"context"
	"slices"
	"time"

	"github.com/mpavel/cliquer/pkg/graph"
)

// Exact is the branch-and-bound solver. It is guaranteed to find a clique
// of the requested size if one exists (target mode), or the true maximum
// clique (maximum mode). Deterministic for a fixed graph: candidates are
// visited highest-degree first, which tends to trigger the bound earlier.
type Exact struct{}

// NewExact creates the exact branch-and-bound solver.
func NewExact() *Exact { return &Exact{} }

// Name implements Solver.
func (*Exact) Name() string { return NameExact }

// Solve runs a depth-first search over the degree-descending node order.
// In target mode a branch is pruned when |current| + |candidates| < target;
// in maximum mode when |current| + |candidates| <= |best|. The candidate
// set handed to a recursive call after choosing node v is exactly the later
// candidates adjacent to v, so no permutation is explored twice and the
// candidate set never grows.
//
// Explored counts recursive calls. Found=false after an exhausted search is
// a normal negative result, not an error.
func (s *Exact) Solve(ctx context.Context, g *graph.Graph, target int) (Result, error) {
	start := time.Now()
	search := exactSearch{ctx: ctx, g: g, target: target}
	err := search.expand(nodesByDegree(g))

	found := search.found
	if target <= 0 {
		// Maximum mode: any non-empty graph yields at least the trivial
		// one-node clique. A cancelled run may hold nothing yet.
		found = len(search.best) > 0
	}
	valid := Validate(g, search.best)
	return Result{
		Algorithm: NameExact,
		Clique:    search.best,
		Found:     found && valid,
		Elapsed:   time.Since(start),
		Explored:  search.explored,
		Valid:     valid,
	}, err
}

// exactSearch holds the mutable state of one branch-and-bound run.
type exactSearch struct {
	ctx      context.Context
	g        *graph.Graph
	target   int // 0 = maximum mode
	current  []int
	best     []int
	explored int64
	found    bool // target mode only
}

// expand recurses over candidates, which are the nodes adjacent to every
// member of current and positioned after the last chosen node in the
// search order.
func (s *exactSearch) expand(candidates []int) error {
	if err := s.ctx.Err(); err != nil {
		return err
	}
	s.explored++

	if s.target > 0 {
		if len(s.current) == s.target {
			s.best = slices.Clone(s.current)
			s.found = true
			return nil
		}
		// Even taking every remaining candidate cannot close the gap.
		if len(s.current)+len(candidates) < s.target {
			return nil
		}
	} else {
		if len(s.current) > len(s.best) {
			s.best = slices.Clone(s.current)
		}
		// The branch cannot beat the incumbent.
		if len(s.current)+len(candidates) <= len(s.best) {
			return nil
		}
	}

	for i, v := range candidates {
		if s.found {
			return nil
		}
		next := make([]int, 0, len(candidates)-i-1)
		for _, u := range candidates[i+1:] {
			if s.g.HasEdge(v, u) {
				next = append(next, u)
			}
		}
		s.current = append(s.current, v)
		err := s.expand(next)
		s.current = s.current[:len(s.current)-1]
		if err != nil {
			return err
		}
	}
	return nil
}
