package solver

import (
	"context"
	"math/rand"
	"slices"
	"time"

	"github.com/mpavel/cliquer/pkg/graph"
)

// Default tuning for the tabu solver, matching the values the comparison
// harness has historically used.
const (
	DefaultMaxIterations = 1000
	DefaultTenure        = 10

	// tabuPurgeInterval is how often (in iterations) expired tabu
	// entries are swept out of the list.
	tabuPurgeInterval = 100
)

// TabuOptions tunes the tabu-search solver.
type TabuOptions struct {
	// MaxIterations bounds the search loop. Zero selects
	// DefaultMaxIterations.
	MaxIterations int

	// Tenure is how many iterations a removed node stays forbidden.
	// Zero selects DefaultTenure.
	Tenure int

	// Seed pins the solver's private random generator for reproducible
	// runs. Zero draws a time-based seed (non-deterministic runs).
	Seed int64
}

// withDefaults fills in zero fields.
func (o TabuOptions) withDefaults() TabuOptions {
	if o.MaxIterations <= 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.Tenure <= 0 {
		o.Tenure = DefaultTenure
	}
	if o.Seed == 0 {
		o.Seed = time.Now().UnixNano()
	}
	return o
}

// Tabu is the local-search heuristic. It grows a candidate clique
// greedily and, when stuck, removes a random member and forbids its
// immediate re-insertion for a fixed tenure, which is enough to stop the
// remove-then-re-add cycle. This is a minimal local-search baseline, not
// a tuned metaheuristic.
//
// The random generator is owned by the instance; two instances never share
// state. Runs are reproducible only under a pinned TabuOptions.Seed.
type Tabu struct {
	opts TabuOptions
	rng  *rand.Rand
}

// NewTabu creates a tabu solver with the given tuning. Zero-valued fields
// of opts take the package defaults.
func NewTabu(opts TabuOptions) *Tabu {
	opts = opts.withDefaults()
	return &Tabu{
		opts: opts,
		rng:  rand.New(rand.NewSource(opts.Seed)),
	}
}

// Name implements Solver.
func (*Tabu) Name() string { return NameTabu }

// Solve iterates up to MaxIterations times or until the incumbent reaches
// the target size. Each iteration either extends the working clique with
// the best non-tabu common neighbor (tabu is overridden only when the move
// would beat the incumbent - the aspiration criterion), or shrinks it by a
// random member when no extension exists. A working clique that drops
// below half the incumbent's size restarts from the incumbent. The tabu
// list is reset at the start of every Solve.
func (s *Tabu) Solve(ctx context.Context, g *graph.Graph, target int) (Result, error) {
	start := time.Now()
	if g.NodeCount() == 0 {
		return Result{Algorithm: NameTabu, Valid: true, Elapsed: time.Since(start)}, ctx.Err()
	}

	current := s.initial(g, target)
	best := slices.Clone(current)
	tabu := make(map[int]int64)

	var iter int64
	maxIter := int64(s.opts.MaxIterations)
	for iter < maxIter && !reached(best, target) {
		if err := ctx.Err(); err != nil {
			return s.finish(g, best, target, iter, start), err
		}
		iter++

		candidates := commonNeighbors(g, current)
		switch {
		case len(candidates) > 0:
			pick := -1
			bestScore := -1
			for _, v := range candidates {
				if until, isTabu := tabu[v]; isTabu && until > iter {
					// Aspiration: only override tabu status when the
					// move beats the incumbent.
					if len(current)+1 <= len(best) {
						continue
					}
				}
				if score := g.Degree(v); score > bestScore {
					bestScore = score
					pick = v
				}
			}
			if pick >= 0 {
				current = append(current, pick)
				if len(current) > len(best) {
					best = slices.Clone(current)
				}
			}

		case len(current) > 0:
			idx := s.rng.Intn(len(current))
			removed := current[idx]
			current = slices.Delete(current, idx, idx+1)
			tabu[removed] = iter + int64(s.opts.Tenure)

			// Drifted too far below the incumbent: restart from the
			// best-known point instead of wandering.
			if len(current) < len(best)/2 {
				current = slices.Clone(best)
			}

		default:
			current = s.initial(g, target)
		}

		if iter%tabuPurgeInterval == 0 {
			for v, until := range tabu {
				if until <= iter {
					delete(tabu, v)
				}
			}
		}
	}

	return s.finish(g, best, target, iter, start), nil
}

func (s *Tabu) finish(g *graph.Graph, best []int, target int, iter int64, start time.Time) Result {
	valid := Validate(g, best)
	found := valid && len(best) > 0
	if target > 0 {
		found = valid && len(best) >= target
	}
	return Result{
		Algorithm: NameTabu,
		Clique:    best,
		Found:     found,
		Elapsed:   time.Since(start),
		Explored:  iter,
		Valid:     valid,
	}
}

// initial builds a starting clique: the highest-degree node, then greedy
// additions of the common neighbor best connected to the clique so far.
func (s *Tabu) initial(g *graph.Graph, target int) []int {
	startNode := 0
	maxDegree := -1
	for v := 0; v < g.NodeCount(); v++ {
		if d := g.Degree(v); d > maxDegree {
			maxDegree = d
			startNode = v
		}
	}

	clique := []int{startNode}
	candidates := slices.Clone(g.Neighbors(startNode))

	for len(candidates) > 0 && !reached(clique, target) {
		pick := -1
		maxConn := -1
		for _, v := range candidates {
			if conn := connections(g, v, clique); conn > maxConn {
				maxConn = conn
				pick = v
			}
		}
		if pick < 0 || maxConn < len(clique) {
			break
		}
		clique = append(clique, pick)

		next := candidates[:0]
		for _, v := range candidates {
			if v != pick && g.HasEdge(pick, v) && adjacentToAll(g, v, clique) {
				next = append(next, v)
			}
		}
		candidates = next
	}
	return clique
}

// reached reports whether clique satisfies the target size. In maximum
// mode (target 0) nothing short of iteration exhaustion stops the search.
func reached(clique []int, target int) bool {
	return target > 0 && len(clique) >= target
}

// commonNeighbors returns every node outside clique that is adjacent to
// all of its members, in ascending id order.
func commonNeighbors(g *graph.Graph, clique []int) []int {
	inClique := make(map[int]bool, len(clique))
	for _, u := range clique {
		inClique[u] = true
	}
	var out []int
	for v := 0; v < g.NodeCount(); v++ {
		if inClique[v] {
			continue
		}
		if adjacentToAll(g, v, clique) {
			out = append(out, v)
		}
	}
	return out
}
