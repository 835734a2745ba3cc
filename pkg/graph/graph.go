package graph

import (
	"slices"
)

// WarnFunc receives non-fatal diagnostics during graph construction,
// such as dropped self-loops or out-of-range edges. It follows the
// printf contract of log.Warnf.
type WarnFunc func(format string, args ...any)

// Graph is an undirected, unweighted graph over nodes [0, n).
//
// It stores the adjacency relation three ways: a boolean matrix for O(1)
// membership tests, sorted neighbor slices for iteration, and a degree
// vector so ordering heuristics never recount. All three are kept in sync
// by AddEdge and must not be mutated once solvers start reading.
//
// The zero value is not usable - use New.
type Graph struct {
	n       int
	matrix  [][]bool
	nbrs    [][]int
	degrees []int
	edges   int
	warn    WarnFunc
}

// New creates an empty graph with n nodes and no edges.
// A negative n is treated as zero.
func New(n int) *Graph {
	if n < 0 {
		n = 0
	}
	m := make([][]bool, n)
	for i := range m {
		m[i] = make([]bool, n)
	}
	return &Graph{
		n:       n,
		matrix:  m,
		nbrs:    make([][]int, n),
		degrees: make([]int, n),
	}
}

// SetWarnFunc installs fn as the sink for construction warnings.
// A nil fn silences warnings (the default).
func (g *Graph) SetWarnFunc(fn WarnFunc) { g.warn = fn }

func (g *Graph) warnf(format string, args ...any) {
	if g.warn != nil {
		g.warn(format, args...)
	}
}

// AddEdge inserts the undirected edge {u, v} and reports whether a new
// edge was stored. Self-loops, out-of-range endpoints, and duplicates are
// ignored; the first two are additionally reported through the warn func.
// AddEdge is idempotent and symmetric: AddEdge(u, v) == AddEdge(v, u).
func (g *Graph) AddEdge(u, v int) bool {
	if u < 0 || v < 0 || u >= g.n || v >= g.n {
		g.warnf("dropping edge (%d, %d): endpoint out of range [0, %d)", u, v, g.n)
		return false
	}
	if u == v {
		g.warnf("dropping edge (%d, %d): self-loop", u, v)
		return false
	}
	if g.matrix[u][v] {
		return false
	}
	g.matrix[u][v] = true
	g.matrix[v][u] = true
	g.insertNeighbor(u, v)
	g.insertNeighbor(v, u)
	g.degrees[u]++
	g.degrees[v]++
	g.edges++
	return true
}

// insertNeighbor keeps the neighbor slice of u sorted ascending.
func (g *Graph) insertNeighbor(u, v int) {
	i, _ := slices.BinarySearch(g.nbrs[u], v)
	g.nbrs[u] = slices.Insert(g.nbrs[u], i, v)
}

// HasEdge reports whether u and v are adjacent.
// Out-of-range queries return false.
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || v < 0 || u >= g.n || v >= g.n {
		return false
	}
	return g.matrix[u][v]
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int { return g.n }

// EdgeCount returns the number of distinct undirected edges.
func (g *Graph) EdgeCount() int { return g.edges }

// Degree returns the number of neighbors of u, or 0 if u is out of range.
func (g *Graph) Degree(u int) int {
	if u < 0 || u >= g.n {
		return 0
	}
	return g.degrees[u]
}

// Neighbors returns the neighbors of u in ascending order.
// The returned slice is the graph's internal storage and must not be
// modified by the caller.
func (g *Graph) Neighbors(u int) []int {
	if u < 0 || u >= g.n {
		return nil
	}
	return g.nbrs[u]
}

// Edges returns every undirected edge exactly once as {u, v} pairs with
// u < v, ordered lexicographically. The result is freshly allocated.
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, g.edges)
	for u := 0; u < g.n; u++ {
		for _, v := range g.nbrs[u] {
			if v > u {
				out = append(out, [2]int{u, v})
			}
		}
	}
	return out
}

// IsClique reports whether every unordered pair in nodes is adjacent.
// The empty set and single nodes are cliques. Duplicate entries fail the
// check because a node is never adjacent to itself. This predicate is the
// single source of truth for clique validity; solvers must re-check their
// final candidate with it before reporting success.
func (g *Graph) IsClique(nodes []int) bool {
	for i := 0; i < len(nodes); i++ {
		for j := i + 1; j < len(nodes); j++ {
			if !g.HasEdge(nodes[i], nodes[j]) {
				return false
			}
		}
	}
	return true
}
