// Package graph provides the undirected graph structure shared by every
// clique solver.
//
// A [Graph] is built once from an edge list and is read-only afterwards.
// It keeps three synchronized views of the adjacency relation:
//
//   - an adjacency matrix for O(1) edge queries,
//   - sorted per-node neighbor lists for iteration,
//   - a cached degree vector for ordering heuristics.
//
// Malformed edges (self-loops, out-of-range endpoints) are dropped with a
// warning rather than aborting construction - a bad line in a large dataset
// must never kill a long-running search.
//
// # Edge-List Format
//
// Graphs are exchanged as plain text edge lists:
//
//	# n_nodes: 15
//	# n_edges: 22
//	# k: 5
//	0 1
//	0 2
//	...
//
// Leading # comments may carry n_nodes/n_edges/k hints. When no n_nodes
// hint is present, the first data line is read as an "n m" header instead.
// See [ReadEdgeList].
//
// # Serialization
//
// [MarshalGraph] produces a deterministic JSON encoding (node count plus
// sorted edge pairs) used for cache keys and API payloads.
//
// # Concurrency
//
// A Graph is safe for concurrent reads once construction is complete.
// Construction itself is single-threaded.
package graph
