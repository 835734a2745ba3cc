// Package pkg provides the core libraries for Cliquer clique search.
//
// # Overview
//
// Cliquer searches undirected graphs for k-cliques using one exact and two
// heuristic algorithms, validating every answer independently. The pkg
// directory is organized into five main areas:
//
//  1. [graph] - Graph structure and edge-list serialization
//  2. [solver] - Clique search algorithms and the validator
//  3. [gen] - Synthetic graph generation
//  4. [bench] - Benchmark suites, cached solving, and reports
//  5. [render] - Graphviz drawing with clique highlighting
//
// # Architecture
//
// The typical data flow through Cliquer:
//
//	Edge list file / generator
//	         ↓
//	    [graph] package (adjacency matrix + sorted lists)
//	         ↓
//	    [solver] package (exact, greedy, tabu + validation)
//	         ↓
//	    [bench] package (cache, run history, reports)
//	         ↓
//	    Table/JSON/SVG output
//
// # Quick Start
//
// Build a graph and search it for a clique:
//
//	import (
//	    "context"
//	    "github.com/mpavel/cliquer/pkg/gen"
//	    "github.com/mpavel/cliquer/pkg/solver"
//	)
//
//	// 1. Generate a graph with a planted 6-clique
//	g, _, _ := gen.New(42).Planted(100, 0.2, 6)
//
//	// 2. Solve
//	s, _ := solver.ByName(solver.NameExact, solver.TabuOptions{})
//	res, _ := s.Solve(context.Background(), g, 6)
//
//	// 3. Check the answer
//	if res.Found && solver.Validate(g, res.Clique) {
//	    fmt.Println(res.Clique)
//	}
//
// # Main Packages
//
// ## Core Domain Logic
//
// [graph] - Undirected graph backed by an adjacency matrix plus sorted
// adjacency lists and degrees. Reads and writes the edge-list text format
// with optional # n_nodes:/n_edges:/k: hints.
//
// [solver] - Three clique search algorithms behind one interface: exact
// branch-and-bound, greedy coloring, and tabu search. [solver.Validate] is
// the single authority on clique correctness.
//
// [gen] - Seeded random, planted-clique, complete, and demo graph
// generators for benchmarks and tests.
//
// ## Infrastructure
//
// [cache] - Solver result caching keyed by graph content hash and solve
// parameters. FileCache for CLI (filesystem), RedisCache for server
// deployments, NullCache for testing.
//
// [store] - Benchmark run history. MemoryStore for testing, MongoStore
// for durable storage.
//
// [bench] - TOML benchmark suites and the cached solve runner used by the
// CLI and the HTTP server.
//
// [observability] - Pluggable hooks for solver and cache events.
//
// ## Visualization
//
// [render] - Undirected DOT generation with clique highlighting, plus SVG
// and PNG rendering through Graphviz.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/solver/...    # Specific package
//
// [graph]: https://pkg.go.dev/github.com/mpavel/cliquer/pkg/graph
// [solver]: https://pkg.go.dev/github.com/mpavel/cliquer/pkg/solver
// [gen]: https://pkg.go.dev/github.com/mpavel/cliquer/pkg/gen
// [bench]: https://pkg.go.dev/github.com/mpavel/cliquer/pkg/bench
// [render]: https://pkg.go.dev/github.com/mpavel/cliquer/pkg/render
// [cache]: https://pkg.go.dev/github.com/mpavel/cliquer/pkg/cache
// [store]: https://pkg.go.dev/github.com/mpavel/cliquer/pkg/store
// [observability]: https://pkg.go.dev/github.com/mpavel/cliquer/pkg/observability
// [solver.Validate]: https://pkg.go.dev/github.com/mpavel/cliquer/pkg/solver#Validate
package pkg
