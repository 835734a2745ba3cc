// Package bench runs the clique solvers over benchmark suites and collects
// comparable results. A suite is a TOML file naming datasets (edge-list
// files or synthetic generator specs) plus solve parameters; the runner
// executes every configured algorithm on every dataset, caching results by
// graph content so repeated runs only pay for what changed.
package bench

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/mpavel/cliquer/pkg/cache"
	"github.com/mpavel/cliquer/pkg/graph"
	"github.com/mpavel/cliquer/pkg/observability"
	"github.com/mpavel/cliquer/pkg/solver"
	"github.com/mpavel/cliquer/pkg/store"
)

// Runner executes solver benchmarks with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache, store, and logger - it
// doesn't accumulate results. Multiple goroutines can safely use the same
// Runner with different suites.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Store  store.Store // optional; nil disables history
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If c is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// RunSuite executes every dataset in the suite and returns the collected
// report. Records are saved to the Store, if one is configured, as each
// dataset completes.
func (r *Runner) RunSuite(ctx context.Context, suite *Suite) (*Report, error) {
	report := &Report{
		RunID:     uuid.NewString(),
		Suite:     suite.Name,
		StartedAt: time.Now().UTC(),
	}

	for _, ds := range suite.Datasets {
		entry, err := r.RunDataset(ctx, suite, ds)
		if err != nil {
			return nil, fmt.Errorf("dataset %s: %w", ds.Name, err)
		}
		report.Entries = append(report.Entries, *entry)
	}

	report.Elapsed = time.Since(report.StartedAt)
	return report, nil
}

// RunDataset executes one dataset of a suite: materialize the graph, solve
// with every configured algorithm, persist the record.
func (r *Runner) RunDataset(ctx context.Context, suite *Suite, ds Dataset) (*Entry, error) {
	params := ds.params(suite.Defaults)

	g, err := ds.Materialize(r.warnFunc(ds.Name))
	if err != nil {
		return nil, err
	}

	data, err := graph.MarshalGraph(g)
	if err != nil {
		return nil, err
	}
	graphHash := cache.Hash(data)

	r.Logger.Info("benchmarking dataset",
		"dataset", ds.Name,
		"nodes", g.NodeCount(),
		"edges", g.EdgeCount(),
		"target", params.Target)

	entry := &Entry{
		Dataset:   ds.Name,
		GraphHash: graphHash,
		Nodes:     g.NodeCount(),
		Edges:     g.EdgeCount(),
		Target:    params.Target,
	}

	tabuOpts := params.tabuOptions()
	for _, name := range params.Algorithms {
		s, err := solver.ByName(name, tabuOpts)
		if err != nil {
			return nil, err
		}

		res, hit, err := r.SolveWithCacheInfo(ctx, g, graphHash, s, params.Target, tabuOpts)
		if err != nil {
			return nil, err
		}
		entry.Results = append(entry.Results, res)
		if hit {
			entry.CacheHits++
		}

		r.Logger.Info("solver finished",
			"dataset", ds.Name,
			"algorithm", res.Algorithm,
			"found", res.Found,
			"size", res.Size(),
			"explored", res.Explored,
			"elapsed", res.Elapsed,
			"cached", hit)
	}

	if r.Store != nil {
		rec := store.NewRecord(suite.Name, ds.Name, graphHash,
			g.NodeCount(), g.EdgeCount(), params.Target, entry.Results)
		if err := r.Store.Save(ctx, rec); err != nil {
			return nil, fmt.Errorf("save record: %w", err)
		}
		entry.RecordID = rec.ID
	}

	return entry, nil
}

// SolveWithCacheInfo runs one solver with caching and returns cache hit info.
//
// Cached entries are keyed by graph content hash plus every parameter that
// affects the outcome. A tabu solve with a zero seed draws a fresh seed per
// run and is therefore never cached.
func (r *Runner) SolveWithCacheInfo(ctx context.Context, g *graph.Graph, graphHash string, s solver.Solver, target int, tabuOpts solver.TabuOptions) (solver.Result, bool, error) {
	cacheable := s.Name() != solver.NameTabu || tabuOpts.Seed != 0

	var cacheKey string
	if cacheable {
		opts := cache.ResultKeyOpts{
			Algorithm: s.Name(),
			Target:    target,
		}
		if s.Name() == solver.NameTabu {
			opts.MaxIterations = tabuOpts.MaxIterations
			opts.Tenure = tabuOpts.Tenure
			opts.Seed = tabuOpts.Seed
		}
		cacheKey = r.Keyer.ResultKey(graphHash, opts)

		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			var cached solver.Result
			if err := json.Unmarshal(data, &cached); err == nil {
				observability.Cache().OnCacheHit(ctx, "result")
				return cached, true, nil
			}
			// Corrupt entry: recompute.
		}
		observability.Cache().OnCacheMiss(ctx, "result")
	}

	observability.Solver().OnSolveStart(ctx, s.Name(), g.NodeCount(), target)
	res, err := s.Solve(ctx, g, target)
	observability.Solver().OnSolveComplete(ctx, s.Name(), res.Found, res.Elapsed, err)
	if err != nil {
		return res, false, err
	}
	observability.Solver().OnValidate(ctx, s.Name(), res.Size(), res.Valid)

	if cacheable {
		if data, err := json.Marshal(res); err == nil {
			_ = r.Cache.Set(ctx, cacheKey, data, cache.TTLResult)
			observability.Cache().OnCacheSet(ctx, "result", len(data))
		}
	}

	return res, false, nil
}

// warnFunc routes graph parse warnings through the runner's logger.
func (r *Runner) warnFunc(dataset string) graph.WarnFunc {
	return func(format string, args ...any) {
		r.Logger.Warn(fmt.Sprintf(format, args...), "dataset", dataset)
	}
}
