package bench

import (
	"context"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/mpavel/cliquer/pkg/cache"
	"github.com/mpavel/cliquer/pkg/solver"
	"github.com/mpavel/cliquer/pkg/store"
)

func testSuite(t *testing.T) *Suite {
	t.Helper()
	suite, err := ParseSuite([]byte(`
name = "test"

[defaults]
target = 5
algorithms = ["exact", "greedy-coloring", "tabu-search"]
seed = 42

[[dataset]]
name = "demo"
generator = "demo"

[[dataset]]
name = "k6"
generator = "complete"
nodes = 6
target = 4
`))
	if err != nil {
		t.Fatalf("ParseSuite error: %v", err)
	}
	return suite
}

func quietRunner(c cache.Cache) *Runner {
	return NewRunner(c, nil, log.New(io.Discard))
}

func TestRunSuite(t *testing.T) {
	suite := testSuite(t)
	r := quietRunner(nil)

	report, err := r.RunSuite(context.Background(), suite)
	if err != nil {
		t.Fatalf("RunSuite error: %v", err)
	}
	if report.RunID == "" {
		t.Error("report must get a run ID")
	}
	if len(report.Entries) != 2 {
		t.Fatalf("report has %d entries, want 2", len(report.Entries))
	}

	for _, entry := range report.Entries {
		if len(entry.Results) != 3 {
			t.Fatalf("entry %s has %d results, want 3", entry.Dataset, len(entry.Results))
		}
		for _, res := range entry.Results {
			if !res.Found {
				t.Errorf("%s on %s: found=false", res.Algorithm, entry.Dataset)
			}
			if res.Found && !res.Valid {
				t.Errorf("%s on %s: found but invalid", res.Algorithm, entry.Dataset)
			}
		}
		if !entry.Agreement() {
			t.Errorf("entry %s: heuristics disagree with exact", entry.Dataset)
		}
	}

	if report.FoundCount() != 2 {
		t.Errorf("FoundCount = %d, want 2", report.FoundCount())
	}
}

func TestRunSuiteCaching(t *testing.T) {
	suite := testSuite(t)
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	r := quietRunner(fc)
	ctx := context.Background()

	first, err := r.RunSuite(ctx, suite)
	if err != nil {
		t.Fatalf("first run error: %v", err)
	}
	if first.TotalCacheHits() != 0 {
		t.Errorf("first run had %d cache hits, want 0", first.TotalCacheHits())
	}

	second, err := r.RunSuite(ctx, suite)
	if err != nil {
		t.Fatalf("second run error: %v", err)
	}
	// Every solve is cacheable: deterministic solvers plus a seeded tabu.
	if want := 6; second.TotalCacheHits() != want {
		t.Errorf("second run had %d cache hits, want %d", second.TotalCacheHits(), want)
	}

	// Cached results must be identical to fresh ones.
	for i, entry := range second.Entries {
		for j, res := range entry.Results {
			fresh := first.Entries[i].Results[j]
			if res.Found != fresh.Found || res.Size() != fresh.Size() {
				t.Errorf("cached result diverged for %s/%s", entry.Dataset, res.Algorithm)
			}
		}
	}
}

func TestUnseededTabuIsNotCached(t *testing.T) {
	suite, err := ParseSuite([]byte(`
[[dataset]]
name = "demo"
generator = "demo"
algorithms = ["tabu-search"]
target = 5
`))
	if err != nil {
		t.Fatalf("ParseSuite error: %v", err)
	}

	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	r := quietRunner(fc)
	ctx := context.Background()

	if _, err := r.RunSuite(ctx, suite); err != nil {
		t.Fatalf("first run error: %v", err)
	}
	second, err := r.RunSuite(ctx, suite)
	if err != nil {
		t.Fatalf("second run error: %v", err)
	}
	if second.TotalCacheHits() != 0 {
		t.Error("unseeded tabu runs must never hit the cache")
	}
}

func TestRunSuitePersistsRecords(t *testing.T) {
	suite := testSuite(t)
	mem := store.NewMemoryStore()
	r := quietRunner(nil)
	r.Store = mem

	report, err := r.RunSuite(context.Background(), suite)
	if err != nil {
		t.Fatalf("RunSuite error: %v", err)
	}

	recs, err := mem.List(context.Background(), "", 10)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("store has %d records, want 2", len(recs))
	}
	for _, entry := range report.Entries {
		if entry.RecordID == "" {
			t.Errorf("entry %s missing record ID", entry.Dataset)
		}
		if _, err := mem.Get(context.Background(), entry.RecordID); err != nil {
			t.Errorf("record %s not retrievable: %v", entry.RecordID, err)
		}
	}
}

func TestEntryBest(t *testing.T) {
	entry := Entry{Results: []solver.Result{
		{Algorithm: solver.NameGreedy, Clique: []int{0, 1}, Valid: true},
		{Algorithm: solver.NameExact, Clique: []int{0, 1, 2}, Valid: true},
		{Algorithm: solver.NameTabu, Clique: []int{0, 1, 2, 3}, Valid: false},
	}}
	best := entry.Best()
	if best.Algorithm != solver.NameExact {
		t.Errorf("Best = %s, want exact (invalid results never win)", best.Algorithm)
	}
}

func TestEntryAgreement(t *testing.T) {
	disagree := Entry{Results: []solver.Result{
		{Algorithm: solver.NameExact, Found: false},
		{Algorithm: solver.NameTabu, Found: true},
	}}
	if disagree.Agreement() {
		t.Error("heuristic success after exact failure must flag disagreement")
	}

	agree := Entry{Results: []solver.Result{
		{Algorithm: solver.NameExact, Found: true},
		{Algorithm: solver.NameTabu, Found: false}, // heuristics may miss
	}}
	if !agree.Agreement() {
		t.Error("a heuristic miss is not a disagreement")
	}
}
