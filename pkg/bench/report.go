package bench

import (
	"time"

	"github.com/mpavel/cliquer/pkg/solver"
)

// Entry is the outcome of one dataset: graph identity plus one result per
// configured algorithm.
type Entry struct {
	Dataset   string          `json:"dataset"`
	GraphHash string          `json:"graph_hash"`
	Nodes     int             `json:"nodes"`
	Edges     int             `json:"edges"`
	Target    int             `json:"target"`
	Results   []solver.Result `json:"results"`
	CacheHits int             `json:"cache_hits"`
	RecordID  string          `json:"record_id,omitempty"`
}

// Best returns the largest valid clique any algorithm found in this entry.
func (e Entry) Best() solver.Result {
	var best solver.Result
	for _, res := range e.Results {
		if res.Valid && res.Size() > best.Size() {
			best = res
		}
	}
	return best
}

// Agreement reports whether every algorithm that claimed success agrees
// with the exact solver's verdict. Heuristics may miss cliques that exist,
// but a success where exact failed means a broken solver.
func (e Entry) Agreement() bool {
	var exactFound, exactRan bool
	for _, res := range e.Results {
		if res.Algorithm == solver.NameExact {
			exactRan = true
			exactFound = res.Found
		}
	}
	if !exactRan {
		return true
	}
	for _, res := range e.Results {
		if res.Found && !exactFound {
			return false
		}
	}
	return true
}

// Report is a full suite run.
type Report struct {
	RunID     string        `json:"run_id"`
	Suite     string        `json:"suite"`
	Entries   []Entry       `json:"entries"`
	StartedAt time.Time     `json:"started_at"`
	Elapsed   time.Duration `json:"elapsed"`
}

// TotalCacheHits sums cache hits across all entries.
func (r *Report) TotalCacheHits() int {
	total := 0
	for _, e := range r.Entries {
		total += e.CacheHits
	}
	return total
}

// FoundCount counts entries where at least one algorithm found a valid
// clique of the requested size.
func (r *Report) FoundCount() int {
	count := 0
	for _, e := range r.Entries {
		for _, res := range e.Results {
			if res.Found {
				count++
				break
			}
		}
	}
	return count
}
