// Package store persists benchmark run records so repeated runs of a suite
// can be compared over time. Two implementations are provided: a MongoDB
// store for durable history and an in-memory store for tests and one-off
// runs.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mpavel/cliquer/pkg/solver"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("record not found")

// Record is one benchmark run of one dataset: the graph identity, the
// requested clique size, and every solver's result.
type Record struct {
	ID        string          `bson:"_id" json:"id"`
	Suite     string          `bson:"suite,omitempty" json:"suite,omitempty"`
	Dataset   string          `bson:"dataset" json:"dataset"`
	GraphHash string          `bson:"graph_hash" json:"graph_hash"`
	Nodes     int             `bson:"nodes" json:"nodes"`
	Edges     int             `bson:"edges" json:"edges"`
	Target    int             `bson:"target" json:"target"`
	Results   []solver.Result `bson:"results" json:"results"`
	CreatedAt time.Time       `bson:"created_at" json:"created_at"`
}

// NewRecord creates a record with a fresh ID and timestamp.
func NewRecord(suite, dataset, graphHash string, nodes, edges, target int, results []solver.Result) Record {
	return Record{
		ID:        uuid.NewString(),
		Suite:     suite,
		Dataset:   dataset,
		GraphHash: graphHash,
		Nodes:     nodes,
		Edges:     edges,
		Target:    target,
		Results:   results,
		CreatedAt: time.Now().UTC(),
	}
}

// Store persists benchmark records.
type Store interface {
	// Save inserts a record.
	Save(ctx context.Context, rec Record) error

	// Get returns the record with the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (Record, error)

	// List returns the most recent records, newest first, at most limit.
	// A non-empty dataset filters to runs of that dataset.
	List(ctx context.Context, dataset string, limit int) ([]Record, error)

	// Close releases the underlying connection.
	Close(ctx context.Context) error
}
