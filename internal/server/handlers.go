package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/mpavel/cliquer/pkg/buildinfo"
	"github.com/mpavel/cliquer/pkg/cache"
	"github.com/mpavel/cliquer/pkg/errors"
	"github.com/mpavel/cliquer/pkg/graph"
	"github.com/mpavel/cliquer/pkg/solver"
	storepkg "github.com/mpavel/cliquer/pkg/store"
)

// maxRequestNodes bounds the graph size accepted over HTTP. The exact
// solver is exponential in the worst case; anything bigger belongs in a
// batch run, not a request handler.
const maxRequestNodes = 10000

// TabuParams are the optional tabu solver knobs of a solve request.
type TabuParams struct {
	MaxIterations int   `json:"max_iterations,omitempty"`
	Tenure        int   `json:"tenure,omitempty"`
	Seed          int64 `json:"seed,omitempty"`
}

// SolveRequest is the POST /api/v1/solve payload.
type SolveRequest struct {
	Graph      graph.Serialized `json:"graph"`
	Target     int              `json:"target"`
	Algorithms []string         `json:"algorithms,omitempty"`
	Tabu       TabuParams       `json:"tabu,omitempty"`
}

// SolveResponse is the solve result for every requested algorithm.
type SolveResponse struct {
	GraphHash string          `json:"graph_hash"`
	Nodes     int             `json:"nodes"`
	Edges     int             `json:"edges"`
	Target    int             `json:"target"`
	Results   []solver.Result `json:"results"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "malformed request body"))
		return
	}

	if err := errors.ValidateTarget(req.Target); err != nil {
		writeError(w, err)
		return
	}
	if req.Graph.Nodes <= 0 {
		writeError(w, errors.New(errors.ErrCodeInvalidGraph, "graph needs a positive node count"))
		return
	}
	if req.Graph.Nodes > maxRequestNodes {
		writeError(w, errors.New(errors.ErrCodeInvalidGraph, "graph too large: %d nodes (max %d)", req.Graph.Nodes, maxRequestNodes))
		return
	}

	algorithms := req.Algorithms
	if len(algorithms) == 0 {
		algorithms = solver.Names()
	}
	tabuOpts := solver.TabuOptions{
		MaxIterations: req.Tabu.MaxIterations,
		Tenure:        req.Tabu.Tenure,
		Seed:          req.Tabu.Seed,
	}

	solvers := make([]solver.Solver, 0, len(algorithms))
	for _, name := range algorithms {
		if err := errors.ValidateAlgorithmName(name); err != nil {
			writeError(w, err)
			return
		}
		sv, err := solver.ByName(name, tabuOpts)
		if err != nil {
			writeError(w, errors.Wrap(errors.ErrCodeInvalidAlgorithm, err, "unknown algorithm %q", name))
			return
		}
		solvers = append(solvers, sv)
	}

	g := graph.FromSerialized(req.Graph, func(format string, args ...any) {
		s.logger.Warnf("solve request: "+format, args...)
	})

	data, err := graph.MarshalGraph(g)
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "failed to hash graph"))
		return
	}
	graphHash := cache.Hash(data)

	resp := SolveResponse{
		GraphHash: graphHash,
		Nodes:     g.NodeCount(),
		Edges:     g.EdgeCount(),
		Target:    req.Target,
	}
	for _, sv := range solvers {
		res, _, err := s.runner.SolveWithCacheInfo(r.Context(), g, graphHash, sv, req.Target, tabuOpts)
		if err != nil {
			writeError(w, errors.Wrap(errors.ErrCodeCanceled, err, "solve aborted"))
			return
		}
		resp.Results = append(resp.Results, res)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, errors.New(errors.ErrCodeUnsupported, "run history is not configured"))
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, errors.New(errors.ErrCodeInvalidInput, "invalid limit %q", raw))
			return
		}
		limit = n
	}

	recs, err := s.store.List(r.Context(), r.URL.Query().Get("dataset"), limit)
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "failed to list runs"))
		return
	}
	if recs == nil {
		recs = []storepkg.Record{}
	}
	writeJSON(w, http.StatusOK, recs)
}

func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, errors.New(errors.ErrCodeUnsupported, "run history is not configured"))
		return
	}

	id := chi.URLParam(r, "id")
	rec, err := s.store.Get(r.Context(), id)
	if err == storepkg.ErrNotFound {
		writeError(w, errors.New(errors.ErrCodeNotFound, "run %s not found", id))
		return
	}
	if err != nil {
		writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "failed to load run"))
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Code    errors.Code `json:"code"`
	Message string      `json:"message"`
}

func writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	status := http.StatusInternalServerError
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidGraph, errors.ErrCodeInvalidTarget,
		errors.ErrCodeInvalidAlgorithm, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidSuite,
		errors.ErrCodeInvalidPath:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeUnsupported:
		status = http.StatusNotImplemented
	case errors.ErrCodeTimeout, errors.ErrCodeCanceled:
		status = http.StatusGatewayTimeout
	}
	writeJSON(w, status, errorResponse{Code: code, Message: errors.UserMessage(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
