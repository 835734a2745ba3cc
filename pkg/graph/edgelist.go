package graph

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ErrMissingNodeCount is returned by [ReadEdgeList] when neither an
// "n_nodes:" comment hint nor an "n m" header line declares how many
// nodes the graph has. The node count is the only piece of input the
// reader cannot recover from locally.
var ErrMissingNodeCount = errors.New("edge list does not declare a node count")

// Hints carries the optional metadata found in edge-list comment headers.
type Hints struct {
	Nodes  int // n_nodes: hint (0 if absent)
	Edges  int // n_edges: hint, informational only (0 if absent)
	Target int // k: hint, the suggested clique size (0 if absent)
}

// ReadEdgeList parses the edge-list text format described in the package
// documentation.
//
// Leading lines starting with '#' are scanned for n_nodes/n_edges/k hints;
// the parser is tolerant of whitespace and a trailing colon after the key.
// If no n_nodes hint appears, the first non-comment line must be an
// "n m" header. Every following line is an edge "u v".
//
// Recoverable problems - unparsable lines, self-loops, out-of-range
// endpoints, duplicates - are dropped with a warning. A missing node count
// is fatal and returns ErrMissingNodeCount, so callers never receive a
// structurally inconsistent graph.
//
// ReadEdgeList does not close r.
func ReadEdgeList(r io.Reader, warn WarnFunc) (*Graph, Hints, error) {
	var hints Hints
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var g *Graph
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") {
			parseHintLine(line, &hints)
			continue
		}

		fields := strings.Fields(line)
		if g == nil {
			// First data line. Without an n_nodes hint it is the
			// "n m" header, otherwise it is already an edge.
			if hints.Nodes == 0 {
				if len(fields) != 2 {
					return nil, hints, fmt.Errorf("line %d: expected \"n m\" header: %w", lineNo, ErrMissingNodeCount)
				}
				n, err1 := strconv.Atoi(fields[0])
				m, err2 := strconv.Atoi(fields[1])
				if err1 != nil || err2 != nil || n < 0 {
					return nil, hints, fmt.Errorf("line %d: malformed \"n m\" header: %w", lineNo, ErrMissingNodeCount)
				}
				hints.Nodes = n
				if hints.Edges == 0 {
					hints.Edges = m
				}
				g = New(n)
				g.SetWarnFunc(warn)
				continue
			}
			g = New(hints.Nodes)
			g.SetWarnFunc(warn)
		}

		u, v, ok := parseEdgeLine(fields)
		if !ok {
			if warn != nil {
				warn("line %d: skipping malformed edge line %q", lineNo, line)
			}
			continue
		}
		g.AddEdge(u, v)
	}
	if err := sc.Err(); err != nil {
		return nil, hints, fmt.Errorf("read edge list: %w", err)
	}

	if g == nil {
		if hints.Nodes == 0 {
			return nil, hints, ErrMissingNodeCount
		}
		g = New(hints.Nodes)
		g.SetWarnFunc(warn)
	}
	return g, hints, nil
}

// ReadEdgeListFile reads an edge-list graph from the file at path.
func ReadEdgeListFile(path string, warn WarnFunc) (*Graph, Hints, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Hints{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadEdgeList(f, warn)
}

// WriteEdgeList writes g in the edge-list format with comment hints.
// A target of 0 omits the k: hint.
func WriteEdgeList(g *Graph, w io.Writer, target int) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# n_nodes: %d\n", g.NodeCount())
	fmt.Fprintf(bw, "# n_edges: %d\n", g.EdgeCount())
	if target > 0 {
		fmt.Fprintf(bw, "# k: %d\n", target)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "%d %d\n", e[0], e[1])
	}
	return bw.Flush()
}

// WriteEdgeListFile writes g to the file at path, overwriting it.
func WriteEdgeListFile(g *Graph, path string, target int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteEdgeList(g, f, target); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// parseHintLine extracts n_nodes/n_edges/k values from a comment line.
// Keys may be followed by a colon and arbitrary whitespace, e.g.
// "# n_nodes: 50" or "#k 5".
func parseHintLine(line string, hints *Hints) {
	tokens := strings.FieldsFunc(strings.TrimLeft(line, "#"), func(r rune) bool {
		return r == ':' || r == ' ' || r == '\t'
	})
	for i := 0; i < len(tokens)-1; i++ {
		val, err := strconv.Atoi(tokens[i+1])
		if err != nil || val < 0 {
			continue
		}
		switch tokens[i] {
		case "n_nodes":
			hints.Nodes = val
		case "n_edges":
			hints.Edges = val
		case "k":
			hints.Target = val
		}
	}
}

// parseEdgeLine parses "u v" from pre-split fields.
func parseEdgeLine(fields []string) (u, v int, ok bool) {
	if len(fields) != 2 {
		return 0, 0, false
	}
	u, err1 := strconv.Atoi(fields[0])
	v, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return u, v, true
}
