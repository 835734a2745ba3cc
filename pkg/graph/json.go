package graph

import (
	"encoding/json"
	"fmt"
)

// Serialized is the canonical JSON format for a graph: the node count and
// every undirected edge exactly once (u < v, lexicographic order). The
// ordering makes the encoding deterministic, so hashing the marshaled
// bytes yields a stable cache key for identical graphs.
type Serialized struct {
	Nodes int      `json:"nodes" bson:"nodes"`
	Edges [][2]int `json:"edges" bson:"edges"`
}

// MarshalGraph serializes g to its deterministic JSON form.
func MarshalGraph(g *Graph) ([]byte, error) {
	return json.Marshal(Serialized{
		Nodes: g.NodeCount(),
		Edges: g.Edges(),
	})
}

// UnmarshalGraph reconstructs a Graph from data produced by MarshalGraph
// (or any JSON object with "nodes" and "edges"). Invalid edges in the
// payload are dropped through warn, matching edge-list semantics.
func UnmarshalGraph(data []byte, warn WarnFunc) (*Graph, error) {
	var s Serialized
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal graph: %w", err)
	}
	return FromSerialized(s, warn), nil
}

// FromSerialized builds a Graph from its serialized form.
func FromSerialized(s Serialized, warn WarnFunc) *Graph {
	g := New(s.Nodes)
	g.SetWarnFunc(warn)
	for _, e := range s.Edges {
		g.AddEdge(e[0], e[1])
	}
	return g
}
