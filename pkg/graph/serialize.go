package graph

import (
	"encoding/json"
	"fmt"

	"github.com/golang/snappy"
)

// SerializedOptions captures a graph's construction-time configuration.
type SerializedOptions struct {
	Type           string `json:"type"`
	MultiEdges     bool   `json:"multi,omitempty"`
	AllowSelfLoops bool   `json:"allowSelfLoops"`
}

// SerializedNode is the interchange form of a node.
type SerializedNode struct {
	Key        string         `json:"key"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// SerializedEdge is the interchange form of an edge. Every edge carries an
// explicit key, generated keys included, so round-tripping never loses edge
// identity.
type SerializedEdge struct {
	Key        string         `json:"key"`
	Source     string         `json:"source"`
	Target     string         `json:"target"`
	Undirected bool           `json:"undirected,omitempty"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

// SerializedGraph is the interchange form of a whole graph.
type SerializedGraph struct {
	Options    SerializedOptions `json:"options"`
	Attributes map[string]any    `json:"attributes,omitempty"`
	Nodes      []SerializedNode  `json:"nodes"`
	Edges      []SerializedEdge  `json:"edges"`
}

// Export produces the serialized form of the graph. Node and edge sequence
// order is unspecified; consumers must not depend on it.
func (g *Graph) Export() *SerializedGraph {
	out := &SerializedGraph{
		Options: SerializedOptions{
			Type:           g.typ.String(),
			MultiEdges:     g.multi,
			AllowSelfLoops: g.selfLoops,
		},
		Nodes: make([]SerializedNode, 0, len(g.nodes)),
		Edges: make([]SerializedEdge, 0, len(g.edges)),
	}
	if len(g.attributes) > 0 {
		out.Attributes = copyAttrs(g.attributes)
	}
	for key, node := range g.nodes {
		n := SerializedNode{Key: key}
		if len(node.attributes) > 0 {
			n.Attributes = copyAttrs(node.attributes)
		}
		out.Nodes = append(out.Nodes, n)
	}
	for key, edge := range g.edges {
		e := SerializedEdge{
			Key:        key,
			Source:     edge.source,
			Target:     edge.target,
			Undirected: !edge.directed,
		}
		if len(edge.attributes) > 0 {
			e.Attributes = copyAttrs(edge.attributes)
		}
		out.Edges = append(out.Edges, e)
	}
	return out
}

// Import builds a graph from its serialized form. Unknown type names fail
// with ErrInvalidArgument; structural violations surface as the usual
// mutation errors.
func Import(s *SerializedGraph) (*Graph, error) {
	if s == nil {
		return nil, invalidArgumentError("Import", "serialized graph is nil")
	}
	var typ GraphType
	switch s.Options.Type {
	case "mixed", "":
		typ = Mixed
	case "directed":
		typ = Directed
	case "undirected":
		typ = Undirected
	default:
		return nil, invalidArgumentError("Import", fmt.Sprintf("unknown graph type %q", s.Options.Type))
	}

	g := newGraph(typ)
	g.multi = s.Options.MultiEdges
	g.selfLoops = s.Options.AllowSelfLoops
	if s.Attributes != nil {
		g.attributes = copyAttrs(s.Attributes)
	}

	for _, n := range s.Nodes {
		if _, err := g.AddNode(n.Key, n.Attributes); err != nil {
			return nil, err
		}
	}
	for _, e := range s.Edges {
		var err error
		if e.Undirected {
			_, err = g.AddUndirectedEdgeWithKey(e.Key, e.Source, e.Target, e.Attributes)
		} else {
			_, err = g.AddDirectedEdgeWithKey(e.Key, e.Source, e.Target, e.Attributes)
		}
		if err != nil {
			return nil, err
		}
	}
	return g, nil
}

// Marshal encodes a graph to JSON interchange bytes.
func Marshal(g *Graph) ([]byte, error) {
	return json.Marshal(g.Export())
}

// Unmarshal decodes JSON interchange bytes into a new graph.
func Unmarshal(data []byte) (*Graph, error) {
	var s SerializedGraph
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unmarshal graph: %w", err)
	}
	return Import(&s)
}

// MarshalCompressed encodes a graph to snappy-compressed JSON.
func MarshalCompressed(g *Graph) ([]byte, error) {
	data, err := Marshal(g)
	if err != nil {
		return nil, err
	}
	return snappy.Encode(nil, data), nil
}

// UnmarshalCompressed decodes snappy-compressed JSON into a new graph.
func UnmarshalCompressed(data []byte) (*Graph, error) {
	raw, err := snappy.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("decompress graph: %w", err)
	}
	return Unmarshal(raw)
}
