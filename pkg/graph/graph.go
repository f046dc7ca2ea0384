package graph

// Clear removes every node and edge. Graph-level attributes and observers
// are kept. A single Cleared event fires afterwards.
func (g *Graph) Clear() {
	g.nodes = make(map[string]*nodeData)
	g.edges = make(map[string]*edgeData)
	g.emit(Event{Kind: Cleared})
}

// ClearEdges removes every edge while keeping all nodes. A single Cleared
// event fires afterwards.
func (g *Graph) ClearEdges() {
	for _, node := range g.nodes {
		node.out = make(adjacency)
		node.in = make(adjacency)
		node.undir = make(adjacency)
		node.outDegree = 0
		node.inDegree = 0
		node.undirDegree = 0
		node.directedLoops = 0
		node.undirectedLoops = 0
	}
	g.edges = make(map[string]*edgeData)
	g.emit(Event{Kind: Cleared})
}

// Copy returns a new graph with the same configuration, nodes, edges, and
// attribute mappings. Attribute values are copied shallowly; observers are
// not carried over. Copy is the supported way to take a stable snapshot
// before building indices while other code may still mutate the original.
func (g *Graph) Copy() *Graph {
	clone := newGraph(g.typ)
	clone.multi = g.multi
	clone.selfLoops = g.selfLoops
	clone.attributes = copyAttrs(g.attributes)

	for key, node := range g.nodes {
		clone.nodes[key] = newNodeData(key, copyAttrs(node.attributes))
	}
	for key, edge := range g.edges {
		dup := &edgeData{
			key:        key,
			source:     edge.source,
			target:     edge.target,
			directed:   edge.directed,
			generated:  edge.generated,
			attributes: copyAttrs(edge.attributes),
		}
		clone.edges[key] = dup
		clone.attachEdge(dup, clone.nodes[dup.source], clone.nodes[dup.target])
	}
	return clone
}
