package graph

// AddEdge creates an edge from source to target with a generated key. The
// edge is directed unless the graph is undirected. It returns the new key.
func (g *Graph) AddEdge(source, target any, attrs map[string]any) (string, error) {
	return g.addEdge("AddEdge", "", source, target, g.typ != Undirected, attrs)
}

// AddEdgeWithKey is AddEdge with a caller-supplied edge key.
func (g *Graph) AddEdgeWithKey(key, source, target any, attrs map[string]any) (string, error) {
	return g.addEdge("AddEdgeWithKey", Key(key), source, target, g.typ != Undirected, attrs)
}

// AddDirectedEdge creates a directed edge with a generated key.
func (g *Graph) AddDirectedEdge(source, target any, attrs map[string]any) (string, error) {
	return g.addEdge("AddDirectedEdge", "", source, target, true, attrs)
}

// AddDirectedEdgeWithKey is AddDirectedEdge with a caller-supplied key.
func (g *Graph) AddDirectedEdgeWithKey(key, source, target any, attrs map[string]any) (string, error) {
	return g.addEdge("AddDirectedEdgeWithKey", Key(key), source, target, true, attrs)
}

// AddUndirectedEdge creates an undirected edge with a generated key.
func (g *Graph) AddUndirectedEdge(source, target any, attrs map[string]any) (string, error) {
	return g.addEdge("AddUndirectedEdge", "", source, target, false, attrs)
}

// AddUndirectedEdgeWithKey is AddUndirectedEdge with a caller-supplied key.
func (g *Graph) AddUndirectedEdgeWithKey(key, source, target any, attrs map[string]any) (string, error) {
	return g.addEdge("AddUndirectedEdgeWithKey", Key(key), source, target, false, attrs)
}

// addEdge validates every constraint before mutating anything, so a failed
// call leaves the graph exactly as it was.
func (g *Graph) addEdge(op, key string, source, target any, directed bool, attrs map[string]any) (string, error) {
	src := Key(source)
	tgt := Key(target)

	if directed && g.typ == Undirected {
		return "", usageError(op, "edge", key, "graph is undirected and rejects directed edges", "AddUndirectedEdge")
	}
	if !directed && g.typ == Directed {
		return "", usageError(op, "edge", key, "graph is directed and rejects undirected edges", "AddDirectedEdge or AddEdge")
	}
	srcNode, exists := g.nodes[src]
	if !exists {
		return "", notFoundError(op, "node", src)
	}
	tgtNode, exists := g.nodes[tgt]
	if !exists {
		return "", notFoundError(op, "node", tgt)
	}
	if src == tgt && !g.selfLoops {
		return "", usageError(op, "edge", key, "self-loops are disabled on this graph", "")
	}
	if !g.multi {
		if directed && len(srcNode.out[tgt]) > 0 {
			return "", usageError(op, "edge", key, "an edge from "+src+" to "+tgt+" already exists and parallel edges are disabled", "WithMultiEdges at construction")
		}
		if !directed && len(srcNode.undir[tgt]) > 0 {
			return "", usageError(op, "edge", key, "an edge between "+src+" and "+tgt+" already exists and parallel edges are disabled", "WithMultiEdges at construction")
		}
	}

	generated := key == ""
	if generated {
		key = g.generateEdgeKey()
	} else if _, exists := g.edges[key]; exists {
		return "", usageError(op, "edge", key, "edge already exists", "")
	}

	edge := &edgeData{
		key:        key,
		source:     src,
		target:     tgt,
		directed:   directed,
		generated:  generated,
		attributes: copyAttrs(attrs),
	}
	g.edges[key] = edge
	g.attachEdge(edge, srcNode, tgtNode)

	g.emit(Event{Kind: EdgeAdded, Key: key, Source: src, Target: tgt})
	return key, nil
}

// attachEdge wires an edge into both endpoints' adjacency and degree state.
func (g *Graph) attachEdge(edge *edgeData, srcNode, tgtNode *nodeData) {
	loop := edge.source == edge.target
	if edge.directed {
		srcNode.out.add(edge.target, edge.key)
		tgtNode.in.add(edge.source, edge.key)
		srcNode.outDegree++
		tgtNode.inDegree++
		if loop {
			srcNode.directedLoops++
		}
		return
	}
	srcNode.undir.add(edge.target, edge.key)
	if loop {
		// An undirected self-loop contributes twice to the degree.
		srcNode.undirDegree += 2
		srcNode.undirectedLoops++
		return
	}
	tgtNode.undir.add(edge.source, edge.key)
	srcNode.undirDegree++
	tgtNode.undirDegree++
}

// detachEdge reverses attachEdge. Both endpoints must still exist.
func (g *Graph) detachEdge(edge *edgeData) {
	srcNode := g.nodes[edge.source]
	tgtNode := g.nodes[edge.target]
	loop := edge.source == edge.target
	if edge.directed {
		srcNode.out.remove(edge.target, edge.key)
		tgtNode.in.remove(edge.source, edge.key)
		srcNode.outDegree--
		tgtNode.inDegree--
		if loop {
			srcNode.directedLoops--
		}
		return
	}
	srcNode.undir.remove(edge.target, edge.key)
	if loop {
		srcNode.undirDegree -= 2
		srcNode.undirectedLoops--
		return
	}
	tgtNode.undir.remove(edge.source, edge.key)
	srcNode.undirDegree--
	tgtNode.undirDegree--
}

// HasEdge reports whether an edge exists under the coerced key.
func (g *Graph) HasEdge(key any) bool {
	_, exists := g.edges[Key(key)]
	return exists
}

// DropEdge removes an edge. It fails with ErrNotFound when absent.
func (g *Graph) DropEdge(key any) error {
	k := Key(key)
	edge, exists := g.edges[k]
	if !exists {
		return notFoundError("DropEdge", "edge", k)
	}
	g.detachEdge(edge)
	delete(g.edges, k)
	g.emit(Event{Kind: EdgeDropped, Key: k, Source: edge.source, Target: edge.target})
	return nil
}

// HasEdgeBetween reports whether an edge connects source to target: a
// directed edge from source to target, or an undirected edge between them.
// On a multigraph the question is ambiguous and fails with ErrUsage; call
// HasAnyEdgeBetween for explicit any-edge semantics.
func (g *Graph) HasEdgeBetween(source, target any) (bool, error) {
	if g.multi {
		return false, usageError("HasEdgeBetween", "edge", "",
			"ambiguous on a multigraph", "HasAnyEdgeBetween")
	}
	return g.anyEdgeBetween(Key(source), Key(target)), nil
}

// HasAnyEdgeBetween reports whether at least one edge connects source to
// target (directed source→target or undirected), on any graph flavor.
func (g *Graph) HasAnyEdgeBetween(source, target any) bool {
	return g.anyEdgeBetween(Key(source), Key(target))
}

func (g *Graph) anyEdgeBetween(src, tgt string) bool {
	node, exists := g.nodes[src]
	if !exists {
		return false
	}
	return len(node.out[tgt]) > 0 || len(node.undir[tgt]) > 0
}

// EdgeBetween returns the key of the edge connecting source to target. It
// fails with ErrUsage on a multigraph (the pair may name several edges) and
// with ErrNotFound when no such edge exists. On a mixed graph where both a
// directed and an undirected edge connect the pair, the directed edge wins;
// use DirectedEdgeBetween or UndirectedEdgeBetween to target one kind.
func (g *Graph) EdgeBetween(source, target any) (string, error) {
	if g.multi {
		return "", usageError("EdgeBetween", "edge", "",
			"ambiguous on a multigraph", "EdgesBetween")
	}
	src, tgt := Key(source), Key(target)
	edges := g.edgesBetween(src, tgt)
	if len(edges) == 0 {
		return "", notFoundError("EdgeBetween", "edge", src+"->"+tgt)
	}
	return edges[0], nil
}

// DirectedEdgeBetween returns the key of the directed edge from source to
// target. It fails with ErrUsage on an undirected graph or a multigraph and
// with ErrNotFound when no directed edge connects the pair.
func (g *Graph) DirectedEdgeBetween(source, target any) (string, error) {
	if g.typ == Undirected {
		return "", usageError("DirectedEdgeBetween", "edge", "",
			"graph is undirected", "EdgeBetween")
	}
	if g.multi {
		return "", usageError("DirectedEdgeBetween", "edge", "",
			"ambiguous on a multigraph", "EdgesBetween")
	}
	src, tgt := Key(source), Key(target)
	if node, exists := g.nodes[src]; exists {
		for edge := range node.out[tgt] {
			return edge, nil
		}
	}
	return "", notFoundError("DirectedEdgeBetween", "edge", src+"->"+tgt)
}

// UndirectedEdgeBetween returns the key of the undirected edge between source
// and target. It fails with ErrUsage on a directed graph or a multigraph and
// with ErrNotFound when no undirected edge connects the pair.
func (g *Graph) UndirectedEdgeBetween(source, target any) (string, error) {
	if g.typ == Directed {
		return "", usageError("UndirectedEdgeBetween", "edge", "",
			"graph is directed", "EdgeBetween")
	}
	if g.multi {
		return "", usageError("UndirectedEdgeBetween", "edge", "",
			"ambiguous on a multigraph", "EdgesBetween")
	}
	src, tgt := Key(source), Key(target)
	if node, exists := g.nodes[src]; exists {
		for edge := range node.undir[tgt] {
			return edge, nil
		}
	}
	return "", notFoundError("UndirectedEdgeBetween", "edge", src+"--"+tgt)
}

// EdgesBetween returns every edge connecting source to target: directed
// edges from source to target plus undirected edges between the pair. The
// result order is unspecified.
func (g *Graph) EdgesBetween(source, target any) []string {
	return g.edgesBetween(Key(source), Key(target))
}

func (g *Graph) edgesBetween(src, tgt string) []string {
	node, exists := g.nodes[src]
	if !exists {
		return nil
	}
	var keys []string
	for edge := range node.out[tgt] {
		keys = append(keys, edge)
	}
	for edge := range node.undir[tgt] {
		keys = append(keys, edge)
	}
	return keys
}

// EdgeSource returns the source node key of an edge.
func (g *Graph) EdgeSource(key any) (string, error) {
	edge, err := g.edge("EdgeSource", key)
	if err != nil {
		return "", err
	}
	return edge.source, nil
}

// EdgeTarget returns the target node key of an edge.
func (g *Graph) EdgeTarget(key any) (string, error) {
	edge, err := g.edge("EdgeTarget", key)
	if err != nil {
		return "", err
	}
	return edge.target, nil
}

// EdgeExtremities returns the source and target node keys of an edge.
func (g *Graph) EdgeExtremities(key any) (string, string, error) {
	edge, err := g.edge("EdgeExtremities", key)
	if err != nil {
		return "", "", err
	}
	return edge.source, edge.target, nil
}

// IsEdgeDirected reports whether an edge is directed.
func (g *Graph) IsEdgeDirected(key any) (bool, error) {
	edge, err := g.edge("IsEdgeDirected", key)
	if err != nil {
		return false, err
	}
	return edge.directed, nil
}

// EdgeWasGenerated reports whether an edge's key was auto-assigned. A
// generated key has identical semantics to a user-supplied one.
func (g *Graph) EdgeWasGenerated(key any) (bool, error) {
	edge, err := g.edge("EdgeWasGenerated", key)
	if err != nil {
		return false, err
	}
	return edge.generated, nil
}

// Opposite returns the other endpoint of an edge relative to the given
// node. It fails with ErrNotFound when either key is missing and with
// ErrUsage when the node is not an endpoint of the edge.
func (g *Graph) Opposite(nodeKey, edgeKey any) (string, error) {
	n := Key(nodeKey)
	if _, exists := g.nodes[n]; !exists {
		return "", notFoundError("Opposite", "node", n)
	}
	edge, err := g.edge("Opposite", edgeKey)
	if err != nil {
		return "", err
	}
	switch n {
	case edge.source:
		return edge.target, nil
	case edge.target:
		return edge.source, nil
	}
	return "", usageError("Opposite", "edge", edge.key, "node "+n+" is not an endpoint", "")
}

// EdgeKeys returns the edge keys in unspecified order.
func (g *Graph) EdgeKeys() []string {
	keys := make([]string, 0, len(g.edges))
	for k := range g.edges {
		keys = append(keys, k)
	}
	return keys
}

// ForEachEdge calls fn once per edge with the key, endpoints, directedness,
// and live attribute mapping. The mapping must not be mutated by fn;
// iteration order is unspecified.
func (g *Graph) ForEachEdge(fn func(key, source, target string, directed bool, attrs map[string]any)) {
	for k, edge := range g.edges {
		fn(k, edge.source, edge.target, edge.directed, edge.attributes)
	}
}

func (g *Graph) edge(op string, key any) (*edgeData, error) {
	k := Key(key)
	edge, exists := g.edges[k]
	if !exists {
		return nil, notFoundError(op, "edge", k)
	}
	return edge, nil
}

func (g *Graph) node(op string, key any) (*nodeData, error) {
	k := Key(key)
	node, exists := g.nodes[k]
	if !exists {
		return nil, notFoundError(op, "node", k)
	}
	return node, nil
}
