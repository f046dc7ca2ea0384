package graph

// AddNode creates a node under the coerced key and returns the canonical
// key. Adding a node whose key already exists fails with ErrUsage and leaves
// the graph unchanged. A nil attrs mapping is treated as empty.
func (g *Graph) AddNode(key any, attrs map[string]any) (string, error) {
	k := Key(key)
	if _, exists := g.nodes[k]; exists {
		return "", usageError("AddNode", "node", k, "node already exists", "MergeNode")
	}
	g.nodes[k] = newNodeData(k, copyAttrs(attrs))
	g.emit(Event{Kind: NodeAdded, Key: k})
	return k, nil
}

// MergeNode creates the node if it is absent, otherwise merges attrs into
// its existing attributes. It returns the canonical key and whether the node
// was created by this call.
func (g *Graph) MergeNode(key any, attrs map[string]any) (string, bool, error) {
	k := Key(key)
	node, exists := g.nodes[k]
	if !exists {
		g.nodes[k] = newNodeData(k, copyAttrs(attrs))
		g.emit(Event{Kind: NodeAdded, Key: k})
		return k, true, nil
	}
	if len(attrs) > 0 {
		for name, value := range attrs {
			node.attributes[name] = value
		}
		g.emit(Event{Kind: NodeAttributesUpdated, Key: k, Update: AttrMerge})
	}
	return k, false, nil
}

// HasNode reports whether a node exists under the coerced key.
func (g *Graph) HasNode(key any) bool {
	_, exists := g.nodes[Key(key)]
	return exists
}

// DropNode removes a node and every edge incident to it, atomically. It
// fails with ErrNotFound when the node does not exist.
func (g *Graph) DropNode(key any) error {
	k := Key(key)
	node, exists := g.nodes[k]
	if !exists {
		return notFoundError("DropNode", "node", k)
	}

	// Collect incident edge keys first: dropping mutates the adjacency maps
	// being walked.
	incident := make([]string, 0, len(node.out)+len(node.in)+len(node.undir))
	for _, set := range node.out {
		for edge := range set {
			incident = append(incident, edge)
		}
	}
	for _, set := range node.in {
		for edge := range set {
			incident = append(incident, edge)
		}
	}
	for _, set := range node.undir {
		for edge := range set {
			incident = append(incident, edge)
		}
	}

	dropped := make([]Event, 0, len(incident))
	for _, edgeKey := range incident {
		edge, ok := g.edges[edgeKey]
		if !ok {
			continue // directed self-loop already removed via the other map
		}
		g.detachEdge(edge)
		delete(g.edges, edgeKey)
		dropped = append(dropped, Event{Kind: EdgeDropped, Key: edgeKey, Source: edge.source, Target: edge.target})
	}
	delete(g.nodes, k)

	for _, e := range dropped {
		g.emit(e)
	}
	g.emit(Event{Kind: NodeDropped, Key: k})
	return nil
}

// NodeKeys returns the node keys in unspecified order.
func (g *Graph) NodeKeys() []string {
	keys := make([]string, 0, len(g.nodes))
	for k := range g.nodes {
		keys = append(keys, k)
	}
	return keys
}

// ForEachNode calls fn once per node with the key and the live attribute
// mapping. The mapping must not be mutated by fn; iteration order is
// unspecified.
func (g *Graph) ForEachNode(fn func(key string, attrs map[string]any)) {
	for k, node := range g.nodes {
		fn(k, node.attributes)
	}
}

func copyAttrs(attrs map[string]any) map[string]any {
	out := make(map[string]any, len(attrs))
	for k, v := range attrs {
		out[k] = v
	}
	return out
}
