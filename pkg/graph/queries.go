package graph

// Degree returns the total degree of a node: directed in plus out plus
// undirected. An undirected self-loop counts twice; a directed self-loop
// counts once toward in and once toward out. Valid on every graph flavor.
func (g *Graph) Degree(key any) (int, error) {
	node, err := g.node("Degree", key)
	if err != nil {
		return 0, err
	}
	return node.inDegree + node.outDegree + node.undirDegree, nil
}

// OutDegree returns the number of directed edges leaving a node. It fails
// with ErrUsage on an undirected graph.
func (g *Graph) OutDegree(key any) (int, error) {
	if g.typ == Undirected {
		return 0, usageError("OutDegree", "node", Key(key), "graph is undirected", "Degree")
	}
	node, err := g.node("OutDegree", key)
	if err != nil {
		return 0, err
	}
	return node.outDegree, nil
}

// InDegree returns the number of directed edges entering a node. It fails
// with ErrUsage on an undirected graph.
func (g *Graph) InDegree(key any) (int, error) {
	if g.typ == Undirected {
		return 0, usageError("InDegree", "node", Key(key), "graph is undirected", "Degree")
	}
	node, err := g.node("InDegree", key)
	if err != nil {
		return 0, err
	}
	return node.inDegree, nil
}

// DirectedDegree returns in-degree plus out-degree. It fails with ErrUsage
// on an undirected graph.
func (g *Graph) DirectedDegree(key any) (int, error) {
	if g.typ == Undirected {
		return 0, usageError("DirectedDegree", "node", Key(key), "graph is undirected", "Degree")
	}
	node, err := g.node("DirectedDegree", key)
	if err != nil {
		return 0, err
	}
	return node.inDegree + node.outDegree, nil
}

// UndirectedDegree returns the undirected degree of a node, self-loops
// counted twice. It fails with ErrUsage on a directed graph.
func (g *Graph) UndirectedDegree(key any) (int, error) {
	if g.typ == Directed {
		return 0, usageError("UndirectedDegree", "node", Key(key), "graph is directed", "Degree")
	}
	node, err := g.node("UndirectedDegree", key)
	if err != nil {
		return 0, err
	}
	return node.undirDegree, nil
}

// Neighbors returns the distinct keys of every node adjacent to the given
// node through any edge, in unspecified order. A self-loop makes a node its
// own neighbor.
func (g *Graph) Neighbors(key any) ([]string, error) {
	node, err := g.node("Neighbors", key)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(node.out)+len(node.in)+len(node.undir))
	var keys []string
	collect := func(adj adjacency) {
		for neighbor := range adj {
			if _, dup := seen[neighbor]; dup {
				continue
			}
			seen[neighbor] = struct{}{}
			keys = append(keys, neighbor)
		}
	}
	collect(node.out)
	collect(node.in)
	collect(node.undir)
	return keys, nil
}

// OutNeighbors returns the distinct targets of directed edges leaving a
// node. It fails with ErrUsage on an undirected graph.
func (g *Graph) OutNeighbors(key any) ([]string, error) {
	if g.typ == Undirected {
		return nil, usageError("OutNeighbors", "node", Key(key), "graph is undirected", "Neighbors")
	}
	node, err := g.node("OutNeighbors", key)
	if err != nil {
		return nil, err
	}
	return adjacencyKeys(node.out), nil
}

// InNeighbors returns the distinct sources of directed edges entering a
// node. It fails with ErrUsage on an undirected graph.
func (g *Graph) InNeighbors(key any) ([]string, error) {
	if g.typ == Undirected {
		return nil, usageError("InNeighbors", "node", Key(key), "graph is undirected", "Neighbors")
	}
	node, err := g.node("InNeighbors", key)
	if err != nil {
		return nil, err
	}
	return adjacencyKeys(node.in), nil
}

// UndirectedNeighbors returns the distinct neighbors of a node through
// undirected edges. It fails with ErrUsage on a directed graph.
func (g *Graph) UndirectedNeighbors(key any) ([]string, error) {
	if g.typ == Directed {
		return nil, usageError("UndirectedNeighbors", "node", Key(key), "graph is directed", "Neighbors")
	}
	node, err := g.node("UndirectedNeighbors", key)
	if err != nil {
		return nil, err
	}
	return adjacencyKeys(node.undir), nil
}

// Edges returns the distinct keys of every edge incident to a node, in
// unspecified order.
func (g *Graph) Edges(key any) ([]string, error) {
	node, err := g.node("Edges", key)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	var keys []string
	collect := func(adj adjacency) {
		for _, set := range adj {
			for edge := range set {
				if _, dup := seen[edge]; dup {
					continue
				}
				seen[edge] = struct{}{}
				keys = append(keys, edge)
			}
		}
	}
	collect(node.out)
	collect(node.in)
	collect(node.undir)
	return keys, nil
}

// OutEdges returns the keys of directed edges leaving a node. It fails with
// ErrUsage on an undirected graph.
func (g *Graph) OutEdges(key any) ([]string, error) {
	if g.typ == Undirected {
		return nil, usageError("OutEdges", "node", Key(key), "graph is undirected", "Edges")
	}
	node, err := g.node("OutEdges", key)
	if err != nil {
		return nil, err
	}
	return adjacencyEdges(node.out), nil
}

// InEdges returns the keys of directed edges entering a node. It fails with
// ErrUsage on an undirected graph.
func (g *Graph) InEdges(key any) ([]string, error) {
	if g.typ == Undirected {
		return nil, usageError("InEdges", "node", Key(key), "graph is undirected", "Edges")
	}
	node, err := g.node("InEdges", key)
	if err != nil {
		return nil, err
	}
	return adjacencyEdges(node.in), nil
}

// UndirectedEdges returns the keys of undirected edges incident to a node.
// It fails with ErrUsage on a directed graph.
func (g *Graph) UndirectedEdges(key any) ([]string, error) {
	if g.typ == Directed {
		return nil, usageError("UndirectedEdges", "node", Key(key), "graph is directed", "Edges")
	}
	node, err := g.node("UndirectedEdges", key)
	if err != nil {
		return nil, err
	}
	return adjacencyEdges(node.undir), nil
}

func adjacencyKeys(adj adjacency) []string {
	keys := make([]string, 0, len(adj))
	for neighbor := range adj {
		keys = append(keys, neighbor)
	}
	return keys
}

func adjacencyEdges(adj adjacency) []string {
	var keys []string
	for _, set := range adj {
		for edge := range set {
			keys = append(keys, edge)
		}
	}
	return keys
}
