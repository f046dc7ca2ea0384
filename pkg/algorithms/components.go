package algorithms

import (
	"fmt"
	"sort"

	"github.com/jamieparkinson/graphology/pkg/graph"
)

// ComponentsIndex partitions a graph's nodes into connected components via
// union-find, directionality ignored. It is built once and static: later
// store mutations are not observed.
//
// Components are ordered by descending member count; equal-sized components
// are ordered by their lexicographically smallest member key, a documented
// but non-semantic tie-break chosen for reproducibility. Member lists are
// sorted lexicographically for the same reason.
type ComponentsIndex struct {
	components [][]string
	byNode     map[string]int
}

// unionFind is a path-compressed, size-balanced disjoint set over dense ids.
type unionFind struct {
	parent []int
	size   []int
}

func newUnionFind(n int) *unionFind {
	uf := &unionFind{
		parent: make([]int, n),
		size:   make([]int, n),
	}
	for i := range uf.parent {
		uf.parent[i] = i
		uf.size[i] = 1
	}
	return uf
}

func (uf *unionFind) find(x int) int {
	for uf.parent[x] != x {
		uf.parent[x] = uf.parent[uf.parent[x]] // halve the path
		x = uf.parent[x]
	}
	return x
}

func (uf *unionFind) union(a, b int) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	if uf.size[ra] < uf.size[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	uf.size[ra] += uf.size[rb]
}

// BuildComponentsIndex computes the connected components of g.
func BuildComponentsIndex(g *graph.Graph) *ComponentsIndex {
	keys := g.NodeKeys()
	sort.Strings(keys)
	ids := make(map[string]int, len(keys))
	for i, k := range keys {
		ids[k] = i
	}

	uf := newUnionFind(len(keys))
	g.ForEachEdge(func(_, source, target string, _ bool, _ map[string]any) {
		uf.union(ids[source], ids[target])
	})

	groups := make(map[int][]string)
	for i, k := range keys {
		root := uf.find(i)
		groups[root] = append(groups[root], k)
	}

	components := make([][]string, 0, len(groups))
	for _, members := range groups {
		// keys were scanned sorted, so members are already ordered and
		// members[0] is the smallest key of the component.
		components = append(components, members)
	}
	sort.Slice(components, func(i, j int) bool {
		if len(components[i]) != len(components[j]) {
			return len(components[i]) > len(components[j])
		}
		return components[i][0] < components[j][0]
	})

	byNode := make(map[string]int, len(keys))
	for id, members := range components {
		for _, k := range members {
			byNode[k] = id
		}
	}
	return &ComponentsIndex{components: components, byNode: byNode}
}

// ComponentOf returns the component id of a node, O(1). It fails with
// graph.ErrNotFound for unknown keys.
func (ci *ComponentsIndex) ComponentOf(key any) (int, error) {
	k := graph.Key(key)
	id, ok := ci.byNode[k]
	if !ok {
		return 0, fmt.Errorf("component of node %q: %w", k, graph.ErrNotFound)
	}
	return id, nil
}

// Components returns the component groups, largest first. The slices are
// shared with the index and must not be mutated.
func (ci *ComponentsIndex) Components() [][]string {
	return ci.components
}

// Count returns the number of components.
func (ci *ComponentsIndex) Count() int { return len(ci.components) }
