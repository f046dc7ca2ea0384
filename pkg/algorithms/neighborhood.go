package algorithms

import (
	"sort"

	"github.com/jamieparkinson/graphology/pkg/graph"
)

// Mode selects which edges contribute a neighbor entry. Undirected edges
// appear in every mode, walked from both endpoints.
type Mode uint8

const (
	// Outbound indexes directed edges from their source only.
	Outbound Mode = iota
	// Inbound indexes directed edges from their target only.
	Inbound
	// All indexes directed edges from both endpoints.
	All
)

// NeighborhoodIndex is a flattened, immutable snapshot of a graph's
// adjacency. Each node receives a dense integer id (assignment order is
// index-internal); starts[id]..starts[id+1] bounds the node's contiguous
// block in the flat neighbor array. Locating a block is O(1); iterating it
// is O(degree).
type NeighborhoodIndex struct {
	keys      []string
	ids       map[string]int
	starts    []uint32
	neighbors []uint32
}

// WeightedNeighborhoodIndex extends NeighborhoodIndex with a weight array
// aligned to the neighbor blocks. Weights are read from a named edge
// attribute; absent or non-numeric values default to 1.
type WeightedNeighborhoodIndex struct {
	NeighborhoodIndex
	weights []float64
}

// BuildNeighborhoodIndex flattens g's adjacency in one pass over all nodes
// and edges.
func BuildNeighborhoodIndex(g *graph.Graph, mode Mode) *NeighborhoodIndex {
	ix := &NeighborhoodIndex{}
	ix.build(g, mode, nil, "")
	return ix
}

// BuildWeightedNeighborhoodIndex flattens g's adjacency along with per-edge
// weights taken from the weightAttr edge attribute. An empty weightAttr
// means DefaultWeightAttr.
func BuildWeightedNeighborhoodIndex(g *graph.Graph, mode Mode, weightAttr string) *WeightedNeighborhoodIndex {
	if weightAttr == "" {
		weightAttr = DefaultWeightAttr
	}
	ix := &WeightedNeighborhoodIndex{}
	ix.NeighborhoodIndex.build(g, mode, &ix.weights, weightAttr)
	return ix
}

// build assigns dense ids, counts per-node block sizes, then fills the flat
// arrays with a cursor per node.
func (ix *NeighborhoodIndex) build(g *graph.Graph, mode Mode, weights *[]float64, weightAttr string) {
	keys := g.NodeKeys()
	sort.Strings(keys)
	ix.keys = keys
	ix.ids = make(map[string]int, len(keys))
	for i, k := range keys {
		ix.ids[k] = i
	}

	order := len(keys)
	counts := make([]uint32, order)
	g.ForEachEdge(func(_, source, target string, directed bool, _ map[string]any) {
		s, t := ix.ids[source], ix.ids[target]
		if directed {
			switch mode {
			case Outbound:
				counts[s]++
			case Inbound:
				counts[t]++
			case All:
				counts[s]++
				counts[t]++
			}
			return
		}
		counts[s]++
		counts[t]++
	})

	ix.starts = make([]uint32, order+1)
	var total uint32
	for i := 0; i < order; i++ {
		ix.starts[i] = total
		total += counts[i]
	}
	ix.starts[order] = total

	ix.neighbors = make([]uint32, total)
	var weightArr []float64
	if weights != nil {
		weightArr = make([]float64, total)
	}
	cursor := make([]uint32, order)
	copy(cursor, ix.starts[:order])

	place := func(at, neighbor int, w float64) {
		pos := cursor[at]
		ix.neighbors[pos] = uint32(neighbor)
		if weightArr != nil {
			weightArr[pos] = w
		}
		cursor[at]++
	}
	g.ForEachEdge(func(_, source, target string, directed bool, attrs map[string]any) {
		s, t := ix.ids[source], ix.ids[target]
		w := 1.0
		if weightArr != nil {
			w = graph.Numeric(attrs[weightAttr], 1)
		}
		if directed {
			switch mode {
			case Outbound:
				place(s, t, w)
			case Inbound:
				place(t, s, w)
			case All:
				place(s, t, w)
				place(t, s, w)
			}
			return
		}
		place(s, t, w)
		place(t, s, w)
	})

	if weights != nil {
		*weights = weightArr
	}
}

// Order returns the number of indexed nodes.
func (ix *NeighborhoodIndex) Order() int { return len(ix.keys) }

// ID returns the dense id assigned to a node key.
func (ix *NeighborhoodIndex) ID(key any) (int, bool) {
	id, ok := ix.ids[graph.Key(key)]
	return id, ok
}

// Key returns the node key behind a dense id.
func (ix *NeighborhoodIndex) Key(id int) string { return ix.keys[id] }

// Neighbors returns the neighbor block of a node as a subslice of the flat
// array. The block must not be mutated.
func (ix *NeighborhoodIndex) Neighbors(id int) []uint32 {
	return ix.neighbors[ix.starts[id]:ix.starts[id+1]]
}

// WeightedNeighbors returns the neighbor block and its aligned weights.
func (ix *WeightedNeighborhoodIndex) WeightedNeighbors(id int) ([]uint32, []float64) {
	lo, hi := ix.starts[id], ix.starts[id+1]
	return ix.neighbors[lo:hi], ix.weights[lo:hi]
}
