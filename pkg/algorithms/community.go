package algorithms

import (
	"sort"
	"strconv"

	"github.com/jamieparkinson/graphology/pkg/graph"
)

// DefaultWeightAttr is the edge attribute read as weight when the caller
// passes an empty name. Absent or non-numeric values count as 1.
const DefaultWeightAttr = "weight"

// UndirectedCommunityIndex tracks a mutable community assignment over a
// fixed node set together with the aggregate weight sums needed to evaluate
// a candidate reassignment without rescanning the graph. Edge direction is
// ignored: every edge contributes symmetrically.
//
// Per node it caches the weighted degree (self-loops counted twice) and the
// self-loop weight; per community, the sum of member degrees and the total
// internal edge weight. The total graph weight m is fixed at build time.
type UndirectedCommunityIndex struct {
	keys []string
	ids  map[string]int

	// CSR over all edges walked from both endpoints, self-loops excluded
	// from the blocks and tracked in loops instead.
	starts    []uint32
	neighbors []uint32
	weights   []float64
	loops     []float64

	degrees    []float64
	belongings []int

	totalWeights    []float64
	internalWeights []float64

	m          float64
	weightAttr string
}

// BuildUndirectedCommunityIndex snapshots g into a community index where
// every node starts in its own singleton community. Community sums equal the
// node's own degree and internal weight equals its self-loop weight.
func BuildUndirectedCommunityIndex(g *graph.Graph, weightAttr string) *UndirectedCommunityIndex {
	if weightAttr == "" {
		weightAttr = DefaultWeightAttr
	}
	keys := g.NodeKeys()
	sort.Strings(keys)
	ix := &UndirectedCommunityIndex{
		keys:       keys,
		ids:        make(map[string]int, len(keys)),
		weightAttr: weightAttr,
	}
	for i, k := range keys {
		ix.ids[k] = i
	}
	order := len(keys)
	ix.loops = make([]float64, order)
	ix.degrees = make([]float64, order)

	counts := make([]uint32, order)
	g.ForEachEdge(func(_, source, target string, _ bool, attrs map[string]any) {
		s, t := ix.ids[source], ix.ids[target]
		w := graph.Numeric(attrs[ix.weightAttr], 1)
		ix.m += w
		if s == t {
			ix.loops[s] += w
			ix.degrees[s] += 2 * w
			return
		}
		ix.degrees[s] += w
		ix.degrees[t] += w
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
	ix.weights = make([]float64, total)

	cursor := make([]uint32, order)
	copy(cursor, ix.starts[:order])
	g.ForEachEdge(func(_, source, target string, _ bool, attrs map[string]any) {
		s, t := ix.ids[source], ix.ids[target]
		if s == t {
			return
		}
		w := graph.Numeric(attrs[ix.weightAttr], 1)
		ix.neighbors[cursor[s]] = uint32(t)
		ix.weights[cursor[s]] = w
		cursor[s]++
		ix.neighbors[cursor[t]] = uint32(s)
		ix.weights[cursor[t]] = w
		cursor[t]++
	})

	ix.belongings = make([]int, order)
	ix.totalWeights = make([]float64, order)
	ix.internalWeights = make([]float64, order)
	for i := 0; i < order; i++ {
		ix.belongings[i] = i
		ix.totalWeights[i] = ix.degrees[i]
		ix.internalWeights[i] = ix.loops[i]
	}
	return ix
}

// Order returns the number of indexed nodes.
func (ix *UndirectedCommunityIndex) Order() int { return len(ix.keys) }

// ID returns the dense id assigned to a node key.
func (ix *UndirectedCommunityIndex) ID(key any) (int, bool) {
	id, ok := ix.ids[graph.Key(key)]
	return id, ok
}

// Key returns the node key behind a dense id.
func (ix *UndirectedCommunityIndex) Key(id int) string { return ix.keys[id] }

// Community returns the current community of a node.
func (ix *UndirectedCommunityIndex) Community(node int) int { return ix.belongings[node] }

// Degree returns a node's cached weighted degree.
func (ix *UndirectedCommunityIndex) Degree(node int) float64 { return ix.degrees[node] }

// TotalWeight returns m, the total edge weight fixed at build time.
func (ix *UndirectedCommunityIndex) TotalWeight() float64 { return ix.m }

// CommunityWeights returns the degree sum and internal weight of a
// community's current state.
func (ix *UndirectedCommunityIndex) CommunityWeights(community int) (total, internal float64) {
	return ix.totalWeights[community], ix.internalWeights[community]
}

// NeighborCommunityWeights aggregates, per community, the edge weight
// between node and that community's members. O(degree(node)). Self-loops
// are not included.
func (ix *UndirectedCommunityIndex) NeighborCommunityWeights(node int) map[int]float64 {
	out := make(map[int]float64)
	for i := ix.starts[node]; i < ix.starts[node+1]; i++ {
		out[ix.belongings[ix.neighbors[i]]] += ix.weights[i]
	}
	return out
}

// Move reassigns a node to another community, updating both communities'
// degree sums and internal weights in O(degree(node)). Moving a node into
// its current community is a no-op.
func (ix *UndirectedCommunityIndex) Move(node, community int) {
	old := ix.belongings[node]
	if old == community {
		return
	}
	w := ix.NeighborCommunityWeights(node)

	ix.totalWeights[old] -= ix.degrees[node]
	ix.internalWeights[old] -= w[old] + ix.loops[node]

	ix.belongings[node] = community
	ix.totalWeights[community] += ix.degrees[node]
	ix.internalWeights[community] += w[community] + ix.loops[node]
}

// Gain returns the modularity delta of moving a node into a candidate
// community, computed from the cached sums. Only the node's own
// neighborhood is scanned, never the whole graph. The gain of staying put is
// exactly 0.
func (ix *UndirectedCommunityIndex) Gain(node, community int) float64 {
	old := ix.belongings[node]
	if old == community || ix.m == 0 {
		return 0
	}
	w := ix.NeighborCommunityWeights(node)
	k := ix.degrees[node]
	sOld := ix.totalWeights[old] - k
	sNew := ix.totalWeights[community]
	return (w[community]-w[old])/ix.m + k*(sOld-sNew)/(2*ix.m*ix.m)
}

// Modularity returns the quality of the current partition from the cached
// sums.
func (ix *UndirectedCommunityIndex) Modularity() float64 {
	if ix.m == 0 {
		return 0
	}
	var q float64
	for c := range ix.totalWeights {
		if ix.totalWeights[c] == 0 && ix.internalWeights[c] == 0 {
			continue
		}
		ratio := ix.totalWeights[c] / (2 * ix.m)
		q += ix.internalWeights[c]/ix.m - ratio*ratio
	}
	return q
}

// Aggregate zooms out: it produces a coarser undirected graph whose nodes
// are the current communities and whose edges carry the summed
// inter-community weights (intra-community weight becomes a self-loop on the
// new node), together with a fresh singleton-community index over it.
func (ix *UndirectedCommunityIndex) Aggregate() (*graph.Graph, *UndirectedCommunityIndex, error) {
	g, _, err := ix.aggregate()
	if err != nil {
		return nil, nil, err
	}
	return g, BuildUndirectedCommunityIndex(g, ix.weightAttr), nil
}

// aggregate returns the community graph plus the community-to-new-node-id
// renumbering.
func (ix *UndirectedCommunityIndex) aggregate() (*graph.Graph, map[int]int, error) {
	renum := renumberCommunities(ix.belongings)
	g := graph.NewUndirected()
	for i := 0; i < len(renum); i++ {
		if _, err := g.AddNode(strconv.Itoa(i), nil); err != nil {
			return nil, nil, err
		}
	}

	inter := make(map[[2]int]float64)
	for node := range ix.keys {
		cu := renum[ix.belongings[node]]
		for i := ix.starts[node]; i < ix.starts[node+1]; i++ {
			neighbor := int(ix.neighbors[i])
			if neighbor <= node {
				continue // each edge is listed from both ends; count once
			}
			cv := renum[ix.belongings[neighbor]]
			if cu == cv {
				continue // covered by internalWeights
			}
			pair := [2]int{cu, cv}
			if cv < cu {
				pair = [2]int{cv, cu}
			}
			inter[pair] += ix.weights[i]
		}
	}

	for old, id := range renum {
		internal := ix.internalWeights[old]
		if internal == 0 {
			continue
		}
		key := strconv.Itoa(id)
		if _, err := g.AddUndirectedEdge(key, key, map[string]any{ix.weightAttr: internal}); err != nil {
			return nil, nil, err
		}
	}
	for pair, w := range inter {
		_, err := g.AddUndirectedEdge(strconv.Itoa(pair[0]), strconv.Itoa(pair[1]), map[string]any{ix.weightAttr: w})
		if err != nil {
			return nil, nil, err
		}
	}
	return g, renum, nil
}

// renumberCommunities maps the surviving community ids to a dense 0..n-1
// range in ascending id order.
func renumberCommunities(belongings []int) map[int]int {
	present := make(map[int]struct{})
	for _, c := range belongings {
		present[c] = struct{}{}
	}
	ids := make([]int, 0, len(present))
	for c := range present {
		ids = append(ids, c)
	}
	sort.Ints(ids)
	renum := make(map[int]int, len(ids))
	for i, c := range ids {
		renum[c] = i
	}
	return renum
}
