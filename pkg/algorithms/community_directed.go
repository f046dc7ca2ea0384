package algorithms

import (
	"sort"
	"strconv"

	"github.com/jamieparkinson/graphology/pkg/graph"
)

// DirectedCommunityIndex is the directed counterpart of
// UndirectedCommunityIndex: it tracks separate in- and out-degree sums per
// node and per community, since the directed modularity null model weighs
// k_out against k_in. Undirected edges in a mixed graph contribute as two
// opposite arcs of the same weight.
type DirectedCommunityIndex struct {
	keys []string
	ids  map[string]int

	// Separate CSR layouts for outgoing and incoming arcs; self-loops are
	// excluded from both and tracked in loops.
	outStarts    []uint32
	outNeighbors []uint32
	outWeights   []float64
	inStarts     []uint32
	inNeighbors  []uint32
	inWeights    []float64
	loops        []float64

	inDegrees  []float64
	outDegrees []float64
	belongings []int

	totalInWeights  []float64
	totalOutWeights []float64
	internalWeights []float64

	m          float64
	weightAttr string
}

// BuildDirectedCommunityIndex snapshots g into a directed community index
// with singleton communities.
func BuildDirectedCommunityIndex(g *graph.Graph, weightAttr string) *DirectedCommunityIndex {
	if weightAttr == "" {
		weightAttr = DefaultWeightAttr
	}
	keys := g.NodeKeys()
	sort.Strings(keys)
	ix := &DirectedCommunityIndex{
		keys:       keys,
		ids:        make(map[string]int, len(keys)),
		weightAttr: weightAttr,
	}
	for i, k := range keys {
		ix.ids[k] = i
	}
	order := len(keys)
	ix.loops = make([]float64, order)
	ix.inDegrees = make([]float64, order)
	ix.outDegrees = make([]float64, order)

	outCounts := make([]uint32, order)
	inCounts := make([]uint32, order)
	// walkArcs visits every arc of the snapshot: one per directed edge, two
	// per undirected edge.
	walkArcs := func(visit func(s, t int, w float64)) {
		g.ForEachEdge(func(_, source, target string, directed bool, attrs map[string]any) {
			s, t := ix.ids[source], ix.ids[target]
			w := graph.Numeric(attrs[ix.weightAttr], 1)
			visit(s, t, w)
			if !directed && s != t {
				visit(t, s, w)
			}
		})
	}

	walkArcs(func(s, t int, w float64) {
		ix.m += w
		ix.outDegrees[s] += w
		ix.inDegrees[t] += w
		if s == t {
			ix.loops[s] += w
			return
		}
		outCounts[s]++
		inCounts[t]++
	})

	ix.outStarts, ix.outNeighbors, ix.outWeights = makeCSR(outCounts)
	ix.inStarts, ix.inNeighbors, ix.inWeights = makeCSR(inCounts)

	outCursor := make([]uint32, order)
	copy(outCursor, ix.outStarts[:order])
	inCursor := make([]uint32, order)
	copy(inCursor, ix.inStarts[:order])
	walkArcs(func(s, t int, w float64) {
		if s == t {
			return
		}
		ix.outNeighbors[outCursor[s]] = uint32(t)
		ix.outWeights[outCursor[s]] = w
		outCursor[s]++
		ix.inNeighbors[inCursor[t]] = uint32(s)
		ix.inWeights[inCursor[t]] = w
		inCursor[t]++
	})

	ix.belongings = make([]int, order)
	ix.totalInWeights = make([]float64, order)
	ix.totalOutWeights = make([]float64, order)
	ix.internalWeights = make([]float64, order)
	for i := 0; i < order; i++ {
		ix.belongings[i] = i
		ix.totalInWeights[i] = ix.inDegrees[i]
		ix.totalOutWeights[i] = ix.outDegrees[i]
		ix.internalWeights[i] = ix.loops[i]
	}
	return ix
}

func makeCSR(counts []uint32) ([]uint32, []uint32, []float64) {
	starts := make([]uint32, len(counts)+1)
	var total uint32
	for i, c := range counts {
		starts[i] = total
		total += c
	}
	starts[len(counts)] = total
	return starts, make([]uint32, total), make([]float64, total)
}

// Order returns the number of indexed nodes.
func (ix *DirectedCommunityIndex) Order() int { return len(ix.keys) }

// ID returns the dense id assigned to a node key.
func (ix *DirectedCommunityIndex) ID(key any) (int, bool) {
	id, ok := ix.ids[graph.Key(key)]
	return id, ok
}

// Key returns the node key behind a dense id.
func (ix *DirectedCommunityIndex) Key(id int) string { return ix.keys[id] }

// Community returns the current community of a node.
func (ix *DirectedCommunityIndex) Community(node int) int { return ix.belongings[node] }

// InDegree returns a node's cached weighted in-degree.
func (ix *DirectedCommunityIndex) InDegree(node int) float64 { return ix.inDegrees[node] }

// OutDegree returns a node's cached weighted out-degree.
func (ix *DirectedCommunityIndex) OutDegree(node int) float64 { return ix.outDegrees[node] }

// TotalWeight returns m, the total arc weight fixed at build time.
func (ix *DirectedCommunityIndex) TotalWeight() float64 { return ix.m }

// CommunityWeights returns the in/out degree sums and internal weight of a
// community's current state.
func (ix *DirectedCommunityIndex) CommunityWeights(community int) (totalIn, totalOut, internal float64) {
	return ix.totalInWeights[community], ix.totalOutWeights[community], ix.internalWeights[community]
}

// NeighborCommunityWeights aggregates, per community, the arc weight between
// node and that community's members, both directions combined.
// O(degree(node)); self-loops are not included.
func (ix *DirectedCommunityIndex) NeighborCommunityWeights(node int) map[int]float64 {
	out := make(map[int]float64)
	for i := ix.outStarts[node]; i < ix.outStarts[node+1]; i++ {
		out[ix.belongings[ix.outNeighbors[i]]] += ix.outWeights[i]
	}
	for i := ix.inStarts[node]; i < ix.inStarts[node+1]; i++ {
		out[ix.belongings[ix.inNeighbors[i]]] += ix.inWeights[i]
	}
	return out
}

// Move reassigns a node to another community in O(degree(node)). Moving a
// node into its current community is a no-op.
func (ix *DirectedCommunityIndex) Move(node, community int) {
	old := ix.belongings[node]
	if old == community {
		return
	}
	w := ix.NeighborCommunityWeights(node)

	ix.totalInWeights[old] -= ix.inDegrees[node]
	ix.totalOutWeights[old] -= ix.outDegrees[node]
	ix.internalWeights[old] -= w[old] + ix.loops[node]

	ix.belongings[node] = community
	ix.totalInWeights[community] += ix.inDegrees[node]
	ix.totalOutWeights[community] += ix.outDegrees[node]
	ix.internalWeights[community] += w[community] + ix.loops[node]
}

// Gain returns the directed modularity delta of moving a node into a
// candidate community, from the cached sums. The gain of staying put is
// exactly 0.
func (ix *DirectedCommunityIndex) Gain(node, community int) float64 {
	old := ix.belongings[node]
	if old == community || ix.m == 0 {
		return 0
	}
	w := ix.NeighborCommunityWeights(node)
	kIn := ix.inDegrees[node]
	kOut := ix.outDegrees[node]
	sInOld := ix.totalInWeights[old] - kIn
	sOutOld := ix.totalOutWeights[old] - kOut
	sInNew := ix.totalInWeights[community]
	sOutNew := ix.totalOutWeights[community]
	return (w[community]-w[old])/ix.m +
		(kOut*(sInOld-sInNew)+kIn*(sOutOld-sOutNew))/(ix.m*ix.m)
}

// Modularity returns the directed modularity of the current partition from
// the cached sums.
func (ix *DirectedCommunityIndex) Modularity() float64 {
	if ix.m == 0 {
		return 0
	}
	var q float64
	for c := range ix.internalWeights {
		in, out := ix.totalInWeights[c], ix.totalOutWeights[c]
		if in == 0 && out == 0 && ix.internalWeights[c] == 0 {
			continue
		}
		q += ix.internalWeights[c]/ix.m - in*out/(ix.m*ix.m)
	}
	return q
}

// Aggregate zooms out into a coarser directed graph over the current
// communities, intra-community weight becoming a self-loop, together with a
// fresh singleton-community index over it.
func (ix *DirectedCommunityIndex) Aggregate() (*graph.Graph, *DirectedCommunityIndex, error) {
	g, _, err := ix.aggregate()
	if err != nil {
		return nil, nil, err
	}
	return g, BuildDirectedCommunityIndex(g, ix.weightAttr), nil
}

func (ix *DirectedCommunityIndex) aggregate() (*graph.Graph, map[int]int, error) {
	renum := renumberCommunities(ix.belongings)
	g := graph.NewDirected()
	for i := 0; i < len(renum); i++ {
		if _, err := g.AddNode(strconv.Itoa(i), nil); err != nil {
			return nil, nil, err
		}
	}

	inter := make(map[[2]int]float64)
	for node := range ix.keys {
		cu := renum[ix.belongings[node]]
		for i := ix.outStarts[node]; i < ix.outStarts[node+1]; i++ {
			cv := renum[ix.belongings[ix.outNeighbors[i]]]
			if cu == cv {
				continue // covered by internalWeights
			}
			inter[[2]int{cu, cv}] += ix.outWeights[i]
		}
	}

	for old, id := range renum {
		internal := ix.internalWeights[old]
		if internal == 0 {
			continue
		}
		key := strconv.Itoa(id)
		if _, err := g.AddDirectedEdge(key, key, map[string]any{ix.weightAttr: internal}); err != nil {
			return nil, nil, err
		}
	}
	for pair, w := range inter {
		_, err := g.AddDirectedEdge(strconv.Itoa(pair[0]), strconv.Itoa(pair[1]), map[string]any{ix.weightAttr: w})
		if err != nil {
			return nil, nil, err
		}
	}
	return g, renum, nil
}
