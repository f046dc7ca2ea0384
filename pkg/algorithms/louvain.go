package algorithms

import (
	"strconv"

	"github.com/jamieparkinson/graphology/pkg/graph"
)

// LouvainOptions tunes the multi-level modularity optimization.
type LouvainOptions struct {
	// WeightAttr is the edge attribute read as weight (DefaultWeightAttr
	// when empty).
	WeightAttr string
	// MinGain is the smallest modularity delta worth a move. Defaults to
	// 1e-9.
	MinGain float64
	// MaxLevels caps the number of aggregation levels. Defaults to 64,
	// which no finite graph reaches in practice since every level strictly
	// shrinks the node set.
	MaxLevels int
}

// LouvainResult is the outcome of a Louvain run.
type LouvainResult struct {
	// Communities maps every node key of the input graph to a dense
	// community id.
	Communities map[string]int
	// Modularity is the quality of the final partition, measured on the
	// input graph's weights.
	Modularity float64
	// Levels is the number of aggregation levels performed.
	Levels int
}

// communityIndex abstracts the two community structure variants for the
// driver loop.
type communityIndex interface {
	Order() int
	Key(id int) string
	Community(node int) int
	NeighborCommunityWeights(node int) map[int]float64
	Gain(node, community int) float64
	Move(node, community int)
	Modularity() float64
	aggregateIndex() (*graph.Graph, map[int]int, communityIndex, error)
	idOf(key string) (int, bool)
}

func (ix *UndirectedCommunityIndex) aggregateIndex() (*graph.Graph, map[int]int, communityIndex, error) {
	g, renum, err := ix.aggregate()
	if err != nil {
		return nil, nil, nil, err
	}
	return g, renum, BuildUndirectedCommunityIndex(g, ix.weightAttr), nil
}

func (ix *UndirectedCommunityIndex) idOf(key string) (int, bool) {
	id, ok := ix.ids[key]
	return id, ok
}

func (ix *DirectedCommunityIndex) aggregateIndex() (*graph.Graph, map[int]int, communityIndex, error) {
	g, renum, err := ix.aggregate()
	if err != nil {
		return nil, nil, nil, err
	}
	return g, renum, BuildDirectedCommunityIndex(g, ix.weightAttr), nil
}

func (ix *DirectedCommunityIndex) idOf(key string) (int, bool) {
	id, ok := ix.ids[key]
	return id, ok
}

// Louvain runs multi-level modularity optimization over g: a local moving
// phase on the community index, then an aggregation ("zoom out"), repeated
// until no move improves modularity. Undirected graphs use the undirected
// index; directed and mixed graphs use the directed one. Nodes are visited
// in the sorted key order of each level and equal-gain ties resolve to the
// smallest community id, so runs are deterministic.
func Louvain(g *graph.Graph, opts LouvainOptions) (*LouvainResult, error) {
	if opts.MinGain <= 0 {
		opts.MinGain = 1e-9
	}
	if opts.MaxLevels <= 0 {
		opts.MaxLevels = 64
	}

	var ix communityIndex
	if g.Type() == graph.Undirected {
		ix = BuildUndirectedCommunityIndex(g, opts.WeightAttr)
	} else {
		ix = BuildDirectedCommunityIndex(g, opts.WeightAttr)
	}

	result := &LouvainResult{Communities: make(map[string]int, g.Order())}
	if ix.Order() == 0 {
		return result, nil
	}

	// membership tracks, per original node key, its node key at the current
	// level. Level zero is the identity.
	membership := make(map[string]string, ix.Order())
	for _, k := range g.NodeKeys() {
		membership[k] = k
	}

	for level := 0; level < opts.MaxLevels; level++ {
		if !localMovingPhase(ix, opts.MinGain) {
			break
		}
		result.Levels++

		_, renum, next, err := ix.aggregateIndex()
		if err != nil {
			return nil, err
		}
		for orig, levelKey := range membership {
			id, ok := ix.idOf(levelKey)
			if !ok {
				continue
			}
			membership[orig] = strconv.Itoa(renum[ix.Community(id)])
		}
		ix = next
	}

	// Final assignment: every surviving level node is one community.
	labels := make(map[string]int)
	for orig, levelKey := range membership {
		label, ok := labels[levelKey]
		if !ok {
			label = len(labels)
			labels[levelKey] = label
		}
		result.Communities[orig] = label
	}
	result.Modularity = ix.Modularity()
	return result, nil
}

// localMovingPhase repeatedly sweeps all nodes, moving each to the neighbor
// community with the best positive gain, until a full sweep makes no move.
// Equal gains resolve to the smallest community id, so sweeps do not depend
// on map iteration order. It reports whether any move happened at all.
func localMovingPhase(ix communityIndex, minGain float64) bool {
	anyMove := false
	for {
		moved := false
		for node := 0; node < ix.Order(); node++ {
			best := ix.Community(node)
			bestGain := 0.0
			for community := range ix.NeighborCommunityWeights(node) {
				if community == ix.Community(node) {
					continue
				}
				gain := ix.Gain(node, community)
				if gain > bestGain || (gain == bestGain && gain > 0 && community < best) {
					best = community
					bestGain = gain
				}
			}
			if best != ix.Community(node) && bestGain > minGain {
				ix.Move(node, best)
				moved = true
				anyMove = true
			}
		}
		if !moved {
			return anyMove
		}
	}
}
