package graph

// GraphType determines which edge directedness a store accepts.
type GraphType uint8

const (
	// Mixed stores accept both directed and undirected edges.
	Mixed GraphType = iota
	// Directed stores accept directed edges only.
	Directed
	// Undirected stores accept undirected edges only.
	Undirected
)

// String returns the lowercase name of the graph type.
func (t GraphType) String() string {
	switch t {
	case Directed:
		return "directed"
	case Undirected:
		return "undirected"
	default:
		return "mixed"
	}
}

// Option configures a Graph at construction time.
type Option func(*Graph)

// WithMultiEdges permits parallel edges between the same node pair.
func WithMultiEdges() Option {
	return func(g *Graph) { g.multi = true }
}

// WithoutSelfLoops rejects edges whose source and target coincide.
// Self-loops are allowed by default.
func WithoutSelfLoops() Option {
	return func(g *Graph) { g.selfLoops = false }
}

// edgeSet is a set of edge keys.
type edgeSet map[string]struct{}

// adjacency maps a neighbor key to the set of connecting edge keys.
type adjacency map[string]edgeSet

// nodeData holds a node's attributes and adjacency state. Directed and
// undirected incidences live in separate collections; self-loop counts are
// tracked in dedicated counters so degree queries stay O(1) and undirected
// loops can be counted twice without walking the adjacency.
type nodeData struct {
	key        string
	attributes map[string]any

	out   adjacency // directed edges leaving this node, by target
	in    adjacency // directed edges entering this node, by source
	undir adjacency // undirected edges incident to this node, by neighbor

	outDegree   int // directed out-edges, self-loops counted once
	inDegree    int // directed in-edges, self-loops counted once
	undirDegree int // undirected edges, self-loops counted twice

	directedLoops   int
	undirectedLoops int
}

func newNodeData(key string, attrs map[string]any) *nodeData {
	if attrs == nil {
		attrs = make(map[string]any)
	}
	return &nodeData{
		key:        key,
		attributes: attrs,
		out:        make(adjacency),
		in:         make(adjacency),
		undir:      make(adjacency),
	}
}

// edgeData holds an edge's endpoints, directedness, and attributes. The
// directed flag and endpoints never change after creation.
type edgeData struct {
	key        string
	source     string
	target     string
	directed   bool
	generated  bool
	attributes map[string]any
}

// Graph is the in-memory graph store. See the package documentation for the
// concurrency and ordering contract.
type Graph struct {
	typ       GraphType
	multi     bool
	selfLoops bool

	attributes map[string]any
	nodes      map[string]*nodeData
	edges      map[string]*edgeData

	observers map[SubscriptionID]*observer
	nextSub   SubscriptionID
}

// New creates an empty mixed graph. By default self-loops are allowed and
// parallel edges are not.
func New(opts ...Option) *Graph {
	return newGraph(Mixed, opts...)
}

// NewDirected creates an empty graph accepting directed edges only.
func NewDirected(opts ...Option) *Graph {
	return newGraph(Directed, opts...)
}

// NewUndirected creates an empty graph accepting undirected edges only.
func NewUndirected(opts ...Option) *Graph {
	return newGraph(Undirected, opts...)
}

func newGraph(typ GraphType, opts ...Option) *Graph {
	g := &Graph{
		typ:        typ,
		selfLoops:  true,
		attributes: make(map[string]any),
		nodes:      make(map[string]*nodeData),
		edges:      make(map[string]*edgeData),
		observers:  make(map[SubscriptionID]*observer),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Type returns the graph's edge-type policy.
func (g *Graph) Type() GraphType { return g.typ }

// MultiEdges reports whether parallel edges are permitted.
func (g *Graph) MultiEdges() bool { return g.multi }

// SelfLoops reports whether self-loops are permitted.
func (g *Graph) SelfLoops() bool { return g.selfLoops }

// Order returns the number of nodes.
func (g *Graph) Order() int { return len(g.nodes) }

// Size returns the number of edges.
func (g *Graph) Size() int { return len(g.edges) }

func (a adjacency) add(neighbor, edge string) {
	set, ok := a[neighbor]
	if !ok {
		set = make(edgeSet)
		a[neighbor] = set
	}
	set[edge] = struct{}{}
}

func (a adjacency) remove(neighbor, edge string) {
	set, ok := a[neighbor]
	if !ok {
		return
	}
	delete(set, edge)
	if len(set) == 0 {
		delete(a, neighbor)
	}
}
