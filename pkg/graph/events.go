package graph

// EventKind identifies a change notification category.
type EventKind uint8

const (
	// NodeAdded fires after a node is created.
	NodeAdded EventKind = iota
	// NodeDropped fires after a node (and its incident edges) are removed.
	NodeDropped
	// EdgeAdded fires after an edge is created.
	EdgeAdded
	// EdgeDropped fires after an edge is removed.
	EdgeDropped
	// NodeAttributesUpdated fires after a node attribute mutation.
	NodeAttributesUpdated
	// EdgeAttributesUpdated fires after an edge attribute mutation.
	EdgeAttributesUpdated
	// Cleared fires after Clear or ClearEdges.
	Cleared

	eventKindCount
)

// String returns the camel-case name of the event kind.
func (k EventKind) String() string {
	switch k {
	case NodeAdded:
		return "nodeAdded"
	case NodeDropped:
		return "nodeDropped"
	case EdgeAdded:
		return "edgeAdded"
	case EdgeDropped:
		return "edgeDropped"
	case NodeAttributesUpdated:
		return "nodeAttributesUpdated"
	case EdgeAttributesUpdated:
		return "edgeAttributesUpdated"
	case Cleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// AttrUpdate describes the nature of an attribute change.
type AttrUpdate uint8

const (
	// AttrSet is a single-attribute assignment.
	AttrSet AttrUpdate = iota
	// AttrMerge is a whole-mapping merge.
	AttrMerge
	// AttrReplace is a whole-mapping replacement.
	AttrReplace
	// AttrRemove is a single-attribute removal.
	AttrRemove
)

// String returns the lowercase name of the update kind.
func (u AttrUpdate) String() string {
	switch u {
	case AttrMerge:
		return "merge"
	case AttrReplace:
		return "replace"
	case AttrRemove:
		return "remove"
	default:
		return "set"
	}
}

// Event is a change notification. Key is the affected node or edge key;
// Source and Target are set for edge events. Update and Name describe
// attribute changes (Name is empty for merge/replace).
type Event struct {
	Kind   EventKind
	Key    string
	Source string
	Target string
	Update AttrUpdate
	Name   string
}

// Handler receives change notifications. Handlers run synchronously in the
// mutating call stack, after the mutation has committed; they must not
// mutate the graph reentrantly.
type Handler func(Event)

// SubscriptionID identifies a registered handler.
type SubscriptionID uint64

type observer struct {
	handler Handler
	kinds   [eventKindCount]bool
	all     bool
}

// Subscribe registers a handler for the given event kinds. With no kinds the
// handler receives every event. The returned id unregisters via Unsubscribe.
func (g *Graph) Subscribe(h Handler, kinds ...EventKind) SubscriptionID {
	obs := &observer{handler: h, all: len(kinds) == 0}
	for _, k := range kinds {
		if k < eventKindCount {
			obs.kinds[k] = true
		}
	}
	g.nextSub++
	id := g.nextSub
	g.observers[id] = obs
	return id
}

// Unsubscribe removes a previously registered handler. Unknown ids are
// ignored.
func (g *Graph) Unsubscribe(id SubscriptionID) {
	delete(g.observers, id)
}

// emit delivers an event to every matching observer. Called only after the
// mutation is fully committed.
func (g *Graph) emit(e Event) {
	if len(g.observers) == 0 {
		return
	}
	for _, obs := range g.observers {
		if obs.all || obs.kinds[e.Kind] {
			obs.handler(e)
		}
	}
}
