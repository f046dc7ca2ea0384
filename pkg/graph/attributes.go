package graph

// Graph-level attributes. These never emit events: the notification surface
// covers entity mutations only.

// Attribute returns a graph-level attribute value.
func (g *Graph) Attribute(name string) (any, bool) {
	v, ok := g.attributes[name]
	return v, ok
}

// SetAttribute sets a graph-level attribute.
func (g *Graph) SetAttribute(name string, value any) {
	g.attributes[name] = value
}

// RemoveAttribute removes a graph-level attribute. Missing names are
// ignored.
func (g *Graph) RemoveAttribute(name string) {
	delete(g.attributes, name)
}

// Attributes returns a copy of the graph-level attribute mapping.
func (g *Graph) Attributes() map[string]any {
	return copyAttrs(g.attributes)
}

// ReplaceAttributes replaces the whole graph-level mapping. A nil mapping
// fails with ErrInvalidArgument.
func (g *Graph) ReplaceAttributes(attrs map[string]any) error {
	if attrs == nil {
		return invalidArgumentError("ReplaceAttributes", "attribute mapping is nil")
	}
	g.attributes = copyAttrs(attrs)
	return nil
}

// MergeAttributes merges attrs into the graph-level mapping. A nil mapping
// fails with ErrInvalidArgument.
func (g *Graph) MergeAttributes(attrs map[string]any) error {
	if attrs == nil {
		return invalidArgumentError("MergeAttributes", "attribute mapping is nil")
	}
	for name, value := range attrs {
		g.attributes[name] = value
	}
	return nil
}

// NodeAttribute returns one attribute of a node. Missing attribute names
// yield a nil value without error; a missing node fails with ErrNotFound.
func (g *Graph) NodeAttribute(key any, name string) (any, error) {
	node, err := g.node("NodeAttribute", key)
	if err != nil {
		return nil, err
	}
	return node.attributes[name], nil
}

// HasNodeAttribute reports whether a node carries the named attribute.
func (g *Graph) HasNodeAttribute(key any, name string) (bool, error) {
	node, err := g.node("HasNodeAttribute", key)
	if err != nil {
		return false, err
	}
	_, ok := node.attributes[name]
	return ok, nil
}

// SetNodeAttribute sets one attribute of a node.
func (g *Graph) SetNodeAttribute(key any, name string, value any) error {
	node, err := g.node("SetNodeAttribute", key)
	if err != nil {
		return err
	}
	node.attributes[name] = value
	g.emit(Event{Kind: NodeAttributesUpdated, Key: node.key, Update: AttrSet, Name: name})
	return nil
}

// RemoveNodeAttribute removes one attribute of a node. Removing a missing
// name is a no-op that still notifies, matching set semantics.
func (g *Graph) RemoveNodeAttribute(key any, name string) error {
	node, err := g.node("RemoveNodeAttribute", key)
	if err != nil {
		return err
	}
	delete(node.attributes, name)
	g.emit(Event{Kind: NodeAttributesUpdated, Key: node.key, Update: AttrRemove, Name: name})
	return nil
}

// NodeAttributes returns a copy of a node's attribute mapping.
func (g *Graph) NodeAttributes(key any) (map[string]any, error) {
	node, err := g.node("NodeAttributes", key)
	if err != nil {
		return nil, err
	}
	return copyAttrs(node.attributes), nil
}

// ReplaceNodeAttributes replaces a node's whole attribute mapping, clearing
// prior attributes. A nil mapping fails with ErrInvalidArgument.
func (g *Graph) ReplaceNodeAttributes(key any, attrs map[string]any) error {
	node, err := g.node("ReplaceNodeAttributes", key)
	if err != nil {
		return err
	}
	if attrs == nil {
		return invalidArgumentError("ReplaceNodeAttributes", "attribute mapping is nil")
	}
	node.attributes = copyAttrs(attrs)
	g.emit(Event{Kind: NodeAttributesUpdated, Key: node.key, Update: AttrReplace})
	return nil
}

// MergeNodeAttributes merges attrs into a node's attribute mapping. A nil
// mapping fails with ErrInvalidArgument.
func (g *Graph) MergeNodeAttributes(key any, attrs map[string]any) error {
	node, err := g.node("MergeNodeAttributes", key)
	if err != nil {
		return err
	}
	if attrs == nil {
		return invalidArgumentError("MergeNodeAttributes", "attribute mapping is nil")
	}
	for name, value := range attrs {
		node.attributes[name] = value
	}
	g.emit(Event{Kind: NodeAttributesUpdated, Key: node.key, Update: AttrMerge})
	return nil
}

// EdgeAttribute returns one attribute of an edge. Missing attribute names
// yield a nil value without error; a missing edge fails with ErrNotFound.
func (g *Graph) EdgeAttribute(key any, name string) (any, error) {
	edge, err := g.edge("EdgeAttribute", key)
	if err != nil {
		return nil, err
	}
	return edge.attributes[name], nil
}

// HasEdgeAttribute reports whether an edge carries the named attribute.
func (g *Graph) HasEdgeAttribute(key any, name string) (bool, error) {
	edge, err := g.edge("HasEdgeAttribute", key)
	if err != nil {
		return false, err
	}
	_, ok := edge.attributes[name]
	return ok, nil
}

// SetEdgeAttribute sets one attribute of an edge.
func (g *Graph) SetEdgeAttribute(key any, name string, value any) error {
	edge, err := g.edge("SetEdgeAttribute", key)
	if err != nil {
		return err
	}
	edge.attributes[name] = value
	g.emit(Event{Kind: EdgeAttributesUpdated, Key: edge.key, Source: edge.source, Target: edge.target, Update: AttrSet, Name: name})
	return nil
}

// RemoveEdgeAttribute removes one attribute of an edge.
func (g *Graph) RemoveEdgeAttribute(key any, name string) error {
	edge, err := g.edge("RemoveEdgeAttribute", key)
	if err != nil {
		return err
	}
	delete(edge.attributes, name)
	g.emit(Event{Kind: EdgeAttributesUpdated, Key: edge.key, Source: edge.source, Target: edge.target, Update: AttrRemove, Name: name})
	return nil
}

// EdgeAttributes returns a copy of an edge's attribute mapping.
func (g *Graph) EdgeAttributes(key any) (map[string]any, error) {
	edge, err := g.edge("EdgeAttributes", key)
	if err != nil {
		return nil, err
	}
	return copyAttrs(edge.attributes), nil
}

// ReplaceEdgeAttributes replaces an edge's whole attribute mapping, clearing
// prior attributes. A nil mapping fails with ErrInvalidArgument.
func (g *Graph) ReplaceEdgeAttributes(key any, attrs map[string]any) error {
	edge, err := g.edge("ReplaceEdgeAttributes", key)
	if err != nil {
		return err
	}
	if attrs == nil {
		return invalidArgumentError("ReplaceEdgeAttributes", "attribute mapping is nil")
	}
	edge.attributes = copyAttrs(attrs)
	g.emit(Event{Kind: EdgeAttributesUpdated, Key: edge.key, Source: edge.source, Target: edge.target, Update: AttrReplace})
	return nil
}

// MergeEdgeAttributes merges attrs into an edge's attribute mapping. A nil
// mapping fails with ErrInvalidArgument.
func (g *Graph) MergeEdgeAttributes(key any, attrs map[string]any) error {
	edge, err := g.edge("MergeEdgeAttributes", key)
	if err != nil {
		return err
	}
	if attrs == nil {
		return invalidArgumentError("MergeEdgeAttributes", "attribute mapping is nil")
	}
	for name, value := range attrs {
		edge.attributes[name] = value
	}
	g.emit(Event{Kind: EdgeAttributesUpdated, Key: edge.key, Source: edge.source, Target: edge.target, Update: AttrMerge})
	return nil
}

// NumericEdgeAttribute returns an edge attribute coerced to float64, or the
// fallback when the attribute is absent or not numeric. Index builders use
// this to read edge weights.
func (g *Graph) NumericEdgeAttribute(key any, name string, fallback float64) (float64, error) {
	edge, err := g.edge("NumericEdgeAttribute", key)
	if err != nil {
		return 0, err
	}
	return Numeric(edge.attributes[name], fallback), nil
}

// Numeric coerces an attribute value to float64, returning the fallback for
// absent or non-numeric values.
func Numeric(v any, fallback float64) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int8:
		return float64(n)
	case int16:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case uint:
		return float64(n)
	case uint8:
		return float64(n)
	case uint16:
		return float64(n)
	case uint32:
		return float64(n)
	case uint64:
		return float64(n)
	default:
		return fallback
	}
}
