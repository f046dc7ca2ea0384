package graph

import (
	"errors"
	"testing"
)

func buildSample(t *testing.T) *Graph {
	t.Helper()
	g := New(WithMultiEdges())
	g.SetAttribute("name", "sample")
	if _, err := g.AddNode("a", map[string]any{"label": "alpha"}); err != nil {
		t.Fatal(err)
	}
	mustAddNode(t, g, "b")
	mustAddNode(t, g, "c")
	if _, err := g.AddEdgeWithKey("e1", "a", "b", map[string]any{"weight": 2.5}); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddUndirectedEdge("b", "c", nil); err != nil {
		t.Fatal(err)
	}
	mustAddEdge(t, g, "a", "a")
	return g
}

func assertSameGraph(t *testing.T, got, want *Graph) {
	t.Helper()
	if got.Type() != want.Type() || got.MultiEdges() != want.MultiEdges() || got.SelfLoops() != want.SelfLoops() {
		t.Error("configuration did not survive the round trip")
	}
	if got.Order() != want.Order() || got.Size() != want.Size() {
		t.Fatalf("round trip changed shape: order %d->%d size %d->%d",
			want.Order(), got.Order(), want.Size(), got.Size())
	}
	for _, key := range want.NodeKeys() {
		if !got.HasNode(key) {
			t.Errorf("node %q lost in round trip", key)
		}
	}
	for _, key := range want.EdgeKeys() {
		if !got.HasEdge(key) {
			t.Errorf("edge %q lost in round trip", key)
			continue
		}
		ws, wt, _ := want.EdgeExtremities(key)
		gs, gt, _ := got.EdgeExtremities(key)
		if ws != gs || wt != gt {
			t.Errorf("edge %q endpoints changed: (%s,%s) -> (%s,%s)", key, ws, wt, gs, gt)
		}
		wd, _ := want.IsEdgeDirected(key)
		gd, _ := got.IsEdgeDirected(key)
		if wd != gd {
			t.Errorf("edge %q directedness changed", key)
		}
	}
}

func TestExportImport(t *testing.T) {
	g := buildSample(t)
	restored, err := Import(g.Export())
	if err != nil {
		t.Fatal(err)
	}
	assertSameGraph(t, restored, g)

	if v, ok := restored.Attribute("name"); !ok || v != "sample" {
		t.Errorf("graph attribute = (%v, %v), want (sample, true)", v, ok)
	}
	if v, _ := restored.NodeAttribute("a", "label"); v != "alpha" {
		t.Errorf("node attribute = %v, want alpha", v)
	}
	// Generated keys are exported explicitly, so identity survives.
	for _, key := range g.EdgeKeys() {
		if !restored.HasEdge(key) {
			t.Errorf("generated edge key %q missing after import", key)
		}
	}
}

func TestMarshalUnmarshal(t *testing.T) {
	g := buildSample(t)
	data, err := Marshal(g)
	if err != nil {
		t.Fatal(err)
	}
	restored, err := Unmarshal(data)
	if err != nil {
		t.Fatal(err)
	}
	assertSameGraph(t, restored, g)
	// JSON numbers decode as float64 either way for the weight.
	if v, _ := restored.EdgeAttribute("e1", "weight"); v != 2.5 {
		t.Errorf("edge weight after round trip = %v, want 2.5", v)
	}
}

func TestMarshalCompressed(t *testing.T) {
	g := buildSample(t)
	data, err := MarshalCompressed(g)
	if err != nil {
		t.Fatal(err)
	}
	restored, err := UnmarshalCompressed(data)
	if err != nil {
		t.Fatal(err)
	}
	assertSameGraph(t, restored, g)

	if _, err := UnmarshalCompressed([]byte("not snappy")); err == nil {
		t.Error("UnmarshalCompressed accepted garbage input")
	}
}

func TestImport_Invalid(t *testing.T) {
	if _, err := Import(nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("Import(nil) = %v, want ErrInvalidArgument", err)
	}
	if _, err := Import(&SerializedGraph{Options: SerializedOptions{Type: "hyper"}}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("unknown type error = %v, want ErrInvalidArgument", err)
	}
	// Structural violations surface as the usual mutation errors.
	_, err := Import(&SerializedGraph{
		Options: SerializedOptions{Type: "directed", AllowSelfLoops: true},
		Nodes:   []SerializedNode{{Key: "a"}},
		Edges:   []SerializedEdge{{Key: "e", Source: "a", Target: "ghost"}},
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("dangling edge error = %v, want ErrNotFound", err)
	}
	_, err = Import(&SerializedGraph{
		Options: SerializedOptions{Type: "directed", AllowSelfLoops: true},
		Nodes:   []SerializedNode{{Key: "a"}, {Key: "b"}},
		Edges:   []SerializedEdge{{Key: "e", Source: "a", Target: "b", Undirected: true}},
	})
	if !errors.Is(err, ErrUsage) {
		t.Errorf("undirected edge in directed type error = %v, want ErrUsage", err)
	}
}

func TestUnmarshal_MalformedJSON(t *testing.T) {
	if _, err := Unmarshal([]byte("{")); err == nil {
		t.Error("Unmarshal accepted malformed JSON")
	}
}
