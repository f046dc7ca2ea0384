package graph

import (
	"errors"
	"sort"
	"testing"
)

func TestAddNode(t *testing.T) {
	g := New()
	k, err := g.AddNode("a", map[string]any{"x": 1})
	if err != nil {
		t.Fatalf("AddNode: %v", err)
	}
	if k != "a" {
		t.Errorf("AddNode returned %q, want \"a\"", k)
	}
	if !g.HasNode("a") || g.Order() != 1 {
		t.Errorf("node not stored: has=%v order=%d", g.HasNode("a"), g.Order())
	}
	if v, _ := g.NodeAttribute("a", "x"); v != 1 {
		t.Errorf("attribute x = %v, want 1", v)
	}
}

// TestAddNode_DuplicateLeavesOrderUnchanged covers the duplicate-key
// invariant: insertion fails without mutating the node count.
func TestAddNode_DuplicateLeavesOrderUnchanged(t *testing.T) {
	g := New()
	mustAddNode(t, g, "a")
	if _, err := g.AddNode("a", map[string]any{"x": 2}); !errors.Is(err, ErrUsage) {
		t.Fatalf("duplicate AddNode error = %v, want ErrUsage", err)
	}
	if g.Order() != 1 {
		t.Errorf("order = %d after failed insert, want 1", g.Order())
	}
	if v, _ := g.NodeAttribute("a", "x"); v != nil {
		t.Errorf("failed insert mutated attributes: x = %v", v)
	}
}

func TestMergeNode(t *testing.T) {
	g := New()
	k, created, err := g.MergeNode("a", map[string]any{"x": 1})
	if err != nil || !created || k != "a" {
		t.Fatalf("MergeNode fresh = (%q, %v, %v), want (\"a\", true, nil)", k, created, err)
	}
	_, created, err = g.MergeNode("a", map[string]any{"y": 2})
	if err != nil || created {
		t.Fatalf("MergeNode existing = (created=%v, %v), want (false, nil)", created, err)
	}
	attrs, _ := g.NodeAttributes("a")
	if attrs["x"] != 1 || attrs["y"] != 2 {
		t.Errorf("merged attributes = %v, want x:1 y:2", attrs)
	}
	if g.Order() != 1 {
		t.Errorf("order = %d, want 1", g.Order())
	}
}

// TestDropNode_CascadesEdges covers invariant 8: dropping a node removes
// every incident edge, leaving no dangling reference.
func TestDropNode_CascadesEdges(t *testing.T) {
	g := New()
	for _, k := range []string{"a", "b", "c"} {
		mustAddNode(t, g, k)
	}
	inKey, err := g.AddDirectedEdge("b", "a", nil)
	if err != nil {
		t.Fatal(err)
	}
	outKey, err := g.AddDirectedEdge("a", "c", nil)
	if err != nil {
		t.Fatal(err)
	}
	undirKey, err := g.AddUndirectedEdge("a", "b", nil)
	if err != nil {
		t.Fatal(err)
	}
	loopKey, err := g.AddDirectedEdge("a", "a", nil)
	if err != nil {
		t.Fatal(err)
	}
	bystander, err := g.AddDirectedEdge("b", "c", nil)
	if err != nil {
		t.Fatal(err)
	}

	sizeBefore := g.Size()
	if err := g.DropNode("a"); err != nil {
		t.Fatalf("DropNode: %v", err)
	}
	for _, k := range []string{inKey, outKey, undirKey, loopKey} {
		if g.HasEdge(k) {
			t.Errorf("edge %q survived its endpoint", k)
		}
	}
	if !g.HasEdge(bystander) {
		t.Error("unrelated edge was dropped")
	}
	if g.Size() != sizeBefore-4 {
		t.Errorf("size = %d, want %d", g.Size(), sizeBefore-4)
	}
	if g.HasNode("a") || g.Order() != 2 {
		t.Errorf("node not removed: has=%v order=%d", g.HasNode("a"), g.Order())
	}

	// The surviving endpoints' adjacency must be consistent.
	if d, _ := g.Degree("b"); d != 1 {
		t.Errorf("degree of b = %d, want 1", d)
	}
}

func TestDropNode_Missing(t *testing.T) {
	g := New()
	if err := g.DropNode("ghost"); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestNodeKeys(t *testing.T) {
	g := New()
	want := []string{"a", "b", "c"}
	for _, k := range want {
		mustAddNode(t, g, k)
	}
	got := g.NodeKeys()
	sort.Strings(got)
	if len(got) != len(want) {
		t.Fatalf("NodeKeys length = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("NodeKeys (sorted) = %v, want %v", got, want)
			break
		}
	}
}
