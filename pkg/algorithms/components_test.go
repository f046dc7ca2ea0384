package algorithms

import (
	"errors"
	"testing"

	"github.com/jamieparkinson/graphology/pkg/graph"
)

func addNodes(t *testing.T, g *graph.Graph, keys ...string) {
	t.Helper()
	for _, k := range keys {
		if _, err := g.AddNode(k, nil); err != nil {
			t.Fatal(err)
		}
	}
}

func addEdges(t *testing.T, g *graph.Graph, pairs ...[2]string) {
	t.Helper()
	for _, p := range pairs {
		if _, err := g.AddEdge(p[0], p[1], nil); err != nil {
			t.Fatal(err)
		}
	}
}

// TestComponents_Transitivity covers the reachability scenario: edges a->b
// and b->c place a and c in the same component even though no edge joins
// them directly, and direction never splits a component.
func TestComponents_Transitivity(t *testing.T) {
	g := graph.NewDirected()
	addNodes(t, g, "a", "b", "c", "d")
	addEdges(t, g, [2]string{"a", "b"}, [2]string{"b", "c"})

	ix := BuildComponentsIndex(g)
	if ix.Count() != 2 {
		t.Fatalf("Count = %d, want 2", ix.Count())
	}
	ca, err := ix.ComponentOf("a")
	if err != nil {
		t.Fatal(err)
	}
	cc, err := ix.ComponentOf("c")
	if err != nil {
		t.Fatal(err)
	}
	if ca != cc {
		t.Errorf("a in component %d, c in component %d, want equal", ca, cc)
	}
	cd, _ := ix.ComponentOf("d")
	if cd == ca {
		t.Error("isolated node d shares a component with a")
	}
}

func TestComponents_Ordering(t *testing.T) {
	g := graph.New()
	// One component of three, two of two, one singleton.
	addNodes(t, g, "x", "y", "z", "b1", "b2", "a1", "a2", "solo")
	addEdges(t, g,
		[2]string{"x", "y"}, [2]string{"y", "z"},
		[2]string{"b1", "b2"},
		[2]string{"a1", "a2"},
	)

	ix := BuildComponentsIndex(g)
	comps := ix.Components()
	if len(comps) != 4 {
		t.Fatalf("got %d components, want 4", len(comps))
	}
	// Largest first.
	if len(comps[0]) != 3 {
		t.Errorf("component 0 has %d members, want 3", len(comps[0]))
	}
	// Equal sizes break ties on the smallest member key: a1 before b1.
	if comps[1][0] != "a1" || comps[2][0] != "b1" {
		t.Errorf("tie-break order = %q, %q, want a1, b1", comps[1][0], comps[2][0])
	}
	if len(comps[3]) != 1 || comps[3][0] != "solo" {
		t.Errorf("component 3 = %v, want [solo]", comps[3])
	}
	// Member lists are sorted.
	if comps[0][0] != "x" || comps[0][1] != "y" || comps[0][2] != "z" {
		t.Errorf("component 0 members = %v, want [x y z]", comps[0])
	}
}

func TestComponents_SingleComponent(t *testing.T) {
	g := graph.NewUndirected()
	addNodes(t, g, "a", "b", "c")
	addEdges(t, g, [2]string{"a", "b"}, [2]string{"b", "c"})

	ix := BuildComponentsIndex(g)
	if ix.Count() != 1 {
		t.Errorf("Count = %d, want 1", ix.Count())
	}
	for _, k := range []string{"a", "b", "c"} {
		if id, err := ix.ComponentOf(k); err != nil || id != 0 {
			t.Errorf("ComponentOf(%s) = (%d, %v), want (0, nil)", k, id, err)
		}
	}
}

func TestComponents_Empty(t *testing.T) {
	ix := BuildComponentsIndex(graph.New())
	if ix.Count() != 0 {
		t.Errorf("Count = %d, want 0", ix.Count())
	}
	if _, err := ix.ComponentOf("a"); !errors.Is(err, graph.ErrNotFound) {
		t.Errorf("ComponentOf on empty index error = %v, want graph.ErrNotFound", err)
	}
}

// TestComponents_Static checks that mutations after the build are invisible.
func TestComponents_Static(t *testing.T) {
	g := graph.New()
	addNodes(t, g, "a", "b")
	ix := BuildComponentsIndex(g)
	if ix.Count() != 2 {
		t.Fatalf("Count = %d, want 2", ix.Count())
	}

	addEdges(t, g, [2]string{"a", "b"})
	if ix.Count() != 2 {
		t.Error("index observed a post-build edge")
	}
	ca, _ := ix.ComponentOf("a")
	cb, _ := ix.ComponentOf("b")
	if ca == cb {
		t.Error("post-build edge merged components in a static index")
	}
}

func TestComponents_SelfLoopOnly(t *testing.T) {
	g := graph.New()
	addNodes(t, g, "a")
	addEdges(t, g, [2]string{"a", "a"})
	ix := BuildComponentsIndex(g)
	if ix.Count() != 1 {
		t.Errorf("Count = %d, want 1", ix.Count())
	}
}
