package graph

import "testing"

func TestSubscribe_All(t *testing.T) {
	g := New()
	var events []Event
	g.Subscribe(func(e Event) { events = append(events, e) })

	mustAddNode(t, g, "a")
	mustAddNode(t, g, "b")
	key := mustAddEdge(t, g, "a", "b")
	if err := g.SetNodeAttribute("a", "x", 1); err != nil {
		t.Fatal(err)
	}
	if err := g.DropEdge(key); err != nil {
		t.Fatal(err)
	}
	if err := g.DropNode("a"); err != nil {
		t.Fatal(err)
	}
	g.Clear()

	want := []EventKind{NodeAdded, NodeAdded, EdgeAdded, NodeAttributesUpdated, EdgeDropped, NodeDropped, Cleared}
	if len(events) != len(want) {
		t.Fatalf("received %d events, want %d", len(events), len(want))
	}
	for i, e := range events {
		if e.Kind != want[i] {
			t.Errorf("event %d kind = %v, want %v", i, e.Kind, want[i])
		}
	}
	if events[2].Source != "a" || events[2].Target != "b" {
		t.Errorf("edge event endpoints = (%s, %s), want (a, b)", events[2].Source, events[2].Target)
	}
	if events[3].Update != AttrSet || events[3].Name != "x" {
		t.Errorf("attribute event = (%v, %q), want (set, x)", events[3].Update, events[3].Name)
	}
}

// TestSubscribe_Filtered covers kind filtering: a handler registered for one
// kind never sees the others.
func TestSubscribe_Filtered(t *testing.T) {
	g := New()
	var dropped int
	g.Subscribe(func(e Event) {
		if e.Kind != NodeDropped {
			t.Errorf("filtered handler received %v", e.Kind)
		}
		dropped++
	}, NodeDropped)

	mustAddNode(t, g, "a")
	mustAddNode(t, g, "b")
	mustAddEdge(t, g, "a", "b")
	if err := g.DropNode("a"); err != nil {
		t.Fatal(err)
	}
	if dropped != 1 {
		t.Errorf("NodeDropped delivered %d times, want 1", dropped)
	}
}

func TestUnsubscribe(t *testing.T) {
	g := New()
	var count int
	id := g.Subscribe(func(Event) { count++ })
	mustAddNode(t, g, "a")
	g.Unsubscribe(id)
	mustAddNode(t, g, "b")
	if count != 1 {
		t.Errorf("handler ran %d times after unsubscribe, want 1", count)
	}
	// Unknown ids are ignored.
	g.Unsubscribe(id)
	g.Unsubscribe(999)
}

// TestEvents_FailedMutationIsSilent checks that rejected operations emit
// nothing: delivery happens only after a commit.
func TestEvents_FailedMutationIsSilent(t *testing.T) {
	g := New(WithoutSelfLoops())
	mustAddNode(t, g, "a")
	var count int
	g.Subscribe(func(Event) { count++ })

	if _, err := g.AddNode("a", nil); err == nil {
		t.Fatal("duplicate AddNode succeeded")
	}
	if _, err := g.AddEdge("a", "a", nil); err == nil {
		t.Fatal("self-loop accepted")
	}
	if _, err := g.AddEdge("a", "ghost", nil); err == nil {
		t.Fatal("edge to missing node accepted")
	}
	if err := g.DropNode("ghost"); err == nil {
		t.Fatal("DropNode(ghost) succeeded")
	}
	if count != 0 {
		t.Errorf("failed mutations emitted %d events, want 0", count)
	}
}

// TestEvents_DropNodeOrder verifies the post-commit contract for cascaded
// drops: incident edges are gone before their EdgeDropped fires, and the
// node event comes last.
func TestEvents_DropNodeOrder(t *testing.T) {
	g := New()
	mustAddNode(t, g, "a")
	mustAddNode(t, g, "b")
	key := mustAddEdge(t, g, "a", "b")

	var kinds []EventKind
	g.Subscribe(func(e Event) {
		kinds = append(kinds, e.Kind)
		if e.Kind == EdgeDropped && g.HasEdge(key) {
			t.Error("edge still present during EdgeDropped delivery")
		}
		if e.Kind == NodeDropped && g.HasNode("a") {
			t.Error("node still present during NodeDropped delivery")
		}
	})
	if err := g.DropNode("a"); err != nil {
		t.Fatal(err)
	}
	if len(kinds) != 2 || kinds[0] != EdgeDropped || kinds[1] != NodeDropped {
		t.Errorf("DropNode emitted %v, want [edgeDropped nodeDropped]", kinds)
	}
}

func TestEventKind_String(t *testing.T) {
	cases := map[EventKind]string{
		NodeAdded:             "nodeAdded",
		EdgeAttributesUpdated: "edgeAttributesUpdated",
		Cleared:               "cleared",
		eventKindCount:        "unknown",
	}
	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("EventKind(%d).String() = %q, want %q", kind, got, want)
		}
	}
	if AttrReplace.String() != "replace" || AttrSet.String() != "set" {
		t.Error("AttrUpdate.String mismatch")
	}
}
