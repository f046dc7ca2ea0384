package pubsub

import (
	"testing"

	"github.com/jamieparkinson/graphology/pkg/graph"
)

func drain(sub *Subscription) []graph.Event {
	var events []graph.Event
	for {
		select {
		case e := <-sub.C():
			events = append(events, e)
		default:
			return events
		}
	}
}

func TestBus_AttachAndReceive(t *testing.T) {
	bus := NewBus(nil, 0)
	defer bus.Close()
	sub := bus.Subscribe()

	g := graph.New()
	bus.Attach(g)
	if _, err := g.AddNode("a", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddNode("b", nil); err != nil {
		t.Fatal(err)
	}
	if _, err := g.AddEdge("a", "b", nil); err != nil {
		t.Fatal(err)
	}

	events := drain(sub)
	if len(events) != 3 {
		t.Fatalf("received %d events, want 3", len(events))
	}
	if events[0].Kind != graph.NodeAdded || events[2].Kind != graph.EdgeAdded {
		t.Errorf("event kinds = %v, %v, %v", events[0].Kind, events[1].Kind, events[2].Kind)
	}
	if events[2].Source != "a" || events[2].Target != "b" {
		t.Errorf("edge event endpoints = (%s, %s)", events[2].Source, events[2].Target)
	}
}

func TestBus_KindFilter(t *testing.T) {
	bus := NewBus(nil, 0)
	defer bus.Close()
	sub := bus.Subscribe(graph.EdgeAdded)

	g := graph.New()
	bus.Attach(g)
	g.AddNode("a", nil)
	g.AddNode("b", nil)
	g.AddEdge("a", "b", nil)

	events := drain(sub)
	if len(events) != 1 || events[0].Kind != graph.EdgeAdded {
		t.Errorf("filtered subscription received %v", events)
	}
}

func TestBus_DropsWhenFull(t *testing.T) {
	bus := NewBus(nil, 1)
	defer bus.Close()
	sub := bus.Subscribe()

	bus.Publish(graph.Event{Kind: graph.NodeAdded, Key: "kept"})
	bus.Publish(graph.Event{Kind: graph.NodeAdded, Key: "dropped"})
	bus.Publish(graph.Event{Kind: graph.NodeAdded, Key: "dropped too"})

	if sub.Dropped() != 2 {
		t.Errorf("Dropped = %d, want 2", sub.Dropped())
	}
	events := drain(sub)
	if len(events) != 1 || events[0].Key != "kept" {
		t.Errorf("buffered events = %v, want the first only", events)
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewBus(nil, 0)
	defer bus.Close()
	sub := bus.Subscribe()
	sub.Unsubscribe()

	// The channel is closed and later publishes do not panic.
	if _, open := <-sub.C(); open {
		t.Error("channel still open after Unsubscribe")
	}
	bus.Publish(graph.Event{Kind: graph.NodeAdded})
	// Unsubscribing twice is harmless.
	sub.Unsubscribe()
}

func TestBus_Close(t *testing.T) {
	bus := NewBus(nil, 0)
	sub := bus.Subscribe()
	bus.Close()

	if _, open := <-sub.C(); open {
		t.Error("channel still open after Close")
	}
	if bus.Subscribe() != nil {
		t.Error("Subscribe returned a subscription on a closed bus")
	}
	bus.Publish(graph.Event{Kind: graph.NodeAdded})
	bus.Close()
}

// TestBus_NonBlockingPublish guards the synchronous notification contract: a
// publish with a full, never-drained subscriber must return.
func TestBus_NonBlockingPublish(t *testing.T) {
	bus := NewBus(nil, 1)
	defer bus.Close()
	bus.Subscribe()

	g := graph.New()
	bus.Attach(g)
	for i := 0; i < 100; i++ {
		if _, err := g.AddNode(i, nil); err != nil {
			t.Fatal(err)
		}
	}
	// Reaching here without deadlock is the assertion.
}
