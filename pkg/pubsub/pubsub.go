// Package pubsub bridges a graph's synchronous change notifications to
// buffered channels, so consumers outside the mutating call stack (UIs,
// replication feeds, test harnesses) can observe mutations without touching
// the store's synchronous observer contract. Publishing never blocks: a
// full subscriber channel drops the event and counts the drop.
package pubsub

import (
	"sync"
	"sync/atomic"

	"github.com/jamieparkinson/graphology/pkg/graph"
	"github.com/jamieparkinson/graphology/pkg/logging"
)

// Subscription is one consumer channel attached to a Bus.
type Subscription struct {
	bus       *Bus
	kinds     []graph.EventKind
	ch        chan graph.Event
	dropped   atomic.Uint64
	closeOnce sync.Once
}

// C returns the subscription's event channel. It is closed by Unsubscribe
// or Bus.Close.
func (s *Subscription) C() <-chan graph.Event { return s.ch }

// Dropped returns how many events were discarded because the channel was
// full.
func (s *Subscription) Dropped() uint64 { return s.dropped.Load() }

// Unsubscribe detaches the subscription and closes its channel.
func (s *Subscription) Unsubscribe() {
	s.bus.remove(s)
	s.close()
}

func (s *Subscription) close() {
	s.closeOnce.Do(func() { close(s.ch) })
}

func (s *Subscription) wants(k graph.EventKind) bool {
	if len(s.kinds) == 0 {
		return true
	}
	for _, want := range s.kinds {
		if want == k {
			return true
		}
	}
	return false
}

// Bus fans graph events out to subscriptions.
type Bus struct {
	mu     sync.RWMutex
	subs   map[*Subscription]struct{}
	closed bool
	logger logging.Logger
	bufLen int
}

// NewBus creates a Bus. A nil logger disables logging; bufLen <= 0 uses a
// default of 128 events per subscription.
func NewBus(logger logging.Logger, bufLen int) *Bus {
	if logger == nil {
		logger = logging.Nop{}
	}
	if bufLen <= 0 {
		bufLen = 128
	}
	return &Bus{
		subs:   make(map[*Subscription]struct{}),
		logger: logger,
		bufLen: bufLen,
	}
}

// Attach registers the bus as an observer of g and returns the subscription
// id for detaching via g.Unsubscribe.
func (b *Bus) Attach(g *graph.Graph) graph.SubscriptionID {
	return g.Subscribe(b.Publish)
}

// Subscribe creates a consumer channel for the given event kinds (all kinds
// when none are named). It returns nil after Close.
func (b *Bus) Subscribe(kinds ...graph.EventKind) *Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return nil
	}
	sub := &Subscription{
		bus:   b,
		kinds: kinds,
		ch:    make(chan graph.Event, b.bufLen),
	}
	b.subs[sub] = struct{}{}
	return sub
}

// Publish forwards an event to every interested subscription without
// blocking. It runs inside the graph's synchronous notification path, so it
// must stay fast and must never re-enter the store.
func (b *Bus) Publish(e graph.Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	for sub := range b.subs {
		if !sub.wants(e.Kind) {
			continue
		}
		select {
		case sub.ch <- e:
		default:
			if sub.dropped.Add(1) == 1 {
				b.logger.Warn("pubsub subscriber falling behind, dropping events",
					logging.String("kind", e.Kind.String()))
			}
		}
	}
}

// Close detaches and closes every subscription. The bus ignores further
// publishes and subscribes.
func (b *Bus) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for sub := range b.subs {
		sub.close()
		delete(b.subs, sub)
	}
}

func (b *Bus) remove(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.subs, sub)
}
