package diagnostics

import (
	"context"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/events"
)

// Tally counts unresolved reference events seen on a bus, by kind
type Tally struct {
	mu     sync.Mutex
	counts map[Kind]int64
	bus    events.EventBus
	subID  string
}

// NewTally subscribes a Tally to EventReferenceUnresolved on bus
func NewTally(bus events.EventBus) *Tally {
	t := &Tally{
		counts: make(map[Kind]int64),
		bus:    bus,
	}
	t.subID = bus.SubscribeFunc(EventReferenceUnresolved, 0, t.handle)
	return t
}

func (t *Tally) handle(_ context.Context, e events.Event) error {
	kind := Kind("unknown")
	if v, ok := e.Context().Get(ContextKeyKind); ok {
		if s, ok := v.(string); ok {
			kind = Kind(s)
		}
	}

	t.mu.Lock()
	t.counts[kind]++
	t.mu.Unlock()
	return nil
}

// Counts returns a copy of the counts so far
func (t *Tally) Counts() map[Kind]int64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	counts := make(map[Kind]int64, len(t.counts))
	for kind, n := range t.counts {
		counts[kind] = n
	}
	return counts
}

// Total returns the number of events counted
func (t *Tally) Total() int64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	var total int64
	for _, n := range t.counts {
		total += n
	}
	return total
}

// Close unsubscribes from the bus
func (t *Tally) Close() error {
	return t.bus.Unsubscribe(t.subID)
}
