// Package eventbus provides a small in-process publish/subscribe bus for
// engine lifecycle events.
package eventbus

import "sync"

// Event is any engine event published on the bus.
type Event interface{}

// AreaCreated is published after an area is registered and the shedding
// index has been rebuilt.
type AreaCreated struct {
	AreaID        int
	PriorityLevel int
}

// AreaDeleted is published after an area is removed.
type AreaDeleted struct {
	AreaID int
}

// FeederDeleted is published after a feeder deletion, including the ids
// of the areas removed by the cascade.
type FeederDeleted struct {
	FeederID      int
	CascadedAreas []int
}

// PlanGenerated is published after a scheduling run replaced the
// authoritative daily plan.
type PlanGenerated struct {
	RunID       string
	Cuts        int
	ShedKWh     float64
	UnservedKWh float64
	Shortage    bool
}

// TaskCreated is published after a maintenance task is recorded.
type TaskCreated struct {
	TaskID int
	AreaID int
}

// TaskResolved is published after a maintenance task is removed.
type TaskResolved struct {
	TaskID int
}

// Bus fans events out to subscriber channels. Delivery is non-blocking;
// a slow subscriber misses events rather than stalling a mutation.
type Bus struct {
	mu     sync.RWMutex
	subs   []chan Event
	closed bool
}

// New creates a new Bus.
func New() *Bus { return &Bus{} }

// Publish sends the event to all subscribers.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	for _, ch := range b.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

// Subscribe registers a new subscriber and returns its channel.
func (b *Bus) Subscribe() <-chan Event {
	ch := make(chan Event, 16)
	b.mu.Lock()
	if b.closed {
		close(ch)
	} else {
		b.subs = append(b.subs, ch)
	}
	b.mu.Unlock()
	return ch
}

// Close closes all subscriber channels and clears the list.
func (b *Bus) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	for _, ch := range b.subs {
		close(ch)
	}
	b.subs = nil
	b.mu.Unlock()
}
