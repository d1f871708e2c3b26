package crossfilter

import (
	"sync"

	"github.com/google/uuid"
)

// SubscriptionID identifies one registered listener.
type SubscriptionID string

// Listener receives the cell's value and version after an accepted write.
type Listener func(value FilterValue, version uint64)

// SharedCell is the single versioned slot holding the current filter
// value. All mutation funnels through Write; the version strictly
// increases on every accepted write and listeners are notified
// synchronously in subscription order. Writes and delivery stay on the
// update loop; Read and Version are additionally safe from chart
// command goroutines.
type SharedCell struct {
	mu      sync.Mutex
	value   FilterValue
	version uint64
	subs    []subscription
}

type subscription struct {
	id SubscriptionID
	fn Listener
}

// NewSharedCell creates the cell with its session default. The default
// counts as version 1 so adapters attached afterwards can tell "never
// synced" (0) apart from "saw the initial value".
func NewSharedCell(initial FilterValue) *SharedCell {
	return &SharedCell{value: initial, version: 1}
}

// Write stores value if it differs from the current one, bumps the
// version and notifies every subscriber. Writing the current value is a
// no-op returning the unchanged version. An invalid range is rejected
// before any state changes.
func (c *SharedCell) Write(value FilterValue) (uint64, error) {
	if value.Lower > value.Upper {
		return 0, &ValidationError{
			Field: "range",
			Msg:   "lower bound exceeds upper bound",
		}
	}

	c.mu.Lock()
	if value.Equal(c.value) {
		v := c.version
		c.mu.Unlock()
		return v, nil
	}
	c.value = value
	c.version++
	v := c.version
	subs := make([]subscription, len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	// Deliver outside the lock; listeners may unsubscribe or write again.
	for _, s := range subs {
		s.fn(value, v)
	}
	return v, nil
}

// Read returns the latest value/version pair. Never blocks beyond the
// mutex and never observes a partial write.
func (c *SharedCell) Read() (FilterValue, uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value, c.version
}

// Version returns the current version alone. Chart results captured
// under an older version are discarded against this.
func (c *SharedCell) Version() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.version
}

// Subscribe registers fn for every accepted write after this call.
func (c *SharedCell) Subscribe(fn Listener) SubscriptionID {
	id := SubscriptionID(uuid.NewString())
	c.mu.Lock()
	c.subs = append(c.subs, subscription{id: id, fn: fn})
	c.mu.Unlock()
	return id
}

// Unsubscribe removes a listener. Safe to call while a notification is
// being delivered; the in-flight delivery still completes from its
// snapshot.
func (c *SharedCell) Unsubscribe(id SubscriptionID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, s := range c.subs {
		if s.id == id {
			c.subs = append(c.subs[:i], c.subs[i+1:]...)
			return
		}
	}
}
