// Package catalog holds the authoritative event list and arbitrates seat
// consumption. It is the sole mutator of an event's available-seat counter.
package catalog

import (
	"sync"
	"time"

	"github.com/tskaric/event-registration/internal/model"
	"github.com/tskaric/event-registration/internal/notify"
)

// Catalog owns the set of events for one session. All mutations happen under
// an internal mutex so a reservation is a single indivisible step: no caller
// can observe a half-updated seat counter, and concurrent reservations can
// never push the total past capacity.
type Catalog struct {
	mu       sync.Mutex
	events   []model.Event
	nextID   int
	notifier *notify.Notifier
}

// New constructs a catalog pre-populated with the fixed sample fixture:
// four events, ids 1 through 4, every seat still available.
func New() *Catalog {
	c := &Catalog{
		nextID:   1,
		notifier: notify.New(),
	}
	for _, draft := range seedEvents {
		c.append(draft)
	}
	return c
}

// seedEvents is the construction-time fixture, not runtime configuration.
var seedEvents = []model.EventDraft{
	{Name: "Gopher Conference", Location: "Berlin", Date: time.Date(2026, time.November, 12, 9, 0, 0, 0, time.UTC), TotalSeats: 120},
	{Name: "Cloud Native Summit", Location: "Amsterdam", Date: time.Date(2026, time.December, 3, 10, 0, 0, 0, time.UTC), TotalSeats: 80},
	{Name: "DevOps Days", Location: "Lisbon", Date: time.Date(2027, time.January, 21, 9, 30, 0, 0, time.UTC), TotalSeats: 50},
	{Name: "Frontend Forum", Location: "Madrid", Date: time.Date(2027, time.February, 9, 13, 0, 0, 0, time.UTC), TotalSeats: 25},
}

// append stores a draft under the next id. Caller must hold c.mu or be the
// constructor.
func (c *Catalog) append(draft model.EventDraft) model.Event {
	event := model.Event{
		ID:             c.nextID,
		Name:           draft.Name,
		Location:       draft.Location,
		Date:           draft.Date,
		TotalSeats:     draft.TotalSeats,
		AvailableSeats: draft.TotalSeats,
	}
	c.nextID++
	c.events = append(c.events, event)
	return event
}

// Subscribe registers an observer that runs after every committed mutation.
// The caller must cancel the returned handle on teardown.
func (c *Catalog) Subscribe(fn func()) *notify.Subscription {
	return c.notifier.Subscribe(fn)
}

// ListEvents returns all events in insertion order. The slice holds copies,
// so callers cannot reach the live seat counters.
func (c *Catalog) ListEvents() []model.Event {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]model.Event, len(c.events))
	copy(out, c.events)
	return out
}

// GetEvent returns a copy of the event with the given id, or false when no
// such event exists.
func (c *Catalog) GetEvent(id int) (model.Event, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, e := range c.events {
		if e.ID == id {
			return e, true
		}
	}
	return model.Event{}, false
}

// ReserveSeats decrements the event's available-seat counter by count and
// reports whether it did. It fails, mutating nothing and notifying nobody,
// when count is not positive, the event does not exist, or fewer than count
// seats remain. Success is published to observers after the counter is
// committed.
func (c *Catalog) ReserveSeats(eventID, count int) bool {
	c.mu.Lock()
	reserved := false
	if count > 0 {
		for i := range c.events {
			if c.events[i].ID == eventID && c.events[i].AvailableSeats >= count {
				c.events[i].AvailableSeats -= count
				reserved = true
				break
			}
		}
	}
	c.mu.Unlock()

	if reserved {
		c.notifier.Publish()
	}
	return reserved
}

// AddEvent appends a new event under the next sequential id, with every seat
// available, and returns the stored record. Ids are never reused. Observers
// are notified after the event is committed.
func (c *Catalog) AddEvent(draft model.EventDraft) model.Event {
	c.mu.Lock()
	event := c.append(draft)
	c.mu.Unlock()

	c.notifier.Publish()
	return event
}
