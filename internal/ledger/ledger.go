// Package ledger records event registrations. It depends on the catalog to
// reserve a seat atomically with each registration it creates, and never
// touches event fields itself.
package ledger

import (
	"strings"
	"sync"
	"time"

	"github.com/tskaric/event-registration/internal/catalog"
	"github.com/tskaric/event-registration/internal/model"
	"github.com/tskaric/event-registration/internal/notify"
)

// Ledger owns the registration list for one session.
type Ledger struct {
	mu       sync.Mutex
	catalog  *catalog.Catalog
	regs     []model.Registration
	nextID   int
	notifier *notify.Notifier
}

// New constructs an empty ledger backed by the given catalog.
func New(c *catalog.Catalog) *Ledger {
	return &Ledger{
		catalog:  c,
		nextID:   1,
		notifier: notify.New(),
	}
}

// Subscribe registers an observer that runs after every successful
// registration. The caller must cancel the returned handle on teardown.
func (l *Ledger) Subscribe(fn func()) *notify.Subscription {
	return l.notifier.Subscribe(fn)
}

// ListRegistrations returns all registrations in insertion order.
func (l *Ledger) ListRegistrations() []model.Registration {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]model.Registration, len(l.regs))
	copy(out, l.regs)
	return out
}

// ListByEvent returns the registrations for one event, insertion order
// preserved.
func (l *Ledger) ListByEvent(eventID int) []model.Registration {
	l.mu.Lock()
	defer l.mu.Unlock()

	var out []model.Registration
	for _, r := range l.regs {
		if r.EventID == eventID {
			out = append(out, r)
		}
	}
	return out
}

// IsRegistered reports whether any registration for the event carries the
// given email, compared case-insensitively. The check is advisory: callers
// are expected to run it before Register, which does not enforce uniqueness
// itself.
func (l *Ledger) IsRegistered(email string, eventID int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, r := range l.regs {
		if r.EventID == eventID && strings.EqualFold(r.Email, email) {
			return true
		}
	}
	return false
}

// Register reserves one seat for the draft's event and, on success, appends
// a registration stamped with the current time under the next sequential id.
// A failed reservation is the only failure mode: nothing is created and no
// notification fires. Field validation is the caller's job; event existence
// is checked transitively through the reservation.
func (l *Ledger) Register(draft model.RegistrationDraft) bool {
	if !l.catalog.ReserveSeats(draft.EventID, 1) {
		return false
	}

	l.mu.Lock()
	reg := model.Registration{
		ID:               l.nextID,
		Name:             draft.Name,
		Email:            draft.Email,
		EventID:          draft.EventID,
		RegistrationDate: time.Now().UTC(),
	}
	l.nextID++
	l.regs = append(l.regs, reg)
	l.mu.Unlock()

	l.notifier.Publish()
	return true
}
