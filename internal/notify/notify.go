// Package notify implements the change-notification mechanism shared by the
// event catalog and the registration ledger: a plain subscription list that
// fans out synchronously to every observer after a successful mutation.
package notify

import (
	"sync"

	"github.com/google/uuid"
)

// Notifier fans out change signals to zero or more observers. Observers are
// invoked in subscription order, exactly once per Publish call. The notifier
// never drops stale subscriptions on its own; callers must cancel the handle
// they got from Subscribe when they lose interest.
type Notifier struct {
	mu   sync.Mutex
	subs []subscriber
}

type subscriber struct {
	id uuid.UUID
	fn func()
}

// Subscription is the disposable handle returned by Subscribe. Cancel it on
// teardown; cancelling twice is harmless.
type Subscription struct {
	id       uuid.UUID
	notifier *Notifier
}

// New constructs an empty Notifier.
func New() *Notifier {
	return &Notifier{}
}

// Subscribe registers fn to run on every subsequent Publish and returns the
// handle that releases it. Funcs are not comparable in Go, so each
// subscription is keyed by a generated token rather than by callback identity.
func (n *Notifier) Subscribe(fn func()) *Subscription {
	n.mu.Lock()
	defer n.mu.Unlock()

	id := uuid.New()
	n.subs = append(n.subs, subscriber{id: id, fn: fn})
	return &Subscription{id: id, notifier: n}
}

// Publish invokes every current observer synchronously, in subscription
// order. Callbacks run outside the notifier's lock so an observer may
// subscribe, cancel, or re-read the publishing component without deadlock.
func (n *Notifier) Publish() {
	n.mu.Lock()
	current := make([]subscriber, len(n.subs))
	copy(current, n.subs)
	n.mu.Unlock()

	for _, s := range current {
		s.fn()
	}
}

// Cancel removes the subscription from its notifier. Safe to call more than
// once; later calls find nothing to remove.
func (s *Subscription) Cancel() {
	if s == nil || s.notifier == nil {
		return
	}

	n := s.notifier
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, sub := range n.subs {
		if sub.id == s.id {
			n.subs = append(n.subs[:i], n.subs[i+1:]...)
			return
		}
	}
}
