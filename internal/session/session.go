// Package session wires one catalog/ledger pair per interactive session.
// State is scoped to the Session value; there are no package-level stores,
// so two sessions never share events or registrations.
package session

import (
	"github.com/tskaric/event-registration/internal/catalog"
	"github.com/tskaric/event-registration/internal/ledger"
)

// Session holds the domain state for a single user session.
type Session struct {
	Catalog *catalog.Catalog
	Ledger  *ledger.Ledger
}

// New constructs a fresh session: a seeded catalog and an empty ledger
// bound to it.
func New() *Session {
	c := catalog.New()
	return &Session{
		Catalog: c,
		Ledger:  ledger.New(c),
	}
}
