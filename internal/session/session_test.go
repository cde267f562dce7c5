package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tskaric/event-registration/internal/model"
)

func TestNewWiresCatalogAndLedger(t *testing.T) {
	s := New()

	require.NotNil(t, s.Catalog)
	require.NotNil(t, s.Ledger)
	assert.Len(t, s.Catalog.ListEvents(), 4)
	assert.Empty(t, s.Ledger.ListRegistrations())

	ok := s.Ledger.Register(model.RegistrationDraft{Name: "Ann", Email: "a@x.com", EventID: 1})
	assert.True(t, ok, "ledger is bound to the session's catalog")
}

func TestSessionsAreIsolated(t *testing.T) {
	first := New()
	second := New()

	require.True(t, first.Ledger.Register(model.RegistrationDraft{Name: "Ann", Email: "a@x.com", EventID: 1}))

	assert.Empty(t, second.Ledger.ListRegistrations())

	e1, _ := first.Catalog.GetEvent(1)
	e2, _ := second.Catalog.GetEvent(1)
	assert.Equal(t, e1.TotalSeats-1, e1.AvailableSeats)
	assert.Equal(t, e2.TotalSeats, e2.AvailableSeats, "second session keeps its own seat counters")
}
