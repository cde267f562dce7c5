// Package ui renders the session state to a console and translates user
// input into calls on the catalog and ledger, surfacing the outcome messages
// the core deliberately does not produce itself.
package ui

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/tskaric/event-registration/internal/form"
	"github.com/tskaric/event-registration/internal/model"
	"github.com/tskaric/event-registration/internal/session"
)

// Console drives one session's view. All output goes to a single writer so
// tests can capture it.
type Console struct {
	sess *session.Session
	out  io.Writer
}

// New constructs a console bound to the given session and writer.
func New(sess *session.Session, out io.Writer) *Console {
	return &Console{sess: sess, out: out}
}

// Watch subscribes the console to both managers so any committed change
// re-renders the event table. It returns a release func that cancels both
// handles; callers must invoke it on teardown.
func (c *Console) Watch() func() {
	redraw := func() { c.RenderEvents() }
	catalogSub := c.sess.Catalog.Subscribe(redraw)
	ledgerSub := c.sess.Ledger.Subscribe(redraw)

	var released bool
	return func() {
		if released {
			return
		}
		released = true
		catalogSub.Cancel()
		ledgerSub.Cancel()
	}
}

// RenderEvents prints the event table: seats left and attendee counts are
// read fresh from the catalog on every call.
func (c *Console) RenderEvents() {
	events := c.sess.Catalog.ListEvents()

	tw := tabwriter.NewWriter(c.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tEVENT\tLOCATION\tDATE\tSEATS LEFT\tATTENDEES")
	for i := range events {
		e := &events[i]
		status := fmt.Sprintf("%d/%d", e.AvailableSeats, e.TotalSeats)
		if e.IsFull() {
			status = "FULL"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\n",
			e.ID, e.Name, e.Location, e.Date.Format("2006-01-02 15:04"), status, e.AttendeeCount())
	}
	tw.Flush()
}

// RenderEvent prints one event in detail, or an invalid-selection message
// when the id is unknown.
func (c *Console) RenderEvent(id int) {
	event, ok := c.sess.Catalog.GetEvent(id)
	if !ok {
		fmt.Fprintln(c.out, "invalid selection: no such event")
		return
	}
	fmt.Fprintf(c.out, "%s — %s, %s\n", event.Name, event.Location, event.Date.Format("2006-01-02 15:04"))
	fmt.Fprintf(c.out, "seats: %d of %d available, %d attending\n",
		event.AvailableSeats, event.TotalSeats, event.AttendeeCount())
}

// RenderRegistrations prints the registrations recorded for one event.
func (c *Console) RenderRegistrations(eventID int) {
	if _, ok := c.sess.Catalog.GetEvent(eventID); !ok {
		fmt.Fprintln(c.out, "invalid selection: no such event")
		return
	}

	regs := c.sess.Ledger.ListByEvent(eventID)
	if len(regs) == 0 {
		fmt.Fprintln(c.out, "no registrations yet")
		return
	}
	for _, r := range regs {
		fmt.Fprintf(c.out, "#%d %s <%s> registered %s\n",
			r.ID, r.Name, r.Email, r.RegistrationDate.Format("2006-01-02 15:04"))
	}
}

// Register validates the form, runs the advisory duplicate check, and
// submits the draft to the ledger. The duplicate check only warns: the
// ledger itself accepts repeat emails while seats remain.
func (c *Console) Register(f form.Registration) {
	if err := f.Validate(); err != nil {
		fmt.Fprintln(c.out, err)
		return
	}

	draft := f.Draft()
	if c.sess.Ledger.IsRegistered(draft.Email, draft.EventID) {
		fmt.Fprintf(c.out, "warning: %s is already registered for this event\n", draft.Email)
	}

	if !c.sess.Ledger.Register(draft) {
		if _, ok := c.sess.Catalog.GetEvent(draft.EventID); !ok {
			fmt.Fprintln(c.out, "invalid selection: no such event")
		} else {
			fmt.Fprintln(c.out, "event is fully booked")
		}
		return
	}
	fmt.Fprintf(c.out, "registered %s for event %d\n", draft.Name, draft.EventID)
}

// AddEvent validates the form and appends the event to the catalog.
func (c *Console) AddEvent(f form.Event) {
	if err := f.Validate(); err != nil {
		fmt.Fprintln(c.out, err)
		return
	}

	event := c.sess.Catalog.AddEvent(f.Draft())
	fmt.Fprintf(c.out, "created event %d: %s\n", event.ID, event.Name)
}

// Events exposes the current event list for callers that prompt against it.
func (c *Console) Events() []model.Event {
	return c.sess.Catalog.ListEvents()
}
