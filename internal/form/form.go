// Package form performs the field-level validation the UI layer owes the
// domain core: string lengths, email syntax, and positive event selection.
// The catalog and ledger trust their input shapes, so every draft must pass
// through here first.
package form

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/tskaric/event-registration/internal/model"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Registration is the registration form as submitted by the user.
type Registration struct {
	Name    string `validate:"required,min=2,max=100"`
	Email   string `validate:"required,email"`
	EventID int    `validate:"required,gt=0"`
}

// trimmed returns the form with surrounding whitespace stripped from the
// string fields. Validation and the draft both work on this view, so the
// value that passes validation is the value the ledger stores.
func (f Registration) trimmed() Registration {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	return f
}

// Validate checks the trimmed form fields and returns a user-facing message
// for the first violation found.
func (f Registration) Validate() error {
	if err := validate.Struct(f.trimmed()); err != nil {
		return firstViolation(err, map[string]string{
			"Name":    "name must be between 2 and 100 characters",
			"Email":   "a valid email address is required",
			"EventID": "an event must be selected",
		})
	}
	return nil
}

// Draft converts the validated form into the shape the ledger consumes.
// The email keeps its original case so the ledger's case-insensitive
// duplicate check stays observable.
func (f Registration) Draft() model.RegistrationDraft {
	t := f.trimmed()
	return model.RegistrationDraft{
		Name:    t.Name,
		Email:   t.Email,
		EventID: t.EventID,
	}
}

// Event is the add-event form.
type Event struct {
	Name       string    `validate:"required"`
	Location   string    `validate:"required"`
	Date       time.Time `validate:"required"`
	TotalSeats int       `validate:"gte=0"`
}

// trimmed returns the form with surrounding whitespace stripped from the
// string fields.
func (f Event) trimmed() Event {
	f.Name = strings.TrimSpace(f.Name)
	f.Location = strings.TrimSpace(f.Location)
	return f
}

// Validate checks the trimmed form fields and returns a user-facing message
// for the first violation found.
func (f Event) Validate() error {
	if err := validate.Struct(f.trimmed()); err != nil {
		return firstViolation(err, map[string]string{
			"Name":       "event name is required",
			"Location":   "event location is required",
			"Date":       "event date is required",
			"TotalSeats": "total seats cannot be negative",
		})
	}
	return nil
}

// Draft converts the validated form into the shape the catalog consumes.
func (f Event) Draft() model.EventDraft {
	t := f.trimmed()
	return model.EventDraft{
		Name:       t.Name,
		Location:   t.Location,
		Date:       t.Date,
		TotalSeats: t.TotalSeats,
	}
}

// firstViolation maps the first validator violation to its per-field
// message, falling back to a generic one for anything unmapped.
func firstViolation(err error, messages map[string]string) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if msg, ok := messages[verrs[0].Field()]; ok {
			return errors.New(msg)
		}
		return fmt.Errorf("invalid value for %s", verrs[0].Field())
	}
	return err
}
