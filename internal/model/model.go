// Package model defines the core domain types for the event registration demo.
package model

import "time"

// Event represents a schedulable occurrence with a fixed seat capacity
// and a live available-seat counter. AvailableSeats is mutated only by
// the catalog's reservation operation.
type Event struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Location       string    `json:"location"`
	Date           time.Time `json:"date"`
	TotalSeats     int       `json:"total_seats"`
	AvailableSeats int       `json:"available_seats"`
}

// AttendeeCount returns the number of seats already taken.
// Always derived, never stored.
func (e *Event) AttendeeCount() int {
	return e.TotalSeats - e.AvailableSeats
}

// IsFull returns true when no seats remain.
func (e *Event) IsFull() bool {
	return e.AvailableSeats <= 0
}

// Registration binds a person (by email) to one event. A registration
// exists only if a seat was reserved for it at creation time.
type Registration struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	EventID          int       `json:"event_id"`
	RegistrationDate time.Time `json:"registration_date"`
}

// EventDraft is the input shape for creating a new event. The catalog
// assigns the id and sets the available-seat counter.
type EventDraft struct {
	Name       string    `json:"name"`
	Location   string    `json:"location"`
	Date       time.Time `json:"date"`
	TotalSeats int       `json:"total_seats"`
}

// RegistrationDraft is the input shape for registering for an event.
// Field-level validation happens in the UI layer before this reaches
// the ledger.
type RegistrationDraft struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	EventID int    `json:"event_id"`
}
