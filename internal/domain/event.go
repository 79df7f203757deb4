package domain

import (
	"context"
	"time"
)

// Event represents a published event open for guest registration.
// swagger:model Event
type Event struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	DateAndTime time.Time `json:"date_and_time"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewEvent returns a new Event with the given fields. ID is set by the repository on create.
func NewEvent(title, description string, dateAndTime, createdAt, updatedAt time.Time) *Event {
	return &Event{
		Title:       title,
		Description: description,
		DateAndTime: dateAndTime,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

// EventRepository defines the interface for event storage
type EventRepository interface {
	Create(ctx context.Context, event *Event) error
	GetByID(ctx context.Context, id int64) (*Event, error)
	List(ctx context.Context) ([]*Event, error)
}

// EventDetail bundles an event with its registered guests.
type EventDetail struct {
	Event  *Event   `json:"event"`
	Guests []*Guest `json:"guests"`
}

// EventService defines the business logic for publishing and viewing events.
type EventService interface {
	// CreateEvent parses date ("YYYY-MM-DD") and timeOfDay ("HH:MM") into a
	// single date-time and persists a new event. Returns a ValidationError
	// if the combined value cannot be parsed; nothing is persisted then.
	CreateEvent(ctx context.Context, title, description, date, timeOfDay string) (*Event, error)
	ListEvents(ctx context.Context) ([]*Event, error)
	// GetEventDetail returns the event and its guest list.
	GetEventDetail(ctx context.Context, id int64) (*EventDetail, error)
}
