package domain

import (
	"context"
)

// Attendance represents a guest's RSVP for an event: one row in the
// guest_event association table. Duplicate rows for the same pair are
// allowed; the store enforces no uniqueness on the association.
// swagger:model Attendance
type Attendance struct {
	EventID int64 `json:"event_id"`
	GuestID int64 `json:"guest_id"`
}

// AttendanceRepository defines storage operations for the guest_event association.
type AttendanceRepository interface {
	Create(ctx context.Context, att *Attendance) error
	ListGuestsByEventID(ctx context.Context, eventID int64) ([]*Guest, error)
	ListEventsByGuestID(ctx context.Context, guestID int64) ([]*Event, error)
}

// RSVPService defines guest-facing registration operations.
type RSVPService interface {
	// Register records a guest's attendance for the event. When returning is
	// true the guest is resolved by exact name and must already exist;
	// otherwise a new guest is created from name, email, and phone. The
	// event lookup failing yields ErrNotFound. Registering twice records
	// two attendance rows.
	Register(ctx context.Context, eventID int64, returning bool, name string, email, phone *string) (*Guest, error)
	// GetGuestDetail returns the guest and the events they are attending.
	GetGuestDetail(ctx context.Context, guestID int64) (*GuestDetail, error)
}
