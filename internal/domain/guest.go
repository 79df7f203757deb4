package domain

import (
	"context"
	"time"
)

// Guest represents a person who may attend zero or more events.
// Email and phone are optional; nil means the guest never provided one.
// swagger:model Guest
type Guest struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewGuest returns a new Guest with the given fields. ID is set by the repository on create.
func NewGuest(name string, email, phone *string, createdAt, updatedAt time.Time) *Guest {
	return &Guest{
		Name:      name,
		Email:     email,
		Phone:     phone,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}
}

// GuestRepository defines the interface for guest storage
type GuestRepository interface {
	Create(ctx context.Context, guest *Guest) error
	GetByID(ctx context.Context, id int64) (*Guest, error)
	// GetByName looks up a guest by exact name match with exactly-one
	// semantics: zero rows yield ErrNotFound, more than one ErrAmbiguous.
	GetByName(ctx context.Context, name string) (*Guest, error)
	// CreateWithAttendance persists the guest and an attendance row for
	// eventID in a single transaction.
	CreateWithAttendance(ctx context.Context, guest *Guest, eventID int64) error
}

// GuestDetail bundles a guest with the events they are attending.
type GuestDetail struct {
	Guest  *Guest   `json:"guest"`
	Events []*Event `json:"events_attending"`
}
