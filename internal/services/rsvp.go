package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"guestlist/internal/domain"
)

// ErrGuestNotFound marks the returning-guest flow failing its name lookup.
// Controllers surface it with the exact page message.
var ErrGuestNotFound = errors.New("guest does not exist")

type rsvpService struct {
	eventRepo      domain.EventRepository
	guestRepo      domain.GuestRepository
	attendanceRepo domain.AttendanceRepository
}

// NewRSVPService creates an RSVPService with the given repositories.
func NewRSVPService(
	eventRepo domain.EventRepository,
	guestRepo domain.GuestRepository,
	attendanceRepo domain.AttendanceRepository,
) domain.RSVPService {
	return &rsvpService{
		eventRepo:      eventRepo,
		guestRepo:      guestRepo,
		attendanceRepo: attendanceRepo,
	}
}

func (s *rsvpService) Register(ctx context.Context, eventID int64, returning bool, name string, email, phone *string) (*domain.Guest, error) {
	// Ensure the event exists before touching guests.
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	if returning {
		guest, err := s.guestRepo.GetByName(ctx, name)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, ErrGuestNotFound
			}
			return nil, fmt.Errorf("get guest by name: %w", err)
		}
		// Duplicate RSVPs are allowed; a second submission records a second row.
		att := &domain.Attendance{EventID: event.ID, GuestID: guest.ID}
		if err := s.attendanceRepo.Create(ctx, att); err != nil {
			return nil, fmt.Errorf("create attendance: %w", err)
		}
		return guest, nil
	}

	if name == "" {
		return nil, domain.NewValidationError("guest name is required")
	}
	now := time.Now()
	guest := domain.NewGuest(name, email, phone, now, now)
	if err := s.guestRepo.CreateWithAttendance(ctx, guest, event.ID); err != nil {
		return nil, fmt.Errorf("create guest with attendance: %w", err)
	}
	return guest, nil
}

func (s *rsvpService) GetGuestDetail(ctx context.Context, guestID int64) (*domain.GuestDetail, error) {
	guest, err := s.guestRepo.GetByID(ctx, guestID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get guest: %w", err)
	}

	events, err := s.attendanceRepo.ListEventsByGuestID(ctx, guestID)
	if err != nil {
		return nil, fmt.Errorf("list guest events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}

	return &domain.GuestDetail{
		Guest:  guest,
		Events: events,
	}, nil
}
