package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"guestlist/internal/domain"
)

// dateTimeLayout is the combined "YYYY-MM-DD HH:MM" format the create form
// submits; date and time fields are joined with a single space before parsing.
const dateTimeLayout = "2006-01-02 15:04"

// ErrBadDateTime is the user-facing message for an unparseable date/time pair.
const ErrBadDateTime = "Incorrect datetime format! Please try again."

type eventService struct {
	eventRepo      domain.EventRepository
	attendanceRepo domain.AttendanceRepository
}

// NewEventService creates an EventService with the given repositories.
func NewEventService(eventRepo domain.EventRepository, attendanceRepo domain.AttendanceRepository) domain.EventService {
	return &eventService{
		eventRepo:      eventRepo,
		attendanceRepo: attendanceRepo,
	}
}

func (s *eventService) CreateEvent(ctx context.Context, title, description, date, timeOfDay string) (*domain.Event, error) {
	dateAndTime, err := time.Parse(dateTimeLayout, date+" "+timeOfDay)
	if err != nil {
		return nil, domain.NewValidationError(ErrBadDateTime)
	}

	now := time.Now()
	event := domain.NewEvent(title, description, dateAndTime, now, now)
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return event, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	events, err := s.eventRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

func (s *eventService) GetEventDetail(ctx context.Context, id int64) (*domain.EventDetail, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	guests, err := s.attendanceRepo.ListGuestsByEventID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list event guests: %w", err)
	}
	if guests == nil {
		guests = []*domain.Guest{}
	}

	return &domain.EventDetail{
		Event:  event,
		Guests: guests,
	}, nil
}
