package postgres

import (
	"context"
	"database/sql"

	"guestlist/internal/domain"
)

type attendanceRepository struct {
	DB *sql.DB
}

func NewAttendanceRepository(db *sql.DB) domain.AttendanceRepository {
	return &attendanceRepository{
		DB: db,
	}
}

func (r *attendanceRepository) Create(ctx context.Context, att *domain.Attendance) error {
	query := `
		INSERT INTO guest_event (event_id, guest_id)
		VALUES ($1, $2)
	`
	_, err := r.DB.ExecContext(ctx, query, att.EventID, att.GuestID)
	return err
}

func (r *attendanceRepository) ListGuestsByEventID(ctx context.Context, eventID int64) ([]*domain.Guest, error) {
	query := `
		SELECT g.id, g.name, g.email, g.phone, g.created_at, g.updated_at
		FROM guests g
		JOIN guest_event ge ON ge.guest_id = g.id
		WHERE ge.event_id = $1
		ORDER BY g.id
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	guests := make([]*domain.Guest, 0)
	for rows.Next() {
		g := &domain.Guest{}
		var emailNull, phoneNull sql.NullString
		if err := rows.Scan(&g.ID, &g.Name, &emailNull, &phoneNull, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, err
		}
		if emailNull.Valid {
			g.Email = &emailNull.String
		}
		if phoneNull.Valid {
			g.Phone = &phoneNull.String
		}
		guests = append(guests, g)
	}
	return guests, rows.Err()
}

func (r *attendanceRepository) ListEventsByGuestID(ctx context.Context, guestID int64) ([]*domain.Event, error) {
	query := `
		SELECT e.id, e.title, e.description, e.date_and_time, e.created_at, e.updated_at
		FROM events e
		JOIN guest_event ge ON ge.event_id = e.id
		WHERE ge.guest_id = $1
		ORDER BY e.id
	`
	rows, err := r.DB.QueryContext(ctx, query, guestID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e := &domain.Event{}
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.DateAndTime, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
