package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"guestlist/internal/domain"
)

type guestRepository struct {
	DB *sql.DB
}

func NewGuestRepository(db *sql.DB) domain.GuestRepository {
	return &guestRepository{
		DB: db,
	}
}

func (r *guestRepository) Create(ctx context.Context, g *domain.Guest) error {
	query := `
		INSERT INTO guests (name, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, g.Name, g.Email, g.Phone, g.CreatedAt, g.UpdatedAt).Scan(&g.ID)
}

func (r *guestRepository) GetByID(ctx context.Context, id int64) (*domain.Guest, error) {
	query := `
		SELECT id, name, email, phone, created_at, updated_at
		FROM guests
		WHERE id = $1
	`
	g := &domain.Guest{}
	var emailNull, phoneNull sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&g.ID, &g.Name, &emailNull, &phoneNull, &g.CreatedAt, &g.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if emailNull.Valid {
		g.Email = &emailNull.String
	}
	if phoneNull.Valid {
		g.Phone = &phoneNull.String
	}
	return g, nil
}

// GetByName enforces exactly-one semantics: zero rows yield ErrNotFound and
// more than one row ErrAmbiguous. Name matches are exact, case sensitive.
func (r *guestRepository) GetByName(ctx context.Context, name string) (*domain.Guest, error) {
	query := `
		SELECT id, name, email, phone, created_at, updated_at
		FROM guests
		WHERE name = $1
	`
	rows, err := r.DB.QueryContext(ctx, query, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, domain.ErrNotFound
	}
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
	if rows.Next() {
		return nil, domain.ErrAmbiguous
	}
	return g, rows.Err()
}

// CreateWithAttendance inserts the guest and its first attendance row in one
// transaction so a failed association insert never leaves an orphan guest.
func (r *guestRepository) CreateWithAttendance(ctx context.Context, g *domain.Guest, eventID int64) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	insertGuest := `
		INSERT INTO guests (name, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	if err := tx.QueryRowContext(ctx, insertGuest, g.Name, g.Email, g.Phone, g.CreatedAt, g.UpdatedAt).Scan(&g.ID); err != nil {
		return fmt.Errorf("insert guest: %w", err)
	}

	insertAttendance := `
		INSERT INTO guest_event (event_id, guest_id)
		VALUES ($1, $2)
	`
	if _, err := tx.ExecContext(ctx, insertAttendance, eventID, g.ID); err != nil {
		return fmt.Errorf("insert attendance: %w", err)
	}

	return tx.Commit()
}
