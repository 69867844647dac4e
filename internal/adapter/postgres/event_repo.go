package postgres

import (
	"context"
	"time"

	"codingevents/internal/domain"
)

// ListEvents returns all events, oldest first.
func (d *DB) ListEvents(ctx context.Context) ([]domain.Event, error) {
	rows, err := d.sql.QueryContext(ctx,
		"SELECT id, name, description, contact_email, type, created_at FROM events ORDER BY id",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var e domain.Event
		if err := rows.Scan(&e.ID, &e.Name, &e.Description, &e.ContactEmail, &e.Type, &e.CreatedAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

// CreateEvent inserts a new event.
func (d *DB) CreateEvent(ctx context.Context, name, description, contactEmail string, typ domain.EventType, createdAt time.Time) (*domain.Event, error) {
	var e domain.Event
	err := d.sql.QueryRowContext(ctx,
		"INSERT INTO events (name, description, contact_email, type, created_at) VALUES ($1, $2, $3, $4, $5) RETURNING id, name, description, contact_email, type, created_at",
		name, description, contactEmail, typ, createdAt,
	).Scan(&e.ID, &e.Name, &e.Description, &e.ContactEmail, &e.Type, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// DeleteEvent deletes an event by id. Deleting an absent id is not an error.
func (d *DB) DeleteEvent(ctx context.Context, id int64) error {
	_, err := d.sql.ExecContext(ctx, "DELETE FROM events WHERE id = $1", id)
	return err
}
