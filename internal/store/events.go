package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	apierrors "github.com/lockehooper/fritter-fe/internal/errors"
	"github.com/lockehooper/fritter-fe/pkg/models"
)

const eventColumns = `id, owner_id, name, description, start_at, end_at, participants, created_at, modified_at`

// CreateEvent inserts a new event owned by ownerID.
func (s *Store) CreateEvent(ctx context.Context, ownerID string, req models.CreateEventRequest) (models.Event, error) {
	participants := req.Participants
	if participants == nil {
		participants = []string{}
	}

	var e models.Event
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO events (id, owner_id, name, description, start_at, end_at, participants, created_at, modified_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, now(), now())
		RETURNING `+eventColumns+`
	`, uuid.New().String(), ownerID, req.Name, req.Description, req.Start, req.End, pq.Array(participants)).Scan(
		&e.ID, &e.OwnerID, &e.Name, &e.Description, &e.Start, &e.End, pq.Array(&e.Participants), &e.CreatedAt, &e.ModifiedAt,
	)
	if err != nil {
		return models.Event{}, fmt.Errorf("failed to create event: %w", err)
	}
	return e, nil
}

// EventByID returns a single event.
func (s *Store) EventByID(ctx context.Context, id string) (models.Event, error) {
	var e models.Event
	err := s.db.QueryRowContext(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE id = $1
	`, id).Scan(&e.ID, &e.OwnerID, &e.Name, &e.Description, &e.Start, &e.End, pq.Array(&e.Participants), &e.CreatedAt, &e.ModifiedAt)

	if err == sql.ErrNoRows {
		return models.Event{}, apierrors.NotFound("event %s does not exist", id)
	}
	if err != nil {
		return models.Event{}, fmt.Errorf("failed to query event: %w", err)
	}
	return e, nil
}

// Events returns all events, most recently modified first.
func (s *Store) Events(ctx context.Context) ([]models.Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+eventColumns+`
		FROM events
		ORDER BY modified_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// EventsByOwner returns all events owned by the given user.
func (s *Store) EventsByOwner(ctx context.Context, ownerID string) ([]models.Event, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+eventColumns+`
		FROM events
		WHERE owner_id = $1
		ORDER BY modified_at DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query events by owner: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// UpdateEvent overwrites an event's mutable fields and bumps its modified
// timestamp. Callers merge partial updates into the full row first.
func (s *Store) UpdateEvent(ctx context.Context, e models.Event) (models.Event, error) {
	participants := e.Participants
	if participants == nil {
		participants = []string{}
	}

	var updated models.Event
	err := s.db.QueryRowContext(ctx, `
		UPDATE events
		SET name = $2, description = $3, start_at = $4, end_at = $5, participants = $6, modified_at = now()
		WHERE id = $1
		RETURNING `+eventColumns+`
	`, e.ID, e.Name, e.Description, e.Start, e.End, pq.Array(participants)).Scan(
		&updated.ID, &updated.OwnerID, &updated.Name, &updated.Description, &updated.Start, &updated.End,
		pq.Array(&updated.Participants), &updated.CreatedAt, &updated.ModifiedAt,
	)

	if err == sql.ErrNoRows {
		return models.Event{}, apierrors.NotFound("event %s does not exist", e.ID)
	}
	if err != nil {
		return models.Event{}, fmt.Errorf("failed to update event: %w", err)
	}
	return updated, nil
}

// DeleteEvent removes an event.
func (s *Store) DeleteEvent(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apierrors.NotFound("event %s does not exist", id)
	}
	return nil
}

func scanEvents(rows *sql.Rows) ([]models.Event, error) {
	events := []models.Event{}
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.OwnerID, &e.Name, &e.Description, &e.Start, &e.End,
			pq.Array(&e.Participants), &e.CreatedAt, &e.ModifiedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read events: %w", err)
	}
	return events, nil
}
