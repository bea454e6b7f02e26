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

// FreetByID returns a single freet.
func (s *Store) FreetByID(ctx context.Context, id string) (models.Freet, error) {
	var f models.Freet
	err := s.db.QueryRowContext(ctx, `
		SELECT id, author, content, created_at, modified_at
		FROM freets
		WHERE id = $1
	`, id).Scan(&f.ID, &f.Author, &f.Content, &f.CreatedAt, &f.ModifiedAt)

	if err == sql.ErrNoRows {
		return models.Freet{}, apierrors.NotFound("freet %s does not exist", id)
	}
	if err != nil {
		return models.Freet{}, fmt.Errorf("failed to query freet: %w", err)
	}
	return f, nil
}

// FreetsByIDs hydrates a snapshot of freet ids, preserving the order of
// the ids given. Ids that no longer resolve are skipped, not errors: a
// timeline snapshot may briefly reference freets deleted since the last
// rebuild.
func (s *Store) FreetsByIDs(ctx context.Context, ids []string) ([]models.Freet, error) {
	if len(ids) == 0 {
		return []models.Freet{}, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, author, content, created_at, modified_at
		FROM freets
		WHERE id = ANY($1)
	`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to query freets by ids: %w", err)
	}
	defer rows.Close()

	byID := make(map[string]models.Freet, len(ids))
	for rows.Next() {
		var f models.Freet
		if err := rows.Scan(&f.ID, &f.Author, &f.Content, &f.CreatedAt, &f.ModifiedAt); err != nil {
			return nil, fmt.Errorf("failed to scan freet: %w", err)
		}
		byID[f.ID] = f
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read freets: %w", err)
	}

	freets := make([]models.Freet, 0, len(ids))
	for _, id := range ids {
		if f, ok := byID[id]; ok {
			freets = append(freets, f)
		}
	}
	return freets, nil
}

// FreetsByAuthor returns all freets by one author, most recently modified
// first.
func (s *Store) FreetsByAuthor(ctx context.Context, username string) ([]models.Freet, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, author, content, created_at, modified_at
		FROM freets
		WHERE author = $1
		ORDER BY modified_at DESC, created_at ASC
	`, username)
	if err != nil {
		return nil, fmt.Errorf("failed to query freets by author: %w", err)
	}
	defer rows.Close()

	return scanFreets(rows)
}

// RecentFreets returns up to limit freets across all authors ordered by
// last-modified descending, ties broken by insertion order. Asking for
// more rows than exist returns all rows.
func (s *Store) RecentFreets(ctx context.Context, limit int) ([]models.Freet, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, author, content, created_at, modified_at
		FROM freets
		ORDER BY modified_at DESC, created_at ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent freets: %w", err)
	}
	defer rows.Close()

	return scanFreets(rows)
}

// CreateFreet inserts a new freet for the given author.
func (s *Store) CreateFreet(ctx context.Context, author, content string) (models.Freet, error) {
	var f models.Freet
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO freets (id, author, content, created_at, modified_at)
		VALUES ($1, $2, $3, now(), now())
		RETURNING id, author, content, created_at, modified_at
	`, uuid.New().String(), author, content).Scan(&f.ID, &f.Author, &f.Content, &f.CreatedAt, &f.ModifiedAt)
	if err != nil {
		return models.Freet{}, fmt.Errorf("failed to create freet: %w", err)
	}
	return f, nil
}

// UpdateFreetContent replaces a freet's content and bumps its modified
// timestamp.
func (s *Store) UpdateFreetContent(ctx context.Context, id, content string) (models.Freet, error) {
	var f models.Freet
	err := s.db.QueryRowContext(ctx, `
		UPDATE freets
		SET content = $2, modified_at = now()
		WHERE id = $1
		RETURNING id, author, content, created_at, modified_at
	`, id, content).Scan(&f.ID, &f.Author, &f.Content, &f.CreatedAt, &f.ModifiedAt)

	if err == sql.ErrNoRows {
		return models.Freet{}, apierrors.NotFound("freet %s does not exist", id)
	}
	if err != nil {
		return models.Freet{}, fmt.Errorf("failed to update freet: %w", err)
	}
	return f, nil
}

// DeleteFreet removes a freet.
func (s *Store) DeleteFreet(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM freets WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete freet: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apierrors.NotFound("freet %s does not exist", id)
	}
	return nil
}

func scanFreets(rows *sql.Rows) ([]models.Freet, error) {
	freets := []models.Freet{}
	for rows.Next() {
		var f models.Freet
		if err := rows.Scan(&f.ID, &f.Author, &f.Content, &f.CreatedAt, &f.ModifiedAt); err != nil {
			return nil, fmt.Errorf("failed to scan freet: %w", err)
		}
		freets = append(freets, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read freets: %w", err)
	}
	return freets, nil
}
