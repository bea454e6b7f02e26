package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	apierrors "github.com/lockehooper/fritter-fe/internal/errors"
	"github.com/lockehooper/fritter-fe/pkg/models"
)

// ClassificationByUser returns the classification row for a user.
// Absence is NotFound here; the guard layer maps it to the NONE sentinel.
func (s *Store) ClassificationByUser(ctx context.Context, userID string) (models.Classification, error) {
	var c models.Classification
	err := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, type, modified_at
		FROM classifications
		WHERE user_id = $1
	`, userID).Scan(&c.ID, &c.UserID, &c.Type, &c.ModifiedAt)

	if err == sql.ErrNoRows {
		return models.Classification{}, apierrors.NotFound("user %s has no classification", userID)
	}
	if err != nil {
		return models.Classification{}, fmt.Errorf("failed to query classification: %w", err)
	}
	return c, nil
}

// CreateClassification inserts a classification row for a user. The unique
// constraint on user_id backstops the at-most-one invariant under races.
func (s *Store) CreateClassification(ctx context.Context, userID, classType string) (models.Classification, error) {
	var c models.Classification
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO classifications (id, user_id, type, modified_at)
		VALUES ($1, $2, $3, now())
		RETURNING id, user_id, type, modified_at
	`, uuid.New().String(), userID, classType).Scan(&c.ID, &c.UserID, &c.Type, &c.ModifiedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return models.Classification{}, apierrors.AlreadyExists("classification already exists for user %s", userID)
		}
		return models.Classification{}, fmt.Errorf("failed to create classification: %w", err)
	}
	return c, nil
}

// UpdateClassification replaces the classification type for a user.
func (s *Store) UpdateClassification(ctx context.Context, userID, classType string) (models.Classification, error) {
	var c models.Classification
	err := s.db.QueryRowContext(ctx, `
		UPDATE classifications
		SET type = $2, modified_at = now()
		WHERE user_id = $1
		RETURNING id, user_id, type, modified_at
	`, userID, classType).Scan(&c.ID, &c.UserID, &c.Type, &c.ModifiedAt)

	if err == sql.ErrNoRows {
		return models.Classification{}, apierrors.NotFound("user %s has no classification", userID)
	}
	if err != nil {
		return models.Classification{}, fmt.Errorf("failed to update classification: %w", err)
	}
	return c, nil
}

// DeleteClassification removes a user's classification row.
func (s *Store) DeleteClassification(ctx context.Context, userID string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM classifications WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete classification: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apierrors.NotFound("user %s has no classification", userID)
	}
	return nil
}
