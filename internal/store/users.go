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

// UserByID returns a user by id.
func (s *Store) UserByID(ctx context.Context, id string) (models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, following, created_at
		FROM users
		WHERE id = $1
	`, id).Scan(&u.ID, &u.Username, pq.Array(&u.Following), &u.CreatedAt)

	if err == sql.ErrNoRows {
		return models.User{}, apierrors.NotFound("user %s does not exist", id)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return u, nil
}

// UserByUsername returns a user by username.
func (s *Store) UserByUsername(ctx context.Context, username string) (models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx, `
		SELECT id, username, following, created_at
		FROM users
		WHERE username = $1
	`, username).Scan(&u.ID, &u.Username, pq.Array(&u.Following), &u.CreatedAt)

	if err == sql.ErrNoRows {
		return models.User{}, apierrors.NotFound("user %s does not exist", username)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return u, nil
}

// CreateUser inserts a new user with an empty follow list.
func (s *Store) CreateUser(ctx context.Context, username string) (models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO users (id, username, following, created_at)
		VALUES ($1, $2, '{}', now())
		RETURNING id, username, following, created_at
	`, uuid.New().String(), username).Scan(&u.ID, &u.Username, pq.Array(&u.Following), &u.CreatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return models.User{}, apierrors.AlreadyExists("username %s is taken", username)
		}
		return models.User{}, fmt.Errorf("failed to create user: %w", err)
	}
	return u, nil
}

// Follow adds username to the follower's adjacency list. Following a user
// twice is a no-op; following yourself is rejected before any write.
func (s *Store) Follow(ctx context.Context, followerID, username string) error {
	follower, err := s.UserByID(ctx, followerID)
	if err != nil {
		return err
	}
	if follower.Username == username {
		return apierrors.Forbidden("users cannot follow themselves")
	}
	if _, err := s.UserByUsername(ctx, username); err != nil {
		return err
	}

	_, err = s.db.ExecContext(ctx, `
		UPDATE users
		SET following = array_append(following, $2)
		WHERE id = $1 AND NOT ($2 = ANY(following))
	`, followerID, username)
	if err != nil {
		return fmt.Errorf("failed to follow user: %w", err)
	}
	return nil
}

// Unfollow removes username from the follower's adjacency list.
func (s *Store) Unfollow(ctx context.Context, followerID, username string) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE users
		SET following = array_remove(following, $2)
		WHERE id = $1
	`, followerID, username)
	if err != nil {
		return fmt.Errorf("failed to unfollow user: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return apierrors.NotFound("user %s does not exist", followerID)
	}
	return nil
}
