package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/lockehooper/fritter-fe/pkg/models"
)

// UpsertTimeline writes the freet-id snapshot for one (user, variant)
// pair in a single atomic statement. The unique composite key guarantees
// at most one row per pair; concurrent upserts for the same pair race
// last-write-wins, which is acceptable for a best-effort snapshot.
func (s *Store) UpsertTimeline(ctx context.Context, userID, variant string, freetIDs []string) (models.TimelineEntry, error) {
	var entry models.TimelineEntry
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO timelines (id, user_id, variant, freet_ids, refreshed_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (user_id, variant)
		DO UPDATE SET freet_ids = EXCLUDED.freet_ids, refreshed_at = EXCLUDED.refreshed_at
		RETURNING id, user_id, variant, freet_ids, refreshed_at
	`, uuid.New().String(), userID, variant, pq.Array(freetIDs)).Scan(
		&entry.ID, &entry.UserID, &entry.Variant, pq.Array(&entry.FreetIDs), &entry.RefreshedAt,
	)
	if err != nil {
		return models.TimelineEntry{}, fmt.Errorf("failed to upsert timeline: %w", err)
	}
	return entry, nil
}
