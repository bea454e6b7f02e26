package timeline

import (
	"context"
	"fmt"

	"github.com/lockehooper/fritter-fe/pkg/models"
)

// UserDirectory resolves the requesting user and their follow list.
type UserDirectory interface {
	UserByID(ctx context.Context, id string) (models.User, error)
}

// EntryStore persists timeline snapshots with upsert semantics.
type EntryStore interface {
	UpsertTimeline(ctx context.Context, userID, variant string, freetIDs []string) (models.TimelineEntry, error)
}

// Manager owns the cached timeline row per (user, variant) pair.
//
// Every call rebuilds: the persisted row exists so a pair never grows a
// second entry (upsert identity), not to avoid recomputation. Two
// concurrent calls for the same pair race last-write-wins at the storage
// layer; each result is a valid snapshot, so neither outcome is wrong.
type Manager struct {
	users   UserDirectory
	entries EntryStore
	builder *Builder
}

// NewManager creates a Manager wiring the directory, entry store, and
// builder together.
func NewManager(users UserDirectory, entries EntryStore, builder *Builder) *Manager {
	return &Manager{users: users, entries: entries, builder: builder}
}

// GetOrRefresh returns the timeline entry for (userID, variant), creating
// it on first request and overwriting it in place on every subsequent one.
// The freets backing the snapshot are returned alongside the entry so
// callers can shape a response without a second round of lookups.
func (m *Manager) GetOrRefresh(ctx context.Context, userID, variant string) (models.TimelineEntry, []models.Freet, error) {
	user, err := m.users.UserByID(ctx, userID)
	if err != nil {
		return models.TimelineEntry{}, nil, err
	}

	freets, err := m.builder.Build(ctx, variant, user)
	if err != nil {
		return models.TimelineEntry{}, nil, err
	}

	freetIDs := make([]string, len(freets))
	for i, f := range freets {
		freetIDs[i] = f.ID
	}

	entry, err := m.entries.UpsertTimeline(ctx, userID, variant, freetIDs)
	if err != nil {
		return models.TimelineEntry{}, nil, fmt.Errorf("refreshing %s timeline for user %s: %w", variant, userID, err)
	}

	return entry, freets, nil
}
