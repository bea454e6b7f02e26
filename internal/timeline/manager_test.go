package timeline

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	apierrors "github.com/lockehooper/fritter-fe/internal/errors"
	"github.com/lockehooper/fritter-fe/pkg/models"
)

type fakeUserDirectory struct {
	users map[string]models.User
}

func (f *fakeUserDirectory) UserByID(ctx context.Context, id string) (models.User, error) {
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return models.User{}, apierrors.NotFound("user %s does not exist", id)
}

// fakeEntryStore mirrors the composite-key upsert: one row per
// (user, variant), overwritten in place.
type fakeEntryStore struct {
	entries map[string]models.TimelineEntry
	upserts int
}

func (f *fakeEntryStore) UpsertTimeline(ctx context.Context, userID, variant string, freetIDs []string) (models.TimelineEntry, error) {
	f.upserts++
	key := userID + "/" + variant
	entry, ok := f.entries[key]
	if !ok {
		entry = models.TimelineEntry{ID: uuid.New().String(), UserID: userID, Variant: variant}
	}
	entry.FreetIDs = freetIDs
	entry.RefreshedAt = time.Now()
	f.entries[key] = entry
	return entry, nil
}

func newManagerHarness(freets []models.Freet) (*Manager, *fakeEntryStore, *fakePostStore) {
	users := &fakeUserDirectory{users: map[string]models.User{
		"u1": {ID: "u1", Username: "dave", Following: []string{"alice"}},
	}}
	posts := &fakePostStore{freets: freets}
	entries := &fakeEntryStore{entries: make(map[string]models.TimelineEntry)}
	return NewManager(users, entries, NewBuilder(posts)), entries, posts
}

func TestGetOrRefreshCreatesExactlyOneEntryPerPair(t *testing.T) {
	mgr, entries, _ := newManagerHarness([]models.Freet{
		makeFreet("a1", "alice", time.Now()),
	})

	first, _, err := mgr.GetOrRefresh(context.Background(), "u1", models.VariantFollowing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _, err := mgr.GetOrRefresh(context.Background(), "u1", models.VariantFollowing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entries.entries) != 1 {
		t.Fatalf("expected exactly one entry, got %d", len(entries.entries))
	}
	if first.ID != second.ID {
		t.Fatalf("expected the same entry to be overwritten, got ids %s and %s", first.ID, second.ID)
	}
	if entries.upserts != 2 {
		t.Fatalf("expected a rebuild on every call, got %d upserts", entries.upserts)
	}
}

func TestGetOrRefreshDistinctVariantsGetDistinctEntries(t *testing.T) {
	mgr, entries, _ := newManagerHarness(nil)

	if _, _, err := mgr.GetOrRefresh(context.Background(), "u1", models.VariantFeatured); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, _, err := mgr.GetOrRefresh(context.Background(), "u1", models.VariantFollowing); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(entries.entries) != 2 {
		t.Fatalf("expected one entry per variant, got %d", len(entries.entries))
	}
}

func TestGetOrRefreshPicksUpNewPosts(t *testing.T) {
	mgr, _, posts := newManagerHarness([]models.Freet{
		makeFreet("a1", "alice", time.Now()),
	})

	entry, _, err := mgr.GetOrRefresh(context.Background(), "u1", models.VariantFollowing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entry.FreetIDs) != 1 {
		t.Fatalf("expected 1 freet id, got %d", len(entry.FreetIDs))
	}

	posts.freets = append(posts.freets, makeFreet("a2", "alice", time.Now()))

	entry, freets, err := mgr.GetOrRefresh(context.Background(), "u1", models.VariantFollowing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entry.FreetIDs) != 2 {
		t.Fatalf("expected rebuilt snapshot with 2 freet ids, got %d", len(entry.FreetIDs))
	}
	if len(freets) != 2 {
		t.Fatalf("expected hydrated freets alongside the entry, got %d", len(freets))
	}
}

func TestGetOrRefreshUnknownUser(t *testing.T) {
	mgr, entries, _ := newManagerHarness(nil)

	_, _, err := mgr.GetOrRefresh(context.Background(), "ghost", models.VariantFeatured)
	if apierrors.KindOf(err) != apierrors.KindNotFound {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if entries.upserts != 0 {
		t.Fatal("expected no write after a precondition failure")
	}
}

func TestGetOrRefreshInvalidVariantWritesNothing(t *testing.T) {
	mgr, entries, _ := newManagerHarness(nil)

	_, _, err := mgr.GetOrRefresh(context.Background(), "u1", "BOGUS")
	if apierrors.KindOf(err) != apierrors.KindInvalidVariant {
		t.Fatalf("expected InvalidVariant, got %v", err)
	}
	if entries.upserts != 0 {
		t.Fatal("expected no write after a precondition failure")
	}
}
