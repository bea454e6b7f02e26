package event

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	apierrors "github.com/lockehooper/fritter-fe/internal/errors"
	"github.com/lockehooper/fritter-fe/pkg/models"
)

type fakeUsers struct {
	byID       map[string]models.User
	byUsername map[string]models.User
}

func (f *fakeUsers) UserByID(ctx context.Context, id string) (models.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return models.User{}, apierrors.NotFound("user %s does not exist", id)
}

func (f *fakeUsers) UserByUsername(ctx context.Context, username string) (models.User, error) {
	if u, ok := f.byUsername[username]; ok {
		return u, nil
	}
	return models.User{}, apierrors.NotFound("user %s does not exist", username)
}

type fakePosts struct {
	byAuthor map[string][]models.Freet
}

func (f *fakePosts) FreetsByAuthor(ctx context.Context, username string) ([]models.Freet, error) {
	return f.byAuthor[username], nil
}

type fakeEvents struct {
	byID map[string]models.Event
}

func (f *fakeEvents) CreateEvent(ctx context.Context, ownerID string, req models.CreateEventRequest) (models.Event, error) {
	e := models.Event{
		ID:           uuid.New().String(),
		OwnerID:      ownerID,
		Name:         req.Name,
		Description:  req.Description,
		Start:        req.Start,
		End:          req.End,
		Participants: req.Participants,
		CreatedAt:    time.Now(),
		ModifiedAt:   time.Now(),
	}
	f.byID[e.ID] = e
	return e, nil
}

func (f *fakeEvents) EventByID(ctx context.Context, id string) (models.Event, error) {
	if e, ok := f.byID[id]; ok {
		return e, nil
	}
	return models.Event{}, apierrors.NotFound("event %s does not exist", id)
}

func (f *fakeEvents) Events(ctx context.Context) ([]models.Event, error) {
	out := []models.Event{}
	for _, e := range f.byID {
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEvents) EventsByOwner(ctx context.Context, ownerID string) ([]models.Event, error) {
	out := []models.Event{}
	for _, e := range f.byID {
		if e.OwnerID == ownerID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEvents) UpdateEvent(ctx context.Context, e models.Event) (models.Event, error) {
	if _, ok := f.byID[e.ID]; !ok {
		return models.Event{}, apierrors.NotFound("event %s does not exist", e.ID)
	}
	e.ModifiedAt = time.Now()
	f.byID[e.ID] = e
	return e, nil
}

func (f *fakeEvents) DeleteEvent(ctx context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return apierrors.NotFound("event %s does not exist", id)
	}
	delete(f.byID, id)
	return nil
}

type fakeVerifier struct {
	verified map[string]bool
}

func (f *fakeVerifier) IsVerified(ctx context.Context, userID string) (bool, error) {
	return f.verified[userID], nil
}

func newServiceHarness() (*Service, *fakeEvents, *fakePosts) {
	users := &fakeUsers{
		byID: map[string]models.User{
			"owner": {ID: "owner", Username: "olivia"},
			"other": {ID: "other", Username: "oscar"},
		},
		byUsername: map[string]models.User{
			"olivia": {ID: "owner", Username: "olivia"},
			"oscar":  {ID: "other", Username: "oscar"},
			"p1":     {ID: "u-p1", Username: "p1"},
			"p2":     {ID: "u-p2", Username: "p2"},
		},
	}
	posts := &fakePosts{byAuthor: map[string][]models.Freet{}}
	events := &fakeEvents{byID: map[string]models.Event{}}
	verifier := &fakeVerifier{verified: map[string]bool{"owner": true}}
	return NewService(events, users, posts, verifier), events, posts
}

func TestCreateEventValidation(t *testing.T) {
	tests := []struct {
		name     string
		ownerID  string
		req      models.CreateEventRequest
		wantKind apierrors.Kind
	}{
		{
			name:    "accepted",
			ownerID: "owner",
			req:     models.CreateEventRequest{Name: "Launch", Description: "Launch party", Start: 100, End: 200},
		},
		{
			name:     "non_verified_owner",
			ownerID:  "other",
			req:      models.CreateEventRequest{Name: "Launch", Description: "Launch party", Start: 100, End: 200},
			wantKind: apierrors.KindForbidden,
		},
		{
			name:     "start_equals_end",
			ownerID:  "owner",
			req:      models.CreateEventRequest{Name: "Launch", Description: "Launch party", Start: 100, End: 100},
			wantKind: apierrors.KindInvalidInterval,
		},
		{
			name:     "start_after_end",
			ownerID:  "owner",
			req:      models.CreateEventRequest{Name: "Launch", Description: "Launch party", Start: 200, End: 100},
			wantKind: apierrors.KindInvalidInterval,
		},
		{
			name:     "empty_name",
			ownerID:  "owner",
			req:      models.CreateEventRequest{Name: "", Description: "Launch party", Start: 100, End: 200},
			wantKind: apierrors.KindInvalidContent,
		},
		{
			name:     "empty_description",
			ownerID:  "owner",
			req:      models.CreateEventRequest{Name: "Launch", Description: "", Start: 100, End: 200},
			wantKind: apierrors.KindInvalidContent,
		},
		{
			name:     "unknown_participant",
			ownerID:  "owner",
			req:      models.CreateEventRequest{Name: "Launch", Description: "Launch party", Start: 100, End: 200, Participants: []string{"ghost"}},
			wantKind: apierrors.KindNotFound,
		},
		{
			name:     "unknown_owner",
			ownerID:  "ghost",
			req:      models.CreateEventRequest{Name: "Launch", Description: "Launch party", Start: 100, End: 200},
			wantKind: apierrors.KindNotFound,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			svc, events, _ := newServiceHarness()
			_, err := svc.Create(context.Background(), tc.ownerID, tc.req)
			if tc.wantKind == apierrors.KindInternal {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				if len(events.byID) != 1 {
					t.Fatalf("expected one stored event, got %d", len(events.byID))
				}
				return
			}
			if apierrors.KindOf(err) != tc.wantKind {
				t.Fatalf("expected kind %v, got error %v", tc.wantKind, err)
			}
			if len(events.byID) != 0 {
				t.Fatal("expected no write after a precondition failure")
			}
		})
	}
}

func TestBuildResponseMergesParticipantFreets(t *testing.T) {
	svc, _, posts := newServiceHarness()
	now := time.Now()
	posts.byAuthor["p1"] = []models.Freet{
		{ID: "f1", Author: "p1", ModifiedAt: now},
		{ID: "f2", Author: "p1", ModifiedAt: now},
	}
	posts.byAuthor["p2"] = []models.Freet{
		{ID: "f3", Author: "p2", ModifiedAt: now},
		{ID: "f4", Author: "p2", ModifiedAt: now},
		{ID: "f5", Author: "p2", ModifiedAt: now},
	}

	e := models.Event{
		ID:           "e1",
		OwnerID:      "owner",
		Name:         "Launch",
		Description:  "Launch party",
		Start:        100,
		End:          200,
		Participants: []string{"p1", "p2"},
	}

	resp, err := svc.BuildResponse(context.Background(), e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Freets) != 5 {
		t.Fatalf("expected 5 merged freets, got %d", len(resp.Freets))
	}
	// Participant order is preserved: p1's freets come first.
	if resp.Freets[0].Author != "p1" || resp.Freets[4].Author != "p2" {
		t.Fatalf("expected freets grouped in participant order, got %v", resp.Freets)
	}
}

func TestBuildResponseNoParticipants(t *testing.T) {
	svc, _, _ := newServiceHarness()
	resp, err := svc.BuildResponse(context.Background(), models.Event{ID: "e1", Participants: nil})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Freets) != 0 {
		t.Fatalf("expected no freets, got %d", len(resp.Freets))
	}
}

func TestUpdateEventOwnerOnly(t *testing.T) {
	svc, _, _ := newServiceHarness()
	created, err := svc.Create(context.Background(), "owner", models.CreateEventRequest{
		Name: "Launch", Description: "Launch party", Start: 100, End: 200,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	newName := "Rescheduled launch"
	if _, err := svc.Update(context.Background(), "other", created.ID, models.UpdateEventRequest{Name: &newName}); apierrors.KindOf(err) != apierrors.KindForbidden {
		t.Fatalf("expected Forbidden for non-owner, got %v", err)
	}

	updated, err := svc.Update(context.Background(), "owner", created.ID, models.UpdateEventRequest{Name: &newName})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != newName {
		t.Fatalf("expected updated name, got %q", updated.Name)
	}
}

func TestUpdateEventIntervalCheckedAgainstMergedFields(t *testing.T) {
	svc, _, _ := newServiceHarness()
	created, err := svc.Create(context.Background(), "owner", models.CreateEventRequest{
		Name: "Launch", Description: "Launch party", Start: 100, End: 200,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Moving start past the existing end must fail even though only one
	// bound is supplied.
	badStart := int64(300)
	if _, err := svc.Update(context.Background(), "owner", created.ID, models.UpdateEventRequest{Start: &badStart}); apierrors.KindOf(err) != apierrors.KindInvalidInterval {
		t.Fatalf("expected InvalidInterval, got %v", err)
	}
}

func TestDeleteEventOwnerOnly(t *testing.T) {
	svc, events, _ := newServiceHarness()
	created, err := svc.Create(context.Background(), "owner", models.CreateEventRequest{
		Name: "Launch", Description: "Launch party", Start: 100, End: 200,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := svc.Delete(context.Background(), "other", created.ID); apierrors.KindOf(err) != apierrors.KindForbidden {
		t.Fatalf("expected Forbidden for non-owner, got %v", err)
	}
	if err := svc.Delete(context.Background(), "owner", created.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events.byID) != 0 {
		t.Fatal("expected event to be deleted")
	}

	if err := svc.Delete(context.Background(), "owner", created.ID); apierrors.KindOf(err) != apierrors.KindNotFound {
		t.Fatalf("expected NotFound for missing event, got %v", err)
	}
}
