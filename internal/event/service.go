// Package event implements events: time-bounded, owned collections of
// participant users, served as a merged view of every participant's
// freets.
package event

import (
	"context"

	apierrors "github.com/lockehooper/fritter-fe/internal/errors"
	"github.com/lockehooper/fritter-fe/pkg/models"
)

// PostStore is the slice of the freet store the aggregator reads.
type PostStore interface {
	FreetsByAuthor(ctx context.Context, username string) ([]models.Freet, error)
}

// UserDirectory resolves owners and participants.
type UserDirectory interface {
	UserByID(ctx context.Context, id string) (models.User, error)
	UserByUsername(ctx context.Context, username string) (models.User, error)
}

// EventStore persists events.
type EventStore interface {
	CreateEvent(ctx context.Context, ownerID string, req models.CreateEventRequest) (models.Event, error)
	EventByID(ctx context.Context, id string) (models.Event, error)
	Events(ctx context.Context) ([]models.Event, error)
	EventsByOwner(ctx context.Context, ownerID string) ([]models.Event, error)
	UpdateEvent(ctx context.Context, e models.Event) (models.Event, error)
	DeleteEvent(ctx context.Context, id string) error
}

// Verifier answers whether a user holds the VERIFIED classification.
type Verifier interface {
	IsVerified(ctx context.Context, userID string) (bool, error)
}

// Service enforces event preconditions and shapes aggregated responses.
// All checks run before any write; a failed check leaves no partial state.
type Service struct {
	events   EventStore
	users    UserDirectory
	posts    PostStore
	verifier Verifier
}

// NewService wires the event service.
func NewService(events EventStore, users UserDirectory, posts PostStore, verifier Verifier) *Service {
	return &Service{events: events, users: users, posts: posts, verifier: verifier}
}

// Create validates and persists a new event owned by ownerID. Only
// VERIFIED users may create events.
func (s *Service) Create(ctx context.Context, ownerID string, req models.CreateEventRequest) (models.Event, error) {
	if _, err := s.users.UserByID(ctx, ownerID); err != nil {
		return models.Event{}, err
	}

	verified, err := s.verifier.IsVerified(ctx, ownerID)
	if err != nil {
		return models.Event{}, err
	}
	if !verified {
		return models.Event{}, apierrors.Forbidden("You must be verified to create events")
	}

	if req.Name == "" {
		return models.Event{}, apierrors.InvalidContent("event name")
	}
	if req.Description == "" {
		return models.Event{}, apierrors.InvalidContent("event description")
	}
	if req.Start >= req.End {
		return models.Event{}, apierrors.InvalidInterval(req.Start, req.End)
	}
	if err := s.resolveParticipants(ctx, req.Participants); err != nil {
		return models.Event{}, err
	}

	return s.events.CreateEvent(ctx, ownerID, req)
}

// Get returns the event with its merged participant freets.
func (s *Service) Get(ctx context.Context, eventID string) (models.EventResponse, error) {
	e, err := s.events.EventByID(ctx, eventID)
	if err != nil {
		return models.EventResponse{}, err
	}
	return s.BuildResponse(ctx, e)
}

// List returns all events, most recently modified first.
func (s *Service) List(ctx context.Context) ([]models.Event, error) {
	return s.events.Events(ctx)
}

// ListByOwner returns the events owned by the given username.
func (s *Service) ListByOwner(ctx context.Context, username string) ([]models.Event, error) {
	owner, err := s.users.UserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.events.EventsByOwner(ctx, owner.ID)
}

// Update applies a partial update to an event. Only the owner may modify
// it; supplied fields are validated against the merged result so a partial
// update can never produce an inverted interval or empty text.
func (s *Service) Update(ctx context.Context, userID, eventID string, req models.UpdateEventRequest) (models.Event, error) {
	e, err := s.events.EventByID(ctx, eventID)
	if err != nil {
		return models.Event{}, err
	}
	if e.OwnerID != userID {
		return models.Event{}, apierrors.Forbidden("Cannot modify other users' events")
	}

	if req.Name != nil {
		if *req.Name == "" {
			return models.Event{}, apierrors.InvalidContent("event name")
		}
		e.Name = *req.Name
	}
	if req.Description != nil {
		if *req.Description == "" {
			return models.Event{}, apierrors.InvalidContent("event description")
		}
		e.Description = *req.Description
	}
	if req.Start != nil {
		e.Start = *req.Start
	}
	if req.End != nil {
		e.End = *req.End
	}
	if e.Start >= e.End {
		return models.Event{}, apierrors.InvalidInterval(e.Start, e.End)
	}
	if req.Participants != nil {
		if err := s.resolveParticipants(ctx, req.Participants); err != nil {
			return models.Event{}, err
		}
		e.Participants = req.Participants
	}

	return s.events.UpdateEvent(ctx, e)
}

// Delete removes an event. Only the owner may delete it.
func (s *Service) Delete(ctx context.Context, userID, eventID string) error {
	e, err := s.events.EventByID(ctx, eventID)
	if err != nil {
		return err
	}
	if e.OwnerID != userID {
		return apierrors.Forbidden("Cannot modify other users' events")
	}
	return s.events.DeleteEvent(ctx, eventID)
}

// resolveParticipants checks every participant username against the user
// directory before any write happens.
func (s *Service) resolveParticipants(ctx context.Context, participants []string) error {
	for _, username := range participants {
		if _, err := s.users.UserByUsername(ctx, username); err != nil {
			return err
		}
	}
	return nil
}
