package handlers

import (
	"context"

	"github.com/lockehooper/fritter-fe/pkg/models"
)

// TimelineManager serves the per-(user, variant) timeline snapshot.
type TimelineManager interface {
	GetOrRefresh(ctx context.Context, userID, variant string) (models.TimelineEntry, []models.Freet, error)
}

// EventService is the event domain layer.
type EventService interface {
	Create(ctx context.Context, ownerID string, req models.CreateEventRequest) (models.Event, error)
	Get(ctx context.Context, eventID string) (models.EventResponse, error)
	List(ctx context.Context) ([]models.Event, error)
	ListByOwner(ctx context.Context, username string) ([]models.Event, error)
	Update(ctx context.Context, userID, eventID string, req models.UpdateEventRequest) (models.Event, error)
	Delete(ctx context.Context, userID, eventID string) error
}

// ClassificationGuard is the classification state machine.
type ClassificationGuard interface {
	Get(ctx context.Context, userID string) (models.ClassificationResponse, error)
	Create(ctx context.Context, userID, classType string) (models.Classification, error)
	Update(ctx context.Context, userID, classType string) (models.Classification, error)
	Delete(ctx context.Context, userID string) error
}

// FreetStore is the slice of the store the freet handlers use.
type FreetStore interface {
	FreetByID(ctx context.Context, id string) (models.Freet, error)
	RecentFreets(ctx context.Context, limit int) ([]models.Freet, error)
	FreetsByAuthor(ctx context.Context, username string) ([]models.Freet, error)
	CreateFreet(ctx context.Context, author, content string) (models.Freet, error)
	UpdateFreetContent(ctx context.Context, id, content string) (models.Freet, error)
	DeleteFreet(ctx context.Context, id string) error
}

// UserStore is the slice of the store the account handlers use.
type UserStore interface {
	UserByID(ctx context.Context, id string) (models.User, error)
	UserByUsername(ctx context.Context, username string) (models.User, error)
	CreateUser(ctx context.Context, username string) (models.User, error)
	Follow(ctx context.Context, followerID, username string) error
	Unfollow(ctx context.Context, followerID, username string) error
}
