// Package classification enforces the account classification state
// machine: absent (NONE) moves to one of BOT/HUMAN/VERIFIED via create,
// any stored type moves to any other via update, and delete is rejected
// while the stored type is BOT.
package classification

import (
	"context"

	apierrors "github.com/lockehooper/fritter-fe/internal/errors"
	"github.com/lockehooper/fritter-fe/pkg/models"
)

// Store persists classification rows.
type Store interface {
	ClassificationByUser(ctx context.Context, userID string) (models.Classification, error)
	CreateClassification(ctx context.Context, userID, classType string) (models.Classification, error)
	UpdateClassification(ctx context.Context, userID, classType string) (models.Classification, error)
	DeleteClassification(ctx context.Context, userID string) error
}

// UserDirectory resolves users before any classification write.
type UserDirectory interface {
	UserByID(ctx context.Context, id string) (models.User, error)
}

// Guard is the precondition layer over the classification store.
type Guard struct {
	store Store
	users UserDirectory
}

// NewGuard wires the guard.
func NewGuard(store Store, users UserDirectory) *Guard {
	return &Guard{store: store, users: users}
}

func validType(classType string) bool {
	switch classType {
	case models.ClassificationBot, models.ClassificationHuman, models.ClassificationVerified:
		return true
	}
	return false
}

// Get returns the user's classification, or the NONE sentinel when no row
// exists. Absence is not an error.
func (g *Guard) Get(ctx context.Context, userID string) (models.ClassificationResponse, error) {
	c, err := g.store.ClassificationByUser(ctx, userID)
	if err != nil {
		if apierrors.KindOf(err) == apierrors.KindNotFound {
			return models.ClassificationResponse{Type: models.ClassificationNone}, nil
		}
		return models.ClassificationResponse{}, err
	}
	modified := c.ModifiedAt
	return models.ClassificationResponse{ID: c.ID, Type: c.Type, ModifiedAt: &modified}, nil
}

// Create adds a classification for a user that has none.
func (g *Guard) Create(ctx context.Context, userID, classType string) (models.Classification, error) {
	if !validType(classType) {
		return models.Classification{}, apierrors.New(apierrors.KindInvalidContent, "classification must be one of BOT, HUMAN, VERIFIED")
	}
	if _, err := g.users.UserByID(ctx, userID); err != nil {
		return models.Classification{}, err
	}
	if _, err := g.store.ClassificationByUser(ctx, userID); err == nil {
		return models.Classification{}, apierrors.AlreadyExists("classification already exists for user %s", userID)
	} else if apierrors.KindOf(err) != apierrors.KindNotFound {
		return models.Classification{}, err
	}
	return g.store.CreateClassification(ctx, userID, classType)
}

// Update changes a user's stored classification type.
func (g *Guard) Update(ctx context.Context, userID, classType string) (models.Classification, error) {
	if !validType(classType) {
		return models.Classification{}, apierrors.New(apierrors.KindInvalidContent, "classification must be one of BOT, HUMAN, VERIFIED")
	}
	return g.store.UpdateClassification(ctx, userID, classType)
}

// Delete removes a user's classification. BOT classifications are
// change-protected and cannot be removed through this path.
func (g *Guard) Delete(ctx context.Context, userID string) error {
	c, err := g.store.ClassificationByUser(ctx, userID)
	if err != nil {
		return err
	}
	if c.Type == models.ClassificationBot {
		return apierrors.Forbidden("Cannot remove bot classification")
	}
	return g.store.DeleteClassification(ctx, userID)
}

// IsVerified reports whether the user currently holds the VERIFIED
// classification. Absence counts as not verified.
func (g *Guard) IsVerified(ctx context.Context, userID string) (bool, error) {
	c, err := g.store.ClassificationByUser(ctx, userID)
	if err != nil {
		if apierrors.KindOf(err) == apierrors.KindNotFound {
			return false, nil
		}
		return false, err
	}
	return c.Type == models.ClassificationVerified, nil
}
