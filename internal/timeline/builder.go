// Package timeline builds and caches per-user timelines. A timeline is a
// persisted snapshot of freet ids scoped to a (user, variant) pair; the
// builder computes the snapshot and the manager owns the upsert contract.
package timeline

import (
	"context"

	"golang.org/x/sync/errgroup"

	apierrors "github.com/lockehooper/fritter-fe/internal/errors"
	"github.com/lockehooper/fritter-fe/pkg/models"
)

// FeaturedCap bounds the FEATURED timeline length.
const FeaturedCap = 100

// PostStore is the slice of the freet store the builder reads.
type PostStore interface {
	RecentFreets(ctx context.Context, limit int) ([]models.Freet, error)
	FreetsByAuthor(ctx context.Context, username string) ([]models.Freet, error)
}

// Builder computes the ordered freet sequence for a timeline variant. It
// holds no state beyond its store references.
type Builder struct {
	posts PostStore
}

// NewBuilder creates a Builder over the given post store.
func NewBuilder(posts PostStore) *Builder {
	return &Builder{posts: posts}
}

// Build returns the ordered freets for the given variant and user.
//
// FEATURED is the most recently modified freets across all authors, capped
// at FeaturedCap. FOLLOWING is the concatenation of each followed author's
// full freet list in follow-list order; it deliberately performs no
// cross-author sort by time, matching the behavior timelines have always
// had (each author's freets stay grouped, newest first within the group).
func (b *Builder) Build(ctx context.Context, variant string, user models.User) ([]models.Freet, error) {
	switch variant {
	case models.VariantFeatured:
		return b.posts.RecentFreets(ctx, FeaturedCap)
	case models.VariantFollowing:
		return b.buildFollowing(ctx, user.Following)
	default:
		return nil, apierrors.InvalidVariant(variant)
	}
}

// buildFollowing fans out one lookup per followed author and joins before
// merging. Each goroutine writes only its own slot, so the merge needs no
// synchronization beyond the join.
func (b *Builder) buildFollowing(ctx context.Context, following []string) ([]models.Freet, error) {
	perAuthor := make([][]models.Freet, len(following))

	g, gctx := errgroup.WithContext(ctx)
	for i, username := range following {
		i, username := i, username
		g.Go(func() error {
			freets, err := b.posts.FreetsByAuthor(gctx, username)
			if err != nil {
				return err
			}
			perAuthor[i] = freets
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := []models.Freet{}
	for _, freets := range perAuthor {
		merged = append(merged, freets...)
	}
	return merged, nil
}
