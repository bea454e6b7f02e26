package event

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/lockehooper/fritter-fe/pkg/models"
)

// BuildResponse assembles the merged-post view of an event: one freet
// lookup per participant, launched concurrently and joined before the
// merge. Each goroutine owns its own result slot. Posts are concatenated
// in participant order with no de-duplication; read-only throughout.
func (s *Service) BuildResponse(ctx context.Context, e models.Event) (models.EventResponse, error) {
	perParticipant := make([][]models.Freet, len(e.Participants))

	g, gctx := errgroup.WithContext(ctx)
	for i, username := range e.Participants {
		i, username := i, username
		g.Go(func() error {
			freets, err := s.posts.FreetsByAuthor(gctx, username)
			if err != nil {
				return err
			}
			perParticipant[i] = freets
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.EventResponse{}, err
	}

	merged := []models.Freet{}
	for _, freets := range perParticipant {
		merged = append(merged, freets...)
	}

	return models.EventResponse{
		ID:           e.ID,
		Owner:        e.OwnerID,
		Name:         e.Name,
		Description:  e.Description,
		Start:        e.Start,
		End:          e.End,
		Participants: e.Participants,
		Freets:       merged,
		ModifiedAt:   e.ModifiedAt,
	}, nil
}
