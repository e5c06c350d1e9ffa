package match

import (
	"context"

	"github.com/shivamk23/cafe-meet-up-backend/internal/models"
)

type MatchService struct {
	repo MatchRepository
}

func NewMatchService(repo MatchRepository) *MatchService {
	return &MatchService{repo: repo}
}

// List returns the user's matches newest first, each shaped as the other
// participant.
func (s *MatchService) List(ctx context.Context, userID string) ([]MatchView, error) {
	matches, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	otherIDs := make([]string, 0, len(matches))
	for _, m := range matches {
		otherIDs = append(otherIDs, otherUser(m, userID))
	}

	users, err := s.repo.GetUsers(ctx, otherIDs)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	views := make([]MatchView, 0, len(matches))
	for _, m := range matches {
		u, ok := byID[otherUser(m, userID)]
		if !ok {
			// The other account was deleted; the match row is stale
			continue
		}
		views = append(views, MatchView{
			ID:        m.ID,
			CreatedAt: m.CreatedAt,
			User: MatchUser{
				ID:             u.ID,
				FirstName:      u.FirstName,
				Age:            u.Age,
				City:           u.Community,
				ProfilePicture: u.ProfilePicture,
			},
		})
	}
	return views, nil
}

func otherUser(m *models.Match, userID string) string {
	if m.UserAID == userID {
		return m.UserBID
	}
	return m.UserAID
}
