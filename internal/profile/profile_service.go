package profile

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/shivamk23/cafe-meet-up-backend/internal/models"
	"github.com/shivamk23/cafe-meet-up-backend/internal/ws"

	"github.com/google/uuid"
)

var ErrUserNotFound = errors.New("user not found")

// Notifier is the live-push entry point. Notifying happens after the
// corresponding state change is durably stored and its outcome never affects
// the caller: an offline recipient simply finds the stored notification on
// next login.
type Notifier interface {
	Notify(userID string, n ws.Notification)
}

type ProfileService struct {
	repo     ProfileRepository
	notifier Notifier
}

func NewProfileService(repo ProfileRepository, notifier Notifier) *ProfileService {
	return &ProfileService{repo: repo, notifier: notifier}
}

// Discover lists candidate profiles for userID: everyone except themselves
// and users already liked, skipped, or matched, restricted to overlapping
// interests and ranked by shared-interest count.
func (s *ProfileService) Discover(ctx context.Context, userID string) ([]ProfileCard, error) {
	me, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	liked, err := s.repo.ListLikedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	skipped, err := s.repo.ListSkippedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	matched, err := s.repo.ListMatchedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}

	exclude := append([]string{userID}, liked...)
	exclude = append(exclude, skipped...)
	exclude = append(exclude, matched...)

	candidates, err := s.repo.ListCandidates(ctx, exclude)
	if err != nil {
		return nil, err
	}

	myInterests := make(map[string]bool, len(me.Interests))
	for _, interest := range me.Interests {
		myInterests[interest] = true
	}

	cards := make([]ProfileCard, 0, len(candidates))
	for _, u := range candidates {
		score := 0
		for _, interest := range u.Interests {
			if myInterests[interest] {
				score++
			}
		}
		if score == 0 {
			continue
		}
		cards = append(cards, ProfileCard{
			ID:             u.ID,
			FirstName:      u.FirstName,
			LastName:       u.LastName,
			Age:            u.Age,
			Bio:            u.Bio,
			ProfilePicture: u.ProfilePicture,
			Interests:      u.Interests,
			MatchScore:     score,
		})
	}

	sort.SliceStable(cards, func(i, j int) bool {
		return cards[i].MatchScore > cards[j].MatchScore
	})
	return cards, nil
}

// Like records userID liking targetID. A mutual like becomes a match: the
// match row is created, both like rows are consumed, and both sides get a
// durable notification plus a best-effort live push.
func (s *ProfileService) Like(ctx context.Context, userID, targetID string) (*LikeResult, error) {
	me, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, ErrUserNotFound
	}
	target, err := s.repo.GetUser(ctx, targetID)
	if err != nil {
		return nil, ErrUserNotFound
	}

	// A like supersedes an earlier skip
	if err := s.repo.RemoveSkip(ctx, userID, targetID); err != nil {
		return nil, err
	}
	if err := s.repo.AddLike(ctx, userID, targetID); err != nil {
		return nil, err
	}

	mutual, err := s.repo.HasLike(ctx, targetID, userID)
	if err != nil {
		return nil, err
	}

	if !mutual {
		if err := s.notifyDurable(ctx, targetID, models.NotificationLike, userID,
			fmt.Sprintf("%s liked your profile", me.FirstName)); err != nil {
			return nil, err
		}
		return &LikeResult{IsMatch: false, Message: "user liked successfully"}, nil
	}

	exists, err := s.repo.MatchExists(ctx, userID, targetID)
	if err != nil {
		return nil, err
	}
	if !exists {
		if _, err := s.repo.CreateMatch(ctx, userID, targetID); err != nil {
			return nil, err
		}
	}

	// Both like rows are consumed by the match
	if err := s.repo.RemoveLike(ctx, userID, targetID); err != nil {
		return nil, err
	}
	if err := s.repo.RemoveLike(ctx, targetID, userID); err != nil {
		return nil, err
	}

	if err := s.notifyDurable(ctx, targetID, models.NotificationMatch, userID,
		fmt.Sprintf("It's a match! You and %s liked each other", me.FirstName)); err != nil {
		return nil, err
	}
	if err := s.notifyDurable(ctx, userID, models.NotificationMatch, targetID,
		fmt.Sprintf("It's a match! You and %s liked each other", target.FirstName)); err != nil {
		return nil, err
	}

	return &LikeResult{IsMatch: true, Message: "it's a match"}, nil
}

// Skip records a pass. A skip supersedes an earlier like in both directions.
func (s *ProfileService) Skip(ctx context.Context, userID, targetID string) error {
	if _, err := s.repo.GetUser(ctx, targetID); err != nil {
		return ErrUserNotFound
	}

	if err := s.repo.RemoveLike(ctx, userID, targetID); err != nil {
		return err
	}
	if err := s.repo.RemoveLike(ctx, targetID, userID); err != nil {
		return err
	}
	return s.repo.AddSkip(ctx, userID, targetID)
}

// LikedBy lists users who liked userID and are still awaiting an answer.
func (s *ProfileService) LikedBy(ctx context.Context, userID string) ([]ProfileCard, error) {
	users, err := s.repo.ListLikedBy(ctx, userID)
	if err != nil {
		return nil, err
	}

	cards := make([]ProfileCard, 0, len(users))
	for _, u := range users {
		cards = append(cards, ProfileCard{
			ID:             u.ID,
			FirstName:      u.FirstName,
			Age:            u.Age,
			City:           u.Community,
			ProfilePicture: u.ProfilePicture,
		})
	}
	return cards, nil
}

// Notifications lists the durable notifications newest first.
func (s *ProfileService) Notifications(ctx context.Context, userID string) ([]NotificationView, error) {
	notifications, err := s.repo.ListNotifications(ctx, userID)
	if err != nil {
		return nil, err
	}

	views := make([]NotificationView, 0, len(notifications))
	for _, n := range notifications {
		views = append(views, NotificationView{
			ID:        n.ID,
			Message:   n.Message,
			Read:      n.Read,
			CreatedAt: n.CreatedAt,
		})
	}
	return views, nil
}

func (s *ProfileService) MarkNotificationsRead(ctx context.Context, userID string) error {
	return s.repo.MarkNotificationsRead(ctx, userID)
}

// notifyDurable stores the notification, then pushes it live. The two paths
// are deliberately not linked: the row always survives, the push may not
// arrive.
func (s *ProfileService) notifyDurable(ctx context.Context, userID, kind, fromID, message string) error {
	now := time.Now().UTC()
	record := &models.Notification{
		ID:        uuid.New().String(),
		UserID:    userID,
		Type:      kind,
		FromID:    fromID,
		Message:   message,
		CreatedAt: now,
	}
	if err := s.repo.CreateNotification(ctx, record); err != nil {
		return err
	}

	if s.notifier != nil {
		s.notifier.Notify(userID, ws.Notification{
			Type:      kind,
			From:      fromID,
			Message:   message,
			CreatedAt: now.Format(time.RFC3339),
		})
	}
	return nil
}
