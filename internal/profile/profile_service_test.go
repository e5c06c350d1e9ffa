package profile

import (
	"context"
	"testing"

	"github.com/shivamk23/cafe-meet-up-backend/internal/models"
	"github.com/shivamk23/cafe-meet-up-backend/internal/ws"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type pair struct{ from, to string }

type fakeProfileRepo struct {
	users         map[string]*models.User
	likes         map[pair]bool
	skips         map[pair]bool
	matches       []*models.Match
	notifications []*models.Notification
}

func newFakeProfileRepo(users ...*models.User) *fakeProfileRepo {
	r := &fakeProfileRepo{
		users: make(map[string]*models.User),
		likes: make(map[pair]bool),
		skips: make(map[pair]bool),
	}
	for _, u := range users {
		r.users[u.ID] = u
	}
	return r
}

func (r *fakeProfileRepo) GetUser(_ context.Context, id string) (*models.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProfileRepo) ListCandidates(_ context.Context, excludeIDs []string) ([]*models.User, error) {
	excluded := make(map[string]bool, len(excludeIDs))
	for _, id := range excludeIDs {
		excluded[id] = true
	}
	var users []*models.User
	for _, u := range r.users {
		if !excluded[u.ID] {
			users = append(users, u)
		}
	}
	return users, nil
}

func (r *fakeProfileRepo) AddLike(_ context.Context, userID, likedID string) error {
	r.likes[pair{userID, likedID}] = true
	return nil
}

func (r *fakeProfileRepo) RemoveLike(_ context.Context, userID, likedID string) error {
	delete(r.likes, pair{userID, likedID})
	return nil
}

func (r *fakeProfileRepo) HasLike(_ context.Context, userID, likedID string) (bool, error) {
	return r.likes[pair{userID, likedID}], nil
}

func (r *fakeProfileRepo) ListLikedIDs(_ context.Context, userID string) ([]string, error) {
	var ids []string
	for p := range r.likes {
		if p.from == userID {
			ids = append(ids, p.to)
		}
	}
	return ids, nil
}

func (r *fakeProfileRepo) ListLikedBy(_ context.Context, userID string) ([]*models.User, error) {
	var users []*models.User
	for p := range r.likes {
		if p.to == userID {
			users = append(users, r.users[p.from])
		}
	}
	return users, nil
}

func (r *fakeProfileRepo) AddSkip(_ context.Context, userID, skippedID string) error {
	r.skips[pair{userID, skippedID}] = true
	return nil
}

func (r *fakeProfileRepo) RemoveSkip(_ context.Context, userID, skippedID string) error {
	delete(r.skips, pair{userID, skippedID})
	return nil
}

func (r *fakeProfileRepo) ListSkippedIDs(_ context.Context, userID string) ([]string, error) {
	var ids []string
	for p := range r.skips {
		if p.from == userID {
			ids = append(ids, p.to)
		}
	}
	return ids, nil
}

func (r *fakeProfileRepo) CreateMatch(_ context.Context, userA, userB string) (*models.Match, error) {
	a, b := models.OrderPair(userA, userB)
	m := &models.Match{ID: uuid.New().String(), UserAID: a, UserBID: b}
	r.matches = append(r.matches, m)
	return m, nil
}

func (r *fakeProfileRepo) MatchExists(_ context.Context, userA, userB string) (bool, error) {
	a, b := models.OrderPair(userA, userB)
	for _, m := range r.matches {
		if m.UserAID == a && m.UserBID == b {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProfileRepo) ListMatchedIDs(_ context.Context, userID string) ([]string, error) {
	var ids []string
	for _, m := range r.matches {
		switch userID {
		case m.UserAID:
			ids = append(ids, m.UserBID)
		case m.UserBID:
			ids = append(ids, m.UserAID)
		}
	}
	return ids, nil
}

func (r *fakeProfileRepo) CreateNotification(_ context.Context, n *models.Notification) error {
	r.notifications = append(r.notifications, n)
	return nil
}

func (r *fakeProfileRepo) ListNotifications(_ context.Context, userID string) ([]*models.Notification, error) {
	var out []*models.Notification
	for _, n := range r.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *fakeProfileRepo) MarkNotificationsRead(_ context.Context, userID string) error {
	for _, n := range r.notifications {
		if n.UserID == userID {
			n.Read = true
		}
	}
	return nil
}

func (r *fakeProfileRepo) notificationsFor(userID string) []*models.Notification {
	out, _ := r.ListNotifications(context.Background(), userID)
	return out
}

type pushedNotification struct {
	userID string
	n      ws.Notification
}

type fakeNotifier struct {
	pushed []pushedNotification
}

func (f *fakeNotifier) Notify(userID string, n ws.Notification) {
	f.pushed = append(f.pushed, pushedNotification{userID: userID, n: n})
}

func testUser(id, firstName string, interests ...string) *models.User {
	return &models.User{ID: id, FirstName: firstName, Interests: interests}
}

func TestLikeWithoutReciprocation(t *testing.T) {
	repo := newFakeProfileRepo(
		testUser("alice", "Alice"),
		testUser("bob", "Bob"),
	)
	notifier := &fakeNotifier{}
	svc := NewProfileService(repo, notifier)
	ctx := context.Background()

	result, err := svc.Like(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.False(t, result.IsMatch)
	assert.True(t, repo.likes[pair{"alice", "bob"}])
	assert.Empty(t, repo.matches)

	// Bob gets a durable like notification and a live push.
	stored := repo.notificationsFor("bob")
	require.Len(t, stored, 1)
	assert.Equal(t, models.NotificationLike, stored[0].Type)
	assert.Equal(t, "alice", stored[0].FromID)

	require.Len(t, notifier.pushed, 1)
	assert.Equal(t, "bob", notifier.pushed[0].userID)
	assert.Equal(t, models.NotificationLike, notifier.pushed[0].n.Type)
	assert.Equal(t, "alice", notifier.pushed[0].n.From)
}

func TestMutualLikeCreatesMatch(t *testing.T) {
	repo := newFakeProfileRepo(
		testUser("alice", "Alice"),
		testUser("bob", "Bob"),
	)
	notifier := &fakeNotifier{}
	svc := NewProfileService(repo, notifier)
	ctx := context.Background()

	_, err := svc.Like(ctx, "bob", "alice")
	require.NoError(t, err)

	result, err := svc.Like(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.True(t, result.IsMatch)

	require.Len(t, repo.matches, 1)
	a, b := models.OrderPair("alice", "bob")
	assert.Equal(t, a, repo.matches[0].UserAID)
	assert.Equal(t, b, repo.matches[0].UserBID)

	// Both like rows are consumed by the match.
	assert.False(t, repo.likes[pair{"alice", "bob"}])
	assert.False(t, repo.likes[pair{"bob", "alice"}])

	// Both sides get a durable match notification.
	aliceNotifs := repo.notificationsFor("alice")
	bobNotifs := repo.notificationsFor("bob")
	require.NotEmpty(t, aliceNotifs)
	require.NotEmpty(t, bobNotifs)
	assert.Equal(t, models.NotificationMatch, aliceNotifs[len(aliceNotifs)-1].Type)
	assert.Equal(t, models.NotificationMatch, bobNotifs[len(bobNotifs)-1].Type)
}

func TestMutualLikeDoesNotDuplicateMatch(t *testing.T) {
	repo := newFakeProfileRepo(
		testUser("alice", "Alice"),
		testUser("bob", "Bob"),
	)
	svc := NewProfileService(repo, nil)
	ctx := context.Background()

	_, err := repo.CreateMatch(ctx, "alice", "bob")
	require.NoError(t, err)

	require.NoError(t, repo.AddLike(ctx, "bob", "alice"))
	result, err := svc.Like(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.True(t, result.IsMatch)
	assert.Len(t, repo.matches, 1)
}

func TestLikeSupersedesSkip(t *testing.T) {
	repo := newFakeProfileRepo(
		testUser("alice", "Alice"),
		testUser("bob", "Bob"),
	)
	svc := NewProfileService(repo, nil)
	ctx := context.Background()

	require.NoError(t, repo.AddSkip(ctx, "alice", "bob"))

	_, err := svc.Like(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.False(t, repo.skips[pair{"alice", "bob"}])
	assert.True(t, repo.likes[pair{"alice", "bob"}])
}

func TestSkipRemovesLikesBothWays(t *testing.T) {
	repo := newFakeProfileRepo(
		testUser("alice", "Alice"),
		testUser("bob", "Bob"),
	)
	svc := NewProfileService(repo, nil)
	ctx := context.Background()

	require.NoError(t, repo.AddLike(ctx, "bob", "alice"))

	require.NoError(t, svc.Skip(ctx, "alice", "bob"))
	assert.True(t, repo.skips[pair{"alice", "bob"}])
	assert.False(t, repo.likes[pair{"bob", "alice"}])
}

func TestLikeUnknownTarget(t *testing.T) {
	repo := newFakeProfileRepo(testUser("alice", "Alice"))
	svc := NewProfileService(repo, nil)

	_, err := svc.Like(context.Background(), "alice", "ghost")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestDiscoverScoresAndExcludes(t *testing.T) {
	repo := newFakeProfileRepo(
		testUser("me", "Me", "coffee", "hiking", "jazz"),
		testUser("two-shared", "Two", "coffee", "hiking"),
		testUser("one-shared", "One", "jazz", "opera"),
		testUser("none-shared", "None", "golf"),
		testUser("already-liked", "Liked", "coffee"),
		testUser("already-skipped", "Skipped", "coffee"),
		testUser("already-matched", "Matched", "coffee"),
	)
	ctx := context.Background()
	require.NoError(t, repo.AddLike(ctx, "me", "already-liked"))
	require.NoError(t, repo.AddSkip(ctx, "me", "already-skipped"))
	_, err := repo.CreateMatch(ctx, "me", "already-matched")
	require.NoError(t, err)

	svc := NewProfileService(repo, nil)
	cards, err := svc.Discover(ctx, "me")
	require.NoError(t, err)

	require.Len(t, cards, 2)
	assert.Equal(t, "two-shared", cards[0].ID)
	assert.Equal(t, 2, cards[0].MatchScore)
	assert.Equal(t, "one-shared", cards[1].ID)
	assert.Equal(t, 1, cards[1].MatchScore)
}

func TestNotificationsReadFlow(t *testing.T) {
	repo := newFakeProfileRepo(
		testUser("alice", "Alice"),
		testUser("bob", "Bob"),
	)
	svc := NewProfileService(repo, nil)
	ctx := context.Background()

	_, err := svc.Like(ctx, "alice", "bob")
	require.NoError(t, err)

	views, err := svc.Notifications(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.False(t, views[0].Read)

	require.NoError(t, svc.MarkNotificationsRead(ctx, "bob"))

	views, err = svc.Notifications(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.True(t, views[0].Read)
}
