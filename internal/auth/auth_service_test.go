package auth

import (
	"context"
	"testing"
	"time"

	"github.com/shivamk23/cafe-meet-up-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeAuthRepo struct {
	byID    map[string]*models.User
	byEmail map[string]*models.User
}

func newFakeAuthRepo() *fakeAuthRepo {
	return &fakeAuthRepo{
		byID:    make(map[string]*models.User),
		byEmail: make(map[string]*models.User),
	}
}

func (r *fakeAuthRepo) CreateUser(_ context.Context, user *models.User) error {
	r.byID[user.ID] = user
	r.byEmail[user.Email] = user
	return nil
}

func (r *fakeAuthRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	if u, ok := r.byEmail[email]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeAuthRepo) FindByID(_ context.Context, id string) (*models.User, error) {
	if u, ok := r.byID[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func registerRequest() RegisterRequest {
	return RegisterRequest{
		FirstName:    "Asha",
		LastName:     "Verma",
		Email:        "asha@example.com",
		Password:     "correct-horse",
		Phone:        "+911234567890",
		Age:          27,
		Gender:       "Female",
		Bio:          "coffee and climbing",
		ReasonToJoin: "meet new people",
		Interests:    []string{"coffee", "climbing"},
	}
}

func TestRegisterAndLogin(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo, "test-secret", time.Hour)
	ctx := context.Background()

	resp, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)
	require.NotEmpty(t, resp.ID)
	require.NotEmpty(t, resp.Token)
	assert.Equal(t, "asha@example.com", resp.Email)

	// The stored password is hashed, never the plaintext.
	stored := repo.byEmail["asha@example.com"]
	assert.NotEqual(t, "correct-horse", stored.Password)

	login, err := svc.Login(ctx, LoginRequest{Email: "asha@example.com", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, resp.ID, login.ID)
	assert.NotEmpty(t, login.Token)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc := NewAuthService(newFakeAuthRepo(), "test-secret", time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = svc.Register(ctx, registerRequest())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := NewAuthService(newFakeAuthRepo(), "test-secret", time.Hour)
	ctx := context.Background()

	_, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = svc.Login(ctx, LoginRequest{Email: "asha@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, LoginRequest{Email: "nobody@example.com", Password: "correct-horse"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyTokenRoundTrip(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo, "test-secret", time.Hour)
	ctx := context.Background()

	resp, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	userID, err := svc.VerifyToken(ctx, resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, userID)
}

func TestVerifyTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService(newFakeAuthRepo(), "test-secret", time.Hour)

	_, err := svc.VerifyToken(context.Background(), "not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenRejectsOtherSecret(t *testing.T) {
	repo := newFakeAuthRepo()
	issuer := NewAuthService(repo, "other-secret", time.Hour)
	verifier := NewAuthService(repo, "test-secret", time.Hour)
	ctx := context.Background()

	resp, err := issuer.Register(ctx, registerRequest())
	require.NoError(t, err)

	_, err = verifier.VerifyToken(ctx, resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyTokenRejectsDeletedAccount(t *testing.T) {
	repo := newFakeAuthRepo()
	svc := NewAuthService(repo, "test-secret", time.Hour)
	ctx := context.Background()

	resp, err := svc.Register(ctx, registerRequest())
	require.NoError(t, err)

	delete(repo.byID, resp.ID)

	_, err = svc.VerifyToken(ctx, resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
