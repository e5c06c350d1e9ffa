package profile

import (
	"context"
	"time"

	"github.com/shivamk23/cafe-meet-up-backend/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository interface {
	GetUser(ctx context.Context, id string) (*models.User, error)
	ListCandidates(ctx context.Context, excludeIDs []string) ([]*models.User, error)

	AddLike(ctx context.Context, userID, likedID string) error
	RemoveLike(ctx context.Context, userID, likedID string) error
	HasLike(ctx context.Context, userID, likedID string) (bool, error)
	ListLikedIDs(ctx context.Context, userID string) ([]string, error)
	ListLikedBy(ctx context.Context, userID string) ([]*models.User, error)

	AddSkip(ctx context.Context, userID, skippedID string) error
	RemoveSkip(ctx context.Context, userID, skippedID string) error
	ListSkippedIDs(ctx context.Context, userID string) ([]string, error)

	CreateMatch(ctx context.Context, userA, userB string) (*models.Match, error)
	MatchExists(ctx context.Context, userA, userB string) (bool, error)
	ListMatchedIDs(ctx context.Context, userID string) ([]string, error)

	CreateNotification(ctx context.Context, n *models.Notification) error
	ListNotifications(ctx context.Context, userID string) ([]*models.Notification, error)
	MarkNotificationsRead(ctx context.Context, userID string) error
}

type profileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *profileRepository) ListCandidates(ctx context.Context, excludeIDs []string) ([]*models.User, error) {
	var users []*models.User
	err := r.db.WithContext(ctx).
		Where("id NOT IN ?", excludeIDs).
		Find(&users).Error
	return users, err
}

func (r *profileRepository) AddLike(ctx context.Context, userID, likedID string) error {
	like := models.Like{UserID: userID, LikedID: likedID, CreatedAt: time.Now().UTC()}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&like).Error
}

func (r *profileRepository) RemoveLike(ctx context.Context, userID, likedID string) error {
	return r.db.WithContext(ctx).
		Delete(&models.Like{}, "user_id = ? AND liked_id = ?", userID, likedID).Error
}

func (r *profileRepository) HasLike(ctx context.Context, userID, likedID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Like{}).
		Where("user_id = ? AND liked_id = ?", userID, likedID).
		Count(&count).Error
	return count > 0, err
}

func (r *profileRepository) ListLikedIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&models.Like{}).
		Where("user_id = ?", userID).
		Pluck("liked_id", &ids).Error
	return ids, err
}

func (r *profileRepository) ListLikedBy(ctx context.Context, userID string) ([]*models.User, error) {
	var users []*models.User
	err := r.db.WithContext(ctx).
		Joins("JOIN user_likes ON user_likes.user_id = users.id").
		Where("user_likes.liked_id = ?", userID).
		Find(&users).Error
	return users, err
}

func (r *profileRepository) AddSkip(ctx context.Context, userID, skippedID string) error {
	skip := models.Skip{UserID: userID, SkippedID: skippedID, CreatedAt: time.Now().UTC()}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(&skip).Error
}

func (r *profileRepository) RemoveSkip(ctx context.Context, userID, skippedID string) error {
	return r.db.WithContext(ctx).
		Delete(&models.Skip{}, "user_id = ? AND skipped_id = ?", userID, skippedID).Error
}

func (r *profileRepository) ListSkippedIDs(ctx context.Context, userID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).Model(&models.Skip{}).
		Where("user_id = ?", userID).
		Pluck("skipped_id", &ids).Error
	return ids, err
}

func (r *profileRepository) CreateMatch(ctx context.Context, userA, userB string) (*models.Match, error) {
	a, b := models.OrderPair(userA, userB)
	match := &models.Match{
		ID:        uuid.New().String(),
		UserAID:   a,
		UserBID:   b,
		CreatedAt: time.Now().UTC(),
	}
	if err := r.db.WithContext(ctx).Create(match).Error; err != nil {
		return nil, err
	}
	return match, nil
}

func (r *profileRepository) MatchExists(ctx context.Context, userA, userB string) (bool, error) {
	a, b := models.OrderPair(userA, userB)
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Match{}).
		Where("user_a_id = ? AND user_b_id = ?", a, b).
		Count(&count).Error
	return count > 0, err
}

func (r *profileRepository) ListMatchedIDs(ctx context.Context, userID string) ([]string, error) {
	var matches []models.Match
	err := r.db.WithContext(ctx).
		Where("user_a_id = ? OR user_b_id = ?", userID, userID).
		Find(&matches).Error
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(matches))
	for _, m := range matches {
		if m.UserAID == userID {
			ids = append(ids, m.UserBID)
		} else {
			ids = append(ids, m.UserAID)
		}
	}
	return ids, nil
}

func (r *profileRepository) CreateNotification(ctx context.Context, n *models.Notification) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *profileRepository) ListNotifications(ctx context.Context, userID string) ([]*models.Notification, error) {
	var notifications []*models.Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (r *profileRepository) MarkNotificationsRead(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("user_id = ? AND `read` = ?", userID, false).
		Update("read", true).Error
}
