package match

import (
	"context"

	"github.com/shivamk23/cafe-meet-up-backend/internal/models"

	"gorm.io/gorm"
)

type MatchRepository interface {
	ListByUser(ctx context.Context, userID string) ([]*models.Match, error)
	GetUsers(ctx context.Context, ids []string) ([]*models.User, error)
}

type matchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) ListByUser(ctx context.Context, userID string) ([]*models.Match, error) {
	var matches []*models.Match
	err := r.db.WithContext(ctx).
		Where("user_a_id = ? OR user_b_id = ?", userID, userID).
		Order("created_at DESC").
		Find(&matches).Error
	return matches, err
}

func (r *matchRepository) GetUsers(ctx context.Context, ids []string) ([]*models.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var users []*models.User
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&users).Error
	return users, err
}
