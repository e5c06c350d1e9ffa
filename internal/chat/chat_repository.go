package chat

import (
	"context"

	"github.com/shivamk23/cafe-meet-up-backend/internal/models"

	"gorm.io/gorm"
)

type ChatRepository interface {
	GetMatch(ctx context.Context, matchID string) (*models.Match, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	ListMessages(ctx context.Context, matchID string) ([]*models.Message, error)
	CreateMessage(ctx context.Context, msg *models.Message) error
}

type chatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) ChatRepository {
	return &chatRepository{db: db}
}

func (r *chatRepository) GetMatch(ctx context.Context, matchID string) (*models.Match, error) {
	var match models.Match
	if err := r.db.WithContext(ctx).First(&match, "id = ?", matchID).Error; err != nil {
		return nil, err
	}
	return &match, nil
}

func (r *chatRepository) GetUser(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *chatRepository) ListMessages(ctx context.Context, matchID string) ([]*models.Message, error) {
	var messages []*models.Message
	err := r.db.WithContext(ctx).
		Where("match_id = ?", matchID).
		Order("created_at ASC").
		Find(&messages).Error
	return messages, err
}

func (r *chatRepository) CreateMessage(ctx context.Context, msg *models.Message) error {
	return r.db.WithContext(ctx).Create(msg).Error
}
