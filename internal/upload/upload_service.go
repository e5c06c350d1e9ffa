package upload

import (
	"context"
	"mime/multipart"

	"github.com/shivamk23/cafe-meet-up-backend/internal/models"

	"gorm.io/gorm"
)

// ObjectStore is the storage backend for profile pictures, implemented by
// the MinIO client.
type ObjectStore interface {
	UploadProfilePicture(ctx context.Context, userID string, file *multipart.FileHeader) (string, error)
}

type UploadService struct {
	store ObjectStore
	db    *gorm.DB
}

func NewUploadService(store ObjectStore, db *gorm.DB) *UploadService {
	return &UploadService{store: store, db: db}
}

// SetProfilePicture stores the image and points the user's profile at it.
func (s *UploadService) SetProfilePicture(ctx context.Context, userID string, file *multipart.FileHeader) (string, error) {
	url, err := s.store.UploadProfilePicture(ctx, userID, file)
	if err != nil {
		return "", err
	}

	err = s.db.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("profile_picture", url).Error
	if err != nil {
		return "", err
	}
	return url, nil
}
