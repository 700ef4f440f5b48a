package postgres

import (
	"context"
	"log"

	"github.com/reelvault/reelvault-go/internal/model"
	"github.com/reelvault/reelvault-go/internal/port"
	"github.com/reelvault/reelvault-go/internal/uuid"
	"gorm.io/gorm"
)

type VideoRepository struct {
	db *gorm.DB
}

// compile-time check: *VideoRepository must satisfy port.VideoRepository
var _ port.VideoRepository = (*VideoRepository)(nil)

func NewVideoRepository(db *gorm.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

func (r *VideoRepository) Create(ctx context.Context, video *model.Video) error {
	log.Printf("creating database record for video #%s (%q)...", video.ID, video.Title)

	return r.db.WithContext(ctx).Create(video).Error
}

func (r *VideoRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error) {
	var video model.Video
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&video).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *VideoRepository) GetByPublicID(ctx context.Context, publicID string) (*model.Video, error) {
	var video model.Video
	if err := r.db.WithContext(ctx).Where("public_id = ?", publicID).First(&video).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *VideoRepository) Update(ctx context.Context, video *model.Video) error {
	log.Printf("updating database record for video #%s...", video.ID)

	return r.db.WithContext(ctx).Save(video).Error
}

func (r *VideoRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Video, error) {
	var videos []model.Video
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&videos).Error
	if err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *VideoRepository) DeleteOwned(ctx context.Context, id, userID uuid.UUID) error {
	log.Printf("deleting database record for video #%s...", id)

	res := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.Video{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
