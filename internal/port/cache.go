package port

import (
	"context"
	"time"

	"github.com/reelvault/reelvault-go/internal/model"
	"github.com/reelvault/reelvault-go/internal/uuid"
)

// Cache holds the per-user video listing. A nil, nil return is a miss.
type Cache interface {
	GetUserVideos(ctx context.Context, userID uuid.UUID) ([]model.Video, error)
	SetUserVideos(ctx context.Context, userID uuid.UUID, videos []model.Video, ttl time.Duration) error
	DeleteUserVideos(ctx context.Context, userID uuid.UUID) error
}
