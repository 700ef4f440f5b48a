package cache

import (
	"context"
	"time"

	"github.com/reelvault/reelvault-go/internal/model"
	"github.com/reelvault/reelvault-go/internal/port"
	"github.com/reelvault/reelvault-go/internal/uuid"
)

// NoOp is used when no redis address is configured. Every read is a miss
// and writes are discarded, so callers always hit the database.
type NoOp struct{}

var _ port.Cache = (*NoOp)(nil)

func NewNoOp() *NoOp { return &NoOp{} }

func (n *NoOp) GetUserVideos(ctx context.Context, userID uuid.UUID) ([]model.Video, error) {
	return nil, nil
}

func (n *NoOp) SetUserVideos(ctx context.Context, userID uuid.UUID, videos []model.Video, ttl time.Duration) error {
	return nil
}

func (n *NoOp) DeleteUserVideos(ctx context.Context, userID uuid.UUID) error {
	return nil
}
