package video

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/reelvault/reelvault-go/internal/model"
	"github.com/reelvault/reelvault-go/internal/port"
	"gorm.io/gorm"
)

// listCacheTTL bounds how stale a cached listing can get if an invalidation
// is ever missed.
const listCacheTTL = 5 * time.Minute

type listSrv struct {
	users  port.UserRepository
	videos port.VideoRepository
	cache  port.Cache
}

var _ port.VideoLister = (*listSrv)(nil)

// NewLister constructs a port.VideoLister implementation.
func NewLister(users port.UserRepository, videos port.VideoRepository, cache port.Cache) port.VideoLister {
	return &listSrv{users: users, videos: videos, cache: cache}
}

// ListVideos returns the principal's records, newest first. A principal that
// never uploaded anything has no local user yet and simply owns nothing.
func (s *listSrv) ListVideos(ctx context.Context, p port.Principal) ([]model.Video, error) {
	user, err := s.users.GetByExternalID(ctx, p.ExternalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []model.Video{}, nil
		}
		return nil, err
	}

	if cached, err := s.cache.GetUserVideos(ctx, user.ID); err != nil {
		log.Printf("failed reading cached video list for user #%s: %v", user.ID, err)
	} else if cached != nil {
		return cached, nil
	}

	videos, err := s.videos.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetUserVideos(ctx, user.ID, videos, listCacheTTL); err != nil {
		log.Printf("failed caching video list for user #%s: %v", user.ID, err)
	}
	return videos, nil
}
