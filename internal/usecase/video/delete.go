package video

import (
	"context"
	"errors"
	"log"

	"github.com/reelvault/reelvault-go/internal/port"
	"gorm.io/gorm"
)

type deleteSrv struct {
	users     port.UserRepository
	videos    port.VideoRepository
	processor port.MediaProcessor
	cache     port.Cache
}

var _ port.VideoDeleter = (*deleteSrv)(nil)

// NewDeleter constructs a port.VideoDeleter implementation.
func NewDeleter(users port.UserRepository, videos port.VideoRepository, processor port.MediaProcessor, cache port.Cache) port.VideoDeleter {
	return &deleteSrv{users: users, videos: videos, processor: processor, cache: cache}
}

// DeleteVideo removes one record owned by the principal. A record owned by
// someone else reads as not found, never as forbidden.
func (s *deleteSrv) DeleteVideo(ctx context.Context, in port.DeleteVideoInput) error {
	user, err := s.users.GetByExternalID(ctx, in.Principal.ExternalID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}

	video, err := s.videos.GetByID(ctx, in.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}
	if video.UserID != user.ID {
		return ErrVideoNotFound
	}

	// the ownership check repeats inside the delete so a concurrent
	// re-assignment cannot slip through
	if err := s.videos.DeleteOwned(ctx, in.ID, user.ID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}

	if err := s.processor.Destroy(ctx, video.PublicID, "video"); err != nil {
		log.Printf("failed to destroy remote asset %q: %v", video.PublicID, err)
	}
	if err := s.cache.DeleteUserVideos(ctx, user.ID); err != nil {
		log.Printf("failed invalidating cached video list for user #%s: %v", user.ID, err)
	}
	return nil
}
