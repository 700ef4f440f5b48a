package video

import (
	"context"
	"errors"
	"log"

	"github.com/reelvault/reelvault-go/internal/model"
	"github.com/reelvault/reelvault-go/internal/port"
	"github.com/reelvault/reelvault-go/internal/uuid"
	"gorm.io/gorm"
)

type syncEagerSrv struct {
	videos    port.VideoRepository
	processor port.MediaProcessor
	cache     port.Cache
}

var _ port.EagerSyncer = (*syncEagerSrv)(nil)

// NewEagerSyncer constructs a port.EagerSyncer implementation.
func NewEagerSyncer(videos port.VideoRepository, processor port.MediaProcessor, cache port.Cache) port.EagerSyncer {
	return &syncEagerSrv{videos: videos, processor: processor, cache: cache}
}

// SyncEager pulls the provider's derived-variant list for a record whose
// eager transcodes ran asynchronously and folds it into the stored metadata.
// Idempotent: re-running replaces the variant list with the provider's
// current view.
func (s *syncEagerSrv) SyncEager(ctx context.Context, id uuid.UUID) error {
	video, err := s.videos.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrVideoNotFound
		}
		return err
	}

	res, err := s.processor.Resource(ctx, video.PublicID, "video")
	if err != nil {
		return err
	}

	variants := make([]model.EagerVariant, 0, len(res.Derived))
	for _, d := range res.Derived {
		variants = append(variants, model.EagerVariant{
			Format:    d.Format,
			SecureURL: d.SecureURL,
			Bytes:     d.Bytes,
		})
	}
	if len(variants) == 0 && len(video.Metadata.EagerVariants) == 0 {
		log.Printf("no derived variants yet for video #%s", video.ID)
		return nil
	}

	video.Metadata.EagerVariants = variants
	if res.Bytes > 0 {
		video.CompressedSize = res.Bytes
	}
	if err := s.videos.Update(ctx, video); err != nil {
		return err
	}

	if err := s.cache.DeleteUserVideos(ctx, video.UserID); err != nil {
		log.Printf("failed invalidating cached video list for user #%s: %v", video.UserID, err)
	}
	return nil
}
