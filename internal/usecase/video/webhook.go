package video

import (
	"context"
	"errors"
	"log"

	"github.com/reelvault/reelvault-go/internal/port"
	"gorm.io/gorm"
)

// Notification types the provider is known to send.
const (
	NotificationEager      = "eager"
	NotificationModeration = "moderation"
)

type webhookSrv struct {
	videos     port.VideoRepository
	dispatcher port.TaskDispatcher
}

var _ port.WebhookProcessor = (*webhookSrv)(nil)

// NewWebhookProcessor constructs a port.WebhookProcessor implementation.
func NewWebhookProcessor(videos port.VideoRepository, dispatcher port.TaskDispatcher) port.WebhookProcessor {
	return &webhookSrv{videos: videos, dispatcher: dispatcher}
}

// ProcessNotification reacts to an asynchronous provider callback. An eager
// notification means background transcodes finished, so a sync task is
// queued for the matching record. Everything else is acknowledged and
// logged; the provider retries on non-2xx so failures here must stay soft.
func (s *webhookSrv) ProcessNotification(ctx context.Context, notificationType string, payload map[string]any) error {
	switch notificationType {
	case NotificationEager:
		publicID, _ := payload["public_id"].(string)
		if publicID == "" {
			log.Printf("eager notification without public_id, ignoring")
			return nil
		}
		video, err := s.videos.GetByPublicID(ctx, publicID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				log.Printf("eager notification for unknown asset %q, ignoring", publicID)
				return nil
			}
			return err
		}
		return s.dispatcher.EnqueueSyncEagerVideo(ctx, video.ID)
	case NotificationModeration:
		log.Printf("moderation notification received: %v", payload["moderation_status"])
		return nil
	default:
		log.Printf("unhandled notification type %q", notificationType)
		return nil
	}
}
