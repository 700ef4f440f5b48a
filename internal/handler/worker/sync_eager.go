package worker

import (
	"context"
	"log"

	guuid "github.com/google/uuid"
	"github.com/reelvault/reelvault-go/internal/port"
	"github.com/reelvault/reelvault-go/internal/task"
	rvuuid "github.com/reelvault/reelvault-go/internal/uuid"
)

// SyncEagerVideoHandler handles a sync-eager-video task. It converts the
// task payload to the input expected by the video.EagerSyncer service and
// delegates the call.
func SyncEagerVideoHandler(ctx context.Context, p task.SyncEagerVideoPayload, svc port.EagerSyncer) error {
	id, err := guuid.Parse(p.VideoID)
	if err != nil {
		log.Printf("❌  Invalid video ID %q: %v", p.VideoID, err)
		return err
	}

	if err := svc.SyncEager(ctx, rvuuid.UUID(id)); err != nil {
		log.Printf("❌  Failed to sync eager variants for video #%s: %v", id, err)
		return err
	}

	log.Printf("✅  Successfully synced eager variants for video #%s", id)
	return nil
}
