package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const TypeSyncEagerVideo = "video:sync_eager"

type SyncEagerVideoPayload struct {
	VideoID string `json:"video_id"`
}

// NewSyncEagerVideoTask creates an Asynq task for syncing a video's eager
// derivatives by ID.
func NewSyncEagerVideoTask(videoID string) (*asynq.Task, error) {
	p := SyncEagerVideoPayload{VideoID: videoID}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("could not marshal sync-eager-video payload: %w", err)
	}
	return asynq.NewTask(TypeSyncEagerVideo, data), nil
}

// ParseSyncEagerVideoPayload parses the task payload to SyncEagerVideoPayload.
func ParseSyncEagerVideoPayload(t *asynq.Task) (SyncEagerVideoPayload, error) {
	var p SyncEagerVideoPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return SyncEagerVideoPayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}
