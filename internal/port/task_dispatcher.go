package port

import (
	"context"

	"github.com/reelvault/reelvault-go/internal/uuid"
)

// TaskDispatcher enqueues background work.
type TaskDispatcher interface {
	EnqueueSyncEagerVideo(ctx context.Context, id uuid.UUID) error
}
