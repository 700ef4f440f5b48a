package api_context

import (
	"context"

	"github.com/reelvault/reelvault-go/internal/uuid"
)

type ctxKey string

const (
	VideoIDKey    ctxKey = "videoID"
	AuthUserIDKey ctxKey = "authUserID"
	AuthEmailKey  ctxKey = "authEmail"
	AuthNameKey   ctxKey = "authName"
)

// VideoIDFromContext returns the video id extracted from the URL, if any.
func VideoIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(VideoIDKey).(uuid.UUID)
	return id, ok
}

// AuthUserIDFromContext returns the external principal id asserted by the
// authentication provider for the current request.
func AuthUserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(AuthUserIDKey).(string)
	return id, ok
}

func AuthEmailFromContext(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(AuthEmailKey).(string)
	return email, ok
}

func AuthNameFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(AuthNameKey).(string)
	return name, ok
}
