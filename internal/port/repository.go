package port

import (
	"context"

	"github.com/reelvault/reelvault-go/internal/model"
	"github.com/reelvault/reelvault-go/internal/uuid"
)

// UserRepository persists local mirrors of external principals.
type UserRepository interface {
	GetByExternalID(ctx context.Context, externalID string) (*model.User, error)
	Create(ctx context.Context, user *model.User) error
}

// VideoRepository persists processed upload records.
type VideoRepository interface {
	Create(ctx context.Context, video *model.Video) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Video, error)
	GetByPublicID(ctx context.Context, publicID string) (*model.Video, error)
	Update(ctx context.Context, video *model.Video) error
	// ListByUser returns every record owned by the user, newest first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Video, error)
	// DeleteOwned removes the record only when it belongs to userID;
	// a row owned by someone else reads as not found.
	DeleteOwned(ctx context.Context, id, userID uuid.UUID) error
}
