package identity

import (
	"context"
	"errors"
	"log"

	"github.com/reelvault/reelvault-go/internal/model"
	"github.com/reelvault/reelvault-go/internal/port"
	"gorm.io/gorm"
)

// ErrMissingProfile is returned when a principal carries no usable identity.
var ErrMissingProfile = errors.New("identity: principal has no usable profile")

type resolverSrv struct {
	users   port.UserRepository
	genUUID port.UUIDGen
}

// NewResolver constructs a port.IdentityResolver implementation.
func NewResolver(users port.UserRepository, genUUID port.UUIDGen) port.IdentityResolver {
	return &resolverSrv{users: users, genUUID: genUUID}
}

// Resolve returns the local user mirroring the external principal, creating
// it on first sight. Two concurrent first requests may both attempt the
// insert; the loser hits the unique index on external_id and re-reads the
// winner's row.
func (s *resolverSrv) Resolve(ctx context.Context, p port.Principal) (*model.User, error) {
	if p.ExternalID == "" {
		return nil, ErrMissingProfile
	}

	user, err := s.users.GetByExternalID(ctx, p.ExternalID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if p.Email == "" || p.Name == "" {
		return nil, ErrMissingProfile
	}

	user = &model.User{
		ID:         s.genUUID(),
		ExternalID: p.ExternalID,
		Email:      p.Email,
		Name:       p.Name,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Printf("user %q created concurrently, re-reading", p.ExternalID)
			return s.users.GetByExternalID(ctx, p.ExternalID)
		}
		return nil, err
	}
	return user, nil
}
