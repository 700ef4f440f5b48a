package identity

import (
	"context"

	"github.com/reelvault/reelvault-go/internal/model"
)

type mockUserRepo struct {
	userRecord *model.User

	getErr    error
	createErr error

	// second GetByExternalID result, used for duplicate-key re-reads
	refetched *model.User

	getCalls int
	created  *model.User
}

func (m *mockUserRepo) GetByExternalID(ctx context.Context, externalID string) (*model.User, error) {
	m.getCalls++
	if m.getCalls > 1 && m.refetched != nil {
		return m.refetched, nil
	}
	if m.getErr != nil {
		return nil, m.getErr
	}
	return m.userRecord, nil
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	m.created = user
	return m.createErr
}
