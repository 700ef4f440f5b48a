package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/reelvault/reelvault-go/internal/model"
	"github.com/reelvault/reelvault-go/internal/port"
	"github.com/reelvault/reelvault-go/internal/uuid"
	"gorm.io/gorm"
)

var genUUID port.UUIDGen = uuid.NewUUID

func TestResolve_ExistingUser(t *testing.T) {
	existing := &model.User{ID: uuid.NewUUID(), ExternalID: "ext_1", Email: "a@b.com", Name: "A"}
	repo := &mockUserRepo{userRecord: existing}
	svc := NewResolver(repo, genUUID)

	got, err := svc.Resolve(context.Background(), port.Principal{ExternalID: "ext_1"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != existing {
		t.Errorf("expected the stored user back, got %+v", got)
	}
	if repo.created != nil {
		t.Error("Create should not be called for an existing user")
	}
}

func TestResolve_MissingExternalID(t *testing.T) {
	svc := NewResolver(&mockUserRepo{}, genUUID)

	_, err := svc.Resolve(context.Background(), port.Principal{})
	if !errors.Is(err, ErrMissingProfile) {
		t.Fatalf("expected ErrMissingProfile, got %v", err)
	}
}

func TestResolve_CreatesOnFirstSight(t *testing.T) {
	repo := &mockUserRepo{getErr: gorm.ErrRecordNotFound}
	svc := NewResolver(repo, genUUID)

	p := port.Principal{ExternalID: "ext_new", Email: "new@b.com", Name: "New User"}
	got, err := svc.Resolve(context.Background(), p)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if repo.created == nil {
		t.Fatal("expected Create to be called")
	}
	if got.ExternalID != "ext_new" || got.Email != "new@b.com" || got.Name != "New User" {
		t.Errorf("unexpected user created: %+v", got)
	}
	if got.ID == (uuid.UUID{}) {
		t.Error("expected a generated ID")
	}
}

func TestResolve_MissingProfileOnCreate(t *testing.T) {
	repo := &mockUserRepo{getErr: gorm.ErrRecordNotFound}
	svc := NewResolver(repo, genUUID)

	_, err := svc.Resolve(context.Background(), port.Principal{ExternalID: "ext_new"})
	if !errors.Is(err, ErrMissingProfile) {
		t.Fatalf("expected ErrMissingProfile, got %v", err)
	}
}

func TestResolve_DuplicateKeyRereads(t *testing.T) {
	winner := &model.User{ID: uuid.NewUUID(), ExternalID: "ext_race", Email: "w@b.com", Name: "Winner"}
	repo := &mockUserRepo{
		getErr:    gorm.ErrRecordNotFound,
		createErr: gorm.ErrDuplicatedKey,
		refetched: winner,
	}
	svc := NewResolver(repo, genUUID)

	got, err := svc.Resolve(context.Background(), port.Principal{ExternalID: "ext_race", Email: "l@b.com", Name: "Loser"})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != winner {
		t.Errorf("expected the concurrent winner's row, got %+v", got)
	}
	if repo.getCalls != 2 {
		t.Errorf("expected 2 reads, got %d", repo.getCalls)
	}
}

func TestResolve_GetError(t *testing.T) {
	repo := &mockUserRepo{getErr: errors.New("db fail")}
	svc := NewResolver(repo, genUUID)

	if _, err := svc.Resolve(context.Background(), port.Principal{ExternalID: "ext_1"}); err == nil || err.Error() != "db fail" {
		t.Fatalf("expected db fail, got %v", err)
	}
}

func TestResolve_CreateError(t *testing.T) {
	repo := &mockUserRepo{getErr: gorm.ErrRecordNotFound, createErr: errors.New("insert fail")}
	svc := NewResolver(repo, genUUID)

	_, err := svc.Resolve(context.Background(), port.Principal{ExternalID: "ext_1", Email: "a@b.com", Name: "A"})
	if err == nil || err.Error() != "insert fail" {
		t.Fatalf("expected insert fail, got %v", err)
	}
}
