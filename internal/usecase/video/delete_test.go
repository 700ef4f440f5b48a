package video

import (
	"context"
	"errors"
	"testing"

	"github.com/reelvault/reelvault-go/internal/model"
	"github.com/reelvault/reelvault-go/internal/port"
	"github.com/reelvault/reelvault-go/internal/uuid"
	"gorm.io/gorm"
)

func TestDeleteVideo_OwnedRecord(t *testing.T) {
	user := &model.User{ID: uuid.NewUUID(), ExternalID: "ext_1"}
	video := &model.Video{ID: uuid.NewUUID(), PublicID: "reelvault-uploads/abc", UserID: user.ID}
	users := &mockUserRepo{userRecord: user}
	repo := &mockVideoRepo{videoRecord: video}
	proc := &mockProcessor{}
	cache := &mockCache{}
	svc := NewDeleter(users, repo, proc, cache)

	err := svc.DeleteVideo(context.Background(), port.DeleteVideoInput{
		ID:        video.ID,
		Principal: port.Principal{ExternalID: "ext_1"},
	})
	if err != nil {
		t.Fatalf("DeleteVideo: %v", err)
	}
	if !repo.deleteCalled || repo.deletedID != video.ID || repo.deletedUserID != user.ID {
		t.Error("expected an owner-scoped delete")
	}
	if !proc.destroyCalled || proc.destroyedID != video.PublicID || proc.destroyedType != "video" {
		t.Error("expected the remote asset to be destroyed")
	}
	if !cache.delCalled {
		t.Error("expected the listing cache to be invalidated")
	}
}

func TestDeleteVideo_SomeoneElsesRecordReadsAsMissing(t *testing.T) {
	user := &model.User{ID: uuid.NewUUID(), ExternalID: "ext_1"}
	video := &model.Video{ID: uuid.NewUUID(), PublicID: "k", UserID: uuid.NewUUID()}
	users := &mockUserRepo{userRecord: user}
	repo := &mockVideoRepo{videoRecord: video}
	proc := &mockProcessor{}
	svc := NewDeleter(users, repo, proc, &mockCache{})

	err := svc.DeleteVideo(context.Background(), port.DeleteVideoInput{
		ID:        video.ID,
		Principal: port.Principal{ExternalID: "ext_1"},
	})
	if !errors.Is(err, ErrVideoNotFound) {
		t.Fatalf("expected ErrVideoNotFound, got %v", err)
	}
	if repo.deleteCalled {
		t.Error("no delete may run against a foreign record")
	}
	if proc.destroyCalled {
		t.Error("no remote destroy may run against a foreign record")
	}
}

func TestDeleteVideo_UnknownRecord(t *testing.T) {
	users := &mockUserRepo{userRecord: &model.User{ID: uuid.NewUUID()}}
	repo := &mockVideoRepo{getErr: gorm.ErrRecordNotFound}
	svc := NewDeleter(users, repo, &mockProcessor{}, &mockCache{})

	err := svc.DeleteVideo(context.Background(), port.DeleteVideoInput{
		ID:        uuid.NewUUID(),
		Principal: port.Principal{ExternalID: "ext_1"},
	})
	if !errors.Is(err, ErrVideoNotFound) {
		t.Fatalf("expected ErrVideoNotFound, got %v", err)
	}
}

func TestDeleteVideo_UnknownPrincipal(t *testing.T) {
	users := &mockUserRepo{getErr: gorm.ErrRecordNotFound}
	svc := NewDeleter(users, &mockVideoRepo{}, &mockProcessor{}, &mockCache{})

	err := svc.DeleteVideo(context.Background(), port.DeleteVideoInput{
		ID:        uuid.NewUUID(),
		Principal: port.Principal{ExternalID: "never_seen"},
	})
	if !errors.Is(err, ErrVideoNotFound) {
		t.Fatalf("expected ErrVideoNotFound, got %v", err)
	}
}

func TestDeleteVideo_ConcurrentLoserReadsAsMissing(t *testing.T) {
	user := &model.User{ID: uuid.NewUUID(), ExternalID: "ext_1"}
	video := &model.Video{ID: uuid.NewUUID(), PublicID: "k", UserID: user.ID}
	users := &mockUserRepo{userRecord: user}
	repo := &mockVideoRepo{videoRecord: video, deleteErr: gorm.ErrRecordNotFound}
	svc := NewDeleter(users, repo, &mockProcessor{}, &mockCache{})

	err := svc.DeleteVideo(context.Background(), port.DeleteVideoInput{
		ID:        video.ID,
		Principal: port.Principal{ExternalID: "ext_1"},
	})
	if !errors.Is(err, ErrVideoNotFound) {
		t.Fatalf("expected ErrVideoNotFound, got %v", err)
	}
}

func TestDeleteVideo_RemoteDestroyFailureIsSoft(t *testing.T) {
	user := &model.User{ID: uuid.NewUUID(), ExternalID: "ext_1"}
	video := &model.Video{ID: uuid.NewUUID(), PublicID: "k", UserID: user.ID}
	users := &mockUserRepo{userRecord: user}
	repo := &mockVideoRepo{videoRecord: video}
	proc := &mockProcessor{destroyErr: errors.New("provider down")}
	cache := &mockCache{}
	svc := NewDeleter(users, repo, proc, cache)

	err := svc.DeleteVideo(context.Background(), port.DeleteVideoInput{
		ID:        video.ID,
		Principal: port.Principal{ExternalID: "ext_1"},
	})
	if err != nil {
		t.Fatalf("a failed remote destroy must not fail the delete: %v", err)
	}
	if !cache.delCalled {
		t.Error("expected the listing cache to be invalidated")
	}
}
