package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/reelvault/reelvault-go/internal/model"
	"github.com/reelvault/reelvault-go/internal/uuid"
)

func makeTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	// spin up in-memory Redis
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run: %v", err)
	}
	// point the real client at it
	rdb := redis.NewClient(&redis.Options{
		Addr:     mr.Addr(),
		Password: "",
		DB:       0,
	})
	return &Cache{client: rdb}, mr
}

func TestGetSetDeleteUserVideos(t *testing.T) {
	c, mr := makeTestCache(t)
	ctx := context.Background()

	userID := uuid.NewUUID()
	videos := []model.Video{
		{
			ID:           uuid.NewUUID(),
			Title:        "First",
			PublicID:     "reelvault-uploads/abc",
			OriginalSize: 1000,
			UserID:       userID,
		},
		{
			ID:           uuid.NewUUID(),
			Title:        "Second",
			PublicID:     "reelvault-uploads/def",
			OriginalSize: 2000,
			UserID:       userID,
		},
	}

	// 1) Cache miss
	got, err := c.GetUserVideos(ctx, userID)
	if err != nil {
		t.Fatalf("GetUserVideos miss: %v", err)
	}
	if got != nil {
		t.Errorf("GetUserVideos miss: got %v; want nil", got)
	}

	// 2) Set then Get
	if err := c.SetUserVideos(ctx, userID, videos, time.Minute); err != nil {
		t.Fatalf("SetUserVideos: %v", err)
	}
	got, err = c.GetUserVideos(ctx, userID)
	if err != nil {
		t.Fatalf("GetUserVideos hit: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("GetUserVideos hit: got %d records; want 2", len(got))
	}
	if got[0].ID != videos[0].ID || got[1].Title != "Second" {
		t.Errorf("GetUserVideos hit: got %+v; want %+v", got, videos)
	}

	// 3) TTL should be honoured by the server
	mr.FastForward(2 * time.Minute)
	got, err = c.GetUserVideos(ctx, userID)
	if err != nil {
		t.Fatalf("GetUserVideos after expiry: %v", err)
	}
	if got != nil {
		t.Errorf("GetUserVideos after expiry: got %v; want nil", got)
	}

	// 4) Delete removes the entry
	if err := c.SetUserVideos(ctx, userID, videos, time.Minute); err != nil {
		t.Fatalf("SetUserVideos: %v", err)
	}
	if err := c.DeleteUserVideos(ctx, userID); err != nil {
		t.Fatalf("DeleteUserVideos: %v", err)
	}
	got, err = c.GetUserVideos(ctx, userID)
	if err != nil {
		t.Fatalf("GetUserVideos after delete: %v", err)
	}
	if got != nil {
		t.Errorf("GetUserVideos after delete: got %v; want nil", got)
	}
}

func TestGetUserVideosCorruptPayload(t *testing.T) {
	c, mr := makeTestCache(t)
	ctx := context.Background()

	userID := uuid.NewUUID()
	mr.Set(getCacheKey(userID.String()), "{not json")

	_, err := c.GetUserVideos(ctx, userID)
	if err == nil {
		t.Fatal("expected an error for a corrupt payload, got nil")
	}
}
