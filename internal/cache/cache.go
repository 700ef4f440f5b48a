package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/reelvault/reelvault-go/internal/model"
	"github.com/reelvault/reelvault-go/internal/port"
	"github.com/reelvault/reelvault-go/internal/uuid"
)

type Cache struct {
	client *redis.Client
}

// compile-time check: *Cache must satisfy port.Cache
var _ port.Cache = (*Cache)(nil)

func NewCache(addr, password string) *Cache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	return &Cache{client: rdb}
}

func (c *Cache) GetUserVideos(ctx context.Context, userID uuid.UUID) ([]model.Video, error) {
	log.Printf("getting cached video list for user #%s...", userID)

	val, err := c.client.Get(ctx, getCacheKey(userID.String())).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil // cache miss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var videos []model.Video
	if err := json.Unmarshal([]byte(val), &videos); err != nil {
		return nil, fmt.Errorf("unmarshal failed: %w", err)
	}

	return videos, nil
}

func (c *Cache) SetUserVideos(ctx context.Context, userID uuid.UUID, videos []model.Video, ttl time.Duration) error {
	log.Printf("caching video list for user #%s (%d records)...", userID, len(videos))

	data, err := json.Marshal(videos)
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}

	if err := c.client.Set(ctx, getCacheKey(userID.String()), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *Cache) DeleteUserVideos(ctx context.Context, userID uuid.UUID) error {
	log.Printf("invalidating cached video list for user #%s...", userID)

	if err := c.client.Del(ctx, getCacheKey(userID.String())).Err(); err != nil {
		return fmt.Errorf("redis del failed: %w", err)
	}
	return nil
}

func getCacheKey(userID string) string {
	return "videos:" + userID
}
