package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tourcatalog-service/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

// InvalidationChannel is where invalidation notices are published for other readers
const InvalidationChannel = "catalog:invalidate"

// RedisCacheRepository implements the CacheRepository interface
type RedisCacheRepository struct {
	client *redis.Client
	prefix string
}

// NewRedisCacheRepository creates a new Redis cache repository
func NewRedisCacheRepository(client *redis.Client) repository.CacheRepository {
	return &RedisCacheRepository{
		client: client,
		prefix: "catalog",
	}
}

type invalidationMessage struct {
	EntityType string    `json:"entity_type"`
	ID         string    `json:"id"`
	Slug       string    `json:"slug,omitempty"`
	At         time.Time `json:"at"`
}

// Keys returns the cache keys holding views of the entity
func (r *RedisCacheRepository) Keys(entityType, id, slug string) []string {
	keys := []string{
		fmt.Sprintf("%s:%s:%s", r.prefix, entityType, id),
		fmt.Sprintf("%s:%s:list", r.prefix, entityType),
	}
	if slug != "" {
		keys = append(keys, fmt.Sprintf("%s:%s:slug:%s", r.prefix, entityType, slug))
	}
	return keys
}

// Invalidate deletes the cached views and announces the change
func (r *RedisCacheRepository) Invalidate(ctx context.Context, entityType, id, slug string) error {
	if err := r.client.Del(ctx, r.Keys(entityType, id, slug)...).Err(); err != nil {
		return fmt.Errorf("failed to delete cache keys: %w", err)
	}

	msg, err := json.Marshal(invalidationMessage{
		EntityType: entityType,
		ID:         id,
		Slug:       slug,
		At:         time.Now().UTC(),
	})
	if err != nil {
		return err
	}
	if err := r.client.Publish(ctx, InvalidationChannel, msg).Err(); err != nil {
		return fmt.Errorf("failed to publish invalidation: %w", err)
	}
	return nil
}

// NoopCacheRepository is used when no cache is configured
type NoopCacheRepository struct{}

// NewNoopCacheRepository creates a cache repository that does nothing
func NewNoopCacheRepository() repository.CacheRepository {
	return NoopCacheRepository{}
}

// Invalidate does nothing
func (NoopCacheRepository) Invalidate(context.Context, string, string, string) error {
	return nil
}
