package repository

import "context"

// CacheRepository drops cached views of an entity after a mutation
type CacheRepository interface {
	Invalidate(ctx context.Context, entityType, id, slug string) error
}
