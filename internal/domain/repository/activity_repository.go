package repository

import (
	"context"

	"tourcatalog-service/internal/domain/entity"
)

// ActivityRepository defines the interface for the append-only change history
type ActivityRepository interface {
	Append(ctx context.Context, entry *entity.ActivityEntry) error
	// List returns entries newest first
	List(ctx context.Context, filter entity.ActivityFilter) ([]*entity.ActivityEntry, error)
}
