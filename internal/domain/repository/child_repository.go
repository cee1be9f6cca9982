package repository

import (
	"context"

	"tourcatalog-service/internal/domain/entity"
)

// ChildRepository stores the rows of ordered child collections
type ChildRepository interface {
	DeleteByRoot(ctx context.Context, collection entity.Collection, rootID string) error
	BulkInsert(ctx context.Context, collection entity.Collection, records []entity.ChildRecord) error
	// ListByRoot returns rows ordered by sort_order, without id and foreign key columns.
	ListByRoot(ctx context.Context, collection entity.Collection, rootID string) ([]entity.ChildRecord, error)
}
