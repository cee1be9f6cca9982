package repository

import (
	"context"

	"tourcatalog-service/internal/domain/entity"
)

// TourRepository defines the interface for tour root operations
type TourRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Tour, error)
	// Upsert inserts or updates by id, assigning a new id when empty.
	// A slug collision returns entity.ErrDuplicateSlug.
	Upsert(ctx context.Context, tour *entity.Tour) error
	// Delete removes the tour and every child row it owns.
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status entity.Status) error
}
