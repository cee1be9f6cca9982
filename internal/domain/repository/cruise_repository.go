package repository

import (
	"context"

	"tourcatalog-service/internal/domain/entity"
)

// CruiseRepository defines the interface for cruise root operations
type CruiseRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Cruise, error)
	Upsert(ctx context.Context, cruise *entity.Cruise) error
	Delete(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, id string, status entity.Status) error
}
