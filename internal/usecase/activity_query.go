package usecase

import (
	"context"

	"tourcatalog-service/internal/domain/entity"
	"tourcatalog-service/internal/domain/repository"
	"tourcatalog-service/pkg/utils"
)

// ActivityQuery lists the change history, newest first
type ActivityQuery struct {
	repo         repository.ActivityRepository
	defaultLimit int
	maxLimit     int
}

// NewActivityQuery creates a new activity query
func NewActivityQuery(repo repository.ActivityRepository, defaultLimit, maxLimit int) *ActivityQuery {
	return &ActivityQuery{
		repo:         repo,
		defaultLimit: defaultLimit,
		maxLimit:     maxLimit,
	}
}

// List clamps the limit and rejects unknown entity types
func (q *ActivityQuery) List(ctx context.Context, filter entity.ActivityFilter) ([]*entity.ActivityEntry, error) {
	if filter.EntityType != "" && filter.EntityType != entity.EntityTour && filter.EntityType != entity.EntityCruise {
		return nil, &entity.ValidationError{Fields: []entity.FieldError{
			{Field: "entity_type", Message: "must be one of: tour, cruise"},
		}}
	}
	filter.Limit = utils.ClampLimit(filter.Limit, q.defaultLimit, q.maxLimit)

	entries, err := q.repo.List(ctx, filter)
	if err != nil {
		return nil, &entity.StorageError{Op: "list activity", Err: err}
	}
	return utils.NonNil(entries), nil
}
