package usecase

import (
	"context"
	"time"

	"tourcatalog-service/internal/domain/entity"
	"tourcatalog-service/internal/domain/repository"
	"tourcatalog-service/pkg/logger"
	"tourcatalog-service/pkg/metrics"
)

// SideEffects runs the best-effort work that follows a successful mutation:
// cache invalidation (inline), activity logging and notifications (detached).
type SideEffects struct {
	cache    repository.CacheRepository
	activity *ActivityLogger
	notifier *NotificationDispatcher
	metrics  *metrics.Metrics
	logger   logger.Logger
}

// NewSideEffects creates the post-mutation hooks
func NewSideEffects(cache repository.CacheRepository, activity *ActivityLogger, notifier *NotificationDispatcher, metrics *metrics.Metrics, logger logger.Logger) *SideEffects {
	return &SideEffects{
		cache:    cache,
		activity: activity,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger.With("component", "side_effects"),
	}
}

// Mutation describes one committed change
type Mutation struct {
	Action         string
	EntityType     string
	EntityID       string
	Title          string
	Slug           string
	PreviousSlug   string
	Status         entity.Status
	PreviousStatus entity.Status
	Detail         string
	Actor          string
	Old            entity.Snapshot
	New            entity.Snapshot
	Labels         []entity.FieldLabel
}

// Apply runs every hook for the mutation
func (e *SideEffects) Apply(ctx context.Context, m Mutation) {
	e.invalidate(ctx, m.EntityType, m.EntityID, m.Slug)
	if m.PreviousSlug != "" && m.PreviousSlug != m.Slug {
		e.invalidate(ctx, m.EntityType, m.EntityID, m.PreviousSlug)
	}

	if e.activity != nil {
		e.activity.Record(ctx, ActivityRecord{
			Action:      m.Action,
			EntityType:  m.EntityType,
			EntityID:    m.EntityID,
			EntityTitle: m.Title,
			Detail:      m.Detail,
			Actor:       m.Actor,
			Old:         m.Old,
			New:         m.New,
			Labels:      m.Labels,
		})
	}

	e.notifier.Dispatch(ctx, &entity.CatalogEvent{
		Action:         m.Action,
		EntityType:     m.EntityType,
		EntityID:       m.EntityID,
		Title:          m.Title,
		Slug:           m.Slug,
		Status:         m.Status,
		PreviousStatus: m.PreviousStatus,
		Actor:          m.Actor,
		At:             time.Now(),
	})
}

// Wait drains detached activity and notification work
func (e *SideEffects) Wait() {
	if e.activity != nil {
		e.activity.Wait()
	}
	e.notifier.Wait()
}

func (e *SideEffects) invalidate(ctx context.Context, entityType, id, slug string) {
	if e.cache == nil {
		return
	}
	if err := e.cache.Invalidate(ctx, entityType, id, slug); err != nil {
		if e.metrics != nil {
			e.metrics.CacheInvalidationErrors.Inc()
		}
		e.logger.Warn("Failed to invalidate cache", "entityType", entityType, "id", id, "slug", slug, "error", err)
	}
}

// actorOrDefault names anonymous callers
func actorOrDefault(actor string) string {
	if actor == "" {
		return "system"
	}
	return actor
}

// statusAction maps a target status to its activity action
func statusAction(status entity.Status) string {
	if status == entity.StatusPublished {
		return entity.ActionPublish
	}
	return entity.ActionUnpublish
}

func invalidStatus() error {
	return &entity.ValidationError{Fields: []entity.FieldError{
		{Field: "status", Message: "must be one of: draft, published"},
	}}
}
