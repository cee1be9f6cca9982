package usecase

import (
	"context"
	"errors"

	"tourcatalog-service/internal/domain/entity"
	"tourcatalog-service/pkg/logger"
	"tourcatalog-service/pkg/metrics"
)

// SavePlan describes one composite save: the payload to validate, the root
// upsert and the child collections to reconcile once the root id is known.
type SavePlan struct {
	EntityType string
	Slug       string
	Payload    interface{}
	Upsert     func(ctx context.Context) (string, error)
	Children   []ChildBatch
}

// AggregateWriter runs a SavePlan: validate, upsert the root, then reconcile
// every collection in order. Steps are not wrapped in a transaction; a failed
// collection leaves the root and earlier collections committed.
type AggregateWriter struct {
	validator  *PayloadValidator
	reconciler *ChildReconciler
	metrics    *metrics.Metrics
	logger     logger.Logger
}

// NewAggregateWriter creates a new aggregate writer
func NewAggregateWriter(validator *PayloadValidator, reconciler *ChildReconciler, metrics *metrics.Metrics, logger logger.Logger) *AggregateWriter {
	return &AggregateWriter{
		validator:  validator,
		reconciler: reconciler,
		metrics:    metrics,
		logger:     logger.With("component", "aggregate_writer"),
	}
}

// Save returns the root id or the first error. Nothing is written when
// validation fails.
func (w *AggregateWriter) Save(ctx context.Context, plan SavePlan) (string, error) {
	if err := w.validator.Validate(plan.Payload); err != nil {
		w.count(plan.EntityType, "invalid")
		return "", err
	}

	id, err := plan.Upsert(ctx)
	if err != nil {
		if errors.Is(err, entity.ErrDuplicateSlug) {
			w.count(plan.EntityType, "conflict")
			return "", &entity.ConflictError{Slug: plan.Slug}
		}
		w.count(plan.EntityType, "error")
		w.logger.Error("Failed to upsert root", "entity", plan.EntityType, "slug", plan.Slug, "error", err)
		return "", &entity.StorageError{Op: "upsert " + plan.EntityType, Err: err}
	}

	for _, batch := range plan.Children {
		if err := w.reconciler.Reconcile(ctx, id, batch); err != nil {
			w.count(plan.EntityType, "error")
			w.logger.Error("Failed to reconcile collection",
				"entity", plan.EntityType,
				"id", id,
				"collection", batch.Collection.Name,
				"error", err)
			return "", err
		}
	}

	w.count(plan.EntityType, "ok")
	return id, nil
}

func (w *AggregateWriter) count(entityType, outcome string) {
	if w.metrics != nil {
		w.metrics.SavesTotal.WithLabelValues(entityType, outcome).Inc()
	}
}
