package usecase

import (
	"context"
	"time"

	"tourcatalog-service/internal/domain/entity"
	"tourcatalog-service/internal/domain/repository"
	"tourcatalog-service/pkg/logger"
	"tourcatalog-service/pkg/metrics"

	"github.com/google/uuid"
)

// ChildBatch is the full submitted contents of one child collection
type ChildBatch struct {
	Collection entity.Collection
	Rows       []entity.ChildRow
}

// ChildReconciler replaces the stored rows of a collection with the submitted ones
type ChildReconciler struct {
	children repository.ChildRepository
	metrics  *metrics.Metrics
	logger   logger.Logger
}

// NewChildReconciler creates a new child reconciler
func NewChildReconciler(children repository.ChildRepository, metrics *metrics.Metrics, logger logger.Logger) *ChildReconciler {
	return &ChildReconciler{
		children: children,
		metrics:  metrics,
		logger:   logger.With("component", "reconciler"),
	}
}

// Reconcile deletes every row owned by rootID and inserts rows in order with
// sort_order set to their index. An empty batch clears the collection.
// If the insert fails after the delete, the collection stays empty.
func (r *ChildReconciler) Reconcile(ctx context.Context, rootID string, batch ChildBatch) error {
	c := batch.Collection
	start := time.Now()
	defer func() {
		if r.metrics != nil {
			r.metrics.ReconcileDuration.WithLabelValues(c.Table).Observe(time.Since(start).Seconds())
		}
	}()

	if err := r.children.DeleteByRoot(ctx, c, rootID); err != nil {
		return &entity.StorageError{Op: "clear " + c.Table, Err: err}
	}
	if len(batch.Rows) == 0 {
		return nil
	}

	records := make([]entity.ChildRecord, 0, len(batch.Rows))
	for i, row := range batch.Rows {
		record := row.Columns()
		record[entity.ColumnID] = uuid.NewString()
		record[c.ForeignKey] = rootID
		record[entity.ColumnSortOrder] = i
		records = append(records, record)
	}

	if err := r.children.BulkInsert(ctx, c, records); err != nil {
		r.logger.Warn("Collection left empty after failed insert",
			"table", c.Table, "rootId", rootID, "rows", len(records), "error", err)
		return &entity.StorageError{Op: "insert " + c.Table, Err: err}
	}

	r.logger.Debug("Collection reconciled", "table", c.Table, "rootId", rootID, "rows", len(records))
	return nil
}

// Rows converts a typed slice to the row interface
func Rows[T entity.ChildRow](items []T) []entity.ChildRow {
	rows := make([]entity.ChildRow, 0, len(items))
	for _, item := range items {
		rows = append(rows, item)
	}
	return rows
}
