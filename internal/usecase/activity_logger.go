package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"tourcatalog-service/internal/domain/entity"
	"tourcatalog-service/internal/domain/repository"
	"tourcatalog-service/pkg/logger"
	"tourcatalog-service/pkg/metrics"

	"github.com/google/uuid"
)

// ActivityRecord is what a mutation hands to the activity logger
type ActivityRecord struct {
	Action      string
	EntityType  string
	EntityID    string
	EntityTitle string
	Detail      string
	Actor       string
	Old         entity.Snapshot
	New         entity.Snapshot
	Labels      []entity.FieldLabel
}

// ActivityLogger writes activity entries in the background. Failures are
// logged and counted, never returned to the caller.
type ActivityLogger struct {
	repo    repository.ActivityRepository
	metrics *metrics.Metrics
	logger  logger.Logger
	timeout time.Duration
	wg      sync.WaitGroup

	differ func(old, new entity.Snapshot, labels []entity.FieldLabel) []entity.Change
}

// NewActivityLogger creates a new activity logger
func NewActivityLogger(repo repository.ActivityRepository, metrics *metrics.Metrics, logger logger.Logger) *ActivityLogger {
	return &ActivityLogger{
		repo:    repo,
		metrics: metrics,
		logger:  logger.With("component", "activity_logger"),
		timeout: 10 * time.Second,
		differ:  DiffSnapshots,
	}
}

// Record schedules the entry and returns immediately
func (l *ActivityLogger) Record(ctx context.Context, rec ActivityRecord) {
	ctx = context.WithoutCancel(ctx)
	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		ctx, cancel := context.WithTimeout(ctx, l.timeout)
		defer cancel()
		l.write(ctx, rec)
	}()
}

// Wait blocks until every scheduled entry has been written or dropped
func (l *ActivityLogger) Wait() {
	l.wg.Wait()
}

func (l *ActivityLogger) write(ctx context.Context, rec ActivityRecord) {
	entry := &entity.ActivityEntry{
		ID:          uuid.NewString(),
		Action:      rec.Action,
		EntityType:  rec.EntityType,
		EntityID:    rec.EntityID,
		EntityTitle: rec.EntityTitle,
		Detail:      rec.Detail,
		Changes:     l.changes(rec),
		Actor:       rec.Actor,
		CreatedAt:   time.Now().UTC(),
	}

	err := l.repo.Append(ctx, entry)
	if errors.Is(err, entity.ErrUnencodable) && len(entry.Changes) > 0 {
		l.logger.Warn("Activity changes could not be encoded, writing entry without them",
			"entityId", rec.EntityID,
			"error", err)
		entry.Changes = []entity.Change{}
		err = l.repo.Append(ctx, entry)
	}
	if err != nil {
		if l.metrics != nil {
			l.metrics.ActivityWriteErrors.Inc()
		}
		l.logger.Error("Failed to write activity entry",
			"action", rec.Action,
			"entityType", rec.EntityType,
			"entityId", rec.EntityID,
			"error", err)
		return
	}

	l.logger.Debug("Activity entry written",
		"action", rec.Action,
		"entityId", rec.EntityID,
		"changes", len(entry.Changes))
}

// changes never fails the entry: a panic while diffing yields no changes
func (l *ActivityLogger) changes(rec ActivityRecord) (changes []entity.Change) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("Failed to compute changes", "entityId", rec.EntityID, "panic", r)
			changes = []entity.Change{}
		}
	}()
	return l.differ(rec.Old, rec.New, rec.Labels)
}
