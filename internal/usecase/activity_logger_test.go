package usecase

import (
	"context"
	"testing"

	"tourcatalog-service/internal/domain/entity"
	"tourcatalog-service/pkg/logger"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestActivityLoggerWritesEntry(t *testing.T) {
	repo := &memActivityRepo{}
	l := NewActivityLogger(repo, nil, logger.NewNopLogger())

	ctx, cancel := context.WithCancel(context.Background())
	l.Record(ctx, ActivityRecord{
		Action:      entity.ActionUpdate,
		EntityType:  entity.EntityTour,
		EntityID:    "t-1",
		EntityTitle: "B",
		Actor:       "giulia",
		Old:         entity.Snapshot{"title": "A"},
		New:         entity.Snapshot{"title": "B"},
		Labels:      titleLabels,
	})
	// the caller's context ending must not drop the entry
	cancel()
	l.Wait()

	entries := repo.all()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.ID == "" || e.CreatedAt.IsZero() || e.Actor != "giulia" {
		t.Fatalf("unexpected entry %+v", e)
	}
	if len(e.Changes) != 1 || e.Changes[0].Field != "Titolo" {
		t.Fatalf("unexpected changes %+v", e.Changes)
	}
}

func TestActivityLoggerSwallowsWriteErrors(t *testing.T) {
	m := newTestMetrics()
	l := NewActivityLogger(&memActivityRepo{err: errStorage}, m, logger.NewNopLogger())

	l.Record(context.Background(), ActivityRecord{Action: entity.ActionDelete, EntityID: "t-1"})
	l.Wait()

	if got := testutil.ToFloat64(m.ActivityWriteErrors); got != 1 {
		t.Fatalf("expected 1 write error, got %v", got)
	}
}

func TestActivityLoggerWritesEntryWhenDiffFails(t *testing.T) {
	repo := &memActivityRepo{}
	l := NewActivityLogger(repo, nil, logger.NewNopLogger())
	l.differ = func(old, new entity.Snapshot, labels []entity.FieldLabel) []entity.Change {
		panic("snapshot without labels")
	}

	l.Record(context.Background(), ActivityRecord{
		Action:     entity.ActionUpdate,
		EntityType: entity.EntityTour,
		EntityID:   "t-1",
		Old:        entity.Snapshot{"title": "A"},
		New:        entity.Snapshot{"title": "B"},
		Labels:     titleLabels,
	})
	l.Wait()

	entries := repo.all()
	if len(entries) != 1 {
		t.Fatalf("expected the entry to be written, got %d", len(entries))
	}
	if entries[0].Changes == nil || len(entries[0].Changes) != 0 {
		t.Fatalf("expected empty changes, got %#v", entries[0].Changes)
	}
}

func TestActivityLoggerDropsUnencodableChanges(t *testing.T) {
	m := newTestMetrics()
	repo := &memActivityRepo{rejectChanges: true}
	l := NewActivityLogger(repo, m, logger.NewNopLogger())

	l.Record(context.Background(), ActivityRecord{
		Action:     entity.ActionUpdate,
		EntityType: entity.EntityTour,
		EntityID:   "t-1",
		Old:        entity.Snapshot{"title": "A"},
		New:        entity.Snapshot{"title": "B"},
		Labels:     titleLabels,
	})
	l.Wait()

	entries := repo.all()
	if len(entries) != 1 || len(entries[0].Changes) != 0 {
		t.Fatalf("expected one entry without changes, got %+v", entries)
	}
	if repo.appends != 2 {
		t.Fatalf("expected a retry without changes, got %d appends", repo.appends)
	}
	if got := testutil.ToFloat64(m.ActivityWriteErrors); got != 0 {
		t.Fatalf("expected no write error, got %v", got)
	}
}

func TestActivityLoggerDoesNotRetryOtherErrors(t *testing.T) {
	repo := &memActivityRepo{err: errStorage}
	l := NewActivityLogger(repo, nil, logger.NewNopLogger())

	l.Record(context.Background(), ActivityRecord{
		Action:   entity.ActionUpdate,
		EntityID: "t-1",
		Old:      entity.Snapshot{"title": "A"},
		New:      entity.Snapshot{"title": "B"},
		Labels:   titleLabels,
	})
	l.Wait()

	if repo.appends != 1 {
		t.Fatalf("expected a single append, got %d", repo.appends)
	}
}
