package usecase

import (
	"context"
	"errors"
	"testing"

	"tourcatalog-service/internal/domain/entity"
	"tourcatalog-service/pkg/logger"
	"tourcatalog-service/pkg/metrics"
	"tourcatalog-service/pkg/utils"

	"github.com/prometheus/client_golang/prometheus"
)

func newTestMetrics() *metrics.Metrics {
	return metrics.NewMetrics("test", prometheus.NewRegistry())
}

func terms(titles ...string) []entity.ChildRow {
	out := make([]entity.Term, 0, len(titles))
	for _, title := range titles {
		out = append(out, entity.Term{Title: utils.StringOf(title)})
	}
	return Rows(out)
}

func TestReconcileReplacesRowsInOrder(t *testing.T) {
	repo := newMemChildRepo()
	r := NewChildReconciler(repo, newTestMetrics(), logger.NewNopLogger())
	ctx := context.Background()

	if err := r.Reconcile(ctx, "root-1", ChildBatch{Collection: entity.TourTerms, Rows: terms("Old A", "Old B", "Old C")}); err != nil {
		t.Fatalf("first reconcile failed: %v", err)
	}
	if err := r.Reconcile(ctx, "root-1", ChildBatch{Collection: entity.TourTerms, Rows: terms("Pagamento", "Recesso")}); err != nil {
		t.Fatalf("second reconcile failed: %v", err)
	}

	rows := repo.raw(entity.TourTerms, "root-1")
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	for i, want := range []string{"Pagamento", "Recesso"} {
		if rows[i]["title"] != utils.StringOf(want) {
			t.Fatalf("row %d: expected %q, got %v", i, want, rows[i]["title"])
		}
		if rows[i][entity.ColumnSortOrder] != i {
			t.Fatalf("row %d: expected sort_order %d, got %v", i, i, rows[i][entity.ColumnSortOrder])
		}
		if rows[i]["tour_id"] != "root-1" {
			t.Fatalf("row %d: foreign key not set", i)
		}
		if id, _ := rows[i][entity.ColumnID].(string); id == "" {
			t.Fatalf("row %d: id not generated", i)
		}
	}
}

func TestReconcileLeavesOtherRootsAlone(t *testing.T) {
	repo := newMemChildRepo()
	r := NewChildReconciler(repo, nil, logger.NewNopLogger())
	ctx := context.Background()

	_ = r.Reconcile(ctx, "a", ChildBatch{Collection: entity.TourTerms, Rows: terms("A1")})
	_ = r.Reconcile(ctx, "b", ChildBatch{Collection: entity.TourTerms, Rows: terms("B1", "B2")})
	_ = r.Reconcile(ctx, "a", ChildBatch{Collection: entity.TourTerms})

	if got := len(repo.raw(entity.TourTerms, "a")); got != 0 {
		t.Fatalf("empty batch should clear root a, got %d rows", got)
	}
	if got := len(repo.raw(entity.TourTerms, "b")); got != 2 {
		t.Fatalf("root b should keep 2 rows, got %d", got)
	}
}

func TestReconcileEmptyBatchSkipsInsert(t *testing.T) {
	repo := newMemChildRepo()
	r := NewChildReconciler(repo, nil, logger.NewNopLogger())

	if err := r.Reconcile(context.Background(), "a", ChildBatch{Collection: entity.TourGallery}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.deletes != 1 || repo.inserts != 0 {
		t.Fatalf("expected one delete and no insert, got %d/%d", repo.deletes, repo.inserts)
	}
}

func TestReconcileInsertFailureLeavesCollectionEmpty(t *testing.T) {
	repo := newMemChildRepo()
	r := NewChildReconciler(repo, nil, logger.NewNopLogger())
	ctx := context.Background()

	_ = r.Reconcile(ctx, "a", ChildBatch{Collection: entity.TourTerms, Rows: terms("Esistente")})
	repo.insertErr[entity.TourTerms.Table] = errStorage

	err := r.Reconcile(ctx, "a", ChildBatch{Collection: entity.TourTerms, Rows: terms("Nuovo")})
	var storageErr *entity.StorageError
	if !errors.As(err, &storageErr) {
		t.Fatalf("expected StorageError, got %v", err)
	}
	if err.Error() != errStorage.Error() {
		t.Fatalf("expected verbatim storage message, got %q", err.Error())
	}
	if !errors.Is(err, errStorage) {
		t.Fatalf("expected cause to be preserved")
	}
	if got := len(repo.raw(entity.TourTerms, "a")); got != 0 {
		t.Fatalf("expected empty collection after failed insert, got %d rows", got)
	}
}
