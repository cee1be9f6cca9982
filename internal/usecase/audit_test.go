package usecase

import (
	"testing"

	"tourcatalog-service/internal/domain/entity"
)

var titleLabels = []entity.FieldLabel{{Key: "title", Label: "Titolo"}}

func TestDiffSnapshotsChangedField(t *testing.T) {
	got := DiffSnapshots(entity.Snapshot{"title": "A"}, entity.Snapshot{"title": "B"}, titleLabels)

	if len(got) != 1 || got[0] != (entity.Change{Field: "Titolo", From: "A", To: "B"}) {
		t.Fatalf("expected one Titolo change, got %+v", got)
	}
}

func TestDiffSnapshotsEqual(t *testing.T) {
	got := DiffSnapshots(entity.Snapshot{"title": "A"}, entity.Snapshot{"title": "A"}, titleLabels)
	if len(got) != 0 {
		t.Fatalf("expected no changes, got %+v", got)
	}
}

func TestDiffSnapshotsCreation(t *testing.T) {
	got := DiffSnapshots(nil, entity.Snapshot{"title": "A"}, titleLabels)

	if len(got) != 1 || got[0] != (entity.Change{Field: "Titolo", From: entity.EmptyValue, To: "A"}) {
		t.Fatalf("expected creation change, got %+v", got)
	}
}

func TestDiffSnapshotsDeletion(t *testing.T) {
	got := DiffSnapshots(entity.Snapshot{"title": "A"}, nil, titleLabels)

	if len(got) != 1 || got[0].To != entity.EmptyValue || got[0].From != "A" {
		t.Fatalf("expected deletion change, got %+v", got)
	}
}

func TestDiffSnapshotsBlankEqualsNull(t *testing.T) {
	var nilStr *string
	blank := "  "
	got := DiffSnapshots(
		entity.Snapshot{"title": "A", "subtitle": nilStr},
		entity.Snapshot{"title": "A", "subtitle": &blank},
		entity.TourFieldLabels,
	)
	if len(got) != 0 {
		t.Fatalf("null and blank should compare equal, got %+v", got)
	}
}

func TestDiffSnapshotsIgnoresUnlabelledAndFormatsNumbers(t *testing.T) {
	before, after := 1200.0, 1350.5
	days := 7
	got := DiffSnapshots(
		entity.Snapshot{"price_from": &before, "internal": "x"},
		entity.Snapshot{"price_from": &after, "duration_days": &days, "internal": "y"},
		entity.TourFieldLabels,
	)

	if len(got) != 2 {
		t.Fatalf("expected 2 changes, got %+v", got)
	}
	if got[0] != (entity.Change{Field: "Durata (giorni)", From: entity.EmptyValue, To: "7"}) {
		t.Fatalf("unexpected duration change %+v", got[0])
	}
	if got[1] != (entity.Change{Field: "Prezzo da", From: "1200", To: "1350.5"}) {
		t.Fatalf("unexpected price change %+v", got[1])
	}
}

func TestDiffSnapshotsTourCreation(t *testing.T) {
	tour := &entity.Tour{Title: "Sicilia", Slug: "sicilia", Status: entity.StatusDraft}

	got := DiffSnapshots(nil, tour.Snapshot(), entity.TourFieldLabels)
	if len(got) != 3 {
		t.Fatalf("expected title, slug and status, got %+v", got)
	}
	if got[2] != (entity.Change{Field: "Stato", From: entity.EmptyValue, To: "draft"}) {
		t.Fatalf("unexpected status change %+v", got[2])
	}
}
