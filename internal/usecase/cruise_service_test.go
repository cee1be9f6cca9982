package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"tourcatalog-service/internal/domain/entity"
	"tourcatalog-service/pkg/logger"
)

func newCruiseService(t *testing.T) (*CruiseService, *memCruiseRepo, *memActivityRepo, *SideEffects) {
	t.Helper()
	log := logger.NewNopLogger()
	repo, children, activity := newMemCruiseRepo(), newMemChildRepo(), &memActivityRepo{}
	effects := NewSideEffects(&memCache{}, NewActivityLogger(activity, nil, log), nil, nil, log)
	writer := NewAggregateWriter(NewPayloadValidator(), NewChildReconciler(children, nil, log), nil, log)
	return NewCruiseService(repo, children, writer, effects, log), repo, activity, effects
}

func decodeCruise(t *testing.T, body string) *entity.CruisePayload {
	t.Helper()
	var p entity.CruisePayload
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		t.Fatalf("failed to decode payload: %v", err)
	}
	return &p
}

func TestCruiseSaveAndGet(t *testing.T) {
	svc, _, activity, effects := newCruiseService(t)
	ctx := context.Background()

	id, err := svc.Save(ctx, decodeCruise(t, `{
		"title": "Danubio blu",
		"slug": "danubio-blu",
		"ship_name": "MS Amadeus",
		"duration_nights": "7",
		"itinerary_days": [{"title": "Imbarco", "locality": "Passau"}, {"title": "Vienna", "locality": "Vienna"}],
		"cabins": [{"name": "Suite", "capacity": 2, "amenities": ["balcone", "minibar"]}, {"name": "Standard"}]
	}`), "giulia")
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	detail, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if detail.Cruise.ShipName == nil || *detail.Cruise.ShipName != "MS Amadeus" {
		t.Fatalf("unexpected root %+v", detail.Cruise)
	}
	if got := len(detail.Collections["cabins"]); got != 2 {
		t.Fatalf("expected 2 cabins, got %d", got)
	}
	if got := len(detail.Collections["locations"]); got != 2 {
		t.Fatalf("expected 2 locations, got %d", got)
	}
	if _, ok := detail.Collections["hotels"]; ok {
		t.Fatalf("cruises have no hotels collection")
	}

	effects.Wait()
	entries := activity.all()
	if len(entries) != 1 || entries[0].EntityType != entity.EntityCruise || entries[0].Action != entity.ActionCreate {
		t.Fatalf("unexpected activity %+v", entries)
	}
}

func TestCruiseMissing(t *testing.T) {
	svc, _, _, _ := newCruiseService(t)

	err := svc.Delete(context.Background(), "missing", "")
	var notFound *entity.NotFoundError
	if !errors.As(err, &notFound) || err.Error() != "cruise missing not found" {
		t.Fatalf("expected cruise not found, got %v", err)
	}
}
