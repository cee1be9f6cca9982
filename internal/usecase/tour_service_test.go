package usecase

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"tourcatalog-service/internal/domain/entity"
	"tourcatalog-service/internal/domain/repository"
	"tourcatalog-service/pkg/logger"
)

type tourFixture struct {
	service  *TourService
	tours    *memTourRepo
	children *memChildRepo
	activity *memActivityRepo
	cache    *memCache
	notifier *memNotifier
	effects  *SideEffects
}

func newTourFixture(t *testing.T) *tourFixture {
	t.Helper()
	log := logger.NewNopLogger()
	m := newTestMetrics()

	f := &tourFixture{
		tours:    newMemTourRepo(),
		children: newMemChildRepo(),
		activity: &memActivityRepo{},
		cache:    &memCache{},
		notifier: &memNotifier{},
	}
	router := &staticRouter{handler: &kindHandler{}}
	f.effects = NewSideEffects(
		f.cache,
		NewActivityLogger(f.activity, m, log),
		NewNotificationDispatcher(router, []repository.NotificationRepository{f.notifier}, m, log),
		m,
		log,
	)
	writer := NewAggregateWriter(NewPayloadValidator(), NewChildReconciler(f.children, m, log), m, log)
	f.service = NewTourService(f.tours, f.children, writer, f.effects, log)
	return f
}

const fullTour = `{
	"title": "Sicilia classica",
	"slug": "sicilia-classica",
	"destination": "Sicilia",
	"duration_days": 3,
	"price_from": 990,
	"coordinates": {"Palermo": {"lat": 38.11, "lng": 13.36}},
	"itinerary_days": [
		{"day_number": 1, "title": "Arrivo", "locality": "Palermo"},
		{"day_number": 2, "title": "Monreale", "locality": "Palermo"},
		{"day_number": 3, "title": "Partenza", "locality": "Catania"}
	],
	"departures": [{"start_date": "2026-05-01", "end_date": "2026-05-03", "price": 990, "seats": 20}],
	"inclusions": [{"title": "Volo"}],
	"exclusions": [{"title": "Tasse"}],
	"terms": [{"title": "Pagamento", "content": "30% alla prenotazione"}],
	"penalties": [{"days_before": 30, "percentage": 10}, {"days_before": 7, "percentage": 50}],
	"gallery": [{"image_url": "https://img.example.com/palermo.jpg"}],
	"hotels": [{"name": "Grand Hotel", "stars": 4, "amenities": ["spa"]}]
}`

func TestTourSaveRoundTrip(t *testing.T) {
	f := newTourFixture(t)
	ctx := context.Background()

	id, err := f.service.Save(ctx, decodeTour(t, fullTour), "giulia")
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	detail, err := f.service.Get(ctx, id)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if detail.Tour.Title != "Sicilia classica" || detail.Tour.Status != entity.StatusDraft {
		t.Fatalf("unexpected root %+v", detail.Tour)
	}

	counts := map[string]int{
		"itinerary_days": 3, "locations": 2, "departures": 1, "supplements": 0,
		"inclusions": 2, "terms": 1, "penalties": 2, "gallery": 1, "hotels": 1,
	}
	for name, want := range counts {
		if got := len(detail.Collections[name]); got != want {
			t.Fatalf("%s: expected %d rows, got %d", name, want, got)
		}
	}

	locations := detail.Collections["locations"]
	if locations[0]["name"] != "Palermo" || locations[1]["name"] != "Catania" {
		t.Fatalf("unexpected locations %v", locations)
	}
	if lat, ok := locations[0]["lat"].(*float64); !ok || *lat != 38.11 {
		t.Fatalf("expected Palermo latitude, got %v", locations[0]["lat"])
	}

	inclusions := detail.Collections["inclusions"]
	if inclusions[0]["title"] != "Volo" || inclusions[0]["is_included"] != true ||
		inclusions[1]["title"] != "Tasse" || inclusions[1]["is_included"] != false {
		t.Fatalf("unexpected inclusions %v", inclusions)
	}

	penalties := detail.Collections["penalties"]
	if penalties[0][entity.ColumnSortOrder] != 0 || penalties[1][entity.ColumnSortOrder] != 1 {
		t.Fatalf("penalties out of order: %v", penalties)
	}
}

func TestTourSaveIsIdempotent(t *testing.T) {
	f := newTourFixture(t)
	ctx := context.Background()

	payload := decodeTour(t, fullTour)
	id, err := f.service.Save(ctx, payload, "")
	if err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	first, _ := f.service.Get(ctx, id)

	again := decodeTour(t, fullTour)
	again.ID.String, again.ID.Valid = id, true
	if _, err := f.service.Save(ctx, again, ""); err != nil {
		t.Fatalf("second save failed: %v", err)
	}
	second, _ := f.service.Get(ctx, id)

	if len(f.tours.tours) != 1 {
		t.Fatalf("expected one root, got %d", len(f.tours.tours))
	}
	if !reflect.DeepEqual(first.Collections, second.Collections) {
		t.Fatalf("collections differ after identical save:\n%v\n%v", first.Collections, second.Collections)
	}
}

func TestTourSaveDuplicateSlug(t *testing.T) {
	f := newTourFixture(t)
	ctx := context.Background()

	if _, err := f.service.Save(ctx, decodeTour(t, fullTour), ""); err != nil {
		t.Fatalf("first save failed: %v", err)
	}
	inserts := f.children.inserts

	_, err := f.service.Save(ctx, decodeTour(t, fullTour), "")
	var conflict *entity.ConflictError
	if !errors.As(err, &conflict) || conflict.Slug != "sicilia-classica" {
		t.Fatalf("expected conflict on slug, got %v", err)
	}
	if err.Error() != `slug "sicilia-classica" is already in use` {
		t.Fatalf("unexpected message %q", err.Error())
	}
	if len(f.tours.tours) != 1 {
		t.Fatalf("expected a single root, got %d", len(f.tours.tours))
	}
	if f.children.inserts != inserts {
		t.Fatalf("no child writes expected after a conflict")
	}
}

func TestTourSaveValidationWritesNothing(t *testing.T) {
	f := newTourFixture(t)

	_, err := f.service.Save(context.Background(), decodeTour(t, `{"title":"x","slug":"NO"}`), "")
	var verr *entity.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if f.tours.upserts != 0 || f.children.deletes != 0 {
		t.Fatalf("nothing should be written on validation failure")
	}
}

func TestTourSaveRecordsActivity(t *testing.T) {
	f := newTourFixture(t)
	ctx := context.Background()

	id, _ := f.service.Save(ctx, decodeTour(t, `{"title":"A","slug":"a"}`), "giulia")
	update := decodeTour(t, `{"title":"B","slug":"a"}`)
	update.ID.String, update.ID.Valid = id, true
	if _, err := f.service.Save(ctx, update, "marco"); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	f.effects.Wait()

	entries := f.activity.all()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	byAction := map[string]*entity.ActivityEntry{}
	for _, e := range entries {
		byAction[e.Action] = e
	}
	created, updated := byAction[entity.ActionCreate], byAction[entity.ActionUpdate]
	if created == nil || created.Actor != "giulia" || len(created.Changes) != 3 {
		t.Fatalf("unexpected create entry %+v", created)
	}
	if updated == nil || updated.Actor != "marco" {
		t.Fatalf("unexpected update entry %+v", updated)
	}
	if len(updated.Changes) != 1 || updated.Changes[0] != (entity.Change{Field: "Titolo", From: "A", To: "B"}) {
		t.Fatalf("unexpected update changes %+v", updated.Changes)
	}
	if len(f.cache.invalidated) != 2 {
		t.Fatalf("expected a cache invalidation per save, got %v", f.cache.invalidated)
	}
}

func TestTourSaveStorageErrorIsVerbatim(t *testing.T) {
	f := newTourFixture(t)
	f.children.insertErr[entity.TourDepartures.Table] = errStorage

	_, err := f.service.Save(context.Background(), decodeTour(t, fullTour), "")
	var storageErr *entity.StorageError
	if !errors.As(err, &storageErr) || err.Error() != errStorage.Error() {
		t.Fatalf("expected verbatim storage error, got %v", err)
	}
	// earlier steps stay committed
	if len(f.tours.tours) != 1 {
		t.Fatalf("root should remain after a failed collection")
	}
	id := ""
	for k := range f.tours.tours {
		id = k
	}
	if got := len(f.children.raw(entity.TourItineraryDays, id)); got != 3 {
		t.Fatalf("itinerary should remain committed, got %d rows", got)
	}
	f.effects.Wait()
	if len(f.activity.all()) != 0 {
		t.Fatalf("failed saves must not be logged")
	}
}

func TestTourDeleteAndStatus(t *testing.T) {
	f := newTourFixture(t)
	ctx := context.Background()

	id, _ := f.service.Save(ctx, decodeTour(t, fullTour), "")

	if err := f.service.SetStatus(ctx, id, entity.StatusPublished, "giulia"); err != nil {
		t.Fatalf("publish failed: %v", err)
	}
	if err := f.service.SetStatus(ctx, id, "archived", ""); err == nil {
		t.Fatalf("expected invalid status to fail")
	}
	if err := f.service.Delete(ctx, id, "giulia"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	f.effects.Wait()

	var notFound *entity.NotFoundError
	if err := f.service.Delete(ctx, id, ""); !errors.As(err, &notFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
	if _, err := f.service.Get(ctx, id); !errors.Is(err, entity.ErrNotFound) {
		t.Fatalf("expected not found on get, got %v", err)
	}
	if err := f.service.SetStatus(ctx, id, entity.StatusDraft, ""); !errors.As(err, &notFound) {
		t.Fatalf("expected not found on status change, got %v", err)
	}

	var publish *entity.ActivityEntry
	for _, e := range f.activity.all() {
		if e.Action == entity.ActionPublish {
			publish = e
		}
	}
	if publish == nil || len(publish.Changes) != 1 || publish.Changes[0].Field != "Stato" || publish.Changes[0].To != "published" {
		t.Fatalf("unexpected publish entry %+v", publish)
	}
	// publish and delete of a published tour are announced
	if got := f.notifier.count(); got != 2 {
		t.Fatalf("expected 2 notifications, got %d", got)
	}
}

func TestTourSaveWithUnreadablePreviousStillSaves(t *testing.T) {
	f := newTourFixture(t)
	ctx := context.Background()

	id, _ := f.service.Save(ctx, decodeTour(t, `{"title":"A","slug":"a"}`), "")
	f.effects.Wait()
	f.tours.findErr = errStorage

	update := decodeTour(t, `{"title":"B","slug":"a"}`)
	update.ID.String, update.ID.Valid = id, true
	if _, err := f.service.Save(ctx, update, ""); err != nil {
		t.Fatalf("update should not depend on the audit lookup: %v", err)
	}
	f.effects.Wait()

	entries := f.activity.all()
	if len(entries) != 2 || entries[1].Action != entity.ActionCreate {
		t.Fatalf("unreadable previous state is audited as a create, got %+v", entries)
	}
}
