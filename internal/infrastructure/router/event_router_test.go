package router

import (
	"testing"

	"tourcatalog-service/internal/domain/entity"
	"tourcatalog-service/pkg/logger"
)

type actionHandler struct {
	action string
}

func (h *actionHandler) CanHandle(event *entity.CatalogEvent) bool {
	return event.Action == h.action
}

func (h *actionHandler) Build(event *entity.CatalogEvent) (*entity.Notification, error) {
	return &entity.Notification{Kind: h.action}, nil
}

func TestEventRouterPicksFirstMatch(t *testing.T) {
	r := NewEventRouter(logger.NewNopLogger())
	publish := &actionHandler{action: entity.ActionPublish}
	second := &actionHandler{action: entity.ActionPublish}
	r.Register(publish)
	r.Register(second)

	got := r.GetHandler(&entity.CatalogEvent{Action: entity.ActionPublish})
	if got != publish {
		t.Fatalf("expected the first registered handler, got %v", got)
	}
}

func TestEventRouterNoMatch(t *testing.T) {
	r := NewEventRouter(logger.NewNopLogger())
	r.Register(&actionHandler{action: entity.ActionPublish})

	if got := r.GetHandler(&entity.CatalogEvent{Action: entity.ActionUpdate}); got != nil {
		t.Fatalf("expected no handler, got %v", got)
	}
}
