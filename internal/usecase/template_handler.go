package usecase

import (
	"tourcatalog-service/internal/domain/entity"
)

// TemplateHandler turns a catalog event into an outbound notification
type TemplateHandler interface {
	// CanHandle determines if this handler renders the given event
	CanHandle(event *entity.CatalogEvent) bool

	// Build renders the notification for the event
	Build(event *entity.CatalogEvent) (*entity.Notification, error)
}

// EventRouter picks the template handler for an event
type EventRouter interface {
	// Register registers a handler
	Register(handler TemplateHandler)

	// GetHandler returns the first handler accepting the event, or nil
	GetHandler(event *entity.CatalogEvent) TemplateHandler
}
