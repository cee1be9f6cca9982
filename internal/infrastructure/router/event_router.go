package router

import (
	"fmt"

	"tourcatalog-service/internal/domain/entity"
	"tourcatalog-service/internal/usecase"
	"tourcatalog-service/pkg/logger"
)

// EventRouter routes catalog events to the matching notification template
type EventRouter struct {
	handlers []usecase.TemplateHandler
	logger   logger.Logger
}

// NewEventRouter creates a new event router
func NewEventRouter(logger logger.Logger) *EventRouter {
	return &EventRouter{
		handlers: make([]usecase.TemplateHandler, 0),
		logger:   logger,
	}
}

// Register registers a template handler
func (r *EventRouter) Register(handler usecase.TemplateHandler) {
	r.handlers = append(r.handlers, handler)
	r.logger.Info("Registered handler", "handler", fmt.Sprintf("%T", handler))
}

// GetHandler returns the first handler that accepts the event
func (r *EventRouter) GetHandler(event *entity.CatalogEvent) usecase.TemplateHandler {
	for _, handler := range r.handlers {
		if handler.CanHandle(event) {
			return handler
		}
	}
	return nil
}
