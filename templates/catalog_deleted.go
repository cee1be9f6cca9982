package templates

import (
	"fmt"
	"strings"

	"tourcatalog-service/internal/domain/entity"
)

// DeletedNotificationHandler reports removals of published products
type DeletedNotificationHandler struct{}

// NewDeletedNotificationHandler creates a new delete template
func NewDeletedNotificationHandler() *DeletedNotificationHandler {
	return &DeletedNotificationHandler{}
}

// CanHandle accepts deletions of entities that were published; drafts go unannounced
func (h *DeletedNotificationHandler) CanHandle(event *entity.CatalogEvent) bool {
	return event.Action == entity.ActionDelete && event.PreviousStatus == entity.StatusPublished
}

// Build renders the notification
func (h *DeletedNotificationHandler) Build(event *entity.CatalogEvent) (*entity.Notification, error) {
	kind := entityLabel(event.EntityType)

	var b strings.Builder
	fmt.Fprintf(&b, "%s pubblicato \"%s\" è stato eliminato dal catalogo.\n", kind, event.Title)
	writeFooter(&b, event)

	return &entity.Notification{
		Kind:    event.Action,
		Subject: fmt.Sprintf("[Catalogo] %s eliminato: %s", kind, event.Title),
		Text:    b.String(),
	}, nil
}
