package templates

import (
	"fmt"
	"strings"

	"tourcatalog-service/internal/domain/entity"
)

// PublishedNotificationHandler announces that a tour or cruise went live or was withdrawn
type PublishedNotificationHandler struct {
	publicBaseURL string
}

// NewPublishedNotificationHandler creates a new publish/unpublish template
func NewPublishedNotificationHandler(publicBaseURL string) *PublishedNotificationHandler {
	return &PublishedNotificationHandler{
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// CanHandle accepts status toggles
func (h *PublishedNotificationHandler) CanHandle(event *entity.CatalogEvent) bool {
	return event.Action == entity.ActionPublish || event.Action == entity.ActionUnpublish
}

// Build renders the notification
func (h *PublishedNotificationHandler) Build(event *entity.CatalogEvent) (*entity.Notification, error) {
	kind := entityLabel(event.EntityType)

	var subject string
	var b strings.Builder
	if event.Action == entity.ActionPublish {
		subject = fmt.Sprintf("[Catalogo] %s pubblicato: %s", kind, event.Title)
		fmt.Fprintf(&b, "%s \"%s\" è ora pubblicato.\n", kind, event.Title)
		if h.publicBaseURL != "" && event.Slug != "" {
			fmt.Fprintf(&b, "Pagina: %s/%ss/%s\n", h.publicBaseURL, event.EntityType, event.Slug)
		}
	} else {
		subject = fmt.Sprintf("[Catalogo] %s ritirato: %s", kind, event.Title)
		fmt.Fprintf(&b, "%s \"%s\" è tornato in bozza.\n", kind, event.Title)
	}
	writeFooter(&b, event)

	return &entity.Notification{
		Kind:    event.Action,
		Subject: subject,
		Text:    b.String(),
	}, nil
}

func entityLabel(entityType string) string {
	switch entityType {
	case entity.EntityTour:
		return "Tour"
	case entity.EntityCruise:
		return "Crociera"
	default:
		return entityType
	}
}

func writeFooter(b *strings.Builder, event *entity.CatalogEvent) {
	fmt.Fprintf(b, "ID: %s\n", event.EntityID)
	fmt.Fprintf(b, "Utente: %s\n", event.Actor)
	fmt.Fprintf(b, "Data: %s\n", event.At.Format("02/01/2006 15:04"))
}
