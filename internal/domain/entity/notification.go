package entity

import "time"

// CatalogEvent describes a successful mutation, used to pick a notification template
type CatalogEvent struct {
	Action         string
	EntityType     string
	EntityID       string
	Title          string
	Slug           string
	Status         Status
	PreviousStatus Status
	Actor          string
	At             time.Time
}

// Notification is an outbound message built from a CatalogEvent
type Notification struct {
	Kind    string
	Subject string
	Text    string
}
