package entity

import "time"

// Activity actions
const (
	ActionCreate    = "create"
	ActionUpdate    = "update"
	ActionDelete    = "delete"
	ActionPublish   = "publish"
	ActionUnpublish = "unpublish"
)

// EmptyValue is shown for null or blank values in a change
const EmptyValue = "(empty)"

// Snapshot is the audited view of an entity: field key -> value.
// A nil Snapshot means the entity did not exist.
type Snapshot map[string]any

// FieldLabel maps one audited field to its display name
type FieldLabel struct {
	Key   string
	Label string
}

// Change is one field difference in an activity entry
type Change struct {
	Field string `json:"field" bson:"field"`
	From  string `json:"from" bson:"from"`
	To    string `json:"to" bson:"to"`
}

// ActivityEntry is one append-only row of the change history
type ActivityEntry struct {
	ID          string    `json:"id" bson:"_id"`
	Action      string    `json:"action" bson:"action"`
	EntityType  string    `json:"entity_type" bson:"entityType"`
	EntityID    string    `json:"entity_id" bson:"entityId"`
	EntityTitle string    `json:"entity_title" bson:"entityTitle"`
	Detail      string    `json:"detail,omitempty" bson:"detail,omitempty"`
	Changes     []Change  `json:"changes" bson:"changes"`
	Actor       string    `json:"actor" bson:"actor"`
	CreatedAt   time.Time `json:"created_at" bson:"createdAt"`
}

// ActivityFilter narrows an activity listing
type ActivityFilter struct {
	EntityType string
	EntityID   string
	Limit      int
}
