package entity

import (
	"time"

	"tourcatalog-service/pkg/utils"
)

// Status is the publication state of a root entity
type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
)

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	return s == StatusDraft || s == StatusPublished
}

// Entity types used in the activity log
const (
	EntityTour   = "tour"
	EntityCruise = "cruise"
)

// Tour represents a multi-day tour
type Tour struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Slug         string    `json:"slug"`
	Subtitle     *string   `json:"subtitle"`
	Description  *string   `json:"description"`
	Destination  *string   `json:"destination"`
	DurationDays *int      `json:"duration_days"`
	PriceFrom    *float64  `json:"price_from"`
	Currency     *string   `json:"currency"`
	CoverImage   *string   `json:"cover_image"`
	MeetingPoint *string   `json:"meeting_point"`
	Notes        *string   `json:"notes"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Snapshot exposes the audited fields of the tour
func (t *Tour) Snapshot() Snapshot {
	if t == nil {
		return nil
	}
	return Snapshot{
		"title":         t.Title,
		"slug":          t.Slug,
		"subtitle":      t.Subtitle,
		"description":   t.Description,
		"destination":   t.Destination,
		"duration_days": t.DurationDays,
		"price_from":    t.PriceFrom,
		"currency":      t.Currency,
		"cover_image":   t.CoverImage,
		"meeting_point": t.MeetingPoint,
		"notes":         t.Notes,
		"status":        string(t.Status),
	}
}

// TourFieldLabels is the ordered list of audited tour fields
var TourFieldLabels = []FieldLabel{
	{Key: "title", Label: "Titolo"},
	{Key: "slug", Label: "Slug"},
	{Key: "subtitle", Label: "Sottotitolo"},
	{Key: "description", Label: "Descrizione"},
	{Key: "destination", Label: "Destinazione"},
	{Key: "duration_days", Label: "Durata (giorni)"},
	{Key: "price_from", Label: "Prezzo da"},
	{Key: "currency", Label: "Valuta"},
	{Key: "cover_image", Label: "Immagine di copertina"},
	{Key: "meeting_point", Label: "Punto di ritrovo"},
	{Key: "notes", Label: "Note"},
	{Key: "status", Label: "Stato"},
}

// TourPayload is the composite save request for a tour
type TourPayload struct {
	ID           utils.NullString      `json:"id" validate:"omitempty,uuid"`
	Title        utils.NullString      `json:"title" validate:"required,max=200"`
	Slug         utils.NullString      `json:"slug" validate:"required,max=200,slug"`
	Subtitle     utils.NullString      `json:"subtitle" validate:"omitempty,max=300"`
	Description  utils.NullString      `json:"description"`
	Destination  utils.NullString      `json:"destination" validate:"omitempty,max=200"`
	DurationDays utils.NullInt         `json:"duration_days" validate:"omitempty,gte=0"`
	PriceFrom    utils.NullFloat       `json:"price_from" validate:"omitempty,gte=0"`
	Currency     utils.NullString      `json:"currency" validate:"omitempty,len=3"`
	CoverImage   utils.NullString      `json:"cover_image" validate:"omitempty,url"`
	MeetingPoint utils.NullString      `json:"meeting_point" validate:"omitempty,max=300"`
	Notes        utils.NullString      `json:"notes"`
	Status       utils.NullString      `json:"status" validate:"omitempty,oneof=draft published"`
	Coordinates  map[string]Coordinate `json:"coordinates" validate:"omitempty,dive"`

	ItineraryDays []ItineraryDay  `json:"itinerary_days" validate:"dive"`
	Departures    []Departure     `json:"departures" validate:"dive"`
	Supplements   []Supplement    `json:"supplements" validate:"dive"`
	Inclusions    []InclusionItem `json:"inclusions" validate:"dive"`
	Exclusions    []InclusionItem `json:"exclusions" validate:"dive"`
	Terms         []Term          `json:"terms" validate:"dive"`
	Penalties     []Penalty       `json:"penalties" validate:"dive"`
	Gallery       []GalleryItem   `json:"gallery" validate:"dive"`
	Hotels        []Hotel         `json:"hotels" validate:"dive"`
}

// Tour builds the root row from the payload
func (p *TourPayload) Tour() *Tour {
	status := Status(p.Status.String)
	if !p.Status.Valid {
		status = StatusDraft
	}
	return &Tour{
		ID:           p.ID.String,
		Title:        p.Title.String,
		Slug:         p.Slug.String,
		Subtitle:     p.Subtitle.Ptr(),
		Description:  p.Description.Ptr(),
		Destination:  p.Destination.Ptr(),
		DurationDays: p.DurationDays.Ptr(),
		PriceFrom:    p.PriceFrom.Ptr(),
		Currency:     p.Currency.Ptr(),
		CoverImage:   p.CoverImage.Ptr(),
		MeetingPoint: p.MeetingPoint.Ptr(),
		Notes:        p.Notes.Ptr(),
		Status:       status,
	}
}

// Check reports coercion failures and cross-field problems that struct tags cannot express
func (p *TourPayload) Check() []FieldError {
	c := &checker{}
	c.coerced("id", p.ID)
	c.coerced("title", p.Title)
	c.coerced("slug", p.Slug)
	c.coerced("subtitle", p.Subtitle)
	c.coerced("description", p.Description)
	c.coerced("destination", p.Destination)
	c.coerced("duration_days", p.DurationDays)
	c.coerced("price_from", p.PriceFrom)
	c.coerced("currency", p.Currency)
	c.coerced("cover_image", p.CoverImage)
	c.coerced("meeting_point", p.MeetingPoint)
	c.coerced("notes", p.Notes)
	c.coerced("status", p.Status)
	c.itinerary(p.ItineraryDays)
	c.departures(p.Departures)
	c.supplements(p.Supplements)
	c.inclusions("inclusions", p.Inclusions)
	c.inclusions("exclusions", p.Exclusions)
	c.terms(p.Terms)
	c.penalties(p.Penalties)
	c.gallery(p.Gallery)
	for i, h := range p.Hotels {
		c.coerced(indexed("hotels", i, "name"), h.Name)
		c.coerced(indexed("hotels", i, "locality"), h.Locality)
		c.coerced(indexed("hotels", i, "stars"), h.Stars)
		c.coerced(indexed("hotels", i, "nights"), h.Nights)
	}
	return c.errs
}

// TourDetail is the read model of a tour with its child collections
type TourDetail struct {
	Tour        *Tour                    `json:"tour"`
	Collections map[string][]ChildRecord `json:"collections"`
}
