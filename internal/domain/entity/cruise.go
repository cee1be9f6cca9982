package entity

import (
	"time"

	"tourcatalog-service/pkg/utils"
)

// Cruise represents a river cruise
type Cruise struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Slug           string    `json:"slug"`
	ShipName       *string   `json:"ship_name"`
	River          *string   `json:"river"`
	Description    *string   `json:"description"`
	DurationNights *int      `json:"duration_nights"`
	PriceFrom      *float64  `json:"price_from"`
	Currency       *string   `json:"currency"`
	EmbarkPort     *string   `json:"embark_port"`
	DisembarkPort  *string   `json:"disembark_port"`
	CoverImage     *string   `json:"cover_image"`
	Notes          *string   `json:"notes"`
	Status         Status    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Snapshot exposes the audited fields of the cruise
func (c *Cruise) Snapshot() Snapshot {
	if c == nil {
		return nil
	}
	return Snapshot{
		"title":           c.Title,
		"slug":            c.Slug,
		"ship_name":       c.ShipName,
		"river":           c.River,
		"description":     c.Description,
		"duration_nights": c.DurationNights,
		"price_from":      c.PriceFrom,
		"currency":        c.Currency,
		"embark_port":     c.EmbarkPort,
		"disembark_port":  c.DisembarkPort,
		"cover_image":     c.CoverImage,
		"notes":           c.Notes,
		"status":          string(c.Status),
	}
}

// CruiseFieldLabels is the ordered list of audited cruise fields
var CruiseFieldLabels = []FieldLabel{
	{Key: "title", Label: "Titolo"},
	{Key: "slug", Label: "Slug"},
	{Key: "ship_name", Label: "Nave"},
	{Key: "river", Label: "Fiume"},
	{Key: "description", Label: "Descrizione"},
	{Key: "duration_nights", Label: "Durata (notti)"},
	{Key: "price_from", Label: "Prezzo da"},
	{Key: "currency", Label: "Valuta"},
	{Key: "embark_port", Label: "Porto di imbarco"},
	{Key: "disembark_port", Label: "Porto di sbarco"},
	{Key: "cover_image", Label: "Immagine di copertina"},
	{Key: "notes", Label: "Note"},
	{Key: "status", Label: "Stato"},
}

// CruisePayload is the composite save request for a cruise
type CruisePayload struct {
	ID             utils.NullString      `json:"id" validate:"omitempty,uuid"`
	Title          utils.NullString      `json:"title" validate:"required,max=200"`
	Slug           utils.NullString      `json:"slug" validate:"required,max=200,slug"`
	ShipName       utils.NullString      `json:"ship_name" validate:"omitempty,max=200"`
	River          utils.NullString      `json:"river" validate:"omitempty,max=120"`
	Description    utils.NullString      `json:"description"`
	DurationNights utils.NullInt         `json:"duration_nights" validate:"omitempty,gte=0"`
	PriceFrom      utils.NullFloat       `json:"price_from" validate:"omitempty,gte=0"`
	Currency       utils.NullString      `json:"currency" validate:"omitempty,len=3"`
	EmbarkPort     utils.NullString      `json:"embark_port" validate:"omitempty,max=200"`
	DisembarkPort  utils.NullString      `json:"disembark_port" validate:"omitempty,max=200"`
	CoverImage     utils.NullString      `json:"cover_image" validate:"omitempty,url"`
	Notes          utils.NullString      `json:"notes"`
	Status         utils.NullString      `json:"status" validate:"omitempty,oneof=draft published"`
	Coordinates    map[string]Coordinate `json:"coordinates" validate:"omitempty,dive"`

	ItineraryDays []ItineraryDay  `json:"itinerary_days" validate:"dive"`
	Departures    []Departure     `json:"departures" validate:"dive"`
	Supplements   []Supplement    `json:"supplements" validate:"dive"`
	Inclusions    []InclusionItem `json:"inclusions" validate:"dive"`
	Exclusions    []InclusionItem `json:"exclusions" validate:"dive"`
	Terms         []Term          `json:"terms" validate:"dive"`
	Penalties     []Penalty       `json:"penalties" validate:"dive"`
	Gallery       []GalleryItem   `json:"gallery" validate:"dive"`
	Cabins        []Cabin         `json:"cabins" validate:"dive"`
}

// Cruise builds the root row from the payload
func (p *CruisePayload) Cruise() *Cruise {
	status := Status(p.Status.String)
	if !p.Status.Valid {
		status = StatusDraft
	}
	return &Cruise{
		ID:             p.ID.String,
		Title:          p.Title.String,
		Slug:           p.Slug.String,
		ShipName:       p.ShipName.Ptr(),
		River:          p.River.Ptr(),
		Description:    p.Description.Ptr(),
		DurationNights: p.DurationNights.Ptr(),
		PriceFrom:      p.PriceFrom.Ptr(),
		Currency:       p.Currency.Ptr(),
		EmbarkPort:     p.EmbarkPort.Ptr(),
		DisembarkPort:  p.DisembarkPort.Ptr(),
		CoverImage:     p.CoverImage.Ptr(),
		Notes:          p.Notes.Ptr(),
		Status:         status,
	}
}

// Check reports coercion failures and cross-field problems that struct tags cannot express
func (p *CruisePayload) Check() []FieldError {
	c := &checker{}
	c.coerced("id", p.ID)
	c.coerced("title", p.Title)
	c.coerced("slug", p.Slug)
	c.coerced("ship_name", p.ShipName)
	c.coerced("river", p.River)
	c.coerced("description", p.Description)
	c.coerced("duration_nights", p.DurationNights)
	c.coerced("price_from", p.PriceFrom)
	c.coerced("currency", p.Currency)
	c.coerced("embark_port", p.EmbarkPort)
	c.coerced("disembark_port", p.DisembarkPort)
	c.coerced("cover_image", p.CoverImage)
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
	for i, cabin := range p.Cabins {
		c.coerced(indexed("cabins", i, "name"), cabin.Name)
		c.coerced(indexed("cabins", i, "category"), cabin.Category)
		c.coerced(indexed("cabins", i, "deck"), cabin.Deck)
		c.coerced(indexed("cabins", i, "capacity"), cabin.Capacity)
		c.coerced(indexed("cabins", i, "price"), cabin.Price)
	}
	return c.errs
}

// CruiseDetail is the read model of a cruise with its child collections
type CruiseDetail struct {
	Cruise      *Cruise                  `json:"cruise"`
	Collections map[string][]ChildRecord `json:"collections"`
}
