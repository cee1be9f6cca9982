package entity

import (
	"tourcatalog-service/pkg/utils"

	"gorm.io/datatypes"
)

// ItineraryDay is one day of the program
type ItineraryDay struct {
	DayNumber   utils.NullInt    `json:"day_number" validate:"omitempty,gte=1"`
	Title       utils.NullString `json:"title" validate:"required,max=200"`
	Description utils.NullString `json:"description"`
	Locality    utils.NullString `json:"locality" validate:"omitempty,max=120"`
	Meals       utils.NullString `json:"meals" validate:"omitempty,max=120"`
}

func (d ItineraryDay) Columns() ChildRecord {
	return ChildRecord{
		"day_number":  d.DayNumber,
		"title":       d.Title,
		"description": d.Description,
		"locality":    d.Locality,
		"meals":       d.Meals,
	}
}

// Coordinate is an optional map position for a locality
type Coordinate struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

// Location is derived from the itinerary, never submitted directly
type Location struct {
	Name string
	Lat  *float64
	Lng  *float64
}

func (l Location) Columns() ChildRecord {
	return ChildRecord{
		"name": l.Name,
		"lat":  l.Lat,
		"lng":  l.Lng,
	}
}

// Departure is one dated occurrence of the product
type Departure struct {
	StartDate utils.NullString `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   utils.NullString `json:"end_date" validate:"omitempty,datetime=2006-01-02"`
	Price     utils.NullFloat  `json:"price" validate:"omitempty,gte=0"`
	Seats     utils.NullInt    `json:"seats" validate:"omitempty,gte=0"`
	Notes     utils.NullString `json:"notes"`
}

func (d Departure) Columns() ChildRecord {
	return ChildRecord{
		"start_date": d.StartDate,
		"end_date":   d.EndDate,
		"price":      d.Price,
		"seats":      d.Seats,
		"notes":      d.Notes,
	}
}

// Supplement is an optional extra with its own price
type Supplement struct {
	Title       utils.NullString `json:"title" validate:"required,max=200"`
	Description utils.NullString `json:"description"`
	Price       utils.NullFloat  `json:"price" validate:"omitempty,gte=0"`
}

func (s Supplement) Columns() ChildRecord {
	return ChildRecord{
		"title":       s.Title,
		"description": s.Description,
		"price":       s.Price,
	}
}

// InclusionItem is one entry of the submitted included or excluded list
type InclusionItem struct {
	Title utils.NullString `json:"title" validate:"required,max=200"`
}

// Inclusion is the stored, polarity-flagged form of an InclusionItem
type Inclusion struct {
	Title      string
	IsIncluded bool
}

func (i Inclusion) Columns() ChildRecord {
	return ChildRecord{
		"title":       i.Title,
		"is_included": i.IsIncluded,
	}
}

// Term is one contractual clause
type Term struct {
	Title   utils.NullString `json:"title" validate:"required,max=200"`
	Content utils.NullString `json:"content"`
}

func (t Term) Columns() ChildRecord {
	return ChildRecord{
		"title":   t.Title,
		"content": t.Content,
	}
}

// Penalty is a cancellation fee applied from DaysBefore days before departure
type Penalty struct {
	DaysBefore  utils.NullInt    `json:"days_before" validate:"omitempty,gte=0"`
	Percentage  utils.NullFloat  `json:"percentage" validate:"omitempty,gte=0,lte=100"`
	Description utils.NullString `json:"description"`
}

func (p Penalty) Columns() ChildRecord {
	return ChildRecord{
		"days_before": p.DaysBefore,
		"percentage":  p.Percentage,
		"description": p.Description,
	}
}

// GalleryItem is one image of the gallery
type GalleryItem struct {
	ImageURL utils.NullString `json:"image_url" validate:"required,url"`
	Caption  utils.NullString `json:"caption" validate:"omitempty,max=300"`
}

func (g GalleryItem) Columns() ChildRecord {
	return ChildRecord{
		"image_url": g.ImageURL,
		"caption":   g.Caption,
	}
}

// Hotel is an accommodation used by a tour
type Hotel struct {
	Name      utils.NullString `json:"name" validate:"required,max=200"`
	Locality  utils.NullString `json:"locality"`
	Stars     utils.NullInt    `json:"stars" validate:"omitempty,gte=1,lte=5"`
	Nights    utils.NullInt    `json:"nights" validate:"omitempty,gte=0"`
	Amenities []string         `json:"amenities"`
}

func (h Hotel) Columns() ChildRecord {
	return ChildRecord{
		"name":      h.Name,
		"locality":  h.Locality,
		"stars":     h.Stars,
		"nights":    h.Nights,
		"amenities": datatypes.NewJSONSlice(utils.NonNil(h.Amenities)),
	}
}

// Cabin is a cabin category on board a cruise ship
type Cabin struct {
	Name      utils.NullString `json:"name" validate:"required,max=200"`
	Category  utils.NullString `json:"category"`
	Deck      utils.NullString `json:"deck"`
	Capacity  utils.NullInt    `json:"capacity" validate:"omitempty,gte=1"`
	Price     utils.NullFloat  `json:"price" validate:"omitempty,gte=0"`
	Amenities []string         `json:"amenities"`
}

func (c Cabin) Columns() ChildRecord {
	return ChildRecord{
		"name":      c.Name,
		"category":  c.Category,
		"deck":      c.Deck,
		"capacity":  c.Capacity,
		"price":     c.Price,
		"amenities": datatypes.NewJSONSlice(utils.NonNil(c.Amenities)),
	}
}
