package repository

import (
	"time"

	"tourcatalog-service/internal/domain/entity"

	"gorm.io/datatypes"
)

// Tours GORM model for database mapping
type Tours struct {
	ID           string  `gorm:"primaryKey;size:36"`
	Title        string  `gorm:"column:title;size:200;not null"`
	Slug         string  `gorm:"column:slug;size:200;not null;uniqueIndex"`
	Subtitle     *string `gorm:"column:subtitle;size:300"`
	Description  *string `gorm:"column:description;type:text"`
	Destination  *string `gorm:"column:destination;size:200"`
	DurationDays *int    `gorm:"column:duration_days"`
	PriceFrom    *float64
	Currency     *string `gorm:"column:currency;size:3"`
	CoverImage   *string `gorm:"column:cover_image"`
	MeetingPoint *string `gorm:"column:meeting_point;size:300"`
	Notes        *string `gorm:"column:notes;type:text"`
	Status       string  `gorm:"column:status;size:20;not null;default:draft;index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName overrides the default table name
func (Tours) TableName() string {
	return "tours"
}

// Cruises GORM model for database mapping
type Cruises struct {
	ID             string  `gorm:"primaryKey;size:36"`
	Title          string  `gorm:"column:title;size:200;not null"`
	Slug           string  `gorm:"column:slug;size:200;not null;uniqueIndex"`
	ShipName       *string `gorm:"column:ship_name;size:200"`
	River          *string `gorm:"column:river;size:120"`
	Description    *string `gorm:"column:description;type:text"`
	DurationNights *int    `gorm:"column:duration_nights"`
	PriceFrom      *float64
	Currency       *string `gorm:"column:currency;size:3"`
	EmbarkPort     *string `gorm:"column:embark_port;size:200"`
	DisembarkPort  *string `gorm:"column:disembark_port;size:200"`
	CoverImage     *string `gorm:"column:cover_image"`
	Notes          *string `gorm:"column:notes;type:text"`
	Status         string  `gorm:"column:status;size:20;not null;default:draft;index"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName overrides the default table name
func (Cruises) TableName() string {
	return "cruises"
}

// ChildBase holds the columns the reconciler writes on every child row
type ChildBase struct {
	ID        string `gorm:"primaryKey;size:36"`
	SortOrder int    `gorm:"column:sort_order;not null;default:0"`
}

// Column sets shared by the tour and cruise variants of each child table.

type ItineraryDayColumns struct {
	DayNumber   *int    `gorm:"column:day_number"`
	Title       string  `gorm:"column:title;size:200"`
	Description *string `gorm:"column:description;type:text"`
	Locality    *string `gorm:"column:locality;size:120"`
	Meals       *string `gorm:"column:meals;size:120"`
}

type LocationColumns struct {
	Name string   `gorm:"column:name;size:120"`
	Lat  *float64 `gorm:"column:lat"`
	Lng  *float64 `gorm:"column:lng"`
}

type DepartureColumns struct {
	StartDate string   `gorm:"column:start_date;size:10"`
	EndDate   *string  `gorm:"column:end_date;size:10"`
	Price     *float64 `gorm:"column:price"`
	Seats     *int     `gorm:"column:seats"`
	Notes     *string  `gorm:"column:notes;type:text"`
}

type SupplementColumns struct {
	Title       string   `gorm:"column:title;size:200"`
	Description *string  `gorm:"column:description;type:text"`
	Price       *float64 `gorm:"column:price"`
}

type InclusionColumns struct {
	Title      string `gorm:"column:title;size:200"`
	IsIncluded bool   `gorm:"column:is_included"`
}

type TermColumns struct {
	Title   string  `gorm:"column:title;size:200"`
	Content *string `gorm:"column:content;type:text"`
}

type PenaltyColumns struct {
	DaysBefore  int     `gorm:"column:days_before"`
	Percentage  float64 `gorm:"column:percentage"`
	Description *string `gorm:"column:description;type:text"`
}

type GalleryColumns struct {
	ImageURL string  `gorm:"column:image_url"`
	Caption  *string `gorm:"column:caption;size:300"`
}

type HotelColumns struct {
	Name      string         `gorm:"column:name;size:200"`
	Locality  *string        `gorm:"column:locality;size:120"`
	Stars     *int           `gorm:"column:stars"`
	Nights    *int           `gorm:"column:nights"`
	Amenities datatypes.JSON `gorm:"column:amenities"`
}

type CabinColumns struct {
	Name      string         `gorm:"column:name;size:200"`
	Category  *string        `gorm:"column:category;size:120"`
	Deck      *string        `gorm:"column:deck;size:60"`
	Capacity  *int           `gorm:"column:capacity"`
	Price     *float64       `gorm:"column:price"`
	Amenities datatypes.JSON `gorm:"column:amenities"`
}

// TourOwned and CruiseOwned carry the owning foreign key

type TourOwned struct {
	TourID string `gorm:"column:tour_id;size:36;not null;index"`
}

type CruiseOwned struct {
	CruiseID string `gorm:"column:cruise_id;size:36;not null;index"`
}

type TourItineraryDays struct {
	ChildBase           `gorm:"embedded"`
	TourOwned           `gorm:"embedded"`
	ItineraryDayColumns `gorm:"embedded"`
}

func (TourItineraryDays) TableName() string { return entity.TourItineraryDays.Table }

type TourLocations struct {
	ChildBase       `gorm:"embedded"`
	TourOwned       `gorm:"embedded"`
	LocationColumns `gorm:"embedded"`
}

func (TourLocations) TableName() string { return entity.TourLocations.Table }

type TourDepartures struct {
	ChildBase        `gorm:"embedded"`
	TourOwned        `gorm:"embedded"`
	DepartureColumns `gorm:"embedded"`
}

func (TourDepartures) TableName() string { return entity.TourDepartures.Table }

type TourSupplements struct {
	ChildBase         `gorm:"embedded"`
	TourOwned         `gorm:"embedded"`
	SupplementColumns `gorm:"embedded"`
}

func (TourSupplements) TableName() string { return entity.TourSupplements.Table }

type TourInclusions struct {
	ChildBase        `gorm:"embedded"`
	TourOwned        `gorm:"embedded"`
	InclusionColumns `gorm:"embedded"`
}

func (TourInclusions) TableName() string { return entity.TourInclusions.Table }

type TourTerms struct {
	ChildBase   `gorm:"embedded"`
	TourOwned   `gorm:"embedded"`
	TermColumns `gorm:"embedded"`
}

func (TourTerms) TableName() string { return entity.TourTerms.Table }

type TourPenalties struct {
	ChildBase      `gorm:"embedded"`
	TourOwned      `gorm:"embedded"`
	PenaltyColumns `gorm:"embedded"`
}

func (TourPenalties) TableName() string { return entity.TourPenalties.Table }

type TourGallery struct {
	ChildBase      `gorm:"embedded"`
	TourOwned      `gorm:"embedded"`
	GalleryColumns `gorm:"embedded"`
}

func (TourGallery) TableName() string { return entity.TourGallery.Table }

type TourHotels struct {
	ChildBase    `gorm:"embedded"`
	TourOwned    `gorm:"embedded"`
	HotelColumns `gorm:"embedded"`
}

func (TourHotels) TableName() string { return entity.TourHotels.Table }

type CruiseItineraryDays struct {
	ChildBase           `gorm:"embedded"`
	CruiseOwned         `gorm:"embedded"`
	ItineraryDayColumns `gorm:"embedded"`
}

func (CruiseItineraryDays) TableName() string { return entity.CruiseItineraryDays.Table }

type CruiseLocations struct {
	ChildBase       `gorm:"embedded"`
	CruiseOwned     `gorm:"embedded"`
	LocationColumns `gorm:"embedded"`
}

func (CruiseLocations) TableName() string { return entity.CruiseLocations.Table }

type CruiseDepartures struct {
	ChildBase        `gorm:"embedded"`
	CruiseOwned      `gorm:"embedded"`
	DepartureColumns `gorm:"embedded"`
}

func (CruiseDepartures) TableName() string { return entity.CruiseDepartures.Table }

type CruiseSupplements struct {
	ChildBase         `gorm:"embedded"`
	CruiseOwned       `gorm:"embedded"`
	SupplementColumns `gorm:"embedded"`
}

func (CruiseSupplements) TableName() string { return entity.CruiseSupplements.Table }

type CruiseInclusions struct {
	ChildBase        `gorm:"embedded"`
	CruiseOwned      `gorm:"embedded"`
	InclusionColumns `gorm:"embedded"`
}

func (CruiseInclusions) TableName() string { return entity.CruiseInclusions.Table }

type CruiseTerms struct {
	ChildBase   `gorm:"embedded"`
	CruiseOwned `gorm:"embedded"`
	TermColumns `gorm:"embedded"`
}

func (CruiseTerms) TableName() string { return entity.CruiseTerms.Table }

type CruisePenalties struct {
	ChildBase      `gorm:"embedded"`
	CruiseOwned    `gorm:"embedded"`
	PenaltyColumns `gorm:"embedded"`
}

func (CruisePenalties) TableName() string { return entity.CruisePenalties.Table }

type CruiseGallery struct {
	ChildBase      `gorm:"embedded"`
	CruiseOwned    `gorm:"embedded"`
	GalleryColumns `gorm:"embedded"`
}

func (CruiseGallery) TableName() string { return entity.CruiseGallery.Table }

type CruiseCabins struct {
	ChildBase    `gorm:"embedded"`
	CruiseOwned  `gorm:"embedded"`
	CabinColumns `gorm:"embedded"`
}

func (CruiseCabins) TableName() string { return entity.CruiseCabins.Table }

// catalogModels lists every table in migration order
func catalogModels() []interface{} {
	return []interface{}{
		&Tours{},
		&TourItineraryDays{}, &TourLocations{}, &TourDepartures{}, &TourSupplements{},
		&TourInclusions{}, &TourTerms{}, &TourPenalties{}, &TourGallery{}, &TourHotels{},
		&Cruises{},
		&CruiseItineraryDays{}, &CruiseLocations{}, &CruiseDepartures{}, &CruiseSupplements{},
		&CruiseInclusions{}, &CruiseTerms{}, &CruisePenalties{}, &CruiseGallery{}, &CruiseCabins{},
	}
}
