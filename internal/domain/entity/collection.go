package entity

// ChildRecord is one child row as column name -> value
type ChildRecord = map[string]any

// ChildRow is implemented by every submitted child item
type ChildRow interface {
	Columns() ChildRecord
}

// Collection identifies one child table owned by a root entity
type Collection struct {
	Name        string
	Table       string
	ForeignKey  string
	JSONColumns []string
}

// Column names the reconciler manages on every child row
const (
	ColumnID        = "id"
	ColumnSortOrder = "sort_order"
)

// Tour collections
var (
	TourItineraryDays = Collection{Name: "itinerary_days", Table: "tour_itinerary_days", ForeignKey: "tour_id"}
	TourLocations     = Collection{Name: "locations", Table: "tour_locations", ForeignKey: "tour_id"}
	TourDepartures    = Collection{Name: "departures", Table: "tour_departures", ForeignKey: "tour_id"}
	TourSupplements   = Collection{Name: "supplements", Table: "tour_supplements", ForeignKey: "tour_id"}
	TourInclusions    = Collection{Name: "inclusions", Table: "tour_inclusions", ForeignKey: "tour_id"}
	TourTerms         = Collection{Name: "terms", Table: "tour_terms", ForeignKey: "tour_id"}
	TourPenalties     = Collection{Name: "penalties", Table: "tour_penalties", ForeignKey: "tour_id"}
	TourGallery       = Collection{Name: "gallery", Table: "tour_gallery", ForeignKey: "tour_id"}
	TourHotels        = Collection{Name: "hotels", Table: "tour_hotels", ForeignKey: "tour_id", JSONColumns: []string{"amenities"}}
)

// TourCollections lists the tour child tables in reconcile order
var TourCollections = []Collection{
	TourItineraryDays,
	TourLocations,
	TourDepartures,
	TourSupplements,
	TourInclusions,
	TourTerms,
	TourPenalties,
	TourGallery,
	TourHotels,
}

// Cruise collections
var (
	CruiseItineraryDays = Collection{Name: "itinerary_days", Table: "cruise_itinerary_days", ForeignKey: "cruise_id"}
	CruiseLocations     = Collection{Name: "locations", Table: "cruise_locations", ForeignKey: "cruise_id"}
	CruiseDepartures    = Collection{Name: "departures", Table: "cruise_departures", ForeignKey: "cruise_id"}
	CruiseSupplements   = Collection{Name: "supplements", Table: "cruise_supplements", ForeignKey: "cruise_id"}
	CruiseInclusions    = Collection{Name: "inclusions", Table: "cruise_inclusions", ForeignKey: "cruise_id"}
	CruiseTerms         = Collection{Name: "terms", Table: "cruise_terms", ForeignKey: "cruise_id"}
	CruisePenalties     = Collection{Name: "penalties", Table: "cruise_penalties", ForeignKey: "cruise_id"}
	CruiseGallery       = Collection{Name: "gallery", Table: "cruise_gallery", ForeignKey: "cruise_id"}
	CruiseCabins        = Collection{Name: "cabins", Table: "cruise_cabins", ForeignKey: "cruise_id", JSONColumns: []string{"amenities"}}
)

// CruiseCollections lists the cruise child tables in reconcile order
var CruiseCollections = []Collection{
	CruiseItineraryDays,
	CruiseLocations,
	CruiseDepartures,
	CruiseSupplements,
	CruiseInclusions,
	CruiseTerms,
	CruisePenalties,
	CruiseGallery,
	CruiseCabins,
}
