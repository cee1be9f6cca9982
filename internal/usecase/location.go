package usecase

import (
	"strings"

	"tourcatalog-service/internal/domain/entity"
)

// DeriveLocations lists the distinct localities of the itinerary in order of
// first appearance. Coordinates are attached when the lookup has the locality; lookup keys
// are trimmed like localities.
func DeriveLocations(days []entity.ItineraryDay, coords map[string]entity.Coordinate) []entity.Location {
	locations := make([]entity.Location, 0, len(days))
	seen := make(map[string]bool, len(days))

	lookup := make(map[string]entity.Coordinate, len(coords))
	for name, c := range coords {
		lookup[strings.TrimSpace(name)] = c
	}

	for _, day := range days {
		name := strings.TrimSpace(day.Locality.String)
		if !day.Locality.Valid || name == "" || seen[name] {
			continue
		}
		seen[name] = true

		loc := entity.Location{Name: name}
		if c, ok := lookup[name]; ok {
			lat, lng := c.Lat, c.Lng
			loc.Lat, loc.Lng = &lat, &lng
		}
		locations = append(locations, loc)
	}
	return locations
}
