package usecase

import (
	"testing"

	"tourcatalog-service/internal/domain/entity"
	"tourcatalog-service/pkg/utils"
)

func day(locality string) entity.ItineraryDay {
	return entity.ItineraryDay{Title: utils.StringOf("Giorno"), Locality: utils.StringOf(locality)}
}

func TestDeriveLocationsFirstOccurrence(t *testing.T) {
	days := []entity.ItineraryDay{day("Roma"), day("Roma"), day("Parigi")}

	got := DeriveLocations(days, nil)
	if len(got) != 2 || got[0].Name != "Roma" || got[1].Name != "Parigi" {
		t.Fatalf("expected [Roma Parigi], got %+v", got)
	}
	if got[0].Lat != nil || got[0].Lng != nil {
		t.Fatalf("expected no coordinates without a lookup")
	}
}

func TestDeriveLocationsTrimsAndSkipsBlank(t *testing.T) {
	days := []entity.ItineraryDay{day("  Firenze "), day(""), day("Firenze"), {Title: utils.StringOf("Libero")}}

	got := DeriveLocations(days, nil)
	if len(got) != 1 || got[0].Name != "Firenze" {
		t.Fatalf("expected [Firenze], got %+v", got)
	}
}

func TestDeriveLocationsAttachesCoordinates(t *testing.T) {
	coords := map[string]entity.Coordinate{"Venezia": {Lat: 45.44, Lng: 12.33}}

	got := DeriveLocations([]entity.ItineraryDay{day("Venezia"), day("Verona")}, coords)
	if got[0].Lat == nil || *got[0].Lat != 45.44 || *got[0].Lng != 12.33 {
		t.Fatalf("expected Venezia coordinates, got %+v", got[0])
	}
	if got[1].Lat != nil {
		t.Fatalf("Verona has no coordinates, got %v", *got[1].Lat)
	}
}

func TestDeriveLocationsEmpty(t *testing.T) {
	if got := DeriveLocations(nil, nil); len(got) != 0 {
		t.Fatalf("expected empty output, got %+v", got)
	}
}

func TestDeriveLocationsTrimsCoordinateKeys(t *testing.T) {
	coords := map[string]entity.Coordinate{" Roma ": {Lat: 41.9, Lng: 12.5}}

	got := DeriveLocations([]entity.ItineraryDay{day("Roma")}, coords)
	if len(got) != 1 || got[0].Lat == nil || *got[0].Lat != 41.9 || *got[0].Lng != 12.5 {
		t.Fatalf("expected Roma coordinates from a padded key, got %+v", got)
	}
}
