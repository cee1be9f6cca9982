package entity

import (
	"fmt"
	"time"

	"tourcatalog-service/pkg/utils"
)

const dateLayout = "2006-01-02"

// checker collects the payload problems struct tags cannot see:
// values that failed coercion, and cross-field rules.
type checker struct {
	errs []FieldError
}

func indexed(list string, i int, field string) string {
	return fmt.Sprintf("%s[%d].%s", list, i, field)
}

func (c *checker) add(field, message string) {
	c.errs = append(c.errs, FieldError{Field: field, Message: message})
}

func (c *checker) coerced(field string, v utils.Coercible) {
	if raw, bad := v.Malformed(); bad {
		c.add(field, fmt.Sprintf("cannot be converted from %q", raw))
	}
}

// required reports a null value. Zero is a legal value for the numeric
// fields using it, so the validator's required rule cannot be used.
func (c *checker) required(field string, v utils.Coercible, valid bool) {
	if _, bad := v.Malformed(); !bad && !valid {
		c.add(field, "is required")
	}
}

func (c *checker) itinerary(days []ItineraryDay) {
	for i, d := range days {
		c.coerced(indexed("itinerary_days", i, "day_number"), d.DayNumber)
		c.coerced(indexed("itinerary_days", i, "title"), d.Title)
		c.coerced(indexed("itinerary_days", i, "description"), d.Description)
		c.coerced(indexed("itinerary_days", i, "locality"), d.Locality)
		c.coerced(indexed("itinerary_days", i, "meals"), d.Meals)
	}
}

func (c *checker) departures(deps []Departure) {
	for i, d := range deps {
		c.coerced(indexed("departures", i, "start_date"), d.StartDate)
		c.coerced(indexed("departures", i, "end_date"), d.EndDate)
		c.coerced(indexed("departures", i, "price"), d.Price)
		c.coerced(indexed("departures", i, "seats"), d.Seats)
		c.coerced(indexed("departures", i, "notes"), d.Notes)
		if !d.StartDate.Valid || !d.EndDate.Valid {
			continue
		}
		start, errStart := time.Parse(dateLayout, d.StartDate.String)
		end, errEnd := time.Parse(dateLayout, d.EndDate.String)
		if errStart == nil && errEnd == nil && end.Before(start) {
			c.add(indexed("departures", i, "end_date"), "must not be before start_date")
		}
	}
}

func (c *checker) supplements(items []Supplement) {
	for i, s := range items {
		c.coerced(indexed("supplements", i, "title"), s.Title)
		c.coerced(indexed("supplements", i, "description"), s.Description)
		c.coerced(indexed("supplements", i, "price"), s.Price)
	}
}

func (c *checker) inclusions(list string, items []InclusionItem) {
	for i, item := range items {
		c.coerced(indexed(list, i, "title"), item.Title)
	}
}

func (c *checker) terms(items []Term) {
	for i, t := range items {
		c.coerced(indexed("terms", i, "title"), t.Title)
		c.coerced(indexed("terms", i, "content"), t.Content)
	}
}

func (c *checker) penalties(items []Penalty) {
	for i, p := range items {
		c.coerced(indexed("penalties", i, "days_before"), p.DaysBefore)
		c.required(indexed("penalties", i, "days_before"), p.DaysBefore, p.DaysBefore.Valid)
		c.coerced(indexed("penalties", i, "percentage"), p.Percentage)
		c.required(indexed("penalties", i, "percentage"), p.Percentage, p.Percentage.Valid)
		c.coerced(indexed("penalties", i, "description"), p.Description)
	}
}

func (c *checker) gallery(items []GalleryItem) {
	for i, g := range items {
		c.coerced(indexed("gallery", i, "image_url"), g.ImageURL)
		c.coerced(indexed("gallery", i, "caption"), g.Caption)
	}
}
