package catalog

import (
	"strings"
	"time"
)

// Params drives Query. The zero value lists every event by date.
type Params struct {
	Category   Category
	DateFilter DateFilter
	Sort       SortOption
	// CityID, when set, limits results to one city before filtering.
	CityID string
	// SearchTerm switches Query into search mode: the other fields are
	// ignored and events are matched on text in catalog order.
	SearchTerm string
}

// Query runs a listing or a search against the catalog at reference time ref.
// The result is always a new, non-nil slice.
func (c *Catalog) Query(p Params, ref time.Time) []Event {
	if p.SearchTerm != "" {
		return c.Search(p.SearchTerm)
	}

	events := c.events
	if p.CityID != "" {
		events = c.EventsByCity(p.CityID)
	}

	sortOption := p.Sort
	if sortOption == "" {
		sortOption = DateSoonest
	}
	return Sort(Filter(events, p.Category, p.DateFilter, ref), sortOption)
}

// Search matches term case-insensitively against each event's title,
// description, location, venue and category. The term is not trimmed, but a
// blank term matches nothing.
func (c *Catalog) Search(term string) []Event {
	out := make([]Event, 0)
	if strings.TrimSpace(term) == "" {
		return out
	}
	needle := strings.ToLower(term)
	for _, e := range c.events {
		if containsFold(needle, e.Title, e.Description, e.Location, e.Venue, string(e.Category)) {
			out = append(out, e)
		}
	}
	return out
}

// SearchCities matches term against city names and descriptions.
func (c *Catalog) SearchCities(term string) []City {
	out := make([]City, 0)
	if strings.TrimSpace(term) == "" {
		return out
	}
	needle := strings.ToLower(term)
	for _, city := range c.cities {
		if containsFold(needle, city.Name, city.Description) {
			out = append(out, city)
		}
	}
	return out
}

func containsFold(needle string, fields ...string) bool {
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), needle) {
			return true
		}
	}
	return false
}
