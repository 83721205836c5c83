// Package catalog holds the static event and city catalog and the query engine
// every listing, search and detail page is built from. Queries are pure
// functions of the catalog, their parameters and a caller-supplied reference
// date; nothing in this package reads the wall clock.
package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrDuplicateID is returned by New when two records share an id.
	ErrDuplicateID = errors.New("duplicate catalog id")
	// ErrUnknownCity is returned by New when an event references a missing city.
	ErrUnknownCity = errors.New("event references unknown city")
	// ErrInvalidRecord is returned by New for records missing required fields.
	ErrInvalidRecord = errors.New("invalid catalog record")
)

// Event is an immutable catalog entry.
type Event struct {
	ID              string   `json:"id" yaml:"id"`
	Title           string   `json:"title" yaml:"title"`
	Description     string   `json:"description" yaml:"description"`
	LongDescription string   `json:"longDescription,omitempty" yaml:"longDescription,omitempty"`
	Image           string   `json:"image,omitempty" yaml:"image,omitempty"`
	Date            Date     `json:"date" yaml:"date"`
	Time            string   `json:"time,omitempty" yaml:"time,omitempty"`
	Venue           string   `json:"venue" yaml:"venue"`
	Location        string   `json:"location" yaml:"location"`
	Price           Price    `json:"price" yaml:"price"`
	Category        Category `json:"category" yaml:"category"`
	Tags            []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	Availability    string   `json:"availability,omitempty" yaml:"availability,omitempty"`
	CityID          string   `json:"cityId" yaml:"cityId"`
	Featured        bool     `json:"featured,omitempty" yaml:"featured,omitempty"`
}

// City is an immutable catalog entry. Timezone drives only the display clock;
// EventCount is a display hint and is never recomputed.
type City struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Image       string `json:"image,omitempty" yaml:"image,omitempty"`
	Description string `json:"description" yaml:"description"`
	Timezone    string `json:"timezone" yaml:"timezone"`
	EventCount  int    `json:"eventCount,omitempty" yaml:"eventCount,omitempty"`
}

// Catalog is a read-only snapshot of events and cities. It keeps insertion
// order, which is the "catalog order" used by search and related events.
// A Catalog is safe for concurrent use.
type Catalog struct {
	events   []Event
	eventIdx map[string]int
	cities   []City
	cityIdx  map[string]int
}

// New validates the records and builds a Catalog. Event and city ids must be
// unique and every event must reference a known city.
func New(events []Event, cities []City) (*Catalog, error) {
	c := &Catalog{
		events:   make([]Event, 0, len(events)),
		eventIdx: make(map[string]int, len(events)),
		cities:   make([]City, 0, len(cities)),
		cityIdx:  make(map[string]int, len(cities)),
	}

	for _, city := range cities {
		if strings.TrimSpace(city.ID) == "" {
			return nil, fmt.Errorf("%w: city without id", ErrInvalidRecord)
		}
		if _, exists := c.cityIdx[city.ID]; exists {
			return nil, fmt.Errorf("%w: city %q", ErrDuplicateID, city.ID)
		}
		c.cityIdx[city.ID] = len(c.cities)
		c.cities = append(c.cities, city)
	}

	for _, event := range events {
		if strings.TrimSpace(event.ID) == "" {
			return nil, fmt.Errorf("%w: event without id", ErrInvalidRecord)
		}
		if event.Date.IsZero() {
			return nil, fmt.Errorf("%w: event %q has no date", ErrInvalidRecord, event.ID)
		}
		if _, exists := c.eventIdx[event.ID]; exists {
			return nil, fmt.Errorf("%w: event %q", ErrDuplicateID, event.ID)
		}
		if _, ok := c.cityIdx[event.CityID]; !ok {
			return nil, fmt.Errorf("%w: event %q city %q", ErrUnknownCity, event.ID, event.CityID)
		}
		event.Tags = slices.Clone(event.Tags)
		c.eventIdx[event.ID] = len(c.events)
		c.events = append(c.events, event)
	}

	return c, nil
}

// Events returns every event in catalog order.
func (c *Catalog) Events() []Event {
	return slices.Clone(c.events)
}

// Cities returns every city in catalog order.
func (c *Catalog) Cities() []City {
	return slices.Clone(c.cities)
}

// Event looks up an event by id.
func (c *Catalog) Event(id string) (Event, bool) {
	i, ok := c.eventIdx[id]
	if !ok {
		return Event{}, false
	}
	return c.events[i], true
}

// City looks up a city by id.
func (c *Catalog) City(id string) (City, bool) {
	i, ok := c.cityIdx[id]
	if !ok {
		return City{}, false
	}
	return c.cities[i], true
}

// EventsByCity returns the events held in a city, in catalog order.
func (c *Catalog) EventsByCity(cityID string) []Event {
	out := make([]Event, 0)
	for _, e := range c.events {
		if e.CityID == cityID {
			out = append(out, e)
		}
	}
	return out
}

// Featured returns the events flagged for the home page.
func (c *Catalog) Featured() []Event {
	out := make([]Event, 0)
	for _, e := range c.events {
		if e.Featured {
			out = append(out, e)
		}
	}
	return out
}

// CategoryCount is the number of catalog events in a category.
type CategoryCount struct {
	Category Category `json:"category"`
	Slug     string   `json:"slug"`
	Count    int      `json:"count"`
}

// CategoryCounts returns one entry per category in display order, including
// categories with no events.
func (c *Catalog) CategoryCounts() []CategoryCount {
	counts := make(map[Category]int, len(Categories))
	for _, e := range c.events {
		counts[e.Category]++
	}
	out := make([]CategoryCount, 0, len(Categories))
	for _, cat := range Categories {
		out = append(out, CategoryCount{Category: cat, Slug: cat.Slug(), Count: counts[cat]})
	}
	return out
}
