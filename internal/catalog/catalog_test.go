package catalog

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// referenceDay is a Sunday.
var referenceDay = time.Date(2025, time.June, 8, 0, 0, 0, 0, time.UTC)

func ev(id, date string, category Category, cityID string, price Price) Event {
	return Event{
		ID:       id,
		Title:    id,
		Date:     MustParseDate(date),
		Category: category,
		CityID:   cityID,
		Price:    price,
	}
}

func ids(events []Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.ID)
	}
	return out
}

func defaultCatalogT(t *testing.T) *Catalog {
	t.Helper()
	c, err := Default()
	require.NoError(t, err)
	return c
}

func TestDefaultCatalog(t *testing.T) {
	c := defaultCatalogT(t)

	assert.Len(t, c.Events(), 16)
	assert.Len(t, c.Cities(), 12)
	assert.Equal(t, []string{"rolling-stones", "lakers-warriors"}, ids(c.Featured()))

	e, ok := c.Event("rolling-stones")
	require.True(t, ok)
	assert.Equal(t, "2025-06-15", e.Date.String())
	assert.Equal(t, Concerts, e.Category)
	assert.Equal(t, PriceRange, e.Price.Kind())
	assert.Equal(t, "$80 - $350", e.Price.Label())

	_, ok = c.Event("missing")
	assert.False(t, ok)

	city, ok := c.City("chicago")
	require.True(t, ok)
	assert.Equal(t, "America/Chicago", city.Timezone)
}

func TestNewValidation(t *testing.T) {
	cities := []City{{ID: "nyc", Name: "New York"}}

	tests := []struct {
		name    string
		events  []Event
		cities  []City
		wantErr error
	}{
		{
			name:    "duplicate event",
			events:  []Event{ev("a", "2025-06-10", Concerts, "nyc", Fixed(10)), ev("a", "2025-06-11", Sports, "nyc", Fixed(10))},
			cities:  cities,
			wantErr: ErrDuplicateID,
		},
		{
			name:    "duplicate city",
			cities:  []City{{ID: "nyc"}, {ID: "nyc"}},
			wantErr: ErrDuplicateID,
		},
		{
			name:    "unknown city",
			events:  []Event{ev("a", "2025-06-10", Concerts, "la", Fixed(10))},
			cities:  cities,
			wantErr: ErrUnknownCity,
		},
		{
			name:    "missing id",
			events:  []Event{ev(" ", "2025-06-10", Concerts, "nyc", Fixed(10))},
			cities:  cities,
			wantErr: ErrInvalidRecord,
		},
		{
			name:    "missing date",
			events:  []Event{{ID: "a", CityID: "nyc"}},
			cities:  cities,
			wantErr: ErrInvalidRecord,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.events, tc.cities)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.wantErr), "got %v", err)
		})
	}
}

func TestCatalogReturnsCopies(t *testing.T) {
	c, err := New(
		[]Event{{ID: "a", Date: MustParseDate("2025-06-10"), CityID: "nyc", Tags: []string{"rock"}}},
		[]City{{ID: "nyc"}},
	)
	require.NoError(t, err)

	events := c.Events()
	events[0].Title = "changed"

	e, _ := c.Event("a")
	assert.Empty(t, e.Title)

	c.Cities()[0].Name = "changed"
	city, _ := c.City("nyc")
	assert.Empty(t, city.Name)
}

func TestEventsByCity(t *testing.T) {
	c := defaultCatalogT(t)

	assert.Equal(t,
		[]string{"comedy-night", "summer-festival", "chicago-blues", "cubs-cardinals"},
		ids(c.EventsByCity("chicago")))
	assert.NotNil(t, c.EventsByCity("atlantis"))
	assert.Empty(t, c.EventsByCity("atlantis"))
}

func TestCategoryCounts(t *testing.T) {
	c := defaultCatalogT(t)

	counts := c.CategoryCounts()
	require.Len(t, counts, len(Categories))

	got := map[Category]int{}
	for _, cc := range counts {
		got[cc.Category] = cc.Count
		assert.Equal(t, cc.Category.Slug(), cc.Slug)
	}
	assert.Equal(t, 0, got[AllCategories])
	assert.Equal(t, 3, got[Concerts])
	assert.Equal(t, 3, got[Sports])
	assert.Equal(t, 4, got[ArtsTheater])
	assert.Equal(t, 4, got[Comedy])
	assert.Equal(t, 2, got[Festivals])
}
