package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow(t *testing.T) {
	tests := []struct {
		name     string
		filter   DateFilter
		ref      string
		from, to string
	}{
		{"today", Today, "2025-06-08", "2025-06-08", "2025-06-08"},
		{"weekend from sunday", ThisWeekend, "2025-06-08", "2025-06-13", "2025-06-15"},
		{"weekend from wednesday", ThisWeekend, "2025-06-11", "2025-06-13", "2025-06-15"},
		{"weekend from friday", ThisWeekend, "2025-06-13", "2025-06-13", "2025-06-15"},
		{"weekend from saturday", ThisWeekend, "2025-06-14", "2025-06-13", "2025-06-15"},
		{"week from sunday", ThisWeek, "2025-06-08", "2025-06-08", "2025-06-14"},
		{"week from thursday", ThisWeek, "2025-06-12", "2025-06-08", "2025-06-14"},
		{"week across month", ThisWeek, "2025-07-01", "2025-06-29", "2025-07-05"},
		{"month", ThisMonth, "2025-06-08", "2025-06-01", "2025-06-30"},
		{"february", ThisMonth, "2025-02-10", "2025-02-01", "2025-02-28"},
		{"leap february", ThisMonth, "2024-02-29", "2024-02-01", "2024-02-29"},
		{"december", ThisMonth, "2025-12-31", "2025-12-01", "2025-12-31"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			from, to, ok := Window(tc.filter, MustParseDate(tc.ref))
			require.True(t, ok)
			assert.Equal(t, tc.from, from.String())
			assert.Equal(t, tc.to, to.String())
		})
	}

	_, _, ok := Window(AnyDate, MustParseDate("2025-06-08"))
	assert.False(t, ok)
	_, _, ok = Window(DateFilter("Next Year"), MustParseDate("2025-06-08"))
	assert.False(t, ok)
}

func TestQueryDateFilters(t *testing.T) {
	c := defaultCatalogT(t)

	tests := []struct {
		filter DateFilter
		want   []string
	}{
		{Today, []string{}},
		{ThisWeekend, []string{"sf-symphony", "rolling-stones", "lv-comedy"}},
		{ThisWeek, []string{"cirque-soleil", "comedy-night", "ny-jazz-night", "chicago-blues", "sf-symphony"}},
	}

	for _, tc := range tests {
		t.Run(string(tc.filter), func(t *testing.T) {
			got := c.Query(Params{DateFilter: tc.filter}, referenceDay)
			assert.Equal(t, tc.want, ids(got))
		})
	}

	assert.Len(t, c.Query(Params{DateFilter: ThisMonth}, referenceDay), 12)
}

func TestFilterIgnoresTimeOfDay(t *testing.T) {
	events := []Event{ev("a", "2025-06-08", Concerts, "nyc", Fixed(10))}
	late := time.Date(2025, time.June, 8, 23, 59, 0, 0, time.UTC)

	assert.Len(t, Filter(events, AllCategories, Today, late), 1)
}

func TestFilterCategoryExact(t *testing.T) {
	c := defaultCatalogT(t)

	got := Filter(c.Events(), Comedy, AnyDate, referenceDay)
	assert.Equal(t, []string{"comedy-night", "ny-comedy-fest", "hollywood-comedy", "lv-comedy"}, ids(got))
	for _, e := range got {
		assert.Equal(t, Comedy, e.Category)
	}
}

func TestFilterUnknownOptionsAreIdentity(t *testing.T) {
	c := defaultCatalogT(t)
	all := c.Events()

	assert.Equal(t, ids(all), ids(Filter(all, Category("Jazz"), AnyDate, referenceDay)))
	assert.Equal(t, ids(all), ids(Filter(all, AllCategories, DateFilter("Next Year"), referenceDay)))
	assert.Equal(t, ids(all), ids(Filter(all, "", "", referenceDay)))
}

func TestFilterNarrows(t *testing.T) {
	c := defaultCatalogT(t)
	all := c.Events()
	categories := append([]Category{AllCategories}, Categories...)
	filters := []DateFilter{AnyDate, Today, ThisWeekend, ThisWeek, ThisMonth}

	for _, cat := range categories {
		for _, f := range filters {
			got := Filter(all, cat, f, referenceDay)
			require.LessOrEqual(t, len(got), len(all))

			from, to, bounded := Window(f, DateOf(referenceDay))
			for _, e := range got {
				if cat != AllCategories {
					assert.Equal(t, cat, e.Category)
				}
				if bounded {
					assert.True(t, e.Date.Within(from, to), "%s outside %s window", e.ID, f)
				}
			}
		}
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	events := []Event{
		ev("b", "2025-06-20", Sports, "nyc", Fixed(10)),
		ev("a", "2025-06-09", Concerts, "nyc", Fixed(10)),
	}

	_ = Filter(events, Concerts, AnyDate, referenceDay)
	_ = Sort(events, DateSoonest)

	assert.Equal(t, []string{"b", "a"}, ids(events))
}
