package catalog

import (
	"cmp"
	"slices"
	"strings"
)

// Sort returns a new slice ordered by option. Equal keys keep their input
// order. Unknown options return an unchanged copy.
func Sort(events []Event, option SortOption) []Event {
	out := slices.Clone(events)
	if out == nil {
		out = []Event{}
	}

	switch option {
	case DateSoonest:
		slices.SortStableFunc(out, func(a, b Event) int {
			return a.Date.Compare(b.Date)
		})
	case PriceLowToHigh:
		slices.SortStableFunc(out, func(a, b Event) int {
			return cmp.Compare(a.Price.Normalized(), b.Price.Normalized())
		})
	case PriceHighToLow:
		slices.SortStableFunc(out, func(a, b Event) int {
			return cmp.Compare(b.Price.Normalized(), a.Price.Normalized())
		})
	case BestSelling:
		// No sales data exists; id order stands in for popularity.
		slices.SortStableFunc(out, func(a, b Event) int {
			return strings.Compare(a.ID, b.ID)
		})
	}
	return out
}
