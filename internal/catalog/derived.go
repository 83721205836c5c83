package catalog

import "time"

// HappeningSoonDays is the inclusive look-ahead for HappeningSoon.
const HappeningSoonDays = 7

// HappeningSoon reports whether date is between 0 and 7 days after ref's
// calendar day, inclusive. Past events are never happening soon.
func HappeningSoon(date Date, ref time.Time) bool {
	days := DateOf(ref).DaysUntil(date)
	return days >= 0 && days <= HappeningSoonDays
}

// TicketTier is a derived pricing bucket for an event.
type TicketTier struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// Tier ids in emission order.
const (
	TierVIP      = "vip"
	TierPremium  = "premium"
	TierStandard = "standard"
	TierBudget   = "budget"
)

// TicketTiers derives the four tiers from the event price. Tiers are emitted
// vip, premium, standard, budget and are not re-sorted, so the order only
// tracks price when the high bound is at least the low bound.
func TicketTiers(e Event) []TicketTier {
	low, high := e.Price.Bounds()
	step := (high - low) / 10
	return []TicketTier{
		{ID: TierVIP, Name: "VIP Section", Price: high},
		{ID: TierPremium, Name: "Premium Seats", Price: low + 7*step},
		{ID: TierStandard, Name: "Standard Admission", Price: low + 3*step},
		{ID: TierBudget, Name: "Budget Friendly", Price: low},
	}
}

// TicketTiers is TicketTiers for a catalog event; unknown ids yield nil.
func (c *Catalog) TicketTiers(eventID string) []TicketTier {
	e, ok := c.Event(eventID)
	if !ok {
		return nil
	}
	return TicketTiers(e)
}

// Tier finds one tier of an event by tier id.
func (c *Catalog) Tier(eventID, tierID string) (TicketTier, bool) {
	for _, t := range c.TicketTiers(eventID) {
		if t.ID == tierID {
			return t, true
		}
	}
	return TicketTier{}, false
}

// DefaultRelatedLimit is how many related events a detail page shows.
const DefaultRelatedLimit = 3

// Related returns up to limit other events, filled in stages: same category
// and city, then same category, then same city, then anything. Each stage
// keeps catalog order and skips events already chosen. Unknown ids and
// non-positive limits yield an empty slice.
func (c *Catalog) Related(eventID string, limit int) []Event {
	out := make([]Event, 0, max(limit, 0))
	self, ok := c.Event(eventID)
	if !ok || limit <= 0 {
		return out
	}

	stages := []func(Event) bool{
		func(e Event) bool { return e.Category == self.Category && e.CityID == self.CityID },
		func(e Event) bool { return e.Category == self.Category },
		func(e Event) bool { return e.CityID == self.CityID },
		func(Event) bool { return true },
	}

	taken := map[string]bool{self.ID: true}
	for _, stage := range stages {
		for _, e := range c.events {
			if len(out) == limit {
				return out
			}
			if taken[e.ID] || !stage(e) {
				continue
			}
			taken[e.ID] = true
			out = append(out, e)
		}
	}
	return out
}
