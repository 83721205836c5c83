package catalog

import "time"

// Filter keeps the events matching category and falling inside the dateFilter
// window around ref. Only ref's calendar day matters. Unknown categories and
// date filters match everything. The input slice is not modified.
func Filter(events []Event, category Category, dateFilter DateFilter, ref time.Time) []Event {
	out := make([]Event, 0, len(events))
	match := dateMatcher(dateFilter, DateOf(ref))
	for _, e := range events {
		if category.Valid() && e.Category != category {
			continue
		}
		if !match(e.Date) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Window returns the closed interval of days selected by f for the reference
// day. ok is false for AnyDate and unknown filters, which have no bounds.
func Window(f DateFilter, ref Date) (from, to Date, ok bool) {
	switch f {
	case Today:
		return ref, ref, true
	case ThisWeekend:
		dow := int(ref.Weekday())
		daysToFriday := 5 - dow
		if dow == 0 {
			daysToFriday = 5
		}
		friday := ref.AddDays(daysToFriday)
		return friday, friday.AddDays(2), true
	case ThisWeek:
		start := ref.AddDays(-int(ref.Weekday()))
		return start, start.AddDays(6), true
	case ThisMonth:
		first := NewDate(ref.Year(), ref.Month(), 1)
		last := NewDate(ref.Year(), ref.Month()+1, 0)
		return first, last, true
	default:
		return Date{}, Date{}, false
	}
}

func dateMatcher(f DateFilter, ref Date) func(Date) bool {
	from, to, ok := Window(f, ref)
	if !ok {
		return func(Date) bool { return true }
	}
	return func(d Date) bool { return d.Within(from, to) }
}
