package catalog

// Category is one of the fixed event categories, or AllCategories.
type Category string

const (
	AllCategories Category = "All Categories"
	Concerts      Category = "Concerts"
	Sports        Category = "Sports"
	ArtsTheater   Category = "Arts & Theater"
	Comedy        Category = "Comedy"
	Festivals     Category = "Festivals"
)

// Categories lists the real categories in display order.
var Categories = []Category{Concerts, Sports, ArtsTheater, Comedy, Festivals}

var categorySlugs = map[string]Category{
	"all":          AllCategories,
	"concerts":     Concerts,
	"sports":       Sports,
	"arts-theater": ArtsTheater,
	"comedy":       Comedy,
	"festivals":    Festivals,
}

// Valid reports whether c is a real category (AllCategories is not).
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Slug is the URL form of the category.
func (c Category) Slug() string {
	for slug, cat := range categorySlugs {
		if cat == c {
			return slug
		}
	}
	return ""
}

// ParseCategory accepts an exact label or a slug. Anything else, including the
// empty string, yields AllCategories and false.
func ParseCategory(s string) (Category, bool) {
	c := Category(s)
	if c == AllCategories || c.Valid() {
		return c, true
	}
	if c, ok := categorySlugs[s]; ok {
		return c, true
	}
	return AllCategories, false
}

// DateFilter selects a window of days relative to the reference date.
type DateFilter string

const (
	AnyDate     DateFilter = "Any Date"
	Today       DateFilter = "Today"
	ThisWeekend DateFilter = "This Weekend"
	ThisWeek    DateFilter = "This Week"
	ThisMonth   DateFilter = "This Month"
)

// DateFilters lists the options in display order.
var DateFilters = []DateFilter{AnyDate, Today, ThisWeekend, ThisWeek, ThisMonth}

var dateFilterSlugs = map[string]DateFilter{
	"any":          AnyDate,
	"today":        Today,
	"this-weekend": ThisWeekend,
	"this-week":    ThisWeek,
	"this-month":   ThisMonth,
}

// ParseDateFilter accepts an exact label or a slug; otherwise AnyDate and false.
func ParseDateFilter(s string) (DateFilter, bool) {
	for _, f := range DateFilters {
		if string(f) == s {
			return f, true
		}
	}
	if f, ok := dateFilterSlugs[s]; ok {
		return f, true
	}
	return AnyDate, false
}

// SortOption orders a result list.
type SortOption string

const (
	DateSoonest    SortOption = "Date (Soonest)"
	PriceLowToHigh SortOption = "Price (Low to High)"
	PriceHighToLow SortOption = "Price (High to Low)"
	BestSelling    SortOption = "Best Selling"
)

// SortOptions lists the options in display order.
var SortOptions = []SortOption{DateSoonest, PriceLowToHigh, PriceHighToLow, BestSelling}

var sortSlugs = map[string]SortOption{
	"date":         DateSoonest,
	"price-asc":    PriceLowToHigh,
	"price-desc":   PriceHighToLow,
	"best-selling": BestSelling,
}

// ParseSortOption accepts an exact label or a slug; otherwise DateSoonest and
// false.
func ParseSortOption(s string) (SortOption, bool) {
	for _, o := range SortOptions {
		if string(o) == s {
			return o, true
		}
	}
	if o, ok := sortSlugs[s]; ok {
		return o, true
	}
	return DateSoonest, false
}
