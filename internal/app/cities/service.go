package cities

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ticketfront/internal/catalog"
	"ticketfront/internal/clock"
)

// ErrCityNotFound signals a missing catalog city.
var ErrCityNotFound = errors.New("city not found")

// LocalTimeLayout renders a city's wall clock, e.g. "3:04 PM".
const LocalTimeLayout = "3:04 PM"

// View is a city together with its current local time.
type View struct {
	catalog.City
	LocalTime string `json:"localTime"`
}

// Service coordinates city browsing
type Service interface {
	List(ctx context.Context) ([]catalog.City, error)
	Search(ctx context.Context, term string) ([]catalog.City, error)
	Get(ctx context.Context, id string) (View, error)
	Events(ctx context.Context, id string, params catalog.Params) ([]catalog.Event, error)
}

type service struct {
	catalog *catalog.Catalog
	clock   clock.Clock
}

// New constructs a cities Service
func New(cat *catalog.Catalog, clk clock.Clock) Service {
	return &service{catalog: cat, clock: clk}
}

func (s *service) List(ctx context.Context) ([]catalog.City, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.catalog.Cities(), nil
}

func (s *service) Search(ctx context.Context, term string) ([]catalog.City, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.catalog.SearchCities(term), nil
}

func (s *service) Get(ctx context.Context, id string) (View, error) {
	if err := ctx.Err(); err != nil {
		return View{}, err
	}

	city, ok := s.catalog.City(id)
	if !ok {
		return View{}, fmt.Errorf("%w: %s", ErrCityNotFound, id)
	}
	return View{City: city, LocalTime: LocalTime(s.clock.Now(), city.Timezone)}, nil
}

// Events lists a city's events. The city id in params is ignored.
func (s *service) Events(ctx context.Context, id string, params catalog.Params) ([]catalog.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, ok := s.catalog.City(id); !ok {
		return nil, fmt.Errorf("%w: %s", ErrCityNotFound, id)
	}

	params.CityID = id
	params.SearchTerm = ""
	return s.catalog.Query(params, clock.Today(s.clock)), nil
}

// LocalTime formats now in the named IANA zone. Unknown zones render in UTC.
func LocalTime(now time.Time, timezone string) string {
	loc, err := time.LoadLocation(timezone)
	if err != nil || timezone == "" {
		loc = time.UTC
	}
	return now.In(loc).Format(LocalTimeLayout)
}
