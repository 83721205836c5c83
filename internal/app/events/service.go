package events

import (
	"context"
	"errors"
	"fmt"

	"ticketfront/internal/catalog"
	"ticketfront/internal/clock"
)

// ErrEventNotFound signals a missing catalog event.
var ErrEventNotFound = errors.New("event not found")

// Detail is everything the event page shows.
type Detail struct {
	Event         catalog.Event        `json:"event"`
	City          catalog.City         `json:"city"`
	Tiers         []catalog.TicketTier `json:"tiers"`
	Related       []catalog.Event      `json:"related"`
	HappeningSoon bool                 `json:"happeningSoon"`
}

// Service coordinates event listing and detail queries
type Service interface {
	List(ctx context.Context, params catalog.Params) ([]catalog.Event, error)
	Featured(ctx context.Context) ([]catalog.Event, error)
	Categories(ctx context.Context) ([]catalog.CategoryCount, error)
	Detail(ctx context.Context, id string) (Detail, error)
}

type service struct {
	catalog *catalog.Catalog
	clock   clock.Clock
}

// New constructs an events Service. Date filters are evaluated against the
// clock's current day.
func New(cat *catalog.Catalog, clk clock.Clock) Service {
	return &service{catalog: cat, clock: clk}
}

func (s *service) List(ctx context.Context, params catalog.Params) ([]catalog.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.catalog.Query(params, clock.Today(s.clock)), nil
}

func (s *service) Featured(ctx context.Context) ([]catalog.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.catalog.Featured(), nil
}

func (s *service) Categories(ctx context.Context) ([]catalog.CategoryCount, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.catalog.CategoryCounts(), nil
}

func (s *service) Detail(ctx context.Context, id string) (Detail, error) {
	if err := ctx.Err(); err != nil {
		return Detail{}, err
	}

	event, ok := s.catalog.Event(id)
	if !ok {
		return Detail{}, fmt.Errorf("%w: %s", ErrEventNotFound, id)
	}
	city, _ := s.catalog.City(event.CityID)

	return Detail{
		Event:         event,
		City:          city,
		Tiers:         catalog.TicketTiers(event),
		Related:       s.catalog.Related(id, catalog.DefaultRelatedLimit),
		HappeningSoon: catalog.HappeningSoon(event.Date, s.clock.Now()),
	}, nil
}
