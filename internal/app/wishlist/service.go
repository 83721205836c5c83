package wishlist

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"ticketfront/internal/catalog"
	"ticketfront/internal/kv"
)

// ErrEventNotFound signals an attempt to save an event missing from the catalog.
var ErrEventNotFound = errors.New("event not found")

// Service coordinates a client's saved events. Entries are snapshots of the
// catalog event taken when it was added.
type Service interface {
	List(ctx context.Context, clientID string) ([]catalog.Event, error)
	Add(ctx context.Context, clientID, eventID string) ([]catalog.Event, error)
	Remove(ctx context.Context, clientID, eventID string) ([]catalog.Event, error)
	Contains(ctx context.Context, clientID, eventID string) (bool, error)
	Clear(ctx context.Context, clientID string) error
}

type service struct {
	store   kv.Store
	catalog *catalog.Catalog
}

// New constructs a wishlist Service
func New(store kv.Store, cat *catalog.Catalog) Service {
	return &service{store: store, catalog: cat}
}

func (s *service) List(ctx context.Context, clientID string) ([]catalog.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.load(ctx, clientID)
}

// Add saves eventID. Adding an event that is already saved is a no-op.
func (s *service) Add(ctx context.Context, clientID, eventID string) ([]catalog.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	event, ok := s.catalog.Event(eventID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrEventNotFound, eventID)
	}

	saved, err := s.load(ctx, clientID)
	if err != nil {
		return nil, err
	}
	if indexOf(saved, eventID) >= 0 {
		return saved, nil
	}

	saved = append(saved, event)
	if err := s.save(ctx, clientID, saved); err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *service) Remove(ctx context.Context, clientID, eventID string) ([]catalog.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	saved, err := s.load(ctx, clientID)
	if err != nil {
		return nil, err
	}
	i := indexOf(saved, eventID)
	if i < 0 {
		return saved, nil
	}

	saved = slices.Delete(saved, i, i+1)
	if err := s.save(ctx, clientID, saved); err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *service) Contains(ctx context.Context, clientID, eventID string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	saved, err := s.load(ctx, clientID)
	if err != nil {
		return false, err
	}
	return indexOf(saved, eventID) >= 0, nil
}

func (s *service) Clear(ctx context.Context, clientID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.save(ctx, clientID, []catalog.Event{})
}

func (s *service) load(ctx context.Context, clientID string) ([]catalog.Event, error) {
	saved, err := kv.LoadJSON[[]catalog.Event](ctx, kv.Namespace(s.store, clientID), kv.KeyWishlist)
	if err != nil {
		return nil, fmt.Errorf("load wishlist: %w", err)
	}
	if saved == nil {
		saved = []catalog.Event{}
	}
	return saved, nil
}

func (s *service) save(ctx context.Context, clientID string, saved []catalog.Event) error {
	if err := kv.PutJSON(ctx, kv.Namespace(s.store, clientID), kv.KeyWishlist, saved); err != nil {
		return fmt.Errorf("save wishlist: %w", err)
	}
	return nil
}

func indexOf(events []catalog.Event, id string) int {
	return slices.IndexFunc(events, func(e catalog.Event) bool { return e.ID == id })
}
