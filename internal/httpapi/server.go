package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"ticketfront/internal/app/cities"
	"ticketfront/internal/app/events"
	"ticketfront/internal/app/orders"
	"ticketfront/internal/app/profiles"
	"ticketfront/internal/app/wishlist"
	"ticketfront/internal/catalog"
	"ticketfront/internal/kv"
	"ticketfront/internal/logging"
)

// EventService describes event browsing workflows.
type EventService interface {
	List(ctx context.Context, params catalog.Params) ([]catalog.Event, error)
	Featured(ctx context.Context) ([]catalog.Event, error)
	Categories(ctx context.Context) ([]catalog.CategoryCount, error)
	Detail(ctx context.Context, id string) (events.Detail, error)
}

// CityService describes city browsing workflows.
type CityService interface {
	List(ctx context.Context) ([]catalog.City, error)
	Search(ctx context.Context, term string) ([]catalog.City, error)
	Get(ctx context.Context, id string) (cities.View, error)
	Events(ctx context.Context, id string, params catalog.Params) ([]catalog.Event, error)
}

// OrderService coordinates checkout and order history.
type OrderService interface {
	Checkout(ctx context.Context, clientID string, input orders.CheckoutInput) (orders.Order, error)
	List(ctx context.Context, clientID string, tab orders.Tab) ([]orders.Order, error)
}

// WishlistService coordinates saved events.
type WishlistService interface {
	List(ctx context.Context, clientID string) ([]catalog.Event, error)
	Add(ctx context.Context, clientID, eventID string) ([]catalog.Event, error)
	Remove(ctx context.Context, clientID, eventID string) ([]catalog.Event, error)
	Contains(ctx context.Context, clientID, eventID string) (bool, error)
	Clear(ctx context.Context, clientID string) error
}

// ProfileService coordinates profile reads and edits.
type ProfileService interface {
	Get(ctx context.Context, clientID string) (profiles.Profile, error)
	Update(ctx context.Context, clientID string, profile profiles.Profile) (profiles.Profile, error)
}

// Server wires HTTP handlers to the underlying services.
type Server struct {
	events   EventService
	cities   CityService
	orders   OrderService
	wishlist WishlistService
	profiles ProfileService
}

// New configures a Server with the given services.
func New(
	events EventService,
	cities CityService,
	orders OrderService,
	wishlist WishlistService,
	profiles ProfileService,
) *Server {
	return &Server{
		events:   events,
		cities:   cities,
		orders:   orders,
		wishlist: wishlist,
		profiles: profiles,
	}
}

// Routes exposes the storefront API. Callers attach middleware with Use.
func (s *Server) Routes() *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods(http.MethodGet)

	// Full paths on the root router; subrouters would answer a wrong method with 404.
	router.HandleFunc("/api/v1/events", s.handleEvents).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/events/featured", s.handleFeatured).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/events/{id}", s.handleEvent).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/categories", s.handleCategories).Methods(http.MethodGet)

	router.HandleFunc("/api/v1/cities", s.handleCities).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/cities/{id}", s.handleCity).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/cities/{id}/events", s.handleCityEvents).Methods(http.MethodGet)

	router.HandleFunc("/api/v1/search", s.handleSearch).Methods(http.MethodGet)

	router.HandleFunc("/api/v1/checkout", s.handleCheckout).Methods(http.MethodPost)

	// Per-client state
	router.HandleFunc("/api/v1/me/orders", s.handleOrders).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/me/wishlist", s.handleWishlist).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/me/wishlist", s.handleWishlistAdd).Methods(http.MethodPost)
	router.HandleFunc("/api/v1/me/wishlist", s.handleWishlistClear).Methods(http.MethodDelete)
	router.HandleFunc("/api/v1/me/wishlist/{eventId}", s.handleWishlistContains).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/me/wishlist/{eventId}", s.handleWishlistRemove).Methods(http.MethodDelete)
	router.HandleFunc("/api/v1/me/profile", s.handleProfile).Methods(http.MethodGet)
	router.HandleFunc("/api/v1/me/profile", s.handleProfileUpdate).Methods(http.MethodPut)

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "not found"})
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed"})
	})

	return router
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// writeServiceError maps domain errors onto HTTP statuses.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, events.ErrEventNotFound),
		errors.Is(err, cities.ErrCityNotFound),
		errors.Is(err, wishlist.ErrEventNotFound),
		errors.Is(err, orders.ErrEventNotFound),
		errors.Is(err, profiles.ErrProfileNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: err.Error()})
	case errors.Is(err, orders.ErrInvalidCheckout),
		errors.Is(err, orders.ErrUnknownTier),
		errors.Is(err, profiles.ErrInvalidProfile):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, context.Canceled):
		// client went away; nothing useful to write
	default:
		logging.WithContext(r.Context()).Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// clientID returns the namespace resolved by the client middleware.
func clientID(r *http.Request) string {
	if id := logging.ClientID(r.Context()); id != "" {
		return id
	}
	return kv.AnonymousClient
}

// listParams reads listing filters. Labels and slugs are both accepted;
// unknown values fall back to the default option.
func listParams(r *http.Request) catalog.Params {
	q := r.URL.Query()
	category, _ := catalog.ParseCategory(q.Get("category"))
	dateFilter, _ := catalog.ParseDateFilter(q.Get("date"))
	sortOption, _ := catalog.ParseSortOption(q.Get("sort"))
	return catalog.Params{
		Category:   category,
		DateFilter: dateFilter,
		Sort:       sortOption,
		CityID:     q.Get("city"),
		SearchTerm: q.Get("q"),
	}
}
