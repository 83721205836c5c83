package orders

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"

	"ticketfront/internal/app/profiles"
	"ticketfront/internal/catalog"
	"ticketfront/internal/clock"
	"ticketfront/internal/kv"
)

var (
	// ErrInvalidCheckout indicates validation failure for checkout data.
	ErrInvalidCheckout = errors.New("invalid checkout")
	// ErrUnknownTier signals a tier id the event does not offer.
	ErrUnknownTier = errors.New("unknown ticket tier")
	// ErrEventNotFound signals a checkout for an event missing from the catalog.
	ErrEventNotFound = errors.New("event not found")
)

// Quantity limits offered on the event page.
const (
	MinQuantity = 1
	MaxQuantity = 10
)

// Status values stored on an order.
const (
	StatusUpcoming  = "upcoming"
	StatusPast      = "past"
	StatusCancelled = "cancelled"
)

// Tab selects which orders the profile page lists.
type Tab string

const (
	TabUpcoming Tab = "upcoming"
	TabPast     Tab = "past"
	TabAll      Tab = "all"
)

// ParseTab maps a query value to a Tab. Unknown values select TabUpcoming.
func ParseTab(s string) Tab {
	switch t := Tab(strings.ToLower(strings.TrimSpace(s))); t {
	case TabPast, TabAll:
		return t
	default:
		return TabUpcoming
	}
}

// Buyer is the checkout form. Card fields are checked for presence only and
// never stored.
type Buyer struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	CardNumber string `json:"cardNumber"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
	Zip        string `json:"zip,omitempty"`
}

// CheckoutInput is a purchase request.
type CheckoutInput struct {
	EventID  string `json:"eventId"`
	TierID   string `json:"tierId"`
	Quantity int    `json:"quantity"`
	Buyer    Buyer  `json:"buyer"`
}

// Order is a completed (simulated) purchase.
type Order struct {
	ID           string       `json:"id"`
	EventID      string       `json:"eventId"`
	EventName    string       `json:"eventName"`
	EventDate    catalog.Date `json:"eventDate"`
	TicketQty    int          `json:"ticketQty"`
	TicketType   string       `json:"ticketType"`
	PurchaseDate string       `json:"purchaseDate"`
	UnitPrice    float64      `json:"unitPrice"`
	Subtotal     float64      `json:"subtotal"`
	Fees         float64      `json:"fees"`
	Total        float64      `json:"total"`
	Status       string       `json:"status"`
}

// ProfileService creates a profile for first-time buyers.
type ProfileService interface {
	CreateIfMissing(ctx context.Context, clientID string, profile profiles.Profile) (bool, error)
}

// Service coordinates checkout and order history
type Service interface {
	Checkout(ctx context.Context, clientID string, input CheckoutInput) (Order, error)
	List(ctx context.Context, clientID string, tab Tab) ([]Order, error)
}

type service struct {
	store    kv.Store
	catalog  *catalog.Catalog
	clock    clock.Clock
	profiles ProfileService // Optional: seed a profile from the first checkout
	feeRate  float64
	newID    func() string
}

// New constructs an orders Service. feeRate is the service fee charged on the
// subtotal, e.g. 0.15.
func New(store kv.Store, cat *catalog.Catalog, clk clock.Clock, profileService ProfileService, feeRate float64) Service {
	return &service{
		store:    store,
		catalog:  cat,
		clock:    clk,
		profiles: profileService,
		feeRate:  feeRate,
		newID:    generateOrderID,
	}
}

func (s *service) Checkout(ctx context.Context, clientID string, input CheckoutInput) (Order, error) {
	if err := ctx.Err(); err != nil {
		return Order{}, err
	}

	event, ok := s.catalog.Event(input.EventID)
	if !ok {
		return Order{}, fmt.Errorf("%w: %s", ErrEventNotFound, input.EventID)
	}
	tier, ok := s.catalog.Tier(event.ID, input.TierID)
	if !ok {
		return Order{}, fmt.Errorf("%w: %q", ErrUnknownTier, input.TierID)
	}
	if input.Quantity < MinQuantity || input.Quantity > MaxQuantity {
		return Order{}, fmt.Errorf("%w: quantity must be between %d and %d", ErrInvalidCheckout, MinQuantity, MaxQuantity)
	}
	if err := validateBuyer(input.Buyer); err != nil {
		return Order{}, err
	}

	now := s.clock.Now()
	subtotal := tier.Price * float64(input.Quantity)
	order := Order{
		ID:           s.newID(),
		EventID:      event.ID,
		EventName:    event.Title,
		EventDate:    event.Date,
		TicketQty:    input.Quantity,
		TicketType:   tier.Name,
		PurchaseDate: now.Format(time.RFC3339),
		UnitPrice:    tier.Price,
		Subtotal:     subtotal,
		Fees:         math.Round(subtotal * s.feeRate),
		Total:        math.Round(subtotal * (1 + s.feeRate)),
		Status:       StatusUpcoming,
	}

	// Profile first: a failed checkout must not leave an order behind.
	if s.profiles != nil {
		buyer := input.Buyer
		_, err := s.profiles.CreateIfMissing(ctx, clientID, profiles.Profile{
			Name:  strings.TrimSpace(buyer.FirstName) + " " + strings.TrimSpace(buyer.LastName),
			Email: buyer.Email,
			Phone: buyer.Phone,
		})
		if err != nil {
			return Order{}, fmt.Errorf("create profile: %w", err)
		}
	}

	store := kv.Namespace(s.store, clientID)
	existing, err := kv.LoadJSON[[]Order](ctx, store, kv.KeyOrders)
	if err != nil {
		return Order{}, fmt.Errorf("load orders: %w", err)
	}
	if err := kv.PutJSON(ctx, store, kv.KeyOrders, append(existing, order)); err != nil {
		return Order{}, fmt.Errorf("save orders: %w", err)
	}

	return order, nil
}

// List returns the client's orders for tab in purchase order. An order is
// upcoming while its event date is after today.
func (s *service) List(ctx context.Context, clientID string, tab Tab) ([]Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	all, err := kv.LoadJSON[[]Order](ctx, kv.Namespace(s.store, clientID), kv.KeyOrders)
	if err != nil {
		return nil, fmt.Errorf("load orders: %w", err)
	}

	today := catalog.DateOf(clock.Today(s.clock))
	out := make([]Order, 0, len(all))
	for _, o := range all {
		upcoming := o.EventDate.After(today)
		switch {
		case tab == TabAll,
			tab == TabUpcoming && upcoming,
			tab == TabPast && !upcoming:
			out = append(out, o)
		}
	}
	return out, nil
}

func validateBuyer(b Buyer) error {
	required := []struct {
		field, value string
	}{
		{"firstName", b.FirstName},
		{"lastName", b.LastName},
		{"email", b.Email},
		{"cardNumber", b.CardNumber},
		{"expiry", b.Expiry},
		{"cvv", b.CVV},
	}
	var missing []string
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			missing = append(missing, r.field)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidCheckout, strings.Join(missing, ", "))
	}
	return nil
}

func generateOrderID() string {
	return fmt.Sprintf("ORD%d", rand.IntN(100000))
}
