package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// PriceKind tags the variant held by a Price.
type PriceKind int

const (
	// PriceFixed is a single amount in currency units.
	PriceFixed PriceKind = iota
	// PriceRange is a display label such as "$80 - $350".
	PriceRange
)

// fallbackTierPrice is used for a tier bound when nothing numeric can be
// read from the label.
const fallbackTierPrice = 100

// Price is either a fixed amount or a range label. The label is kept verbatim
// because sorting derives its key from the raw text.
type Price struct {
	kind   PriceKind
	amount float64
	label  string
}

// Fixed returns a single-amount price.
func Fixed(amount float64) Price {
	return Price{kind: PriceFixed, amount: amount}
}

// Range returns a price backed by a label such as "$80 - $350".
func Range(label string) Price {
	return Price{kind: PriceRange, label: label}
}

func (p Price) Kind() PriceKind { return p.kind }

// Amount is the fixed amount; zero for ranges.
func (p Price) Amount() float64 { return p.amount }

// Label is the range text; empty for fixed prices.
func (p Price) Label() string { return p.label }

func (p Price) String() string {
	if p.kind == PriceRange {
		return p.label
	}
	return "$" + strconv.FormatFloat(p.amount, 'f', -1, 64)
}

// Normalized is the sort key for the price. A fixed amount is used as is. A
// label has every non-digit removed and the remaining digits read as one
// number, so "$80 - $350" becomes 80350. A label without digits is 0.
func (p Price) Normalized() float64 {
	if p.kind == PriceFixed {
		return p.amount
	}
	n, ok := parseDigits(digitsOnly(p.label))
	if !ok {
		return 0
	}
	return n
}

// Bounds returns the low and high ends used for ticket tiers. A label is split
// on '-' and each side is read after dropping non-digits. A single value is
// both bounds. A side with no digits falls back to 100.
func (p Price) Bounds() (low, high float64) {
	if p.kind == PriceFixed {
		return p.amount, p.amount
	}

	parts := strings.Split(p.label, "-")
	values := make([]float64, 0, len(parts))
	ok := make([]bool, 0, len(parts))
	for _, part := range parts {
		n, parsed := parseDigits(digitsOnly(part))
		values = append(values, n)
		ok = append(ok, parsed)
	}

	low = fallbackTierPrice
	if ok[0] {
		low = values[0]
	}
	switch {
	case len(values) > 1 && ok[1]:
		high = values[1]
	case ok[0]:
		high = values[0]
	default:
		high = fallbackTierPrice
	}
	return low, high
}

func (p Price) MarshalJSON() ([]byte, error) {
	if p.kind == PriceRange {
		return json.Marshal(p.label)
	}
	return json.Marshal(p.amount)
}

func (p *Price) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode price: %w", err)
	}
	switch v := raw.(type) {
	case float64:
		*p = Fixed(v)
	case string:
		*p = Range(v)
	default:
		return fmt.Errorf("price must be a number or a string, got %s", string(data))
	}
	return nil
}

// parseDigits reads a run of ASCII digits. A run too long for a float64 reads
// as +Inf rather than failing.
func parseDigits(digits string) (float64, bool) {
	if digits == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(digits, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return n, true
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
