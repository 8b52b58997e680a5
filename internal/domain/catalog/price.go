package catalog

import (
	"bytes"
	"strings"

	"github.com/shopspring/decimal"
)

// Price is the amount a product sells for. The API transmits it as a
// JSON number or a string; anything unparseable becomes an unavailable
// price instead of a decode error, so the product stays selectable.
type Price struct {
	amount    decimal.Decimal
	available bool
}

func NewPrice(amount decimal.Decimal) Price {
	return Price{amount: amount, available: true}
}

// ParsePrice never fails: bad input yields an unavailable price.
func ParsePrice(raw string) Price {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return Price{}
	}
	return Price{amount: amount, available: true}
}

func (p Price) Available() bool {
	return p.available
}

// Amount is zero when the price is unavailable.
func (p Price) Amount() decimal.Decimal {
	return p.amount
}

// Display renders the price for the user, two decimal places with a
// currency prefix, or the literal unavailable label.
func (p Price) Display() string {
	if !p.available {
		return "Price not available"
	}
	return "$" + p.amount.StringFixed(2)
}

func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*p = Price{}
		return nil
	}

	raw := string(data)
	if raw[0] == '"' {
		raw = strings.Trim(raw, `"`)
	}

	*p = ParsePrice(raw)
	return nil
}
