package order

import (
	"github.com/shopspring/decimal"

	"storefront/internal/domain/catalog"
)

// Customer holds the buyer details entered while the draft is open.
type Customer struct {
	Name  string
	CPF   string
	Email string
}

// LineItem is one product-and-quantity pairing within a draft. Name and
// price are captured when the product is added; later catalog changes
// never touch an existing line.
type LineItem struct {
	ProductID   int64
	ProductName string
	Price       catalog.Price
	Quantity    int
}

// Draft is the in-progress, unsubmitted order. It is a plain owned
// value with an explicit lifecycle (create, mutate, reset); callers that
// share one draft across goroutines serialize access themselves.
type Draft struct {
	customer Customer
	items    []LineItem
}

func NewDraft() *Draft {
	return &Draft{}
}

// Add upserts a line item for the product. A product already in the
// draft gains qty on its existing line, so the draft never holds two
// lines for the same product id.
func (d *Draft) Add(p catalog.Product, qty int) error {
	if qty <= 0 {
		return ErrInvalidQuantity
	}

	for i := range d.items {
		if d.items[i].ProductID == p.ID {
			d.items[i].Quantity += qty
			return nil
		}
	}

	d.items = append(d.items, LineItem{
		ProductID:   p.ID,
		ProductName: p.Name,
		Price:       p.Price,
		Quantity:    qty,
	})
	return nil
}

// Remove drops the line item for the product id. Removing an absent
// product is a silent no-op.
func (d *Draft) Remove(productID int64) {
	for i := range d.items {
		if d.items[i].ProductID == productID {
			d.items = append(d.items[:i], d.items[i+1:]...)
			return
		}
	}
}

// Total sums price*quantity over all lines with no intermediate
// rounding. A line whose price is unavailable makes the whole total
// unavailable, callers surface that instead of a bogus number.
func (d *Draft) Total() (decimal.Decimal, error) {
	total := decimal.Zero
	for _, item := range d.items {
		if !item.Price.Available() {
			return decimal.Zero, ErrPriceUnavailable
		}
		total = total.Add(item.Price.Amount().Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total, nil
}

// Items returns a copy, mutating the result does not touch the draft.
func (d *Draft) Items() []LineItem {
	items := make([]LineItem, len(d.items))
	copy(items, d.items)
	return items
}

func (d *Draft) Customer() Customer {
	return d.customer
}

func (d *Draft) SetName(name string) {
	d.customer.Name = name
}

func (d *Draft) SetCPF(cpf string) {
	d.customer.CPF = cpf
}

func (d *Draft) SetEmail(email string) {
	d.customer.Email = email
}

func (d *Draft) Empty() bool {
	return len(d.items) == 0
}

// Reset returns the draft to its initial state after a successful
// submission.
func (d *Draft) Reset() {
	d.customer = Customer{}
	d.items = nil
}

// Summary is an immutable snapshot of the draft for rendering. The view
// layer consumes it and never reaches back into the draft.
type Summary struct {
	Customer       Customer
	Items          []LineItem
	Total          decimal.Decimal
	TotalAvailable bool
}

func (d *Draft) Summary() Summary {
	s := Summary{
		Customer: d.customer,
		Items:    d.Items(),
	}
	total, err := d.Total()
	if err == nil {
		s.Total = total
		s.TotalAvailable = true
	}
	return s
}
