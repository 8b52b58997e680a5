package order

import (
	"encoding/json"
	"time"
)

// orderDateLayout matches what the API's existing consumers send,
// millisecond ISO-8601 in UTC.
const orderDateLayout = "2006-01-02T15:04:05.000Z"

// Submission is the exact wire shape of POST /orders.
type Submission struct {
	Customer    SubmissionCustomer `json:"customer"`
	Products    []SubmissionItem   `json:"products"`
	TotalAmount string             `json:"totalAmount"`
	OrderDate   string             `json:"order_date"`
}

type SubmissionCustomer struct {
	Name  string `json:"name"`
	CPF   string `json:"cpf"`
	Email string `json:"email"`
}

// SubmissionItem carries the price as a bare JSON number.
type SubmissionItem struct {
	ProductID   int64       `json:"product_id"`
	ProductName string      `json:"product_name"`
	Price       json.Number `json:"price"`
	Quantity    int         `json:"quantity"`
}

// Confirmation is the success response of POST /orders.
type Confirmation struct {
	OrderID int64 `json:"order_id"`
}

// BuildSubmission turns the draft into the wire payload. The total is
// recomputed here from the draft, independently of any rendered value.
// An empty draft or an unavailable price refuses to build.
func BuildSubmission(d *Draft, at time.Time) (Submission, error) {
	if d.Empty() {
		return Submission{}, ErrEmptyDraft
	}

	total, err := d.Total()
	if err != nil {
		return Submission{}, err
	}

	items := d.Items()
	products := make([]SubmissionItem, 0, len(items))
	for _, item := range items {
		products = append(products, SubmissionItem{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       json.Number(item.Price.Amount().String()),
			Quantity:    item.Quantity,
		})
	}

	customer := d.Customer()
	return Submission{
		Customer: SubmissionCustomer{
			Name:  customer.Name,
			CPF:   customer.CPF,
			Email: customer.Email,
		},
		Products:    products,
		TotalAmount: total.StringFixed(2),
		OrderDate:   at.UTC().Format(orderDateLayout),
	}, nil
}
