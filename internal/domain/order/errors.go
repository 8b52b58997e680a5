package order

import "errors"

var (
	ErrInvalidQuantity  = errors.New("quantity must be greater than zero")
	ErrPriceUnavailable = errors.New("draft contains a product without an available price")
	ErrEmptyDraft       = errors.New("draft has no line items")
)
