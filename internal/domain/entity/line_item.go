package entity

import (
	"strings"

	"github.com/sangkips/kuittikone/pkg/apperror"
	"github.com/shopspring/decimal"
)

// LineItem is one product row of a receipt
type LineItem struct {
	Name      string          `json:"name" validate:"required"`
	Quantity  int             `json:"quantity" validate:"gt=0"`
	UnitPrice decimal.Decimal `json:"price"`
}

// NewLineItem builds a validated line item
func NewLineItem(name string, quantity int, unitPrice decimal.Decimal) (LineItem, error) {
	item := LineItem{Name: strings.TrimSpace(name), Quantity: quantity, UnitPrice: unitPrice}
	if err := item.Validate(); err != nil {
		return LineItem{}, err
	}
	return item, nil
}

// Validate rejects blank names, non-positive quantities and negative prices
func (i LineItem) Validate() error {
	var fields []apperror.FieldError
	if strings.TrimSpace(i.Name) == "" {
		fields = append(fields, apperror.FieldError{Field: "name", Message: "is required"})
	}
	if i.Quantity <= 0 {
		fields = append(fields, apperror.FieldError{Field: "quantity", Message: "must be greater than 0"})
	}
	if i.UnitPrice.IsNegative() {
		fields = append(fields, apperror.FieldError{Field: "price", Message: "must not be negative"})
	}
	if len(fields) > 0 {
		return apperror.NewValidationError(fields)
	}
	return nil
}

// Total returns quantity × unit price
func (i LineItem) Total() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart collects accepted line items in insertion order
type Cart struct {
	items []LineItem
}

// NewCart adds every item, stopping at the first invalid one
func NewCart(items ...LineItem) (*Cart, error) {
	c := &Cart{}
	for _, item := range items {
		if err := c.Add(item); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Add appends item. An invalid item is rejected and the cart is unchanged.
func (c *Cart) Add(item LineItem) error {
	if err := item.Validate(); err != nil {
		return err
	}
	item.Name = strings.TrimSpace(item.Name)
	c.items = append(c.items, item)
	return nil
}

func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) Len() int {
	return len(c.items)
}

// Subtotal is the sum of all line totals
func (c *Cart) Subtotal() decimal.Decimal {
	return Subtotal(c.items)
}

// Subtotal sums the line totals of items
func Subtotal(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Total())
	}
	return sum
}
