package request

import (
	"github.com/sangkips/kuittikone/internal/domain/entity"
	"github.com/sangkips/kuittikone/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// LineItemRequest is one cart row
type LineItemRequest struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// PaymentRequest describes how the receipt is paid
type PaymentRequest struct {
	Method  string   `json:"method"`
	Card    string   `json:"card"`
	Serials []string `json:"serials"`
}

// IssueReceiptRequest represents a compose receipt request. An empty
// preset_id uses the active profile.
type IssueReceiptRequest struct {
	PresetID string            `json:"preset_id"`
	Items    []LineItemRequest `json:"items" binding:"required,min=1"`
	Payment  PaymentRequest    `json:"payment"`
	Print    bool              `json:"print"`
}

// LineItems converts the cart rows. Rows are validated when added to a cart.
func (r *IssueReceiptRequest) LineItems() []entity.LineItem {
	items := make([]entity.LineItem, len(r.Items))
	for i, it := range r.Items {
		items[i] = entity.LineItem{Name: it.Name, Quantity: it.Quantity, UnitPrice: it.Price}
	}
	return items
}

// PaymentContext parses the payment tags. An empty method means card.
func (r *IssueReceiptRequest) PaymentContext() (entity.PaymentContext, error) {
	pc := entity.PaymentContext{Method: enum.PaymentCard, Serials: r.Payment.Serials}
	if r.Payment.Method != "" {
		method, err := enum.ParsePaymentMethod(r.Payment.Method)
		if err != nil {
			return pc, err
		}
		pc.Method = method
	}
	if r.Payment.Card != "" {
		card, err := enum.ParseCardType(r.Payment.Card)
		if err != nil {
			return pc, err
		}
		pc.Card = &card
	}
	return pc, nil
}
