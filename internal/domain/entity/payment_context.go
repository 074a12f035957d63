package entity

import "github.com/sangkips/kuittikone/internal/domain/enum"

// PaymentContext describes how a receipt is paid and which serial numbers
// get a warranty block
type PaymentContext struct {
	Method  enum.PaymentMethod `json:"method"`
	Card    *enum.CardType     `json:"card,omitempty"`
	Serials []string           `json:"serials,omitempty"`
}
