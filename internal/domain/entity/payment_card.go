package entity

import (
	"encoding/json"

	"github.com/sangkips/kuittikone/internal/domain/enum"
	"github.com/shopspring/decimal"
)

const cardIcon = "💳"

// PaymentCard is a card brand accepted by a merchant, with its surcharge
type PaymentCard struct {
	CardType      enum.CardType `json:"card_type"`
	Enabled       bool          `json:"enabled"`
	Name          string        `json:"name" validate:"required"`
	FeePercentage float64       `json:"fee_percentage" validate:"gte=0,lte=100"`
	Description   string        `json:"description"`
	Icon          string        `json:"icon"`
}

// DefaultPaymentCards are the cards a new profile accepts
func DefaultPaymentCards() []PaymentCard {
	return []PaymentCard{
		{CardType: enum.CardTypeVisa, Enabled: true, Name: "Visa", FeePercentage: 0, Description: "Visa debit/credit", Icon: cardIcon},
		{CardType: enum.CardTypeMasterCard, Enabled: true, Name: "MasterCard", FeePercentage: 0, Description: "MasterCard debit/credit", Icon: cardIcon},
		{CardType: enum.CardTypeAmex, Enabled: true, Name: "American Express", FeePercentage: 1.5, Description: "American Express", Icon: cardIcon},
	}
}

// Fee returns the surcharge on total, total × fee% / 100
func (c PaymentCard) Fee(total decimal.Decimal) decimal.Decimal {
	return total.Mul(decimal.NewFromFloat(c.FeePercentage)).Div(decimal.NewFromInt(100))
}

// UnmarshalJSON treats a missing enabled flag as true
func (c *PaymentCard) UnmarshalJSON(data []byte) error {
	type alias PaymentCard
	a := alias{CardType: enum.CardTypeUnknown, Enabled: true}
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*c = PaymentCard(a)
	return nil
}
