package enum

import (
	"encoding/json"
	"strings"
)

// PaymentMethod is how a receipt was paid
type PaymentMethod int

const (
	PaymentCard         PaymentMethod = 0
	PaymentCash         PaymentMethod = 1
	PaymentInvoice      PaymentMethod = 2
	PaymentMobile       PaymentMethod = 3
	PaymentBankTransfer PaymentMethod = 4
)

var paymentMethodNames = [...]string{"card", "cash", "invoice", "mobile", "bank_transfer"}

func (p PaymentMethod) String() string {
	if int(p) < 0 || int(p) >= len(paymentMethodNames) {
		return "card"
	}
	return paymentMethodNames[p]
}

// Label is the upper-cased tag printed on receipts
func (p PaymentMethod) Label() string {
	return strings.ToUpper(p.String())
}

// ParsePaymentMethod maps a lowercase tag to a PaymentMethod
func ParsePaymentMethod(tag string) (PaymentMethod, error) {
	i, err := lookup(paymentMethodNames[:], tag, "payment method")
	return PaymentMethod(i), err
}

func (p PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParsePaymentMethod(str)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
