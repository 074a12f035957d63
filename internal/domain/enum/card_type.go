package enum

import (
	"encoding/json"
	"fmt"
)

// CardType is the brand of a payment card
type CardType int

const (
	CardTypeUnknown    CardType = 0
	CardTypeVisa       CardType = 1
	CardTypeMasterCard CardType = 2
	CardTypeAmex       CardType = 3
	CardTypeDebit      CardType = 4
)

var cardTypeNames = [...]string{"unknown", "visa", "mastercard", "amex", "debit"}

func (c CardType) String() string {
	if int(c) < 0 || int(c) >= len(cardTypeNames) {
		return "unknown"
	}
	return cardTypeNames[c]
}

// ParseCardType maps a lowercase tag to a CardType
func ParseCardType(tag string) (CardType, error) {
	i, err := lookup(cardTypeNames[:], tag, "card type")
	return CardType(i), err
}

func (c CardType) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *CardType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseCardType(str)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// lookup returns the index of tag in names
func lookup(names []string, tag, kind string) (int, error) {
	for i, n := range names {
		if n == tag {
			return i, nil
		}
	}
	return 0, fmt.Errorf("unknown %s %q", kind, tag)
}
