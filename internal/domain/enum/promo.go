package enum

import "encoding/json"

// PromoCondition is the kind of fact a promotion rule tests
type PromoCondition int

const (
	PromoAmountOver PromoCondition = 0
	PromoCardType   PromoCondition = 1
)

var promoConditionNames = [...]string{"amount_over", "card_type"}

func (c PromoCondition) String() string {
	if int(c) < 0 || int(c) >= len(promoConditionNames) {
		return "amount_over"
	}
	return promoConditionNames[c]
}

// ParsePromoCondition maps a lowercase tag to a PromoCondition
func ParsePromoCondition(tag string) (PromoCondition, error) {
	i, err := lookup(promoConditionNames[:], tag, "promo condition")
	return PromoCondition(i), err
}

func (c PromoCondition) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *PromoCondition) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParsePromoCondition(str)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// PromoAction is what a fired promotion rule adds to the receipt
type PromoAction int

const (
	PromoAddLine      PromoAction = 0
	PromoAddBonusCode PromoAction = 1
)

var promoActionNames = [...]string{"add_line", "add_bonus_code"}

func (a PromoAction) String() string {
	if int(a) < 0 || int(a) >= len(promoActionNames) {
		return "add_line"
	}
	return promoActionNames[a]
}

// ParsePromoAction maps a lowercase tag to a PromoAction
func ParsePromoAction(tag string) (PromoAction, error) {
	i, err := lookup(promoActionNames[:], tag, "promo action")
	return PromoAction(i), err
}

func (a PromoAction) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *PromoAction) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParsePromoAction(str)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
