package entity

import (
	"encoding/json"
	"fmt"

	"github.com/sangkips/kuittikone/internal/domain/enum"
	"github.com/shopspring/decimal"
)

// PromotionRule injects a receipt line when its condition holds. Threshold
// is used by amount_over rules and Card by card_type rules.
type PromotionRule struct {
	RuleID      string
	Description string
	Condition   enum.PromoCondition
	Threshold   decimal.Decimal
	Card        enum.CardType
	Action      enum.PromoAction
	ActionValue string
	Enabled     bool
}

// NewAmountOverRule fires when the subtotal is strictly greater than threshold
func NewAmountOverRule(id, description string, threshold decimal.Decimal, action enum.PromoAction, value string) PromotionRule {
	return PromotionRule{
		RuleID:      id,
		Description: description,
		Condition:   enum.PromoAmountOver,
		Threshold:   threshold,
		Action:      action,
		ActionValue: value,
		Enabled:     true,
	}
}

// NewCardTypeRule fires when the receipt is paid with card
func NewCardTypeRule(id, description string, card enum.CardType, action enum.PromoAction, value string) PromotionRule {
	return PromotionRule{
		RuleID:      id,
		Description: description,
		Condition:   enum.PromoCardType,
		Card:        card,
		Action:      action,
		ActionValue: value,
		Enabled:     true,
	}
}

// PromotionContext holds the transaction facts rules are evaluated against
type PromotionContext struct {
	Subtotal decimal.Decimal
	Card     *enum.CardType
}

// Matches reports whether the rule's condition holds in ctx. Disabled rules
// never match.
func (r PromotionRule) Matches(ctx PromotionContext) bool {
	if !r.Enabled {
		return false
	}
	switch r.Condition {
	case enum.PromoAmountOver:
		return ctx.Subtotal.GreaterThan(r.Threshold)
	case enum.PromoCardType:
		return ctx.Card != nil && *ctx.Card == r.Card
	}
	return false
}

// Line renders the action of a fired rule
func (r PromotionRule) Line() string {
	switch r.Action {
	case enum.PromoAddBonusCode:
		return "Bonuskoodi: " + r.ActionValue
	default:
		return r.ActionValue
	}
}

// EvaluatePromotions returns the lines of every matching rule, in rule order
func EvaluatePromotions(rules []PromotionRule, ctx PromotionContext) []string {
	var lines []string
	for _, r := range rules {
		if r.Matches(ctx) {
			lines = append(lines, r.Line())
		}
	}
	return lines
}

type promotionRuleJSON struct {
	RuleID         string              `json:"rule_id"`
	Description    string              `json:"description"`
	ConditionType  enum.PromoCondition `json:"condition_type"`
	ConditionValue json.RawMessage     `json:"condition_value"`
	ActionType     enum.PromoAction    `json:"action_type"`
	ActionValue    string              `json:"action_value"`
	Enabled        *bool               `json:"enabled"`
}

func (r PromotionRule) MarshalJSON() ([]byte, error) {
	var value json.RawMessage
	switch r.Condition {
	case enum.PromoCardType:
		v, err := json.Marshal(r.Card.String())
		if err != nil {
			return nil, err
		}
		value = v
	default:
		value = json.RawMessage(thresholdText(r.Threshold))
	}
	enabled := r.Enabled
	return json.Marshal(promotionRuleJSON{
		RuleID:         r.RuleID,
		Description:    r.Description,
		ConditionType:  r.Condition,
		ConditionValue: value,
		ActionType:     r.Action,
		ActionValue:    r.ActionValue,
		Enabled:        &enabled,
	})
}

// UnmarshalJSON checks that condition_value has the type its condition
// needs: a number for amount_over, a card tag for card_type.
func (r *PromotionRule) UnmarshalJSON(data []byte) error {
	var raw promotionRuleJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	rule := PromotionRule{
		RuleID:      raw.RuleID,
		Description: raw.Description,
		Condition:   raw.ConditionType,
		Action:      raw.ActionType,
		ActionValue: raw.ActionValue,
		Enabled:     raw.Enabled == nil || *raw.Enabled,
	}

	switch raw.ConditionType {
	case enum.PromoAmountOver:
		threshold, err := parseThreshold(raw.ConditionValue)
		if err != nil {
			return fmt.Errorf("rule %q: %w", raw.RuleID, err)
		}
		rule.Threshold = threshold
	case enum.PromoCardType:
		var tag string
		if err := json.Unmarshal(raw.ConditionValue, &tag); err != nil {
			return fmt.Errorf("rule %q: card_type condition needs a card tag", raw.RuleID)
		}
		card, err := enum.ParseCardType(tag)
		if err != nil {
			return fmt.Errorf("rule %q: %w", raw.RuleID, err)
		}
		rule.Card = card
	}

	*r = rule
	return nil
}

// thresholdText keeps the scale, so 50.00 reads back as 50.00
func thresholdText(d decimal.Decimal) string {
	if exp := d.Exponent(); exp < 0 {
		return d.StringFixed(-exp)
	}
	return d.String()
}

// parseThreshold accepts a JSON number or a numeric string
func parseThreshold(raw json.RawMessage) (decimal.Decimal, error) {
	var num json.Number
	if err := json.Unmarshal(raw, &num); err == nil && num != "" {
		return decimal.NewFromString(num.String())
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		if d, err := decimal.NewFromString(str); err == nil {
			return d, nil
		}
	}
	return decimal.Zero, fmt.Errorf("amount_over condition needs a number, got %s", string(raw))
}
