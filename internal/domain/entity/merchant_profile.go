package entity

import (
	"encoding/json"

	"github.com/sangkips/kuittikone/internal/domain/enum"
	"github.com/sangkips/kuittikone/pkg/apperror"
	"github.com/sangkips/kuittikone/pkg/utils"
)

const (
	DefaultFooterText = "Kiitos ostoksesta!"
	DefaultVATRate    = 0.24
)

// MerchantProfile is a merchant's complete receipt configuration
type MerchantProfile struct {
	PresetID       string            `json:"preset_id" validate:"required"`
	CompanyName    string            `json:"company_name" validate:"required"`
	BusinessID     string            `json:"business_id"`
	Address        string            `json:"address"`
	Phone          string            `json:"phone"`
	Email          string            `json:"email" validate:"omitempty,email"`
	LogoBase64     string            `json:"logo_base64"`
	TemplateType   enum.TemplateType `json:"template_type"`
	Layout         Layout            `json:"layout"`
	PaymentPresets []PaymentCard     `json:"payment_presets" validate:"dive"`
	FooterText     string            `json:"footer_text"`
	Slogan         string            `json:"slogan"`
	PromoRules     []PromotionRule   `json:"promo_rules"`
	VATRate        float64           `json:"vat_rate" validate:"gte=0,lt=1"`
	Enabled        bool              `json:"enabled"`
}

// NewMerchantProfile returns a profile with the default layout of its
// template, the default cards, no promotion rules and the default VAT rate
func NewMerchantProfile(id, companyName string, template enum.TemplateType) *MerchantProfile {
	return &MerchantProfile{
		PresetID:       id,
		CompanyName:    companyName,
		TemplateType:   template,
		Layout:         DefaultLayoutFor(template),
		PaymentPresets: DefaultPaymentCards(),
		FooterText:     DefaultFooterText,
		PromoRules:     []PromotionRule{},
		VATRate:        DefaultVATRate,
		Enabled:        true,
	}
}

// UnmarshalJSON fills missing keys with the defaults of NewMerchantProfile.
// A null payment_presets gets the default cards; an empty list stays empty.
func (p *MerchantProfile) UnmarshalJSON(data []byte) error {
	type alias MerchantProfile
	a := alias(*NewMerchantProfile("", "", enum.TemplateCorporate))
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	if a.PaymentPresets == nil {
		a.PaymentPresets = DefaultPaymentCards()
	}
	if a.PromoRules == nil {
		a.PromoRules = []PromotionRule{}
	}
	*p = MerchantProfile(a)
	return nil
}

// Validate checks field constraints and that rule ids are unique
func (p *MerchantProfile) Validate() error {
	if err := apperror.ValidateStruct(p); err != nil {
		return err
	}
	seen := make(map[string]bool, len(p.PromoRules))
	for _, r := range p.PromoRules {
		if r.RuleID == "" {
			return apperror.NewFieldError("promo_rules.rule_id", "is required")
		}
		if seen[r.RuleID] {
			return apperror.NewFieldError("promo_rules.rule_id", "duplicate rule id "+r.RuleID)
		}
		seen[r.RuleID] = true
	}
	return nil
}

// Sanitize strips control characters from free-text fields
func (p *MerchantProfile) Sanitize() {
	p.CompanyName = utils.StripControl(p.CompanyName)
	p.Address = utils.StripControl(p.Address)
	p.LogoBase64 = utils.StripControl(p.LogoBase64)
	p.FooterText = utils.StripControl(p.FooterText)
	p.Slogan = utils.StripControl(p.Slogan)
}

// Card returns the payment preset for cardType, if configured
func (p *MerchantProfile) Card(cardType enum.CardType) (PaymentCard, bool) {
	for _, c := range p.PaymentPresets {
		if c.CardType == cardType {
			return c, true
		}
	}
	return PaymentCard{}, false
}

// Clone returns a deep copy
func (p *MerchantProfile) Clone() *MerchantProfile {
	if p == nil {
		return nil
	}
	c := *p
	c.PaymentPresets = append([]PaymentCard{}, p.PaymentPresets...)
	c.PromoRules = append([]PromotionRule{}, p.PromoRules...)
	return &c
}
