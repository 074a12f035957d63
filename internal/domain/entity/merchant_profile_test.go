package entity

import (
	"encoding/json"
	"testing"

	"github.com/sangkips/kuittikone/internal/domain/enum"
	"github.com/sangkips/kuittikone/pkg/apperror"
	"github.com/sangkips/kuittikone/pkg/fontengine"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMerchantProfile_Defaults(t *testing.T) {
	p := NewMerchantProfile("shop", "Shop Oy", enum.TemplateCorporate)

	assert.Equal(t, DefaultLayout(), p.Layout)
	assert.False(t, p.Layout.ShowWarranty)
	assert.Equal(t, DefaultFooterText, p.FooterText)
	assert.Equal(t, 0.24, p.VATRate)
	assert.True(t, p.Enabled)
	assert.Empty(t, p.PromoRules)

	require.Len(t, p.PaymentPresets, 3)
	assert.Equal(t, enum.CardTypeVisa, p.PaymentPresets[0].CardType)
	assert.Equal(t, enum.CardTypeMasterCard, p.PaymentPresets[1].CardType)
	assert.Equal(t, enum.CardTypeAmex, p.PaymentPresets[2].CardType)
	assert.Equal(t, 1.5, p.PaymentPresets[2].FeePercentage)
}

func TestDefaultLayoutFor(t *testing.T) {
	assert.False(t, DefaultLayoutFor(enum.TemplateMinimal).ShowVATBreakdown)
	assert.False(t, DefaultLayoutFor(enum.TemplateCompact).ShowLogo)
	assert.True(t, DefaultLayoutFor(enum.TemplateLegalHeavy).ShowWarranty)
	assert.Equal(t, fontengine.BoldBig, DefaultLayoutFor(enum.TemplatePromo).HeaderFont)
	assert.Equal(t, DefaultLayout(), DefaultLayoutFor(enum.TemplateCorporate))
}

func TestMerchantProfile_RoundTrip(t *testing.T) {
	p := NewMerchantProfile("hrk", "Harjun Raskaskone Oy", enum.TemplatePromo)
	p.BusinessID = "FI12345678"
	p.Email = "info@hrk.fi"
	p.Layout.ProductFont = fontengine.Block
	p.Layout.ExtraLinesBeforeProducts = 2
	p.PaymentPresets = append(p.PaymentPresets, PaymentCard{CardType: enum.CardTypeDebit, Enabled: false, Name: "Debit", Icon: "🏧"})
	p.PromoRules = []PromotionRule{
		NewAmountOverRule("promo1", "Over 50", decimal.NewFromInt(50), enum.PromoAddLine, "🎁"),
		NewCardTypeRule("promo2", "Visa", enum.CardTypeVisa, enum.PromoAddBonusCode, "VISA10"),
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "promo", raw["template_type"])
	assert.Equal(t, "block", raw["layout"].(map[string]interface{})["product_font"])
	assert.Equal(t, "debit", raw["payment_presets"].([]interface{})[3].(map[string]interface{})["card_type"])

	var back MerchantProfile
	require.NoError(t, json.Unmarshal(data, &back))

	// decimals compare by value
	for i := range back.PromoRules {
		assert.True(t, p.PromoRules[i].Threshold.Equal(back.PromoRules[i].Threshold))
		back.PromoRules[i].Threshold = p.PromoRules[i].Threshold
	}
	assert.Equal(t, *p, back)
}

func TestMerchantProfile_UnmarshalDefaults(t *testing.T) {
	var p MerchantProfile
	require.NoError(t, json.Unmarshal([]byte(`{"preset_id":"a","company_name":"A","layout":{"show_logo":false}}`), &p))

	assert.False(t, p.Layout.ShowLogo)
	assert.True(t, p.Layout.ShowHeader)
	assert.Len(t, p.PaymentPresets, 3)
	assert.NotNil(t, p.PromoRules)
	assert.Equal(t, 0.24, p.VATRate)
	assert.Equal(t, enum.TemplateCorporate, p.TemplateType)
	assert.True(t, p.Enabled)

	require.NoError(t, json.Unmarshal([]byte(`{"preset_id":"b","company_name":"B","payment_presets":[],"layout":null}`), &p))
	assert.Empty(t, p.PaymentPresets)
	assert.NotNil(t, p.PaymentPresets)
	assert.Equal(t, DefaultLayout(), p.Layout)

	assert.Error(t, json.Unmarshal([]byte(`{"preset_id":"c","template_type":"gothic"}`), &p))
}

func TestMerchantProfile_Validate(t *testing.T) {
	p := NewMerchantProfile("shop", "Shop", enum.TemplateMinimal)
	require.NoError(t, p.Validate())

	bad := p.Clone()
	bad.VATRate = 1
	assert.True(t, apperror.IsValidation(bad.Validate()))

	bad = p.Clone()
	bad.CompanyName = ""
	err := bad.Validate()
	require.Error(t, err)
	assert.Equal(t, "company_name", apperror.GetAppError(err).Errors[0].Field)

	bad = p.Clone()
	bad.PaymentPresets[0].FeePercentage = -1
	assert.True(t, apperror.IsValidation(bad.Validate()))

	bad = p.Clone()
	bad.Layout.ExtraLinesAfterTotals = -1
	assert.True(t, apperror.IsValidation(bad.Validate()))

	bad = p.Clone()
	bad.PromoRules = []PromotionRule{
		NewAmountOverRule("dup", "", decimal.Zero, enum.PromoAddLine, "a"),
		NewAmountOverRule("dup", "", decimal.Zero, enum.PromoAddLine, "b"),
	}
	assert.True(t, apperror.IsValidation(bad.Validate()))
}

func TestMerchantProfile_CloneIsDeep(t *testing.T) {
	p := NewMerchantProfile("shop", "Shop", enum.TemplateCorporate)
	c := p.Clone()
	c.PaymentPresets[0].Name = "changed"
	c.Layout.ShowLogo = false

	assert.Equal(t, "Visa", p.PaymentPresets[0].Name)
	assert.True(t, p.Layout.ShowLogo)
}

func TestMerchantProfile_Sanitize(t *testing.T) {
	p := NewMerchantProfile("shop", "Sh\x07op", enum.TemplateCorporate)
	p.FooterText = "Kiitos!\x00\nTervetuloa"
	p.Sanitize()

	assert.Equal(t, "Shop", p.CompanyName)
	assert.Equal(t, "Kiitos!\nTervetuloa", p.FooterText)
}

func TestPaymentCard_Fee(t *testing.T) {
	card := PaymentCard{CardType: enum.CardTypeAmex, FeePercentage: 2.5}
	assert.Equal(t, "1.86", card.Fee(decimal.RequireFromString("74.40")).StringFixed(2))

	var c PaymentCard
	require.NoError(t, json.Unmarshal([]byte(`{"name":"X"}`), &c))
	assert.True(t, c.Enabled)
	assert.Equal(t, enum.CardTypeUnknown, c.CardType)
}
