package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/sangkips/kuittikone/internal/domain/entity"
	"github.com/sangkips/kuittikone/pkg/apperror"
	"github.com/sangkips/kuittikone/pkg/asciiart"
	"github.com/sangkips/kuittikone/pkg/fontengine"
	"github.com/sangkips/kuittikone/pkg/utils"
	"github.com/shopspring/decimal"
)

// WarrantyLookup finds the warranty record of a serial number
type WarrantyLookup func(serial string) (*entity.WarrantyRecord, bool)

// ReceiptComposer assembles receipt text from a profile, a cart and a
// payment. It holds no store state.
type ReceiptComposer struct {
	width     int
	now       func() time.Time
	newNumber func() string
}

// NewReceiptComposer creates a composer rendering rules width characters wide
func NewReceiptComposer(width int) *ReceiptComposer {
	if width <= 0 {
		width = entity.DefaultReceiptWidth
	}
	return &ReceiptComposer{
		width: width,
		now:   time.Now,
		newNumber: func() string {
			return utils.GenerateReceiptNo(utils.ReceiptPrefix)
		},
	}
}

// WithWidth returns a copy rendering width characters wide
func (c *ReceiptComposer) WithWidth(width int) *ReceiptComposer {
	cp := *c
	if width > 0 {
		cp.width = width
	}
	return &cp
}

// WithClock returns a copy that reads the composition time from now
func (c *ReceiptComposer) WithClock(now func() time.Time) *ReceiptComposer {
	cp := *c
	cp.now = now
	return &cp
}

// WithNumbers returns a copy that numbers receipts with next
func (c *ReceiptComposer) WithNumbers(next func() string) *ReceiptComposer {
	cp := *c
	cp.newNumber = next
	return &cp
}

// Compose renders the receipt. Sections follow a fixed order and each is
// gated by its layout toggle. The profile is only read.
func (c *ReceiptComposer) Compose(
	profile *entity.MerchantProfile,
	items []entity.LineItem,
	payment entity.PaymentContext,
	lookup WarrantyLookup,
) (*entity.Receipt, error) {
	if profile == nil {
		return nil, apperror.ErrNoActiveProfile
	}

	now := c.now()
	layout := profile.Layout
	rule := strings.Repeat("=", c.width)
	thin := strings.Repeat("-", c.width)

	subtotal := entity.Subtotal(items)
	tax := subtotal.Mul(decimal.NewFromFloat(profile.VATRate)).Round(2)
	total := subtotal.Add(tax)

	receipt := &entity.Receipt{
		Number:   c.newNumber(),
		PresetID: profile.PresetID,
		Template: profile.TemplateType.String(),
		IssuedAt: now,
		Items:    append([]entity.LineItem(nil), items...),
		Subtotal: subtotal,
		Tax:      tax,
		Total:    total,
		CardFee:  decimal.Zero,
	}

	var lines []string

	if layout.ShowLogo && profile.LogoBase64 != "" {
		lines = append(lines, asciiart.Render(profile.CompanyName, asciiart.StyleDouble))
	}

	if layout.ShowHeader {
		header := strings.Join([]string{
			profile.CompanyName,
			"Y-tunnus: " + profile.BusinessID,
			profile.Address,
			"Puh: " + profile.Phone,
			"Email: " + profile.Email,
		}, "\n")
		lines = append(lines, "", fontengine.Apply(header, layout.HeaderFont))
	}

	lines = append(lines, "\nPäivämäärä: "+now.Format("02.01.2006 15:04"), rule)

	for i := 0; i < layout.ExtraLinesBeforeProducts; i++ {
		lines = append(lines, "")
	}

	if layout.ShowProducts {
		lines = append(lines, "\nTUOTTEET:", thin)
		for i, item := range items {
			row := fmt.Sprintf("%d. %s\n   %d kpl x %s € = %s €",
				i+1, item.Name, item.Quantity, money(item.UnitPrice), money(item.Total()))
			lines = append(lines, fontengine.Apply(row, layout.ProductFont))
		}
	}

	if layout.ShowTotals {
		lines = append(lines, thin)
		if layout.ShowVATBreakdown {
			pct := decimal.NewFromFloat(profile.VATRate).Shift(2)
			lines = append(lines,
				"Välisumma (ilman ALV): "+money(subtotal)+" €",
				"ALV "+pct.String()+"%: "+money(tax)+" €",
			)
		}
		lines = append(lines, rule, "YHTEENSÄ: "+money(total)+" €", rule)

		lines = append(lines, "\nMaksutapa: "+payment.Method.Label())
		if payment.Card != nil {
			if card, ok := profile.Card(*payment.Card); ok && card.Enabled {
				lines = append(lines, "Korttityyppi: "+card.Name+" "+card.Icon)
				if card.FeePercentage > 0 {
					receipt.CardFee = card.Fee(total).Round(2)
					lines = append(lines, "Korttimaksu: "+money(receipt.CardFee)+" €")
				}
			}
		}
	}

	for i := 0; i < layout.ExtraLinesAfterTotals; i++ {
		lines = append(lines, "")
	}

	if layout.ShowWarranty && len(payment.Serials) > 0 {
		lines = append(lines, "\n"+rule, "TAKUUTIEDOT:", thin)
		for _, serial := range payment.Serials {
			if lookup == nil {
				break
			}
			if rec, ok := lookup(serial); ok {
				lines = append(lines, rec.Text(now), thin)
			}
		}
	}

	if layout.ShowPromo {
		promo := entity.EvaluatePromotions(profile.PromoRules, entity.PromotionContext{
			Subtotal: subtotal,
			Card:     payment.Card,
		})
		if len(promo) > 0 {
			receipt.PromoLines = promo
			lines = append(lines, "\n"+rule, "TARJOUKSET:")
			lines = append(lines, promo...)
		}
	}

	if layout.ShowFooter {
		lines = append(lines, "\n"+rule)
		var footer []string
		if profile.Slogan != "" {
			footer = append(footer, profile.Slogan)
		}
		footer = append(footer, profile.FooterText)
		lines = append(lines, fontengine.Apply(strings.Join(footer, "\n"), layout.FooterFont), "")
	}

	receipt.Text = strings.Join(lines, "\n")
	return receipt, nil
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
