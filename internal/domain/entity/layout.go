package entity

import (
	"encoding/json"

	"github.com/sangkips/kuittikone/internal/domain/enum"
	"github.com/sangkips/kuittikone/pkg/fontengine"
)

// Layout toggles receipt sections and picks per-section fonts
type Layout struct {
	ShowLogo                 bool             `json:"show_logo"`
	ShowHeader               bool             `json:"show_header"`
	ShowProducts             bool             `json:"show_products"`
	ShowTotals               bool             `json:"show_totals"`
	ShowVATBreakdown         bool             `json:"show_vat_breakdown"`
	ShowFooter               bool             `json:"show_footer"`
	ShowWarranty             bool             `json:"show_warranty"`
	ShowPromo                bool             `json:"show_promo"`
	ExtraLinesBeforeProducts int              `json:"extra_lines_before_products" validate:"gte=0"`
	ExtraLinesAfterTotals    int              `json:"extra_lines_after_totals" validate:"gte=0"`
	HeaderFont               fontengine.Style `json:"header_font"`
	ProductFont              fontengine.Style `json:"product_font"`
	FooterFont               fontengine.Style `json:"footer_font"`
}

// DefaultLayout shows every section except warranty, in normal font
func DefaultLayout() Layout {
	return Layout{
		ShowLogo:         true,
		ShowHeader:       true,
		ShowProducts:     true,
		ShowTotals:       true,
		ShowVATBreakdown: true,
		ShowFooter:       true,
		ShowWarranty:     false,
		ShowPromo:        true,
		HeaderFont:       fontengine.Normal,
		ProductFont:      fontengine.Normal,
		FooterFont:       fontengine.Normal,
	}
}

// DefaultLayoutFor returns the starting layout of a template family
func DefaultLayoutFor(t enum.TemplateType) Layout {
	l := DefaultLayout()
	switch t {
	case enum.TemplateMinimal:
		l.ShowVATBreakdown = false
	case enum.TemplateCompact:
		l.ShowLogo = false
		l.ShowPromo = false
	case enum.TemplatePromo:
		l.ShowPromo = true
		l.ExtraLinesAfterTotals = 1
		l.HeaderFont = fontengine.BoldBig
	case enum.TemplateLegalHeavy:
		l.ShowWarranty = true
		l.ShowVATBreakdown = true
	case enum.TemplateVATBreakdown:
		l.ShowVATBreakdown = true
		l.ShowPromo = false
	}
	return l
}

// UnmarshalJSON keeps defaults for keys missing from data
func (l *Layout) UnmarshalJSON(data []byte) error {
	type alias Layout
	a := alias(DefaultLayout())
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*l = Layout(a)
	return nil
}
