package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is a composed receipt. It is not persisted; only a journal
// entry derived from it is.
type Receipt struct {
	Number     string          `json:"number"`
	PresetID   string          `json:"preset_id"`
	Template   string          `json:"template"`
	IssuedAt   time.Time       `json:"issued_at"`
	Items      []LineItem      `json:"items"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Tax        decimal.Decimal `json:"tax"`
	Total      decimal.Decimal `json:"total"`
	CardFee    decimal.Decimal `json:"card_fee"`
	PromoLines []string        `json:"promo_lines,omitempty"`
	Text       string          `json:"text"`
}

// HistoryEntry summarizes the receipt for the journal
func (r *Receipt) HistoryEntry() HistoryEntry {
	preview := []rune(r.Text)
	if len(preview) > PreviewLength {
		preview = preview[:PreviewLength]
	}
	return HistoryEntry{
		Timestamp:     r.IssuedAt.Format("2006-01-02T15:04:05"),
		ReceiptNumber: r.Number,
		PresetID:      r.PresetID,
		Template:      r.Template,
		Products:      append([]LineItem(nil), r.Items...),
		Total:         r.Total.InexactFloat64(),
		TextPreview:   string(preview),
	}
}
