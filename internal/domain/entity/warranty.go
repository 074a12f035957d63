package entity

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	DefaultReturnDays = 14
	// warranty months are counted as 30 days, not calendar months
	daysPerWarrantyMonth = 30
	purchaseDateLayout   = "2006-01-02T15:04:05"
)

var purchaseDateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	purchaseDateLayout,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// WarrantyRecord tracks the warranty and return windows of one sold item
type WarrantyRecord struct {
	SerialNumber   string `json:"serial_number" validate:"required"`
	PurchaseDate   string `json:"purchase_date" validate:"required"`
	WarrantyMonths int    `json:"warranty_months" validate:"gte=0"`
	ProductName    string `json:"product_name"`
	ReturnDays     int    `json:"return_days" validate:"gte=0"`
	Notes          string `json:"notes"`
}

// NewWarrantyRecord stamps purchasedAt as a local ISO timestamp
func NewWarrantyRecord(serial, product string, purchasedAt time.Time, months int) *WarrantyRecord {
	return &WarrantyRecord{
		SerialNumber:   serial,
		PurchaseDate:   purchasedAt.Format(purchaseDateLayout),
		WarrantyMonths: months,
		ProductName:    product,
		ReturnDays:     DefaultReturnDays,
	}
}

// UnmarshalJSON defaults a missing return_days to 14
func (w *WarrantyRecord) UnmarshalJSON(data []byte) error {
	type alias WarrantyRecord
	a := alias{ReturnDays: DefaultReturnDays}
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*w = WarrantyRecord(a)
	return nil
}

// PurchaseTime parses PurchaseDate. Timestamps without a zone are local.
func (w *WarrantyRecord) PurchaseTime() (time.Time, bool) {
	s := strings.TrimSpace(w.PurchaseDate)
	for _, layout := range purchaseDateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsWarrantyValid reports whether now is before purchase + months×30 days.
// An unparseable purchase date is never valid.
func (w *WarrantyRecord) IsWarrantyValid(now time.Time) bool {
	purchased, ok := w.PurchaseTime()
	if !ok {
		return false
	}
	// calendar days, not 24h periods
	return now.Before(purchased.AddDate(0, 0, w.WarrantyMonths*daysPerWarrantyMonth))
}

// IsReturnValid reports whether now is before purchase + return days
func (w *WarrantyRecord) IsReturnValid(now time.Time) bool {
	purchased, ok := w.PurchaseTime()
	if !ok {
		return false
	}
	return now.Before(purchased.AddDate(0, 0, w.ReturnDays))
}

// Text renders the warranty block printed on receipts
func (w *WarrantyRecord) Text(now time.Time) string {
	lines := []string{
		"Sarjanumero: " + w.SerialNumber,
		"Tuote: " + w.ProductName,
		"Ostopvm: " + w.PurchaseDate,
		fmt.Sprintf("Takuu: %d kk", w.WarrantyMonths),
	}
	if w.IsWarrantyValid(now) {
		lines = append(lines, "✓ Takuu voimassa")
	} else {
		lines = append(lines, "✗ Takuu päättynyt")
	}
	if w.IsReturnValid(now) {
		lines = append(lines, fmt.Sprintf("✓ Palautusoikeus voimassa (%d pv)", w.ReturnDays))
	} else {
		lines = append(lines, "✗ Palautusoikeus päättynyt")
	}
	if w.Notes != "" {
		lines = append(lines, "Huom: "+w.Notes)
	}
	return strings.Join(lines, "\n")
}
