package request

import (
	"time"

	"github.com/sangkips/kuittikone/internal/domain/entity"
)

// PutWarrantyRequest represents a register or replace warranty request.
// purchase_date defaults to now and return_days to 14.
type PutWarrantyRequest struct {
	ProductName    string `json:"product_name"`
	PurchaseDate   string `json:"purchase_date"`
	WarrantyMonths int    `json:"warranty_months" binding:"gte=0"`
	ReturnDays     *int   `json:"return_days" binding:"omitempty,gte=0"`
	Notes          string `json:"notes"`
}

// Record builds the warranty record for serial
func (r *PutWarrantyRequest) Record(serial string, now time.Time) *entity.WarrantyRecord {
	rec := entity.NewWarrantyRecord(serial, r.ProductName, now, r.WarrantyMonths)
	if r.PurchaseDate != "" {
		rec.PurchaseDate = r.PurchaseDate
	}
	if r.ReturnDays != nil {
		rec.ReturnDays = *r.ReturnDays
	}
	rec.Notes = r.Notes
	return rec
}
