package service

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/sangkips/kuittikone/internal/domain/entity"
	"github.com/sangkips/kuittikone/pkg/apperror"
)

// WarrantyService is the serial number ledger of sold items
type WarrantyService struct {
	store *DocumentStore
}

// NewWarrantyService creates a new warranty service
func NewWarrantyService(store *DocumentStore) *WarrantyService {
	return &WarrantyService{store: store}
}

// Put stores rec under its serial number, replacing any earlier record
func (s *WarrantyService) Put(ctx context.Context, rec *entity.WarrantyRecord) (*entity.WarrantyRecord, error) {
	record := *rec
	record.SerialNumber = strings.TrimSpace(record.SerialNumber)
	if err := apperror.ValidateStruct(&record); err != nil {
		return nil, err
	}

	err := s.store.Update(ctx, func(doc *entity.Document) error {
		stored := record
		doc.WarrantyDatabase[record.SerialNumber] = &stored
		return nil
	})
	if err != nil {
		return nil, err
	}

	if _, ok := record.PurchaseTime(); !ok {
		log.Warn().Str("serial", record.SerialNumber).Str("purchase_date", record.PurchaseDate).Msg("warranty stored with unparseable purchase date")
	}
	return &record, nil
}

// Get returns the record for serial
func (s *WarrantyService) Get(serial string) (*entity.WarrantyRecord, error) {
	rec, ok := s.Lookup(serial)
	if !ok {
		return nil, apperror.NewNotFoundError("Warranty")
	}
	return rec, nil
}

// Lookup is Get without an error, as the receipt composer needs it
func (s *WarrantyService) Lookup(serial string) (*entity.WarrantyRecord, bool) {
	var rec *entity.WarrantyRecord
	s.store.View(func(doc *entity.Document) {
		if w, ok := doc.WarrantyDatabase[serial]; ok {
			c := *w
			rec = &c
		}
	})
	return rec, rec != nil
}

// List returns all records ordered by serial number
func (s *WarrantyService) List() []*entity.WarrantyRecord {
	var records []*entity.WarrantyRecord
	s.store.View(func(doc *entity.Document) {
		records = make([]*entity.WarrantyRecord, 0, len(doc.WarrantyDatabase))
		for _, w := range doc.WarrantyDatabase {
			c := *w
			records = append(records, &c)
		}
	})
	sort.Slice(records, func(i, j int) bool {
		return records[i].SerialNumber < records[j].SerialNumber
	})
	return records
}

// Remove deletes the record for serial
func (s *WarrantyService) Remove(ctx context.Context, serial string) error {
	return s.store.Update(ctx, func(doc *entity.Document) error {
		if _, ok := doc.WarrantyDatabase[serial]; !ok {
			return apperror.NewNotFoundError("Warranty")
		}
		delete(doc.WarrantyDatabase, serial)
		return nil
	})
}
