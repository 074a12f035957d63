package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/sangkips/kuittikone/internal/domain/entity"
	"github.com/sangkips/kuittikone/pkg/pagination"
)

// ReceiptService issues receipts: it resolves the profile, composes the
// text, journals it and optionally prints it
type ReceiptService struct {
	store      *DocumentStore
	profiles   *ProfileService
	warranties *WarrantyService
	composer   *ReceiptComposer
	printer    *PrinterService
	metrics    *Metrics
	width      int
}

// NewReceiptService creates a new receipt service. A positive width
// overrides the store's default receipt width. printer and metrics may be
// nil.
func NewReceiptService(
	store *DocumentStore,
	profiles *ProfileService,
	warranties *WarrantyService,
	composer *ReceiptComposer,
	printer *PrinterService,
	metrics *Metrics,
	width int,
) *ReceiptService {
	return &ReceiptService{
		store:      store,
		profiles:   profiles,
		warranties: warranties,
		composer:   composer,
		printer:    printer,
		metrics:    metrics,
		width:      width,
	}
}

// IssueInput represents the issue receipt input
type IssueInput struct {
	PresetID string
	Items    []entity.LineItem
	Payment  entity.PaymentContext
	Print    bool
}

// IssueOutput represents the issue receipt output
type IssueOutput struct {
	Receipt    *entity.Receipt
	Printed    bool
	PrintError string
}

// Issue composes a receipt for the named profile, or the active one when
// PresetID is empty. A failed print does not fail the issue.
func (s *ReceiptService) Issue(ctx context.Context, input *IssueInput) (*IssueOutput, error) {
	cart, err := entity.NewCart(input.Items...)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.Resolve(input.PresetID)
	if err != nil {
		return nil, err
	}

	var settings entity.Settings
	s.store.View(func(doc *entity.Document) {
		settings = doc.Settings
	})
	width := settings.DefaultReceiptWidth
	if s.width > 0 {
		width = s.width
	}

	receipt, err := s.composer.WithWidth(width).Compose(profile, cart.Items(), input.Payment, s.warranties.Lookup)
	if err != nil {
		return nil, err
	}

	if settings.EnableOfflineLogging {
		err := s.store.Update(ctx, func(doc *entity.Document) error {
			doc.AppendHistory(receipt.HistoryEntry())
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	s.observe(receipt)
	log.Info().
		Str("receipt", receipt.Number).
		Str("preset_id", receipt.PresetID).
		Str("total", receipt.Total.StringFixed(2)).
		Int("items", len(receipt.Items)).
		Msg("receipt issued")

	out := &IssueOutput{Receipt: receipt}
	if input.Print && s.printer != nil {
		if err := s.printer.PrintText(ctx, receipt.Text); err != nil {
			out.PrintError = err.Error()
		} else {
			out.Printed = true
		}
	}
	return out, nil
}

// Journal returns a page of issued receipts, newest first
func (s *ReceiptService) Journal(params *pagination.PaginationParams) *pagination.PaginatedResult[entity.HistoryEntry] {
	params.Validate()

	var page []entity.HistoryEntry
	var total int
	s.store.View(func(doc *entity.Document) {
		total = len(doc.History)
		start := params.Offset()
		if start > total {
			start = total
		}
		end := start + params.PerPage
		if end > total {
			end = total
		}
		page = append([]entity.HistoryEntry{}, doc.History[start:end]...)
	})

	pag := pagination.NewPagination(params.Page, params.PerPage, int64(total))
	return pagination.NewPaginatedResult(page, pag)
}

func (s *ReceiptService) observe(r *entity.Receipt) {
	if s.metrics == nil {
		return
	}
	s.metrics.ReceiptsIssued.WithLabelValues(r.Template).Inc()
	s.metrics.ReceiptTotal.WithLabelValues(r.Template).Observe(r.Total.InexactFloat64())
	s.metrics.PromoLines.Add(float64(len(r.PromoLines)))
}
