package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/sangkips/kuittikone/pkg/printer"
)

// PrinterService sends receipt text to the thermal printer as ESC/POS
type PrinterService struct {
	printer   printer.Printer
	charWidth int
	metrics   *Metrics
}

// NewPrinterService creates a new printer service. metrics may be nil.
func NewPrinterService(p printer.Printer, charWidth int, metrics *Metrics) *PrinterService {
	return &PrinterService{
		printer:   p,
		charWidth: charWidth,
		metrics:   metrics,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
	CharWidth  int    `json:"char_width"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus(ctx context.Context) *PrinterStatus {
	kind := s.printer.Kind()
	return &PrinterStatus{
		Configured: kind != "none",
		Connected:  s.printer.IsConnected(ctx),
		Type:       kind,
		CharWidth:  s.charWidth,
	}
}

// PrintText prints plain receipt text.
func (s *PrinterService) PrintText(ctx context.Context, text string) error {
	data := printer.ReceiptBytes(text, s.charWidth)
	if err := s.printer.Print(ctx, data); err != nil {
		s.count("error")
		log.Error().Err(err).Str("printer", s.printer.Kind()).Msg("print failed")
		return fmt.Errorf("failed to print receipt: %w", err)
	}
	s.count("ok")
	log.Debug().Str("printer", s.printer.Kind()).Int("bytes", len(data)).Msg("receipt printed")
	return nil
}

// TestPrint sends a test page and returns its text, so callers without a
// printer can still show what would have been printed.
func (s *PrinterService) TestPrint(ctx context.Context) (string, error) {
	rule := strings.Repeat("=", s.charWidth)
	text := strings.Join([]string{
		rule,
		"PRINTER TEST",
		rule,
		"Type: " + s.printer.Kind(),
		"Width: " + fmt.Sprint(s.charWidth),
		"Time: " + time.Now().Format("02.01.2006 15:04"),
		"ÅÄÖ åäö € ✓",
		rule,
	}, "\n")

	if err := s.PrintText(ctx, text); err != nil {
		return text, fmt.Errorf("test print failed: %w", err)
	}
	return text, nil
}

func (s *PrinterService) count(result string) {
	if s.metrics != nil {
		s.metrics.PrintJobs.WithLabelValues(result).Inc()
	}
}
