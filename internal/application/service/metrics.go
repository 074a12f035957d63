package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics are the receipt counters exported on /metrics
type Metrics struct {
	ReceiptsIssued *prometheus.CounterVec
	ReceiptTotal   *prometheus.HistogramVec
	PromoLines     prometheus.Counter
	PrintJobs      *prometheus.CounterVec
}

// NewMetrics registers the receipt metrics with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ReceiptsIssued: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kuittikone",
			Name:      "receipts_issued_total",
			Help:      "Receipts composed, by profile template.",
		}, []string{"template"}),
		ReceiptTotal: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "kuittikone",
			Name:      "receipt_total_euros",
			Help:      "Grand total of composed receipts.",
			Buckets:   []float64{5, 10, 25, 50, 100, 250, 500, 1000, 5000},
		}, []string{"template"}),
		PromoLines: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "kuittikone",
			Name:      "promo_lines_total",
			Help:      "Promotion lines added to receipts.",
		}),
		PrintJobs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "kuittikone",
			Name:      "print_jobs_total",
			Help:      "Print jobs sent to the thermal printer, by result.",
		}, []string{"result"}),
	}
}
