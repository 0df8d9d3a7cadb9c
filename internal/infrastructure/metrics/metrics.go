package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// CommissionMetrics covers the track lifecycle and both settlement paths.
type CommissionMetrics struct {
	TracksCreatedTotal *prometheus.CounterVec
	TracksClosedTotal  prometheus.Counter

	CommissionComputedTotal prometheus.Counter

	TopUpsTotal       *prometheus.CounterVec
	TopUpAmountTotal  *prometheus.CounterVec
	TopUpErrorsTotal  *prometheus.CounterVec
	SweepCoachesTotal prometheus.Counter

	InvoiceEventsTotal *prometheus.CounterVec
}

func NewCommissionMetrics() *CommissionMetrics {
	return &CommissionMetrics{
		TracksCreatedTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commission_tracks_created_total",
				Help: "Commission tracks opened, by trigger",
			},
			[]string{"trigger"},
		),

		TracksClosedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "commission_tracks_closed_total",
				Help: "Commission tracks auto-closed after their close date",
			},
		),

		CommissionComputedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "commission_recomputes_total",
				Help: "Track recompute passes executed",
			},
		),

		TopUpsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commission_topups_total",
				Help: "Successful wallet top-ups, by mode",
			},
			[]string{"mode"},
		),

		TopUpAmountTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commission_topup_amount_total",
				Help: "Total amount moved from commission balance to wallets, by mode",
			},
			[]string{"mode"},
		),

		TopUpErrorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commission_topup_errors_total",
				Help: "Failed top-up attempts, by mode",
			},
			[]string{"mode"},
		),

		SweepCoachesTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "commission_sweep_coaches_total",
				Help: "Coaches settled by the scheduled top-up sweep",
			},
		),

		InvoiceEventsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "commission_invoice_events_total",
				Help: "Invoice events consumed, by action",
			},
			[]string{"action"},
		),
	}
}
