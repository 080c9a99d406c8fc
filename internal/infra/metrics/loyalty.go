// Package metrics exports loyalty counters to Prometheus.
package metrics

import (
	"loyalty/config"
	"loyalty/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "loyalty"

type loyaltyMetrics struct {
	codesGenerated        *prometheus.CounterVec
	codeValidations       *prometheus.CounterVec
	duplicateScans        *prometheus.CounterVec
	ledgerEntries         *prometheus.CounterVec
	ledgerPoints          *prometheus.CounterVec
	tierChanges           *prometheus.CounterVec
	redemptionTransitions *prometheus.CounterVec
	batchItems            *prometheus.CounterVec
}

// NewRegistry builds the registry served on the metrics endpoint, seeded with
// the process and Go runtime collectors.
func NewRegistry() *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		collectors.NewGoCollector(),
	)

	return registry
}

// NewLoyaltyMetrics registers the loyalty collectors, or returns a no-op
// recorder when metrics are disabled.
func NewLoyaltyMetrics(cfg *config.Config, registry *prometheus.Registry) service.LoyaltyMetrics {
	if cfg.Metrics != nil && !cfg.Metrics.Enabled {
		return service.NopMetrics{}
	}

	return newLoyaltyMetrics(registry)
}

func newLoyaltyMetrics(registerer prometheus.Registerer) *loyaltyMetrics {
	m := &loyaltyMetrics{
		codesGenerated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "codes_generated_total",
			Help:      "Card codes generated, including rotations.",
		}, []string{"restaurant_id"}),
		codeValidations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "code_validations_total",
			Help:      "Card code validations by result.",
		}, []string{"result"}),
		duplicateScans: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "duplicate_scans_total",
			Help:      "Scans flagged as duplicate use inside the fraud window.",
		}, []string{"restaurant_id"}),
		ledgerEntries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_entries_total",
			Help:      "Point log entries appended by reason.",
		}, []string{"reason"}),
		ledgerPoints: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_points_total",
			Help:      "Absolute points moved by reason and direction.",
		}, []string{"reason", "direction"}),
		tierChanges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tier_changes_total",
			Help:      "Tier changes by trigger.",
		}, []string{"trigger"}),
		redemptionTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "redemption_transitions_total",
			Help:      "Reward redemptions entering each status.",
		}, []string{"status"}),
		batchItems: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batch_items_total",
			Help:      "Items handled by maintenance jobs by outcome.",
		}, []string{"job", "outcome"}),
	}

	registerer.MustRegister(
		m.codesGenerated,
		m.codeValidations,
		m.duplicateScans,
		m.ledgerEntries,
		m.ledgerPoints,
		m.tierChanges,
		m.redemptionTransitions,
		m.batchItems,
	)

	return m
}

func labelOrUnknown(value string) string {
	if value == "" {
		return "unknown"
	}

	return value
}

func (m *loyaltyMetrics) CodeGenerated(restaurantID string) {
	m.codesGenerated.WithLabelValues(labelOrUnknown(restaurantID)).Inc()
}

func (m *loyaltyMetrics) CodeValidated(result string) {
	m.codeValidations.WithLabelValues(labelOrUnknown(result)).Inc()
}

func (m *loyaltyMetrics) DuplicateScan(restaurantID string) {
	m.duplicateScans.WithLabelValues(labelOrUnknown(restaurantID)).Inc()
}

func (m *loyaltyMetrics) LedgerChange(reason string, delta int64) {
	reason = labelOrUnknown(reason)
	m.ledgerEntries.WithLabelValues(reason).Inc()

	switch {
	case delta > 0:
		m.ledgerPoints.WithLabelValues(reason, "credit").Add(float64(delta))
	case delta < 0:
		m.ledgerPoints.WithLabelValues(reason, "debit").Add(float64(-delta))
	}
}

func (m *loyaltyMetrics) TierChanged(trigger string) {
	m.tierChanges.WithLabelValues(labelOrUnknown(trigger)).Inc()
}

func (m *loyaltyMetrics) RedemptionTransition(status string) {
	m.redemptionTransitions.WithLabelValues(labelOrUnknown(status)).Inc()
}

func (m *loyaltyMetrics) BatchProcessed(job string, succeeded, failed int) {
	job = labelOrUnknown(job)
	m.batchItems.WithLabelValues(job, "succeeded").Add(float64(succeeded))
	m.batchItems.WithLabelValues(job, "failed").Add(float64(failed))
}
