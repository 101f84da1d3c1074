// Package metrics provides Prometheus observability metrics for the CRM
// tracker. It covers business counters (creations, recordings, loyalty)
// and operational health (lookup failures, parse and report timings).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the custom prometheus registry for our application
var Registry = prometheus.NewRegistry()

// factory allows us to register metrics to our custom Registry directly
var factory = promauto.With(Registry)

// =============================================================================
// BUSINESS METRICS
// =============================================================================

// CustomersCreatedTotal counts customer creations by kind.
var CustomersCreatedTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "crm",
	Name:      "customers_created_total",
	Help:      "Total customers created, broken down by customer kind",
}, []string{"kind"})

// RepsCreatedTotal counts sales representative creations.
var RepsCreatedTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "crm",
	Name:      "reps_created_total",
	Help:      "Total sales representatives created",
})

// AssignmentsTotal counts customer-to-rep assignments, duplicates included.
var AssignmentsTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "crm",
	Name:      "assignments_total",
	Help:      "Total customer-to-representative assignments performed",
})

// InteractionsRecordedTotal counts recorded interactions by kind.
var InteractionsRecordedTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "crm",
	Name:      "interactions_recorded_total",
	Help:      "Total interactions recorded, broken down by interaction kind",
}, []string{"kind"})

// LoyaltyPointsAwardedTotal accumulates loyalty points credited to VIPs.
var LoyaltyPointsAwardedTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "crm",
	Name:      "loyalty_points_awarded_total",
	Help:      "Total loyalty points credited to VIP customers on recording",
})

// NotFoundTotal counts lookup failures by operation.
var NotFoundTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "crm",
	Name:      "not_found_total",
	Help:      "Total entity-not-found outcomes, broken down by operation",
}, []string{"operation"})

// =============================================================================
// REGISTRY AND REPORT METRICS
// =============================================================================

// CustomersRegistered tracks the current size of the customer registry.
var CustomersRegistered = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "crm",
	Name:      "customers_registered",
	Help:      "Number of customers currently held in the registry",
})

// RepsRegistered tracks the current size of the representative registry.
var RepsRegistered = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "crm",
	Name:      "reps_registered",
	Help:      "Number of sales representatives currently held in the registry",
})

// ReportInteractionMinutes tracks the minute total of the last system report.
var ReportInteractionMinutes = factory.NewGauge(prometheus.GaugeOpts{
	Namespace: "crm",
	Name:      "report_interaction_minutes",
	Help:      "Total interaction minutes computed by the last system report",
})

// ReportDurationSeconds tracks time to build a full report.
var ReportDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "crm",
	Name:      "report_duration_seconds",
	Help:      "Time taken to build the system-wide report",
	Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25},
})

// =============================================================================
// PARSER METRICS
// =============================================================================

// ParserErrorsTotal tracks parse errors by error type.
var ParserErrorsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "parser",
	Name:      "errors_total",
	Help:      "Total parse errors by error type",
}, []string{"error_type"})

// ParserOpsTotal tracks total scenario operations successfully parsed.
var ParserOpsTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "parser",
	Name:      "ops_total",
	Help:      "Total scenario operations successfully parsed",
})

// ParserDurationSeconds tracks time to parse input files.
var ParserDurationSeconds = factory.NewHistogram(prometheus.HistogramOpts{
	Namespace: "parser",
	Name:      "duration_seconds",
	Help:      "Time taken to parse a scenario input file",
	Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
})

// =============================================================================
// Helper Functions
// =============================================================================

// ResetReportGauges resets the report gauges before a new reporting run.
// Call this at the start of Coordinator.Report.
func ResetReportGauges() {
	ReportInteractionMinutes.Set(0)
}
