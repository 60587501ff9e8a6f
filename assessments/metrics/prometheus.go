/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"context"

	"github.com/microsoft/accessibility-insights-web-sub012/assessments/outcome"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/reportmodel"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Global metrics with consistent dimensions
	requirementCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "accessibility_report_requirements_total",
			Help: "Total number of requirements placed in report sections",
		},
		[]string{"source", "assessment", "outcome"},
	)

	reportCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "accessibility_reports_total",
			Help: "Total number of reports rendered",
		},
		[]string{"source", "format"},
	)

	completeGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "accessibility_assessment_percentage_complete",
			Help: "Percentage of requirements with a final result in the most recent report",
		},
		[]string{"source", "assessment"},
	)
)

// overallAssessment labels the report wide completion gauge.
const overallAssessment = "_overall"

// PrometheusObserver implements Observer with Prometheus metrics
type PrometheusObserver struct {
	source string
}

var _ Observer = (*PrometheusObserver)(nil)

// NewPrometheusObserver creates an observer whose metrics carry the given
// source label (for example "build" or "serve").
func NewPrometheusObserver(source string) *PrometheusObserver {
	return &PrometheusObserver{source: source}
}

// ObserveRequirement implements Observer.
func (p *PrometheusObserver) ObserveRequirement(_ context.Context, assessment string, t outcome.Type) {
	requirementCounter.With(prometheus.Labels{
		"source":     p.source,
		"assessment": assessment,
		"outcome":    string(t),
	}).Inc()
}

// ObserveReport implements Observer.
func (p *PrometheusObserver) ObserveReport(_ context.Context, format string, summary reportmodel.OverviewSummary) {
	reportCounter.With(prometheus.Labels{
		"source": p.source,
		"format": format,
	}).Inc()

	completeGauge.With(prometheus.Labels{
		"source":     p.source,
		"assessment": overallAssessment,
	}).Set(float64(summary.PercentageComplete))
	for _, a := range summary.ReportSummaryDetailsData {
		completeGauge.With(prometheus.Labels{
			"source":     p.source,
			"assessment": a.Key,
		}).Set(float64(a.PercentageComplete))
	}
}
