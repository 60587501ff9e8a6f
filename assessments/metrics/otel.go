/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"context"
	"log/slog"

	"github.com/microsoft/accessibility-insights-web-sub012/assessments/outcome"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/reportmodel"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

// AttributeEnricher enriches metric attributes with additional context, such
// as the target page or the caller of the server. It receives the base
// attributes and returns the enriched set.
type AttributeEnricher func(ctx context.Context, baseAttrs []attribute.KeyValue) []attribute.KeyValue

// OTelObserver implements Observer with OpenTelemetry instruments.
type OTelObserver struct {
	requirements metric.Int64Counter
	reports      metric.Int64Counter
	complete     metric.Int64Gauge
	attrEnricher AttributeEnricher
}

var _ Observer = (*OTelObserver)(nil)

// NewOTelObserver creates an observer on the global meter provider.
// Uses graceful degradation: if an instrument fails to initialize, logs a
// warning and uses a no-op instrument instead of failing entirely.
func NewOTelObserver(meterName string) *OTelObserver {
	return NewOTelObserverWithMeter(otel.Meter(meterName, metric.WithInstrumentationVersion("1.0.0")))
}

// NewOTelObserverWithMeter creates an observer on the given meter.
func NewOTelObserverWithMeter(meter metric.Meter) *OTelObserver {
	requirements, err := meter.Int64Counter("accessibility.report.requirements",
		metric.WithDescription("The number of requirements placed in report sections"),
		metric.WithUnit("{requirements}"))
	if err != nil {
		slog.Warn("Failed to create requirements counter, metrics will be disabled", "error", err)
		requirements = noop.Int64Counter{}
	}

	reports, err := meter.Int64Counter("accessibility.reports",
		metric.WithDescription("The number of reports rendered"),
		metric.WithUnit("{reports}"))
	if err != nil {
		slog.Warn("Failed to create reports counter, metrics will be disabled", "error", err)
		reports = noop.Int64Counter{}
	}

	complete, err := meter.Int64Gauge("accessibility.report.percentage_complete",
		metric.WithDescription("Percentage of requirements with a final result"),
		metric.WithUnit("%"))
	if err != nil {
		slog.Warn("Failed to create completion gauge, metrics will be disabled", "error", err)
		complete = noop.Int64Gauge{}
	}

	return &OTelObserver{
		requirements: requirements,
		reports:      reports,
		complete:     complete,
	}
}

// SetAttributeEnricher sets the attribute enricher for this observer.
// The enricher is called before recording each metric.
func (o *OTelObserver) SetAttributeEnricher(enricher AttributeEnricher) {
	o.attrEnricher = enricher
}

func (o *OTelObserver) attrs(ctx context.Context, base ...attribute.KeyValue) metric.MeasurementOption {
	if o.attrEnricher != nil {
		base = o.attrEnricher(ctx, base)
	}
	return metric.WithAttributes(base...)
}

// ObserveRequirement implements Observer.
func (o *OTelObserver) ObserveRequirement(ctx context.Context, assessment string, t outcome.Type) {
	o.requirements.Add(ctx, 1, o.attrs(ctx,
		attribute.String("assessment", assessment),
		attribute.String("outcome", string(t)),
	))
}

// ObserveReport implements Observer.
func (o *OTelObserver) ObserveReport(ctx context.Context, format string, summary reportmodel.OverviewSummary) {
	o.reports.Add(ctx, 1, o.attrs(ctx, attribute.String("format", format)))
	o.complete.Record(ctx, int64(summary.PercentageComplete), o.attrs(ctx,
		attribute.String("assessment", overallAssessment),
	))
	for _, a := range summary.ReportSummaryDetailsData {
		o.complete.Record(ctx, int64(a.PercentageComplete), o.attrs(ctx,
			attribute.String("assessment", a.Key),
		))
	}
}
