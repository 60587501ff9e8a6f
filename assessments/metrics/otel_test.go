/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package metrics_test

import (
	"context"
	"testing"

	"github.com/microsoft/accessibility-insights-web-sub012/assessments/metrics"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) map[string]metricdata.Aggregation {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() = %v", err)
	}
	out := make(map[string]metricdata.Aggregation)
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			out[m.Name] = m.Data
		}
	}
	return out
}

func TestOTelObserver(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	obs := metrics.NewOTelObserverWithMeter(provider.Meter("test"))
	obs.SetAttributeEnricher(func(_ context.Context, base []attribute.KeyValue) []attribute.KeyValue {
		return append(base, attribute.String("target", "contoso"))
	})
	metrics.Record(context.Background(), obs, testModel(), "json")

	data := collect(t, reader)

	reqs, ok := data["accessibility.report.requirements"].(metricdata.Sum[int64])
	if !ok {
		t.Fatalf("requirements counter: got = %T, wanted = metricdata.Sum[int64]", data["accessibility.report.requirements"])
	}
	var total int64
	for _, dp := range reqs.DataPoints {
		total += dp.Value
		if v, ok := dp.Attributes.Value("target"); !ok || v.AsString() != "contoso" {
			t.Errorf("data point %v is missing the enriched target attribute", dp.Attributes)
		}
		if v, _ := dp.Attributes.Value("assessment"); v.AsString() == "headings" {
			if o, _ := dp.Attributes.Value("outcome"); o.AsString() == "pass" && dp.Value != 2 {
				t.Errorf("headings/pass: got = %d, wanted = 2", dp.Value)
			}
		}
	}
	if total != 4 {
		t.Errorf("requirements total: got = %d, wanted = 4", total)
	}

	reports, ok := data["accessibility.reports"].(metricdata.Sum[int64])
	if !ok || len(reports.DataPoints) != 1 || reports.DataPoints[0].Value != 1 {
		t.Errorf("reports counter: got = %+v, wanted a single point of 1", data["accessibility.reports"])
	}

	gauge, ok := data["accessibility.report.percentage_complete"].(metricdata.Gauge[int64])
	if !ok {
		t.Fatalf("completion gauge: got = %T, wanted = metricdata.Gauge[int64]", data["accessibility.report.percentage_complete"])
	}
	got := make(map[string]int64)
	for _, dp := range gauge.DataPoints {
		v, _ := dp.Attributes.Value("assessment")
		got[v.AsString()] = dp.Value
	}
	want := map[string]int64{"_overall": 75, "headings": 100, "images": 0}
	for k, w := range want {
		if got[k] != w {
			t.Errorf("completion[%s]: got = %d, wanted = %d", k, got[k], w)
		}
	}
}

func TestNewOTelObserverGlobal(t *testing.T) {
	// The global provider is a no-op until configured; recording must not panic.
	obs := metrics.NewOTelObserver("accessibility.assessments.test")
	metrics.Record(context.Background(), obs, testModel(), "json")
}
