/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package metrics records what built reports contain.

An Observer is told about every requirement placed in a report section and
about every rendered report. Two implementations are provided:

  - PrometheusObserver increments promauto counter vectors and sets
    per-assessment completion gauges, ready to be scraped from the default
    registry.
  - OTelObserver records the same values on OpenTelemetry instruments from
    the global meter provider. Instrument creation failures degrade to no-op
    instruments with a warning.

Record walks a report model once and feeds an Observer:

	obs := metrics.Multi(
		metrics.NewPrometheusObserver("serve"),
		metrics.NewOTelObserver("accessibility.assessments"),
	)
	metrics.Record(ctx, obs, model, "html")
*/
package metrics
