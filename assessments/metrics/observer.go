/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package metrics

import (
	"context"

	"github.com/microsoft/accessibility-insights-web-sub012/assessments/outcome"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/reportmodel"
)

// Observer receives the contents of built reports.
type Observer interface {
	// ObserveRequirement is called once per requirement placed in a report
	// section.
	ObserveRequirement(ctx context.Context, assessment string, t outcome.Type)

	// ObserveReport is called once per rendered report.
	ObserveReport(ctx context.Context, format string, summary reportmodel.OverviewSummary)
}

type multi []Observer

// Multi fans every observation out to each of observers.
func Multi(observers ...Observer) Observer {
	return multi(observers)
}

func (m multi) ObserveRequirement(ctx context.Context, assessment string, t outcome.Type) {
	for _, o := range m {
		o.ObserveRequirement(ctx, assessment, t)
	}
}

func (m multi) ObserveReport(ctx context.Context, format string, summary reportmodel.OverviewSummary) {
	for _, o := range m {
		o.ObserveReport(ctx, format, summary)
	}
}

// Record feeds every requirement of model, then the report itself, to obs.
func Record(ctx context.Context, obs Observer, model *reportmodel.ReportModel, format string) {
	for _, t := range outcome.AllTypes() {
		for _, d := range model.Section(t) {
			for range d.Steps {
				obs.ObserveRequirement(ctx, d.Key, t)
			}
		}
	}
	obs.ObserveReport(ctx, format, model.Summary)
}
