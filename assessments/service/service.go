/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"github.com/chainguard-dev/clog"
	"github.com/google/uuid"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/metrics"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/report"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/reportmodel"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Service builds and renders reports for one target page.
type Service struct {
	source   Source
	target   reportmodel.Target
	observer metrics.Observer
	now      func() time.Time
	newID    func() string
	opts     []reportmodel.Option
}

// Option configures a Service.
type Option func(*Service)

// WithObserver records every rendered report on obs.
func WithObserver(obs metrics.Observer) Option {
	return func(s *Service) {
		s.observer = obs
	}
}

// WithClock replaces the source of report dates.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithIDGenerator replaces the source of report identifiers.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) {
		s.newID = newID
	}
}

// WithBuilderOptions passes options through to every reportmodel.Builder.
func WithBuilderOptions(opts ...reportmodel.Option) Option {
	return func(s *Service) {
		s.opts = append(s.opts, opts...)
	}
}

// New creates a Service. Unless a target ReportID is given, every report
// gets a fresh random identifier.
func New(source Source, target reportmodel.Target, opts ...Option) *Service {
	s := &Service{
		source:   source,
		target:   target,
		observer: metrics.Multi(),
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func tracer() trace.Tracer {
	return otel.Tracer("accessibility.assessments.service",
		trace.WithInstrumentationVersion("1.0.0"))
}

// Build loads the inputs and builds a report model.
func (s *Service) Build(ctx context.Context) (*reportmodel.ReportModel, error) {
	ctx, span := tracer().Start(ctx, "report.build",
		trace.WithAttributes(attribute.String("target", s.target.Name)))
	defer span.End()

	model, err := s.build(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("percentage_complete", model.Summary.PercentageComplete))
	span.SetStatus(codes.Ok, "")
	return model, nil
}

func (s *Service) build(ctx context.Context) (*reportmodel.ReportModel, error) {
	cat, snapshot, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading inputs: %w", err)
	}

	target := s.target
	if target.ReportID == "" {
		target.ReportID = s.newID()
	}

	model, err := reportmodel.NewBuilder(cat, snapshot, s.opts...).Build(target, s.now())
	if err != nil {
		return nil, fmt.Errorf("building report: %w", err)
	}

	clog.FromContext(ctx).With("report_id", target.ReportID).
		With("percentage_complete", model.Summary.PercentageComplete).
		Info("Built report")
	return model, nil
}

// Summary loads the inputs and computes only the overview summary.
func (s *Service) Summary(ctx context.Context) (reportmodel.OverviewSummary, error) {
	ctx, span := tracer().Start(ctx, "report.summary")
	defer span.End()

	cat, snapshot, err := s.source.Load(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return reportmodel.OverviewSummary{}, fmt.Errorf("loading inputs: %w", err)
	}
	summary, err := reportmodel.Summary(cat, snapshot)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return reportmodel.OverviewSummary{}, err
	}
	return summary, nil
}

// Render builds a report and writes it to w in format f. Nothing is written
// when building or rendering fails.
func (s *Service) Render(ctx context.Context, w io.Writer, f report.Format) error {
	model, err := s.Build(ctx)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := report.Render(ctx, &buf, f, model); err != nil {
		return fmt.Errorf("rendering report: %w", err)
	}
	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	metrics.Record(ctx, s.observer, model, string(f))
	return nil
}
