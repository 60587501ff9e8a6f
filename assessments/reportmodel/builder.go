/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package reportmodel

import (
	"fmt"
	"maps"
	"time"

	"github.com/microsoft/accessibility-insights-web-sub012/assessments/catalog"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/outcome"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/requirement"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/store"
)

// Target identifies the page a report is about.
type Target struct {
	Name     string
	URL      string
	ReportID string
}

// Option configures a Builder.
type Option func(*Builder)

// WithDefaultMessages replaces the default message generators.
func WithDefaultMessages(generators map[catalog.DefaultMessageKind]DefaultMessageFunc) Option {
	return func(b *Builder) {
		b.defaultMessages = maps.Clone(generators)
	}
}

// WithTransform registers an extension transform under name, replacing
// any transform already registered with that name.
func WithTransform(name string, t Transform) Option {
	return func(b *Builder) {
		b.transforms[name] = t
	}
}

// WithComparators sets the order of requirements within an assessment.
// The default is the catalog's order field.
func WithComparators(cmps ...requirement.Comparator) Option {
	return func(b *Builder) {
		b.comparators = cmps
	}
}

// Builder constructs report models from a catalog and a snapshot.
type Builder struct {
	provider        catalog.Provider
	snapshot        store.Snapshot
	defaultMessages map[catalog.DefaultMessageKind]DefaultMessageFunc
	transforms      map[string]Transform
	comparators     []requirement.Comparator
}

// NewBuilder returns a Builder reading from p and snapshot.
func NewBuilder(p catalog.Provider, snapshot store.Snapshot, opts ...Option) *Builder {
	b := &Builder{
		provider:        p,
		snapshot:        snapshot,
		defaultMessages: DefaultMessageGenerators(),
		transforms:      BuiltinTransforms(),
		comparators:     []requirement.Comparator{requirement.ByOrder},
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build produces the full report model.
func (b *Builder) Build(target Target, reportDate time.Time) (*ReportModel, error) {
	summary, err := Summary(b.provider, b.snapshot)
	if err != nil {
		return nil, fmt.Errorf("building summary: %w", err)
	}

	sections := make(map[outcome.Status][]AssessmentDetails, 3)
	for _, status := range []outcome.Status{outcome.Pass, outcome.Fail, outcome.Unknown} {
		details, err := b.Details(status)
		if err != nil {
			return nil, fmt.Errorf("building %s details: %w", outcome.TypeFromStatus(status), err)
		}
		sections[status] = details
	}

	return &ReportModel{
		Summary: summary,
		ScanDetails: ScanDetails{
			ReportID:   target.ReportID,
			TargetPage: target.Name,
			URL:        target.URL,
			ReportDate: reportDate,
		},
		PassedDetailsData:     sections[outcome.Pass],
		FailedDetailsData:     sections[outcome.Fail],
		IncompleteDetailsData: sections[outcome.Unknown],
	}, nil
}

// Details returns, in catalog order, every assessment with at least one
// requirement whose final result is status.
func (b *Builder) Details(status outcome.Status) ([]AssessmentDetails, error) {
	details := []AssessmentDetails{}
	for _, a := range b.provider.All() {
		data := b.snapshot.Assessment(a.Key)
		results, err := requirement.ForAssessment(b.provider, a.Key, statusesOf(data), b.comparators...)
		if err != nil {
			return nil, err
		}
		transform, err := b.transformFor(a)
		if err != nil {
			return nil, err
		}

		var steps []RequirementReportModel
		for _, r := range results {
			if r.Status.StepFinalResult != status {
				continue
			}
			m, err := b.requirementModel(r, status, data)
			if err != nil {
				return nil, fmt.Errorf("assessment %q: %w", a.Key, err)
			}
			steps = append(steps, transform(m))
		}
		if len(steps) == 0 {
			continue
		}
		details = append(details, AssessmentDetails{
			Key:         a.Key,
			DisplayName: a.Title,
			Steps:       steps,
		})
	}
	return details, nil
}

func (b *Builder) transformFor(a catalog.Assessment) (Transform, error) {
	transforms := make([]Transform, 0, len(a.Extensions))
	for _, name := range a.Extensions {
		t, ok := b.transforms[name]
		if !ok {
			return nil, fmt.Errorf("assessment %q: %w: %q", a.Key, ErrUnknownExtension, name)
		}
		transforms = append(transforms, t)
	}
	return Compose(transforms...), nil
}

func (b *Builder) requirementModel(r requirement.Result, status outcome.Status, data *store.AssessmentData) (RequirementReportModel, error) {
	def := r.Definition
	reqType := Assisted
	if def.IsManual {
		reqType = Manual
	}

	m := RequirementReportModel{
		Key: def.Key,
		Header: RequirementHeader{
			DisplayName:     def.Name,
			Description:     def.Description,
			GuidanceLinks:   append([]catalog.Link{}, def.GuidanceLinks...),
			RequirementType: reqType,
		},
		Instances:            instanceModels(r, status, data),
		ShowPassingInstances: !def.HidePassingInstances,
	}

	if status == outcome.Pass && def.DefaultMessage != "" {
		gen, ok := b.defaultMessages[def.DefaultMessage]
		if !ok || gen == nil {
			return RequirementReportModel{}, fmt.Errorf("requirement %q: %w for %q", def.Key, ErrMissingDefaultMessage, def.DefaultMessage)
		}
		var instances map[string]*store.GeneratedInstance
		if data != nil {
			instances = data.GeneratedAssessmentInstancesMap
		}
		m.DefaultMessageComponent = gen(instances, def.Key)
	}
	return m, nil
}

// instanceModels selects the instances listed under a requirement. Manual
// findings replace generated ones, but only for failed requirements.
func instanceModels(r requirement.Result, status outcome.Status, data *store.AssessmentData) []InstanceReportModel {
	models := []InstanceReportModel{}
	if data == nil {
		return models
	}

	if r.Status.StepFinalResult == outcome.Fail {
		if manual := data.ManualInstances(r.Key()); len(manual) > 0 {
			for _, inst := range manual {
				models = append(models, manualInstanceModel(inst))
			}
			return models
		}
	}

	fields := r.Definition.InstanceFields()
	for _, id := range data.InstanceIDs() {
		inst := data.GeneratedAssessmentInstancesMap[id]
		res := inst.ResultFor(r.Key())
		if res == nil || res.Status != status {
			continue
		}
		models = append(models, generatedInstanceModel(r.Key(), fields, inst))
	}
	return models
}

func manualInstanceModel(inst store.ManualInstance) InstanceReportModel {
	props := []InstanceProp{}
	for _, p := range []InstanceProp{
		{Key: "Comment", Value: inst.Description},
		{Key: "Path", Value: inst.Selector},
		{Key: "Snippet", Value: inst.HTML},
	} {
		if p.Value != "" {
			props = append(props, p)
		}
	}
	return InstanceReportModel{Props: props}
}

func generatedInstanceModel(key string, fields []catalog.InstanceField, inst *store.GeneratedInstance) InstanceReportModel {
	props := make([]InstanceProp, 0, len(fields))
	for _, f := range fields {
		if v := f.Value(key, inst); v != "" {
			props = append(props, InstanceProp{Key: f.Label, Value: v})
		}
	}
	return InstanceReportModel{Props: props}
}
