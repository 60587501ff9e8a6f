/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package reportmodel

import (
	"maps"
	"slices"
	"time"

	"github.com/microsoft/accessibility-insights-web-sub012/assessments/catalog"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/outcome"
)

// ReportModel is the complete, renderable report.
type ReportModel struct {
	Summary               OverviewSummary     `json:"summary"`
	ScanDetails           ScanDetails         `json:"scanDetails"`
	PassedDetailsData     []AssessmentDetails `json:"passedDetailsData"`
	FailedDetailsData     []AssessmentDetails `json:"failedDetailsData"`
	IncompleteDetailsData []AssessmentDetails `json:"incompleteDetailsData"`
}

// Section returns the details section for an outcome type.
func (m *ReportModel) Section(t outcome.Type) []AssessmentDetails {
	switch t {
	case outcome.TypePass:
		return m.PassedDetailsData
	case outcome.TypeFail:
		return m.FailedDetailsData
	case outcome.TypeIncomplete:
		return m.IncompleteDetailsData
	default:
		return nil
	}
}

// OverviewSummary rolls requirement outcomes up across assessments.
type OverviewSummary struct {
	// ByPercentage weighs every assessment equally.
	ByPercentage outcome.Stats `json:"byPercentage"`
	// PercentageComplete is the share of all requirements with a final result.
	PercentageComplete       int                 `json:"percentageComplete"`
	ReportSummaryDetailsData []AssessmentSummary `json:"reportSummaryDetailsData"`
}

// AssessmentSummary counts the requirements of one assessment per outcome.
type AssessmentSummary struct {
	Key                string        `json:"key"`
	DisplayName        string        `json:"displayName"`
	ByRequirement      outcome.Stats `json:"byRequirement"`
	PercentageComplete int           `json:"percentageComplete"`
}

// ScanDetails describes the page the report is about.
type ScanDetails struct {
	ReportID   string    `json:"reportId,omitempty"`
	TargetPage string    `json:"targetPage"`
	URL        string    `json:"url"`
	ReportDate time.Time `json:"reportDate"`
}

// AssessmentDetails lists the requirements of one assessment that share a
// final result.
type AssessmentDetails struct {
	Key         string                   `json:"key"`
	DisplayName string                   `json:"displayName"`
	Steps       []RequirementReportModel `json:"steps"`
}

// RequirementType tells whether a requirement is tested by hand or assisted
// by automation.
type RequirementType string

const (
	Manual   RequirementType = "manual"
	Assisted RequirementType = "assisted"
)

// RequirementHeader is the descriptive part of a requirement entry.
type RequirementHeader struct {
	DisplayName     string          `json:"displayName"`
	Description     string          `json:"description"`
	GuidanceLinks   []catalog.Link  `json:"guidanceLinks"`
	RequirementType RequirementType `json:"requirementType"`
}

// RequirementReportModel is one requirement entry of a details section.
type RequirementReportModel struct {
	Key                     string                `json:"key"`
	Header                  RequirementHeader     `json:"header"`
	Instances               []InstanceReportModel `json:"instances"`
	DefaultMessageComponent *DefaultMessage       `json:"defaultMessageComponent,omitempty"`
	ShowPassingInstances    bool                  `json:"showPassingInstances"`
	// Annotations carries values added by extensions.
	Annotations map[string]string `json:"annotations,omitempty"`
}

// Clone returns a deep copy of m.
func (m RequirementReportModel) Clone() RequirementReportModel {
	out := m
	out.Header.GuidanceLinks = slices.Clone(m.Header.GuidanceLinks)
	if m.Instances != nil {
		out.Instances = make([]InstanceReportModel, len(m.Instances))
		for i, inst := range m.Instances {
			out.Instances[i] = InstanceReportModel{Props: slices.Clone(inst.Props)}
		}
	}
	if m.DefaultMessageComponent != nil {
		dm := *m.DefaultMessageComponent
		out.DefaultMessageComponent = &dm
	}
	out.Annotations = maps.Clone(m.Annotations)
	return out
}

// InstanceReportModel is one finding, as labelled key/value rows.
type InstanceReportModel struct {
	Props []InstanceProp `json:"props"`
}

// Value returns the value of the row labelled key.
func (i InstanceReportModel) Value(key string) (string, bool) {
	for _, p := range i.Props {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

// InstanceProp is a labelled value of an instance.
type InstanceProp struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
