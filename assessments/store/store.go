/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package store

import (
	"maps"
	"slices"

	"github.com/microsoft/accessibility-insights-web-sub012/assessments/outcome"
)

// RequirementStatus is the mutable status record of one requirement.
// The zero value is the initial UNKNOWN, not scanned, status.
type RequirementStatus struct {
	StepFinalResult outcome.Status `json:"stepFinalResult" jsonschema:"type=string,enum=PASS,enum=FAIL,enum=UNKNOWN"`
	IsStepScanned   bool           `json:"isStepScanned"`
}

// ManualInstance is a finding entered by the user.
type ManualInstance struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	HTML        string `json:"html,omitempty"`
	Selector    string `json:"selector,omitempty"`
}

// ManualRequirementResult holds the manual findings recorded for a requirement.
type ManualRequirementResult struct {
	ID        string           `json:"id"`
	Status    outcome.Status   `json:"status" jsonschema:"type=string,enum=PASS,enum=FAIL,enum=UNKNOWN"`
	Instances []ManualInstance `json:"instances"`
}

// TestStepResult is the outcome of one requirement for one generated instance.
type TestStepResult struct {
	ID                     string         `json:"id"`
	Status                 outcome.Status `json:"status" jsonschema:"type=string,enum=PASS,enum=FAIL,enum=UNKNOWN"`
	IsCapturedByUser       bool           `json:"isCapturedByUser"`
	FailureSummary         string         `json:"failureSummary,omitempty"`
	IsVisualizationEnabled bool           `json:"isVisualizationEnabled"`
	IsVisible              bool           `json:"isVisible"`
}

// GeneratedInstance is an element found by an automated scan, together
// with its per-requirement results.
type GeneratedInstance struct {
	Target          []string                   `json:"target"`
	HTML            string                     `json:"html"`
	TestStepResults map[string]*TestStepResult `json:"testStepResults"`
	PropertyBag     map[string]any             `json:"propertyBag,omitempty"`
}

// ResultFor returns the instance's result for a requirement, or nil.
func (g *GeneratedInstance) ResultFor(requirement string) *TestStepResult {
	if g == nil {
		return nil
	}
	return g.TestStepResults[requirement]
}

// AssessmentData is everything recorded for one assessment.
type AssessmentData struct {
	TestStepStatus                  map[string]RequirementStatus       `json:"testStepStatus"`
	ManualTestStepResultMap         map[string]ManualRequirementResult `json:"manualTestStepResultMap,omitempty"`
	GeneratedAssessmentInstancesMap map[string]*GeneratedInstance      `json:"generatedAssessmentInstancesMap,omitempty"`
}

// Status returns the status of a requirement, or the initial status when
// none has been recorded.
func (a *AssessmentData) Status(requirement string) RequirementStatus {
	if a == nil {
		return RequirementStatus{}
	}
	return a.TestStepStatus[requirement]
}

// FinalResults returns the final result of every requirement with a status.
func (a *AssessmentData) FinalResults() map[string]outcome.Status {
	if a == nil {
		return map[string]outcome.Status{}
	}
	results := make(map[string]outcome.Status, len(a.TestStepStatus))
	for key, status := range a.TestStepStatus {
		results[key] = status.StepFinalResult
	}
	return results
}

// OutcomeStats counts the requirements of this assessment per outcome type.
func (a *AssessmentData) OutcomeStats() outcome.Stats {
	return outcome.StatsFromStatus(a.FinalResults())
}

// ManualInstances returns the manual findings recorded for a requirement.
func (a *AssessmentData) ManualInstances(requirement string) []ManualInstance {
	if a == nil {
		return nil
	}
	return a.ManualTestStepResultMap[requirement].Instances
}

// InstanceIDs returns the keys of the generated instance map in sorted order.
func (a *AssessmentData) InstanceIDs() []string {
	if a == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(a.GeneratedAssessmentInstancesMap))
}

// Snapshot is the runtime data of every assessment, keyed by assessment key.
type Snapshot map[string]*AssessmentData

// Assessment returns the data recorded for an assessment, or nil.
func (s Snapshot) Assessment(key string) *AssessmentData {
	return s[key]
}

// Initialize ensures the assessment exists and every listed requirement has
// a status. Existing statuses are left alone.
func (s Snapshot) Initialize(assessment string, requirements ...string) {
	data := s.ensure(assessment)
	for _, req := range requirements {
		if _, ok := data.TestStepStatus[req]; !ok {
			data.TestStepStatus[req] = RequirementStatus{}
		}
	}
}

// SetStatus records the status of a requirement.
func (s Snapshot) SetStatus(assessment, requirement string, status RequirementStatus) {
	s.ensure(assessment).TestStepStatus[requirement] = status
}

// Reset returns a requirement to its initial status and discards its
// manual findings. Generated instances keep their results.
func (s Snapshot) Reset(assessment, requirement string) {
	data := s.ensure(assessment)
	data.TestStepStatus[requirement] = RequirementStatus{}
	delete(data.ManualTestStepResultMap, requirement)
}

func (s Snapshot) ensure(assessment string) *AssessmentData {
	data := s[assessment]
	if data == nil {
		data = &AssessmentData{}
		s[assessment] = data
	}
	if data.TestStepStatus == nil {
		data.TestStepStatus = make(map[string]RequirementStatus)
	}
	return data
}
