/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package reportmodel

import (
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/catalog"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/outcome"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/requirement"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/store"
)

// AssessmentResult is the input of SummaryFromResults: the final result
// of every requirement of one assessment.
type AssessmentResult struct {
	Key      string
	Title    string
	Statuses map[string]outcome.Status
}

// SummaryFromResults computes the overview summary of the given assessments.
func SummaryFromResults(results []AssessmentResult) OverviewSummary {
	details := make([]AssessmentSummary, 0, len(results))
	stats := make([]outcome.Stats, 0, len(results))
	for _, r := range results {
		byRequirement := outcome.StatsFromStatus(r.Statuses)
		stats = append(stats, byRequirement)
		details = append(details, AssessmentSummary{
			Key:                r.Key,
			DisplayName:        r.Title,
			ByRequirement:      byRequirement,
			PercentageComplete: outcome.PercentageComplete(byRequirement),
		})
	}
	return OverviewSummary{
		ByPercentage:             outcome.WeightedPercentage(stats),
		PercentageComplete:       outcome.PercentageComplete(outcome.Sum(stats...)),
		ReportSummaryDetailsData: details,
	}
}

// Summary computes the overview summary of every assessment in p.
func Summary(p catalog.Provider, snapshot store.Snapshot) (OverviewSummary, error) {
	all := p.All()
	results := make([]AssessmentResult, 0, len(all))
	for _, a := range all {
		merged, err := requirement.ForAssessment(p, a.Key, statusesOf(snapshot.Assessment(a.Key)))
		if err != nil {
			return OverviewSummary{}, err
		}
		results = append(results, AssessmentResult{
			Key:      a.Key,
			Title:    a.Title,
			Statuses: requirement.Statuses(merged),
		})
	}
	return SummaryFromResults(results), nil
}

func statusesOf(data *store.AssessmentData) map[string]store.RequirementStatus {
	if data == nil {
		return nil
	}
	return data.TestStepStatus
}
