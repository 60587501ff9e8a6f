/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package requirement_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/catalog"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/outcome"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/requirement"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/store"
	"github.com/stretchr/testify/require"
)

func defs() []catalog.Requirement {
	return []catalog.Requirement{
		{Key: "c", Name: "Charlie", Order: 3},
		{Key: "a", Name: "Alpha", Order: 1},
		{Key: "b2", Name: "Bravo", Order: 2},
		{Key: "b1", Name: "Bravo", Order: 2},
	}
}

func status(s outcome.Status) store.RequirementStatus {
	return store.RequirementStatus{StepFinalResult: s}
}

func TestResultsSorting(t *testing.T) {
	statuses := map[string]store.RequirementStatus{
		"a":  status(outcome.Pass),
		"b1": status(outcome.Fail),
		"b2": status(outcome.Unknown),
		"c":  status(outcome.Fail),
	}

	tests := []struct {
		name string
		cmps []requirement.Comparator
		want []string
	}{{
		name: "no comparator keeps definition order",
		want: []string{"c", "a", "b2", "b1"},
	}, {
		name: "by order is stable for ties",
		cmps: []requirement.Comparator{requirement.ByOrder},
		want: []string{"a", "b2", "b1", "c"},
	}, {
		name: "by name",
		cmps: []requirement.Comparator{requirement.ByName},
		want: []string{"a", "b2", "b1", "c"},
	}, {
		name: "by outcome then name",
		cmps: []requirement.Comparator{requirement.ByOutcome, requirement.ByName},
		want: []string{"b1", "c", "b2", "a"},
	}, {
		name: "custom string key",
		cmps: []requirement.Comparator{requirement.ByString(func(r requirement.Result) string { return r.Key() })},
		want: []string{"a", "b1", "b2", "c"},
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := requirement.Results(defs(), statuses, tt.cmps...)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, requirement.Keys(results)); diff != "" {
				t.Errorf("Results() order mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestResultsDefaultsMissingStatus(t *testing.T) {
	results, err := requirement.Results(defs(), map[string]store.RequirementStatus{
		"a": status(outcome.Pass),
	}, requirement.ByOrder)
	require.NoError(t, err)
	require.Len(t, results, 4)

	want := map[string]outcome.Status{
		"a":  outcome.Pass,
		"b1": outcome.Unknown,
		"b2": outcome.Unknown,
		"c":  outcome.Unknown,
	}
	if diff := cmp.Diff(want, requirement.Statuses(results)); diff != "" {
		t.Errorf("Statuses() mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, outcome.TypePass, results[0].Outcome())
}

func TestResultsUnknownRequirement(t *testing.T) {
	_, err := requirement.Results(defs(), map[string]store.RequirementStatus{
		"a":    status(outcome.Pass),
		"zulu": status(outcome.Fail),
		"xray": status(outcome.Fail),
	})

	var uerr *requirement.UnknownRequirementError
	require.True(t, errors.As(err, &uerr), "expected UnknownRequirementError, got %v", err)
	require.Equal(t, []string{"xray", "zulu"}, uerr.Keys)
}

func TestResultsEmpty(t *testing.T) {
	results, err := requirement.Results(nil, nil, requirement.ByOrder)
	require.NoError(t, err)
	require.Empty(t, results)
}

func TestForAssessment(t *testing.T) {
	c, err := catalog.New(catalog.Assessment{Key: "images", Title: "Images", Requirements: defs()})
	require.NoError(t, err)

	results, err := requirement.ForAssessment(c, "images", nil, requirement.ByOrder)
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b2", "b1", "c"}, requirement.Keys(results))

	_, err = requirement.ForAssessment(c, "links", nil)
	require.ErrorContains(t, err, `unknown assessment "links"`)

	_, err = requirement.ForAssessment(c, "images", map[string]store.RequirementStatus{"nope": {}})
	var uerr *requirement.UnknownRequirementError
	require.ErrorAs(t, err, &uerr)
	require.Equal(t, "images", uerr.Assessment)
	require.Contains(t, err.Error(), `assessment "images"`)
}
