/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package reportmodel_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/catalog"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/outcome"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/reportmodel"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/requirement"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/store"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T, extensions ...string) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(
		catalog.Assessment{
			Key:        "headings",
			Title:      "Headings",
			Extensions: extensions,
			Requirements: []catalog.Requirement{
				{Key: "headingFunction", Name: "Heading function", Order: 1, DefaultMessage: catalog.NoMatchingInstances,
					GuidanceLinks: []catalog.Link{{Text: "WCAG 1.3.1", Href: "https://www.w3.org/WAI/WCAG21/Understanding/info-and-relationships"}}},
				{Key: "headingLevel", Name: "Heading level", Order: 2},
				{Key: "noMissingHeadings", Name: "No missing headings", Order: 3, IsManual: true},
			},
		},
		catalog.Assessment{
			Key:   "images",
			Title: "Images",
			Requirements: []catalog.Requirement{
				{Key: "textAlternative", Name: "Text alternative", Order: 1, DefaultMessage: catalog.NoFailingInstances},
			},
		},
	)
	require.NoError(t, err)
	return c
}

func generated(id string, results map[string]outcome.Status) *store.GeneratedInstance {
	inst := &store.GeneratedInstance{
		Target:          []string{id},
		HTML:            "<h2>" + id + "</h2>",
		TestStepResults: make(map[string]*store.TestStepResult, len(results)),
	}
	for key, status := range results {
		inst.TestStepResults[key] = &store.TestStepResult{ID: id, Status: status}
	}
	return inst
}

func testSnapshot() store.Snapshot {
	return store.Snapshot{
		"headings": {
			TestStepStatus: map[string]store.RequirementStatus{
				"headingFunction":   {StepFinalResult: outcome.Pass, IsStepScanned: true},
				"headingLevel":      {StepFinalResult: outcome.Fail, IsStepScanned: true},
				"noMissingHeadings": {StepFinalResult: outcome.Unknown},
			},
			ManualTestStepResultMap: map[string]store.ManualRequirementResult{
				"headingLevel": {
					ID:     "headingLevel",
					Status: outcome.Fail,
					Instances: []store.ManualInstance{
						{ID: "m1", Description: "h4 directly after h1", Selector: "#main > h4"},
					},
				},
				"headingFunction": {
					ID:     "headingFunction",
					Status: outcome.Pass,
					Instances: []store.ManualInstance{
						{ID: "m2", Description: "ignored for passing requirements"},
					},
				},
			},
			GeneratedAssessmentInstancesMap: map[string]*store.GeneratedInstance{
				"#c": generated("#c", map[string]outcome.Status{"headingLevel": outcome.Fail, "headingFunction": outcome.Pass}),
				"#a": generated("#a", map[string]outcome.Status{"headingLevel": outcome.Fail, "headingFunction": outcome.Pass}),
				"#b": generated("#b", map[string]outcome.Status{"headingLevel": outcome.Fail, "headingFunction": outcome.Fail}),
			},
		},
		"images": {
			TestStepStatus: map[string]store.RequirementStatus{
				"textAlternative": {StepFinalResult: outcome.Unknown},
			},
		},
	}
}

func stepKeys(details []reportmodel.AssessmentDetails) map[string][]string {
	out := make(map[string][]string, len(details))
	for _, d := range details {
		for _, s := range d.Steps {
			out[d.Key] = append(out[d.Key], s.Key)
		}
	}
	return out
}

func TestDetailsSectionFiltering(t *testing.T) {
	b := reportmodel.NewBuilder(testCatalog(t), testSnapshot())

	tests := []struct {
		status outcome.Status
		want   map[string][]string
	}{{
		status: outcome.Fail,
		want:   map[string][]string{"headings": {"headingLevel"}},
	}, {
		status: outcome.Pass,
		want:   map[string][]string{"headings": {"headingFunction"}},
	}, {
		status: outcome.Unknown,
		want: map[string][]string{
			"headings": {"noMissingHeadings"},
			"images":   {"textAlternative"},
		},
	}}

	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			details, err := b.Details(tt.status)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, stepKeys(details)); diff != "" {
				t.Errorf("Details(%v) mismatch (-want +got):\n%s", tt.status, diff)
			}
		})
	}
}

func TestDetailsEmptyGroupElision(t *testing.T) {
	b := reportmodel.NewBuilder(testCatalog(t), testSnapshot())

	details, err := b.Details(outcome.Fail)
	require.NoError(t, err)
	for _, d := range details {
		if d.Key == "images" {
			t.Error("images has no failed requirement and must not appear in the failed section")
		}
	}

	// A snapshot without any status leaves pass and fail empty, not nil.
	empty := reportmodel.NewBuilder(testCatalog(t), store.Snapshot{})
	details, err = empty.Details(outcome.Pass)
	require.NoError(t, err)
	require.NotNil(t, details)
	require.Empty(t, details)
}

func TestManualInstancesOverrideOnFail(t *testing.T) {
	b := reportmodel.NewBuilder(testCatalog(t), testSnapshot())

	details, err := b.Details(outcome.Fail)
	require.NoError(t, err)
	require.Len(t, details, 1)
	require.Len(t, details[0].Steps, 1)

	want := []reportmodel.InstanceReportModel{{
		Props: []reportmodel.InstanceProp{
			{Key: "Comment", Value: "h4 directly after h1"},
			{Key: "Path", Value: "#main > h4"},
		},
	}}
	if diff := cmp.Diff(want, details[0].Steps[0].Instances); diff != "" {
		t.Errorf("failed instances mismatch (-want +got):\n%s", diff)
	}
}

func TestGeneratedInstancesWithoutManual(t *testing.T) {
	snapshot := testSnapshot()
	delete(snapshot["headings"].ManualTestStepResultMap, "headingLevel")
	b := reportmodel.NewBuilder(testCatalog(t), snapshot)

	details, err := b.Details(outcome.Fail)
	require.NoError(t, err)
	instances := details[0].Steps[0].Instances
	require.Len(t, instances, 3)

	var paths []string
	for _, inst := range instances {
		path, ok := inst.Value("Path")
		require.True(t, ok)
		paths = append(paths, path)
	}
	if diff := cmp.Diff([]string{"#a", "#b", "#c"}, paths); diff != "" {
		t.Errorf("instance order mismatch (-want +got):\n%s", diff)
	}
}

func TestPassUsesGeneratedInstances(t *testing.T) {
	b := reportmodel.NewBuilder(testCatalog(t), testSnapshot())

	details, err := b.Details(outcome.Pass)
	require.NoError(t, err)
	step := details[0].Steps[0]

	// Manual instances recorded for a passing requirement are not listed;
	// only generated instances that passed this requirement are.
	require.Len(t, step.Instances, 2)
	for _, inst := range step.Instances {
		if _, ok := inst.Value("Comment"); ok {
			t.Errorf("unexpected manual instance %+v", inst)
		}
	}
	require.Equal(t, reportmodel.Assisted, step.Header.RequirementType)
	require.True(t, step.ShowPassingInstances)
	require.Len(t, step.Header.GuidanceLinks, 1)
	require.Nil(t, step.DefaultMessageComponent, "instances exist, so no default message")
}

func TestDefaultMessageOnlyForPass(t *testing.T) {
	snapshot := testSnapshot()
	snapshot["images"].TestStepStatus["textAlternative"] = store.RequirementStatus{StepFinalResult: outcome.Pass}
	b := reportmodel.NewBuilder(testCatalog(t), snapshot)

	passed, err := b.Details(outcome.Pass)
	require.NoError(t, err)
	require.Len(t, passed, 2)
	images := passed[1]
	require.Equal(t, "images", images.Key)
	require.Equal(t, &reportmodel.DefaultMessage{Message: "No matching instances"}, images.Steps[0].DefaultMessageComponent)

	failed, err := b.Details(outcome.Fail)
	require.NoError(t, err)
	for _, d := range failed {
		for _, s := range d.Steps {
			require.Nil(t, s.DefaultMessageComponent)
		}
	}
}

func TestMissingDefaultMessageGenerator(t *testing.T) {
	b := reportmodel.NewBuilder(testCatalog(t), testSnapshot(),
		reportmodel.WithDefaultMessages(map[catalog.DefaultMessageKind]reportmodel.DefaultMessageFunc{}))

	_, err := b.Details(outcome.Pass)
	require.ErrorIs(t, err, reportmodel.ErrMissingDefaultMessage)

	// Sections that never show default messages still build.
	_, err = b.Details(outcome.Fail)
	require.NoError(t, err)
}

func TestExtensionsRunInOrder(t *testing.T) {
	appendMark := func(mark string) reportmodel.Transform {
		return func(m reportmodel.RequirementReportModel) reportmodel.RequirementReportModel {
			m = m.Clone()
			if m.Annotations == nil {
				m.Annotations = map[string]string{}
			}
			m.Annotations["trail"] += mark
			return m
		}
	}

	b := reportmodel.NewBuilder(testCatalog(t, "first", "second", reportmodel.ExtensionInstanceCount, reportmodel.ExtensionHidePassingInstances), testSnapshot(),
		reportmodel.WithTransform("first", appendMark("1")),
		reportmodel.WithTransform("second", appendMark("2")))

	details, err := b.Details(outcome.Pass)
	require.NoError(t, err)
	step := details[0].Steps[0]
	require.Equal(t, "12", step.Annotations["trail"])
	require.Equal(t, "2", step.Annotations["instanceCount"])
	require.False(t, step.ShowPassingInstances)

	// Assessments without extensions are untouched.
	unknown, err := b.Details(outcome.Unknown)
	require.NoError(t, err)
	require.Equal(t, "images", unknown[1].Key)
	require.Nil(t, unknown[1].Steps[0].Annotations)
}

func TestUnknownExtension(t *testing.T) {
	b := reportmodel.NewBuilder(testCatalog(t, "does-not-exist"), testSnapshot())
	_, err := b.Details(outcome.Pass)
	require.ErrorIs(t, err, reportmodel.ErrUnknownExtension)
}

func TestUnknownRequirementFailsLoudly(t *testing.T) {
	snapshot := testSnapshot()
	snapshot["images"].TestStepStatus["colorContrast"] = store.RequirementStatus{StepFinalResult: outcome.Fail}
	b := reportmodel.NewBuilder(testCatalog(t), snapshot)

	_, err := b.Build(reportmodel.Target{Name: "Home"}, time.Now())
	var uerr *requirement.UnknownRequirementError
	require.True(t, errors.As(err, &uerr), "expected UnknownRequirementError, got %v", err)
	require.Equal(t, "images", uerr.Assessment)
	require.Equal(t, []string{"colorContrast"}, uerr.Keys)
}

func TestBuild(t *testing.T) {
	snapshot := testSnapshot()
	before, err := json.Marshal(snapshot)
	require.NoError(t, err)

	date := time.Date(2026, time.March, 14, 9, 30, 0, 0, time.UTC)
	model, err := reportmodel.NewBuilder(testCatalog(t), snapshot).Build(reportmodel.Target{
		Name:     "Contoso home",
		URL:      "https://contoso.example",
		ReportID: "report-1",
	}, date)
	require.NoError(t, err)

	wantScan := reportmodel.ScanDetails{
		ReportID:   "report-1",
		TargetPage: "Contoso home",
		URL:        "https://contoso.example",
		ReportDate: date,
	}
	if diff := cmp.Diff(wantScan, model.ScanDetails); diff != "" {
		t.Errorf("ScanDetails mismatch (-want +got):\n%s", diff)
	}

	// headings: 1/1/1 -> 1/3 each; images: all incomplete.
	wantSummary := reportmodel.OverviewSummary{
		ByPercentage:       outcome.Stats{Pass: 17, Incomplete: 66, Fail: 17},
		PercentageComplete: 50,
		ReportSummaryDetailsData: []reportmodel.AssessmentSummary{{
			Key:                "headings",
			DisplayName:        "Headings",
			ByRequirement:      outcome.Stats{Pass: 1, Incomplete: 1, Fail: 1},
			PercentageComplete: 67,
		}, {
			Key:                "images",
			DisplayName:        "Images",
			ByRequirement:      outcome.Stats{Incomplete: 1},
			PercentageComplete: 0,
		}},
	}
	if diff := cmp.Diff(wantSummary, model.Summary); diff != "" {
		t.Errorf("Summary mismatch (-want +got):\n%s", diff)
	}

	require.Len(t, model.Section(outcome.TypePass), 1)
	require.Len(t, model.Section(outcome.TypeFail), 1)
	require.Len(t, model.Section(outcome.TypeIncomplete), 2)

	after, err := json.Marshal(snapshot)
	require.NoError(t, err)
	require.JSONEq(t, string(before), string(after), "Build must not modify the snapshot")

	// Building twice yields the same model.
	again, err := reportmodel.NewBuilder(testCatalog(t), snapshot).Build(reportmodel.Target{
		Name:     "Contoso home",
		URL:      "https://contoso.example",
		ReportID: "report-1",
	}, date)
	require.NoError(t, err)
	if diff := cmp.Diff(model, again); diff != "" {
		t.Errorf("second Build() differs (-first +second):\n%s", diff)
	}
}

func TestWithComparators(t *testing.T) {
	snapshot := testSnapshot()
	snapshot["headings"].TestStepStatus["headingFunction"] = store.RequirementStatus{StepFinalResult: outcome.Fail}
	snapshot["headings"].TestStepStatus["noMissingHeadings"] = store.RequirementStatus{StepFinalResult: outcome.Fail}

	b := reportmodel.NewBuilder(testCatalog(t), snapshot,
		reportmodel.WithComparators(requirement.ByString(func(r requirement.Result) string { return r.Definition.Name })))
	details, err := b.Details(outcome.Fail)
	require.NoError(t, err)
	require.Equal(t, map[string][]string{
		"headings": {"headingFunction", "headingLevel", "noMissingHeadings"},
	}, stepKeys(details))
	require.Equal(t, reportmodel.Manual, details[0].Steps[2].Header.RequirementType)
}
