/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/microsoft/accessibility-insights-web-sub012/assessments/outcome"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/reportmodel"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const reportDateLayout = "2006-01-02 15:04 MST"

var (
	title = cases.Title(language.English)

	markdownEscaper = strings.NewReplacer(
		`\`, `\\`,
		"`", "\\`",
		`*`, `\*`,
		`_`, `\_`,
		`[`, `\[`,
		`]`, `\]`,
		`<`, `\<`,
		`>`, `\>`,
		`|`, `\|`,
		`#`, `\#`,
		`~`, `\~`,
		"\r\n", " ",
		"\n", " ",
	)
)

// escape makes s safe to embed in markdown text and table cells.
func escape(s string) string {
	return markdownEscaper.Replace(s)
}

var orderedListMarker = regexp.MustCompile(`^(\d{1,9})([.)])`)

// escapeParagraph is escape for text that starts a line, where a leading
// "-", "+" or "1." would otherwise open a list.
func escapeParagraph(s string) string {
	s = escape(strings.TrimLeft(s, " \t"))
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return `\` + s
	}
	return orderedListMarker.ReplaceAllString(s, `$1\$2`)
}

var destinationEscaper = strings.NewReplacer(
	" ", "%20",
	"<", "%3C",
	">", "%3E",
	"\r", "",
	"\n", "",
)

// linkDestination wraps href in angle brackets so parentheses and other
// punctuation in the URL do not end the link early.
func linkDestination(href string) string {
	return "<" + destinationEscaper.Replace(href) + ">"
}

// sectionOrder is the order sections appear in a rendered report.
var sectionOrder = []outcome.Type{outcome.TypeFail, outcome.TypeIncomplete, outcome.TypePass}

// Markdown renders the model as a GitHub flavored markdown document.
func Markdown(model *reportmodel.ReportModel) (string, error) {
	var sb strings.Builder

	writeHeader(&sb, model.ScanDetails)

	summary, err := summaryMarkdown(model.Summary)
	if err != nil {
		return "", err
	}
	sb.WriteString(summary)

	for _, t := range sectionOrder {
		section, err := sectionMarkdown(t, model.Section(t))
		if err != nil {
			return "", err
		}
		sb.WriteString(section)
	}
	return sb.String(), nil
}

func writeHeader(sb *strings.Builder, d reportmodel.ScanDetails) {
	fmt.Fprintf(sb, "# Assessment report: %s\n\n", escape(d.TargetPage))
	if d.URL != "" {
		fmt.Fprintf(sb, "- **URL:** %s\n", escape(d.URL))
	}
	if !d.ReportDate.IsZero() {
		fmt.Fprintf(sb, "- **Date:** %s\n", d.ReportDate.UTC().Format(reportDateLayout))
	}
	if d.ReportID != "" {
		fmt.Fprintf(sb, "- **Report ID:** %s\n", escape(d.ReportID))
	}
	sb.WriteString("\n")
}

func summaryMarkdown(s reportmodel.OverviewSummary) (string, error) {
	var sb strings.Builder
	sb.WriteString("## Summary\n\n")
	fmt.Fprintf(&sb, "**%d%% complete**\n\n", s.PercentageComplete)

	headers := make([]string, 0, 3)
	row := make([]string, 0, 3)
	for _, t := range outcome.AllTypes() {
		headers = append(headers, title.String(outcome.SemanticsOf(t).PastTense))
		row = append(row, percent(s.ByPercentage.Count(t)))
	}
	overall, err := renderTable(headers, [][]string{row})
	if err != nil {
		return "", err
	}
	sb.WriteString(overall)
	sb.WriteString("\n")

	if len(s.ReportSummaryDetailsData) == 0 {
		return sb.String(), nil
	}

	headers = []string{"Assessment"}
	for _, t := range outcome.AllTypes() {
		headers = append(headers, title.String(outcome.SemanticsOf(t).PastTense))
	}
	headers = append(headers, "Complete")

	rows := make([][]string, 0, len(s.ReportSummaryDetailsData))
	for _, a := range s.ReportSummaryDetailsData {
		row := []string{escape(a.DisplayName)}
		for _, t := range outcome.AllTypes() {
			row = append(row, strconv.Itoa(a.ByRequirement.Count(t)))
		}
		row = append(row, percent(a.PercentageComplete))
		rows = append(rows, row)
	}
	byAssessment, err := renderTable(headers, rows)
	if err != nil {
		return "", err
	}
	sb.WriteString(byAssessment)
	sb.WriteString("\n")
	return sb.String(), nil
}

func sectionMarkdown(t outcome.Type, details []reportmodel.AssessmentDetails) (string, error) {
	var sb strings.Builder
	count := 0
	for _, d := range details {
		count += len(d.Steps)
	}
	fmt.Fprintf(&sb, "## %s %s (%d)\n\n", indicator(t), title.String(outcome.SemanticsOf(t).PastTense), count)
	if len(details) == 0 {
		fmt.Fprintf(&sb, "No %s requirements.\n\n", outcome.SemanticsOf(t).PastTense)
		return sb.String(), nil
	}

	for _, d := range details {
		fmt.Fprintf(&sb, "### %s\n\n", escape(d.DisplayName))
		for _, step := range d.Steps {
			req, err := requirementMarkdown(t, step)
			if err != nil {
				return "", fmt.Errorf("rendering %s/%s: %w", d.Key, step.Key, err)
			}
			sb.WriteString(req)
		}
	}
	return sb.String(), nil
}

func requirementMarkdown(t outcome.Type, step reportmodel.RequirementReportModel) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "#### %s\n\n", escape(step.Header.DisplayName))
	fmt.Fprintf(&sb, "_%s requirement_\n\n", title.String(string(step.Header.RequirementType)))
	if step.Header.Description != "" {
		fmt.Fprintf(&sb, "%s\n\n", escapeParagraph(step.Header.Description))
	}
	if len(step.Header.GuidanceLinks) > 0 {
		links := make([]string, 0, len(step.Header.GuidanceLinks))
		for _, l := range step.Header.GuidanceLinks {
			links = append(links, fmt.Sprintf("[%s](%s)", escape(l.Text), linkDestination(l.Href)))
		}
		fmt.Fprintf(&sb, "Guidance: %s\n\n", strings.Join(links, ", "))
	}
	if n, ok := step.Annotations[reportmodel.AnnotationInstanceCount]; ok {
		fmt.Fprintf(&sb, "Instances: %s\n\n", n)
	}

	if dm := step.DefaultMessageComponent; dm != nil {
		if dm.InstanceCount > 0 {
			fmt.Fprintf(&sb, "> %s (%d checked)\n\n", escapeParagraph(dm.Message), dm.InstanceCount)
		} else {
			fmt.Fprintf(&sb, "> %s\n\n", escapeParagraph(dm.Message))
		}
	}

	if t == outcome.TypePass && !step.ShowPassingInstances {
		return sb.String(), nil
	}
	if len(step.Instances) == 0 {
		return sb.String(), nil
	}
	table, err := instanceTable(step.Instances)
	if err != nil {
		return "", err
	}
	sb.WriteString(table)
	sb.WriteString("\n")
	return sb.String(), nil
}

// instanceTable lays instances out as rows under the union of their prop
// keys, in first-seen order.
func instanceTable(instances []reportmodel.InstanceReportModel) (string, error) {
	var headers []string
	seen := make(map[string]bool)
	for _, inst := range instances {
		for _, p := range inst.Props {
			if !seen[p.Key] {
				seen[p.Key] = true
				headers = append(headers, p.Key)
			}
		}
	}
	if len(headers) == 0 {
		return "", nil
	}

	rows := make([][]string, 0, len(instances))
	for _, inst := range instances {
		row := make([]string, len(headers))
		for i, h := range headers {
			if v, ok := inst.Value(h); ok {
				row[i] = escape(v)
			}
		}
		rows = append(rows, row)
	}
	return renderTable(headers, rows)
}

func indicator(t outcome.Type) string {
	switch t {
	case outcome.TypeFail:
		return "❌"
	case outcome.TypeIncomplete:
		return "⚠️"
	default:
		return "✅"
	}
}

func percent(n int) string {
	return strconv.Itoa(n) + "%"
}
