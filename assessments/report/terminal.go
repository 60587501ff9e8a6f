/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/reportmodel"
)

const defaultTerminalWidth = 100

// Terminal renders the report for an ANSI terminal, wrapping at width
// columns. A width of zero or less uses the default of 100.
func Terminal(model *reportmodel.ReportModel, width int) (string, error) {
	if width <= 0 {
		width = defaultTerminalWidth
	}
	md, err := Markdown(model)
	if err != nil {
		return "", err
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating terminal renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return "", fmt.Errorf("rendering for terminal: %w", err)
	}
	return out, nil
}
