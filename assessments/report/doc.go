/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package report renders a reportmodel.ReportModel into shareable documents.

# Formats

  - JSON: the model itself, indented
  - Markdown: summary tables followed by the failed, incomplete and passed
    sections, one heading per assessment and requirement
  - HTML: the Markdown rendering converted to a standalone HTML page
  - Terminal: the Markdown rendering styled for an ANSI terminal

Render dispatches on a Format:

	f, err := report.ParseFormat("html")
	if err != nil {
		return err
	}
	if err := report.Render(ctx, w, f, model); err != nil {
		return err
	}

Renderers never modify the model and are safe for concurrent use.
*/
package report
