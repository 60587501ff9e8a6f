/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"bytes"
	"fmt"
	"html/template"
	"io"

	"github.com/microsoft/accessibility-insights-web-sub012/assessments/reportmodel"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

var markdownConverter = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

var page = template.Must(template.New("report").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Assessment report: {{.Title}}</title>
<style>
body { font-family: sans-serif; max-width: 60rem; margin: 2rem auto; padding: 0 1rem; }
table { border-collapse: collapse; margin-bottom: 1rem; }
th, td { border: 1px solid #ccc; padding: 0.25rem 0.5rem; text-align: left; }
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

// HTML writes the report as a standalone HTML page.
func HTML(w io.Writer, model *reportmodel.ReportModel) error {
	md, err := Markdown(model)
	if err != nil {
		return err
	}
	var body bytes.Buffer
	if err := markdownConverter.Convert([]byte(md), &body); err != nil {
		return fmt.Errorf("converting markdown: %w", err)
	}
	return page.Execute(w, struct {
		Title string
		// goldmark escapes raw HTML in its input by default.
		Body template.HTML
	}{
		Title: model.ScanDetails.TargetPage,
		Body:  template.HTML(body.String()), //nolint:gosec
	})
}
