/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/chainguard-dev/clog"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/reportmodel"
)

// Format selects a renderer.
type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
	FormatTerminal Format = "terminal"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatJSON, FormatMarkdown, FormatHTML, FormatTerminal}
}

// ParseFormat accepts a format name or a common alias ("md", "htm", "term").
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "html", "htm":
		return FormatHTML, nil
	case "terminal", "term", "text":
		return FormatTerminal, nil
	default:
		return "", fmt.Errorf("unknown report format %q", s)
	}
}

// ContentType returns the MIME type of the rendered output.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json"
	case FormatMarkdown:
		return "text/markdown; charset=utf-8"
	case FormatHTML:
		return "text/html; charset=utf-8"
	default:
		return "text/plain; charset=utf-8"
	}
}

// Extension returns the usual file extension for the format.
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatMarkdown:
		return ".md"
	case FormatHTML:
		return ".html"
	default:
		return ".txt"
	}
}

// Render writes model to w in format f.
func Render(ctx context.Context, w io.Writer, f Format, model *reportmodel.ReportModel) error {
	clog.FromContext(ctx).With("format", string(f)).Debug("Rendering report")

	switch f {
	case FormatJSON:
		return JSON(w, model)
	case FormatHTML:
		return HTML(w, model)
	case FormatMarkdown:
		md, err := Markdown(model)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, md)
		return err
	case FormatTerminal:
		out, err := Terminal(model, defaultTerminalWidth)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	default:
		return fmt.Errorf("unknown report format %q", f)
	}
}
