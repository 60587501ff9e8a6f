/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/microsoft/accessibility-insights-web-sub012/assessments/reportmodel"
)

// JSON writes the model as indented JSON.
func JSON(w io.Writer, model *reportmodel.ReportModel) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(model); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	return nil
}
