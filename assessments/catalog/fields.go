/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/microsoft/accessibility-insights-web-sub012/assessments/store"
)

// FieldSource says where an instance field takes its value from.
type FieldSource string

const (
	SourcePath           FieldSource = "path"
	SourceSnippet        FieldSource = "snippet"
	SourceProperty       FieldSource = "property"
	SourceFailureSummary FieldSource = "failureSummary"
)

// InstanceField is one labelled column of a generated instance in a report.
type InstanceField struct {
	Label    string      `yaml:"label" json:"label" jsonschema:"required"`
	Source   FieldSource `yaml:"source" json:"source" jsonschema:"required,enum=path,enum=snippet,enum=property,enum=failureSummary"`
	Property string      `yaml:"property,omitempty" json:"property,omitempty"`
}

// DefaultInstanceFields are used by requirements that declare none.
func DefaultInstanceFields() []InstanceField {
	return []InstanceField{
		{Label: "Path", Source: SourcePath},
		{Label: "Snippet", Source: SourceSnippet},
	}
}

// Value extracts the field from a generated instance. An empty string
// means the instance has no value for the field.
func (f InstanceField) Value(requirement string, inst *store.GeneratedInstance) string {
	if inst == nil {
		return ""
	}
	switch f.Source {
	case SourcePath:
		return strings.Join(inst.Target, ", ")
	case SourceSnippet:
		return inst.HTML
	case SourceProperty:
		v, ok := inst.PropertyBag[f.Property]
		if !ok || v == nil {
			return ""
		}
		return fmt.Sprint(v)
	case SourceFailureSummary:
		if r := inst.ResultFor(requirement); r != nil {
			return r.FailureSummary
		}
		return ""
	default:
		return ""
	}
}

func (f InstanceField) validate() error {
	if f.Label == "" {
		return errors.New("instance field with empty label")
	}
	switch f.Source {
	case SourcePath, SourceSnippet, SourceFailureSummary:
		return nil
	case SourceProperty:
		if f.Property == "" {
			return fmt.Errorf("instance field %q: property source needs a property name", f.Label)
		}
		return nil
	default:
		return fmt.Errorf("instance field %q: unknown source %q", f.Label, f.Source)
	}
}
