/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package schema publishes JSON schemas for the documents this module reads
// and writes: assessment catalogs, store snapshots and report models.
package schema

import (
	"fmt"
	"slices"

	"github.com/invopop/jsonschema"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/catalog"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/reportmodel"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/store"
)

// Generator wraps jsonschema.Reflector with project defaults.
type Generator struct {
	reflector jsonschema.Reflector
}

// Option configures a Generator.
type Option func(*jsonschema.Reflector)

// Strict rejects properties the Go types do not declare. Catalogs are
// decoded strictly; snapshots are not, since the browser store carries
// fields reports never read.
func Strict() Option {
	return func(r *jsonschema.Reflector) {
		r.AllowAdditionalProperties = false
	}
}

// NewGenerator constructs a generator. Schemas are inlined and only fields
// tagged `jsonschema:"required"` are required.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		reflector: jsonschema.Reflector{
			RequiredFromJSONSchemaTags: true,
			ExpandedStruct:             true,
			AllowAdditionalProperties:  true,
			DoNotReference:             true,
		},
	}
	for _, opt := range opts {
		opt(&g.reflector)
	}
	return g
}

// Reflect returns the JSON schema for v.
func (g *Generator) Reflect(v any) *jsonschema.Schema {
	return g.reflector.Reflect(v)
}

// Reflect derives the schema for v with a lenient generator.
func Reflect(v any) *jsonschema.Schema {
	return NewGenerator().Reflect(v)
}

// ReflectType reflects the zero value of T.
func ReflectType[T any](opts ...Option) *jsonschema.Schema {
	var zero T
	return NewGenerator(opts...).Reflect(&zero)
}

// Document names.
const (
	Catalog  = "catalog"
	Snapshot = "snapshot"
	Report   = "report"
)

type document struct {
	title string
	build func() *jsonschema.Schema
}

var documents = map[string]document{
	Catalog: {
		title: "Assessment catalog",
		build: func() *jsonschema.Schema { return ReflectType[catalog.File](Strict()) },
	},
	Snapshot: {
		title: "Assessment store snapshot",
		build: func() *jsonschema.Schema { return ReflectType[store.Snapshot]() },
	},
	Report: {
		title: "Assessment report",
		build: func() *jsonschema.Schema { return ReflectType[reportmodel.ReportModel]() },
	},
}

// Names lists the documents For knows about, sorted.
func Names() []string {
	names := make([]string, 0, len(documents))
	for name := range documents {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// For returns the titled schema of the named document.
func For(name string) (*jsonschema.Schema, error) {
	doc, ok := documents[name]
	if !ok {
		return nil, fmt.Errorf("unknown document %q (want one of %v)", name, Names())
	}
	s := doc.build()
	s.Title = doc.title
	return s, nil
}
