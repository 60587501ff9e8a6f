/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package catalog

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/microsoft/accessibility-insights-web-sub012/assessments/store"
)

// Link points at guidance for a requirement.
type Link struct {
	Text string `yaml:"text" json:"text" jsonschema:"required"`
	Href string `yaml:"href" json:"href" jsonschema:"required"`
}

// DefaultMessageKind names the fallback message shown for a passing
// requirement that has nothing to list.
type DefaultMessageKind string

const (
	NoMatchingInstances DefaultMessageKind = "no-matching-instances"
	NoFailingInstances  DefaultMessageKind = "no-failing-instances"
)

// Requirement is one testable criterion of an assessment.
type Requirement struct {
	Key                  string             `yaml:"key" json:"key" jsonschema:"required"`
	Name                 string             `yaml:"name" json:"name" jsonschema:"required"`
	Description          string             `yaml:"description,omitempty" json:"description,omitempty"`
	Order                int                `yaml:"order" json:"order"`
	IsManual             bool               `yaml:"isManual,omitempty" json:"isManual,omitempty"`
	GuidanceLinks        []Link             `yaml:"guidanceLinks,omitempty" json:"guidanceLinks,omitempty"`
	ReportInstanceFields []InstanceField    `yaml:"reportInstanceFields,omitempty" json:"reportInstanceFields,omitempty"`
	DefaultMessage       DefaultMessageKind `yaml:"defaultMessage,omitempty" json:"defaultMessage,omitempty" jsonschema:"enum=no-matching-instances,enum=no-failing-instances"`
	HidePassingInstances bool               `yaml:"hidePassingInstances,omitempty" json:"hidePassingInstances,omitempty"`
}

// InstanceFields returns the fields rendered for each generated instance.
func (r Requirement) InstanceFields() []InstanceField {
	if len(r.ReportInstanceFields) == 0 {
		return DefaultInstanceFields()
	}
	return r.ReportInstanceFields
}

// Assessment is a named group of requirements covering one topic.
type Assessment struct {
	Key          string        `yaml:"key" json:"key" jsonschema:"required"`
	Title        string        `yaml:"title" json:"title" jsonschema:"required"`
	Requirements []Requirement `yaml:"requirements" json:"requirements"`
	// Extensions names the report model transforms applied, in order, to
	// every requirement of this assessment.
	Extensions []string `yaml:"extensions,omitempty" json:"extensions,omitempty"`
}

// Requirement looks a requirement up by key.
func (a Assessment) Requirement(key string) (Requirement, bool) {
	for _, r := range a.Requirements {
		if r.Key == key {
			return r, true
		}
	}
	return Requirement{}, false
}

// RequirementKeys returns the requirement keys in declaration order.
func (a Assessment) RequirementKeys() []string {
	keys := make([]string, 0, len(a.Requirements))
	for _, r := range a.Requirements {
		keys = append(keys, r.Key)
	}
	return keys
}

// Provider gives read access to a set of assessments.
type Provider interface {
	// All returns every assessment in catalog order.
	All() []Assessment
	// ForType returns the assessment with the given key.
	ForType(key string) (Assessment, bool)
}

// Catalog is the Provider built from a fixed list of assessments.
type Catalog struct {
	assessments []Assessment
	index       map[string]int
}

var _ Provider = (*Catalog)(nil)

// New validates the assessments and returns a catalog over them.
func New(assessments ...Assessment) (*Catalog, error) {
	c := &Catalog{
		assessments: make([]Assessment, 0, len(assessments)),
		index:       make(map[string]int, len(assessments)),
	}
	var errs []error
	for _, a := range assessments {
		if err := validateAssessment(a); err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := c.index[a.Key]; dup {
			errs = append(errs, fmt.Errorf("duplicate assessment %q", a.Key))
			continue
		}
		c.index[a.Key] = len(c.assessments)
		c.assessments = append(c.assessments, a)
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return c, nil
}

// All implements Provider.
func (c *Catalog) All() []Assessment {
	out := make([]Assessment, len(c.assessments))
	copy(out, c.assessments)
	return out
}

// ForType implements Provider.
func (c *Catalog) ForType(key string) (Assessment, bool) {
	i, ok := c.index[key]
	if !ok {
		return Assessment{}, false
	}
	return c.assessments[i], true
}

// InitializeSnapshot gives every requirement of p an initial status in s.
func InitializeSnapshot(p Provider, s store.Snapshot) {
	for _, a := range p.All() {
		s.Initialize(a.Key, a.RequirementKeys()...)
	}
}

func validateAssessment(a Assessment) error {
	if a.Key == "" {
		return errors.New("assessment with empty key")
	}
	var errs []error
	seen := make(map[string]struct{}, len(a.Requirements))
	for _, r := range a.Requirements {
		if r.Key == "" {
			errs = append(errs, errors.New("requirement with empty key"))
			continue
		}
		if _, dup := seen[r.Key]; dup {
			errs = append(errs, fmt.Errorf("duplicate requirement %q", r.Key))
			continue
		}
		seen[r.Key] = struct{}{}

		switch r.DefaultMessage {
		case "", NoMatchingInstances, NoFailingInstances:
		default:
			errs = append(errs, fmt.Errorf("requirement %q: unknown default message %q", r.Key, r.DefaultMessage))
		}
		for _, l := range r.GuidanceLinks {
			if err := l.validate(); err != nil {
				errs = append(errs, fmt.Errorf("requirement %q: %w", r.Key, err))
			}
		}
		for _, f := range r.ReportInstanceFields {
			if err := f.validate(); err != nil {
				errs = append(errs, fmt.Errorf("requirement %q: %w", r.Key, err))
			}
		}
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("assessment %q: %w", a.Key, err)
	}
	return nil
}

// validate requires an absolute http(s) URL that can be used as a link
// destination as is.
func (l Link) validate() error {
	if l.Text == "" {
		return fmt.Errorf("guidance link %q with empty text", l.Href)
	}
	if strings.ContainsAny(l.Href, " \t\r\n<>") {
		return fmt.Errorf("guidance link %q: href contains whitespace or angle brackets", l.Text)
	}
	u, err := url.Parse(l.Href)
	if err != nil {
		return fmt.Errorf("guidance link %q: %w", l.Text, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("guidance link %q: href %q is not an absolute http(s) URL", l.Text, l.Href)
	}
	return nil
}
