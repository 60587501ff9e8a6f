/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chainguard-dev/clog"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

// File is the on-disk shape of a catalog.
type File struct {
	Assessments []Assessment `yaml:"assessments" json:"assessments"`
}

// Load decodes a YAML catalog and validates it.
func Load(ctx context.Context, r io.Reader) (*Catalog, error) {
	var f File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty catalog")
		}
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}

	c, err := New(f.Assessments...)
	if err != nil {
		return nil, fmt.Errorf("validating catalog: %w", err)
	}

	clog.FromContext(ctx).With("assessments", len(c.assessments)).Debug("Loaded assessment catalog")
	return c, nil
}

// LoadFile reads a YAML catalog from disk.
func LoadFile(ctx context.Context, path string) (*Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	c, err := Load(ctx, bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Default returns the catalog embedded in this package.
func Default(ctx context.Context) (*Catalog, error) {
	return Load(ctx, bytes.NewReader(defaultCatalog))
}
