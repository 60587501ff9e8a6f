/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package service

import (
	"context"

	"github.com/microsoft/accessibility-insights-web-sub012/assessments/catalog"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/store"
	"golang.org/x/sync/errgroup"
)

// Source names the files a report is built from.
type Source struct {
	// CatalogPath is a YAML catalog. Empty selects the embedded default.
	CatalogPath string
	// SnapshotPath is a JSON store snapshot. Empty means nothing has been
	// tested yet.
	SnapshotPath string
}

// Load reads the catalog and the snapshot concurrently. Every catalog
// requirement missing from the snapshot is given its initial status.
func (s Source) Load(ctx context.Context) (*catalog.Catalog, store.Snapshot, error) {
	var (
		cat      *catalog.Catalog
		snapshot store.Snapshot
	)

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		if s.CatalogPath == "" {
			cat, err = catalog.Default(ctx)
		} else {
			cat, err = catalog.LoadFile(ctx, s.CatalogPath)
		}
		return err
	})
	eg.Go(func() error {
		if s.SnapshotPath == "" {
			snapshot = store.Snapshot{}
			return nil
		}
		var err error
		snapshot, err = store.LoadFile(ctx, s.SnapshotPath)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, nil, err
	}
	catalog.InitializeSnapshot(cat, snapshot)
	return cat, snapshot, nil
}
