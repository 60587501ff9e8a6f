/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/chainguard-dev/clog"
)

// Load decodes a JSON snapshot.
func Load(ctx context.Context, r io.Reader) (Snapshot, error) {
	var snapshot Snapshot
	if err := json.NewDecoder(r).Decode(&snapshot); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}
	if snapshot == nil {
		snapshot = Snapshot{}
	}
	for key, data := range snapshot {
		if data == nil {
			return nil, fmt.Errorf("assessment %q: null data", key)
		}
	}

	clog.FromContext(ctx).With("assessments", len(snapshot)).Debug("Loaded assessment snapshot")
	return snapshot, nil
}

// LoadFile reads and decodes a JSON snapshot file.
func LoadFile(ctx context.Context, path string) (Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening snapshot: %w", err)
	}
	defer f.Close()

	snapshot, err := Load(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return snapshot, nil
}
