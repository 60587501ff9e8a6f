/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package store holds the runtime assessment data that report models are
// built from: per-requirement statuses, manually recorded instances and the
// instances produced by automated scans.
//
// A Snapshot is keyed by assessment key. Report builders only read from it;
// the mutators here (Initialize, SetStatus, Reset) exist for whoever owns the
// snapshot and must not run while a report is being built from it.
package store
