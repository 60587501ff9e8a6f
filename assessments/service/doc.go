/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package service builds reports from files on disk and serves them over
// HTTP. Inputs are re-read for every report so a running server always
// reflects the latest snapshot.
package service
