/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package reportmodel builds the report model: the immutable document tree a
renderer turns into a shareable assessment report.

# Overview

A Builder walks every assessment of a catalog.Provider, merges its
requirement definitions with the statuses recorded in a store.Snapshot and
produces a ReportModel holding:

  - Summary: per-assessment requirement counts plus a weighted percentage
    across assessments, each assessment counting equally
  - ScanDetails: the target page and report date
  - PassedDetailsData, FailedDetailsData, IncompleteDetailsData: for each
    final result, the assessments with at least one requirement in it

# Instances

A failed requirement with manually recorded instances lists those manual
instances only. In every other case the requirement lists the generated
instances whose own result for the requirement matches the section.

# Extensions

An assessment may name extensions in the catalog. Each name resolves to a
Transform registered on the Builder; the transforms run left to right over
every requirement model of the assessment before it is added to the report.
Transforms receive and return values and must not modify shared slices or
maps in place; RequirementReportModel.Clone helps with that.

# Errors

Build fails rather than producing a partial report when the catalog and
the snapshot disagree: status data for an undefined requirement, a default
message kind with no generator, or an extension with no transform.

# Usage

	b := reportmodel.NewBuilder(provider, snapshot)
	model, err := b.Build(reportmodel.Target{Name: "Home", URL: "https://example.com"}, time.Now())
	if err != nil {
		return err
	}

Building is a pure function of its inputs and may be repeated freely. The
snapshot must not be modified while a build is running.
*/
package reportmodel
