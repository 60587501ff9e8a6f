/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

// Package requirement joins an assessment's requirement definitions with
// their runtime statuses and orders the result.
package requirement

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/microsoft/accessibility-insights-web-sub012/assessments/catalog"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/outcome"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/store"
)

// Result pairs a requirement definition with its current status.
type Result struct {
	Definition catalog.Requirement
	Status     store.RequirementStatus
}

// Key returns the requirement key.
func (r Result) Key() string {
	return r.Definition.Key
}

// Outcome classifies the requirement's final result.
func (r Result) Outcome() outcome.Type {
	return outcome.TypeFromStatus(r.Status.StepFinalResult)
}

// UnknownRequirementError reports status data for requirements the
// catalog does not define.
type UnknownRequirementError struct {
	Assessment string
	Keys       []string
}

func (e *UnknownRequirementError) Error() string {
	if e.Assessment == "" {
		return fmt.Sprintf("status recorded for undefined requirements: %s", strings.Join(e.Keys, ", "))
	}
	return fmt.Sprintf("assessment %q: status recorded for undefined requirements: %s", e.Assessment, strings.Join(e.Keys, ", "))
}

// Results pairs every definition with its status and sorts the pairs with
// the given comparators, keeping definition order for ties.
//
// Definitions without a recorded status get the initial status. Statuses
// without a definition are a configuration error.
func Results(defs []catalog.Requirement, statuses map[string]store.RequirementStatus, cmps ...Comparator) ([]Result, error) {
	defined := make(map[string]struct{}, len(defs))
	results := make([]Result, 0, len(defs))
	for _, def := range defs {
		defined[def.Key] = struct{}{}
		results = append(results, Result{
			Definition: def,
			Status:     statuses[def.Key],
		})
	}

	var unknown []string
	for key := range statuses {
		if _, ok := defined[key]; !ok {
			unknown = append(unknown, key)
		}
	}
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return nil, &UnknownRequirementError{Keys: unknown}
	}

	if len(cmps) > 0 {
		slices.SortStableFunc(results, Chain(cmps...))
	}
	return results, nil
}

// ForAssessment looks the assessment up in p and merges its requirements
// with statuses.
func ForAssessment(p catalog.Provider, assessment string, statuses map[string]store.RequirementStatus, cmps ...Comparator) ([]Result, error) {
	a, ok := p.ForType(assessment)
	if !ok {
		return nil, fmt.Errorf("unknown assessment %q", assessment)
	}
	results, err := Results(a.Requirements, statuses, cmps...)
	if err != nil {
		var uerr *UnknownRequirementError
		if errors.As(err, &uerr) {
			uerr.Assessment = assessment
		}
		return nil, err
	}
	return results, nil
}

// Statuses returns the final result of every merged requirement, keyed by
// requirement key.
func Statuses(results []Result) map[string]outcome.Status {
	out := make(map[string]outcome.Status, len(results))
	for _, r := range results {
		out[r.Key()] = r.Status.StepFinalResult
	}
	return out
}

// Keys returns the requirement keys of results in order.
func Keys(results []Result) []string {
	keys := make([]string, 0, len(results))
	for _, r := range results {
		keys = append(keys, r.Key())
	}
	return keys
}

// Comparator orders two results: negative when a sorts first.
type Comparator func(a, b Result) int

// ByString orders results by a string key.
func ByString(key func(Result) string) Comparator {
	return func(a, b Result) int {
		return cmp.Compare(key(a), key(b))
	}
}

// ByNumber orders results by a numeric key.
func ByNumber(key func(Result) int) Comparator {
	return func(a, b Result) int {
		return cmp.Compare(key(a), key(b))
	}
}

// Chain tries each comparator in turn until one tells the results apart.
func Chain(cmps ...Comparator) Comparator {
	return func(a, b Result) int {
		for _, c := range cmps {
			if n := c(a, b); n != 0 {
				return n
			}
		}
		return 0
	}
}

var outcomeRank = map[outcome.Type]int{
	outcome.TypeFail:       0,
	outcome.TypeIncomplete: 1,
	outcome.TypePass:       2,
}

var (
	// ByOrder sorts by the catalog's order field.
	ByOrder = ByNumber(func(r Result) int { return r.Definition.Order })
	// ByName sorts alphabetically by display name.
	ByName = ByString(func(r Result) string { return r.Definition.Name })
	// ByOutcome puts failures first, then incomplete, then passes.
	ByOutcome = ByNumber(func(r Result) int { return outcomeRank[r.Outcome()] })
)
