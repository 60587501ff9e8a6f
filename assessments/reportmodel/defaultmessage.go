/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package reportmodel

import (
	"errors"

	"github.com/microsoft/accessibility-insights-web-sub012/assessments/catalog"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/outcome"
	"github.com/microsoft/accessibility-insights-web-sub012/assessments/store"
)

// ErrMissingDefaultMessage is returned when a requirement names a default
// message kind the builder has no generator for.
var ErrMissingDefaultMessage = errors.New("no default message generator")

// DefaultMessage stands in for an instance list that has nothing to show.
type DefaultMessage struct {
	Message       string `json:"message"`
	InstanceCount int    `json:"instanceCount"`
}

// DefaultMessageFunc returns the fallback message for a requirement, or nil
// when the requirement's instances speak for themselves.
type DefaultMessageFunc func(instances map[string]*store.GeneratedInstance, requirement string) *DefaultMessage

const (
	noMatchingInstances = "No matching instances"
	noFailingInstances  = "No failing instances"
)

// DefaultMessageGenerators returns the standard generators keyed by kind.
func DefaultMessageGenerators() map[catalog.DefaultMessageKind]DefaultMessageFunc {
	return map[catalog.DefaultMessageKind]DefaultMessageFunc{
		catalog.NoMatchingInstances: NoMatchingInstanceMessage,
		catalog.NoFailingInstances:  NoFailingInstanceMessage,
	}
}

// NoMatchingInstanceMessage reports when no generated instance has a
// result for the requirement.
func NoMatchingInstanceMessage(instances map[string]*store.GeneratedInstance, requirement string) *DefaultMessage {
	if matching, _ := countInstances(instances, requirement); matching == 0 {
		return &DefaultMessage{Message: noMatchingInstances}
	}
	return nil
}

// NoFailingInstanceMessage reports when no generated instance has a result
// for the requirement, or when none of those results failed.
func NoFailingInstanceMessage(instances map[string]*store.GeneratedInstance, requirement string) *DefaultMessage {
	matching, failing := countInstances(instances, requirement)
	switch {
	case matching == 0:
		return &DefaultMessage{Message: noMatchingInstances}
	case failing == 0:
		return &DefaultMessage{Message: noFailingInstances, InstanceCount: matching}
	default:
		return nil
	}
}

func countInstances(instances map[string]*store.GeneratedInstance, requirement string) (matching, failing int) {
	for _, inst := range instances {
		r := inst.ResultFor(requirement)
		if r == nil {
			continue
		}
		matching++
		if r.Status == outcome.Fail {
			failing++
		}
	}
	return matching, failing
}
