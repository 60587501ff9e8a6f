/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package reportmodel

import (
	"errors"
	"strconv"
)

// ErrUnknownExtension is returned when an assessment names an extension the
// builder has no transform for.
var ErrUnknownExtension = errors.New("unknown report extension")

// Transform derives a new requirement model from an existing one.
type Transform func(RequirementReportModel) RequirementReportModel

// Names of the transforms every Builder knows about.
const (
	ExtensionHidePassingInstances = "hide-passing-instances"
	ExtensionInstanceCount        = "instance-count"
)

// AnnotationInstanceCount is the annotation set by InstanceCount.
const AnnotationInstanceCount = "instanceCount"

// BuiltinTransforms returns the transforms registered on every Builder.
func BuiltinTransforms() map[string]Transform {
	return map[string]Transform{
		ExtensionHidePassingInstances: HidePassingInstances,
		ExtensionInstanceCount:        InstanceCount,
	}
}

// HidePassingInstances turns off the passing instance list.
func HidePassingInstances(m RequirementReportModel) RequirementReportModel {
	m.ShowPassingInstances = false
	return m
}

// InstanceCount records the number of listed instances as an annotation.
func InstanceCount(m RequirementReportModel) RequirementReportModel {
	out := m.Clone()
	if out.Annotations == nil {
		out.Annotations = make(map[string]string, 1)
	}
	out.Annotations[AnnotationInstanceCount] = strconv.Itoa(len(out.Instances))
	return out
}

// Compose folds transforms left to right into one.
func Compose(transforms ...Transform) Transform {
	return func(m RequirementReportModel) RequirementReportModel {
		for _, t := range transforms {
			m = t(m)
		}
		return m
	}
}
