/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package outcome classifies requirement statuses and rolls them up into
outcome statistics.

# Classification

Every requirement carries a three-valued Status (PASS, FAIL, UNKNOWN). The
classifier maps it onto one of three outcome types:

	outcome.TypeFromStatus(outcome.Pass)    // "pass"
	outcome.TypeFromStatus(outcome.Fail)    // "fail"
	outcome.TypeFromStatus(outcome.Unknown) // "incomplete"

# Statistics

StatsFromStatus counts statuses per outcome type. The result always carries
all three counters, zero when no requirement maps to a type.

# Math

Sum, Normalize, WeightedPercentage and PercentageComplete combine Stats from
many assessments. WeightedPercentage gives each assessment equal weight
regardless of how many requirements it has, and its three percentages always
add up to exactly 100.

All-zero input never divides by zero: Normalize returns zero fractions and
PercentageComplete returns 0.
*/
package outcome
