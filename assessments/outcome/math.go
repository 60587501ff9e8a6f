/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package outcome

import "math"

// Fractions is a Stats record scaled so its fields add up to 1.
type Fractions struct {
	Pass       float64 `json:"pass"`
	Incomplete float64 `json:"incomplete"`
	Fail       float64 `json:"fail"`
}

func (f Fractions) add(o Fractions) Fractions {
	return Fractions{
		Pass:       f.Pass + o.Pass,
		Incomplete: f.Incomplete + o.Incomplete,
		Fail:       f.Fail + o.Fail,
	}
}

func (f Fractions) total() float64 {
	return f.Pass + f.Incomplete + f.Fail
}

func (f Fractions) normalize() Fractions {
	total := f.total()
	if total == 0 {
		return Fractions{}
	}
	return Fractions{
		Pass:       f.Pass / total,
		Incomplete: f.Incomplete / total,
		Fail:       f.Fail / total,
	}
}

// Sum adds the given records element-wise. No records sum to zero.
func Sum(stats ...Stats) Stats {
	var total Stats
	for _, s := range stats {
		total = total.Add(s)
	}
	return total
}

// Normalize divides every field by the record's total.
// An all-zero record normalizes to all-zero fractions.
func Normalize(s Stats) Fractions {
	return Fractions{
		Pass:       float64(s.Pass),
		Incomplete: float64(s.Incomplete),
		Fail:       float64(s.Fail),
	}.normalize()
}

// WeightedPercentage combines records giving each one equal weight,
// whatever its size, and converts the result to whole percentages.
//
// Pass and fail are rounded independently; incomplete takes the remainder
// so the three values always add up to 100. When no record has any count
// the result is 100% incomplete.
func WeightedPercentage(stats []Stats) Stats {
	var summed Fractions
	for _, s := range stats {
		summed = summed.add(Normalize(s))
	}
	normalized := summed.normalize()
	if normalized.total() == 0 {
		return Stats{Incomplete: 100}
	}

	pass := int(math.Round(100 * normalized.Pass))
	fail := int(math.Round(100 * normalized.Fail))
	// Rounding both halves up can overshoot by one.
	if pass+fail > 100 {
		fail = 100 - pass
	}
	return Stats{
		Pass:       pass,
		Incomplete: 100 - pass - fail,
		Fail:       fail,
	}
}

// PercentageComplete returns the share of requirements with a final
// pass or fail result, as a whole percentage. Zero requirements are 0%.
func PercentageComplete(s Stats) int {
	total := s.Total()
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(s.Pass+s.Fail) / float64(total)))
}
