/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package outcome

// Stats counts requirements (or instances) per outcome type.
type Stats struct {
	Pass       int `json:"pass"`
	Incomplete int `json:"incomplete"`
	Fail       int `json:"fail"`
}

// Total returns the sum of the three counters.
func (s Stats) Total() int {
	return s.Pass + s.Incomplete + s.Fail
}

// Count returns the counter for t.
func (s Stats) Count(t Type) int {
	switch t {
	case TypePass:
		return s.Pass
	case TypeIncomplete:
		return s.Incomplete
	case TypeFail:
		return s.Fail
	default:
		panic("outcome: unhandled type " + string(t))
	}
}

// Add returns the element-wise sum of s and o.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		Pass:       s.Pass + o.Pass,
		Incomplete: s.Incomplete + o.Incomplete,
		Fail:       s.Fail + o.Fail,
	}
}

func (s *Stats) increment(t Type) {
	switch t {
	case TypePass:
		s.Pass++
	case TypeIncomplete:
		s.Incomplete++
	case TypeFail:
		s.Fail++
	}
}

// StatsFromStatus classifies every status and counts the results.
// Types no status maps to are reported as zero.
func StatsFromStatus(statuses map[string]Status) Stats {
	var stats Stats
	for _, s := range statuses {
		stats.increment(TypeFromStatus(s))
	}
	return stats
}

// StatsFromTypes counts already classified outcomes.
func StatsFromTypes(types ...Type) Stats {
	var stats Stats
	for _, t := range types {
		stats.increment(t)
	}
	return stats
}
