/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package outcome

import (
	"fmt"
	"strings"
)

// Status is the final result recorded for a requirement.
type Status int

const (
	// Unknown is the initial status of every requirement.
	Unknown Status = iota
	Pass
	Fail
)

// String returns the canonical upper-case name of the status.
func (s Status) String() string {
	switch s {
	case Unknown:
		return "UNKNOWN"
	case Pass:
		return "PASS"
	case Fail:
		return "FAIL"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// ParseStatus parses PASS, FAIL or UNKNOWN, ignoring case.
func ParseStatus(s string) (Status, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "UNKNOWN":
		return Unknown, nil
	case "PASS":
		return Pass, nil
	case "FAIL":
		return Fail, nil
	default:
		return Unknown, fmt.Errorf("invalid status %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	if s < Unknown || s > Fail {
		return nil, fmt.Errorf("invalid status %d", int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Type is the outcome category a requirement or instance falls into.
type Type string

const (
	TypePass       Type = "pass"
	TypeIncomplete Type = "incomplete"
	TypeFail       Type = "fail"
)

// AllTypes returns the outcome types in display order.
func AllTypes() []Type {
	return []Type{TypePass, TypeIncomplete, TypeFail}
}

// TypeFromStatus maps a status onto its outcome type.
// It panics on a value outside the three declared statuses.
func TypeFromStatus(s Status) Type {
	switch s {
	case Pass:
		return TypePass
	case Fail:
		return TypeFail
	case Unknown:
		return TypeIncomplete
	default:
		panic(fmt.Sprintf("outcome: unhandled status %d", int(s)))
	}
}

// StatusFromType is the inverse of TypeFromStatus.
func StatusFromType(t Type) Status {
	switch t {
	case TypePass:
		return Pass
	case TypeFail:
		return Fail
	case TypeIncomplete:
		return Unknown
	default:
		panic(fmt.Sprintf("outcome: unhandled type %q", string(t)))
	}
}

// Semantic holds the human readable wording for an outcome type.
type Semantic struct {
	PastTense string `json:"pastTense"`
}

var semantics = map[Type]Semantic{
	TypePass:       {PastTense: "passed"},
	TypeIncomplete: {PastTense: "incomplete"},
	TypeFail:       {PastTense: "failed"},
}

// SemanticsOf returns the wording for t.
// It panics when t is not one of the declared types.
func SemanticsOf(t Type) Semantic {
	s, ok := semantics[t]
	if !ok {
		panic(fmt.Sprintf("outcome: no semantics for type %q", string(t)))
	}
	return s
}
