package domain

import (
	"fmt"
	"strings"
	"time"
)

// Availability is the normalized per-day availability of a member.
// Value object - immutable string enum. Raw rows arrive from the
// database with loosely-typed values ('1', '0.5', 'X', empty); they
// are normalized into this enum at the boundary so calculation code
// never branches on raw strings.
type Availability string

const (
	AvailabilityFull    Availability = "FULL"
	AvailabilityHalf    Availability = "HALF"
	AvailabilityAbsent  Availability = "ABSENT"
	AvailabilityUnknown Availability = "UNKNOWN"
)

// ParseAvailability normalizes a raw persisted value. It is lenient:
// malformed values map to AvailabilityUnknown (zero hours) instead of
// failing, because read paths must never break a dashboard over one
// bad row.
func ParseAvailability(raw string) Availability {
	switch strings.TrimSpace(raw) {
	case "1":
		return AvailabilityFull
	case "0.5":
		return AvailabilityHalf
	case "X", "x", "":
		return AvailabilityAbsent
	default:
		return AvailabilityUnknown
	}
}

// NewAvailability validates a raw value strictly. Write paths use this
// so malformed input is rejected before it is persisted.
func NewAvailability(raw string) (Availability, error) {
	v := ParseAvailability(raw)
	if v == AvailabilityUnknown {
		return "", fmt.Errorf("%w: %q", ErrInvalidAvailability, raw)
	}
	return v, nil
}

// Raw returns the persisted encoding of the value.
func (a Availability) Raw() string {
	switch a {
	case AvailabilityFull:
		return "1"
	case AvailabilityHalf:
		return "0.5"
	default:
		return "X"
	}
}

// ScheduleEntry is one member's availability for one calendar day.
type ScheduleEntry struct {
	MemberID string
	Date     time.Time
	Value    Availability
}

// Member is an employee whose availability is tracked.
type Member struct {
	ID     string
	Name   string
	TeamID string
}

// Team groups members for capacity aggregation.
type Team struct {
	ID   string
	Name string
}
