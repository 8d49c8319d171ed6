package sprint

import (
	"math"
	"time"

	"github.com/teampulse/teampulse/internal/domain"
)

// SprintPotential computes the maximum hours a team could plan for a
// date range: members x working days x hours per day. The working-day
// count is inclusive of both endpoints - do not confuse it with the
// end-exclusive elapsed count used for progress.
func (w WorkWeek) SprintPotential(memberCount int, start, end time.Time) float64 {
	if memberCount <= 0 {
		return 0
	}
	days := w.CountWorkingDaysInclusive(start, end)
	return float64(memberCount) * float64(days) * w.hoursPerDay
}

// HoursFor maps a normalized availability value to hours. Unknown
// values count as zero; bad input never fails a calculation.
func (w WorkWeek) HoursFor(v domain.Availability) float64 {
	switch v {
	case domain.AvailabilityFull:
		return w.hoursPerDay
	case domain.AvailabilityHalf:
		return w.hoursPerDay / 2
	default:
		return 0
	}
}

// PlannedHours sums entry-derived hours over a set of schedule entries.
// Entries for different members are independent, so team aggregation
// is plain summation over each member's rows.
func (w WorkWeek) PlannedHours(entries []domain.ScheduleEntry) float64 {
	var total float64
	for _, e := range entries {
		total += w.HoursFor(e.Value)
	}
	return total
}

// CompletionPercentage computes planned over potential as a rounded
// integer percentage. Zero potential yields 0 rather than a division
// error. Values above 100 indicate over-planning and are preserved,
// not clamped.
func CompletionPercentage(actual, potential float64) int {
	if potential <= 0 {
		return 0
	}
	return roundPercentage(actual, potential)
}

func roundPercentage(part, whole float64) int {
	if whole == 0 {
		return 0
	}
	return int(math.Round(part / whole * 100))
}
