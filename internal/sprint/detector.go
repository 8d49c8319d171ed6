package sprint

import (
	"fmt"
	"log/slog"
	"time"
)

// maxDetectionIterations caps the boundary walk. Reaching it means the
// anchor date is roughly maxDetectionIterations sprints away from the
// target, which is a configuration problem, not a calendar one.
const maxDetectionIterations = 20

// DetectionConfig anchors sprint numbering to a fixed first-sprint
// start date. Immutable after validation.
type DetectionConfig struct {
	// FirstSprintStart is the calendar date of sprint 1's first day.
	FirstSprintStart time.Time

	// SprintLengthWeeks is the sprint window size in work weeks.
	SprintLengthWeeks int

	// WorkingDaysPerWeek must equal Week.WorkingDaysPerWeek(); kept
	// explicit so a mismatch between the two settings fails fast
	// instead of silently shifting every boundary.
	WorkingDaysPerWeek int

	// Week defines the working-day calendar.
	Week WorkWeek
}

// Validate checks the configuration invariants. Construction-time
// failures here are fatal: a service must not start with a sprint
// calendar it cannot trust.
func (c DetectionConfig) Validate() error {
	if c.FirstSprintStart.IsZero() {
		return ErrMissingAnchor
	}
	if c.SprintLengthWeeks <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSprintLength, c.SprintLengthWeeks)
	}
	// A zero working-day count would also pass the equality check below
	// against a zero-value week, and an empty week never terminates the
	// boundary walk.
	if c.WorkingDaysPerWeek <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkingDaysPerWeek, c.WorkingDaysPerWeek)
	}
	if c.WorkingDaysPerWeek != c.Week.WorkingDaysPerWeek() {
		return fmt.Errorf("%w: configured %d, work week has %d",
			ErrInconsistentWorkWeek, c.WorkingDaysPerWeek, c.Week.WorkingDaysPerWeek())
	}
	return nil
}

// WorkingDaysPerSprint returns the number of working days each sprint
// window contains.
func (c DetectionConfig) WorkingDaysPerSprint() int {
	return c.SprintLengthWeeks * c.WorkingDaysPerWeek
}

// SprintInfo is the recomputed-on-demand description of the sprint
// containing a target date. It is never a source of truth; the
// persisted settings row only mirrors it.
type SprintInfo struct {
	SprintNumber int
	StartDate    time.Time
	EndDate      time.Time

	// WorkingDays lists the working dates within [StartDate, EndDate]
	// in ascending order.
	WorkingDays []time.Time

	// IsCurrentForDate reports whether the target date falls inside
	// [StartDate, EndDate] by calendar-day comparison. A weekend date
	// inside an active sprint still counts as current.
	IsCurrentForDate bool

	// DaysRemaining counts calendar days from the target date to
	// EndDate, floored at zero.
	DaysRemaining int

	// WorkingDaysRemaining counts working days strictly after the
	// target date within the sprint.
	WorkingDaysRemaining int

	// ProgressPercentage is working-days-elapsed over working days per
	// sprint, rounded and clamped to 100.
	ProgressPercentage int
}

// DetectSprintForDate walks sprint boundaries forward from the anchor
// until it finds the sprint window containing the target date.
//
// Each sprint spans WorkingDaysPerSprint working days; sprint N+1
// starts on the next working day after sprint N's end, so sprints are
// contiguous with no gaps or overlaps. The walk is capped at
// maxDetectionIterations, beyond which ErrDetectionOverflow is
// returned rather than a silently wrong sprint number.
func DetectSprintForDate(targetDate time.Time, cfg DetectionConfig) (SprintInfo, error) {
	target := Midnight(targetDate)
	perSprint := cfg.WorkingDaysPerSprint()

	number := 1
	start := Midnight(cfg.FirstSprintStart)
	end := cfg.Week.AddWorkingDays(start, perSprint)

	iterations := 0
	for target.After(end) {
		iterations++
		if iterations > maxDetectionIterations {
			return SprintInfo{}, fmt.Errorf("%w: target %s is more than %d sprints past anchor %s",
				ErrDetectionOverflow,
				target.Format(time.DateOnly),
				maxDetectionIterations,
				cfg.FirstSprintStart.Format(time.DateOnly))
		}
		number++
		start = cfg.Week.NextWorkingDayAfter(end)
		end = cfg.Week.AddWorkingDays(start, perSprint)
	}

	workingDays := cfg.Week.EnumerateWorkingDays(start, end)

	isCurrent := !target.Before(start) && !target.After(end)
	if !isCurrent {
		// The loop invariant should guarantee containment once the walk
		// converges; a miss means the target precedes the anchor or a
		// boundary is off by one. Callers (dashboards) must stay usable,
		// so report and return the computed window anyway.
		slog.Warn("detected sprint does not contain target date",
			"sprint_number", number,
			"start_date", start.Format(time.DateOnly),
			"end_date", end.Format(time.DateOnly),
			"target_date", target.Format(time.DateOnly))
	}

	daysRemaining := int(end.Sub(target).Hours() / 24)
	if daysRemaining < 0 {
		daysRemaining = 0
	}

	workingDaysRemaining := 0
	for _, d := range workingDays {
		if d.After(target) {
			workingDaysRemaining++
		}
	}

	elapsed := cfg.Week.CountWorkingDaysBetween(start, target)
	progress := roundPercentage(float64(elapsed), float64(perSprint))
	if progress > 100 {
		progress = 100
	}

	return SprintInfo{
		SprintNumber:         number,
		StartDate:            start,
		EndDate:              end,
		WorkingDays:          workingDays,
		IsCurrentForDate:     isCurrent,
		DaysRemaining:        daysRemaining,
		WorkingDaysRemaining: workingDaysRemaining,
		ProgressPercentage:   progress,
	}, nil
}
