package sprint

import "errors"

var (
	// ErrNoWorkingDays indicates an empty working-weekday set.
	ErrNoWorkingDays = errors.New("work week must contain at least one working day")

	// ErrNoWeekend indicates all seven weekdays were marked working;
	// the boundary walk requires at least one weekend day.
	ErrNoWeekend = errors.New("work week must contain at least one weekend day")

	// ErrInvalidWeekday indicates a weekday index outside 0..6.
	ErrInvalidWeekday = errors.New("weekday index out of range")

	// ErrInvalidHoursPerDay indicates a non-positive hours-per-day value.
	ErrInvalidHoursPerDay = errors.New("hours per working day must be positive")

	// ErrInvalidSprintLength indicates a non-positive sprint length.
	ErrInvalidSprintLength = errors.New("sprint length weeks must be positive")

	// ErrInvalidWorkingDaysPerWeek indicates a non-positive working
	// days per week value.
	ErrInvalidWorkingDaysPerWeek = errors.New("working days per week must be positive")

	// ErrInconsistentWorkWeek indicates the configured working days per
	// week does not match the work-week weekday set.
	ErrInconsistentWorkWeek = errors.New("working days per week does not match work week")

	// ErrMissingAnchor indicates the first sprint start date is unset.
	ErrMissingAnchor = errors.New("first sprint start date is required")

	// ErrDetectionOverflow indicates the boundary walk exceeded its
	// iteration cap, which means the anchor date is misconfigured
	// relative to the target date.
	ErrDetectionOverflow = errors.New("sprint detection overflow")
)
