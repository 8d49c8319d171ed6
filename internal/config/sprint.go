package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/teampulse/teampulse/internal/sprint"
)

// SprintConfig is the sprint-calendar configuration surface. It is
// validated at construction time: a bad sprint calendar must stop the
// process before anything renders from it.
type SprintConfig struct {
	// FirstSprintStart anchors sprint 1 (ISO 8601 calendar date).
	FirstSprintStart string `env:"TP_SPRINT_FIRST_START"`

	// SprintLengthWeeks is the sprint window size in work weeks.
	SprintLengthWeeks int `env:"TP_SPRINT_LENGTH_WEEKS"`

	// WorkingDaysPerWeek must match the WorkingWeekdays set size.
	WorkingDaysPerWeek int `env:"TP_SPRINT_WORKING_DAYS_PER_WEEK"`

	// HoursPerDay is the worth of a full working day in hours.
	HoursPerDay float64 `env:"TP_SPRINT_HOURS_PER_DAY"`

	// WorkingWeekdays is a comma-separated list of weekday indices
	// (0=Sunday). Default "0,1,2,3,4" is the Sunday-Thursday week.
	WorkingWeekdays string `env:"TP_SPRINT_WORKING_WEEKDAYS"`
}

func (c *SprintConfig) applyDefaults() {
	if c.FirstSprintStart == "" {
		c.FirstSprintStart = "2025-07-27"
	}
	if c.SprintLengthWeeks == 0 {
		c.SprintLengthWeeks = 2
	}
	if c.WorkingDaysPerWeek == 0 {
		c.WorkingDaysPerWeek = 5
	}
	if c.HoursPerDay == 0 {
		c.HoursPerDay = sprint.DefaultHoursPerDay
	}
	if c.WorkingWeekdays == "" {
		c.WorkingWeekdays = "0,1,2,3,4"
	}
}

// WorkWeek builds the validated work-week value from the raw settings.
func (c *SprintConfig) WorkWeek() (sprint.WorkWeek, error) {
	var days []time.Weekday
	for _, part := range strings.Split(c.WorkingWeekdays, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.Atoi(part)
		if err != nil {
			return sprint.WorkWeek{}, fmt.Errorf("TP_SPRINT_WORKING_WEEKDAYS: bad weekday %q: %w", part, err)
		}
		days = append(days, time.Weekday(n))
	}
	return sprint.NewWorkWeek(days, c.HoursPerDay)
}

// DetectionConfig builds and validates the detector configuration.
func (c *SprintConfig) DetectionConfig() (sprint.DetectionConfig, error) {
	c.applyDefaults()

	week, err := c.WorkWeek()
	if err != nil {
		return sprint.DetectionConfig{}, err
	}

	anchor, err := time.Parse(time.DateOnly, c.FirstSprintStart)
	if err != nil {
		return sprint.DetectionConfig{}, fmt.Errorf("TP_SPRINT_FIRST_START: %w", err)
	}

	cfg := sprint.DetectionConfig{
		FirstSprintStart:   anchor,
		SprintLengthWeeks:  c.SprintLengthWeeks,
		WorkingDaysPerWeek: c.WorkingDaysPerWeek,
		Week:               week,
	}
	if err := cfg.Validate(); err != nil {
		return sprint.DetectionConfig{}, err
	}
	return cfg, nil
}
