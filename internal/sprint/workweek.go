package sprint

import (
	"fmt"
	"time"
)

// Default work week: Sunday through Thursday, 7 hours per working day.
// Friday and Saturday are the weekend.
const DefaultHoursPerDay = 7.0

// WorkWeek defines which weekdays count as working days and how many
// hours a full working day is worth. Value object - construct once,
// pass by value.
type WorkWeek struct {
	working     [7]bool
	hoursPerDay float64
}

// NewWorkWeek creates a WorkWeek from a set of working weekdays.
// The weekday set must be non-empty and must not cover all seven days
// (the complement is the weekend, which must exist for boundary walks
// to terminate).
func NewWorkWeek(workingDays []time.Weekday, hoursPerDay float64) (WorkWeek, error) {
	if len(workingDays) == 0 {
		return WorkWeek{}, ErrNoWorkingDays
	}
	if hoursPerDay <= 0 {
		return WorkWeek{}, fmt.Errorf("%w: %v", ErrInvalidHoursPerDay, hoursPerDay)
	}

	var w WorkWeek
	w.hoursPerDay = hoursPerDay
	count := 0
	for _, d := range workingDays {
		if d < time.Sunday || d > time.Saturday {
			return WorkWeek{}, fmt.Errorf("%w: %d", ErrInvalidWeekday, int(d))
		}
		if !w.working[d] {
			w.working[d] = true
			count++
		}
	}
	if count == 7 {
		return WorkWeek{}, ErrNoWeekend
	}
	return w, nil
}

// DefaultWorkWeek returns the organization default: Sunday-Thursday
// working, 7 hours per day.
func DefaultWorkWeek() WorkWeek {
	w, err := NewWorkWeek([]time.Weekday{
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	}, DefaultHoursPerDay)
	if err != nil {
		// Static input, cannot fail.
		panic(err)
	}
	return w
}

// HoursPerDay returns the hours a full working day is worth.
func (w WorkWeek) HoursPerDay() float64 {
	return w.hoursPerDay
}

// WorkingDaysPerWeek returns the number of working weekdays in the week.
func (w WorkWeek) WorkingDaysPerWeek() int {
	n := 0
	for _, ok := range w.working {
		if ok {
			n++
		}
	}
	return n
}

// IsWorkingDay reports whether the date falls on a working weekday.
func (w WorkWeek) IsWorkingDay(date time.Time) bool {
	return w.working[Midnight(date).Weekday()]
}

// Midnight normalizes a timestamp to midnight UTC of its calendar day.
// All calendar arithmetic in this package operates on normalized dates
// so time-of-day and timezone offsets cannot introduce off-by-one days.
func Midnight(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CountWorkingDaysBetween counts working days in [start, end) - start
// inclusive, end exclusive. Used for elapsed/progress calculations.
// Returns 0 when end is not after start.
func (w WorkWeek) CountWorkingDaysBetween(start, end time.Time) int {
	cur := Midnight(start)
	stop := Midnight(end)

	count := 0
	for cur.Before(stop) {
		if w.working[cur.Weekday()] {
			count++
		}
		cur = cur.AddDate(0, 0, 1)
	}
	return count
}

// CountWorkingDaysInclusive counts working days in [start, end], both
// endpoints included. Distinct from CountWorkingDaysBetween: capacity
// potential uses the inclusive count, progress uses the exclusive one.
func (w WorkWeek) CountWorkingDaysInclusive(start, end time.Time) int {
	cur := Midnight(start)
	stop := Midnight(end)

	count := 0
	for !cur.After(stop) {
		if w.working[cur.Weekday()] {
			count++
		}
		cur = cur.AddDate(0, 0, 1)
	}
	return count
}

// EnumerateWorkingDays returns all working days in [start, end]
// inclusive, in ascending order.
func (w WorkWeek) EnumerateWorkingDays(start, end time.Time) []time.Time {
	cur := Midnight(start)
	stop := Midnight(end)

	var days []time.Time
	for !cur.After(stop) {
		if w.working[cur.Weekday()] {
			days = append(days, cur)
		}
		cur = cur.AddDate(0, 0, 1)
	}
	return days
}

// AddWorkingDays returns the date reached after advancing n working
// days from start, counting start itself as day 1 when it is a working
// day. AddWorkingDays(start, 0) returns start unchanged.
func (w WorkWeek) AddWorkingDays(start time.Time, n int) time.Time {
	cur := Midnight(start)
	if n <= 0 {
		return cur
	}
	if w.WorkingDaysPerWeek() == 0 {
		// The scan below would never find a match. Only a zero-value
		// WorkWeek can get here; NewWorkWeek rejects empty sets.
		panic("sprint: work week has no working days")
	}

	count := 0
	for {
		if w.working[cur.Weekday()] {
			count++
			if count == n {
				return cur
			}
		}
		cur = cur.AddDate(0, 0, 1)
	}
}

// NextWorkingDayAfter returns the smallest working day strictly after
// the given date. Skips weekend runs of any length, so work weeks with
// more than two weekend days are handled.
func (w WorkWeek) NextWorkingDayAfter(date time.Time) time.Time {
	if w.WorkingDaysPerWeek() == 0 {
		panic("sprint: work week has no working days")
	}
	cur := Midnight(date).AddDate(0, 0, 1)
	for !w.working[cur.Weekday()] {
		cur = cur.AddDate(0, 0, 1)
	}
	return cur
}
