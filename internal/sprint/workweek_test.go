package sprint

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestNewWorkWeek_Valid(t *testing.T) {
	w, err := NewWorkWeek([]time.Weekday{time.Monday, time.Tuesday}, 8)

	require.NoError(t, err)
	assert.Equal(t, 2, w.WorkingDaysPerWeek())
	assert.Equal(t, 8.0, w.HoursPerDay())
}

func TestNewWorkWeek_Empty(t *testing.T) {
	_, err := NewWorkWeek(nil, 7)

	require.ErrorIs(t, err, ErrNoWorkingDays)
}

func TestNewWorkWeek_AllSevenDays(t *testing.T) {
	all := []time.Weekday{
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	}
	_, err := NewWorkWeek(all, 7)

	require.ErrorIs(t, err, ErrNoWeekend)
}

func TestNewWorkWeek_InvalidHours(t *testing.T) {
	_, err := NewWorkWeek([]time.Weekday{time.Monday}, 0)

	require.ErrorIs(t, err, ErrInvalidHoursPerDay)
}

func TestDefaultWorkWeek_SundayToThursday(t *testing.T) {
	w := DefaultWorkWeek()

	assert.Equal(t, 5, w.WorkingDaysPerWeek())
	assert.Equal(t, 7.0, w.HoursPerDay())

	// 2024-01-07 is a Sunday.
	assert.True(t, w.IsWorkingDay(date(2024, time.January, 7)))
	assert.True(t, w.IsWorkingDay(date(2024, time.January, 11))) // Thursday
	assert.False(t, w.IsWorkingDay(date(2024, time.January, 12))) // Friday
	assert.False(t, w.IsWorkingDay(date(2024, time.January, 13))) // Saturday
}

func TestIsWorkingDay_NormalizesTimeOfDay(t *testing.T) {
	w := DefaultWorkWeek()

	// Late evening in a non-UTC zone must not shift the calendar day.
	loc := time.FixedZone("UTC+3", 3*60*60)
	thursdayEvening := time.Date(2024, time.January, 11, 23, 30, 0, 0, loc)

	assert.True(t, w.IsWorkingDay(thursdayEvening))
}

func TestCountWorkingDaysBetween_SundayToFriday(t *testing.T) {
	w := DefaultWorkWeek()

	// Sun 2024-01-07 through Fri 2024-01-12, end exclusive:
	// Sun, Mon, Tue, Wed, Thu = 5 (Friday excluded either way).
	got := w.CountWorkingDaysBetween(date(2024, time.January, 7), date(2024, time.January, 12))

	assert.Equal(t, 5, got)
}

func TestCountWorkingDaysBetween_InvertedRange(t *testing.T) {
	w := DefaultWorkWeek()

	got := w.CountWorkingDaysBetween(date(2024, time.January, 12), date(2024, time.January, 7))

	assert.Equal(t, 0, got)
}

func TestCountWorkingDaysBetween_Additive(t *testing.T) {
	w := DefaultWorkWeek()
	a := date(2024, time.January, 1)
	b := date(2024, time.February, 14)
	c := date(2024, time.April, 2)

	ab := w.CountWorkingDaysBetween(a, b)
	bc := w.CountWorkingDaysBetween(b, c)
	ac := w.CountWorkingDaysBetween(a, c)

	assert.Equal(t, ac, ab+bc)
}

func TestCountWorkingDaysInclusive_CountsBothEndpoints(t *testing.T) {
	w := DefaultWorkWeek()

	// Sun 2024-01-07 through Thu 2024-01-11 inclusive = 5 working days.
	got := w.CountWorkingDaysInclusive(date(2024, time.January, 7), date(2024, time.January, 11))

	assert.Equal(t, 5, got)
}

func TestEnumerateWorkingDays_SkipsWeekend(t *testing.T) {
	w := DefaultWorkWeek()

	days := w.EnumerateWorkingDays(date(2024, time.January, 10), date(2024, time.January, 15))

	// Wed 10, Thu 11, (Fri/Sat weekend), Sun 14, Mon 15.
	require.Len(t, days, 4)
	assert.Equal(t, date(2024, time.January, 10), days[0])
	assert.Equal(t, date(2024, time.January, 11), days[1])
	assert.Equal(t, date(2024, time.January, 14), days[2])
	assert.Equal(t, date(2024, time.January, 15), days[3])
}

func TestAddWorkingDays_StartCountsAsDayOne(t *testing.T) {
	w := DefaultWorkWeek()

	// Starting Sunday, 5 working days land on Thursday same week.
	got := w.AddWorkingDays(date(2024, time.January, 7), 5)

	assert.Equal(t, date(2024, time.January, 11), got)
}

func TestAddWorkingDays_Zero(t *testing.T) {
	w := DefaultWorkWeek()
	start := date(2024, time.January, 7)

	assert.Equal(t, start, w.AddWorkingDays(start, 0))
}

func TestAddWorkingDays_WeekendStartNotCounted(t *testing.T) {
	w := DefaultWorkWeek()

	// Friday is a weekend day; day 1 is Sunday.
	got := w.AddWorkingDays(date(2024, time.January, 12), 1)

	assert.Equal(t, date(2024, time.January, 14), got)
}

func TestNextWorkingDayAfter_SkipsWholeWeekend(t *testing.T) {
	w := DefaultWorkWeek()

	// After Thursday comes Sunday (Fri+Sat are the weekend).
	got := w.NextWorkingDayAfter(date(2024, time.January, 11))

	assert.Equal(t, date(2024, time.January, 14), got)
}

func TestNextWorkingDayAfter_LongWeekendRun(t *testing.T) {
	// A three-day work week: the weekend run is four days long.
	w, err := NewWorkWeek([]time.Weekday{time.Monday, time.Tuesday, time.Wednesday}, 7)
	require.NoError(t, err)

	// After Wed 2024-01-10, the next working day is Mon 2024-01-15.
	got := w.NextWorkingDayAfter(date(2024, time.January, 10))

	assert.Equal(t, date(2024, time.January, 15), got)
}

func TestEmptyWorkWeek_WalkPrimitivesPanic(t *testing.T) {
	// A zero-value WorkWeek has no working days, so the walk primitives
	// can never find one. They must fail loudly instead of spinning.
	var w WorkWeek

	assert.Panics(t, func() { w.AddWorkingDays(date(2024, time.January, 7), 1) })
	assert.Panics(t, func() { w.NextWorkingDayAfter(date(2024, time.January, 7)) })
}
