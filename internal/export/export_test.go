package export

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teampulse/teampulse/internal/domain"
	"github.com/teampulse/teampulse/internal/sprint"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func sampleReport() Report {
	info := sprint.SprintInfo{
		SprintNumber: 3,
		StartDate:    date(2025, time.August, 24),
		EndDate:      date(2025, time.August, 28),
		WorkingDays: []time.Time{
			date(2025, time.August, 24),
			date(2025, time.August, 25),
			date(2025, time.August, 26),
			date(2025, time.August, 27),
			date(2025, time.August, 28),
		},
	}
	alice := domain.Member{ID: "m-1", TeamID: "t-1", Name: "alice"}
	bob := domain.Member{ID: "m-2", TeamID: "t-1", Name: "bob"}
	return Report{
		Team:   domain.Team{ID: "t-1", Name: "platform"},
		Sprint: info,
		Members: []MemberLine{
			{
				Member:       alice,
				PlannedHours: 24.5,
				Entries: []domain.ScheduleEntry{
					{MemberID: "m-1", Date: date(2025, time.August, 24), Value: domain.AvailabilityFull},
					{MemberID: "m-1", Date: date(2025, time.August, 25), Value: domain.AvailabilityHalf},
					{MemberID: "m-1", Date: date(2025, time.August, 26), Value: domain.AvailabilityAbsent},
					{MemberID: "m-1", Date: date(2025, time.August, 27), Value: domain.AvailabilityFull},
					{MemberID: "m-1", Date: date(2025, time.August, 28), Value: domain.AvailabilityFull},
				},
			},
			{Member: bob, PlannedHours: 0},
		},
		PotentialHours: 70,
		PlannedHours:   24.5,
		Completion:     35,
		GeneratedAt:    time.Date(2025, time.August, 26, 12, 0, 0, 0, time.UTC),
	}
}

func TestRenderCSV(t *testing.T) {
	data, err := RenderCSV(sampleReport())
	require.NoError(t, err)

	records, err := csv.NewReader(strings.NewReader(string(data))).ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"team", "platform"}, records[0])
	assert.Equal(t, []string{"sprint", "3"}, records[1])
	assert.Equal(t, []string{"potential_hours", "70"}, records[4])
	assert.Equal(t, []string{"planned_hours", "24.5"}, records[5])
	assert.Equal(t, []string{"completion_percentage", "35"}, records[6])

	header := records[9]
	require.Len(t, header, 7)
	assert.Equal(t, "member", header[0])
	assert.Equal(t, "2025-08-24", header[1])
	assert.Equal(t, "planned_hours", header[6])

	alice := records[10]
	assert.Equal(t, []string{"alice", "1", "0.5", "X", "1", "1", "24.5"}, alice)

	// Unrecorded days render empty rather than as explicit absences.
	bob := records[11]
	assert.Equal(t, []string{"bob", "", "", "", "", "", "0"}, bob)

	totals := records[12]
	assert.Equal(t, "total", totals[0])
	assert.Equal(t, "24.5", totals[6])
}

func TestReportName(t *testing.T) {
	name := ReportName("platform", 3, time.Date(2025, time.August, 26, 23, 30, 0, 0, time.UTC))
	assert.Equal(t, "capacity/sprint-3/platform-2025-08-26.csv", name)
}
