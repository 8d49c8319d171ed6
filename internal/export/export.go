// Package export renders team capacity reports as CSV and writes them
// to a configured sink.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/teampulse/teampulse/internal/domain"
	"github.com/teampulse/teampulse/internal/sprint"
)

// Sink persists a finished report under a name chosen by the caller.
type Sink interface {
	Put(ctx context.Context, name string, data []byte) error
	List(ctx context.Context) ([]string, error)
}

// MemberLine is one member's row in a capacity report.
type MemberLine struct {
	Member       domain.Member
	PlannedHours float64
	Entries      []domain.ScheduleEntry
}

// Report is the input to the CSV renderer: one sprint, one team.
type Report struct {
	Team           domain.Team
	Sprint         sprint.SprintInfo
	Members        []MemberLine
	PotentialHours float64
	PlannedHours   float64
	Completion     int
	GeneratedAt    time.Time
}

// ReportName builds the object name for a report, e.g.
// "capacity/sprint-12/platform-2025-08-26.csv".
func ReportName(teamName string, sprintNumber int, generatedAt time.Time) string {
	return fmt.Sprintf("capacity/sprint-%d/%s-%s.csv",
		sprintNumber, teamName, generatedAt.UTC().Format(time.DateOnly))
}

// RenderCSV renders a capacity report. The header rows carry sprint
// metadata, then one row per member with their availability for each
// working day of the sprint, then a totals row.
func RenderCSV(report Report) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	meta := [][]string{
		{"team", report.Team.Name},
		{"sprint", strconv.Itoa(report.Sprint.SprintNumber)},
		{"start_date", report.Sprint.StartDate.Format(time.DateOnly)},
		{"end_date", report.Sprint.EndDate.Format(time.DateOnly)},
		{"potential_hours", formatHours(report.PotentialHours)},
		{"planned_hours", formatHours(report.PlannedHours)},
		{"completion_percentage", strconv.Itoa(report.Completion)},
		{"generated_at", report.GeneratedAt.UTC().Format(time.RFC3339)},
		{},
	}
	if err := w.WriteAll(meta); err != nil {
		return nil, fmt.Errorf("failed to write report metadata: %w", err)
	}

	header := []string{"member"}
	for _, day := range report.Sprint.WorkingDays {
		header = append(header, day.Format(time.DateOnly))
	}
	header = append(header, "planned_hours")
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write report header: %w", err)
	}

	for _, line := range report.Members {
		byDate := make(map[string]domain.Availability, len(line.Entries))
		for _, entry := range line.Entries {
			byDate[entry.Date.Format(time.DateOnly)] = entry.Value
		}

		// Days with no recorded entry render empty: they carry no
		// hours and are distinguishable from an explicit absence.
		row := []string{line.Member.Name}
		for _, day := range report.Sprint.WorkingDays {
			cell := ""
			if value, ok := byDate[day.Format(time.DateOnly)]; ok {
				cell = value.Raw()
			}
			row = append(row, cell)
		}
		row = append(row, formatHours(line.PlannedHours))
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write member row: %w", err)
		}
	}

	totals := []string{"total"}
	for range report.Sprint.WorkingDays {
		totals = append(totals, "")
	}
	totals = append(totals, formatHours(report.PlannedHours))
	if err := w.Write(totals); err != nil {
		return nil, fmt.Errorf("failed to write totals row: %w", err)
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush report: %w", err)
	}
	return buf.Bytes(), nil
}

func formatHours(hours float64) string {
	return strconv.FormatFloat(hours, 'f', -1, 64)
}
