package sprint

import "time"

// SettingsRecord is the externally-persisted sprint-settings shape
// consumed by the database layer and legacy dashboard clients. It
// mirrors a SprintInfo snapshot and can go stale; the adapter below
// detects that condition but never mutates the record - refreshing it
// is the caller's job.
type SettingsRecord struct {
	SprintNumber int    `json:"sprint_number"`
	StartDate    string `json:"start_date"` // ISO 8601 calendar date
	EndDate      string `json:"end_date"`   // ISO 8601 calendar date
	IsActive     bool   `json:"is_active"`
}

// ToSettingsRecord converts a detected SprintInfo into the persisted
// legacy shape. One-way and lossless for the fields it maps; external
// audit columns (updated_by and friends) are not this package's
// concern.
func ToSettingsRecord(info SprintInfo) SettingsRecord {
	return SettingsRecord{
		SprintNumber: info.SprintNumber,
		StartDate:    info.StartDate.Format(time.DateOnly),
		EndDate:      info.EndDate.Format(time.DateOnly),
		IsActive:     info.IsCurrentForDate,
	}
}

// ValidationResult classifies whether a persisted sprint still
// contains a target date.
type ValidationResult struct {
	IsValid bool `json:"is_valid"`

	// Reason is set when the record is invalid.
	Reason string `json:"reason,omitempty"`

	// NeedsUpdate signals the record is stale (target is past the
	// sprint end) and should be refreshed from the detector. A target
	// before the sprint start does NOT set it: that points at a
	// future-anchored record, which is a configuration problem no
	// refresh can fix.
	NeedsUpdate bool `json:"needs_update,omitempty"`
}

// ValidateSprintContainsDate checks whether targetDate falls inside
// the persisted sprint's [start, end] window, weekends included.
// Unparseable dates classify as stale rather than failing: the caller
// refreshes from the detector either way, which is the designed
// recovery path.
func ValidateSprintContainsDate(record SettingsRecord, targetDate time.Time) ValidationResult {
	target := Midnight(targetDate)

	start, err := time.Parse(time.DateOnly, record.StartDate)
	if err != nil {
		return ValidationResult{
			IsValid:     false,
			Reason:      "sprint start date is unreadable",
			NeedsUpdate: true,
		}
	}
	end, err := time.Parse(time.DateOnly, record.EndDate)
	if err != nil {
		return ValidationResult{
			IsValid:     false,
			Reason:      "sprint end date is unreadable",
			NeedsUpdate: true,
		}
	}

	if target.Before(Midnight(start)) {
		return ValidationResult{
			IsValid: false,
			Reason:  "target date is before the sprint start",
		}
	}
	if target.After(Midnight(end)) {
		return ValidationResult{
			IsValid:     false,
			Reason:      "target date is after the sprint end",
			NeedsUpdate: true,
		}
	}
	return ValidationResult{IsValid: true}
}
