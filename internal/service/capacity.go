// Package service orchestrates the sprint engine over persistent
// storage: capacity summaries, schedule writes, settings refresh, and
// CSV exports.
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/teampulse/teampulse/internal/domain"
	"github.com/teampulse/teampulse/internal/export"
	"github.com/teampulse/teampulse/internal/sprint"
)

// CapacityService computes sprint and capacity views from stored
// teams, members, and schedule entries.
type CapacityService struct {
	storage Storage
	sink    export.Sink
	cfg     sprint.DetectionConfig
	now     func() time.Time
}

// NewCapacityService creates a capacity service. The detection config
// is validated fail-fast. sink may be nil when exports are not wired
// (export operations then return an error).
func NewCapacityService(storage Storage, sink export.Sink, cfg sprint.DetectionConfig) (*CapacityService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid detection config: %w", err)
	}
	return &CapacityService{
		storage: storage,
		sink:    sink,
		cfg:     cfg,
		now:     func() time.Time { return time.Now().UTC() },
	}, nil
}

// TeamCapacity is the capacity summary for one team within the sprint
// containing the target date.
type TeamCapacity struct {
	Team           domain.Team
	Sprint         sprint.SprintInfo
	MemberCount    int
	PotentialHours float64
	PlannedHours   float64
	Completion     int
	Health         sprint.Health
	Members        []MemberCapacity
}

// MemberCapacity is one member's planned hours within the sprint.
type MemberCapacity struct {
	Member       domain.Member
	PlannedHours float64
	Entries      []domain.ScheduleEntry
}

// CreateTeam creates a team with a server-generated ID.
func (s *CapacityService) CreateTeam(ctx context.Context, name string) (domain.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Team{}, fmt.Errorf("%w: team name", domain.ErrNameRequired)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return domain.Team{}, fmt.Errorf("failed to generate team id: %w", err)
	}
	team := domain.Team{ID: id.String(), Name: name}
	if err := s.storage.CreateTeam(ctx, team); err != nil {
		return domain.Team{}, err
	}
	return team, nil
}

// CreateMember creates a member on an existing team.
func (s *CapacityService) CreateMember(ctx context.Context, teamID, name string) (domain.Member, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Member{}, fmt.Errorf("%w: member name", domain.ErrNameRequired)
	}
	if teamID == "" {
		return domain.Member{}, fmt.Errorf("%w: team id", domain.ErrInvalidID)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return domain.Member{}, fmt.Errorf("failed to generate member id: %w", err)
	}
	member := domain.Member{ID: id.String(), TeamID: teamID, Name: name}
	if err := s.storage.CreateMember(ctx, member); err != nil {
		return domain.Member{}, err
	}
	return member, nil
}

// TeamSummary is a team together with its member count.
type TeamSummary struct {
	Team        domain.Team
	MemberCount int
}

// ListTeams returns all teams with their member counts.
func (s *CapacityService) ListTeams(ctx context.Context) ([]TeamSummary, error) {
	teams, err := s.storage.ListTeams(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]TeamSummary, 0, len(teams))
	for _, team := range teams {
		count, err := s.storage.CountTeamMembers(ctx, team.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, TeamSummary{Team: team, MemberCount: count})
	}
	return summaries, nil
}

// CurrentSprint detects the sprint containing the target date.
func (s *CapacityService) CurrentSprint(targetDate time.Time) (sprint.SprintInfo, error) {
	return sprint.DetectSprintForDate(targetDate, s.cfg)
}

// TeamCapacity computes the capacity summary for a team within the
// sprint containing the target date.
func (s *CapacityService) TeamCapacity(ctx context.Context, teamID string, targetDate time.Time) (TeamCapacity, error) {
	team, err := s.storage.GetTeam(ctx, teamID)
	if err != nil {
		return TeamCapacity{}, err
	}

	info, err := sprint.DetectSprintForDate(targetDate, s.cfg)
	if err != nil {
		return TeamCapacity{}, err
	}

	members, err := s.storage.ListTeamMembers(ctx, teamID)
	if err != nil {
		return TeamCapacity{}, err
	}

	entries, err := s.storage.ListTeamEntries(ctx, teamID, info.StartDate, info.EndDate)
	if err != nil {
		return TeamCapacity{}, err
	}
	byMember := make(map[string][]domain.ScheduleEntry)
	for _, entry := range entries {
		byMember[entry.MemberID] = append(byMember[entry.MemberID], entry)
	}

	week := s.cfg.Week
	potential := week.SprintPotential(len(members), info.StartDate, info.EndDate)

	memberCapacities := make([]MemberCapacity, 0, len(members))
	planned := 0.0
	for _, member := range members {
		memberEntries := byMember[member.ID]
		memberPlanned := week.PlannedHours(memberEntries)
		planned += memberPlanned
		memberCapacities = append(memberCapacities, MemberCapacity{
			Member:       member,
			PlannedHours: memberPlanned,
			Entries:      memberEntries,
		})
	}

	completion := sprint.CompletionPercentage(planned, potential)
	health := sprint.EvaluateHealth(completion, info.ProgressPercentage, info.DaysRemaining)

	return TeamCapacity{
		Team:           team,
		Sprint:         info,
		MemberCount:    len(members),
		PotentialHours: potential,
		PlannedHours:   planned,
		Completion:     completion,
		Health:         health,
		Members:        memberCapacities,
	}, nil
}

// MemberSchedule returns a member's entries with dates in [from, to].
func (s *CapacityService) MemberSchedule(ctx context.Context, memberID string, from, to time.Time) ([]domain.ScheduleEntry, error) {
	if _, err := s.storage.GetMember(ctx, memberID); err != nil {
		return nil, err
	}

	from = sprint.Midnight(from)
	to = sprint.Midnight(to)
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range end precedes start", domain.ErrInvalidDate)
	}
	return s.storage.ListMemberEntries(ctx, memberID, from, to)
}

// UpsertAvailability records a member's availability for one date.
// The raw value must be one of "1", "0.5", "X" (or empty for absent).
func (s *CapacityService) UpsertAvailability(ctx context.Context, memberID string, date time.Time, raw string) (domain.ScheduleEntry, error) {
	value, err := domain.NewAvailability(raw)
	if err != nil {
		return domain.ScheduleEntry{}, err
	}

	entry := domain.ScheduleEntry{
		MemberID: memberID,
		Date:     sprint.Midnight(date),
		Value:    value,
	}
	if err := s.storage.UpsertScheduleEntry(ctx, entry); err != nil {
		return domain.ScheduleEntry{}, err
	}
	return entry, nil
}

// SprintSettings returns the persisted settings record together with
// its staleness classification for the target date. A missing record
// is seeded from the detector.
func (s *CapacityService) SprintSettings(ctx context.Context, targetDate time.Time) (sprint.SettingsRecord, sprint.ValidationResult, error) {
	record, err := s.storage.GetSprintSettings(ctx)
	if errors.Is(err, domain.ErrSettingsNotFound) {
		record, err = s.detectAndPersist(ctx, targetDate)
	}
	if err != nil {
		return sprint.SettingsRecord{}, sprint.ValidationResult{}, err
	}

	result := sprint.ValidateSprintContainsDate(record, targetDate)
	return record, result, nil
}

// RefreshSettingsIfStale validates the persisted settings against the
// target date and, when the record is stale or missing, re-detects the
// containing sprint and replaces the row. Returns the current record
// and whether a refresh happened.
func (s *CapacityService) RefreshSettingsIfStale(ctx context.Context, targetDate time.Time) (sprint.SettingsRecord, bool, error) {
	record, err := s.storage.GetSprintSettings(ctx)
	if errors.Is(err, domain.ErrSettingsNotFound) {
		record, err := s.detectAndPersist(ctx, targetDate)
		return record, true, err
	}
	if err != nil {
		return sprint.SettingsRecord{}, false, err
	}

	result := sprint.ValidateSprintContainsDate(record, targetDate)
	if result.IsValid || !result.NeedsUpdate {
		return record, false, nil
	}

	record, err = s.detectAndPersist(ctx, targetDate)
	if err != nil {
		return sprint.SettingsRecord{}, false, err
	}
	return record, true, nil
}

func (s *CapacityService) detectAndPersist(ctx context.Context, targetDate time.Time) (sprint.SettingsRecord, error) {
	info, err := sprint.DetectSprintForDate(targetDate, s.cfg)
	if err != nil {
		return sprint.SettingsRecord{}, err
	}
	record := sprint.ToSettingsRecord(info)
	if err := s.storage.ReplaceSprintSettings(ctx, record); err != nil {
		return sprint.SettingsRecord{}, err
	}
	return record, nil
}

// ErrExportsDisabled is returned when no export sink is configured.
var ErrExportsDisabled = errors.New("exports are not configured")

// ExportTeamCapacity renders a CSV capacity report for the sprint
// containing the target date and writes it to the sink, returning the
// object name.
func (s *CapacityService) ExportTeamCapacity(ctx context.Context, teamID string, targetDate time.Time) (string, error) {
	if s.sink == nil {
		return "", ErrExportsDisabled
	}

	capacity, err := s.TeamCapacity(ctx, teamID, targetDate)
	if err != nil {
		return "", err
	}

	lines := make([]export.MemberLine, 0, len(capacity.Members))
	for _, member := range capacity.Members {
		lines = append(lines, export.MemberLine{
			Member:       member.Member,
			PlannedHours: member.PlannedHours,
			Entries:      member.Entries,
		})
	}

	generatedAt := s.now()
	report := export.Report{
		Team:           capacity.Team,
		Sprint:         capacity.Sprint,
		Members:        lines,
		PotentialHours: capacity.PotentialHours,
		PlannedHours:   capacity.PlannedHours,
		Completion:     capacity.Completion,
		GeneratedAt:    generatedAt,
	}

	data, err := export.RenderCSV(report)
	if err != nil {
		return "", err
	}

	name := export.ReportName(capacity.Team.Name, capacity.Sprint.SprintNumber, generatedAt)
	if err := s.sink.Put(ctx, name, data); err != nil {
		return "", fmt.Errorf("failed to store export: %w", err)
	}
	return name, nil
}

// ExportAllTeams writes a capacity report for every team, returning
// the object names. Used by the worker's export cycle.
func (s *CapacityService) ExportAllTeams(ctx context.Context, targetDate time.Time) ([]string, error) {
	if s.sink == nil {
		return nil, ErrExportsDisabled
	}

	teams, err := s.storage.ListTeams(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(teams))
	for _, team := range teams {
		name, err := s.ExportTeamCapacity(ctx, team.ID, targetDate)
		if err != nil {
			return names, fmt.Errorf("failed to export team %s: %w", team.ID, err)
		}
		names = append(names, name)
	}
	return names, nil
}
