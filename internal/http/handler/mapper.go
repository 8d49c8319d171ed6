package handler

import (
	"time"

	"github.com/teampulse/teampulse/internal/domain"
	"github.com/teampulse/teampulse/internal/service"
	"github.com/teampulse/teampulse/internal/sprint"
)

// DTO shapes for JSON responses. Dates serialize as ISO strings
// (YYYY-MM-DD) to match the persisted settings record.

type TeamDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type TeamSummaryDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	MemberCount int    `json:"member_count"`
}

type MemberDTO struct {
	ID     string `json:"id"`
	TeamID string `json:"team_id"`
	Name   string `json:"name"`
}

type SprintDTO struct {
	SprintNumber         int      `json:"sprint_number"`
	StartDate            string   `json:"start_date"`
	EndDate              string   `json:"end_date"`
	WorkingDays          []string `json:"working_days"`
	IsCurrentForDate     bool     `json:"is_current_for_date"`
	DaysRemaining        int      `json:"days_remaining"`
	WorkingDaysRemaining int      `json:"working_days_remaining"`
	ProgressPercentage   int      `json:"progress_percentage"`
}

type ScheduleEntryDTO struct {
	Date  string `json:"date"`
	Value string `json:"value"`
}

type MemberCapacityDTO struct {
	Member       MemberDTO `json:"member"`
	PlannedHours float64   `json:"planned_hours"`
}

type TeamCapacityDTO struct {
	Team                 TeamDTO             `json:"team"`
	Sprint               SprintDTO           `json:"sprint"`
	MemberCount          int                 `json:"member_count"`
	PotentialHours       float64             `json:"potential_hours"`
	PlannedHours         float64             `json:"planned_hours"`
	CompletionPercentage int                 `json:"completion_percentage"`
	Health               sprint.Health       `json:"health"`
	Members              []MemberCapacityDTO `json:"members"`
}

func mapTeamToDTO(team domain.Team) TeamDTO {
	return TeamDTO{ID: team.ID, Name: team.Name}
}

func mapTeamSummaryToDTO(summary service.TeamSummary) TeamSummaryDTO {
	return TeamSummaryDTO{
		ID:          summary.Team.ID,
		Name:        summary.Team.Name,
		MemberCount: summary.MemberCount,
	}
}

func mapMemberToDTO(member domain.Member) MemberDTO {
	return MemberDTO{ID: member.ID, TeamID: member.TeamID, Name: member.Name}
}

func mapSprintToDTO(info sprint.SprintInfo) SprintDTO {
	workingDays := make([]string, 0, len(info.WorkingDays))
	for _, day := range info.WorkingDays {
		workingDays = append(workingDays, day.Format(time.DateOnly))
	}
	return SprintDTO{
		SprintNumber:         info.SprintNumber,
		StartDate:            info.StartDate.Format(time.DateOnly),
		EndDate:              info.EndDate.Format(time.DateOnly),
		WorkingDays:          workingDays,
		IsCurrentForDate:     info.IsCurrentForDate,
		DaysRemaining:        info.DaysRemaining,
		WorkingDaysRemaining: info.WorkingDaysRemaining,
		ProgressPercentage:   info.ProgressPercentage,
	}
}

func mapEntryToDTO(entry domain.ScheduleEntry) ScheduleEntryDTO {
	return ScheduleEntryDTO{
		Date:  entry.Date.Format(time.DateOnly),
		Value: entry.Value.Raw(),
	}
}

func mapCapacityToDTO(capacity service.TeamCapacity) TeamCapacityDTO {
	members := make([]MemberCapacityDTO, 0, len(capacity.Members))
	for _, member := range capacity.Members {
		members = append(members, MemberCapacityDTO{
			Member:       mapMemberToDTO(member.Member),
			PlannedHours: member.PlannedHours,
		})
	}
	return TeamCapacityDTO{
		Team:                 mapTeamToDTO(capacity.Team),
		Sprint:               mapSprintToDTO(capacity.Sprint),
		MemberCount:          capacity.MemberCount,
		PotentialHours:       capacity.PotentialHours,
		PlannedHours:         capacity.PlannedHours,
		CompletionPercentage: capacity.Completion,
		Health:               capacity.Health,
		Members:              members,
	}
}
