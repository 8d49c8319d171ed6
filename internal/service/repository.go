package service

import (
	"context"
	"time"

	"github.com/teampulse/teampulse/internal/domain"
	"github.com/teampulse/teampulse/internal/sprint"
)

// Storage is the persistence surface the capacity service depends on.
// The PostgreSQL store implements it; tests use an in-memory fake.
type Storage interface {
	CreateTeam(ctx context.Context, team domain.Team) error
	GetTeam(ctx context.Context, teamID string) (domain.Team, error)
	ListTeams(ctx context.Context) ([]domain.Team, error)

	CreateMember(ctx context.Context, member domain.Member) error
	GetMember(ctx context.Context, memberID string) (domain.Member, error)
	ListTeamMembers(ctx context.Context, teamID string) ([]domain.Member, error)
	CountTeamMembers(ctx context.Context, teamID string) (int, error)

	UpsertScheduleEntry(ctx context.Context, entry domain.ScheduleEntry) error
	ListMemberEntries(ctx context.Context, memberID string, from, to time.Time) ([]domain.ScheduleEntry, error)
	ListTeamEntries(ctx context.Context, teamID string, from, to time.Time) ([]domain.ScheduleEntry, error)

	GetSprintSettings(ctx context.Context) (sprint.SettingsRecord, error)
	ReplaceSprintSettings(ctx context.Context, record sprint.SettingsRecord) error
}
