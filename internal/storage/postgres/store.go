package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/teampulse/teampulse/internal/domain"
	"github.com/teampulse/teampulse/internal/sprint"
)

const pgForeignKeyViolation = "23503"

// Store provides PostgreSQL-backed persistence for teams, members,
// schedule entries, and sprint settings.
type Store struct {
	pool *pgxpool.Pool
}

// Close closes the underlying connection pool.
func (s *Store) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// CreateTeam inserts a new team.
func (s *Store) CreateTeam(ctx context.Context, team domain.Team) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO teams (id, name) VALUES ($1, $2)`,
		team.ID, team.Name)
	if err != nil {
		return fmt.Errorf("failed to create team: %w", err)
	}
	return nil
}

// GetTeam fetches a team by ID.
func (s *Store) GetTeam(ctx context.Context, teamID string) (domain.Team, error) {
	var team domain.Team
	err := s.pool.QueryRow(ctx,
		`SELECT id, name FROM teams WHERE id = $1`,
		teamID).Scan(&team.ID, &team.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Team{}, domain.ErrTeamNotFound
	}
	if err != nil {
		return domain.Team{}, fmt.Errorf("failed to get team: %w", err)
	}
	return team, nil
}

// ListTeams returns all teams ordered by name.
func (s *Store) ListTeams(ctx context.Context) ([]domain.Team, error) {
	rows, err := s.pool.Query(ctx, `SELECT id, name FROM teams ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	var teams []domain.Team
	for rows.Next() {
		var team domain.Team
		if err := rows.Scan(&team.ID, &team.Name); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		teams = append(teams, team)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read teams: %w", err)
	}
	return teams, nil
}

// CreateMember inserts a new member. A missing team surfaces as
// domain.ErrTeamNotFound.
func (s *Store) CreateMember(ctx context.Context, member domain.Member) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO members (id, team_id, name) VALUES ($1, $2, $3)`,
		member.ID, member.TeamID, member.Name)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return domain.ErrTeamNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to create member: %w", err)
	}
	return nil
}

// GetMember fetches a member by ID.
func (s *Store) GetMember(ctx context.Context, memberID string) (domain.Member, error) {
	var member domain.Member
	err := s.pool.QueryRow(ctx,
		`SELECT id, team_id, name FROM members WHERE id = $1`,
		memberID).Scan(&member.ID, &member.TeamID, &member.Name)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Member{}, domain.ErrMemberNotFound
	}
	if err != nil {
		return domain.Member{}, fmt.Errorf("failed to get member: %w", err)
	}
	return member, nil
}

// ListTeamMembers returns all members of a team ordered by name.
func (s *Store) ListTeamMembers(ctx context.Context, teamID string) ([]domain.Member, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, team_id, name FROM members WHERE team_id = $1 ORDER BY name`,
		teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list team members: %w", err)
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		var m domain.Member
		if err := rows.Scan(&m.ID, &m.TeamID, &m.Name); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read members: %w", err)
	}
	return members, nil
}

// CountTeamMembers returns the number of members on a team.
func (s *Store) CountTeamMembers(ctx context.Context, teamID string) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM members WHERE team_id = $1`,
		teamID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count team members: %w", err)
	}
	return count, nil
}

// UpsertScheduleEntry writes a member's availability for a single
// date, replacing any previous value for that date.
func (s *Store) UpsertScheduleEntry(ctx context.Context, entry domain.ScheduleEntry) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO schedule_entries (member_id, entry_date, value, updated_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (member_id, entry_date)
		 DO UPDATE SET value = EXCLUDED.value, updated_at = now()`,
		entry.MemberID, entry.Date, entry.Value.Raw())
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
		return domain.ErrMemberNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to upsert schedule entry: %w", err)
	}
	return nil
}

// ListMemberEntries returns a member's entries with dates in
// [from, to] inclusive, ordered by date.
func (s *Store) ListMemberEntries(ctx context.Context, memberID string, from, to time.Time) ([]domain.ScheduleEntry, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT member_id, entry_date, value
		 FROM schedule_entries
		 WHERE member_id = $1 AND entry_date BETWEEN $2 AND $3
		 ORDER BY entry_date`,
		memberID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list member entries: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// ListTeamEntries returns all entries for a team's members with dates
// in [from, to] inclusive.
func (s *Store) ListTeamEntries(ctx context.Context, teamID string, from, to time.Time) ([]domain.ScheduleEntry, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT e.member_id, e.entry_date, e.value
		 FROM schedule_entries e
		 JOIN members m ON m.id = e.member_id
		 WHERE m.team_id = $1 AND e.entry_date BETWEEN $2 AND $3
		 ORDER BY e.member_id, e.entry_date`,
		teamID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list team entries: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

func scanEntries(rows pgx.Rows) ([]domain.ScheduleEntry, error) {
	var entries []domain.ScheduleEntry
	for rows.Next() {
		var (
			entry domain.ScheduleEntry
			raw   string
		)
		if err := rows.Scan(&entry.MemberID, &entry.Date, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan schedule entry: %w", err)
		}
		// Lenient parse: unrecognized stored values degrade to
		// Unknown instead of failing the whole read.
		entry.Value = domain.ParseAvailability(raw)
		if entry.Value == domain.AvailabilityUnknown {
			slog.Debug("unrecognized availability value in storage",
				"member_id", entry.MemberID, "value", raw)
		}
		entry.Date = entry.Date.UTC()
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read schedule entries: %w", err)
	}
	return entries, nil
}

// GetSprintSettings reads the sprint settings singleton. Dates are
// returned in ISO format (YYYY-MM-DD).
func (s *Store) GetSprintSettings(ctx context.Context) (sprint.SettingsRecord, error) {
	var (
		record     sprint.SettingsRecord
		start, end time.Time
	)
	err := s.pool.QueryRow(ctx,
		`SELECT sprint_number, start_date, end_date, is_active FROM sprint_settings`).
		Scan(&record.SprintNumber, &start, &end, &record.IsActive)
	if errors.Is(err, pgx.ErrNoRows) {
		return sprint.SettingsRecord{}, domain.ErrSettingsNotFound
	}
	if err != nil {
		return sprint.SettingsRecord{}, fmt.Errorf("failed to get sprint settings: %w", err)
	}
	record.StartDate = start.UTC().Format(time.DateOnly)
	record.EndDate = end.UTC().Format(time.DateOnly)
	return record, nil
}

// ReplaceSprintSettings overwrites the sprint settings singleton.
func (s *Store) ReplaceSprintSettings(ctx context.Context, record sprint.SettingsRecord) error {
	start, err := time.Parse(time.DateOnly, record.StartDate)
	if err != nil {
		return fmt.Errorf("%w: start date %q", domain.ErrInvalidDate, record.StartDate)
	}
	end, err := time.Parse(time.DateOnly, record.EndDate)
	if err != nil {
		return fmt.Errorf("%w: end date %q", domain.ErrInvalidDate, record.EndDate)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO sprint_settings (singleton, sprint_number, start_date, end_date, is_active, updated_at)
		 VALUES (TRUE, $1, $2, $3, $4, now())
		 ON CONFLICT (singleton)
		 DO UPDATE SET sprint_number = EXCLUDED.sprint_number,
		               start_date = EXCLUDED.start_date,
		               end_date = EXCLUDED.end_date,
		               is_active = EXCLUDED.is_active,
		               updated_at = now()`,
		record.SprintNumber, start, end, record.IsActive)
	if err != nil {
		return fmt.Errorf("failed to replace sprint settings: %w", err)
	}
	return nil
}
