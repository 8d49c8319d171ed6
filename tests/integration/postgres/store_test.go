package integration

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teampulse/teampulse/internal/domain"
	"github.com/teampulse/teampulse/internal/sprint"
	"github.com/teampulse/teampulse/internal/storage/postgres"
)

func newTestStore(t *testing.T) (*postgres.Store, string) {
	t.Helper()
	dsn := GetTestStorageDSN(t)

	ctx := context.Background()
	store, err := postgres.NewStore(ctx, postgres.DBConfig{
		DSN:         dsn,
		AutoMigrate: true,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		store.Close()
		db, err := sql.Open("pgx", dsn)
		if err == nil {
			db.Exec("TRUNCATE TABLE schedule_entries, members, teams, sprint_settings CASCADE")
			db.Close()
		}
	})
	return store, dsn
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestScheduleEntryRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	team := domain.Team{ID: uuid.NewString(), Name: "platform"}
	require.NoError(t, store.CreateTeam(ctx, team))

	member := domain.Member{ID: uuid.NewString(), TeamID: team.ID, Name: "alice"}
	require.NoError(t, store.CreateMember(ctx, member))

	entry := domain.ScheduleEntry{
		MemberID: member.ID,
		Date:     date(2025, time.July, 28),
		Value:    domain.AvailabilityHalf,
	}
	require.NoError(t, store.UpsertScheduleEntry(ctx, entry))

	// Upsert on the same date replaces the value.
	entry.Value = domain.AvailabilityAbsent
	require.NoError(t, store.UpsertScheduleEntry(ctx, entry))

	entries, err := store.ListMemberEntries(ctx, member.ID,
		date(2025, time.July, 27), date(2025, time.July, 31))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.AvailabilityAbsent, entries[0].Value)
	assert.Equal(t, date(2025, time.July, 28), entries[0].Date)

	teamEntries, err := store.ListTeamEntries(ctx, team.ID,
		date(2025, time.July, 27), date(2025, time.July, 31))
	require.NoError(t, err)
	assert.Len(t, teamEntries, 1)
}

func TestUpsertEntryUnknownMember(t *testing.T) {
	store, _ := newTestStore(t)

	err := store.UpsertScheduleEntry(context.Background(), domain.ScheduleEntry{
		MemberID: uuid.NewString(),
		Date:     date(2025, time.July, 28),
		Value:    domain.AvailabilityFull,
	})
	assert.ErrorIs(t, err, domain.ErrMemberNotFound)
}

func TestSprintSettingsSingleton(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	_, err := store.GetSprintSettings(ctx)
	assert.ErrorIs(t, err, domain.ErrSettingsNotFound)

	record := sprint.SettingsRecord{
		SprintNumber: 1,
		StartDate:    "2025-07-27",
		EndDate:      "2025-08-07",
		IsActive:     true,
	}
	require.NoError(t, store.ReplaceSprintSettings(ctx, record))

	// Replace keeps a single row.
	record.SprintNumber = 2
	record.StartDate = "2025-08-10"
	record.EndDate = "2025-08-21"
	require.NoError(t, store.ReplaceSprintSettings(ctx, record))

	got, err := store.GetSprintSettings(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, got.SprintNumber)
	assert.Equal(t, "2025-08-10", got.StartDate)
	assert.Equal(t, "2025-08-21", got.EndDate)
}

func TestCountTeamMembers(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	team := domain.Team{ID: uuid.NewString(), Name: "platform"}
	require.NoError(t, store.CreateTeam(ctx, team))
	for _, name := range []string{"alice", "bob", "carol"} {
		require.NoError(t, store.CreateMember(ctx, domain.Member{
			ID: uuid.NewString(), TeamID: team.ID, Name: name,
		}))
	}

	count, err := store.CountTeamMembers(ctx, team.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	members, err := store.ListTeamMembers(ctx, team.ID)
	require.NoError(t, err)
	require.Len(t, members, 3)
	assert.Equal(t, "alice", members[0].Name)
}
