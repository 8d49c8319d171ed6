package worker

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teampulse/teampulse/internal/domain"
	"github.com/teampulse/teampulse/internal/service"
	"github.com/teampulse/teampulse/internal/sprint"
)

type stubStorage struct {
	teams    []domain.Team
	settings *sprint.SettingsRecord
	replaced int
}

func (s *stubStorage) CreateTeam(_ context.Context, team domain.Team) error {
	s.teams = append(s.teams, team)
	return nil
}

func (s *stubStorage) GetTeam(_ context.Context, teamID string) (domain.Team, error) {
	for _, team := range s.teams {
		if team.ID == teamID {
			return team, nil
		}
	}
	return domain.Team{}, domain.ErrTeamNotFound
}

func (s *stubStorage) ListTeams(_ context.Context) ([]domain.Team, error) {
	return s.teams, nil
}

func (s *stubStorage) CreateMember(_ context.Context, _ domain.Member) error {
	return nil
}

func (s *stubStorage) GetMember(_ context.Context, _ string) (domain.Member, error) {
	return domain.Member{}, domain.ErrMemberNotFound
}

func (s *stubStorage) ListTeamMembers(_ context.Context, _ string) ([]domain.Member, error) {
	return nil, nil
}

func (s *stubStorage) CountTeamMembers(_ context.Context, _ string) (int, error) {
	return 0, nil
}

func (s *stubStorage) UpsertScheduleEntry(_ context.Context, _ domain.ScheduleEntry) error {
	return nil
}

func (s *stubStorage) ListMemberEntries(_ context.Context, _ string, _, _ time.Time) ([]domain.ScheduleEntry, error) {
	return nil, nil
}

func (s *stubStorage) ListTeamEntries(_ context.Context, _ string, _, _ time.Time) ([]domain.ScheduleEntry, error) {
	return nil, nil
}

func (s *stubStorage) GetSprintSettings(_ context.Context) (sprint.SettingsRecord, error) {
	if s.settings == nil {
		return sprint.SettingsRecord{}, domain.ErrSettingsNotFound
	}
	return *s.settings, nil
}

func (s *stubStorage) ReplaceSprintSettings(_ context.Context, record sprint.SettingsRecord) error {
	s.settings = &record
	s.replaced++
	return nil
}

type captureSink struct {
	objects map[string][]byte
}

func (c *captureSink) Put(_ context.Context, name string, data []byte) error {
	if c.objects == nil {
		c.objects = make(map[string][]byte)
	}
	c.objects[name] = data
	return nil
}

func (c *captureSink) List(_ context.Context) ([]string, error) {
	return nil, nil
}

func testService(t *testing.T, storage service.Storage, sink *captureSink) *service.CapacityService {
	t.Helper()
	cfg := sprint.DetectionConfig{
		FirstSprintStart:   time.Date(2025, time.July, 27, 0, 0, 0, 0, time.UTC),
		SprintLengthWeeks:  2,
		WorkingDaysPerWeek: 5,
		Week:               sprint.DefaultWorkWeek(),
	}
	svc, err := service.NewCapacityService(storage, sink, cfg)
	require.NoError(t, err)
	return svc
}

func TestRunRefreshOnceSeedsSettings(t *testing.T) {
	storage := &stubStorage{}
	w := New(testService(t, storage, &captureSink{}))
	w.now = func() time.Time { return time.Date(2025, time.July, 29, 0, 0, 0, 0, time.UTC) }

	require.NoError(t, w.RunRefreshOnce(context.Background()))

	require.NotNil(t, storage.settings)
	assert.Equal(t, 1, storage.settings.SprintNumber)
	assert.Equal(t, 1, storage.replaced)
}

func TestRunRefreshOnceReplacesStaleRecord(t *testing.T) {
	storage := &stubStorage{
		settings: &sprint.SettingsRecord{
			SprintNumber: 1,
			StartDate:    "2025-07-27",
			EndDate:      "2025-08-07",
			IsActive:     true,
		},
	}
	w := New(testService(t, storage, &captureSink{}))
	w.now = func() time.Time { return time.Date(2025, time.August, 12, 0, 0, 0, 0, time.UTC) }

	require.NoError(t, w.RunRefreshOnce(context.Background()))
	assert.Equal(t, 2, storage.settings.SprintNumber)

	// Settings are now current; another cycle must not rewrite them.
	require.NoError(t, w.RunRefreshOnce(context.Background()))
	assert.Equal(t, 1, storage.replaced)
}

func TestRunExportOnceWritesReportPerTeam(t *testing.T) {
	storage := &stubStorage{teams: []domain.Team{
		{ID: "t-1", Name: "platform"},
		{ID: "t-2", Name: "mobile"},
	}}
	sink := &captureSink{}
	w := New(testService(t, storage, sink))
	w.now = func() time.Time { return time.Date(2025, time.July, 29, 0, 0, 0, 0, time.UTC) }

	require.NoError(t, w.RunExportOnce(context.Background()))
	assert.Len(t, sink.objects, 2)
}

func TestStartStop(t *testing.T) {
	storage := &stubStorage{}
	w := New(testService(t, storage, &captureSink{}),
		WithRefreshInterval(10*time.Millisecond),
		WithExportInterval(time.Hour))

	errCh := make(chan error, 1)
	go func() {
		errCh <- w.Start(context.Background())
	}()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, w.Stop())

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("worker did not stop")
	}
}
