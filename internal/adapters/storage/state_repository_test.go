package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xvierd/pomokids/internal/domain"
)

func testState() *domain.AppState {
	return &domain.AppState{
		Profiles: []domain.TaskProfile{{
			ID:             "study-default",
			Title:          "study",
			TotalMinutes:   60,
			FocusMinutes:   25,
			BreakMinutes:   5,
			AlertBeforeEnd: 10,
			Settings:       map[string]string{"color": "green"},
		}},
		Rewards: []domain.RewardRule{
			{Period: domain.PeriodWeekly, TargetScore: 300, RewardTitle: "extra play"},
			{Period: domain.PeriodYearly, TargetScore: 20000, RewardTitle: "big gift"},
		},
		Scores: domain.ScoreSnapshot{Weekly: 114, Monthly: 124, Yearly: 134},
		Sessions: []domain.SessionRecord{{
			ProfileID:            "study-default",
			PlannedMinutes:       60,
			CompletedMinutes:     52,
			CompletedFocusBlocks: 2,
			SessionDate:          domain.Date{Year: 2026, Month: 3, Day: 14},
		}},
	}
}

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	repo := New(filepath.Join(t.TempDir(), "state.json"))

	state, err := repo.Load()
	require.NoError(t, err)

	assert.Empty(t, state.Profiles)
	assert.Empty(t, state.Rewards)
	assert.Empty(t, state.Sessions)
	assert.Equal(t, domain.ScoreSnapshot{}, state.Scores)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	repo := New(filepath.Join(t.TempDir(), "state.json"))
	state := testState()

	require.NoError(t, repo.Save(state))

	loaded, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, state, loaded)
}

func TestSave_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "state.json")
	repo := New(path)

	require.NoError(t, repo.Save(domain.NewAppState()))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestSave_Deterministic(t *testing.T) {
	dir := t.TempDir()
	first := New(filepath.Join(dir, "a.json"))
	second := New(filepath.Join(dir, "b.json"))

	require.NoError(t, first.Save(testState()))
	loaded, err := first.Load()
	require.NoError(t, err)
	require.NoError(t, second.Save(loaded))

	a, err := os.ReadFile(first.Path())
	require.NoError(t, err)
	b, err := os.ReadFile(second.Path())
	require.NoError(t, err)
	assert.Equal(t, string(a), string(b))
}

func TestLoad_MissingKeysDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"scores": {"weekly": 7}}`), 0o644))

	state, err := New(path).Load()
	require.NoError(t, err)

	assert.Empty(t, state.Profiles)
	assert.Empty(t, state.Rewards)
	assert.Empty(t, state.Sessions)
	assert.Equal(t, domain.ScoreSnapshot{Weekly: 7}, state.Scores)
}

func TestLoad_NilSettingsBecomeEmptyMap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	doc := `{"profiles": [{"profile_id": "p1", "title": "study", "total_minutes": 60,
		"focus_minutes": 25, "break_minutes": 5, "alert_before_end_minutes": 5}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	state, err := New(path).Load()
	require.NoError(t, err)

	require.Len(t, state.Profiles, 1)
	assert.NotNil(t, state.Profiles[0].Settings)
}

func TestLoad_MalformedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o644))

	_, err := New(path).Load()
	assert.Error(t, err)
}

func TestLoad_InvalidPeriod(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	doc := `{"rewards": [{"period": "daily", "target_score": 10, "reward_title": "x"}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := New(path).Load()
	assert.Error(t, err)
}

func TestLoad_InvalidDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	doc := `{"sessions": [{"profile_id": "p", "planned_minutes": 60,
		"completed_minutes": 60, "completed_focus_blocks": 2, "session_date": "14/03/2026"}]}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	_, err := New(path).Load()
	assert.Error(t, err)
}

func TestSave_NoLeftoverTempFiles(t *testing.T) {
	dir := t.TempDir()
	repo := New(filepath.Join(dir, "state.json"))

	require.NoError(t, repo.Save(testState()))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "state.json", entries[0].Name())
}
