// Package storage implements the state repository port on top of a
// single local JSON document.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xvierd/pomokids/internal/domain"
	"github.com/xvierd/pomokids/internal/ports"
)

// StateRepository reads and writes the full application state as one
// JSON file. Writes are atomic: temp file in the same directory, then
// rename.
type StateRepository struct {
	path string
}

// New creates a repository backed by the given file path.
func New(path string) *StateRepository {
	return &StateRepository{path: path}
}

// Path returns the backing file path.
func (r *StateRepository) Path() string {
	return r.path
}

// stateDocument is the persisted shape of the application state. Keys
// are snake_case; dates are ISO YYYY-MM-DD; periods are lowercase
// strings. Missing top-level keys default to empty collections and a
// zeroed snapshot.
type stateDocument struct {
	Profiles []profileDocument `json:"profiles"`
	Rewards  []rewardDocument  `json:"rewards"`
	Scores   scoresDocument    `json:"scores"`
	Sessions []sessionDocument `json:"sessions"`
}

type profileDocument struct {
	ProfileID             string            `json:"profile_id"`
	Title                 string            `json:"title"`
	TotalMinutes          int               `json:"total_minutes"`
	FocusMinutes          int               `json:"focus_minutes"`
	BreakMinutes          int               `json:"break_minutes"`
	AlertBeforeEndMinutes int               `json:"alert_before_end_minutes"`
	Settings              map[string]string `json:"settings"`
}

type rewardDocument struct {
	Period      string `json:"period"`
	TargetScore int    `json:"target_score"`
	RewardTitle string `json:"reward_title"`
}

type scoresDocument struct {
	Weekly  int `json:"weekly"`
	Monthly int `json:"monthly"`
	Yearly  int `json:"yearly"`
}

type sessionDocument struct {
	ProfileID            string      `json:"profile_id"`
	PlannedMinutes       int         `json:"planned_minutes"`
	CompletedMinutes     int         `json:"completed_minutes"`
	CompletedFocusBlocks int         `json:"completed_focus_blocks"`
	SessionDate          domain.Date `json:"session_date"`
}

// Load returns the persisted state, or a default-initialized state when
// the document does not exist yet.
func (r *StateRepository) Load() (*domain.AppState, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.NewAppState(), nil
		}
		return nil, fmt.Errorf("failed to read state file: %w", err)
	}

	var doc stateDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse state file: %w", err)
	}

	state := domain.NewAppState()
	for _, p := range doc.Profiles {
		settings := p.Settings
		if settings == nil {
			settings = map[string]string{}
		}
		state.Profiles = append(state.Profiles, domain.TaskProfile{
			ID:             p.ProfileID,
			Title:          p.Title,
			TotalMinutes:   p.TotalMinutes,
			FocusMinutes:   p.FocusMinutes,
			BreakMinutes:   p.BreakMinutes,
			AlertBeforeEnd: p.AlertBeforeEndMinutes,
			Settings:       settings,
		})
	}
	for _, rw := range doc.Rewards {
		period, err := domain.ValidatePeriod(rw.Period)
		if err != nil {
			return nil, fmt.Errorf("failed to parse state file: %w", err)
		}
		state.Rewards = append(state.Rewards, domain.RewardRule{
			Period:      period,
			TargetScore: rw.TargetScore,
			RewardTitle: rw.RewardTitle,
		})
	}
	state.Scores = domain.ScoreSnapshot{
		Weekly:  doc.Scores.Weekly,
		Monthly: doc.Scores.Monthly,
		Yearly:  doc.Scores.Yearly,
	}
	for _, s := range doc.Sessions {
		state.Sessions = append(state.Sessions, domain.SessionRecord{
			ProfileID:            s.ProfileID,
			PlannedMinutes:       s.PlannedMinutes,
			CompletedMinutes:     s.CompletedMinutes,
			CompletedFocusBlocks: s.CompletedFocusBlocks,
			SessionDate:          s.SessionDate,
		})
	}

	return state, nil
}

// Save serializes the full state and writes it atomically, creating the
// parent directory if needed.
func (r *StateRepository) Save(state *domain.AppState) error {
	doc := stateDocument{
		Profiles: []profileDocument{},
		Rewards:  []rewardDocument{},
		Scores: scoresDocument{
			Weekly:  state.Scores.Weekly,
			Monthly: state.Scores.Monthly,
			Yearly:  state.Scores.Yearly,
		},
		Sessions: []sessionDocument{},
	}
	for _, p := range state.Profiles {
		doc.Profiles = append(doc.Profiles, profileDocument{
			ProfileID:             p.ID,
			Title:                 p.Title,
			TotalMinutes:          p.TotalMinutes,
			FocusMinutes:          p.FocusMinutes,
			BreakMinutes:          p.BreakMinutes,
			AlertBeforeEndMinutes: p.AlertBeforeEnd,
			Settings:              p.Settings,
		})
	}
	for _, rw := range state.Rewards {
		doc.Rewards = append(doc.Rewards, rewardDocument{
			Period:      string(rw.Period),
			TargetScore: rw.TargetScore,
			RewardTitle: rw.RewardTitle,
		})
	}
	for _, s := range state.Sessions {
		doc.Sessions = append(doc.Sessions, sessionDocument{
			ProfileID:            s.ProfileID,
			PlannedMinutes:       s.PlannedMinutes,
			CompletedMinutes:     s.CompletedMinutes,
			CompletedFocusBlocks: s.CompletedFocusBlocks,
			SessionDate:          s.SessionDate,
		})
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize state: %w", err)
	}

	dir := filepath.Dir(r.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	// Write to a temp file in the same directory so os.Rename is atomic.
	tmp, err := os.CreateTemp(dir, "state-*.json.tmp")
	if err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			os.Remove(tmpName)
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	if err = os.Rename(tmpName, r.path); err != nil {
		return fmt.Errorf("failed to write state file: %w", err)
	}
	return nil
}

// Ensure StateRepository implements the port.
var _ ports.StateRepository = (*StateRepository)(nil)
