package services

import (
	"fmt"
	"strings"

	"github.com/xvierd/pomokids/internal/domain"
	"github.com/xvierd/pomokids/internal/ports"
	"github.com/xvierd/pomokids/internal/scoring"
)

// AppController is the top-level coordinator and sole owner of the
// in-memory application state. It wires the timer controller, scoring
// service, and state repository, and exposes profile CRUD and session
// operations to the presentation layer. All dependencies are injected at
// construction; there is no ambient state.
type AppController struct {
	repo    ports.StateRepository
	timer   *TimerController
	scoring scoring.Service
	state   *domain.AppState
}

// NewAppController loads the persisted state and seeds first-run
// defaults. Seeding saves at most once, and only when something was
// added.
func NewAppController(repo ports.StateRepository, notifier ports.NotificationPort) (*AppController, error) {
	state, err := repo.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	c := &AppController{
		repo:    repo,
		timer:   NewTimerController(notifier),
		scoring: scoring.NewService(),
		state:   state,
	}

	if err := c.seedDefaults(); err != nil {
		return nil, err
	}
	return c, nil
}

// seedDefaults creates baseline profiles and reward rules on first run.
func (c *AppController) seedDefaults() error {
	dirty := false

	if len(c.state.Profiles) == 0 {
		c.state.Profiles = []domain.TaskProfile{
			{
				ID:             "study-default",
				Title:          "study",
				TotalMinutes:   60,
				FocusMinutes:   25,
				BreakMinutes:   5,
				AlertBeforeEnd: 10,
				Settings:       map[string]string{},
			},
			{
				ID:             "gaming-default",
				Title:          "gaming",
				TotalMinutes:   45,
				FocusMinutes:   20,
				BreakMinutes:   5,
				AlertBeforeEnd: 5,
				Settings:       map[string]string{},
			},
			{
				ID:             "internet-default",
				Title:          "internet",
				TotalMinutes:   30,
				FocusMinutes:   15,
				BreakMinutes:   5,
				AlertBeforeEnd: 5,
				Settings:       map[string]string{},
			},
		}
		dirty = true
	}

	if len(c.state.Rewards) == 0 {
		c.state.Rewards = []domain.RewardRule{
			{Period: domain.PeriodWeekly, TargetScore: 300, RewardTitle: "30 extra minutes of play"},
			{Period: domain.PeriodMonthly, TargetScore: 1500, RewardTitle: "weekend movie pick"},
			{Period: domain.PeriodYearly, TargetScore: 20000, RewardTitle: "special yearly gift"},
		}
		dirty = true
	}

	if dirty {
		if err := c.repo.Save(c.state); err != nil {
			return fmt.Errorf("failed to save seeded state: %w", err)
		}
	}
	return nil
}

// ListProfiles returns a defensive copy of all profiles.
func (c *AppController) ListProfiles() []domain.TaskProfile {
	profiles := make([]domain.TaskProfile, len(c.state.Profiles))
	copy(profiles, c.state.Profiles)
	return profiles
}

// Rewards returns a defensive copy of the reward rules.
func (c *AppController) Rewards() []domain.RewardRule {
	rewards := make([]domain.RewardRule, len(c.state.Rewards))
	copy(rewards, c.state.Rewards)
	return rewards
}

// Sessions returns a defensive copy of the session history.
func (c *AppController) Sessions() []domain.SessionRecord {
	sessions := make([]domain.SessionRecord, len(c.state.Sessions))
	copy(sessions, c.state.Sessions)
	return sessions
}

// Scores returns the current score snapshot.
func (c *AppController) Scores() domain.ScoreSnapshot {
	return c.state.Scores
}

// UpsertProfile replaces the profile with a matching ID or appends it,
// then persists the full state.
func (c *AppController) UpsertProfile(profile domain.TaskProfile) error {
	c.state.UpsertProfile(profile)
	if err := c.repo.Save(c.state); err != nil {
		return fmt.Errorf("failed to save state: %w", err)
	}
	return nil
}

// FindProfile looks up a profile by ID, then by exact title.
func (c *AppController) FindProfile(idOrTitle string) (*domain.TaskProfile, error) {
	if p := c.state.FindProfile(idOrTitle); p != nil {
		found := *p
		return &found, nil
	}
	if p := c.state.FindProfileByTitle(idOrTitle); p != nil {
		found := *p
		return &found, nil
	}
	return nil, domain.ErrProfileNotFound
}

// RunProfileSession simulates one session for the profile, applies the
// score, appends the record to history, persists, and reports the result.
func (c *AppController) RunProfileSession(profileID string, completedMinutes *int) (string, error) {
	profile := c.state.FindProfile(profileID)
	if profile == nil {
		return "", domain.ErrProfileNotFound
	}

	result, err := c.timer.RunProfileSession(*profile, completedMinutes)
	if err != nil {
		return "", err
	}

	updated, points := c.scoring.ApplySession(c.state.Scores, result.Session)
	c.state.Scores = updated
	c.state.AppendSession(result.Session)

	if err := c.repo.Save(c.state); err != nil {
		return "", fmt.Errorf("failed to save state: %w", err)
	}

	unlocked := c.scoring.UnlockedRewards(c.state.Scores, c.state.Rewards)
	if len(unlocked) > 0 {
		titles := make([]string, len(unlocked))
		for i, rule := range unlocked {
			titles[i] = rule.RewardTitle
		}
		return fmt.Sprintf("Recorded %d points. Rewards unlocked: %s", points, strings.Join(titles, ", ")), nil
	}
	return fmt.Sprintf("Recorded %d points.", points), nil
}

// NextRewardProgress returns the lowest-target unreached rule for the
// period and how many points remain, or ("", 0) when every rule for the
// period is already met or none exist.
func (c *AppController) NextRewardProgress(period domain.Period) (string, int) {
	score := c.state.Scores.ForPeriod(period)

	var next *domain.RewardRule
	for i := range c.state.Rewards {
		rule := &c.state.Rewards[i]
		if rule.Period != period || score >= rule.TargetScore {
			continue
		}
		if next == nil || rule.TargetScore < next.TargetScore {
			next = rule
		}
	}

	if next == nil {
		return "", 0
	}
	return next.RewardTitle, next.TargetScore - score
}

// Ensure AppController satisfies the MCP boundary.
var _ ports.MCPStateProvider = (*AppController)(nil)
