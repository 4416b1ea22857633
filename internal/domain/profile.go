// Package domain contains the core business entities for Pomodoro Kids.
// These entities represent the fundamental concepts of the scheduling and
// reward system and are independent of any external frameworks or
// infrastructure.
package domain

import "errors"

// Common domain errors.
var (
	ErrInvalidBlockConfig = errors.New("focus and break durations must be positive")
	ErrInvalidDuration    = errors.New("total minutes must be positive")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrEmptyProfileTitle  = errors.New("profile title cannot be empty")
)

// TaskProfile is a configurable activity profile such as study or gaming.
// Profiles are replaced whole on update, keyed by ID. The title doubles as
// a lookup key for the presentation layer; uniqueness is assumed but not
// enforced here.
type TaskProfile struct {
	ID             string
	Title          string
	TotalMinutes   int
	FocusMinutes   int
	BreakMinutes   int
	AlertBeforeEnd int
	Settings       map[string]string
}

// NewTaskProfile creates a profile with the standard 25/5 block lengths.
func NewTaskProfile(title string, totalMinutes int) (*TaskProfile, error) {
	if title == "" {
		return nil, ErrEmptyProfileTitle
	}
	if totalMinutes <= 0 {
		return nil, ErrInvalidDuration
	}

	return &TaskProfile{
		ID:             generateID(),
		Title:          title,
		TotalMinutes:   totalMinutes,
		FocusMinutes:   25,
		BreakMinutes:   5,
		AlertBeforeEnd: 5,
		Settings:       map[string]string{},
	}, nil
}

// SetSetting stores a free-form profile setting.
func (p *TaskProfile) SetSetting(key, value string) {
	if p.Settings == nil {
		p.Settings = map[string]string{}
	}
	p.Settings[key] = value
}
