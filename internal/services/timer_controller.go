// Package services implements the application layer (use cases)
// following hexagonal architecture principles.
package services

import (
	"fmt"
	"time"

	"github.com/xvierd/pomokids/internal/domain"
	"github.com/xvierd/pomokids/internal/planner"
	"github.com/xvierd/pomokids/internal/ports"
)

// RunResult is the outcome of one simulated profile run.
type RunResult struct {
	Session domain.SessionRecord
	Blocks  []domain.TimeBlock
}

// TimerController coordinates block planning and session completion
// tracking. It performs no persistence and no scoring; a session here is
// a single batch computation over a supplied completed-minutes value, not
// a live countdown.
type TimerController struct {
	notifier ports.NotificationPort
	now      func() time.Time
}

// NewTimerController creates a timer controller with the given
// notification port.
func NewTimerController(notifier ports.NotificationPort) *TimerController {
	return &TimerController{
		notifier: notifier,
		now:      time.Now,
	}
}

// RunProfileSession simulates one session of the profile's schedule.
// A nil completedMinutes means full completion; out-of-range values are
// silently clamped into [0, TotalMinutes]. When the remaining time is
// within the profile's alert threshold, exactly one popup and one sound
// are dispatched before the result is built.
func (tc *TimerController) RunProfileSession(profile domain.TaskProfile, completedMinutes *int) (*RunResult, error) {
	p, err := planner.ForProfile(profile)
	if err != nil {
		return nil, err
	}
	blocks, err := p.BuildBlocks(profile.TotalMinutes)
	if err != nil {
		return nil, err
	}

	completed := profile.TotalMinutes
	if completedMinutes != nil {
		completed = clamp(*completedMinutes, 0, profile.TotalMinutes)
	}

	if profile.TotalMinutes-completed <= profile.AlertBeforeEnd {
		// Fire-and-forget: delivery failures never block the session.
		_ = tc.notifier.Popup(
			"Almost done!",
			fmt.Sprintf("Your %s time is nearly over.", profile.Title),
		)
		_ = tc.notifier.PlaySound()
	}

	session := domain.SessionRecord{
		ProfileID:            profile.ID,
		PlannedMinutes:       profile.TotalMinutes,
		CompletedMinutes:     completed,
		CompletedFocusBlocks: countCompletedFocusBlocks(blocks, completed),
		SessionDate:          domain.DateOf(tc.now()),
	}

	return &RunResult{Session: session, Blocks: blocks}, nil
}

// countCompletedFocusBlocks credits a focus block only when the cumulative
// duration of all blocks up to and including it fits inside the completed
// time. A block after an incomplete earlier block can never be credited.
func countCompletedFocusBlocks(blocks []domain.TimeBlock, completedMinutes int) int {
	elapsed := 0
	count := 0
	for _, block := range blocks {
		elapsed += block.DurationMinutes
		if block.IsFocus() && elapsed <= completedMinutes {
			count++
		}
	}
	return count
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
