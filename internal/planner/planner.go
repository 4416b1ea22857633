// Package planner builds alternating focus/break block schedules from a
// total assigned duration. Planning is pure integer arithmetic with no
// side effects.
package planner

import (
	"github.com/xvierd/pomokids/internal/domain"
)

// Planner creates pomodoro-style time blocks for a fixed focus/break
// configuration.
type Planner struct {
	focusMinutes int
	breakMinutes int
}

// New creates a planner. Both durations must be positive.
func New(focusMinutes, breakMinutes int) (*Planner, error) {
	if focusMinutes <= 0 || breakMinutes <= 0 {
		return nil, domain.ErrInvalidBlockConfig
	}
	return &Planner{focusMinutes: focusMinutes, breakMinutes: breakMinutes}, nil
}

// ForProfile creates a planner from a profile's block configuration.
func ForProfile(profile domain.TaskProfile) (*Planner, error) {
	return New(profile.FocusMinutes, profile.BreakMinutes)
}

// BuildBlocks produces an ordered focus/break sequence that exactly fills
// totalMinutes. Blocks alternate starting with focus; each block consumes
// min(configured length, remaining), and planning stops the moment
// remaining time is exhausted, so a break is only appended when time is
// left after the preceding focus block. Indices are 1-based and
// contiguous.
func (p *Planner) BuildBlocks(totalMinutes int) ([]domain.TimeBlock, error) {
	if totalMinutes <= 0 {
		return nil, domain.ErrInvalidDuration
	}

	remaining := totalMinutes
	var blocks []domain.TimeBlock
	index := 1

	for remaining > 0 {
		focus := min(p.focusMinutes, remaining)
		blocks = append(blocks, domain.TimeBlock{
			Type:            domain.BlockTypeFocus,
			DurationMinutes: focus,
			Index:           index,
		})
		remaining -= focus
		index++

		if remaining <= 0 {
			break
		}

		brk := min(p.breakMinutes, remaining)
		blocks = append(blocks, domain.TimeBlock{
			Type:            domain.BlockTypeBreak,
			DurationMinutes: brk,
			Index:           index,
		})
		remaining -= brk
		index++
	}

	return blocks, nil
}
