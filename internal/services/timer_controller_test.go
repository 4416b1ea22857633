package services

import (
	"errors"
	"testing"
	"time"

	"github.com/xvierd/pomokids/internal/domain"
)

// recordingNotifier captures notification calls for assertions.
type recordingNotifier struct {
	popups []string
	sounds int
}

func (n *recordingNotifier) Popup(title, message string) error {
	n.popups = append(n.popups, title+": "+message)
	return nil
}

func (n *recordingNotifier) PlaySound() error {
	n.sounds++
	return nil
}

func testProfile() domain.TaskProfile {
	return domain.TaskProfile{
		ID:             "study-default",
		Title:          "study",
		TotalMinutes:   60,
		FocusMinutes:   25,
		BreakMinutes:   5,
		AlertBeforeEnd: 10,
	}
}

func intPtr(v int) *int { return &v }

func TestRunProfileSession_DefaultsToFullCompletion(t *testing.T) {
	notifier := &recordingNotifier{}
	tc := NewTimerController(notifier)
	tc.now = func() time.Time { return time.Date(2026, time.March, 14, 15, 9, 0, 0, time.UTC) }

	result, err := tc.RunProfileSession(testProfile(), nil)
	if err != nil {
		t.Fatalf("RunProfileSession() error = %v", err)
	}

	session := result.Session
	if session.CompletedMinutes != 60 {
		t.Errorf("CompletedMinutes = %d, want 60", session.CompletedMinutes)
	}
	if session.PlannedMinutes != 60 {
		t.Errorf("PlannedMinutes = %d, want 60", session.PlannedMinutes)
	}
	if session.CompletedFocusBlocks != 2 {
		t.Errorf("CompletedFocusBlocks = %d, want 2", session.CompletedFocusBlocks)
	}
	if got := session.SessionDate.String(); got != "2026-03-14" {
		t.Errorf("SessionDate = %s, want 2026-03-14", got)
	}
	if len(result.Blocks) != 4 {
		t.Errorf("len(Blocks) = %d, want 4", len(result.Blocks))
	}

	// Remaining 0 <= alert threshold: exactly one popup and one sound.
	if len(notifier.popups) != 1 {
		t.Errorf("popups = %d, want 1", len(notifier.popups))
	}
	if notifier.sounds != 1 {
		t.Errorf("sounds = %d, want 1", notifier.sounds)
	}
}

func TestRunProfileSession_NearEndAlert(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		wantAlert bool
	}{
		{"remaining below threshold", 52, true},
		{"remaining equals threshold", 50, true},
		{"remaining above threshold", 40, false},
		{"nothing completed", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &recordingNotifier{}
			tc := NewTimerController(notifier)

			_, err := tc.RunProfileSession(testProfile(), intPtr(tt.completed))
			if err != nil {
				t.Fatalf("RunProfileSession() error = %v", err)
			}

			wantCount := 0
			if tt.wantAlert {
				wantCount = 1
			}
			if len(notifier.popups) != wantCount {
				t.Errorf("popups = %d, want %d", len(notifier.popups), wantCount)
			}
			if notifier.sounds != wantCount {
				t.Errorf("sounds = %d, want %d", notifier.sounds, wantCount)
			}
		})
	}
}

func TestRunProfileSession_ClampsCompletedMinutes(t *testing.T) {
	tests := []struct {
		name      string
		completed int
		want      int
	}{
		{"above planned clamps down", 999, 60},
		{"negative clamps to zero", -5, 0},
		{"in range untouched", 30, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := NewTimerController(&recordingNotifier{})
			result, err := tc.RunProfileSession(testProfile(), intPtr(tt.completed))
			if err != nil {
				t.Fatalf("RunProfileSession() error = %v", err)
			}
			if result.Session.CompletedMinutes != tt.want {
				t.Errorf("CompletedMinutes = %d, want %d", result.Session.CompletedMinutes, tt.want)
			}
		})
	}
}

func TestRunProfileSession_FocusBlockPrefixSum(t *testing.T) {
	// Blocks for 60m at 25/5: focus(25) break(5) focus(25) break(5).
	// Cumulative focus boundaries: 25 and 55.
	tests := []struct {
		name      string
		completed int
		want      int
	}{
		{"full completion credits both", 60, 2},
		{"just past first focus", 28, 1},
		{"exactly first focus", 25, 1},
		{"inside first focus", 24, 0},
		{"exactly second boundary", 55, 2},
		{"just before second boundary", 54, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tc := NewTimerController(&recordingNotifier{})
			result, err := tc.RunProfileSession(testProfile(), intPtr(tt.completed))
			if err != nil {
				t.Fatalf("RunProfileSession() error = %v", err)
			}
			if result.Session.CompletedFocusBlocks != tt.want {
				t.Errorf("CompletedFocusBlocks = %d, want %d", result.Session.CompletedFocusBlocks, tt.want)
			}
		})
	}
}

func TestRunProfileSession_InvalidProfileConfig(t *testing.T) {
	tc := NewTimerController(&recordingNotifier{})

	profile := testProfile()
	profile.FocusMinutes = 0

	_, err := tc.RunProfileSession(profile, nil)
	if !errors.Is(err, domain.ErrInvalidBlockConfig) {
		t.Errorf("RunProfileSession() error = %v, want ErrInvalidBlockConfig", err)
	}

	profile = testProfile()
	profile.TotalMinutes = 0
	_, err = tc.RunProfileSession(profile, nil)
	if !errors.Is(err, domain.ErrInvalidDuration) {
		t.Errorf("RunProfileSession() error = %v, want ErrInvalidDuration", err)
	}
}
