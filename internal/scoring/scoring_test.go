package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/xvierd/pomokids/internal/domain"
)

func TestCalculatePoints(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name    string
		session domain.SessionRecord
		want    int
	}{
		{
			"full completion with two focus blocks",
			domain.SessionRecord{PlannedMinutes: 60, CompletedMinutes: 60, CompletedFocusBlocks: 2},
			104,
		},
		{
			"zero planned yields zero",
			domain.SessionRecord{PlannedMinutes: 0, CompletedMinutes: 30, CompletedFocusBlocks: 1},
			0,
		},
		{
			"completion credit capped at 100 on overrun",
			domain.SessionRecord{PlannedMinutes: 60, CompletedMinutes: 90, CompletedFocusBlocks: 2},
			104,
		},
		{
			"half completion",
			domain.SessionRecord{PlannedMinutes: 60, CompletedMinutes: 30, CompletedFocusBlocks: 1},
			52,
		},
		{
			"ratio floors",
			domain.SessionRecord{PlannedMinutes: 90, CompletedMinutes: 60, CompletedFocusBlocks: 0},
			66,
		},
		{
			"block bonus alone",
			domain.SessionRecord{PlannedMinutes: 60, CompletedMinutes: 0, CompletedFocusBlocks: 0},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.CalculatePoints(tt.session))
		})
	}
}

func TestApplySession_AddsToAllPeriods(t *testing.T) {
	svc := NewService()
	scores := domain.ScoreSnapshot{Weekly: 10, Monthly: 20, Yearly: 30}
	session := domain.SessionRecord{PlannedMinutes: 60, CompletedMinutes: 60, CompletedFocusBlocks: 2}

	updated, points := svc.ApplySession(scores, session)

	assert.Equal(t, 104, points)
	assert.Equal(t, domain.ScoreSnapshot{Weekly: 114, Monthly: 124, Yearly: 134}, updated)
	// Input snapshot is untouched.
	assert.Equal(t, domain.ScoreSnapshot{Weekly: 10, Monthly: 20, Yearly: 30}, scores)
}

func TestUnlockedRewards(t *testing.T) {
	svc := NewService()
	scores := domain.ScoreSnapshot{Weekly: 120, Monthly: 300, Yearly: 50}

	rules := []domain.RewardRule{
		{Period: domain.PeriodWeekly, TargetScore: 100, RewardTitle: "extra play"},
		{Period: domain.PeriodMonthly, TargetScore: 500, RewardTitle: "movie pick"},
		{Period: domain.PeriodYearly, TargetScore: 50, RewardTitle: "day trip"},
	}

	unlocked := svc.UnlockedRewards(scores, rules)

	assert.Len(t, unlocked, 2)
	assert.Equal(t, "extra play", unlocked[0].RewardTitle)
	assert.Equal(t, "day trip", unlocked[1].RewardTitle)
}

func TestUnlockedRewards_DuplicatePeriodsIndependent(t *testing.T) {
	svc := NewService()
	scores := domain.ScoreSnapshot{Weekly: 150}

	rules := []domain.RewardRule{
		{Period: domain.PeriodWeekly, TargetScore: 100, RewardTitle: "first"},
		{Period: domain.PeriodWeekly, TargetScore: 150, RewardTitle: "second"},
		{Period: domain.PeriodWeekly, TargetScore: 200, RewardTitle: "third"},
	}

	unlocked := svc.UnlockedRewards(scores, rules)

	assert.Len(t, unlocked, 2)
	assert.Equal(t, "first", unlocked[0].RewardTitle)
	assert.Equal(t, "second", unlocked[1].RewardTitle)
}

func TestUnlockedRewards_Empty(t *testing.T) {
	svc := NewService()

	assert.Empty(t, svc.UnlockedRewards(domain.ScoreSnapshot{}, nil))
	assert.Empty(t, svc.UnlockedRewards(domain.ScoreSnapshot{}, []domain.RewardRule{
		{Period: domain.PeriodWeekly, TargetScore: 1, RewardTitle: "unreached"},
	}))
}
