// Package scoring implements point calculation and reward resolution.
package scoring

import (
	"github.com/xvierd/pomokids/internal/domain"
)

// completionCredit is the maximum points awarded for time-on-task.
// The focus-block bonus is intentionally not capped relative to it.
const completionCredit = 100

// blockBonusPoints is awarded per fully completed focus block.
const blockBonusPoints = 2

// Service calculates earned points and resolves reward eligibility.
// It is stateless; all inputs are assumed validated by the caller.
type Service struct{}

// NewService creates a scoring service.
func NewService() Service {
	return Service{}
}

// CalculatePoints returns the points earned by a session: completion
// percentage (capped at 100) plus two points per completed focus block.
func (Service) CalculatePoints(session domain.SessionRecord) int {
	if session.PlannedMinutes <= 0 {
		return 0
	}

	ratio := float64(session.CompletedMinutes) / float64(session.PlannedMinutes)
	if ratio > 1 {
		ratio = 1
	}
	completionPoints := int(ratio * completionCredit)
	blockBonus := session.CompletedFocusBlocks * blockBonusPoints
	return completionPoints + blockBonus
}

// ApplySession adds a session's points to every period counter and
// returns the updated snapshot with the awarded points. Points are not
// period-scoped; the period split exists only for reward thresholds.
func (s Service) ApplySession(scores domain.ScoreSnapshot, session domain.SessionRecord) (domain.ScoreSnapshot, int) {
	points := s.CalculatePoints(session)
	return scores.Add(points), points
}

// UnlockedRewards returns the rules whose period counter meets or exceeds
// the target, preserving input order. Duplicate-period rules are evaluated
// independently.
func (Service) UnlockedRewards(scores domain.ScoreSnapshot, rules []domain.RewardRule) []domain.RewardRule {
	var unlocked []domain.RewardRule
	for _, rule := range rules {
		if scores.ForPeriod(rule.Period) >= rule.TargetScore {
			unlocked = append(unlocked, rule)
		}
	}
	return unlocked
}
