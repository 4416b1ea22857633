package domain

import "fmt"

// Period represents the reward and score granularity.
type Period string

const (
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// ValidPeriods lists all supported period values.
var ValidPeriods = []Period{PeriodWeekly, PeriodMonthly, PeriodYearly}

// ValidatePeriod checks if a string is a valid period.
func ValidatePeriod(s string) (Period, error) {
	p := Period(s)
	for _, valid := range ValidPeriods {
		if p == valid {
			return p, nil
		}
	}
	return "", fmt.Errorf("invalid period %q: must be one of weekly, monthly, yearly", s)
}

// Label returns a human-readable label.
func (p Period) Label() string {
	switch p {
	case PeriodWeekly:
		return "Weekly"
	case PeriodMonthly:
		return "Monthly"
	case PeriodYearly:
		return "Yearly"
	default:
		return "Unknown"
	}
}

// ScoreSnapshot stores cumulative score totals by period. Counters only
// ever increase; there is no automatic period rollover.
type ScoreSnapshot struct {
	Weekly  int
	Monthly int
	Yearly  int
}

// ForPeriod returns the counter for the given period.
func (s ScoreSnapshot) ForPeriod(p Period) int {
	switch p {
	case PeriodWeekly:
		return s.Weekly
	case PeriodMonthly:
		return s.Monthly
	case PeriodYearly:
		return s.Yearly
	default:
		return 0
	}
}

// Add returns a snapshot with points added to every period counter.
func (s ScoreSnapshot) Add(points int) ScoreSnapshot {
	return ScoreSnapshot{
		Weekly:  s.Weekly + points,
		Monthly: s.Monthly + points,
		Yearly:  s.Yearly + points,
	}
}

// RewardRule is a parent-configured threshold that unlocks a named reward
// once the matching period counter reaches the target. Read-only to the
// core logic.
type RewardRule struct {
	Period      Period
	TargetScore int
	RewardTitle string
}
