package goalmath

import (
	"math"
	"time"

	"github.com/akerley/pocketledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Status classifies a goal against its deadline by the daily progress rate
// still required to hit the target in time.
type Status string

const (
	StatusOnTrack    Status = "onTrack"
	StatusAtRisk     Status = "atRisk"
	StatusBehind     Status = "behind"
	StatusExpired    Status = "expired"
	StatusNoDeadline Status = "noDeadline"
)

// Required-daily-progress thresholds, as fractions of the whole goal per day.
const (
	behindThreshold = 0.10
	atRiskThreshold = 0.05
)

// Progress returns the completion ratio in [0,1]. A goal with a non-positive
// target has zero progress.
func Progress(g domain.Goal) float64 {
	if g.TargetAmount.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	ratio, _ := g.CurrentAmount.Div(g.TargetAmount).Float64()
	if ratio > 1 {
		return 1
	}
	if ratio < 0 {
		return 0
	}
	return ratio
}

// DaysUntilDeadline returns the calendar-day difference from today to the
// deadline, ceiling rounded. Zero or negative means the deadline is today or
// past. ok is false when the goal has no deadline.
func DaysUntilDeadline(g domain.Goal, today time.Time) (days int, ok bool) {
	if g.Deadline == nil {
		return 0, false
	}
	diff := g.Deadline.Sub(today)
	return int(math.Ceil(diff.Hours() / 24)), true
}

// DailyTargetNeeded returns the amount that must be saved per day to reach
// the target by the deadline. ok is false when the goal has no deadline or
// the deadline has passed; an expired goal has no meaningful rate.
func DailyTargetNeeded(g domain.Goal, today time.Time) (rate decimal.Decimal, ok bool) {
	days, hasDeadline := DaysUntilDeadline(g, today)
	if !hasDeadline || days <= 0 {
		return decimal.Zero, false
	}

	remaining := g.TargetAmount.Sub(g.CurrentAmount)
	if remaining.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, true
	}
	return remaining.Div(decimal.NewFromInt(int64(days))), true
}

// StatusClass derives the goal's status. NoDeadline and expired short-circuit
// the rate computation; otherwise the remaining progress per remaining day is
// compared against fixed thresholds.
func StatusClass(g domain.Goal, today time.Time) Status {
	days, hasDeadline := DaysUntilDeadline(g, today)
	if !hasDeadline {
		return StatusNoDeadline
	}
	if g.Achieved() {
		return StatusOnTrack
	}
	if days <= 0 {
		return StatusExpired
	}

	requiredPerDay := (1 - Progress(g)) / float64(days)
	switch {
	case requiredPerDay > behindThreshold:
		return StatusBehind
	case requiredPerDay >= atRiskThreshold:
		return StatusAtRisk
	default:
		return StatusOnTrack
	}
}

// AddToSavings returns the goal with amount added to its current savings,
// saturating at the target. It never overshoots.
func AddToSavings(g domain.Goal, amount decimal.Decimal) domain.Goal {
	next := g.CurrentAmount.Add(amount)
	if next.GreaterThan(g.TargetAmount) {
		next = g.TargetAmount
	}
	g.CurrentAmount = next
	return g
}

// ProjectedDate extrapolates the goal's average saving rate since creation to
// a completion date. It returns nil when nothing has been saved yet (no rate
// to project from), and today's date when the goal is already achieved.
func ProjectedDate(g domain.Goal, today time.Time) *time.Time {
	if g.Achieved() {
		d := today
		return &d
	}
	if g.CurrentAmount.LessThanOrEqual(decimal.Zero) {
		return nil
	}

	daysElapsed := today.Sub(g.CreatedAt.Time).Hours() / 24
	if daysElapsed < 1 {
		daysElapsed = 1
	}

	perDay, _ := g.CurrentAmount.Float64()
	perDay /= daysElapsed
	if perDay <= 0 {
		return nil
	}

	remaining, _ := g.TargetAmount.Sub(g.CurrentAmount).Float64()
	daysToGo := int(math.Ceil(remaining / perDay))
	d := today.AddDate(0, 0, daysToGo)
	return &d
}
