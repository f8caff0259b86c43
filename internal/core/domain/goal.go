package domain

import "github.com/shopspring/decimal"

// Goal is an independent savings target with an optional deadline. It is
// deliberately not tied to any wallet or transaction; goals track abstract
// savings, not ledger money.
type Goal struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Category      string          `json:"category"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      *FlexTime       `json:"deadline,omitempty"`
	Image         string          `json:"image,omitempty"`
	CreatedAt     FlexTime        `json:"createdAt"`
}

// Achieved reports whether the goal has reached its target.
func (g Goal) Achieved() bool {
	return g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}
