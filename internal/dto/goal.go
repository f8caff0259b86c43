package dto

import (
	"time"

	"github.com/akerley/pocketledger/internal/core/domain"
	"github.com/akerley/pocketledger/internal/utils/goalmath"
	"github.com/shopspring/decimal"
)

// CreateGoalRequest defines the data needed to create a savings goal.
type CreateGoalRequest struct {
	Title        string           `json:"title" binding:"required"`
	Category     string           `json:"category"`
	TargetAmount decimal.Decimal  `json:"targetAmount" binding:"required"`
	Deadline     *domain.FlexTime `json:"deadline"`
	Image        string           `json:"image"`
}

// UpdateGoalRequest defines the fields that may change on a goal.
// CurrentAmount is directly editable, including downward; a goal can be
// un-achieved by editing.
type UpdateGoalRequest struct {
	Title         *string          `json:"title"`
	Category      *string          `json:"category"`
	TargetAmount  *decimal.Decimal `json:"targetAmount"`
	CurrentAmount *decimal.Decimal `json:"currentAmount"`
	Deadline      *domain.FlexTime `json:"deadline"`
	Image         *string          `json:"image"`
}

// AddToSavingsRequest carries the amount for a quick-add. The result is
// clamped at the goal's target.
type AddToSavingsRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// GoalResponse mirrors domain.Goal for API output.
type GoalResponse struct {
	ID            string          `json:"id"`
	Title         string          `json:"title"`
	Category      string          `json:"category"`
	TargetAmount  decimal.Decimal `json:"targetAmount"`
	CurrentAmount decimal.Decimal `json:"currentAmount"`
	Deadline      *time.Time      `json:"deadline,omitempty"`
	Image         string          `json:"image,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	Achieved      bool            `json:"achieved"`
}

// ToGoalResponse converts a domain.Goal to its API representation.
func ToGoalResponse(g *domain.Goal) GoalResponse {
	res := GoalResponse{
		ID:            g.ID,
		Title:         g.Title,
		Category:      g.Category,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Image:         g.Image,
		CreatedAt:     g.CreatedAt.UTC(),
		Achieved:      g.Achieved(),
	}
	if g.Deadline != nil {
		d := g.Deadline.UTC()
		res.Deadline = &d
	}
	return res
}

// ToListGoalResponse converts a slice of goals.
func ToListGoalResponse(goals []domain.Goal) []GoalResponse {
	res := make([]GoalResponse, len(goals))
	for i := range goals {
		res[i] = ToGoalResponse(&goals[i])
	}
	return res
}

// GoalProgressResponse carries the derived progress values for one goal.
type GoalProgressResponse struct {
	GoalID            string              `json:"goalId"`
	Ratio             float64             `json:"ratio"`
	Percent           float64             `json:"percent"`
	Status            goalmath.Status     `json:"status"`
	DaysUntilDeadline *int                `json:"daysUntilDeadline,omitempty"`
	DailyTarget       *decimal.Decimal    `json:"dailyTarget,omitempty"`
	ProjectedDate     *time.Time          `json:"projectedDate,omitempty"`
}
