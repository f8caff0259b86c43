package services

import (
	"context"

	"github.com/akerley/pocketledger/internal/core/domain"
	"github.com/akerley/pocketledger/internal/dto"
)

// GoalReaderSvc defines read operations over savings goals.
type GoalReaderSvc interface {
	// GetGoalByID retrieves a specific goal.
	GetGoalByID(ctx context.Context, goalID string) (*domain.Goal, error)

	// ListGoals retrieves the full goal collection.
	ListGoals(ctx context.Context) ([]domain.Goal, error)

	// GetGoalProgress derives completion ratio, deadline math, status
	// classification, and projection for one goal.
	GetGoalProgress(ctx context.Context, goalID string) (*dto.GoalProgressResponse, error)
}

// GoalWriterSvc defines write operations over savings goals.
type GoalWriterSvc interface {
	// CreateGoal persists a new goal.
	CreateGoal(ctx context.Context, req dto.CreateGoalRequest) (*domain.Goal, error)

	// UpdateGoal edits a goal. CurrentAmount may be edited downward;
	// there is no guard against un-achieving a goal.
	UpdateGoal(ctx context.Context, goalID string, req dto.UpdateGoalRequest) (*domain.Goal, error)

	// DeleteGoal removes a goal.
	DeleteGoal(ctx context.Context, goalID string) error

	// AddToSavings adds to the goal's current amount, saturating at the
	// target.
	AddToSavings(ctx context.Context, goalID string, req dto.AddToSavingsRequest) (*domain.Goal, error)
}

// GoalSvcFacade combines all goal-related service interfaces.
type GoalSvcFacade interface {
	GoalReaderSvc
	GoalWriterSvc
}
