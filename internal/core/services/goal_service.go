package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/akerley/pocketledger/internal/apperrors"
	"github.com/akerley/pocketledger/internal/core/domain"
	portsrepo "github.com/akerley/pocketledger/internal/core/ports/repositories"
	portssvc "github.com/akerley/pocketledger/internal/core/ports/services"
	"github.com/akerley/pocketledger/internal/dto"
	"github.com/akerley/pocketledger/internal/utils/accounting"
	"github.com/akerley/pocketledger/internal/utils/goalmath"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// goalService implements the GoalSvcFacade interface. Goals are a parallel
// subsystem to the ledger: they are persisted independently and reference no
// wallet or transaction.
type goalService struct {
	BaseService
	goalRepo portsrepo.GoalRepository
}

// NewGoalService creates a new goal service.
func NewGoalService(goalRepo portsrepo.GoalRepository) portssvc.GoalSvcFacade {
	return &goalService{goalRepo: goalRepo}
}

var _ portssvc.GoalSvcFacade = (*goalService)(nil)

func (s *goalService) CreateGoal(ctx context.Context, req dto.CreateGoalRequest) (*domain.Goal, error) {
	if err := accounting.ValidateAmount(req.TargetAmount); err != nil {
		return nil, err
	}

	goal := domain.Goal{
		ID:            uuid.NewString(),
		Title:         req.Title,
		Category:      req.Category,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: decimal.Zero,
		Deadline:      req.Deadline,
		Image:         req.Image,
		CreatedAt:     domain.NewFlexTime(time.Now()),
	}

	goals, err := s.goalRepo.LoadGoals(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load goals for creation")
		return nil, err
	}
	goals = append(goals, goal)

	if err := s.goalRepo.SaveGoals(ctx, goals); err != nil {
		s.LogError(ctx, err, "Failed to save goals", slog.String("goal_id", goal.ID))
		return nil, err
	}

	s.LogInfo(ctx, "Goal created", slog.String("goal_id", goal.ID), slog.String("title", goal.Title))
	return &goal, nil
}

func (s *goalService) UpdateGoal(ctx context.Context, goalID string, req dto.UpdateGoalRequest) (*domain.Goal, error) {
	goals, err := s.goalRepo.LoadGoals(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load goals for update")
		return nil, err
	}

	idx := indexOfGoal(goals, goalID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: goal %q", apperrors.ErrNotFound, goalID)
	}
	goal := goals[idx]

	if req.Title != nil {
		if *req.Title == "" {
			return nil, fmt.Errorf("%w: goal title must not be empty", apperrors.ErrValidation)
		}
		goal.Title = *req.Title
	}
	if req.Category != nil {
		goal.Category = *req.Category
	}
	if req.TargetAmount != nil {
		if err := accounting.ValidateAmount(*req.TargetAmount); err != nil {
			return nil, err
		}
		goal.TargetAmount = *req.TargetAmount
	}
	if req.CurrentAmount != nil {
		// Direct edits may lower the saved amount; a goal can be
		// un-achieved this way. Negative savings make no sense though.
		if req.CurrentAmount.IsNegative() {
			return nil, fmt.Errorf("%w: current amount must not be negative", apperrors.ErrInvalidAmount)
		}
		goal.CurrentAmount = *req.CurrentAmount
	}
	if req.Deadline != nil {
		goal.Deadline = req.Deadline
	}
	if req.Image != nil {
		goal.Image = *req.Image
	}

	goals[idx] = goal
	if err := s.goalRepo.SaveGoals(ctx, goals); err != nil {
		s.LogError(ctx, err, "Failed to save goals", slog.String("goal_id", goalID))
		return nil, err
	}

	s.LogInfo(ctx, "Goal updated", slog.String("goal_id", goalID))
	return &goal, nil
}

func (s *goalService) DeleteGoal(ctx context.Context, goalID string) error {
	goals, err := s.goalRepo.LoadGoals(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load goals for deletion")
		return err
	}

	idx := indexOfGoal(goals, goalID)
	if idx < 0 {
		return fmt.Errorf("%w: goal %q", apperrors.ErrNotFound, goalID)
	}

	goals = append(goals[:idx], goals[idx+1:]...)
	if err := s.goalRepo.SaveGoals(ctx, goals); err != nil {
		s.LogError(ctx, err, "Failed to save goals", slog.String("goal_id", goalID))
		return err
	}

	s.LogInfo(ctx, "Goal deleted", slog.String("goal_id", goalID))
	return nil
}

// AddToSavings adds to the goal's saved amount, saturating at the target.
func (s *goalService) AddToSavings(ctx context.Context, goalID string, req dto.AddToSavingsRequest) (*domain.Goal, error) {
	if err := accounting.ValidateAmount(req.Amount); err != nil {
		return nil, err
	}

	goals, err := s.goalRepo.LoadGoals(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load goals for savings add")
		return nil, err
	}

	idx := indexOfGoal(goals, goalID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: goal %q", apperrors.ErrNotFound, goalID)
	}

	goals[idx] = goalmath.AddToSavings(goals[idx], req.Amount)
	if err := s.goalRepo.SaveGoals(ctx, goals); err != nil {
		s.LogError(ctx, err, "Failed to save goals", slog.String("goal_id", goalID))
		return nil, err
	}

	goal := goals[idx]
	s.LogInfo(ctx, "Savings added to goal",
		slog.String("goal_id", goalID),
		slog.String("current_amount", goal.CurrentAmount.String()),
		slog.Bool("achieved", goal.Achieved()))
	return &goal, nil
}

func (s *goalService) GetGoalByID(ctx context.Context, goalID string) (*domain.Goal, error) {
	goals, err := s.goalRepo.LoadGoals(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load goals")
		return nil, err
	}

	idx := indexOfGoal(goals, goalID)
	if idx < 0 {
		return nil, fmt.Errorf("%w: goal %q", apperrors.ErrNotFound, goalID)
	}
	goal := goals[idx]
	return &goal, nil
}

func (s *goalService) ListGoals(ctx context.Context) ([]domain.Goal, error) {
	goals, err := s.goalRepo.LoadGoals(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load goals")
		return nil, err
	}
	return goals, nil
}

// GetGoalProgress derives the presentation values for one goal. Nothing is
// persisted.
func (s *goalService) GetGoalProgress(ctx context.Context, goalID string) (*dto.GoalProgressResponse, error) {
	goal, err := s.GetGoalByID(ctx, goalID)
	if err != nil {
		return nil, err
	}

	today := time.Now()
	ratio := goalmath.Progress(*goal)

	progress := &dto.GoalProgressResponse{
		GoalID:  goalID,
		Ratio:   ratio,
		Percent: ratio * 100,
		Status:  goalmath.StatusClass(*goal, today),
	}

	if days, ok := goalmath.DaysUntilDeadline(*goal, today); ok {
		progress.DaysUntilDeadline = &days
	}
	if rate, ok := goalmath.DailyTargetNeeded(*goal, today); ok {
		progress.DailyTarget = &rate
	}
	progress.ProjectedDate = goalmath.ProjectedDate(*goal, today)

	return progress, nil
}

func indexOfGoal(goals []domain.Goal, goalID string) int {
	for i := range goals {
		if goals[i].ID == goalID {
			return i
		}
	}
	return -1
}
