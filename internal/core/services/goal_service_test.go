package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/akerley/pocketledger/internal/adapters/store/memory"
	"github.com/akerley/pocketledger/internal/apperrors"
	"github.com/akerley/pocketledger/internal/core/domain"
	portssvc "github.com/akerley/pocketledger/internal/core/ports/services"
	"github.com/akerley/pocketledger/internal/core/services"
	"github.com/akerley/pocketledger/internal/dto"
	"github.com/akerley/pocketledger/internal/repositories/blobstore"
	"github.com/akerley/pocketledger/internal/utils/goalmath"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type GoalServiceTestSuite struct {
	suite.Suite
	service portssvc.GoalSvcFacade
}

func (suite *GoalServiceTestSuite) SetupTest() {
	st := memory.New()
	suite.service = services.NewGoalService(blobstore.NewGoalRepository(st))
}

func (suite *GoalServiceTestSuite) createGoal(target string) *domain.Goal {
	goal, err := suite.service.CreateGoal(context.Background(), dto.CreateGoalRequest{
		Title:        "Vacation",
		Category:     "travel",
		TargetAmount: mustDec(suite.T(), target),
	})
	suite.Require().NoError(err)
	return goal
}

// --- Test Cases ---

func (suite *GoalServiceTestSuite) TestCreateGoal_StartsAtZero() {
	goal := suite.createGoal("1000")

	suite.NotEmpty(goal.ID)
	suite.True(goal.CurrentAmount.IsZero())
	suite.False(goal.Achieved())
}

func (suite *GoalServiceTestSuite) TestCreateGoal_RejectsNonPositiveTarget() {
	_, err := suite.service.CreateGoal(context.Background(), dto.CreateGoalRequest{
		Title:        "Broken",
		TargetAmount: mustDec(suite.T(), "0"),
	})
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
}

func (suite *GoalServiceTestSuite) TestAddToSavings_SaturatesAtTarget() {
	ctx := context.Background()
	goal := suite.createGoal("1000")

	updated, err := suite.service.AddToSavings(ctx, goal.ID, dto.AddToSavingsRequest{
		Amount: mustDec(suite.T(), "950"),
	})
	suite.Require().NoError(err)
	suite.True(updated.CurrentAmount.Equal(mustDec(suite.T(), "950")))
	suite.False(updated.Achieved())

	updated, err = suite.service.AddToSavings(ctx, goal.ID, dto.AddToSavingsRequest{
		Amount: mustDec(suite.T(), "100"),
	})
	suite.Require().NoError(err)
	suite.True(updated.CurrentAmount.Equal(mustDec(suite.T(), "1000")))
	suite.True(updated.Achieved())
}

func (suite *GoalServiceTestSuite) TestAddToSavings_UnknownGoal() {
	_, err := suite.service.AddToSavings(context.Background(), uuid.NewString(), dto.AddToSavingsRequest{
		Amount: mustDec(suite.T(), "10"),
	})
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *GoalServiceTestSuite) TestUpdateGoal_CanUnachieve() {
	ctx := context.Background()
	goal := suite.createGoal("500")

	_, err := suite.service.AddToSavings(ctx, goal.ID, dto.AddToSavingsRequest{
		Amount: mustDec(suite.T(), "500"),
	})
	suite.Require().NoError(err)

	lowered := mustDec(suite.T(), "200")
	updated, err := suite.service.UpdateGoal(ctx, goal.ID, dto.UpdateGoalRequest{
		CurrentAmount: &lowered,
	})
	suite.Require().NoError(err)
	suite.False(updated.Achieved())
	suite.True(updated.CurrentAmount.Equal(lowered))
}

func (suite *GoalServiceTestSuite) TestUpdateGoal_RejectsNegativeCurrentAmount() {
	goal := suite.createGoal("500")

	negative := mustDec(suite.T(), "-1")
	_, err := suite.service.UpdateGoal(context.Background(), goal.ID, dto.UpdateGoalRequest{
		CurrentAmount: &negative,
	})
	suite.ErrorIs(err, apperrors.ErrInvalidAmount)
}

func (suite *GoalServiceTestSuite) TestDeleteGoal() {
	ctx := context.Background()
	goal := suite.createGoal("500")

	suite.Require().NoError(suite.service.DeleteGoal(ctx, goal.ID))
	suite.ErrorIs(suite.service.DeleteGoal(ctx, goal.ID), apperrors.ErrNotFound)

	goals, err := suite.service.ListGoals(ctx)
	suite.Require().NoError(err)
	suite.Empty(goals)
}

func (suite *GoalServiceTestSuite) TestGetGoalProgress_NoDeadline() {
	goal := suite.createGoal("1000")

	progress, err := suite.service.GetGoalProgress(context.Background(), goal.ID)
	suite.Require().NoError(err)
	suite.Equal(goal.ID, progress.GoalID)
	suite.Equal(goalmath.StatusNoDeadline, progress.Status)
	suite.Nil(progress.DaysUntilDeadline)
	suite.Nil(progress.DailyTarget)
}

func (suite *GoalServiceTestSuite) TestGetGoalProgress_WithDeadline() {
	ctx := context.Background()
	goal := suite.createGoal("1000")

	deadline := domain.NewFlexTime(time.Now().AddDate(0, 0, 30))
	_, err := suite.service.UpdateGoal(ctx, goal.ID, dto.UpdateGoalRequest{
		Deadline: &deadline,
	})
	suite.Require().NoError(err)

	_, err = suite.service.AddToSavings(ctx, goal.ID, dto.AddToSavingsRequest{
		Amount: mustDec(suite.T(), "400"),
	})
	suite.Require().NoError(err)

	progress, err := suite.service.GetGoalProgress(ctx, goal.ID)
	suite.Require().NoError(err)
	suite.InDelta(0.4, progress.Ratio, 1e-9)
	suite.InDelta(40.0, progress.Percent, 1e-9)
	suite.Require().NotNil(progress.DaysUntilDeadline)
	suite.Require().NotNil(progress.DailyTarget)
	// 600 remaining over ~30 days: the daily target must stay positive.
	suite.True(progress.DailyTarget.IsPositive())
}

func TestGoalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GoalServiceTestSuite))
}
