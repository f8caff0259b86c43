package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/akerley/pocketledger/internal/apperrors"
	portssvc "github.com/akerley/pocketledger/internal/core/ports/services"
	"github.com/akerley/pocketledger/internal/dto"
	"github.com/akerley/pocketledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// goalHandler handles HTTP requests related to savings goals.
type goalHandler struct {
	goalService portssvc.GoalSvcFacade
}

// newGoalHandler creates a new goalHandler.
func newGoalHandler(gs portssvc.GoalSvcFacade) *goalHandler {
	return &goalHandler{
		goalService: gs,
	}
}

// registerGoalRoutes registers routes related to savings goals.
func registerGoalRoutes(rg *gin.RouterGroup, goalService portssvc.GoalSvcFacade) {
	h := newGoalHandler(goalService)

	goals := rg.Group("/goals")
	{
		goals.POST("", h.createGoal)
		goals.GET("", h.listGoals)
		goals.GET("/:id", h.getGoalByID)
		goals.PUT("/:id", h.updateGoal)
		goals.DELETE("/:id", h.deleteGoal)
		goals.POST("/:id/savings", h.addToSavings)
		goals.GET("/:id/progress", h.getGoalProgress)
	}
}

func (h *goalHandler) createGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateGoal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	goal, err := h.goalService.CreateGoal(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrInvalidAmount) {
			logger.Warn("Validation error creating goal", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrStoreUnavailable) {
			logger.Error("Store unavailable creating goal", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage is unavailable"})
		} else {
			logger.Error("Failed to create goal in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create goal"})
		}
		return
	}

	logger.Info("Goal created successfully", slog.String("goal_id", goal.ID))
	c.JSON(http.StatusCreated, dto.ToGoalResponse(goal))
}

func (h *goalHandler) listGoals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	goals, err := h.goalService.ListGoals(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrStoreUnavailable) {
			logger.Error("Store unavailable listing goals", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage is unavailable"})
		} else {
			logger.Error("Failed to list goals", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list goals"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListGoalResponse(goals))
}

func (h *goalHandler) getGoalByID(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	goalID := c.Param("id")

	goal, err := h.goalService.GetGoalByID(c.Request.Context(), goalID)
	if err != nil {
		h.respondGoalError(c, logger, err, goalID, "retrieve")
		return
	}

	c.JSON(http.StatusOK, dto.ToGoalResponse(goal))
}

func (h *goalHandler) updateGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	goalID := c.Param("id")

	var req dto.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateGoal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	goal, err := h.goalService.UpdateGoal(c.Request.Context(), goalID, req)
	if err != nil {
		h.respondGoalError(c, logger, err, goalID, "update")
		return
	}

	logger.Info("Goal updated successfully", slog.String("goal_id", goalID))
	c.JSON(http.StatusOK, dto.ToGoalResponse(goal))
}

func (h *goalHandler) deleteGoal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	goalID := c.Param("id")

	if err := h.goalService.DeleteGoal(c.Request.Context(), goalID); err != nil {
		h.respondGoalError(c, logger, err, goalID, "delete")
		return
	}

	logger.Info("Goal deleted successfully", slog.String("goal_id", goalID))
	c.Status(http.StatusNoContent)
}

func (h *goalHandler) addToSavings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	goalID := c.Param("id")

	var req dto.AddToSavingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddToSavings", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	goal, err := h.goalService.AddToSavings(c.Request.Context(), goalID, req)
	if err != nil {
		h.respondGoalError(c, logger, err, goalID, "add savings to")
		return
	}

	logger.Info("Savings added to goal successfully",
		slog.String("goal_id", goalID),
		slog.Bool("achieved", goal.Achieved()))
	c.JSON(http.StatusOK, dto.ToGoalResponse(goal))
}

func (h *goalHandler) getGoalProgress(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	goalID := c.Param("id")

	progress, err := h.goalService.GetGoalProgress(c.Request.Context(), goalID)
	if err != nil {
		h.respondGoalError(c, logger, err, goalID, "derive progress for")
		return
	}

	c.JSON(http.StatusOK, progress)
}

// respondGoalError maps service errors shared by the goal routes onto HTTP
// responses.
func (h *goalHandler) respondGoalError(c *gin.Context, logger *slog.Logger, err error, goalID, action string) {
	if errors.Is(err, apperrors.ErrNotFound) {
		logger.Warn("Goal not found", slog.String("goal_id", goalID))
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
	} else if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrInvalidAmount) {
		logger.Warn("Validation error on goal", slog.String("goal_id", goalID), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	} else if errors.Is(err, apperrors.ErrStoreUnavailable) {
		logger.Error("Store unavailable", slog.String("goal_id", goalID), slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage is unavailable"})
	} else {
		logger.Error("Goal operation failed", slog.String("goal_id", goalID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action + " goal"})
	}
}
