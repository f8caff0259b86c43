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

// settingsHandler handles HTTP requests for the profile and the
// selected-wallet pointer.
type settingsHandler struct {
	settingsService portssvc.SettingsSvcFacade
}

// newSettingsHandler creates a new settingsHandler.
func newSettingsHandler(ss portssvc.SettingsSvcFacade) *settingsHandler {
	return &settingsHandler{
		settingsService: ss,
	}
}

// registerSettingsRoutes registers routes related to user settings.
func registerSettingsRoutes(rg *gin.RouterGroup, settingsService portssvc.SettingsSvcFacade) {
	h := newSettingsHandler(settingsService)

	settings := rg.Group("/settings")
	{
		settings.GET("/profile", h.getProfile)
		settings.PUT("/profile", h.updateProfile)
		settings.GET("/selected-wallet", h.getSelectedWallet)
		settings.PUT("/selected-wallet", h.setSelectedWallet)
	}
}

func (h *settingsHandler) getProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	profile, err := h.settingsService.GetProfile(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrStoreUnavailable) {
			logger.Error("Store unavailable loading profile", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage is unavailable"})
		} else {
			logger.Error("Failed to load profile", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

func (h *settingsHandler) updateProfile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateProfile", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	profile, err := h.settingsService.UpdateProfile(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Validation error updating profile", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrStoreUnavailable) {
			logger.Error("Store unavailable updating profile", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage is unavailable"})
		} else {
			logger.Error("Failed to update profile", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		}
		return
	}

	logger.Info("Profile updated successfully")
	c.JSON(http.StatusOK, dto.ToProfileResponse(profile))
}

func (h *settingsHandler) getSelectedWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	walletID, err := h.settingsService.GetSelectedWalletID(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrStoreUnavailable) {
			logger.Error("Store unavailable loading selected wallet", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage is unavailable"})
		} else {
			logger.Error("Failed to load selected wallet", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load selected wallet"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.SelectedWalletResponse{WalletID: walletID})
}

func (h *settingsHandler) setSelectedWallet(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SetSelectedWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for SetSelectedWallet", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.settingsService.SetSelectedWallet(c.Request.Context(), req.WalletID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Selected wallet does not exist", slog.String("wallet_id", req.WalletID))
			c.JSON(http.StatusNotFound, gin.H{"error": "Wallet not found"})
		} else if errors.Is(err, apperrors.ErrStoreUnavailable) {
			logger.Error("Store unavailable saving selected wallet", slog.String("error", err.Error()))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Storage is unavailable"})
		} else {
			logger.Error("Failed to save selected wallet", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save selected wallet"})
		}
		return
	}

	logger.Info("Selected wallet saved", slog.String("wallet_id", req.WalletID))
	c.JSON(http.StatusOK, dto.SelectedWalletResponse{WalletID: req.WalletID})
}
