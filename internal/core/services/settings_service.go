package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/akerley/pocketledger/internal/apperrors"
	"github.com/akerley/pocketledger/internal/core/domain"
	portsrepo "github.com/akerley/pocketledger/internal/core/ports/repositories"
	portssvc "github.com/akerley/pocketledger/internal/core/ports/services"
	"github.com/akerley/pocketledger/internal/dto"
)

// settingsService implements the SettingsSvcFacade interface.
type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepository
	ledgerRepo   portsrepo.LedgerReader
}

// NewSettingsService creates a new settings service.
func NewSettingsService(settingsRepo portsrepo.SettingsRepository, ledgerRepo portsrepo.LedgerReader) portssvc.SettingsSvcFacade {
	return &settingsService{settingsRepo: settingsRepo, ledgerRepo: ledgerRepo}
}

var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetProfile(ctx context.Context) (domain.Profile, error) {
	profile, err := s.settingsRepo.LoadProfile(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load profile")
		return domain.Profile{}, err
	}
	return profile, nil
}

func (s *settingsService) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (domain.Profile, error) {
	profile, err := s.settingsRepo.LoadProfile(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load profile for update")
		return domain.Profile{}, err
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.DefaultCurrency != nil {
		currency := domain.Currency(*req.DefaultCurrency)
		if !currency.IsValid() {
			return domain.Profile{}, fmt.Errorf("%w: unsupported currency %q", apperrors.ErrValidation, *req.DefaultCurrency)
		}
		profile.DefaultCurrency = currency
	}

	if err := s.settingsRepo.SaveProfile(ctx, profile); err != nil {
		s.LogError(ctx, err, "Failed to save profile")
		return domain.Profile{}, err
	}

	s.LogInfo(ctx, "Profile updated")
	return profile, nil
}

// GetSelectedWalletID resolves the persisted pointer against the current
// wallet collection. A stale pointer is cleared and reported as unset.
func (s *settingsService) GetSelectedWalletID(ctx context.Context) (string, error) {
	walletID, err := s.settingsRepo.LoadSelectedWalletID(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load selected wallet id")
		return "", err
	}
	if walletID == "" {
		return "", nil
	}

	wallets, err := s.ledgerRepo.LoadWallets(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load wallets for selected wallet check")
		return "", err
	}
	for _, w := range wallets {
		if w.ID == walletID {
			return walletID, nil
		}
	}

	s.LogWarn(ctx, "Selected wallet no longer exists, clearing", slog.String("wallet_id", walletID))
	if err := s.settingsRepo.ClearSelectedWalletID(ctx); err != nil {
		s.LogError(ctx, err, "Failed to clear stale selected wallet id")
	}
	return "", nil
}

func (s *settingsService) SetSelectedWallet(ctx context.Context, walletID string) error {
	wallets, err := s.ledgerRepo.LoadWallets(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load wallets for selection")
		return err
	}

	found := false
	for _, w := range wallets {
		if w.ID == walletID {
			found = true
			break
		}
	}
	if !found {
		return fmt.Errorf("%w: wallet %q", apperrors.ErrNotFound, walletID)
	}

	if err := s.settingsRepo.SaveSelectedWalletID(ctx, walletID); err != nil {
		s.LogError(ctx, err, "Failed to save selected wallet id")
		return err
	}

	s.LogInfo(ctx, "Selected wallet changed", slog.String("wallet_id", walletID))
	return nil
}
