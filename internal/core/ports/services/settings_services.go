package services

import (
	"context"

	"github.com/akerley/pocketledger/internal/core/domain"
	"github.com/akerley/pocketledger/internal/dto"
)

// SettingsSvcFacade manages the user profile and the selected-wallet pointer.
type SettingsSvcFacade interface {
	// GetProfile reads the user profile.
	GetProfile(ctx context.Context) (domain.Profile, error)

	// UpdateProfile changes profile fields, validating the default
	// currency against the supported set.
	UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest) (domain.Profile, error)

	// GetSelectedWalletID returns the persisted selected wallet id, or ""
	// when none is set or the id no longer resolves to a wallet.
	GetSelectedWalletID(ctx context.Context) (string, error)

	// SetSelectedWallet points the dashboard at an existing wallet.
	SetSelectedWallet(ctx context.Context, walletID string) error
}
