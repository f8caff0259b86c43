package repositories

import (
	"context"

	"github.com/akerley/pocketledger/internal/core/domain"
)

// SettingsRepository persists the user profile and the selected-wallet
// pointer.
type SettingsRepository interface {
	// LoadProfile reads the user profile. A missing or malformed record
	// yields a zero-value profile.
	LoadProfile(ctx context.Context) (domain.Profile, error)

	// SaveProfile replaces the user profile.
	SaveProfile(ctx context.Context, profile domain.Profile) error

	// LoadSelectedWalletID returns the persisted selected wallet id, or
	// "" when none is set.
	LoadSelectedWalletID(ctx context.Context) (string, error)

	// SaveSelectedWalletID persists the selected wallet id.
	SaveSelectedWalletID(ctx context.Context, walletID string) error

	// ClearSelectedWalletID removes the selected wallet pointer.
	ClearSelectedWalletID(ctx context.Context) error
}
