package blobstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/akerley/pocketledger/internal/apperrors"
	"github.com/akerley/pocketledger/internal/core/domain"
	portsrepo "github.com/akerley/pocketledger/internal/core/ports/repositories"
	"github.com/akerley/pocketledger/internal/core/ports/store"
)

// SettingsRepository persists the user profile (JSON) and the selected
// wallet pointer (a plain string record, not JSON, for compatibility with
// the original persisted format).
type SettingsRepository struct {
	store store.Store
}

var _ portsrepo.SettingsRepository = (*SettingsRepository)(nil)

func NewSettingsRepository(s store.Store) *SettingsRepository {
	return &SettingsRepository{store: s}
}

func (r *SettingsRepository) LoadProfile(ctx context.Context) (domain.Profile, error) {
	var profile domain.Profile

	raw, ok, err := r.store.Get(ctx, store.KeyUser)
	if err != nil {
		return profile, fmt.Errorf("%w: reading %q: %v", apperrors.ErrStoreUnavailable, store.KeyUser, err)
	}
	if !ok || raw == "" {
		return profile, nil
	}

	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		slog.WarnContext(ctx, "Malformed user profile, treating as empty",
			slog.String("key", store.KeyUser), slog.String("error", err.Error()))
		return domain.Profile{}, nil
	}
	return profile, nil
}

func (r *SettingsRepository) SaveProfile(ctx context.Context, profile domain.Profile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", store.KeyUser, err)
	}
	if err := r.store.Set(ctx, store.KeyUser, string(data)); err != nil {
		return fmt.Errorf("%w: writing %q: %v", apperrors.ErrStoreUnavailable, store.KeyUser, err)
	}
	return nil
}

func (r *SettingsRepository) LoadSelectedWalletID(ctx context.Context) (string, error) {
	raw, ok, err := r.store.Get(ctx, store.KeySelectedWallet)
	if err != nil {
		return "", fmt.Errorf("%w: reading %q: %v", apperrors.ErrStoreUnavailable, store.KeySelectedWallet, err)
	}
	if !ok {
		return "", nil
	}
	return raw, nil
}

func (r *SettingsRepository) SaveSelectedWalletID(ctx context.Context, walletID string) error {
	if err := r.store.Set(ctx, store.KeySelectedWallet, walletID); err != nil {
		return fmt.Errorf("%w: writing %q: %v", apperrors.ErrStoreUnavailable, store.KeySelectedWallet, err)
	}
	return nil
}

func (r *SettingsRepository) ClearSelectedWalletID(ctx context.Context) error {
	if err := r.store.Remove(ctx, store.KeySelectedWallet); err != nil {
		return fmt.Errorf("%w: removing %q: %v", apperrors.ErrStoreUnavailable, store.KeySelectedWallet, err)
	}
	return nil
}
