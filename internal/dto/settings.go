package dto

import "github.com/akerley/pocketledger/internal/core/domain"

// ProfileResponse mirrors domain.Profile for API output.
type ProfileResponse struct {
	Name            string          `json:"name,omitempty"`
	DefaultCurrency domain.Currency `json:"defaultCurrency,omitempty"`
}

// ToProfileResponse converts a domain.Profile to its API representation.
func ToProfileResponse(p domain.Profile) ProfileResponse {
	return ProfileResponse{
		Name:            p.Name,
		DefaultCurrency: p.DefaultCurrency,
	}
}

// UpdateProfileRequest defines the settable profile fields.
type UpdateProfileRequest struct {
	Name            *string `json:"name"`
	DefaultCurrency *string `json:"defaultCurrency"`
}

// SelectedWalletResponse carries the dashboard's selected-wallet pointer.
// WalletID is empty when none is set or the persisted id no longer resolves.
type SelectedWalletResponse struct {
	WalletID string `json:"walletId"`
}

// SetSelectedWalletRequest points the dashboard at a wallet.
type SetSelectedWalletRequest struct {
	WalletID string `json:"walletId" binding:"required"`
}
