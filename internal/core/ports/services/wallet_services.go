package services

import (
	"context"

	"github.com/akerley/pocketledger/internal/core/domain"
	"github.com/akerley/pocketledger/internal/dto"
)

// WalletReaderSvc defines read operations over wallets.
type WalletReaderSvc interface {
	// GetWalletByID retrieves a specific wallet by its unique identifier.
	GetWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error)

	// ListWallets retrieves the full wallet collection.
	ListWallets(ctx context.Context) ([]domain.Wallet, error)

	// GetWalletSummary derives the presentation values for one wallet:
	// totals by type, last transaction, per-category usage, and trend.
	GetWalletSummary(ctx context.Context, walletID string) (*dto.WalletSummaryResponse, error)
}

// WalletWriterSvc defines write operations over wallets. Wallet deletion is
// deliberately absent; wallets are never removed.
type WalletWriterSvc interface {
	// CreateWallet persists a new wallet. When the request carries no
	// currency, the profile's default currency is used.
	CreateWallet(ctx context.Context, req dto.CreateWalletRequest) (*domain.Wallet, error)

	// UpdateWallet changes a wallet's name, currency, or image. Balance
	// moves only through transactions.
	UpdateWallet(ctx context.Context, walletID string, req dto.UpdateWalletRequest) (*domain.Wallet, error)
}

// WalletSvcFacade combines all wallet-related service interfaces.
type WalletSvcFacade interface {
	WalletReaderSvc
	WalletWriterSvc
}
