package repositories

import (
	"context"

	"github.com/akerley/pocketledger/internal/core/domain"
)

// LedgerReader defines read operations over the wallet and transaction
// collections.
type LedgerReader interface {
	// LoadWallets reads the full wallet collection. It returns an empty
	// slice (never nil) when no record exists.
	LoadWallets(ctx context.Context) ([]domain.Wallet, error)

	// LoadTransactions reads the full transaction collection. It returns
	// an empty slice (never nil) when no record exists.
	LoadTransactions(ctx context.Context) ([]domain.Transaction, error)

	// LoadLedger reads both collections as one snapshot and reconciles
	// stored wallet balances against transaction history, self-healing
	// any divergence before returning.
	LoadLedger(ctx context.Context) (*domain.Ledger, error)
}

// LedgerWriter defines write operations over the wallet and transaction
// collections. All writes are whole-collection replacements.
type LedgerWriter interface {
	// SaveWallets replaces the wallet collection.
	SaveWallets(ctx context.Context, wallets []domain.Wallet) error

	// SaveTransactions replaces the transaction collection.
	SaveTransactions(ctx context.Context, transactions []domain.Transaction) error

	// SaveLedger persists both collections as one logical unit,
	// transactions first so history is never behind balances after an
	// interrupted write.
	SaveLedger(ctx context.Context, ledger *domain.Ledger) error
}

// LedgerRepositoryFacade combines all ledger repository interfaces.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}
