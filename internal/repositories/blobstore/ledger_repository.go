// Package blobstore implements the repository ports on the string-keyed blob
// store. Collections are persisted as whole JSON arrays and replaced on every
// write; there are no patch semantics at this scale.
package blobstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/akerley/pocketledger/internal/apperrors"
	"github.com/akerley/pocketledger/internal/core/domain"
	portsrepo "github.com/akerley/pocketledger/internal/core/ports/repositories"
	"github.com/akerley/pocketledger/internal/core/ports/store"
	"github.com/akerley/pocketledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// balanceEpsilon bounds the tolerated divergence between a stored wallet
// balance and the balance recomputed from history. Legacy records written by
// float arithmetic can be off by hair-widths; anything larger is healed.
var balanceEpsilon = decimal.New(1, -9)

// LedgerRepository persists the wallet and transaction collections. It is
// the sole writer of both.
type LedgerRepository struct {
	store store.Store
}

var _ portsrepo.LedgerRepositoryFacade = (*LedgerRepository)(nil)

func NewLedgerRepository(s store.Store) *LedgerRepository {
	return &LedgerRepository{store: s}
}

// walletRecord is the persisted wallet shape. InitialAmount is a pointer so
// legacy records written before baselines existed can be told apart from a
// zero baseline and have one derived on load.
type walletRecord struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Currency      domain.Currency  `json:"currency"`
	Amount        decimal.Decimal  `json:"amount"`
	InitialAmount *decimal.Decimal `json:"initialAmount"`
	Image         string           `json:"image,omitempty"`
	Created       time.Time        `json:"created"`
	Updated       time.Time        `json:"updated"`
}

func (rec walletRecord) toDomain() domain.Wallet {
	w := domain.Wallet{
		ID:       rec.ID,
		Name:     rec.Name,
		Currency: rec.Currency,
		Amount:   rec.Amount,
		Image:    rec.Image,
		Created:  rec.Created,
		Updated:  rec.Updated,
	}
	if rec.InitialAmount != nil {
		w.InitialAmount = *rec.InitialAmount
	}
	return w
}

// loadRaw reads one record. A store failure maps to ErrStoreUnavailable;
// absence is (value, false, nil).
func (r *LedgerRepository) loadRaw(ctx context.Context, key string) (string, bool, error) {
	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		return "", false, fmt.Errorf("%w: reading %q: %v", apperrors.ErrStoreUnavailable, key, err)
	}
	return raw, ok, nil
}

func (r *LedgerRepository) loadWalletRecords(ctx context.Context) ([]walletRecord, error) {
	raw, ok, err := r.loadRaw(ctx, store.KeyWallets)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return []walletRecord{}, nil
	}

	var records []walletRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		// Malformed records are treated as an empty collection, never a
		// crash. The next save replaces them wholesale.
		slog.WarnContext(ctx, "Malformed wallet collection, treating as empty",
			slog.String("key", store.KeyWallets), slog.String("error", err.Error()))
		return []walletRecord{}, nil
	}
	return records, nil
}

// LoadWallets reads the wallet collection without touching transaction
// history. Legacy records missing a baseline get the stored balance as a
// best-effort baseline; LoadLedger derives and persists the exact one.
func (r *LedgerRepository) LoadWallets(ctx context.Context) ([]domain.Wallet, error) {
	records, err := r.loadWalletRecords(ctx)
	if err != nil {
		return nil, err
	}

	wallets := make([]domain.Wallet, len(records))
	for i, rec := range records {
		w := rec.toDomain()
		if rec.InitialAmount == nil {
			w.InitialAmount = rec.Amount
		}
		wallets[i] = w
	}
	return wallets, nil
}

// LoadTransactions reads the transaction collection. Missing or malformed
// records yield an empty slice, never nil.
func (r *LedgerRepository) LoadTransactions(ctx context.Context) ([]domain.Transaction, error) {
	raw, ok, err := r.loadRaw(ctx, store.KeyTransactions)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return []domain.Transaction{}, nil
	}

	var transactions []domain.Transaction
	if err := json.Unmarshal([]byte(raw), &transactions); err != nil {
		slog.WarnContext(ctx, "Malformed transaction collection, treating as empty",
			slog.String("key", store.KeyTransactions), slog.String("error", err.Error()))
		return []domain.Transaction{}, nil
	}
	return transactions, nil
}

// LoadLedger reads both collections and reconciles stored balances against
// transaction history, which is ground truth. Divergence beyond the epsilon
// is healed in memory and persisted back, so an interrupted two-write
// mutation can never leave balances permanently out of step with history.
func (r *LedgerRepository) LoadLedger(ctx context.Context) (*domain.Ledger, error) {
	records, err := r.loadWalletRecords(ctx)
	if err != nil {
		return nil, err
	}
	transactions, err := r.LoadTransactions(ctx)
	if err != nil {
		return nil, err
	}

	wallets := make([]domain.Wallet, len(records))
	healed := false
	for i, rec := range records {
		w := rec.toDomain()
		net := accounting.Net(transactions, w.ID)

		if rec.InitialAmount == nil {
			// Legacy record: fix the baseline so the current balance
			// satisfies the invariant, then persist it.
			w.InitialAmount = w.Amount.Sub(net)
			healed = true
		} else {
			recomputed := w.InitialAmount.Add(net)
			if recomputed.Sub(w.Amount).Abs().GreaterThan(balanceEpsilon) {
				slog.WarnContext(ctx, "Wallet balance diverged from transaction history, self-healing",
					slog.String("wallet_id", w.ID),
					slog.String("stored", w.Amount.String()),
					slog.String("recomputed", recomputed.String()),
					slog.String("error", apperrors.ErrInconsistentState.Error()))
				w.Amount = recomputed
				healed = true
			}
		}
		wallets[i] = w
	}

	if healed {
		if err := r.SaveWallets(ctx, wallets); err != nil {
			return nil, err
		}
	}

	return &domain.Ledger{Wallets: wallets, Transactions: transactions}, nil
}

// SaveWallets replaces the wallet collection.
func (r *LedgerRepository) SaveWallets(ctx context.Context, wallets []domain.Wallet) error {
	return r.saveJSON(ctx, store.KeyWallets, wallets)
}

// SaveTransactions replaces the transaction collection.
func (r *LedgerRepository) SaveTransactions(ctx context.Context, transactions []domain.Transaction) error {
	return r.saveJSON(ctx, store.KeyTransactions, transactions)
}

// SaveLedger persists both collections, transactions first. If the process
// dies between the writes, history is already durable and the stale balances
// are recomputed from it on the next load.
func (r *LedgerRepository) SaveLedger(ctx context.Context, ledger *domain.Ledger) error {
	if err := r.SaveTransactions(ctx, ledger.Transactions); err != nil {
		return err
	}
	return r.SaveWallets(ctx, ledger.Wallets)
}

func (r *LedgerRepository) saveJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", key, err)
	}
	if err := r.store.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("%w: writing %q: %v", apperrors.ErrStoreUnavailable, key, err)
	}
	return nil
}
