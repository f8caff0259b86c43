package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/akerley/pocketledger/internal/apperrors"
	"github.com/akerley/pocketledger/internal/core/domain"
	portsrepo "github.com/akerley/pocketledger/internal/core/ports/repositories"
	portssvc "github.com/akerley/pocketledger/internal/core/ports/services"
	"github.com/akerley/pocketledger/internal/dto"
	"github.com/akerley/pocketledger/internal/utils/accounting"
	"github.com/google/uuid"
)

// transactionService implements the TransactionSvcFacade interface. Every
// mutation loads the current snapshot, reconciles the owning wallet(s)
// through the pure accounting functions, and persists both collections as
// one logical write. There is no path that writes history without balances
// or balances without history.
type transactionService struct {
	BaseService
	ledgerRepo portsrepo.LedgerRepositoryFacade
}

// NewTransactionService creates a new transaction service.
func NewTransactionService(ledgerRepo portsrepo.LedgerRepositoryFacade) portssvc.TransactionSvcFacade {
	return &transactionService{ledgerRepo: ledgerRepo}
}

var _ portssvc.TransactionSvcFacade = (*transactionService)(nil)

func (s *transactionService) CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	logger := s.GetLogger(ctx)

	if err := accounting.ValidateAmount(req.Amount); err != nil {
		return nil, err
	}
	if !req.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, req.Type)
	}
	if !domain.IsValidCategory(req.Type, req.Category) {
		return nil, fmt.Errorf("%w: unknown %s category %q", apperrors.ErrValidation, req.Type, req.Category)
	}

	ledger, err := s.ledgerRepo.LoadLedger(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger for transaction creation")
		return nil, err
	}

	wallet := ledger.WalletByID(req.WalletID)
	if wallet == nil {
		return nil, fmt.Errorf("%w: wallet %q", apperrors.ErrInvalidReference, req.WalletID)
	}

	now := time.Now()
	date := domain.NewFlexTime(now)
	if req.Date != nil {
		date = *req.Date
	}

	tx := domain.Transaction{
		ID:          uuid.NewString(),
		WalletID:    req.WalletID,
		Type:        req.Type,
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        date,
	}

	*wallet = accounting.ApplyCreate(*wallet, tx)
	wallet.Updated = now
	ledger.Transactions = append(ledger.Transactions, tx)

	if err := s.ledgerRepo.SaveLedger(ctx, ledger); err != nil {
		s.LogError(ctx, err, "Failed to persist ledger", slog.String("transaction_id", tx.ID))
		return nil, err
	}

	logger.Info("Transaction created",
		slog.String("transaction_id", tx.ID),
		slog.String("wallet_id", tx.WalletID),
		slog.String("type", string(tx.Type)))
	return &tx, nil
}

func (s *transactionService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	ledger, err := s.ledgerRepo.LoadLedger(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger for transaction update")
		return nil, err
	}

	idx, old := ledger.TransactionByID(transactionID)
	if old == nil {
		return nil, fmt.Errorf("%w: transaction %q", apperrors.ErrNotFound, transactionID)
	}

	updated := *old
	if req.WalletID != nil {
		updated.WalletID = *req.WalletID
	}
	if req.Type != nil {
		updated.Type = *req.Type
	}
	if req.Amount != nil {
		updated.Amount = *req.Amount
	}
	if req.Category != nil {
		updated.Category = *req.Category
	}
	if req.Description != nil {
		updated.Description = *req.Description
	}
	if req.Date != nil {
		updated.Date = *req.Date
	}

	if err := accounting.ValidateAmount(updated.Amount); err != nil {
		return nil, err
	}
	if !updated.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown transaction type %q", apperrors.ErrValidation, updated.Type)
	}
	if !domain.IsValidCategory(updated.Type, updated.Category) {
		return nil, fmt.Errorf("%w: unknown %s category %q", apperrors.ErrValidation, updated.Type, updated.Category)
	}

	now := time.Now()
	if updated.WalletID == old.WalletID {
		wallet := ledger.WalletByID(old.WalletID)
		if wallet == nil {
			return nil, fmt.Errorf("%w: wallet %q", apperrors.ErrInvalidReference, old.WalletID)
		}
		// One combined delta; no intermediate balance is ever persisted.
		*wallet = accounting.ApplyEdit(*wallet, *old, updated)
		wallet.Updated = now
	} else {
		// Moving between wallets: reverse on the old wallet, apply on
		// the new one.
		newWallet := ledger.WalletByID(updated.WalletID)
		if newWallet == nil {
			return nil, fmt.Errorf("%w: wallet %q", apperrors.ErrInvalidReference, updated.WalletID)
		}
		if oldWallet := ledger.WalletByID(old.WalletID); oldWallet != nil {
			*oldWallet = accounting.ApplyDelete(*oldWallet, *old)
			oldWallet.Updated = now
		}
		*newWallet = accounting.ApplyCreate(*newWallet, updated)
		newWallet.Updated = now
	}

	// Replace in place to preserve collection order.
	ledger.Transactions[idx] = updated

	if err := s.ledgerRepo.SaveLedger(ctx, ledger); err != nil {
		s.LogError(ctx, err, "Failed to persist ledger", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction updated", slog.String("transaction_id", transactionID))
	return &updated, nil
}

func (s *transactionService) DeleteTransaction(ctx context.Context, transactionID string) error {
	ledger, err := s.ledgerRepo.LoadLedger(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load ledger for transaction deletion")
		return err
	}

	idx, tx := ledger.TransactionByID(transactionID)
	if tx == nil {
		// Absent id is a no-op: deleting twice equals deleting once.
		s.GetLogger(ctx).Debug("Delete of absent transaction ignored", slog.String("transaction_id", transactionID))
		return nil
	}

	if wallet := ledger.WalletByID(tx.WalletID); wallet != nil {
		*wallet = accounting.ApplyDelete(*wallet, *tx)
		wallet.Updated = time.Now()
	} else {
		s.LogWarn(ctx, "Deleting transaction whose wallet no longer exists",
			slog.String("transaction_id", transactionID),
			slog.String("wallet_id", tx.WalletID))
	}

	ledger.Transactions = append(ledger.Transactions[:idx], ledger.Transactions[idx+1:]...)

	if err := s.ledgerRepo.SaveLedger(ctx, ledger); err != nil {
		s.LogError(ctx, err, "Failed to persist ledger", slog.String("transaction_id", transactionID))
		return err
	}

	s.LogInfo(ctx, "Transaction deleted", slog.String("transaction_id", transactionID))
	return nil
}

func (s *transactionService) GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	transactions, err := s.ledgerRepo.LoadTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions")
		return nil, err
	}

	for i := range transactions {
		if transactions[i].ID == transactionID {
			cp := transactions[i]
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("%w: transaction %q", apperrors.ErrNotFound, transactionID)
}

func (s *transactionService) ListTransactions(ctx context.Context, walletID string) ([]domain.Transaction, error) {
	transactions, err := s.ledgerRepo.LoadTransactions(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions")
		return nil, err
	}
	if walletID == "" {
		return transactions, nil
	}

	filtered := make([]domain.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if tx.WalletID == walletID {
			filtered = append(filtered, tx)
		}
	}
	return filtered, nil
}
