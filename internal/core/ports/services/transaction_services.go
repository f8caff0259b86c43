package services

import (
	"context"

	"github.com/akerley/pocketledger/internal/core/domain"
	"github.com/akerley/pocketledger/internal/dto"
)

// TransactionReaderSvc defines read operations over transactions.
type TransactionReaderSvc interface {
	// GetTransactionByID retrieves a specific transaction.
	GetTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error)

	// ListTransactions retrieves the transaction collection, optionally
	// filtered to one wallet. Pass "" for walletID to list all.
	ListTransactions(ctx context.Context, walletID string) ([]domain.Transaction, error)
}

// TransactionWriterSvc defines the mutations of the ledger. Every mutation
// reconciles the owning wallet's balance and persists both collections as
// one logical write.
type TransactionWriterSvc interface {
	// CreateTransaction records a new transaction against an existing
	// wallet.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)

	// UpdateTransaction edits a transaction in place, reversing its old
	// effect before applying the new one. Changing the wallet reference
	// moves the transaction between wallets.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)

	// DeleteTransaction removes a transaction and reverses its effect on
	// the owning wallet. Deleting an absent id is a no-op, not an error.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// TransactionSvcFacade combines all transaction-related service interfaces.
type TransactionSvcFacade interface {
	TransactionReaderSvc
	TransactionWriterSvc
}
