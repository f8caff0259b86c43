package dto

import (
	"time"

	"github.com/akerley/pocketledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Amount must be positive; the sign is carried by Type.
type CreateTransactionRequest struct {
	WalletID    string                 `json:"walletId" binding:"required"`
	Type        domain.TransactionType `json:"type" binding:"required,oneof=income expense"`
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	Category    string                 `json:"category" binding:"required"`
	Description string                 `json:"description"`
	// Date is user-editable and independent of creation time; defaults to
	// now. Accepts any of the persisted date encodings.
	Date *domain.FlexTime `json:"date"`
}

// UpdateTransactionRequest defines the fields that may change on a
// transaction. Changing WalletID moves it between wallets; the reversal
// applies to the old wallet and the creation to the new one.
type UpdateTransactionRequest struct {
	WalletID    *string                 `json:"walletId"`
	Type        *domain.TransactionType `json:"type"`
	Amount      *decimal.Decimal        `json:"amount"`
	Category    *string                 `json:"category"`
	Description *string                 `json:"description"`
	Date        *domain.FlexTime        `json:"date"`
}

// TransactionResponse mirrors domain.Transaction for API output. Date is
// always serialized as ISO-8601 UTC regardless of the persisted encoding.
type TransactionResponse struct {
	ID          string                 `json:"id"`
	WalletID    string                 `json:"walletId"`
	Type        domain.TransactionType `json:"type"`
	Amount      decimal.Decimal        `json:"amount"`
	Category    string                 `json:"category"`
	Description string                 `json:"description,omitempty"`
	Date        time.Time              `json:"date"`
}

// ToTransactionResponse converts a domain.Transaction to its API
// representation.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:          t.ID,
		WalletID:    t.WalletID,
		Type:        t.Type,
		Amount:      t.Amount,
		Category:    t.Category,
		Description: t.Description,
		Date:        t.Date.UTC(),
	}
}

// ToListTransactionResponse converts a slice of transactions.
func ToListTransactionResponse(transactions []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(transactions))
	for i := range transactions {
		res[i] = ToTransactionResponse(&transactions[i])
	}
	return res
}

// ListTransactionsParams defines query parameters for listing transactions.
type ListTransactionsParams struct {
	WalletID string `form:"walletId"`
}
