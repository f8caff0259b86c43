package dto

import (
	"time"

	"github.com/akerley/pocketledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateWalletRequest defines the data needed to create a new wallet.
type CreateWalletRequest struct {
	Name string `json:"name" binding:"required"`
	// Currency is optional; the profile's default currency is used when
	// omitted.
	Currency string `json:"currency"`
	// InitialAmount is the starting balance. Defaults to zero.
	InitialAmount *decimal.Decimal `json:"initialAmount"`
	Image         string           `json:"image"`
}

// UpdateWalletRequest defines the fields that may change on a wallet.
// Balance is not directly editable; it only moves through transactions.
// Pointers distinguish zero-value updates from fields not provided.
type UpdateWalletRequest struct {
	Name     *string `json:"name"`
	Currency *string `json:"currency"`
	Image    *string `json:"image"`
}

// WalletResponse mirrors domain.Wallet for API output.
type WalletResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Currency       domain.Currency `json:"currency"`
	CurrencySymbol string          `json:"currencySymbol"`
	Amount         decimal.Decimal `json:"amount"`
	InitialAmount  decimal.Decimal `json:"initialAmount"`
	Image          string          `json:"image,omitempty"`
	Created        time.Time       `json:"created"`
	Updated        time.Time       `json:"updated"`
}

// ToWalletResponse converts a domain.Wallet to its API representation.
func ToWalletResponse(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		ID:             w.ID,
		Name:           w.Name,
		Currency:       w.Currency,
		CurrencySymbol: w.Currency.Symbol(),
		Amount:         w.Amount,
		InitialAmount:  w.InitialAmount,
		Image:          w.Image,
		Created:        w.Created,
		Updated:        w.Updated,
	}
}

// ToListWalletResponse converts a slice of wallets.
func ToListWalletResponse(wallets []domain.Wallet) []WalletResponse {
	res := make([]WalletResponse, len(wallets))
	for i := range wallets {
		res[i] = ToWalletResponse(&wallets[i])
	}
	return res
}

// CategoryUsageResponse is one row of a wallet's per-category breakdown.
type CategoryUsageResponse struct {
	Category     string                 `json:"category"`
	Type         domain.TransactionType `json:"type"`
	Total        decimal.Decimal        `json:"total"`
	Count        int                    `json:"count"`
	UsagePercent float64                `json:"usagePercent"`
}

// TrendResponse describes the weight of the wallet's most recent transaction
// against its same-type total. Absent entirely when no trend is defined.
type TrendResponse struct {
	Percent   float64 `json:"percent"`
	Direction string  `json:"direction"`
}

// WalletSummaryResponse aggregates the presentation values for one wallet.
type WalletSummaryResponse struct {
	WalletID        string                  `json:"walletId"`
	TotalIncome     decimal.Decimal         `json:"totalIncome"`
	TotalExpense    decimal.Decimal         `json:"totalExpense"`
	LastTransaction *TransactionResponse    `json:"lastTransaction,omitempty"`
	Categories      []CategoryUsageResponse `json:"categories"`
	Trend           *TrendResponse          `json:"trend,omitempty"`
}
