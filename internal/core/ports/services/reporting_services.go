package services

import (
	"context"

	"github.com/akerley/pocketledger/internal/dto"
)

// ReportingService derives cross-wallet read-only views.
type ReportingService interface {
	// TotalsByCurrency sums wallet balances grouped by currency.
	TotalsByCurrency(ctx context.Context) (*dto.TotalsByCurrencyResponse, error)
}
