package dto

import (
	"github.com/akerley/pocketledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyTotal is the summed balance of all wallets sharing one currency.
type CurrencyTotal struct {
	Currency domain.Currency `json:"currency"`
	Symbol   string          `json:"symbol"`
	Total    decimal.Decimal `json:"total"`
}

// TotalsByCurrencyResponse is the per-currency totals report.
type TotalsByCurrencyResponse struct {
	Totals []CurrencyTotal `json:"totals"`
}
