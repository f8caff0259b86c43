package dto

import "github.com/akerley/pocketledger/internal/core/domain"

// CurrencyResponse describes one supported currency.
type CurrencyResponse struct {
	Code   domain.Currency `json:"code"`
	Symbol string          `json:"symbol"`
}

// ToListCurrencyResponse converts the supported currency set.
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, c := range currencies {
		res[i] = CurrencyResponse{Code: c, Symbol: c.Symbol()}
	}
	return res
}

// CategoriesResponse lists the closed category tables by transaction type.
type CategoriesResponse struct {
	Expense []string `json:"expense"`
	Income  []string `json:"income"`
}
