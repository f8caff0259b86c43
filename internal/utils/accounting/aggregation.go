package accounting

import (
	"github.com/akerley/pocketledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// The aggregation functions are stateless derivations over in-memory
// snapshots; nothing here is persisted. Percentages are presentation values
// and are returned as float64; money stays decimal.

// WalletTotals holds the summed income and expense for one wallet.
type WalletTotals struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
}

// CategoryUsage is the per-category breakdown row for one wallet. Total is a
// plain sum of amounts in the category (signed by the category's type, not a
// net across types).
type CategoryUsage struct {
	Category     string
	Type         domain.TransactionType
	Total        decimal.Decimal
	Count        int
	UsagePercent float64
}

// Trend describes the weight of a wallet's most recent transaction against
// its same-type total.
type Trend struct {
	Percent   float64
	Direction string
}

const (
	TrendUp   = "up"
	TrendDown = "down"
)

// TotalsByCurrency sums wallet balances grouped by currency.
func TotalsByCurrency(wallets []domain.Wallet) map[domain.Currency]decimal.Decimal {
	totals := make(map[domain.Currency]decimal.Decimal)
	for _, w := range wallets {
		totals[w.Currency] = totals[w.Currency].Add(w.Amount)
	}
	return totals
}

// ComputeWalletTotals sums amounts by type for the given wallet. An empty
// wallet yields zero for both totals.
func ComputeWalletTotals(transactions []domain.Transaction, walletID string) WalletTotals {
	totals := WalletTotals{TotalIncome: decimal.Zero, TotalExpense: decimal.Zero}
	for _, t := range transactions {
		if t.WalletID != walletID {
			continue
		}
		switch t.Type {
		case domain.TransactionIncome:
			totals.TotalIncome = totals.TotalIncome.Add(t.Amount)
		case domain.TransactionExpense:
			totals.TotalExpense = totals.TotalExpense.Add(t.Amount)
		}
	}
	return totals
}

// LastTransaction returns a copy of the latest transaction for the wallet by
// date, or nil when the wallet has none. Ties are broken deterministically by
// insertion order: the earliest-inserted of the tied transactions wins,
// because only a strictly later date replaces the current candidate.
func LastTransaction(transactions []domain.Transaction, walletID string) *domain.Transaction {
	var last *domain.Transaction
	for i := range transactions {
		t := &transactions[i]
		if t.WalletID != walletID {
			continue
		}
		if last == nil || t.Date.After(last.Date.Time) {
			last = t
		}
	}
	if last == nil {
		return nil
	}
	cp := *last
	return &cp
}

// UsedCategories groups the wallet's transactions by category key. Rows come
// back in first-use order. UsagePercent is the category total relative to
// the wallet balance, clamped to [0,100]; it is 0 when the balance is not
// positive.
func UsedCategories(transactions []domain.Transaction, walletID string, walletAmount decimal.Decimal) []CategoryUsage {
	index := make(map[string]int)
	var rows []CategoryUsage

	for _, t := range transactions {
		if t.WalletID != walletID {
			continue
		}
		i, ok := index[t.Category]
		if !ok {
			i = len(rows)
			index[t.Category] = i
			rows = append(rows, CategoryUsage{
				Category: t.Category,
				Type:     t.Type,
				Total:    decimal.Zero,
			})
		}
		rows[i].Total = rows[i].Total.Add(t.Amount)
		rows[i].Count++
	}

	for i := range rows {
		rows[i].UsagePercent = usagePercent(rows[i].Total, walletAmount)
	}
	return rows
}

func usagePercent(total, walletAmount decimal.Decimal) float64 {
	if walletAmount.LessThanOrEqual(decimal.Zero) {
		return 0
	}
	percent, _ := total.Div(walletAmount).Mul(decimal.NewFromInt(100)).Float64()
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// ComputeTrend relates the last transaction's amount to the wallet's total of
// the same type. It returns nil when there is no last transaction or the
// denominator is zero, so callers never see NaN or Inf.
func ComputeTrend(last *domain.Transaction, totals WalletTotals) *Trend {
	if last == nil {
		return nil
	}

	denom := totals.TotalIncome
	direction := TrendUp
	if last.Type == domain.TransactionExpense {
		denom = totals.TotalExpense
		direction = TrendDown
	}
	if denom.IsZero() {
		return nil
	}

	percent, _ := last.Amount.Div(denom).Mul(decimal.NewFromInt(100)).Float64()
	return &Trend{Percent: percent, Direction: direction}
}
