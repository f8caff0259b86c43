package domain_test

import (
	"testing"

	"github.com/akerley/pocketledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecimal(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func TestCurrencyValidation(t *testing.T) {
	assert.True(t, domain.CurrencyUSD.IsValid())
	assert.True(t, domain.CurrencyIRR.IsValid())
	assert.False(t, domain.Currency("XYZ").IsValid())
}

func TestCurrencySymbols(t *testing.T) {
	assert.Equal(t, "$", domain.CurrencyUSD.Symbol())
	assert.Equal(t, "£", domain.CurrencyGBP.Symbol())
	assert.Equal(t, "﷼", domain.CurrencyIRR.Symbol())
	assert.Equal(t, "€", domain.CurrencyEUR.Symbol())
	// Unknown codes fall back to the code itself.
	assert.Equal(t, "XYZ", domain.Currency("XYZ").Symbol())
}

func TestCategoryTablesArePerType(t *testing.T) {
	assert.True(t, domain.IsValidCategory(domain.TransactionExpense, "food"))
	assert.False(t, domain.IsValidCategory(domain.TransactionIncome, "food"))
	assert.True(t, domain.IsValidCategory(domain.TransactionIncome, "salary"))
	assert.False(t, domain.IsValidCategory(domain.TransactionExpense, "salary"))
	assert.Nil(t, domain.CategoriesFor(domain.TransactionType("bogus")))
}

func TestGoalAchieved(t *testing.T) {
	g := domain.Goal{
		TargetAmount:  mustDecimal(t, "1000"),
		CurrentAmount: mustDecimal(t, "999.99"),
	}
	assert.False(t, g.Achieved())

	g.CurrentAmount = mustDecimal(t, "1000")
	assert.True(t, g.Achieved())
}

func TestLedgerLookups(t *testing.T) {
	l := domain.Ledger{
		Wallets: []domain.Wallet{{ID: "w1"}, {ID: "w2"}},
		Transactions: []domain.Transaction{
			{ID: "t1", WalletID: "w1"},
			{ID: "t2", WalletID: "w2"},
			{ID: "t3", WalletID: "w1"},
		},
	}

	require.NotNil(t, l.WalletByID("w2"))
	assert.Nil(t, l.WalletByID("nope"))

	idx, tx := l.TransactionByID("t2")
	require.NotNil(t, tx)
	assert.Equal(t, 1, idx)

	idx, tx = l.TransactionByID("nope")
	assert.Nil(t, tx)
	assert.Equal(t, -1, idx)

	forW1 := l.TransactionsForWallet("w1")
	require.Len(t, forW1, 2)
	assert.Equal(t, "t1", forW1[0].ID)
	assert.Equal(t, "t3", forW1[1].ID)
}
