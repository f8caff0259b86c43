package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/akerley/pocketledger/internal/adapters/store/memory"
	"github.com/akerley/pocketledger/internal/core/domain"
	"github.com/akerley/pocketledger/internal/core/services"
	"github.com/akerley/pocketledger/internal/repositories/blobstore"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reportWallet(t *testing.T, currency domain.Currency, amount string) domain.Wallet {
	t.Helper()
	now := time.Now()
	d := mustDec(t, amount)
	return domain.Wallet{
		ID:            uuid.NewString(),
		Name:          string(currency) + " wallet",
		Currency:      currency,
		Amount:        d,
		InitialAmount: d,
		Created:       now,
		Updated:       now,
	}
}

func TestTotalsByCurrency_GroupsAndOrders(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	repo := blobstore.NewLedgerRepository(st)
	service := services.NewReportingService(repo)

	require.NoError(t, repo.SaveWallets(ctx, []domain.Wallet{
		reportWallet(t, domain.CurrencyEUR, "20"),
		reportWallet(t, domain.CurrencyUSD, "100"),
		reportWallet(t, domain.CurrencyUSD, "250"),
	}))

	resp, err := service.TotalsByCurrency(ctx)
	require.NoError(t, err)
	require.Len(t, resp.Totals, 2)

	assert.Equal(t, domain.CurrencyUSD, resp.Totals[0].Currency)
	assert.True(t, resp.Totals[0].Total.Equal(mustDec(t, "350")))
	assert.Equal(t, "$", resp.Totals[0].Symbol)

	assert.Equal(t, domain.CurrencyEUR, resp.Totals[1].Currency)
	assert.True(t, resp.Totals[1].Total.Equal(mustDec(t, "20")))
}

// A persisted wallet in a currency outside the supported set still shows up
// in the report, after the supported rows, with its code as the symbol.
func TestTotalsByCurrency_KeepsUnknownCurrencies(t *testing.T) {
	ctx := context.Background()
	st := memory.New()
	repo := blobstore.NewLedgerRepository(st)
	service := services.NewReportingService(repo)

	require.NoError(t, repo.SaveWallets(ctx, []domain.Wallet{
		reportWallet(t, domain.Currency("XYZ"), "50"),
		reportWallet(t, domain.CurrencyUSD, "100"),
	}))

	resp, err := service.TotalsByCurrency(ctx)
	require.NoError(t, err)
	require.Len(t, resp.Totals, 2)

	assert.Equal(t, domain.CurrencyUSD, resp.Totals[0].Currency)
	assert.Equal(t, domain.Currency("XYZ"), resp.Totals[1].Currency)
	assert.Equal(t, "XYZ", resp.Totals[1].Symbol)
	assert.True(t, resp.Totals[1].Total.Equal(mustDec(t, "50")))
}
