package blobstore_test

import (
	"context"
	"testing"

	"github.com/akerley/pocketledger/internal/adapters/store/memory"
	"github.com/akerley/pocketledger/internal/core/domain"
	"github.com/akerley/pocketledger/internal/core/ports/store"
	"github.com/akerley/pocketledger/internal/repositories/blobstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRoundTrip(t *testing.T) {
	repo := blobstore.NewSettingsRepository(memory.New())
	ctx := context.Background()

	profile, err := repo.LoadProfile(ctx)
	require.NoError(t, err)
	assert.Empty(t, profile.DefaultCurrency)

	require.NoError(t, repo.SaveProfile(ctx, domain.Profile{Name: "Sam", DefaultCurrency: domain.CurrencyEUR}))

	profile, err = repo.LoadProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Sam", profile.Name)
	assert.Equal(t, domain.CurrencyEUR, profile.DefaultCurrency)
}

// The selected wallet id is stored as a plain string record, not JSON.
func TestSelectedWalletIsPlainString(t *testing.T) {
	mem := memory.New()
	repo := blobstore.NewSettingsRepository(mem)
	ctx := context.Background()

	id, err := repo.LoadSelectedWalletID(ctx)
	require.NoError(t, err)
	assert.Empty(t, id)

	require.NoError(t, repo.SaveSelectedWalletID(ctx, "w42"))

	raw, ok, err := mem.Get(ctx, store.KeySelectedWallet)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "w42", raw)

	id, err = repo.LoadSelectedWalletID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "w42", id)

	require.NoError(t, repo.ClearSelectedWalletID(ctx))
	id, err = repo.LoadSelectedWalletID(ctx)
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestGoalsRoundTrip(t *testing.T) {
	repo := blobstore.NewGoalRepository(memory.New())
	ctx := context.Background()

	goals, err := repo.LoadGoals(ctx)
	require.NoError(t, err)
	assert.NotNil(t, goals)
	assert.Empty(t, goals)

	saved := []domain.Goal{{
		ID:           "g1",
		Title:        "Vacation",
		Category:     "travel",
		TargetAmount: dec(t, "1200"),
	}}
	require.NoError(t, repo.SaveGoals(ctx, saved))

	goals, err = repo.LoadGoals(ctx)
	require.NoError(t, err)
	require.Len(t, goals, 1)
	assert.Equal(t, "Vacation", goals[0].Title)
	assert.True(t, goals[0].TargetAmount.Equal(dec(t, "1200")))
}
