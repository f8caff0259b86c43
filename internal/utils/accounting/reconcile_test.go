package accounting_test

import (
	"testing"

	"github.com/akerley/pocketledger/internal/apperrors"
	"github.com/akerley/pocketledger/internal/core/domain"
	"github.com/akerley/pocketledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func walletWith(t *testing.T, id, amount string) domain.Wallet {
	t.Helper()
	return domain.Wallet{ID: id, Amount: dec(t, amount), InitialAmount: dec(t, amount)}
}

func expense(id, walletID, amount string) domain.Transaction {
	d, _ := decimal.NewFromString(amount)
	return domain.Transaction{ID: id, WalletID: walletID, Type: domain.TransactionExpense, Amount: d}
}

func income(id, walletID, amount string) domain.Transaction {
	d, _ := decimal.NewFromString(amount)
	return domain.Transaction{ID: id, WalletID: walletID, Type: domain.TransactionIncome, Amount: d}
}

func TestValidateAmount(t *testing.T) {
	assert.NoError(t, accounting.ValidateAmount(dec(t, "0.01")))

	err := accounting.ValidateAmount(decimal.Zero)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)

	err = accounting.ValidateAmount(dec(t, "-5"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
}

// Wallet at 100, add expense of 30 -> 70, edit it to 50 -> 50, delete -> 100.
func TestCreateEditDeleteRoundTrip(t *testing.T) {
	w := walletWith(t, "A", "100")

	tx := expense("t1", "A", "30")
	w = accounting.ApplyCreate(w, tx)
	assert.True(t, w.Amount.Equal(dec(t, "70")), "after create: %s", w.Amount)

	edited := tx
	edited.Amount = dec(t, "50")
	w = accounting.ApplyEdit(w, tx, edited)
	assert.True(t, w.Amount.Equal(dec(t, "50")), "after edit: %s", w.Amount)

	w = accounting.ApplyDelete(w, edited)
	assert.True(t, w.Amount.Equal(dec(t, "100")), "after delete: %s", w.Amount)
}

func TestApplyCreateIncome(t *testing.T) {
	w := walletWith(t, "A", "10")
	w = accounting.ApplyCreate(w, income("t1", "A", "15.25"))
	assert.True(t, w.Amount.Equal(dec(t, "25.25")))
}

func TestApplyEditAcrossTypes(t *testing.T) {
	// Flipping an expense into an income must apply both halves of the delta.
	w := walletWith(t, "A", "100")
	old := expense("t1", "A", "30")
	w = accounting.ApplyCreate(w, old)

	edited := old
	edited.Type = domain.TransactionIncome
	w = accounting.ApplyEdit(w, old, edited)
	assert.True(t, w.Amount.Equal(dec(t, "130")), "got %s", w.Amount)
}

// Moving a transaction between wallets is a pure transfer of bookkeeping:
// the sum of both balances changes by zero net.
func TestMoveBetweenWallets(t *testing.T) {
	a := walletWith(t, "A", "100")
	b := walletWith(t, "B", "200")
	sumBefore := a.Amount.Add(b.Amount)

	tx := expense("t1", "A", "40")
	a = accounting.ApplyCreate(a, tx)
	sumAfterCreate := a.Amount.Add(b.Amount)

	moved := tx
	moved.WalletID = "B"
	a = accounting.ApplyDelete(a, tx)
	b = accounting.ApplyCreate(b, moved)

	assert.True(t, a.Amount.Equal(dec(t, "100")))
	assert.True(t, b.Amount.Equal(dec(t, "160")))
	assert.True(t, a.Amount.Add(b.Amount).Equal(sumAfterCreate))
	assert.True(t, a.Amount.Add(b.Amount).Equal(sumBefore.Sub(dec(t, "40"))))
}

func TestNetAndRecomputeBalance(t *testing.T) {
	w := walletWith(t, "A", "100")
	txns := []domain.Transaction{
		income("t1", "A", "50"),
		expense("t2", "A", "20"),
		expense("t3", "B", "999"), // other wallet, ignored
	}

	assert.True(t, accounting.Net(txns, "A").Equal(dec(t, "30")))
	assert.True(t, accounting.RecomputeBalance(w, txns).Equal(dec(t, "130")))
	assert.True(t, accounting.RecomputeBalance(w, nil).Equal(dec(t, "100")))
}

// The ledger invariant holds after every operation in a mixed sequence.
func TestInvariantUnderOperationSequence(t *testing.T) {
	w := walletWith(t, "A", "250")
	var txns []domain.Transaction

	check := func() {
		t.Helper()
		assert.True(t, w.Amount.Equal(accounting.RecomputeBalance(w, txns)),
			"balance %s diverged from history %s", w.Amount, accounting.RecomputeBalance(w, txns))
	}

	t1 := income("t1", "A", "100")
	w = accounting.ApplyCreate(w, t1)
	txns = append(txns, t1)
	check()

	t2 := expense("t2", "A", "75.50")
	w = accounting.ApplyCreate(w, t2)
	txns = append(txns, t2)
	check()

	edited := t1
	edited.Amount = dec(t, "10")
	w = accounting.ApplyEdit(w, t1, edited)
	txns[0] = edited
	check()

	w = accounting.ApplyDelete(w, t2)
	txns = txns[:1]
	check()
}
