package accounting

import (
	"fmt"

	"github.com/akerley/pocketledger/internal/apperrors"
	"github.com/akerley/pocketledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// Reconciliation is pure computation: given a wallet and a transaction
// mutation, produce the wallet with the balance delta applied. No I/O
// happens here; the transaction service persists the results as one logical
// write.

// ValidateAmount rejects non-positive amounts before any reconciliation is
// attempted. Amounts are always non-negative before the type sign is applied.
func ValidateAmount(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("%w: amount must be positive, got %s", apperrors.ErrInvalidAmount, amount)
	}
	return nil
}

// ApplyCreate returns the wallet with the transaction's signed amount added:
// income increases the balance, expense decreases it.
func ApplyCreate(w domain.Wallet, tx domain.Transaction) domain.Wallet {
	w.Amount = w.Amount.Add(tx.SignedAmount())
	return w
}

// ApplyDelete is the inverse of ApplyCreate: it reverses the transaction's
// effect on the wallet.
func ApplyDelete(w domain.Wallet, tx domain.Transaction) domain.Wallet {
	w.Amount = w.Amount.Sub(tx.SignedAmount())
	return w
}

// ApplyEdit applies the combined delta of replacing oldTx with newTx on the
// same wallet. The delta is computed in one step so no intermediate balance
// is ever observable. Moves between wallets are not handled here; the caller
// applies ApplyDelete to the old wallet and ApplyCreate to the new one.
func ApplyEdit(w domain.Wallet, oldTx, newTx domain.Transaction) domain.Wallet {
	delta := newTx.SignedAmount().Sub(oldTx.SignedAmount())
	w.Amount = w.Amount.Add(delta)
	return w
}

// Net sums the signed amounts of all transactions referencing walletID.
func Net(transactions []domain.Transaction, walletID string) decimal.Decimal {
	net := decimal.Zero
	for _, t := range transactions {
		if t.WalletID == walletID {
			net = net.Add(t.SignedAmount())
		}
	}
	return net
}

// RecomputeBalance derives the wallet balance from ground truth: the
// creation-time baseline plus the net of its transaction history.
func RecomputeBalance(w domain.Wallet, transactions []domain.Transaction) decimal.Decimal {
	return w.InitialAmount.Add(Net(transactions, w.ID))
}
