package domain

import "github.com/shopspring/decimal"

// TransactionType indicates whether a transaction adds to or subtracts from
// its wallet's balance.
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// IsValid reports whether t is one of the two known transaction types.
func (t TransactionType) IsValid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// Transaction is a dated income or expense record affecting exactly one
// wallet's balance. Amount is always positive; the sign is carried by Type.
type Transaction struct {
	ID          string          `json:"id"`
	WalletID    string          `json:"walletId"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Date        FlexTime        `json:"date"`
}

// SignedAmount returns the amount with the sign implied by the transaction
// type: positive for income, negative for expense.
func (t Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}
