package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet represents a named balance-holding account in one currency.
//
// Amount always satisfies the ledger consistency invariant:
//
//	Amount == InitialAmount + net(transactions referencing this wallet)
//
// InitialAmount is the starting balance fixed at creation; every transaction
// mutation adjusts Amount incrementally through the reconciler, and the
// ledger repository recomputes Amount from history on load to self-heal any
// divergence left behind by an interrupted write.
type Wallet struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Currency      Currency        `json:"currency"`
	Amount        decimal.Decimal `json:"amount"`
	InitialAmount decimal.Decimal `json:"initialAmount"`
	Image         string          `json:"image,omitempty"`
	Created       time.Time       `json:"created"`
	Updated       time.Time       `json:"updated"`
}
