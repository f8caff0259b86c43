package store

import "context"

// Keys used by the ledger core in the blob store.
const (
	KeyWallets        = "wallets"
	KeyTransactions   = "transactions"
	KeyGoals          = "savings_goals"
	KeySelectedWallet = "selectedWalletId"
	KeyUser           = "user"
)

// Store is the asynchronous string-keyed blob store the repositories persist
// through. Implementations hold JSON-serialized collections; the store itself
// knows nothing about their shape.
type Store interface {
	// Get returns the value for key. ok is false when no record exists;
	// err reports store-level failures only, never absence.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set writes value under key, replacing any previous record.
	Set(ctx context.Context, key, value string) error

	// Remove deletes the record under key. Removing an absent key is not
	// an error.
	Remove(ctx context.Context, key string) error
}
