package domain

// Ledger is a consistent snapshot of the wallet and transaction collections.
// Snapshots are value copies; callers may mutate them freely and persist the
// result as a whole.
type Ledger struct {
	Wallets      []Wallet
	Transactions []Transaction
}

// WalletByID returns a pointer into the snapshot's wallet slice, or nil when
// the id does not resolve.
func (l *Ledger) WalletByID(id string) *Wallet {
	for i := range l.Wallets {
		if l.Wallets[i].ID == id {
			return &l.Wallets[i]
		}
	}
	return nil
}

// TransactionByID returns the index and a pointer into the snapshot's
// transaction slice, or (-1, nil) when the id does not resolve.
func (l *Ledger) TransactionByID(id string) (int, *Transaction) {
	for i := range l.Transactions {
		if l.Transactions[i].ID == id {
			return i, &l.Transactions[i]
		}
	}
	return -1, nil
}

// TransactionsForWallet returns the transactions referencing walletID, in
// insertion order.
func (l *Ledger) TransactionsForWallet(walletID string) []Transaction {
	var out []Transaction
	for _, t := range l.Transactions {
		if t.WalletID == walletID {
			out = append(out, t)
		}
	}
	return out
}
