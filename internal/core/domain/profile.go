package domain

// Profile holds the single user's settings. The ledger core reads it only to
// source a default currency for new wallets.
type Profile struct {
	Name            string   `json:"name,omitempty"`
	DefaultCurrency Currency `json:"defaultCurrency,omitempty"`
}
