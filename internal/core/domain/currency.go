package domain

// Currency is an ISO-4217 style currency code from the closed set the
// application supports.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyGBP Currency = "GBP"
	CurrencyIRR Currency = "IRR"
	CurrencyJPY Currency = "JPY"
	CurrencyCAD Currency = "CAD"
	CurrencyAUD Currency = "AUD"
	CurrencyCHF Currency = "CHF"
	CurrencyCNY Currency = "CNY"
	CurrencyINR Currency = "INR"
	CurrencyTRY Currency = "TRY"
)

// currencySymbols maps each supported currency to its display symbol.
// This is a presentation lookup; no ledger logic depends on it.
var currencySymbols = map[Currency]string{
	CurrencyUSD: "$",
	CurrencyEUR: "€",
	CurrencyGBP: "£",
	CurrencyIRR: "﷼",
	CurrencyJPY: "¥",
	CurrencyCAD: "CA$",
	CurrencyAUD: "A$",
	CurrencyCHF: "CHF",
	CurrencyCNY: "¥",
	CurrencyINR: "₹",
	CurrencyTRY: "₺",
}

// SupportedCurrencies returns the closed set of currency codes in a stable order.
func SupportedCurrencies() []Currency {
	return []Currency{
		CurrencyUSD, CurrencyEUR, CurrencyGBP, CurrencyIRR, CurrencyJPY,
		CurrencyCAD, CurrencyAUD, CurrencyCHF, CurrencyCNY, CurrencyINR,
		CurrencyTRY,
	}
}

// IsValid reports whether c belongs to the supported currency set.
func (c Currency) IsValid() bool {
	_, ok := currencySymbols[c]
	return ok
}

// Symbol returns the display symbol for the currency, or the code itself
// when no symbol is known.
func (c Currency) Symbol() string {
	if s, ok := currencySymbols[c]; ok {
		return s
	}
	return string(c)
}
