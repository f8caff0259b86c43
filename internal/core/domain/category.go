package domain

// Categories are closed per-type tables. A transaction's category key must
// belong to the table for its type.

var expenseCategories = []string{
	"food",
	"transport",
	"housing",
	"utilities",
	"health",
	"entertainment",
	"shopping",
	"education",
	"travel",
	"other",
}

var incomeCategories = []string{
	"salary",
	"business",
	"gifts",
	"investments",
	"other",
}

// CategoriesFor returns the category table for the given transaction type.
// Unknown types yield nil.
func CategoriesFor(t TransactionType) []string {
	switch t {
	case TransactionIncome:
		return incomeCategories
	case TransactionExpense:
		return expenseCategories
	default:
		return nil
	}
}

// IsValidCategory reports whether category belongs to the table for type t.
func IsValidCategory(t TransactionType, category string) bool {
	for _, c := range CategoriesFor(t) {
		if c == category {
			return true
		}
	}
	return false
}
