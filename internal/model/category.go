package model

// UnknownCategoryName is the display fallback when a transaction or
// budget references a category that no longer exists. A missing
// category is normal degraded data, not an error.
const UnknownCategoryName = "Unknown Category"

// Category labels transactions for display and category-scoped budgets.
type Category struct {
	ID   string
	Name string
	Type TxType
}

// CategoryName resolves id against cats, falling back to
// UnknownCategoryName for missing or unmatched ids.
func CategoryName(cats []Category, id string) string {
	if id == "" {
		return UnknownCategoryName
	}
	for _, c := range cats {
		if c.ID == id {
			return c.Name
		}
	}
	return UnknownCategoryName
}
