package model

// Category identifies a spending (or income/transfer) category.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryShopping      Category = "shopping"
	CategoryBills         Category = "bills"
	CategoryEntertainment Category = "entertainment"
	CategoryHealth        Category = "health"
	CategoryGroceries     Category = "groceries"
	CategoryRent          Category = "rent"
	CategoryEducation     Category = "education"
	CategorySubscriptions Category = "subscriptions"
	CategoryTravel        Category = "travel"
	CategoryIncome        Category = "income"
	CategoryTransfer      Category = "transfer"
	CategoryOther         Category = "other"
)

// Categories lists every known category in display order.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryShopping,
	CategoryBills,
	CategoryEntertainment,
	CategoryHealth,
	CategoryGroceries,
	CategoryRent,
	CategoryEducation,
	CategorySubscriptions,
	CategoryTravel,
	CategoryIncome,
	CategoryTransfer,
	CategoryOther,
}

var categoryNames = map[Category]string{
	CategoryFood:          "Food & Dining",
	CategoryTransport:     "Transport",
	CategoryShopping:      "Shopping",
	CategoryBills:         "Bills & Utilities",
	CategoryEntertainment: "Entertainment",
	CategoryHealth:        "Health",
	CategoryGroceries:     "Groceries",
	CategoryRent:          "Rent",
	CategoryEducation:     "Education",
	CategorySubscriptions: "Subscriptions",
	CategoryTravel:        "Travel",
	CategoryIncome:        "Income",
	CategoryTransfer:      "Transfer",
	CategoryOther:         "Other",
}

// Name returns the human-readable label for the category.
func (c Category) Name() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return categoryNames[CategoryOther]
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryNames[c]
	return ok
}

// Budgetable reports whether a budget may be attached to this category.
// Income and transfer categories never carry spending limits.
func (c Category) Budgetable() bool {
	return c.Valid() && c != CategoryIncome && c != CategoryTransfer
}
