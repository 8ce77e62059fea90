package models

// Category represents a transaction category
type Category struct {
	ID    string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Name  string `gorm:"not null" json:"name"`
	Kind  Kind   `gorm:"type:varchar(16);not null" json:"type"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// DefaultExpenseCategories are offered until the user stores a custom list.
var DefaultExpenseCategories = []Category{
	{ID: "1", Name: "Food & Dining", Kind: KindExpense, Color: "#ef4444", Icon: "UtensilsCrossed"},
	{ID: "2", Name: "Transportation", Kind: KindExpense, Color: "#f97316", Icon: "Car"},
	{ID: "3", Name: "Shopping", Kind: KindExpense, Color: "#f59e0b", Icon: "ShoppingBag"},
	{ID: "4", Name: "Entertainment", Kind: KindExpense, Color: "#eab308", Icon: "Gamepad2"},
	{ID: "5", Name: "Bills & Utilities", Kind: KindExpense, Color: "#84cc16", Icon: "Receipt"},
	{ID: "6", Name: "Healthcare", Kind: KindExpense, Color: "#22c55e", Icon: "Heart"},
	{ID: "7", Name: "Education", Kind: KindExpense, Color: "#06b6d4", Icon: "GraduationCap"},
	{ID: "8", Name: "Travel", Kind: KindExpense, Color: "#3b82f6", Icon: "Plane"},
	{ID: "9", Name: "Home & Garden", Kind: KindExpense, Color: "#6366f1", Icon: "Home"},
	{ID: "10", Name: "Other", Kind: KindExpense, Color: "#8b5cf6", Icon: "MoreHorizontal"},
}

// DefaultIncomeCategories are offered until the user stores a custom list.
var DefaultIncomeCategories = []Category{
	{ID: "11", Name: "Salary", Kind: KindIncome, Color: "#10b981", Icon: "Briefcase"},
	{ID: "12", Name: "Freelance", Kind: KindIncome, Color: "#059669", Icon: "Laptop"},
	{ID: "13", Name: "Investment", Kind: KindIncome, Color: "#047857", Icon: "TrendingUp"},
	{ID: "14", Name: "Business", Kind: KindIncome, Color: "#065f46", Icon: "Building"},
	{ID: "15", Name: "Gift", Kind: KindIncome, Color: "#064e3b", Icon: "Gift"},
	{ID: "16", Name: "Other", Kind: KindIncome, Color: "#14b8a6", Icon: "Plus"},
}

// DefaultCategories returns a fresh copy of the expense defaults followed by
// the income defaults.
func DefaultCategories() []Category {
	all := make([]Category, 0, len(DefaultExpenseCategories)+len(DefaultIncomeCategories))
	all = append(all, DefaultExpenseCategories...)
	return append(all, DefaultIncomeCategories...)
}
