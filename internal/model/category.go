// Package model defines the core domain types for homexpense.
package model

// Category is a static spending bucket. The registry below is fixed at
// compile time; categories are never created or destroyed at runtime.
type Category struct {
	Name     string    `json:"name"`
	Icon     string    `json:"icon"`
	Color    string    `json:"color"`
	Gradient [2]string `json:"gradient"`
}

// categories is the ordered registry. Name doubles as the foreign key
// referenced (but not enforced) by Expense.Category and Budget.Category.
var categories = []Category{
	{Name: "Groceries", Icon: "shopping-cart", Color: "#10b981", Gradient: [2]string{"#059669", "#10b981"}},
	{Name: "Utilities", Icon: "flash-on", Color: "#f59e0b", Gradient: [2]string{"#d97706", "#f59e0b"}},
	{Name: "Rent", Icon: "home", Color: "#3b82f6", Gradient: [2]string{"#2563eb", "#3b82f6"}},
	{Name: "Transportation", Icon: "directions-car", Color: "#6366f1", Gradient: [2]string{"#4f46e5", "#6366f1"}},
	{Name: "Entertainment", Icon: "movie", Color: "#ec4899", Gradient: [2]string{"#db2777", "#ec4899"}},
	{Name: "Healthcare", Icon: "medical-services", Color: "#ef4444", Gradient: [2]string{"#dc2626", "#ef4444"}},
	{Name: "Other", Icon: "more-horiz", Color: "#8b5cf6", Gradient: [2]string{"#7c3aed", "#8b5cf6"}},
}

// Categories returns the full registry in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// LookupCategory returns the category with the given name.
func LookupCategory(name string) (Category, bool) {
	for _, c := range categories {
		if c.Name == name {
			return c, true
		}
	}
	return Category{}, false
}
