package model

// Budget is a spending cap declared for one category. There is no ID
// field; the category name is the intended (but unenforced) unique key.
// Duplicate categories can arrive through imported snapshots, in which
// case lookup, update, and delete all act on the first match.
type Budget struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}
