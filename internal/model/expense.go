package model

import "time"

// Expense is a single recorded spending event. Expenses are append-only:
// they are created and deleted, never mutated in place.
//
// ID is the creation time in unix milliseconds, stringified. Two expenses
// created within the same millisecond would collide; this is a documented
// weakness of the format, not a guarantee the store defends against.
//
// Date is kept as the ISO-8601 string it was recorded with. Imported data
// is not deep-validated, so the string may be a bare date, a full
// timestamp, or garbage; use Time to interpret it.
type Expense struct {
	ID          string  `json:"id"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
}

// dateLayouts are tried in order when interpreting an expense date.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02",
}

// Time parses the expense date. The second return is false when the date
// string does not parse under any accepted layout.
func (e Expense) Time() (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, e.Date); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
