package model

// DefaultCurrency is the display prefix used when the profile does not
// set one.
const DefaultCurrency = "Rs"

// Profile holds the optional user profile. All fields may be empty.
type Profile struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Currency string `json:"currency,omitempty"`
}

// DisplayCurrency returns the configured currency prefix, falling back
// to DefaultCurrency.
func (p Profile) DisplayCurrency() string {
	if p.Currency == "" {
		return DefaultCurrency
	}
	return p.Currency
}
