package entity

import (
	"strings"
)

// Customer is one exhibition lead, normalized.
// All fields are plain text; absence is always the empty string, never null.
type Customer struct {
	ID             string `json:"id"`
	Company        string `json:"company"`
	Representative string `json:"representative"`

	// Phone is kept raw; a single cell may encode several numbers
	// ("+90 532..., +90 212..."). Splitting happens at presentation time.
	Phone   string `json:"phone"`
	Country string `json:"country"`
	Email   string `json:"email"`
	Website string `json:"website"`
	Notes   string `json:"notes"`
}

// Identifiable reports whether the lead carries any identifying information.
// Rows where company, phone and email are all empty are junk and get dropped;
// rows with only notes/website/country survive on purpose.
func (c *Customer) Identifiable() bool {
	return strings.TrimSpace(c.Company) != "" ||
		strings.TrimSpace(c.Phone) != "" ||
		strings.TrimSpace(c.Email) != ""
}
