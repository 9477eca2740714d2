package ledger

import (
	"strings"

	"github.com/mmynk/receiptbook/internal/models"
)

// Query narrows the ledger by case-insensitive substrings. Empty fields
// match everything; all non-empty fields must match.
type Query struct {
	Name  string
	House string
	No    string
}

func (q Query) normalized() Query {
	return Query{
		Name:  strings.ToLower(q.Name),
		House: strings.ToLower(q.House),
		No:    strings.ToLower(q.No),
	}
}

// matches reports whether r satisfies q. q must be normalized.
func (q Query) matches(r models.Receipt) bool {
	return strings.Contains(strings.ToLower(r.Name), q.Name) &&
		strings.Contains(strings.ToLower(r.HouseNo), q.House) &&
		strings.Contains(strings.ToLower(r.ReceiptNo), q.No)
}
