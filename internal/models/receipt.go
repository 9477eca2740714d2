package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// Receipt represents one payment receipt issued by the society.
// It is both the draft being edited and the entry stored in the ledger.
type Receipt struct {
	// ID is the unique identifier for the receipt (UUID format).
	// Assigned when the draft is created and never changed afterwards.
	ID string `json:"id"`

	// ReceiptNo is the printed receipt number. Free text, not enforced unique.
	ReceiptNo string `json:"receiptNo"`

	// Date is the display date printed on the receipt (e.g., "05 - 01 - 2026").
	Date string `json:"date"`

	// HouseNo is the block/house number of the member.
	HouseNo string `json:"houseNo"`

	// Name is the member the receipt is issued to. Required on save.
	Name string `json:"name"`

	// Payer is the person who actually paid, when different from Name.
	Payer string `json:"payer"`

	// Rows are the fixed payment categories with their amounts.
	Rows []ReceiptRow `json:"rows"`

	// Total is the sum of all row amounts at the last recomputation.
	Total decimal.Decimal `json:"total"`

	// Words is Total spelled out in Indian English (e.g., "One Hundred Rupees Only").
	Words string `json:"words"`

	// CheckDetails holds cheque number / bank details for non-cash payments.
	CheckDetails string `json:"checkDetails"`

	// CreatedAt is the Unix timestamp in milliseconds when the draft was created.
	CreatedAt int64 `json:"createdAt"`
}

// ReceiptRow represents a single labelled amount on a receipt.
type ReceiptRow struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// Receipts already stored in the durable slot carry amounts as JSON numbers,
// not the quoted strings decimal writes by default. Decoding accepts both.

// MarshalJSON writes Total as a JSON number.
func (r Receipt) MarshalJSON() ([]byte, error) {
	type plain Receipt
	return json.Marshal(struct {
		plain
		Total json.Number `json:"total"`
	}{plain(r), json.Number(r.Total.String())})
}

// MarshalJSON writes Amount as a JSON number.
func (r ReceiptRow) MarshalJSON() ([]byte, error) {
	type plain ReceiptRow
	return json.Marshal(struct {
		plain
		Amount json.Number `json:"amount"`
	}{plain(r), json.Number(r.Amount.String())})
}

// Clone returns a deep copy of the receipt.
func (r Receipt) Clone() Receipt {
	c := r
	if r.Rows != nil {
		c.Rows = make([]ReceiptRow, len(r.Rows))
		copy(c.Rows, r.Rows)
	}
	return c
}

// DefaultRowLabels are the payment categories printed on every receipt,
// in print order.
var DefaultRowLabels = []string{
	"સભાસદ દાખલ ફી...",
	"શેર ફાળા પેટે...",
	"ડેવલપમેન્ટ ફાળા ખાતે...",
	"વહીવટી ફાળા પેટે...",
	"બાકી / વ્યાજ / દંડ...",
}

// DefaultRows returns a fresh set of zero-amount rows for a new receipt.
func DefaultRows() []ReceiptRow {
	rows := make([]ReceiptRow, len(DefaultRowLabels))
	for i, label := range DefaultRowLabels {
		rows[i] = ReceiptRow{Label: label, Amount: decimal.Zero}
	}
	return rows
}
