// Package models defines the core domain models for the receipt book.
//
// # Models
//
//   - Receipt: one payment receipt issued to a society member
//   - ReceiptRow: a labelled amount line on a receipt
//   - Operator: the person allowed to issue and delete receipts
//
// # Design Principles
//
// 1. **Derived fields are never edited directly**: Receipt.Total and
// Receipt.Words are always recomputed from the rows (see package calculator)
// 2. **Copy semantics**: receipts handed between the draft slot and the
// ledger are deep copies made with Clone, so editing a draft never mutates
// a stored receipt
// 3. **Stable wire format**: JSON field names match the receipts already
// written to the durable slot ("receiptNo", "houseNo", "createdAt", ...)
package models
