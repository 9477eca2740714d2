package calculator

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/mmynk/receiptbook/internal/models"
)

var (
	ErrRowIndex       = errors.New("row index out of range")
	ErrNegativeAmount = errors.New("amount cannot be negative")
)

// Sum adds up the amounts of all rows.
func Sum(rows []models.ReceiptRow) decimal.Decimal {
	total := decimal.Zero
	for _, row := range rows {
		total = total.Add(row.Amount)
	}
	return total
}

// Recompute re-derives Total and Words from the receipt rows.
func Recompute(r *models.Receipt) {
	total := Sum(r.Rows)
	r.Total, r.Words = total, Words(total)
}

// SetRowAmount replaces the amount of one row and recomputes the derived
// fields. On error the receipt is left unchanged.
func SetRowAmount(r *models.Receipt, index int, amount decimal.Decimal) error {
	if index < 0 || index >= len(r.Rows) {
		return fmt.Errorf("%w: %d (receipt has %d rows)", ErrRowIndex, index, len(r.Rows))
	}
	if amount.IsNegative() {
		return fmt.Errorf("%w: %s", ErrNegativeAmount, amount)
	}

	// Rows may still be shared with a stored receipt; never write through.
	rows := make([]models.ReceiptRow, len(r.Rows))
	copy(rows, r.Rows)
	rows[index].Amount = amount
	total := Sum(rows)
	words := Words(total)

	r.Rows, r.Total, r.Words = rows, total, words
	return nil
}
