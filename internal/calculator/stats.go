package calculator

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/receiptbook/internal/models"
)

// Stats summarises the saved receipts.
type Stats struct {
	TotalCollection decimal.Decimal // Sum of all receipt totals
	TotalReceipts   int
}

// CalculateStats computes the collection summary over the given receipts.
func CalculateStats(receipts []models.Receipt) Stats {
	stats := Stats{TotalCollection: decimal.Zero}
	for _, r := range receipts {
		stats.TotalCollection = stats.TotalCollection.Add(r.Total)
	}
	stats.TotalReceipts = len(receipts)
	return stats
}
