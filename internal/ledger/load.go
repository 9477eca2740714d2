package ledger

import "github.com/mmynk/receiptbook/internal/models"

// LoadOutcome classifies the result of reading the durable slot.
type LoadOutcome int

const (
	// LoadEmpty means the slot was never written or holds no receipts.
	LoadEmpty LoadOutcome = iota
	// LoadRecords means receipts were read successfully.
	LoadRecords
	// LoadCorrupted means the slot could not be read or decoded.
	// The store continues empty; LoadResult.Err holds the cause.
	LoadCorrupted
)

func (o LoadOutcome) String() string {
	switch o {
	case LoadRecords:
		return "records"
	case LoadCorrupted:
		return "corrupted"
	default:
		return "empty"
	}
}

// LoadResult is returned by Store.Load.
type LoadResult struct {
	Outcome LoadOutcome
	Records []models.Receipt
	Err     error
}
