// Package editor holds the single receipt draft the operator is working on
// and moves it in and out of the ledger.
package editor

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mmynk/receiptbook/internal/calculator"
	"github.com/mmynk/receiptbook/internal/ledger"
	"github.com/mmynk/receiptbook/internal/models"
)

// DateLayout is the printed receipt date format ("05 - 01 - 2026").
const DateLayout = "02 - 01 - 2006"

// Field names an editable text attribute of a receipt.
type Field string

const (
	FieldReceiptNo    Field = "receiptNo"
	FieldDate         Field = "date"
	FieldHouseNo      Field = "houseNo"
	FieldName         Field = "name"
	FieldPayer        Field = "payer"
	FieldCheckDetails Field = "checkDetails"
)

// Editor owns the draft. All methods are safe for concurrent use.
type Editor struct {
	mu    sync.Mutex
	store *ledger.Store
	draft models.Receipt

	now    func() time.Time
	newID  func() string
	logger *slog.Logger
}

// Option configures an Editor.
type Option func(*Editor)

// WithClock overrides time.Now for draft dates and timestamps.
func WithClock(now func() time.Time) Option {
	return func(e *Editor) { e.now = now }
}

// WithIDGenerator overrides the UUID generator for new drafts.
func WithIDGenerator(newID func() string) Option {
	return func(e *Editor) { e.newID = newID }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Editor) { e.logger = logger }
}

// New creates an Editor with a fresh draft numbered after the receipts
// already in store. Load the store first.
func New(store *ledger.Store, opts ...Option) *Editor {
	e := &Editor{
		store:  store,
		now:    time.Now,
		newID:  func() string { return uuid.New().String() },
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.draft = e.newDraft()
	return e
}

func (e *Editor) newDraft() models.Receipt {
	now := e.now()
	r := models.Receipt{
		ID:        e.newID(),
		ReceiptNo: strconv.Itoa(e.store.NextSuggestedReceiptNo()),
		Date:      now.Format(DateLayout),
		Rows:      models.DefaultRows(),
		Total:     decimal.Zero,
		CreatedAt: now.UnixMilli(),
	}
	return r
}

// Draft returns a copy of the current draft.
func (e *Editor) Draft() models.Receipt {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.draft.Clone()
}

// Reset discards the current draft and starts a new one.
func (e *Editor) Reset() Notice {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.draft = e.newDraft()
	e.logger.Debug("New draft started", "id", e.draft.ID, "receipt_no", e.draft.ReceiptNo)
	return success("Ready for a new receipt")
}

// SetRowAmount changes one row amount and re-derives the total and words.
func (e *Editor) SetRowAmount(index int, amount decimal.Decimal) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return calculator.SetRowAmount(&e.draft, index, amount)
}

// SetField changes a text attribute of the draft. Total and words are not
// affected.
func (e *Editor) SetField(field Field, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch field {
	case FieldReceiptNo:
		e.draft.ReceiptNo = value
	case FieldDate:
		e.draft.Date = value
	case FieldHouseNo:
		e.draft.HouseNo = value
	case FieldName:
		e.draft.Name = value
	case FieldPayer:
		e.draft.Payer = value
	case FieldCheckDetails:
		e.draft.CheckDetails = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// Edit loads a copy of a saved receipt into the draft. Changes reach the
// ledger only on Save.
func (e *Editor) Edit(id string) error {
	stored, ok := e.store.Get(id)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.draft = stored
	e.logger.Debug("Editing saved receipt", "id", id, "receipt_no", stored.ReceiptNo)
	return nil
}

// Save validates the draft and upserts it into the ledger.
// A *ValidationError leaves both the draft and the ledger untouched.
func (e *Editor) Save(ctx context.Context) (Notice, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := validate(e.draft); err != nil {
		e.logger.Info("Draft rejected", "id", e.draft.ID, "reason", err)
		return err.Notice(), err
	}

	kind, err := e.store.Upsert(ctx, e.draft)
	if err != nil {
		e.logger.Error("Save failed", "id", e.draft.ID, "error", err)
		return failure("Receipt could not be saved"), fmt.Errorf("failed to save receipt: %w", err)
	}

	if kind == ledger.Updated {
		return success("Receipt updated"), nil
	}
	return success("New receipt saved"), nil
}

// Delete removes a saved receipt. Nothing happens unless confirmed is true.
func (e *Editor) Delete(ctx context.Context, id string, confirmed bool) (Notice, error) {
	if !confirmed {
		return failure("Delete cancelled"), ErrConfirmationRequired
	}

	removed, err := e.store.Delete(ctx, id)
	if err != nil {
		return failure("Receipt could not be deleted"), fmt.Errorf("failed to delete receipt: %w", err)
	}
	if !removed {
		return failure("Receipt not found"), fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	// Deletions are announced in the error colour.
	return failure("Receipt deleted"), nil
}

func validate(r models.Receipt) *ValidationError {
	if strings.TrimSpace(r.Name) == "" {
		return ErrNameRequired
	}
	if !r.Total.IsPositive() {
		return ErrAmountRequired
	}
	return nil
}
