package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mmynk/receiptbook/internal/ledger"
	"github.com/mmynk/receiptbook/internal/storage/memory"
)

func setupEditor(t *testing.T) (*Editor, *ledger.Store) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := ledger.New(memory.New(), ledger.DefaultKey, ledger.WithLogger(logger))
	store.Load(context.Background())

	n := 0
	clock := func() time.Time { return time.Date(2026, time.January, 5, 10, 30, 0, 0, time.UTC) }
	ids := func() string { n++; return fmt.Sprintf("id-%d", n) }

	return New(store, WithClock(clock), WithIDGenerator(ids), WithLogger(logger)), store
}

func TestNewDraft(t *testing.T) {
	e, _ := setupEditor(t)
	d := e.Draft()

	if d.ID != "id-1" {
		t.Errorf("ID = %q, want id-1", d.ID)
	}
	if d.ReceiptNo != "101" {
		t.Errorf("ReceiptNo = %q, want 101", d.ReceiptNo)
	}
	if d.Date != "05 - 01 - 2026" {
		t.Errorf("Date = %q, want 05 - 01 - 2026", d.Date)
	}
	if len(d.Rows) != 5 {
		t.Errorf("expected 5 default rows, got %d", len(d.Rows))
	}
	if !d.Total.IsZero() {
		t.Errorf("Total = %s, want 0", d.Total)
	}
	if d.CreatedAt == 0 {
		t.Error("expected CreatedAt to be set")
	}
}

func TestSaveValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("blank name is rejected", func(t *testing.T) {
		e, store := setupEditor(t)
		e.SetField(FieldName, "   ")
		e.SetRowAmount(0, decimal.NewFromInt(100))

		notice, err := e.Save(ctx)
		if !errors.Is(err, ErrNameRequired) {
			t.Fatalf("expected ErrNameRequired, got %v", err)
		}
		if notice.Kind != KindError {
			t.Errorf("notice kind = %s, want error", notice.Kind)
		}
		if store.Len() != 0 {
			t.Error("invalid draft was persisted")
		}
		if !e.Draft().Total.Equal(decimal.NewFromInt(100)) {
			t.Error("draft was not preserved after validation failure")
		}
	})

	t.Run("zero total is rejected", func(t *testing.T) {
		e, store := setupEditor(t)
		e.SetField(FieldName, "Ramesh")

		_, err := e.Save(ctx)
		var verr *ValidationError
		if !errors.As(err, &verr) || verr != ErrAmountRequired {
			t.Fatalf("expected ErrAmountRequired, got %v", err)
		}
		if store.Len() != 0 {
			t.Error("invalid draft was persisted")
		}
		if e.Draft().Name != "Ramesh" {
			t.Error("draft was not preserved after validation failure")
		}
	})
}

func TestSaveInsertThenUpdate(t *testing.T) {
	ctx := context.Background()
	e, store := setupEditor(t)

	e.SetField(FieldName, "Ramesh Patel")
	e.SetField(FieldHouseNo, "A/1")
	e.SetRowAmount(0, decimal.NewFromInt(1000))
	e.SetRowAmount(1, decimal.RequireFromString("500.50"))

	notice, err := e.Save(ctx)
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if notice.Text != "New receipt saved" || notice.Kind != KindSuccess {
		t.Errorf("unexpected notice: %+v", notice)
	}
	if store.Len() != 1 {
		t.Fatalf("expected 1 stored receipt, got %d", store.Len())
	}

	e.SetField(FieldPayer, "Meena Patel")
	notice, err = e.Save(ctx)
	if err != nil {
		t.Fatalf("second Save failed: %v", err)
	}
	if notice.Text != "Receipt updated" {
		t.Errorf("unexpected notice: %+v", notice)
	}
	if store.Len() != 1 {
		t.Errorf("update changed ledger length to %d", store.Len())
	}

	stored, _ := store.Get("id-1")
	if stored.Payer != "Meena Patel" {
		t.Errorf("Payer = %q, want Meena Patel", stored.Payer)
	}
	if stored.Words != "One Thousand Five Hundred Rupees and Fifty Paise Only" {
		t.Errorf("Words = %q", stored.Words)
	}
}

func TestResetSuggestsNextNumber(t *testing.T) {
	ctx := context.Background()
	e, _ := setupEditor(t)

	e.SetField(FieldName, "Ramesh")
	e.SetField(FieldReceiptNo, "250")
	e.SetRowAmount(0, decimal.NewFromInt(10))
	if _, err := e.Save(ctx); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	notice := e.Reset()
	if notice.Kind != KindSuccess {
		t.Errorf("unexpected notice: %+v", notice)
	}
	d := e.Draft()
	if d.ReceiptNo != "251" {
		t.Errorf("ReceiptNo = %q, want 251", d.ReceiptNo)
	}
	if d.ID == "id-1" {
		t.Error("reset kept the previous draft id")
	}
	if d.Name != "" || !d.Total.IsZero() {
		t.Errorf("reset draft not blank: %+v", d)
	}
}

func TestEditUsesCopy(t *testing.T) {
	ctx := context.Background()
	e, store := setupEditor(t)

	e.SetField(FieldName, "Ramesh")
	e.SetRowAmount(0, decimal.NewFromInt(100))
	if _, err := e.Save(ctx); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	e.Reset()

	if err := e.Edit("id-1"); err != nil {
		t.Fatalf("Edit failed: %v", err)
	}
	e.SetRowAmount(0, decimal.NewFromInt(900))
	e.SetField(FieldName, "Suresh")

	stored, _ := store.Get("id-1")
	if stored.Name != "Ramesh" || !stored.Total.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("stored receipt changed before save: %+v", stored)
	}

	if _, err := e.Save(ctx); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	stored, _ = store.Get("id-1")
	if stored.Name != "Suresh" || !stored.Total.Equal(decimal.NewFromInt(900)) {
		t.Errorf("stored receipt not updated after save: %+v", stored)
	}

	if err := e.Edit("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSetFieldUnknown(t *testing.T) {
	e, _ := setupEditor(t)
	if err := e.SetField("total", "5"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("expected ErrUnknownField, got %v", err)
	}
}

func TestDeleteRequiresConfirmation(t *testing.T) {
	ctx := context.Background()
	e, store := setupEditor(t)

	e.SetField(FieldName, "Ramesh")
	e.SetRowAmount(0, decimal.NewFromInt(100))
	if _, err := e.Save(ctx); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := e.Delete(ctx, "id-1", false); !errors.Is(err, ErrConfirmationRequired) {
		t.Fatalf("expected ErrConfirmationRequired, got %v", err)
	}
	if store.Len() != 1 {
		t.Fatal("unconfirmed delete removed the receipt")
	}

	if _, err := e.Delete(ctx, "id-1", true); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if store.Len() != 0 {
		t.Error("confirmed delete kept the receipt")
	}

	if _, err := e.Delete(ctx, "id-1", true); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSetRowAmountHugeAndRejected(t *testing.T) {
	e, _ := setupEditor(t)

	huge := decimal.RequireFromString("9223372036854775808")
	if err := e.SetRowAmount(0, huge); err != nil {
		t.Fatalf("SetRowAmount failed: %v", err)
	}
	d := e.Draft()
	if !d.Total.Equal(huge) || d.Words == "" || !strings.HasSuffix(d.Words, "Rupees Only") {
		t.Fatalf("draft out of step: total=%s words=%q", d.Total, d.Words)
	}

	if err := e.SetRowAmount(1, decimal.NewFromInt(-1)); err == nil {
		t.Fatal("expected error for negative amount")
	}
	after := e.Draft()
	if !after.Total.Equal(d.Total) || after.Words != d.Words || !after.Rows[1].Amount.IsZero() {
		t.Errorf("rejected amount changed the draft: total=%s words=%q", after.Total, after.Words)
	}
}
