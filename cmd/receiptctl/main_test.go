package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/mmynk/receiptbook/internal/config"
	"github.com/mmynk/receiptbook/internal/export"
	"github.com/mmynk/receiptbook/internal/ledger"
	"github.com/mmynk/receiptbook/internal/models"
	"github.com/mmynk/receiptbook/internal/storage/memory"
)

func seededLedger(t *testing.T) *ledger.Store {
	t.Helper()
	store := ledger.New(memory.New(), ledger.DefaultKey)
	store.Load(context.Background())

	for _, r := range []struct {
		id, no, name, house string
		amount              int64
	}{
		{"r-1", "101", "Ramesh Patel", "A/1", 1000},
		{"r-2", "102", "Suresh Shah", "B/4", 250},
	} {
		rec := models.Receipt{ID: r.id, ReceiptNo: r.no, Date: "01 - 03 - 2026", Name: r.name, HouseNo: r.house, Rows: models.DefaultRows()}
		rec.Rows[0].Amount = decimal.NewFromInt(r.amount)
		rec.Total = decimal.NewFromInt(r.amount)
		if _, err := store.Upsert(context.Background(), rec); err != nil {
			t.Fatalf("Upsert failed: %v", err)
		}
	}
	return store
}

// runCmd executes receiptctl with args against store and returns stdout.
func runCmd(t *testing.T, store *ledger.Store, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())

	open := func(context.Context) (*ledger.Store, func() error, error) {
		return store, func() error { return nil }, nil
	}
	root := newRootCmd(config.New(), open)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestWordsCommand(t *testing.T) {
	out, err := runCmd(t, nil, "", "words", "100000")
	if err != nil {
		t.Fatalf("words failed: %v", err)
	}
	if strings.TrimSpace(out) != "One Lakh Rupees Only" {
		t.Errorf("got %q", out)
	}

	if _, err := runCmd(t, nil, "", "words", "abc"); err == nil {
		t.Error("expected error for non-numeric amount")
	}
}

func TestListCommand(t *testing.T) {
	store := seededLedger(t)

	out, err := runCmd(t, store, "", "list", "--name", "patel")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "Ramesh Patel") || strings.Contains(out, "Suresh") {
		t.Errorf("unexpected list output:\n%s", out)
	}
	if !strings.Contains(out, "1000.00") {
		t.Errorf("list output missing total:\n%s", out)
	}

	out, err = runCmd(t, store, "", "list", "--house", "zzz")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if !strings.Contains(out, "No receipts found.") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestNextNoAndStats(t *testing.T) {
	store := seededLedger(t)

	out, err := runCmd(t, store, "", "next-no")
	if err != nil {
		t.Fatalf("next-no failed: %v", err)
	}
	if strings.TrimSpace(out) != "103" {
		t.Errorf("next-no = %q, want 103", out)
	}

	out, err = runCmd(t, store, "", "stats")
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if !strings.Contains(out, "Receipts:   2") || !strings.Contains(out, "Collection: 1250.00") {
		t.Errorf("unexpected stats output:\n%s", out)
	}
}

func TestExportCommand(t *testing.T) {
	store := seededLedger(t)

	out, err := runCmd(t, store, "", "export", "csv", "--out", "-")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.HasPrefix(out, "\uFEFFDate,Receipt No,Name") {
		t.Errorf("unexpected CSV: %q", out)
	}
	if !strings.Contains(out, `"Suresh Shah"`) {
		t.Errorf("CSV missing receipt: %q", out)
	}

	path := filepath.Join(t.TempDir(), "report.xlsx")
	if _, err := runCmd(t, store, "", "export", "xlsx", "--out", path); err != nil {
		t.Fatalf("export xlsx failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("report not written: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Error("xlsx report is not a zip archive")
	}

	if _, err := runCmd(t, store, "", "export", "pdf"); err == nil {
		t.Error("expected error for unsupported format")
	}

	empty := ledger.New(memory.New(), ledger.DefaultKey)
	if _, err := runCmd(t, empty, "", "export", "csv", "--out", "-"); !errors.Is(err, export.ErrNothingToExport) {
		t.Errorf("expected ErrNothingToExport, got %v", err)
	}
}

func TestDeleteCommand(t *testing.T) {
	tests := []struct {
		name      string
		stdin     string
		args      []string
		wantLen   int
		wantOut   string
		wantError bool
	}{
		{"declined", "n\n", []string{"delete", "r-1"}, 2, "Operation canceled.", false},
		{"empty answer", "", []string{"delete", "r-1"}, 2, "Operation canceled.", false},
		{"confirmed", "y\n", []string{"delete", "r-1"}, 1, "Receipt deleted", false},
		{"yes flag", "", []string{"delete", "--yes", "r-2"}, 1, "Receipt deleted", false},
		{"unknown id", "y\n", []string{"delete", "nope"}, 2, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := seededLedger(t)
			out, err := runCmd(t, store, tt.stdin, tt.args...)
			if (err != nil) != tt.wantError {
				t.Fatalf("error = %v, wantError %v", err, tt.wantError)
			}
			if !strings.Contains(out, tt.wantOut) {
				t.Errorf("output %q does not contain %q", out, tt.wantOut)
			}
			if store.Len() != tt.wantLen {
				t.Errorf("ledger has %d receipts, want %d", store.Len(), tt.wantLen)
			}
		})
	}
}

func TestHashPasswordCommand(t *testing.T) {
	out, err := runCmd(t, nil, "society-secret\n", "hash-password")
	if err != nil {
		t.Fatalf("hash-password failed: %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(out), "$2a$") {
		t.Errorf("unexpected hash: %q", out)
	}

	if _, err := runCmd(t, nil, "short\n", "hash-password"); err == nil {
		t.Error("expected error for short password")
	}
}
