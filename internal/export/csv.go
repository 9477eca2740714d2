// Package export renders the ledger as downloadable reports.
package export

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mmynk/receiptbook/internal/models"
)

const (
	// CSVContentType is sent with CSV downloads.
	CSVContentType = "text/csv;charset=utf-8;"

	// byteOrderMark makes spreadsheet tools read the file as UTF-8, which
	// Gujarati names need.
	byteOrderMark = "\uFEFF"

	filenamePrefix = "Nilkanth_Society_Report_"
)

// ErrNothingToExport is reported by callers that refuse to offer a report
// for an empty ledger.
var ErrNothingToExport = errors.New("no receipts to export")

// Header is the fixed column order of every report.
var Header = []string{"Date", "Receipt No", "Name", "House No", "Total Amount", "Payer", "Check Details"}

// CSVFilename returns the download name for a CSV report exported at now.
func CSVFilename(now time.Time) string {
	return filenamePrefix + now.Format(time.DateOnly) + ".csv"
}

// WriteCSV writes records as CSV: byte-order mark, header line, then one
// line per receipt joined by "\n" with no trailing newline. Free-text
// columns are always quoted; date, receipt number and total are written
// as-is. Nothing is written when records is empty.
func WriteCSV(w io.Writer, records []models.Receipt) error {
	if len(records) == 0 {
		return nil
	}

	lines := make([]string, 0, len(records)+1)
	lines = append(lines, strings.Join(Header, ","))
	for _, r := range records {
		lines = append(lines, strings.Join(csvFields(r), ","))
	}

	if _, err := io.WriteString(w, byteOrderMark+strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("failed to write CSV report: %w", err)
	}
	return nil
}

func csvFields(r models.Receipt) []string {
	return []string{
		r.Date,
		r.ReceiptNo,
		quote(r.Name),
		quote(r.HouseNo),
		r.Total.String(),
		quote(r.Payer),
		quote(r.CheckDetails),
	}
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
