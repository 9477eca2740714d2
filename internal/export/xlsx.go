package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/mmynk/receiptbook/internal/models"
)

const (
	// XLSXContentType is sent with XLSX downloads.
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// SheetName is the worksheet holding the report.
	SheetName = "Receipts"
)

// XLSXFilename returns the download name for an XLSX report exported at now.
func XLSXFilename(now time.Time) string {
	return filenamePrefix + now.Format(time.DateOnly) + ".xlsx"
}

// WriteXLSX writes records as a single-sheet workbook with the same columns
// as the CSV report. Totals are numeric cells. Nothing is written when
// records is empty.
func WriteXLSX(w io.Writer, records []models.Receipt) error {
	if len(records) == 0 {
		return nil
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create header style: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(len(Header))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(SheetName, "A1", lastCol+"1", bold); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	if err := f.SetColWidth(SheetName, "A", lastCol, 20); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			r.Date,
			r.ReceiptNo,
			r.Name,
			r.HouseNo,
			r.Total.InexactFloat64(),
			r.Payer,
			r.CheckDetails,
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("failed to write receipt %s: %w", r.ID, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write XLSX report: %w", err)
	}
	return nil
}
