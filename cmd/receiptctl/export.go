package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmynk/receiptbook/internal/export"
	"github.com/mmynk/receiptbook/internal/ledger"
	"github.com/mmynk/receiptbook/internal/models"
)

func exportCmd(open opener) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:       "export csv|xlsx",
		Short:     "Write the full ledger as a CSV or XLSX report",
		Long:      "Write the full ledger as a report. Without --out the file is named\nNilkanth_Society_Report_<date>.<ext> in the current directory; use --out - for stdout.",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"csv", "xlsx"},
		RunE: func(cmd *cobra.Command, args []string) error {
			write, filename := export.WriteCSV, export.CSVFilename
			if args[0] == "xlsx" {
				write, filename = export.WriteXLSX, export.XLSXFilename
			}

			return withLedger(cmd.Context(), open, func(store *ledger.Store) error {
				records := store.All()
				if len(records) == 0 {
					return export.ErrNothingToExport
				}

				if out == "-" {
					return write(cmd.OutOrStdout(), records)
				}
				if out == "" {
					out = filename(time.Now())
				}
				if err := writeFile(out, records, write); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d receipts to %s\n", len(records), out)
				return nil
			})
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file, or - for stdout")
	return cmd
}

func writeFile(path string, records []models.Receipt, write func(io.Writer, []models.Receipt) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := write(f, records); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}
