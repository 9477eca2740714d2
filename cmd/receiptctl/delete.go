package main

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mmynk/receiptbook/internal/editor"
	"github.com/mmynk/receiptbook/internal/ledger"
)

func deleteCmd(open opener) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <receipt-id>",
		Short: "Delete a stored receipt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := args[0]
			return withLedger(cmd.Context(), open, func(store *ledger.Store) error {
				r, ok := store.Get(id)
				if !ok {
					return fmt.Errorf("%w: %s", editor.ErrNotFound, id)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Receipt %s, %s, %s (%s)\n", r.ReceiptNo, r.Date, r.Name, r.Total.StringFixed(2))

				confirmed := yes
				if !confirmed {
					fmt.Fprint(out, "Are you sure you want to delete this receipt? (y/N): ")
					response, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
					confirmed = strings.EqualFold(strings.TrimSpace(response), "y")
				}

				notice, err := editor.New(store).Delete(cmd.Context(), id, confirmed)
				if errors.Is(err, editor.ErrConfirmationRequired) {
					fmt.Fprintln(out, "Operation canceled.")
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Fprintln(out, notice.Text)
				return nil
			})
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip confirmation prompt")
	return cmd
}
