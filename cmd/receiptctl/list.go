package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mmynk/receiptbook/internal/ledger"
)

func listCmd(open opener) *cobra.Command {
	var q ledger.Query

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored receipts, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withLedger(cmd.Context(), open, func(store *ledger.Store) error {
				receipts := store.Filter(q)
				if len(receipts) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No receipts found.")
					return nil
				}

				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "NO\tDATE\tNAME\tHOUSE\tTOTAL\tID")
				for _, r := range receipts {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
						r.ReceiptNo, r.Date, r.Name, r.HouseNo, r.Total.StringFixed(2), r.ID)
				}
				return tw.Flush()
			})
		},
	}
	cmd.Flags().StringVar(&q.Name, "name", "", "filter by member name (substring, case-insensitive)")
	cmd.Flags().StringVar(&q.House, "house", "", "filter by house number")
	cmd.Flags().StringVar(&q.No, "no", "", "filter by receipt number")
	return cmd
}

func nextNoCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "next-no",
		Short: "Print the receipt number a new receipt would get",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withLedger(cmd.Context(), open, func(store *ledger.Store) error {
				fmt.Fprintln(cmd.OutOrStdout(), store.NextSuggestedReceiptNo())
				return nil
			})
		},
	}
}

func statsCmd(open opener) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print total collection and receipt count",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withLedger(cmd.Context(), open, func(store *ledger.Store) error {
				stats := store.Stats()
				fmt.Fprintf(cmd.OutOrStdout(), "Receipts:   %d\nCollection: %s\n",
					stats.TotalReceipts, stats.TotalCollection.StringFixed(2))
				return nil
			})
		},
	}
}
