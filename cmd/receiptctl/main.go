// Command receiptctl works on the receipt book's durable slot directly,
// without a running server.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmynk/receiptbook/internal/config"
	"github.com/mmynk/receiptbook/internal/ledger"
	"github.com/mmynk/receiptbook/internal/storage/sqlite"
	"github.com/mmynk/receiptbook/pkg/logging"
)

// opener opens the ledger the commands operate on. The returned func
// releases it.
type opener func(ctx context.Context) (*ledger.Store, func() error, error)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd(config.New(), nil).ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. A nil open reads the ledger from
// the configured SQLite database.
func newRootCmd(v *viper.Viper, open opener) *cobra.Command {
	var cfgFile string
	var cfg *config.Config

	root := &cobra.Command{
		Use:           "receiptctl",
		Short:         "Society receipt book tools",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			if cfg, err = config.Load(v, cfgFile); err != nil {
				return err
			}
			return logging.Setup(cfg.LogLevel)
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./receiptbook.yaml)")
	root.PersistentFlags().String("db-path", config.DefaultDBPath, "SQLite database path")
	root.PersistentFlags().String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	_ = v.BindPFlag("db_path", root.PersistentFlags().Lookup("db-path"))
	_ = v.BindPFlag("log_level", root.PersistentFlags().Lookup("log-level"))

	if open == nil {
		open = func(ctx context.Context) (*ledger.Store, func() error, error) {
			slot, err := sqlite.New(cfg.DBPath)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to open database: %w", err)
			}
			store := ledger.New(slot, cfg.SlotKey)
			if result := store.Load(ctx); result.Outcome == ledger.LoadCorrupted {
				slot.Close()
				return nil, nil, fmt.Errorf("stored receipts are unreadable: %w", result.Err)
			}
			return store, slot.Close, nil
		}
	}

	root.AddCommand(
		wordsCmd(),
		listCmd(open),
		nextNoCmd(open),
		statsCmd(open),
		exportCmd(open),
		deleteCmd(open),
		hashPasswordCmd(),
	)
	return root
}

// withLedger opens the ledger, runs fn, and releases it.
func withLedger(ctx context.Context, open opener, fn func(*ledger.Store) error) error {
	store, release, err := open(ctx)
	if err != nil {
		return err
	}
	defer release()
	return fn(store)
}
