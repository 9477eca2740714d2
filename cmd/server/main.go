package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/receiptbook/internal/auth"
	"github.com/mmynk/receiptbook/internal/config"
	"github.com/mmynk/receiptbook/internal/editor"
	"github.com/mmynk/receiptbook/internal/ledger"
	"github.com/mmynk/receiptbook/internal/metrics"
	"github.com/mmynk/receiptbook/internal/middleware"
	"github.com/mmynk/receiptbook/internal/models"
	"github.com/mmynk/receiptbook/internal/service"
	"github.com/mmynk/receiptbook/internal/storage"
	"github.com/mmynk/receiptbook/internal/storage/memory"
	"github.com/mmynk/receiptbook/internal/storage/sqlite"
	"github.com/mmynk/receiptbook/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	var (
		cfgFile   string
		ephemeral bool
	)
	v := config.New()

	cmd := &cobra.Command{
		Use:           "receiptbook-server",
		Short:         "Serve the society receipt book over Connect RPC",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(v, cfgFile)
			if err != nil {
				return err
			}
			if err := logging.Setup(cfg.LogLevel); err != nil {
				return err
			}
			return run(cmd.Context(), cfg, ephemeral)
		},
	}
	cmd.Flags().StringVar(&cfgFile, "config", "", "config file (default: ./receiptbook.yaml)")
	cmd.Flags().BoolVar(&ephemeral, "ephemeral", false, "keep receipts in memory only")
	cmd.Flags().Int("port", config.DefaultPort, "listen port")
	cmd.Flags().String("db-path", config.DefaultDBPath, "SQLite database path")
	_ = v.BindPFlag("port", cmd.Flags().Lookup("port"))
	_ = v.BindPFlag("db_path", cmd.Flags().Lookup("db-path"))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := cmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}

func openSlot(cfg *config.Config, ephemeral bool) (storage.Slot, error) {
	if ephemeral {
		slog.Warn("Using in-memory storage; receipts are lost on exit")
		return memory.New(), nil
	}
	slot, err := sqlite.New(cfg.DBPath)
	if err != nil {
		return nil, err
	}
	slog.Info("Storage initialized", "database", cfg.DBPath)
	return slot, nil
}

func run(ctx context.Context, cfg *config.Config, ephemeral bool) error {
	slot, err := openSlot(cfg, ephemeral)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer slot.Close()

	m := metrics.New()
	store := ledger.New(slot, cfg.SlotKey, ledger.WithMetrics(m))
	if result := store.Load(ctx); result.Outcome == ledger.LoadCorrupted {
		// Keep serving with an empty ledger; the slot is only overwritten
		// on the next save.
		slog.Warn("Starting with an empty ledger", "error", result.Err)
	}
	ed := editor.New(store)

	interceptors := []connect.Interceptor{middleware.LoggingInterceptor(m)}
	wrapHTTP := func(next http.Handler) http.Handler { return next }

	mux := http.NewServeMux()
	if cfg.Auth.Enabled() {
		authenticator, err := auth.NewPasswordAuthenticator(models.Operator{
			ID:           "operator",
			Name:         "Society office",
			PasswordHash: cfg.Auth.PasswordHash,
		})
		if err != nil {
			return err
		}
		jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
		interceptors = append(interceptors, middleware.RequireAuth(jwtManager, service.AuthServiceLoginProcedure))
		wrapHTTP = func(next http.Handler) http.Handler { return middleware.RequireAuthHTTP(jwtManager, next) }

		authPath, authHandler := service.NewAuthServiceHandler(
			service.NewAuthService(authenticator, jwtManager, slog.Default()),
			connect.WithInterceptors(interceptors...),
		)
		mux.Handle(authPath, authHandler)
		slog.Info("Operator login enabled", "token_ttl", cfg.Auth.TokenTTL)
	}

	receiptPath, receiptHandler := service.NewReceiptServiceHandler(
		service.NewReceiptService(ed, store, slog.Default()),
		connect.WithInterceptors(interceptors...),
	)
	mux.Handle(receiptPath, receiptHandler)
	service.NewExportHandler(store, m, slog.Default()).Register(mux, wrapHTTP)
	mux.Handle("GET /metrics", m.Handler())

	// h2c for HTTP/2 without TLS (required for Connect gRPC clients)
	handler := h2c.NewHandler(middleware.LogRequests(corsMiddleware(mux)), &http2.Server{})

	addr := fmt.Sprintf(":%d", cfg.Port)
	srv := &http.Server{Addr: addr, Handler: handler, ReadHeaderTimeout: 10 * time.Second}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", addr, "url", fmt.Sprintf("http://localhost%s", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers", "Connect-Protocol-Version, Connect-Timeout-Ms, Content-Disposition")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
