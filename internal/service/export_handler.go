package service

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmynk/receiptbook/internal/export"
	"github.com/mmynk/receiptbook/internal/ledger"
	"github.com/mmynk/receiptbook/internal/metrics"
	"github.com/mmynk/receiptbook/internal/models"
)

// Download routes.
const (
	ExportCSVPath  = "/export/csv"
	ExportXLSXPath = "/export/xlsx"
)

type reportFormat struct {
	name        string
	contentType string
	filename    func(time.Time) string
	write       func(io.Writer, []models.Receipt) error
}

var (
	csvFormat  = reportFormat{"csv", export.CSVContentType, export.CSVFilename, export.WriteCSV}
	xlsxFormat = reportFormat{"xlsx", export.XLSXContentType, export.XLSXFilename, export.WriteXLSX}
)

// ExportHandler serves the ledger as CSV and XLSX downloads.
type ExportHandler struct {
	store   *ledger.Store
	metrics *metrics.Metrics
	now     func() time.Time
	logger  *slog.Logger
}

// NewExportHandler creates a download handler. m may be nil.
func NewExportHandler(store *ledger.Store, m *metrics.Metrics, logger *slog.Logger) *ExportHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportHandler{store: store, metrics: m, now: time.Now, logger: logger}
}

// Register mounts the download routes on mux, wrapping each with wrap
// (e.g. an auth check). wrap may be nil.
func (h *ExportHandler) Register(mux *http.ServeMux, wrap func(http.Handler) http.Handler) {
	if wrap == nil {
		wrap = func(next http.Handler) http.Handler { return next }
	}
	mux.Handle("GET "+ExportCSVPath, wrap(h.serve(csvFormat)))
	mux.Handle("GET "+ExportXLSXPath, wrap(h.serve(xlsxFormat)))
}

func (h *ExportHandler) serve(f reportFormat) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		records := h.store.All()
		if len(records) == 0 {
			h.logger.Debug("Export skipped", "format", f.name, "reason", export.ErrNothingToExport)
			w.WriteHeader(http.StatusNoContent)
			return
		}

		// Render fully before writing headers so a failure can still
		// become a 500.
		var buf bytes.Buffer
		if err := f.write(&buf, records); err != nil {
			h.logger.Error("Export failed", "format", f.name, "error", err)
			http.Error(w, "export failed", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", f.contentType)
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", f.filename(h.now())))
		w.Header().Set("Content-Length", fmt.Sprint(buf.Len()))
		if _, err := buf.WriteTo(w); err != nil {
			h.logger.Warn("Export interrupted", "format", f.name, "error", err)
			return
		}
		h.metrics.Exported(f.name)
		h.logger.Info("Report exported", "format", f.name, "receipts", len(records))
	})
}
