// Package metrics exposes receipt book counters in Prometheus format.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "receiptbook"

// Metrics holds the collectors for one process. A nil *Metrics is valid and
// records nothing, so components can take it as an optional dependency.
type Metrics struct {
	registry *prometheus.Registry

	saved    *prometheus.CounterVec
	deleted  prometheus.Counter
	exports  *prometheus.CounterVec
	loads    *prometheus.CounterVec
	stored   prometheus.Gauge
	requests *prometheus.CounterVec
}

// New creates a Metrics with its own registry, including Go runtime and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		saved: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "receipts_saved_total",
			Help:      "Receipts saved, by kind (inserted or updated).",
		}, []string{"kind"}),
		deleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "receipts_deleted_total",
			Help:      "Receipts deleted from the ledger.",
		}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Reports exported, by format.",
		}, []string{"format"}),
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ledger_loads_total",
			Help:      "Ledger loads from the durable slot, by outcome.",
		}, []string{"outcome"}),
		stored: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "receipts_stored",
			Help:      "Receipts currently held in the ledger.",
		}),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rpc_requests_total",
			Help:      "RPC requests, by procedure and result code.",
		}, []string{"procedure", "code"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.saved, m.deleted, m.exports, m.loads, m.stored, m.requests,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) ReceiptSaved(kind string) {
	if m == nil {
		return
	}
	m.saved.WithLabelValues(kind).Inc()
}

func (m *Metrics) ReceiptDeleted() {
	if m == nil {
		return
	}
	m.deleted.Inc()
}

func (m *Metrics) Exported(format string) {
	if m == nil {
		return
	}
	m.exports.WithLabelValues(format).Inc()
}

func (m *Metrics) LedgerLoaded(outcome string) {
	if m == nil {
		return
	}
	m.loads.WithLabelValues(outcome).Inc()
}

func (m *Metrics) SetStored(n int) {
	if m == nil {
		return
	}
	m.stored.Set(float64(n))
}

func (m *Metrics) RPCHandled(procedure, code string) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(procedure, code).Inc()
}
