// Package metrics exposes generation counters in Prometheus format.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Sources label where a generation request came from. One-shot CLI runs
// have no scrape endpoint and are not counted.
const (
	SourceHTTP = "http"
	SourceMCP  = "mcp"
)

// Outcome label values. Failed outcomes reuse apperr.Kind.
const OutcomeOK = "ok"

// Metrics owns a private registry so tests and multiple servers in one
// process do not collide on the global one.
type Metrics struct {
	registry    *prometheus.Registry
	generations *prometheus.CounterVec
	endpoints   *prometheus.CounterVec
}

// New creates the counters and registers them.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "apigen_generations_total",
			Help: "Project generation attempts by source and outcome.",
		}, []string{"source", "outcome"}),
		endpoints: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "apigen_endpoints_rendered_total",
			Help: "Endpoints rendered into generated projects.",
		}, []string{"source"}),
	}
	m.registry.MustRegister(m.generations, m.endpoints)
	return m
}

// ObserveGeneration records one generation attempt. endpoints is only
// counted when the outcome is OutcomeOK.
func (m *Metrics) ObserveGeneration(source, outcome string, endpoints int) {
	if m == nil {
		return
	}
	m.generations.WithLabelValues(source, outcome).Inc()
	if outcome == OutcomeOK && endpoints > 0 {
		m.endpoints.WithLabelValues(source).Add(float64(endpoints))
	}
}

// Handler serves the registry at /metrics.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("# metrics not available\n"))
		})
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
