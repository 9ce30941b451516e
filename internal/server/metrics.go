package server

import (
	"net/http"
	"strconv"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// metrics holds the server's Prometheus collectors on a private registry.
type metrics struct {
	registry     *prometheus.Registry
	httpRequests *prometheus.CounterVec
	operations   *prometheus.CounterVec
}

func newMetrics() *metrics {
	registry := prometheus.NewRegistry()

	httpRequests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lumen",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests by method, path, and status.",
		},
		[]string{"method", "path", "status"},
	)
	operations := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lumen",
			Subsystem: "gateway",
			Name:      "operations_total",
			Help:      "Banking operations by kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	registry.MustRegister(httpRequests, operations)
	return &metrics{
		registry:     registry,
		httpRequests: httpRequests,
		operations:   operations,
	}
}

func (m *metrics) handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func (m *metrics) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		m.httpRequests.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(ww.Status())).Inc()
	})
}
