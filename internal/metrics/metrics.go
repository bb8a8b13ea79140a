package metrics

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const unmatchedRoute = "unmatched"

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"code", "method", "path"},
	)
	httpRequestsDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Current Number of HTTP requests being processed.",
		},
	)

	checkoutSessionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_sessions_total",
			Help: "Checkout sessions requested from the payment gateway, by outcome.",
		},
		[]string{"outcome"},
	)
	menuLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "menu_loads_total",
			Help: "Menu loads by settled status.",
		},
		[]string{"status"},
	)
)

func init() {
	if err := prometheus.Register(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{})); err != nil {
		slog.Debug("ProcessCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}

	if err := prometheus.Register(collectors.NewGoCollector()); err != nil {
		slog.Debug("GoCollector registration skipped (likely already registered)",
			slog.String("error", err.Error()))
	}
}

// Checkout outcomes.
const (
	CheckoutCreated  = "created"
	CheckoutRejected = "rejected"
	CheckoutFailed   = "failed"
)

func RecordCheckout(outcome string) {
	checkoutSessionsTotal.WithLabelValues(outcome).Inc()
}

func RecordMenuLoad(status string) {
	menuLoadsTotal.WithLabelValues(status).Inc()
}

// captures the status code for the request counter
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{w, http.StatusOK}
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// Middleware labels requests with the mux pattern they match, so
// /api/kitchen/abc and /api/kitchen/xyz share one series.
func Middleware(mux *http.ServeMux) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			start := time.Now()
			httpRequestsInFlight.Inc()

			rw := newResponseWriter(w)
			path := routePattern(mux, r)

			defer func() {
				httpRequestsTotal.WithLabelValues(strconv.Itoa(rw.statusCode), r.Method, path).Inc()
				httpRequestsDuration.WithLabelValues(r.Method, path).Observe(time.Since(start).Seconds())
				httpRequestsInFlight.Dec()
			}()

			next.ServeHTTP(rw, r)
		})
	}
}

func routePattern(mux *http.ServeMux, r *http.Request) string {
	if _, pattern := mux.Handler(r); pattern != "" {
		return pattern
	}

	return unmatchedRoute
}

// http.Handler for the Prometheus /metrics endpoint
func Handler() http.Handler {
	return promhttp.Handler()
}
