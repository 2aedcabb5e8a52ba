package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	leadsIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leads_ingested_total",
			Help: "Total number of leads added to the working set",
		},
		[]string{"source"},
	)

	draftsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "drafts_generated_total",
			Help: "Total number of draft generations by outcome",
		},
		[]string{"language", "outcome"},
	)

	leadsArchived = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "leads_archived_total",
			Help: "Total number of leads moved into the archive",
		},
	)

	dispatchAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dispatch_attempts_total",
			Help: "Total number of direct email dispatch attempts",
		},
		[]string{"status"},
	)
)

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		activeConnections.Inc()
		defer activeConnections.Dec()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		next.ServeHTTP(rw, r)

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(rw.statusCode)

		httpRequestsTotal.WithLabelValues(r.Method, r.URL.Path, status).Inc()
		httpRequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(duration)
	})
}

func RecordLeadsIngested(source string, count int) {
	leadsIngested.WithLabelValues(source).Add(float64(count))
}

func RecordDraftGeneration(language, outcome string, count int) {
	draftsGenerated.WithLabelValues(language, outcome).Add(float64(count))
}

func RecordArchive() {
	leadsArchived.Inc()
}

func RecordDispatch(status string) {
	dispatchAttempts.WithLabelValues(status).Inc()
}
