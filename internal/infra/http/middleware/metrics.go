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

	prospectsImported = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "prospects_imported_total",
			Help: "Total number of prospects created through file import",
		},
	)

	importRowsSkipped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "import_rows_skipped_total",
			Help: "Total number of import rows skipped for missing names",
		},
	)

	importDatesDefaulted = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "import_dates_defaulted_total",
			Help: "Total number of import rows whose first contact date fell back to the import date",
		},
	)

	remindersPublished = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "touch_reminders_published_total",
			Help: "Total number of touch reminder messages published",
		},
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

func RecordImport(created, skipped, datesDefaulted int) {
	prospectsImported.Add(float64(created))
	importRowsSkipped.Add(float64(skipped))
	importDatesDefaulted.Add(float64(datesDefaulted))
}

func RecordRemindersPublished(n int) {
	remindersPublished.Add(float64(n))
}
