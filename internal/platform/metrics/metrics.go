package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/SscSPs/pos_backend/internal/apperrors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Registry holds the application-specific Prometheus collectors.
	Registry = prometheus.NewRegistry()

	httpInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "pos_backend",
			Subsystem: "http",
			Name:      "inflight_requests",
			Help:      "Current number of in-flight HTTP requests.",
		},
	)

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pos_backend",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests handled.",
		},
		[]string{"method", "route", "status"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pos_backend",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~5s
		},
		[]string{"method", "route"},
	)

	incomeReports = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pos_backend",
			Subsystem: "income",
			Name:      "reports_total",
			Help:      "Total number of income reports served, by report and outcome.",
		},
		[]string{"report", "outcome"},
	)

	incomeReportDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pos_backend",
			Subsystem: "income",
			Name:      "report_duration_seconds",
			Help:      "Duration of income report computation including ownership checks.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12), // 1ms to ~4s
		},
		[]string{"report"},
	)

	authEvents = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pos_backend",
			Subsystem: "auth",
			Name:      "events_total",
			Help:      "Authentication events by kind and outcome.",
		},
		[]string{"event", "outcome"},
	)
)

func init() {
	Registry.MustRegister(
		httpInFlight,
		httpRequests,
		httpDuration,
		incomeReports,
		incomeReportDuration,
		authEvents,
		prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}),
		prometheus.NewGoCollector(),
	)
}

// Handler returns an HTTP handler exposing the registered Prometheus metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{})
}

// RequestStarted increments the in-flight gauge and returns the matching decrement.
func RequestStarted() func() {
	httpInFlight.Inc()
	return httpInFlight.Dec
}

// ObserveRequest records a finished HTTP request.
func ObserveRequest(method, route, status string, duration time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(method, route, status).Inc()
	httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordReport records one income report computation.
func RecordReport(report string, err error, duration time.Duration) {
	if duration <= 0 {
		duration = time.Millisecond
	}
	incomeReports.WithLabelValues(report, Outcome(err)).Inc()
	incomeReportDuration.WithLabelValues(report).Observe(duration.Seconds())
}

// RecordAuthEvent records an authentication event such as login or refresh.
func RecordAuthEvent(event string, err error) {
	authEvents.WithLabelValues(event, Outcome(err)).Inc()
}

// Outcome collapses an error into a low-cardinality label value.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, apperrors.ErrNoRegisterFound):
		return "no_register"
	case errors.Is(err, apperrors.ErrForbidden):
		return "forbidden"
	case errors.Is(err, apperrors.ErrBadRange), errors.Is(err, apperrors.ErrValidation):
		return "invalid"
	case errors.Is(err, apperrors.ErrNotFound):
		return "not_found"
	case errors.Is(err, apperrors.ErrUnauthorized), errors.Is(err, apperrors.ErrRefreshTokenExpired),
		errors.Is(err, apperrors.ErrInactiveMember):
		return "denied"
	default:
		return "error"
	}
}
