package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusMiddleware holds the prometheus metrics for outgoing bundle requests.
type PrometheusMiddleware struct {
	requestCount    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewPrometheusMiddleware creates a new PrometheusMiddleware and registers its collectors on reg.
func NewPrometheusMiddleware(reg prometheus.Registerer) (*PrometheusMiddleware, error) {
	m := &PrometheusMiddleware{
		requestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "bundle_client_requests_total",
				Help: "Total number of requests sent to the bundle server.",
			},
			[]string{"method", "route", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "bundle_client_request_duration_seconds",
				Help:    "Latency of requests sent to the bundle server.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}

	for _, c := range []prometheus.Collector{m.requestCount, m.requestDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Handler returns the transport middleware.
func (m *PrometheusMiddleware) Handler() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			start := time.Now()
			resp, err := next.RoundTrip(req)

			route := routeOf(req.URL.Path)
			status := "error"
			if err == nil {
				status = strconv.Itoa(resp.StatusCode)
			}

			m.requestCount.WithLabelValues(req.Method, route, status).Inc()
			m.requestDuration.WithLabelValues(req.Method, route).Observe(time.Since(start).Seconds())

			return resp, err
		})
	}
}

// routeOf collapses bundle ids so the route label stays low-cardinality
// (e.g., /files/:id instead of /files/123).
func routeOf(path string) string {
	switch {
	case strings.HasSuffix(path, "/upload"):
		return "/upload"
	case strings.Contains(path, "/files/"):
		return "/files/:id"
	default:
		return "other"
	}
}
