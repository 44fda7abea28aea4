package middleware

import (
	"log/slog"
	"net/http"
	"time"
)

// Logger is a middleware that logs each outgoing HTTP exchange as one JSON record.
// Fields:
// - request_id (taken from the X-Request-ID header set by RequestID)
// - method
// - path
// - status (0 when no response arrived)
// - latency (in milliseconds, as float)
func Logger(log *slog.Logger) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			start := time.Now()

			resp, err := next.RoundTrip(req)

			attrs := []any{
				"request_id", req.Header.Get(RequestIDHeader),
				"method", req.Method,
				"path", req.URL.EscapedPath(),
				"latency", float64(time.Since(start).Microseconds()) / 1000,
			}
			if err != nil {
				attrs = append(attrs, "status", 0, "error", err.Error())
				log.Log(req.Context(), slog.LevelWarn, "http_request_failed", attrs...)
				return resp, err
			}

			attrs = append(attrs, "status", resp.StatusCode)
			level := slog.LevelInfo
			if resp.StatusCode >= 400 {
				level = slog.LevelWarn
			}
			log.Log(req.Context(), level, "http_request", attrs...)
			return resp, nil
		})
	}
}
