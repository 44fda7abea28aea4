package middleware

import (
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Tracing starts a client span per request and injects the W3C trace
// context headers. Without options it uses the global provider and propagator
// configured by internal/otel.
func Tracing(opts ...otelhttp.Option) Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return otelhttp.NewTransport(next, opts...)
	}
}
