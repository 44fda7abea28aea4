package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the standard header name used to propagate request IDs.
	RequestIDHeader = "X-Request-ID"
)

// RequestID is a reusable middleware that ensures every outgoing request has a request ID.
//
// Behavior:
// - Keeps X-Request-ID if the caller already set one.
// - If missing, generates a new UUID on a clone of the request.
func RequestID() Middleware {
	return func(next http.RoundTripper) http.RoundTripper {
		return RoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if req.Header.Get(RequestIDHeader) == "" {
				// RoundTrippers must not mutate the caller's request
				req = req.Clone(req.Context())
				req.Header.Set(RequestIDHeader, uuid.NewString())
			}
			return next.RoundTrip(req)
		})
	}
}
