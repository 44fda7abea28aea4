package middleware

import "net/http"

// RoundTripperFunc adapts a function to http.RoundTripper.
type RoundTripperFunc func(*http.Request) (*http.Response, error)

func (f RoundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// Middleware wraps an outgoing transport.
type Middleware func(next http.RoundTripper) http.RoundTripper

// Chain wraps base with mws. The first middleware sees the request first.
func Chain(base http.RoundTripper, mws ...Middleware) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	rt := base
	for i := len(mws) - 1; i >= 0; i-- {
		rt = mws[i](rt)
	}
	return rt
}

// NewClient returns an http.Client whose transport runs through mws.
// No client-wide Timeout is set; every call is bounded by its context.
func NewClient(base http.RoundTripper, mws ...Middleware) *http.Client {
	return &http.Client{Transport: Chain(base, mws...)}
}
