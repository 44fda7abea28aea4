package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"bundlexfer/internal/apperr"
)

const (
	// HeaderHMAC carries the hex HMAC-SHA256 of the bundle payload.
	HeaderHMAC = "X-HMAC"
	// HeaderSigningKey carries the signing key on downloads.
	HeaderSigningKey = "X-SIGNING-KEY"

	uploadPath = "upload"
	filesPath  = "files"

	// maxErrorBody bounds how much of a failed response is kept for diagnostics.
	maxErrorBody = 256
)

// bundleServer implements Store against the bundle server's HTTP API:
// POST /upload and GET /files/{id}.
// It is safe for concurrent use by multiple goroutines.
type bundleServer struct {
	client  *http.Client
	baseURL string
}

// NewBundleServer creates a Store that talks to the bundle server at baseURL.
// The supplied client carries the transport chain (request IDs, logging,
// metrics, tracing); its Timeout is left to the caller, deadlines come from ctx.
func NewBundleServer(baseURL string, client *http.Client) (Store, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("bundle server url is required")
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse bundle server url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("bundle server url must be absolute: %q", baseURL)
	}
	if client == nil {
		client = http.DefaultClient
	}
	return &bundleServer{client: client, baseURL: strings.TrimRight(baseURL, "/")}, nil
}

// Put sends the whole payload as the body of a single POST.
func (s *bundleServer) Put(ctx context.Context, payload []byte, opt PutOptions) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint(uploadPath), bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	if opt.Signature != "" {
		req.Header.Set(HeaderHMAC, opt.Signature)
	}

	body, err := s.do(req)
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// Get fetches /files/{id}. The id is escaped as exactly one path segment.
func (s *bundleServer) Get(ctx context.Context, id string, opt GetOptions) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint(filesPath, id), nil)
	if err != nil {
		return nil, fmt.Errorf("build download request: %w", err)
	}
	if opt.Signature != "" {
		req.Header.Set(HeaderHMAC, opt.Signature)
	}
	if opt.SigningKey != "" {
		req.Header.Set(HeaderSigningKey, opt.SigningKey)
	}
	return s.do(req)
}

// endpoint joins escaped segments onto the base URL. path.Join is avoided on
// purpose: it would collapse "." and ".." ids.
func (s *bundleServer) endpoint(segments ...string) string {
	var b strings.Builder
	b.WriteString(s.baseURL)
	for _, seg := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(seg))
	}
	return b.String()
}

func (s *bundleServer) do(req *http.Request) ([]byte, error) {
	target := req.URL.Redacted()

	resp, err := s.client.Do(req)
	if err != nil {
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return nil, &apperr.NetworkError{Op: req.Method, URL: target, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &apperr.RemoteFailureError{StatusCode: resp.StatusCode, Body: oneLine(snippet)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apperr.NetworkError{Op: req.Method, URL: target, Err: fmt.Errorf("read body: %w", err)}
	}
	return body, nil
}

func oneLine(b []byte) string {
	return strings.Join(strings.Fields(string(b)), " ")
}
