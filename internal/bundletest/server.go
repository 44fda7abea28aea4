// Package bundletest runs an in-process bundle server that speaks the same
// HTTP API as the real one (POST /upload, GET /files/:id). Tests use it to
// count requests and inspect what the commands actually sent.
package bundletest

import (
	"net"
	"net/http"
	"net/url"
	"sync"
	"testing"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Request is a snapshot of one request received by the server.
type Request struct {
	Method string
	URI    string
	Header http.Header
	Body   []byte
}

// Server is a fake bundle server listening on a loopback port.
type Server struct {
	URL string

	app *fiber.App

	mu             sync.Mutex
	bundles        map[string][]byte
	requests       []Request
	uploadStatus   int
	downloadStatus int
	newID          func() string
}

// Option customizes a Server.
type Option func(*Server)

// WithUploadStatus makes POST /upload answer with status and an empty body.
func WithUploadStatus(status int) Option {
	return func(s *Server) { s.uploadStatus = status }
}

// WithDownloadStatus makes GET /files/:id answer with status and an empty body.
func WithDownloadStatus(status int) Option {
	return func(s *Server) { s.downloadStatus = status }
}

// WithBundle pre-loads content under id.
func WithBundle(id string, content []byte) Option {
	return func(s *Server) { s.bundles[id] = append([]byte(nil), content...) }
}

// WithIDGenerator replaces the default UUID identifiers handed out on upload.
func WithIDGenerator(fn func() string) Option {
	return func(s *Server) { s.newID = fn }
}

// NewServer starts a Server and stops it when the test ends.
func NewServer(t testing.TB, opts ...Option) *Server {
	t.Helper()

	s := &Server{
		bundles: make(map[string][]byte),
		newID:   uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.app = fiber.New(fiber.Config{DisableStartupMessage: true, Immutable: true})
	s.app.Use(otelfiber.Middleware())
	s.app.Use(s.record)
	s.app.Post("/upload", s.upload)
	s.app.Get("/files/:id", s.download)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("bundletest: listen: %v", err)
	}
	go func() { _ = s.app.Listener(ln) }()
	t.Cleanup(func() { _ = s.app.Shutdown() })

	s.URL = "http://" + ln.Addr().String()
	return s
}

// Hits returns the number of requests received so far.
func (s *Server) Hits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// Requests returns a copy of every request received so far, in order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Request(nil), s.requests...)
}

// Bundle returns the stored content for id.
func (s *Server) Bundle(id string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bundles[id]
	return b, ok
}

func (s *Server) record(c *fiber.Ctx) error {
	h := make(http.Header)
	for k, vs := range c.GetReqHeaders() {
		for _, v := range vs {
			h.Add(k, v)
		}
	}
	r := Request{
		Method: c.Method(),
		URI:    c.OriginalURL(),
		Header: h,
		// fasthttp reuses the body buffer after the handler returns
		Body: append([]byte(nil), c.Body()...),
	}

	s.mu.Lock()
	s.requests = append(s.requests, r)
	s.mu.Unlock()

	return c.Next()
}

func (s *Server) upload(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.uploadStatus != 0 {
		return c.SendStatus(s.uploadStatus)
	}
	id := s.newID()
	s.bundles[id] = append([]byte(nil), c.Body()...)
	return c.SendString(id)
}

func (s *Server) download(c *fiber.Ctx) error {
	id, err := url.PathUnescape(c.Params("id"))
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.downloadStatus != 0 {
		return c.SendStatus(s.downloadStatus)
	}
	content, ok := s.bundles[id]
	if !ok {
		return c.SendStatus(fiber.StatusNotFound)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEOctetStream)
	return c.Send(content)
}
