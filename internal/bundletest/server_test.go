package bundletest

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServer_UploadThenDownload(t *testing.T) {
	srv := NewServer(t, WithIDGenerator(func() string { return "fixed-id" }))

	resp, err := http.Post(srv.URL+"/upload", "", strings.NewReader("hello world"))
	require.NoError(t, err)
	id, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "fixed-id", string(id))

	stored, ok := srv.Bundle("fixed-id")
	require.True(t, ok)
	assert.Equal(t, "hello world", string(stored))

	resp, err = http.Get(srv.URL + "/files/fixed-id")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "hello world", string(body))

	assert.Equal(t, 2, srv.Hits())
	reqs := srv.Requests()
	assert.Equal(t, "hello world", string(reqs[0].Body))
	assert.Equal(t, "/files/fixed-id", reqs[1].URI)
}

func TestServer_StatusOverrides(t *testing.T) {
	srv := NewServer(t,
		WithUploadStatus(http.StatusNotFound),
		WithDownloadStatus(http.StatusServiceUnavailable),
		WithBundle("abc123", []byte("x")),
	)

	resp, err := http.Post(srv.URL+"/upload", "", strings.NewReader("x"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, err = http.Get(srv.URL + "/files/abc123")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestServer_UnknownBundle(t *testing.T) {
	srv := NewServer(t)

	resp, err := http.Get(srv.URL + "/files/nope")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, 1, srv.Hits())
}
