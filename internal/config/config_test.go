package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bundlexfer/internal/apperr"
)

func TestLoad(t *testing.T) {
	t.Setenv("BUNDLE_SERVER_URL", "http://127.0.0.1:9999")
	t.Setenv("BUNDLE_TIMEOUT", "5s")
	t.Setenv("UPLOAD_FILE", "bundle.jsonl")
	t.Setenv("BUNDLE_ID", "abc123")
	t.Setenv("SIGNING_KEY", "secret")
	t.Setenv("HMAC_VALUE", "deadbeef")
	t.Setenv("DOWNLOAD_OUTPUT", "out.bin")

	cfg := Load()

	assert.Equal(t, "http://127.0.0.1:9999", cfg.Server.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "bundle.jsonl", cfg.Upload.FilePath)
	assert.Equal(t, "secret", cfg.Upload.SigningKey)
	assert.Equal(t, "abc123", cfg.Download.BundleID)
	assert.Equal(t, "deadbeef", cfg.Download.HMAC)
	assert.Equal(t, "secret", cfg.Download.SigningKey)
	assert.Equal(t, "out.bin", cfg.Download.OutputPath)
}

func TestLoadDefaults(t *testing.T) {
	for _, k := range []string{"BUNDLE_SERVER_URL", "BUNDLE_TIMEOUT", "UPLOAD_FILE", "BUNDLE_ID", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "http://0.0.0.0:5558", cfg.Server.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "test_file.txt", cfg.Upload.FilePath)
	assert.Empty(t, cfg.Download.BundleID)
	assert.Equal(t, "error", cfg.Telemetry.LogLevel)
}

func TestGetEnv(t *testing.T) {
	key := "TEST_ENV_VAR"
	t.Setenv(key, "value")

	assert.Equal(t, "value", getEnv(key, "default"))
	assert.Equal(t, "default", getEnv("NON_EXISTENT", "default"))
}

func TestGetEnvDuration(t *testing.T) {
	key := "TEST_DURATION_VAR"

	t.Setenv(key, "250ms")
	assert.Equal(t, 250*time.Millisecond, getEnvDuration(key, time.Second))

	t.Setenv(key, "7")
	assert.Equal(t, 7*time.Second, getEnvDuration(key, time.Second))

	t.Setenv(key, "invalid")
	assert.Equal(t, time.Second, getEnvDuration(key, time.Second))

	t.Setenv(key, "")
	assert.Equal(t, time.Second, getEnvDuration(key, time.Second))
}

func TestDownloadConfig_Validate(t *testing.T) {
	err := DownloadConfig{}.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrMissingConfiguration)
	assert.Contains(t, err.Error(), "BUNDLE_ID")

	assert.NoError(t, DownloadConfig{BundleID: "abc123"}.Validate())
}

func TestUploadConfig_Validate(t *testing.T) {
	assert.ErrorIs(t, UploadConfig{}.Validate(), apperr.ErrMissingConfiguration)
	assert.NoError(t, UploadConfig{FilePath: "f.txt"}.Validate())
}

func TestServerConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ServerConfig
		wantErr bool
	}{
		{"ok", ServerConfig{BaseURL: "http://0.0.0.0:5558", Timeout: time.Second}, false},
		{"empty url", ServerConfig{Timeout: time.Second}, true},
		{"no scheme", ServerConfig{BaseURL: "0.0.0.0:5558", Timeout: time.Second}, true},
		{"zero timeout", ServerConfig{BaseURL: "http://localhost"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
