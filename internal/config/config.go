package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"time"

	"bundlexfer/internal/apperr"
)

// ServerConfig holds the location of the bundle server and the bound on a single request.
type ServerConfig struct {
	BaseURL string
	Timeout time.Duration
}

// UploadConfig holds settings used by the upload command.
type UploadConfig struct {
	FilePath   string
	SigningKey string
}

// DownloadConfig holds settings used by the download command.
// BundleID is required; everything else is optional.
type DownloadConfig struct {
	BundleID   string
	HMAC       string
	SigningKey string
	OutputPath string
}

// TelemetryConfig holds logging and metrics export settings.
type TelemetryConfig struct {
	LogLevel       string
	PushgatewayURL string
}

// AppConfig is the centralized configuration struct for both commands.
// It is populated from environment variables. Sensitive values are not hardcoded.
type AppConfig struct {
	Server    ServerConfig
	Upload    UploadConfig
	Download  DownloadConfig
	Telemetry TelemetryConfig
}

// Load reads configuration from environment variables.
// A .env file can be auto-loaded by importing: _ "github.com/joho/godotenv/autoload"
// This function does not require a .env file; real environment variables take precedence.
func Load() *AppConfig {
	signingKey := getEnv("SIGNING_KEY", "")
	return &AppConfig{
		Server: ServerConfig{
			BaseURL: getEnv("BUNDLE_SERVER_URL", "http://0.0.0.0:5558"),
			Timeout: getEnvDuration("BUNDLE_TIMEOUT", 30*time.Second),
		},
		Upload: UploadConfig{
			FilePath:   getEnv("UPLOAD_FILE", "test_file.txt"),
			SigningKey: signingKey,
		},
		Download: DownloadConfig{
			BundleID:   getEnv("BUNDLE_ID", ""),
			HMAC:       getEnv("HMAC_VALUE", ""),
			SigningKey: signingKey,
			OutputPath: getEnv("DOWNLOAD_OUTPUT", ""),
		},
		Telemetry: TelemetryConfig{
			LogLevel:       getEnv("LOG_LEVEL", "error"),
			PushgatewayURL: getEnv("METRICS_PUSHGATEWAY_URL", ""),
		},
	}
}

// Validate checks the server settings once at startup.
func (c ServerConfig) Validate() error {
	if c.BaseURL == "" {
		return &apperr.MissingConfigError{Key: "BUNDLE_SERVER_URL"}
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid BUNDLE_SERVER_URL %q", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("BUNDLE_TIMEOUT must be positive, got %s", c.Timeout)
	}
	return nil
}

// Validate checks the upload settings once at startup.
func (c UploadConfig) Validate() error {
	if c.FilePath == "" {
		return &apperr.MissingConfigError{Key: "UPLOAD_FILE"}
	}
	return nil
}

// Validate checks the download settings once at startup.
func (c DownloadConfig) Validate() error {
	if c.BundleID == "" {
		return &apperr.MissingConfigError{Key: "BUNDLE_ID"}
	}
	return nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// getEnvDuration accepts Go duration strings ("5s") or a bare number of seconds.
func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		if i, err := strconv.Atoi(v); err == nil {
			return time.Duration(i) * time.Second
		}
	}
	return def
}
