// Package cli runs the upload and download commands: it wires the transport
// stack, performs the single transfer and maps the outcome to console output
// and an exit code.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"bundlexfer/internal/config"
	"bundlexfer/internal/http/middleware"
	"bundlexfer/internal/logging"
	"bundlexfer/internal/metrics"
	"bundlexfer/internal/otel"
	"bundlexfer/internal/service"
	"bundlexfer/internal/storage"
)

// Process exit codes.
const (
	ExitOK      = 0
	ExitFailure = 1
)

// flushTimeout bounds trace flushing and the metrics push after the transfer.
const flushTimeout = 5 * time.Second

// Command names a command; it doubles as the OTel service name and the
// Pushgateway job.
type Command string

const (
	CommandUpload   Command = "bundle-upload"
	CommandDownload Command = "bundle-download"
)

func (c Command) action() string {
	if c == CommandUpload {
		return "upload file"
	}
	return "download bundle"
}

// App holds the wired dependencies of one command invocation.
type App struct {
	cmd      Command
	cfg      *config.AppConfig
	log      *slog.Logger
	svc      service.BundleService
	registry *prometheus.Registry
	shutdown func(context.Context) error
	stdout   io.Writer
	stderr   io.Writer
}

// NewApp builds the transport chain (request id, logging, metrics, tracing)
// and the bundle service on top of it. Nothing is sent over the network.
func NewApp(ctx context.Context, cmd Command, cfg *config.AppConfig, stdout, stderr io.Writer) (*App, error) {
	if err := cfg.Server.Validate(); err != nil {
		return nil, err
	}

	log := logging.New(stderr, cfg.Telemetry.LogLevel, time.UTC).With("command", string(cmd))

	shutdown, err := otel.Init(ctx, log, string(cmd))
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()
	prom, err := middleware.NewPrometheusMiddleware(registry)
	if err != nil {
		return nil, err
	}

	client := middleware.NewClient(nil,
		middleware.RequestID(),
		middleware.Logger(log),
		prom.Handler(),
		middleware.Tracing(),
	)
	store, err := storage.NewBundleServer(cfg.Server.BaseURL, client)
	if err != nil {
		return nil, err
	}

	return &App{
		cmd:      cmd,
		cfg:      cfg,
		log:      log,
		svc:      service.NewBundleService(store),
		registry: registry,
		shutdown: shutdown,
		stdout:   stdout,
		stderr:   stderr,
	}, nil
}

// Main runs cmd end to end and returns the process exit code.
func Main(ctx context.Context, cmd Command, cfg *config.AppConfig, stdout, stderr io.Writer) int {
	app, err := NewApp(ctx, cmd, cfg, stdout, stderr)
	if err != nil {
		fmt.Fprintln(stderr, diagnostic(cmd, err))
		return ExitFailure
	}
	defer app.Close()

	switch cmd {
	case CommandUpload:
		return app.Upload(ctx)
	case CommandDownload:
		return app.Download(ctx)
	default:
		fmt.Fprintf(stderr, "unknown command %q\n", cmd)
		return ExitFailure
	}
}

// Close flushes traces and pushes metrics. Failures are logged, never fatal:
// the transfer outcome has already been reported.
func (a *App) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()

	if err := metrics.Push(ctx, a.cfg.Telemetry.PushgatewayURL, string(a.cmd), a.registry); err != nil {
		a.log.Warn("metrics_push_failed", "error", err.Error())
	}
	if err := a.shutdown(ctx); err != nil {
		a.log.Warn("tracing_shutdown_failed", "error", err.Error())
	}
}

// Upload sends the configured file and prints the identifier plus the
// command line that fetches it back.
func (a *App) Upload(ctx context.Context) int {
	cfg := a.cfg.Upload
	if err := cfg.Validate(); err != nil {
		return a.fail(err)
	}

	ctx, cancel := context.WithTimeout(ctx, a.cfg.Server.Timeout)
	defer cancel()

	a.log.Info("uploading_file", "path", cfg.FilePath)
	receipt, err := a.svc.Upload(ctx, cfg.FilePath, cfg.SigningKey)
	if err != nil {
		return a.fail(err)
	}
	a.log.Info("file_uploaded", "bundle_id", receipt.ID, "size", receipt.Size)

	next := fmt.Sprintf("BUNDLE_ID=%s", receipt.ID)
	if receipt.Signature != "" {
		fmt.Fprintf(a.stdout, "HMAC: %s\n", receipt.Signature)
		next += fmt.Sprintf(" HMAC_VALUE=%s", receipt.Signature)
	}
	fmt.Fprintf(a.stdout, "Bundle ID: %s\n", receipt.ID)
	fmt.Fprintf(a.stdout, "Run \"%s %s\" to download the file\n", next, CommandDownload)
	return ExitOK
}

// Download fetches the configured bundle and prints its content verbatim,
// or saves it when an output path is configured.
func (a *App) Download(ctx context.Context) int {
	cfg := a.cfg.Download
	if err := cfg.Validate(); err != nil {
		return a.fail(err)
	}

	ctx, cancel := context.WithTimeout(ctx, a.cfg.Server.Timeout)
	defer cancel()

	a.log.Info("downloading_bundle", "bundle_id", cfg.BundleID)
	bundle, err := a.svc.Download(ctx, cfg.BundleID, service.DownloadOptions{
		Signature:  cfg.HMAC,
		SigningKey: cfg.SigningKey,
	})
	if err != nil {
		return a.fail(err)
	}

	if cfg.OutputPath != "" {
		if err := a.svc.Save(bundle, cfg.OutputPath); err != nil {
			return a.fail(err)
		}
		fmt.Fprintf(a.stdout, "Saved bundle %s to %s\n", bundle.ID, cfg.OutputPath)
		return ExitOK
	}

	if _, err := a.stdout.Write(bundle.Content); err != nil {
		return a.fail(err)
	}
	return ExitOK
}

func (a *App) fail(err error) int {
	a.log.Debug("command_failed", "error", err.Error())
	fmt.Fprintln(a.stderr, diagnostic(a.cmd, err))
	return ExitFailure
}
