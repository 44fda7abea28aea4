// Command bundle-upload sends a local file to the bundle server and prints
// the bundle identifier it was stored under.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"bundlexfer/internal/cli"
	"bundlexfer/internal/config"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	code := cli.Main(ctx, cli.CommandUpload, cfg, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
