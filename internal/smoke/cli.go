package smoke

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/okian/salat/pkg/logger"
)

// SetupLogging initialises the shared logger for the smoke tool. Verbose
// runs log at debug level.
func SetupLogging(format string, verbose bool) error {
	if err := logger.Init(); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := logger.SetFormat(format); err != nil {
		return fmt.Errorf("failed to set log format: %w", err)
	}
	if verbose {
		logger.SetLevel(slog.LevelDebug)
	}
	return nil
}

// ShowHelp prints usage information for the smoke tool.
func ShowHelp() {
	os.Stdout.WriteString(`Salat Smoke Tool
================

Checks a running salat API end to end: health, city tables, prayer times and
qibla for every known city, duas and Quran verses.

Usage:
  go run ./cmd/smoke [options]

Options:
  -url string
        Base URL of the service (default "http://localhost:8001")
  -workers int
        Number of concurrent workers for per-city checks (default CPU cores * 2)
  -timeout duration
        HTTP request timeout (default 10s)
  -format string
        Response encoding to request: json or msgpack (default "json")
  -date string
        Date for prayer times, YYYY-MM-DD (default: service's today)
  -am string, -pm string
        Meridiem markers the service renders times with (default Kurdish)
  -log-format string
        Log encoding: text or json (default "text")
  -verbose
        Log every passing check
  -help
        Show this help message

Examples:
  # Check a local service
  go run ./cmd/smoke

  # Check over MessagePack for a fixed date
  go run ./cmd/smoke -format msgpack -date 2025-03-20

The tool exits with status 1 when any check fails.
`)
}
