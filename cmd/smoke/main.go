package main

import (
	"context"
	"flag"
	"os"
	"runtime"
	"time"

	"github.com/okian/salat/internal/domain/prayer"
	"github.com/okian/salat/internal/smoke"
)

// Default configuration constants.
const (
	defaultWorkers     = 2 // multiplier for runtime.NumCPU()
	defaultRunTimeout  = 5 * time.Minute
	defaultRequestWait = smoke.DefaultTimeout
)

func main() {
	var (
		baseURL   = flag.String("url", "http://localhost:8001", "Base URL of the service")
		workers   = flag.Int("workers", runtime.NumCPU()*defaultWorkers, "Number of concurrent workers")
		timeout   = flag.Duration("timeout", defaultRequestWait, "HTTP request timeout")
		format    = flag.String("format", smoke.FormatJSON, "Response encoding: json or msgpack")
		date      = flag.String("date", "", "Date for prayer times, YYYY-MM-DD")
		am        = flag.String("am", prayer.KurdishMeridiem.AM, "Ante meridiem marker")
		pm        = flag.String("pm", prayer.KurdishMeridiem.PM, "Post meridiem marker")
		logFormat = flag.String("log-format", "text", "Log encoding: text or json")
		verbose   = flag.Bool("verbose", false, "Log every passing check")
		help      = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *help {
		smoke.ShowHelp()
		return
	}

	if err := smoke.SetupLogging(*logFormat, *verbose); err != nil {
		os.Stderr.WriteString("Failed to setup logging: " + err.Error() + "\n")
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	cfg := &smoke.Config{
		BaseURL:  *baseURL,
		Workers:  *workers,
		Timeout:  *timeout,
		Format:   *format,
		Date:     *date,
		Meridiem: prayer.Meridiem{AM: *am, PM: *pm},
		Verbose:  *verbose,
	}

	if _, err := smoke.Run(ctx, cfg); err != nil {
		os.Stderr.WriteString("Smoke run failed: " + err.Error() + "\n")
		cancel()
		os.Exit(1)
	}
}
