package smoke

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/okian/salat/internal/domain/prayer"
)

// Config holds configuration for a smoke run.
type Config struct {
	BaseURL  string          // Base URL of the service
	Workers  int             // Number of concurrent workers for per-city checks
	Timeout  time.Duration   // HTTP request timeout
	Format   string          // Response encoding: json or msgpack
	Date     string          // Optional YYYY-MM-DD passed to prayer-times
	Meridiem prayer.Meridiem // Markers the service renders times with
	Verbose  bool            // Log every passing check
}

// Validate fills defaults and rejects unusable settings.
func (c *Config) Validate() error {
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	if c.BaseURL == "" {
		return fmt.Errorf("%w: base url must not be empty", ErrInvalidConfig)
	}
	if c.Workers < 1 {
		c.Workers = 1
	}
	if c.Timeout <= 0 {
		c.Timeout = DefaultTimeout
	}
	switch strings.ToLower(c.Format) {
	case "", FormatJSON:
		c.Format = FormatJSON
	case FormatMsgPack:
		c.Format = FormatMsgPack
	default:
		return fmt.Errorf("%w: %w %q", ErrInvalidConfig, ErrUnsupportedFormat, c.Format)
	}
	if c.Meridiem.AM == "" || c.Meridiem.PM == "" {
		c.Meridiem = prayer.KurdishMeridiem
	}
	return nil
}

// Stats holds run statistics. It is safe for concurrent use.
type Stats struct {
	mu        sync.Mutex
	Checks    int
	Passed    int
	Failed    int
	Failures  []string
	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// record counts one check outcome.
func (s *Stats) record(name string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Checks++
	if err == nil {
		s.Passed++
		return
	}
	s.Failed++
	s.Failures = append(s.Failures, name+": "+err.Error())
}

// SuccessRate is the share of passing checks as a percentage.
func (s *Stats) SuccessRate() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Checks == 0 {
		return 0
	}
	return float64(s.Passed) / float64(s.Checks) * PercentageMultiplier
}
