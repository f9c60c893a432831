package clock

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// DefaultResolution is the ticker refresh interval used when Options does
// not set one. Approximate readings lag real time by at most this much.
const DefaultResolution = time.Millisecond

// Environment variables read by OptionsFromEnv.
const (
	envPrecise     = "POOLCORE_CLOCK_PRECISE"
	envResolution  = "POOLCORE_CLOCK_RESOLUTION_MS"
	envNTPServer   = "POOLCORE_CLOCK_NTP_SERVER"
	envNTPInterval = "POOLCORE_CLOCK_NTP_SYNC_INTERVAL_MS"
)

// Options configures a Service. The zero value is usable: approximate mode,
// millisecond resolution, system time source.
type Options struct {
	// Precise makes every read query the time source instead of the
	// cache. Exact readings, higher per-read cost. The choice is fixed
	// for the service's lifetime.
	Precise bool

	// Resolution is the ticker refresh interval (default: 1ms).
	Resolution time.Duration

	// Source supplies real time (default: SystemSource).
	Source Source

	// Logger receives lifecycle events, never read-path traffic
	// (default: slog.Default).
	Logger *slog.Logger
}

func (o Options) withDefaults() Options {
	if o.Resolution <= 0 {
		o.Resolution = DefaultResolution
	}
	if o.Source == nil {
		o.Source = SystemSource()
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// OptionsFromEnv builds Options from POOLCORE_CLOCK_* environment variables,
// for deployments where precision is a deploy-time switch read once at
// process startup:
//
//	POOLCORE_CLOCK_PRECISE              precise mode ("true"/"false")
//	POOLCORE_CLOCK_RESOLUTION_MS        ticker interval in milliseconds
//	POOLCORE_CLOCK_NTP_SERVER           use an NTP-corrected source
//	POOLCORE_CLOCK_NTP_SYNC_INTERVAL_MS NTP re-measurement interval
//
// Unset or unparseable variables keep their defaults.
func OptionsFromEnv() Options {
	var o Options
	if v := os.Getenv(envPrecise); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			o.Precise = b
		}
	}
	if v := os.Getenv(envResolution); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			o.Resolution = time.Duration(n) * time.Millisecond
		}
	}
	if server := os.Getenv(envNTPServer); server != "" {
		interval := DefaultNTPSyncInterval
		if v := os.Getenv(envNTPInterval); v != "" {
			if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
				interval = time.Duration(n) * time.Millisecond
			}
		}
		o.Source = NewNTPSource(server, interval)
	}
	return o
}
