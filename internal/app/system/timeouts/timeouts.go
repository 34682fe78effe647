// Package timeouts holds the deadline values for outbound work so the
// handlers and background jobs agree on how long things may take.
package timeouts

import (
	"sync"
	"time"
)

// Defaults, used unless Configure overrides them.
const (
	DefaultPing = 2 * time.Second
	DefaultLong = 30 * time.Second
)

var (
	mu   sync.RWMutex
	ping = DefaultPing
	long = DefaultLong
)

// Ping returns the deadline for reachability probes, such as the health
// check's HEAD request against the directory feed.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Long returns the deadline for a full directory sync, fetch and
// replace included.
func Long() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return long
}

// Config holds override values for Configure. Zero fields keep the
// current value.
type Config struct {
	Ping time.Duration
	Long time.Duration
}

// Configure overrides the deadlines. Tests use this to shorten waits;
// call Reset afterwards.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Long > 0 {
		long = cfg.Long
	}
}

// Reset restores the default deadlines.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	long = DefaultLong
}
