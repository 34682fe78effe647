// internal/app/system/requestlog/requestlog.go

// Package requestlog provides structured HTTP request logging with
// per-request IDs. Every request gets a UUID that is echoed back in the
// X-Request-ID response header so operators can correlate client reports
// with server logs.
package requestlog

import (
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/stratapulse/internal/app/system/auth"
	"github.com/dalemusser/stratapulse/internal/app/system/network"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Config holds configuration for the request log middleware.
type Config struct {
	// Logger receives one entry per completed request.
	Logger *zap.Logger

	// ExcludePaths is a list of path prefixes to skip.
	// Common examples: "/health", "/static"
	ExcludePaths []string
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig(logger *zap.Logger) Config {
	return Config{
		Logger: logger,
		ExcludePaths: []string{
			"/health",
			"/static",
			"/favicon.ico",
		},
	}
}

// Middleware returns HTTP middleware that logs each request with its
// status, duration, and request ID. Responses with status >= 500 log at
// error level, >= 400 at warn, everything else at info.
func Middleware(cfg Config) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path
			for _, prefix := range cfg.ExcludePaths {
				if strings.HasPrefix(path, prefix) {
					next.ServeHTTP(w, r)
					return
				}
			}

			// Honor a client-provided request ID, otherwise mint one.
			requestID := r.Header.Get("X-Request-ID")
			if requestID == "" {
				requestID = uuid.New().String()
			}
			w.Header().Set("X-Request-ID", requestID)

			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			fields := []zap.Field{
				zap.String("request_id", requestID),
				zap.String("method", r.Method),
				zap.String("path", path),
				zap.Int("status", sw.status),
				zap.Duration("duration", time.Since(start)),
				zap.String("client_ip", network.GetClientIP(r)),
			}
			if u, ok := auth.CurrentUser(r); ok {
				fields = append(fields, zap.String("user_id", u.ID))
			}

			switch {
			case sw.status >= 500:
				cfg.Logger.Error("request failed", fields...)
			case sw.status >= 400:
				cfg.Logger.Warn("request rejected", fields...)
			default:
				cfg.Logger.Info("request", fields...)
			}
		})
	}
}

// statusWriter captures the response status code.
type statusWriter struct {
	http.ResponseWriter
	status int
	wrote  bool
}

func (w *statusWriter) WriteHeader(status int) {
	if !w.wrote {
		w.status = status
		w.wrote = true
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	w.wrote = true
	return w.ResponseWriter.Write(b)
}
