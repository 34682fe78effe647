// Package network extracts client addresses from incoming requests.
package network

import (
	"net"
	"net/http"
	"strings"
)

// GetClientIP returns the originating client IP for a request.
//
// Behind a reverse proxy the connection address is the proxy, so the
// forwarding headers win: the first entry of X-Forwarded-For, then
// X-Real-IP, then RemoteAddr with its port stripped. The headers are
// trusted as-is; this service is expected to sit behind its own proxy.
func GetClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		first, _, _ := strings.Cut(xff, ",")
		return strings.TrimSpace(first)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	// IPv6 brackets are stripped with the port.
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
