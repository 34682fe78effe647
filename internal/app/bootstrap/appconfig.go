// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
//
// AppConfig is where everything specific to this application lives:
// the upstream directory feed, the background sync schedule, session
// and CSRF secrets, and the single operator credential.
type AppConfig struct {
	// User directory feed
	DirectoryURL  string // URL of the upstream user directory feed
	MockDirectory bool   // serve the built-in mock directory at /api/mock

	// Background sync
	SyncEnabled  bool          // refresh the working set on a schedule
	SyncInterval time.Duration // interval between directory syncs (default: 1h)

	// Session management configuration
	SessionKey    string        // Secret key for signing session cookies (must be strong in production)
	SessionName   string        // Cookie name for sessions (default: stratapulse-session)
	SessionDomain string        // Cookie domain (blank means current host)
	SessionMaxAge time.Duration // Maximum session cookie lifetime (default: 24h)

	// CSRF protection configuration
	CSRFKey string // Secret key for CSRF token signing (32 bytes, must be strong in production)

	// Operator credential
	OperatorEmail    string // email the operator signs in with
	OperatorPassword string // operator password, hashed at startup
	OperatorName     string // display name for the operator
	OperatorRole     string // role granted to the operator session
}
