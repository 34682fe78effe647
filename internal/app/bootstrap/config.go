// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"net/url"
	"time"

	"github.com/dalemusser/stratapulse/internal/app/system/authutil"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// EnvVarPrefix is the prefix for environment variables.
// Change this constant when forking stratapulse for a new project.
const EnvVarPrefix = "STRATAPULSE"

// appConfigKeys defines the configuration keys for this application.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: directory_url, session_name, etc.
//   - Environment variables: STRATAPULSE_DIRECTORY_URL, STRATAPULSE_SESSION_NAME, etc.
//   - Command-line flags: --directory_url, --session_name, etc.
var appConfigKeys = []config.AppKey{
	// User directory feed
	{Name: "directory_url", Default: "http://localhost:8080/api/mock/users", Desc: "URL of the upstream user directory feed"},
	{Name: "mock_directory", Default: true, Desc: "Serve the built-in mock directory at /api/mock (dev only)"},

	// Background sync
	{Name: "sync_enabled", Default: true, Desc: "Refresh the working set from the directory on a schedule"},
	{Name: "sync_interval", Default: "1h", Desc: "Interval between directory syncs (e.g., 15m, 1h)"},

	// Session configuration
	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "stratapulse-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "session_max_age", Default: "24h", Desc: "Session cookie max age (e.g., 24h, 720h, 30m)"},

	{Name: "csrf_key", Default: "dev-only-csrf-key-please-change-0123456789", Desc: "CSRF token signing key (32+ chars in production)"},

	// Operator credential. The dashboard has a single configured operator;
	// there is no user registration.
	{Name: "operator_email", Default: "admin@example.com", Desc: "Email the operator signs in with"},
	{Name: "operator_password", Default: "change-me", Desc: "Operator password (change in production)"},
	{Name: "operator_name", Default: "Operator", Desc: "Display name for the operator"},
	{Name: "operator_role", Default: "admin", Desc: "Role granted to the operator session"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// CoreConfig comes from the shared WAFFLE layer; AppConfig is specific
// to this app and can be extended as the app grows.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, STRATAPULSE_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, EnvVarPrefix, appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		DirectoryURL:  appValues.String("directory_url"),
		MockDirectory: appValues.Bool("mock_directory"),

		SyncEnabled:  appValues.Bool("sync_enabled"),
		SyncInterval: appValues.Duration("sync_interval", time.Hour),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),
		SessionMaxAge: appValues.Duration("session_max_age", 24*time.Hour),

		CSRFKey: appValues.String("csrf_key"),

		OperatorEmail:    appValues.String("operator_email"),
		OperatorPassword: appValues.String("operator_password"),
		OperatorName:     appValues.String("operator_name"),
		OperatorRole:     appValues.String("operator_role"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// This is the right place to enforce required fields or invariants that
// involve both the core and app configs.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	u, err := url.Parse(appCfg.DirectoryURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		logger.Error("invalid directory URL", zap.String("directory_url", appCfg.DirectoryURL))
		return fmt.Errorf("invalid directory URL %q: must be an absolute http(s) URL", appCfg.DirectoryURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid directory URL scheme %q: must be http or https", u.Scheme)
	}

	if appCfg.SyncEnabled && appCfg.SyncInterval < time.Minute {
		return fmt.Errorf("sync interval %s is too short: minimum is 1m", appCfg.SyncInterval)
	}

	if appCfg.OperatorEmail == "" || appCfg.OperatorPassword == "" {
		return fmt.Errorf("operator_email and operator_password must be set")
	}

	if coreCfg.Env == "prod" {
		if appCfg.OperatorPassword == "change-me" {
			return fmt.Errorf("default operator password is not allowed in production")
		}
		if err := authutil.ValidatePassword(appCfg.OperatorPassword); err != nil {
			return fmt.Errorf("operator password rejected: %w", err)
		}
		if appCfg.MockDirectory {
			logger.Warn("mock directory is enabled in production; the /api/mock feed is unauthenticated")
		}
	}

	return nil
}
