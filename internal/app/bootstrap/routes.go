// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"strings"
	"time"

	healthfeature "github.com/dalemusser/stratapulse/internal/app/features/health"
	mockdirectoryfeature "github.com/dalemusser/stratapulse/internal/app/features/mockdirectory"
	overviewfeature "github.com/dalemusser/stratapulse/internal/app/features/overview"
	sessionfeature "github.com/dalemusser/stratapulse/internal/app/features/session"
	syncfeature "github.com/dalemusser/stratapulse/internal/app/features/sync"
	usersfeature "github.com/dalemusser/stratapulse/internal/app/features/users"
	"github.com/dalemusser/stratapulse/internal/app/system/auth"
	"github.com/dalemusser/stratapulse/internal/app/system/authutil"
	"github.com/dalemusser/stratapulse/internal/app/system/jsonutil"
	"github.com/dalemusser/stratapulse/internal/app/system/requestlog"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/middleware"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, backend setup, and any Startup
// hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: the in-memory store and directory fetcher
//   - logger: the fully configured zap.Logger for this app
//
// Route map:
//   - POST /login, POST /logout            session endpoints (no auth)
//   - GET  /api/session                    current operator
//   - GET  /api/csrf                       CSRF token for the SPA
//   - /api/users, /api/overview, /api/sync session-gated JSON API
//   - /api/mock/users                      mock directory feed (dev only)
//   - /health, /readyz, /livez             probes
//   - /static/*                            SPA assets
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps Deps, logger *zap.Logger) (http.Handler, error) {
	// Create the session manager using app config.
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// LoadSessionUser resolves the session cookie to the configured
	// operator on each request.
	sessionMgr.SetUserFetcher(&auth.StaticFetcher{
		Name:  appCfg.OperatorName,
		Email: appCfg.OperatorEmail,
		Role:  appCfg.OperatorRole,
	})

	// The operator password is configured in plain text and hashed once
	// at startup so login compares against a bcrypt hash like any other
	// credential check.
	passwordHash, err := authutil.HashPassword(appCfg.OperatorPassword)
	if err != nil {
		logger.Error("operator password hash failed", zap.Error(err))
		return nil, err
	}

	r := chi.NewRouter()

	// ─────────────────────────────────────────────────────────────────────────────
	// Global Middleware (applies to ALL routes)
	// ─────────────────────────────────────────────────────────────────────────────

	// Request timeout middleware: prevents requests from hanging indefinitely.
	r.Use(chimw.Timeout(30 * time.Second))

	// CORS middleware: must be early in the chain to handle preflight requests.
	r.Use(middleware.CORSFromConfig(coreCfg))

	// Security headers middleware: adds X-Frame-Options, X-Content-Type-Options, etc.
	r.Use(middleware.SecurityHeadersFromConfig(coreCfg))

	// Request logging with request IDs. Probes and static assets are
	// excluded to keep the log readable.
	r.Use(requestlog.Middleware(requestlog.DefaultConfig(logger)))

	// Session middleware: loads SessionUser into context if logged in.
	r.Use(sessionMgr.LoadSessionUser)

	// CSRF protection middleware with path-based exemption for routes
	// that are not driven by the signed-in SPA. Cookie name is
	// "stratapulse_csrf" to avoid collisions with other services on the
	// same domain.
	csrfOpts := []csrf.Option{
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.CookieName("stratapulse_csrf"),
		csrf.FieldName("csrf_token"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			logger.Warn("CSRF validation failed",
				zap.String("path", req.URL.Path),
				zap.String("method", req.Method),
				zap.String("reason", csrf.FailureReason(req).Error()),
			)
			jsonutil.Forbidden(w, "CSRF token invalid or missing")
		})),
	}
	// In dev mode, trust localhost origins for CSRF validation.
	if !secure {
		csrfOpts = append(csrfOpts, csrf.TrustedOrigins([]string{
			"localhost:8080",
			"localhost:3000",
			"127.0.0.1:8080",
			"127.0.0.1:3000",
		}))
	}
	if appCfg.SessionDomain != "" {
		csrfOpts = append(csrfOpts, csrf.Domain(appCfg.SessionDomain))
	}
	csrfProtect := csrf.Protect([]byte(appCfg.CSRFKey), csrfOpts...)

	// Wrap CSRF middleware to skip for:
	// - the login endpoint (the SPA has no token before signing in)
	// - the mock directory feed (consumed by the fetcher, not a browser)
	// - health probes
	csrfMiddleware := func(next http.Handler) http.Handler {
		csrfHandler := csrfProtect(next)
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			path := req.URL.Path
			switch {
			case path == "/login",
				path == "/readyz", path == "/livez",
				strings.HasPrefix(path, "/api/mock/"),
				strings.HasPrefix(path, "/health"):
				next.ServeHTTP(w, req)
				return
			}
			csrfHandler.ServeHTTP(w, req)
		})
	}
	r.Use(csrfMiddleware)

	// ─────────────────────────────────────────────────────────────────────────────
	// Routes
	// ─────────────────────────────────────────────────────────────────────────────

	// Operator session: POST /login, POST /logout, GET /api/session.
	sessionHandler := sessionfeature.NewHandler(sessionMgr, sessionfeature.Operator{
		LoginID:      appCfg.OperatorEmail,
		PasswordHash: passwordHash,
		Name:         appCfg.OperatorName,
		Role:         appCfg.OperatorRole,
	}, logger)
	sessionfeature.Mount(r, sessionHandler)

	// CSRF token for the SPA. Safe method, so the csrf middleware only
	// sets the cookie; the SPA sends the token back in X-CSRF-Token.
	r.Get("/api/csrf", func(w http.ResponseWriter, req *http.Request) {
		jsonutil.OK(w, map[string]string{"csrfToken": csrf.Token(req)})
	})

	// User accounts and login activity.
	usersHandler := usersfeature.NewHandler(deps.Users, logger)
	r.Mount("/api/users", usersfeature.Routes(usersHandler, sessionMgr))

	// Dashboard aggregates.
	overviewHandler := overviewfeature.NewHandler(deps.Users, logger)
	r.Mount("/api/overview", overviewfeature.Routes(overviewHandler, sessionMgr))

	// Manual directory refresh. Discards local edits, so it requires the
	// operator role on top of a valid session.
	syncHandler := syncfeature.NewHandler(deps.Users, deps.Fetcher, logger)
	r.Mount("/api/sync", syncfeature.Routes(syncHandler, sessionMgr, appCfg.OperatorRole))

	// Mock directory feed. Only mounted when enabled; production points
	// DirectoryURL at a real directory service instead.
	if appCfg.MockDirectory {
		mockHandler := mockdirectoryfeature.NewHandler(logger)
		r.Mount("/api/mock", mockdirectoryfeature.Routes(mockHandler))
		logger.Info("mock directory enabled", zap.String("path", "/api/mock/users"))
	}

	// Health check endpoints for load balancers and orchestrators.
	healthHandler := healthfeature.NewHandler(deps.Users, appCfg.DirectoryURL, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	healthfeature.MountRootEndpoints(r, healthHandler)

	// Static assets with pre-compressed file support (gzip/brotli).
	// /static/* serves the dashboard SPA bundle from disk.
	r.Handle("/static/*", fileserver.Handler("/static", "static"))

	// Everything else is a JSON API miss, not an HTML page.
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		jsonutil.NotFound(w, "not found")
	})

	return r, nil
}
