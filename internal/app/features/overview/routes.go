// internal/app/features/overview/routes.go
package overview

import (
	"net/http"

	"github.com/dalemusser/stratapulse/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns a router with the overview endpoints. All routes
// require a signed-in operator.
func Routes(h *Handler, sm *auth.SessionManager) http.Handler {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)

	r.Get("/", h.Summary)
	r.Get("/trend", h.Trend)
	r.Get("/suspicious", h.Suspicious)

	return r
}
