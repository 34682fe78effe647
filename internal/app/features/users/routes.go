// internal/app/features/users/routes.go
package users

import (
	"net/http"

	"github.com/dalemusser/stratapulse/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes returns a router with the user roster endpoints. All routes
// require a signed-in operator.
func Routes(h *Handler, sm *auth.SessionManager) http.Handler {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)

	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Route("/{id}", func(sr chi.Router) {
		sr.Get("/", h.Get)
		sr.Patch("/", h.Patch)
		sr.Post("/logins", h.RecordLogin)
	})

	return r
}
