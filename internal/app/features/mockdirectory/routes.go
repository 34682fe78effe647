// internal/app/features/mockdirectory/routes.go
package mockdirectory

import (
	"net/http"

	"github.com/dalemusser/stratapulse/internal/app/system/apicors"
	"github.com/go-chi/chi/v5"
)

// Routes returns a router with the mock directory feed. The feed is
// cookie-free, so CORS is permissive.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(apicors.Middleware())
	r.Get("/users", h.Users)
	return r
}
