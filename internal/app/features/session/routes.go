// internal/app/features/session/routes.go
package session

import "github.com/go-chi/chi/v5"

// Mount attaches the session endpoints directly on the parent router.
// Login and logout live at the root; the session probe sits under /api
// alongside the resources it gates.
func Mount(r chi.Router, h *Handler) {
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	r.Get("/api/session", h.Current)
}
