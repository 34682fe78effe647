// Package sync provides the manual directory refresh endpoint.
//
// POST /api/sync pulls the current user list from the directory service
// and replaces the in-memory working set with it. Local edits made since
// the last sync are discarded; the directory is the system of record.
package sync

import (
	"context"
	"net/http"

	userstore "github.com/dalemusser/stratapulse/internal/app/store/users"
	"github.com/dalemusser/stratapulse/internal/app/system/auth"
	"github.com/dalemusser/stratapulse/internal/app/system/jsonutil"
	"github.com/dalemusser/stratapulse/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler handles manual sync requests.
type Handler struct {
	store   *userstore.Store
	fetcher *userstore.Fetcher
	logger  *zap.Logger
}

// NewHandler creates a new sync handler.
func NewHandler(store *userstore.Store, fetcher *userstore.Fetcher, logger *zap.Logger) *Handler {
	return &Handler{
		store:   store,
		fetcher: fetcher,
		logger:  logger,
	}
}

// Routes returns a router with the sync endpoint. The refresh discards
// local edits, so it is restricted to operators holding the given role.
func Routes(h *Handler, sm *auth.SessionManager, role string) http.Handler {
	r := chi.NewRouter()
	r.Use(sm.RequireRole(role))
	r.Post("/", h.Sync)
	return r
}

// Sync handles POST /api/sync. An unreachable or malformed upstream
// maps to 502 and leaves the working set untouched.
func (h *Handler) Sync(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	n, err := h.fetcher.Sync(ctx, h.store)
	if err != nil {
		h.logger.Error("manual directory sync failed", zap.Error(err))
		jsonutil.BadGateway(w, "directory service unavailable")
		return
	}

	jsonutil.OK(w, map[string]any{
		"synced":   n,
		"lastSync": h.store.LastSync(),
	})
}
