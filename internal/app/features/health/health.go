// internal/app/features/health/health.go
package health

import (
	"context"
	"encoding/json"
	"net/http"

	userstore "github.com/dalemusser/stratapulse/internal/app/store/users"
	"github.com/dalemusser/stratapulse/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler provides health check endpoints.
type Handler struct {
	store        *userstore.Store
	directoryURL string
	client       *http.Client
	logger       *zap.Logger
}

// NewHandler creates a new health check Handler.
func NewHandler(store *userstore.Store, directoryURL string, logger *zap.Logger) *Handler {
	return &Handler{
		store:        store,
		directoryURL: directoryURL,
		client:       &http.Client{},
		logger:       logger,
	}
}

// Response represents the health check response.
type Response struct {
	Status   string            `json:"status"`
	Services map[string]string `json:"services,omitempty"`
}

// Routes returns a chi.Router with health check routes mounted.
// Provides /health (full check), /health/ready, and /health/live.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Check)
	r.Get("/ready", h.Ready)
	r.Get("/live", h.Live)
	return r
}

// MountRootEndpoints adds /ready and /livez endpoints directly on the root router.
// This is the standard convention for Kubernetes probes:
//   - /ready (or /readyz) - readiness probe
//   - /livez - liveness probe
func MountRootEndpoints(r chi.Router, h *Handler) {
	r.Get("/ready", h.Ready)
	r.Get("/readyz", h.Ready)
	r.Get("/livez", h.Live)
}

// Check performs a full health check including directory reachability.
func (h *Handler) Check(w http.ResponseWriter, r *http.Request) {
	resp := Response{
		Status:   "ok",
		Services: make(map[string]string),
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	if err := h.pingDirectory(ctx); err != nil {
		resp.Status = "degraded"
		resp.Services["directory"] = "unavailable"
		h.logger.Warn("health check: directory ping failed", zap.Error(err))
	} else {
		resp.Services["directory"] = "ok"
	}

	if h.store.LastSync().IsZero() {
		resp.Services["working_set"] = "not synced"
	} else {
		resp.Services["working_set"] = "ok"
	}

	w.Header().Set("Content-Type", "application/json")
	if resp.Status != "ok" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(resp)
}

// Ready checks if the service is ready to accept requests. The service
// is not ready until the working set has completed at least one sync.
// Used by Kubernetes readiness probes.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.store.LastSync().IsZero() {
		h.logger.Warn("readiness check failed: working set never synced")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte(`{"status":"not ready"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ready"}`))
}

// Live checks if the service is alive.
// Used by Kubernetes liveness probes.
func (h *Handler) Live(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"alive"}`))
}

// pingDirectory issues a HEAD request to the directory service.
func (h *Handler) pingDirectory(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, h.directoryURL, nil)
	if err != nil {
		return err
	}
	resp, err := h.client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
