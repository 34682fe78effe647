// Package session provides operator sign-in for the dashboard API.
//
// The service has a single operator credential configured at startup;
// there is no user registration. A successful login sets the session
// cookie that gates every /api route.
//
// Endpoints:
//   - POST /login       - sign in with email and password
//   - POST /logout      - destroy the session
//   - GET  /api/session - current operator, 401 when signed out
package session

import (
	"net/http"
	"time"

	"github.com/dalemusser/stratapulse/internal/app/system/auth"
	"github.com/dalemusser/stratapulse/internal/app/system/authutil"
	"github.com/dalemusser/stratapulse/internal/app/system/jsonutil"
	"github.com/dalemusser/stratapulse/internal/app/system/network"
	"github.com/dalemusser/stratapulse/internal/app/system/normalize"
	"go.uber.org/zap"
)

// Operator holds the configured operator credential and identity.
type Operator struct {
	LoginID      string // normalized email the operator signs in with
	PasswordHash string // bcrypt hash of the operator password
	Name         string
	Role         string
}

// Handler handles operator session requests.
type Handler struct {
	sm       *auth.SessionManager
	operator Operator
	logger   *zap.Logger
}

// NewHandler creates a new session handler.
func NewHandler(sm *auth.SessionManager, operator Operator, logger *zap.Logger) *Handler {
	operator.LoginID = normalize.Email(operator.LoginID)
	return &Handler{
		sm:       sm,
		operator: operator,
		logger:   logger,
	}
}

type loginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type sessionUserBody struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Login handles POST /login. Invalid credentials get a uniform 401 so
// the response does not reveal whether the email matched.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var in loginInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}

	email := normalize.Email(in.Email)
	if email == "" || in.Password == "" {
		jsonutil.BadRequest(w, "email and password are required")
		return
	}

	if email != h.operator.LoginID || !authutil.CheckPassword(in.Password, h.operator.PasswordHash) {
		h.logger.Warn("failed login attempt",
			zap.String("email", email),
			zap.String("client_ip", network.GetClientIP(r)))
		jsonutil.Unauthorized(w, "invalid email or password")
		return
	}

	if err := h.sm.CreateSession(w, r, auth.OperatorID, h.operator.Role, ""); err != nil {
		h.logger.Error("failed to create session", zap.Error(err))
		jsonutil.InternalError(w, "failed to create session")
		return
	}

	h.logger.Info("operator signed in",
		zap.String("email", email),
		zap.String("client_ip", network.GetClientIP(r)))

	jsonutil.OK(w, map[string]any{
		"user": sessionUserBody{
			ID:    auth.OperatorID,
			Name:  h.operator.Name,
			Email: h.operator.LoginID,
			Role:  h.operator.Role,
		},
		"loggedInAt": time.Now().UTC(),
	})
}

// Logout handles POST /logout. Always succeeds, signed in or not.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.sm.DestroySession(w, r)
	jsonutil.NoContent(w)
}

// Current handles GET /api/session.
func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		jsonutil.Unauthorized(w, "not signed in")
		return
	}
	jsonutil.OK(w, map[string]any{
		"user": sessionUserBody{
			ID:    u.ID,
			Name:  u.Name,
			Email: u.Email,
			Role:  u.Role,
		},
	})
}
