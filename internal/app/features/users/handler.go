// Package users provides the user roster API: listing and searching the
// working set, creating and patching accounts, and recording login events.
//
// Endpoints (mounted at /api/users):
//   - GET  /api/users            - list users, optional ?q= search
//   - POST /api/users            - add a user to the working set
//   - GET  /api/users/{id}       - user detail with activity stats
//   - PATCH /api/users/{id}      - partial update
//   - POST /api/users/{id}/logins - record a login event
package users

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	userstore "github.com/dalemusser/stratapulse/internal/app/store/users"
	"github.com/dalemusser/stratapulse/internal/app/system/jsonutil"
	"github.com/dalemusser/stratapulse/internal/app/system/loginstats"
	"github.com/dalemusser/stratapulse/internal/app/system/network"
	"github.com/dalemusser/stratapulse/internal/app/system/normalize"
	"github.com/dalemusser/stratapulse/internal/app/system/sanitize"
	"github.com/dalemusser/stratapulse/internal/app/system/suspicion"
	"github.com/dalemusser/stratapulse/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/mileusna/useragent"
	"go.uber.org/zap"
)

// recentWindow is the span shown as "recent activity" on the detail view.
const recentWindow = 72 * time.Hour

// Handler handles user roster API requests.
type Handler struct {
	store    *userstore.Store
	validate *validator.Validate
	logger   *zap.Logger
	now      func() time.Time
}

// NewHandler creates a new users handler.
func NewHandler(store *userstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		store:    store,
		validate: validator.New(),
		logger:   logger,
		now:      time.Now,
	}
}

// List handles GET /api/users. The optional ?q= parameter filters by
// name, email, or role.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := query.Get(r, "q")
	found := h.store.Search(q)
	if found == nil {
		found = []models.User{}
	}
	jsonutil.OK(w, listResponse{Users: found, Total: len(found)})
}

// Create handles POST /api/users. Missing optional fields get the same
// defaults the dashboard's add-user form uses.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in createUserInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}

	in.FirstName = sanitize.Field(in.FirstName)
	in.LastName = sanitize.Field(in.LastName)
	in.Email = normalize.Email(in.Email)
	in.Status = normalize.Status(in.Status)
	in.Role = normalize.Role(in.Role)

	if err := h.validate.Struct(in); err != nil {
		jsonutil.ValidationError(w, fieldErrors(err))
		return
	}

	u := models.User{
		ID:        in.ID,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Image:     in.Image,
		Status:    in.Status,
		Role:      in.Role,
	}
	if u.Image == "" {
		u.Image = fmt.Sprintf("https://robohash.org/%s", u.Email)
	}
	if u.Status == "" {
		u.Status = models.StatusOnline
	}
	if u.Role == "" {
		u.Role = models.DefaultRole
	}

	created, err := h.store.Create(u)
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateID) {
			jsonutil.Conflict(w, "a user with this ID already exists")
			return
		}
		h.logger.Error("failed to create user", zap.Error(err))
		jsonutil.InternalError(w, "failed to create user")
		return
	}

	h.logger.Info("user created",
		zap.Int("user_id", created.ID),
		zap.String("email", created.Email))
	jsonutil.Created(w, created)
}

// Get handles GET /api/users/{id}. The response pairs the user record
// with computed activity figures for the detail view.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	u, err := h.store.GetByID(id)
	if err != nil {
		jsonutil.NotFound(w, "user not found")
		return
	}

	now := h.now()
	buckets := loginstats.BucketByDay(u.LoginHistory, suspicion.Window, now)
	freq := loginFrequency{
		Days:   make([]string, len(buckets)),
		Counts: make([]int, len(buckets)),
	}
	for i, b := range buckets {
		freq.Days[i] = b.Day
		freq.Counts[i] = b.Count
	}

	verdict := suspicion.Classify(u, now)

	jsonutil.OK(w, detailResponse{
		User: u,
		Stats: userStats{
			Logins72h:       loginstats.CountInWindow(u.LoginHistory, recentWindow, now),
			Logins30d:       loginstats.CountInWindow(u.LoginHistory, suspicion.Window, now),
			Frequency:       freq,
			Suspicion:       verdict,
			AvgLoginsPerDay: int(math.Round(verdict.Stats.AvgLoginsPerDay)),
		},
	})
}

// Patch handles PATCH /api/users/{id}. Absent fields keep their values.
func (h *Handler) Patch(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var in patchUserInput
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON payload")
		return
	}

	if in.FirstName != nil {
		v := sanitize.Field(*in.FirstName)
		in.FirstName = &v
	}
	if in.LastName != nil {
		v := sanitize.Field(*in.LastName)
		in.LastName = &v
	}
	if in.Email != nil {
		v := normalize.Email(*in.Email)
		in.Email = &v
	}
	if in.Status != nil {
		v := normalize.Status(*in.Status)
		in.Status = &v
	}
	if in.Role != nil {
		v := normalize.Role(*in.Role)
		in.Role = &v
	}

	if err := h.validate.Struct(in); err != nil {
		jsonutil.ValidationError(w, fieldErrors(err))
		return
	}

	updated, err := h.store.Patch(id, userstore.Update{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Image:     in.Image,
		Status:    in.Status,
		Role:      in.Role,
	})
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			jsonutil.NotFound(w, "user not found")
			return
		}
		h.logger.Error("failed to patch user", zap.Int("user_id", id), zap.Error(err))
		jsonutil.InternalError(w, "failed to update user")
		return
	}

	jsonutil.OK(w, updated)
}

// RecordLogin handles POST /api/users/{id}/logins. Device and browser
// default to values parsed from the User-Agent header, the IP to the
// client address, and the date to the current time.
func (h *Handler) RecordLogin(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathID(w, r)
	if !ok {
		return
	}

	var in recordLoginInput
	if r.ContentLength > 0 {
		if err := jsonutil.Decode(r, &in); err != nil {
			jsonutil.BadRequest(w, "invalid JSON payload")
			return
		}
	}
	if err := h.validate.Struct(in); err != nil {
		jsonutil.ValidationError(w, fieldErrors(err))
		return
	}

	ev := models.LoginEvent{
		Device:  in.Device,
		Browser: in.Browser,
		IP:      in.IP,
	}
	if in.Date != nil {
		ev.Date = in.Date.UTC()
	} else {
		ev.Date = h.now().UTC()
	}

	if ev.Device == "" || ev.Browser == "" {
		ua := useragent.Parse(r.UserAgent())
		if ev.Device == "" {
			ev.Device = deviceFromUA(ua)
		}
		if ev.Browser == "" {
			ev.Browser = ua.Name
		}
	}
	if ev.IP == "" {
		ev.IP = network.GetClientIP(r)
	}

	stored, err := h.store.AppendLogin(id, ev)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			jsonutil.NotFound(w, "user not found")
			return
		}
		h.logger.Error("failed to record login", zap.Int("user_id", id), zap.Error(err))
		jsonutil.InternalError(w, "failed to record login")
		return
	}

	h.logger.Debug("login recorded",
		zap.Int("user_id", id),
		zap.Int("event_id", stored.ID),
		zap.String("device", stored.Device))
	jsonutil.Created(w, stored)
}

// pathID parses the {id} path parameter, writing a 400 on failure.
func (h *Handler) pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil || id < 1 {
		jsonutil.BadRequest(w, "invalid user ID")
		return 0, false
	}
	return id, true
}

// deviceFromUA maps a parsed user agent to a device class.
func deviceFromUA(ua useragent.UserAgent) string {
	switch {
	case ua.Mobile:
		return models.DeviceMobile
	case ua.Tablet:
		return models.DeviceTablet
	default:
		return models.DeviceDesktop
	}
}

// fieldErrors flattens validator errors into a field -> message map.
func fieldErrors(err error) map[string]string {
	out := make(map[string]string)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			out[fe.Field()] = "failed " + fe.Tag() + " validation"
		}
		return out
	}
	out["body"] = err.Error()
	return out
}
