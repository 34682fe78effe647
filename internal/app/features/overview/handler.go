// Package overview provides the dashboard summary API: population-wide
// login totals, the most recently active users, the daily login trend,
// and the list of suspicious accounts.
//
// Endpoints (mounted at /api/overview):
//   - GET /api/overview            - headline numbers and top users
//   - GET /api/overview/trend      - daily login trend across all users
//   - GET /api/overview/suspicious - accounts flagged by the classifier
package overview

import (
	"net/http"
	"time"

	userstore "github.com/dalemusser/stratapulse/internal/app/store/users"
	"github.com/dalemusser/stratapulse/internal/app/system/jsonutil"
	"github.com/dalemusser/stratapulse/internal/app/system/loginstats"
	"github.com/dalemusser/stratapulse/internal/app/system/suspicion"
	"github.com/dalemusser/stratapulse/internal/domain/models"
	"go.uber.org/zap"
)

// topUserCount is how many recently active users the summary lists.
const topUserCount = 5

// Handler handles dashboard overview requests.
type Handler struct {
	store  *userstore.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewHandler creates a new overview handler.
func NewHandler(store *userstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// userSummary is the compact user shape used in overview responses.
type userSummary struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Image      string    `json:"image"`
	Status     string    `json:"status"`
	Role       string    `json:"role"`
	LastActive time.Time `json:"lastActive"`
}

func summarize(u models.User) userSummary {
	return userSummary{
		ID:         u.ID,
		Name:       u.FullName(),
		Email:      u.Email,
		Image:      u.Image,
		Status:     u.Status,
		Role:       u.Role,
		LastActive: u.LastActive,
	}
}

// summaryResponse is the body of GET /api/overview.
type summaryResponse struct {
	TotalUsers      int           `json:"totalUsers"`
	TotalLogins30d  int           `json:"totalLogins30d"`
	SuspiciousCount int           `json:"suspiciousCount"`
	TopByLastActive []userSummary `json:"topByLastActive"`
	LastSync        time.Time     `json:"lastSync"`
}

// Summary handles GET /api/overview.
func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	now := h.now()
	users := h.store.Snapshot()

	suspiciousCount := 0
	for _, u := range users {
		if suspicion.Classify(u, now).Suspicious {
			suspiciousCount++
		}
	}

	top := loginstats.TopByLastActive(users, topUserCount)
	topSummaries := make([]userSummary, len(top))
	for i, u := range top {
		topSummaries[i] = summarize(u)
	}

	jsonutil.OK(w, summaryResponse{
		TotalUsers:      len(users),
		TotalLogins30d:  loginstats.SumAcrossUsers(users, suspicion.Window, now),
		SuspiciousCount: suspiciousCount,
		TopByLastActive: topSummaries,
		LastSync:        h.store.LastSync(),
	})
}

// trendResponse is the body of GET /api/overview/trend: parallel arrays
// over every day that has at least one login, ascending.
type trendResponse struct {
	Days   []string `json:"days"`
	Counts []int    `json:"counts"`
}

// Trend handles GET /api/overview/trend.
func (h *Handler) Trend(w http.ResponseWriter, r *http.Request) {
	buckets := loginstats.DailyLoginTrend(h.store.Snapshot())

	resp := trendResponse{
		Days:   make([]string, len(buckets)),
		Counts: make([]int, len(buckets)),
	}
	for i, b := range buckets {
		resp.Days[i] = b.Day
		resp.Counts[i] = b.Count
	}
	jsonutil.OK(w, resp)
}

// suspiciousEntry pairs a flagged user with the stats that flagged them.
type suspiciousEntry struct {
	User  userSummary     `json:"user"`
	Stats suspicion.Stats `json:"stats"`
}

// suspiciousResponse is the body of GET /api/overview/suspicious.
type suspiciousResponse struct {
	Users []suspiciousEntry `json:"users"`
	Total int               `json:"total"`
}

// Suspicious handles GET /api/overview/suspicious.
func (h *Handler) Suspicious(w http.ResponseWriter, r *http.Request) {
	now := h.now()

	flagged := []suspiciousEntry{}
	for _, u := range h.store.Snapshot() {
		res := suspicion.Classify(u, now)
		if res.Suspicious {
			flagged = append(flagged, suspiciousEntry{
				User:  summarize(u),
				Stats: res.Stats,
			})
		}
	}

	jsonutil.OK(w, suspiciousResponse{Users: flagged, Total: len(flagged)})
}
