package mockdirectory

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/stratapulse/internal/domain/models"
	"go.uber.org/zap"
)

var now = time.Date(2025, 3, 23, 12, 0, 0, 0, time.UTC)

func TestGenerate(t *testing.T) {
	users := Generate(rand.New(rand.NewSource(1)), 40, now)

	if len(users) != 40 {
		t.Fatalf("len = %d, want 40", len(users))
	}

	validBrowsers := map[string]bool{"Chrome": true, "Safari": true, "Firefox": true, "Edge": true}

	for _, u := range users {
		if u.ID < 1 || u.Email == "" || u.Image == "" {
			t.Fatalf("incomplete user: %+v", u)
		}
		if u.Status != models.StatusOnline && u.Status != models.StatusAway {
			t.Errorf("status = %q", u.Status)
		}
		if u.Role != "Admin" && u.Role != models.DefaultRole {
			t.Errorf("role = %q", u.Role)
		}
		if len(u.LoginHistory) != eventsPerUser {
			t.Fatalf("user %d history = %d events, want %d", u.ID, len(u.LoginHistory), eventsPerUser)
		}
		for _, ev := range u.LoginHistory {
			if !models.IsValidDevice(ev.Device) {
				t.Errorf("device = %q", ev.Device)
			}
			if !validBrowsers[ev.Browser] {
				t.Errorf("browser = %q", ev.Browser)
			}
			if ev.Date.After(now) {
				t.Errorf("event in the future: %v", ev.Date)
			}
			if !u.LastActive.IsZero() && ev.Date.After(u.LastActive) {
				t.Errorf("event newer than LastActive: %v > %v", ev.Date, u.LastActive)
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a := Generate(rand.New(rand.NewSource(7)), 10, now)
	b := Generate(rand.New(rand.NewSource(7)), 10, now)

	for i := range a {
		if a[i].Email != b[i].Email || a[i].Role != b[i].Role {
			t.Fatalf("user %d differs across runs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestUsersEndpoint(t *testing.T) {
	h := NewHandler(zap.NewNop())
	h.now = func() time.Time { return now }

	rec := httptest.NewRecorder()
	h.Users(rec, httptest.NewRequest("GET", "/api/mock/users?count=12&seed=3", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var body struct {
		Users []models.User `json:"users"`
		Total int           `json:"total"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Total != 12 || len(body.Users) != 12 {
		t.Errorf("total = %d, users = %d, want 12", body.Total, len(body.Users))
	}
}

func TestUsersEndpoint_BadParams(t *testing.T) {
	h := NewHandler(zap.NewNop())

	for _, target := range []string{
		"/api/mock/users?count=0",
		"/api/mock/users?count=9999",
		"/api/mock/users?count=abc",
		"/api/mock/users?seed=abc",
	} {
		rec := httptest.NewRecorder()
		h.Users(rec, httptest.NewRequest("GET", target, nil))
		if rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", target, rec.Code)
		}
	}
}
