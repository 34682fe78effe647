// Package mockdirectory serves a generated user feed shaped like the
// real directory service. It exists for local development: point
// directory_url at this service's own /api/mock/users and the sync
// loop has data to chew on without any upstream.
//
// The endpoint is only mounted when mock_directory is enabled in
// configuration. It requires no session, so CORS can stay permissive.
package mockdirectory

import (
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dalemusser/stratapulse/internal/app/system/jsonutil"
	"github.com/dalemusser/stratapulse/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"go.uber.org/zap"
)

const (
	defaultUserCount = 50
	maxUserCount     = 500
	eventsPerUser    = 5
)

var (
	firstNames = []string{"Ada", "Grace", "Alan", "Edsger", "Barbara", "Donald", "Radia", "Ken", "Frances", "Dennis"}
	lastNames  = []string{"Lovelace", "Hopper", "Turing", "Dijkstra", "Liskov", "Knuth", "Perlman", "Thompson", "Allen", "Ritchie"}
	devices    = []string{models.DeviceDesktop, models.DeviceMobile, models.DeviceTablet}
	browsers   = []string{"Chrome", "Safari", "Firefox", "Edge"}
)

// Handler serves the generated directory feed.
type Handler struct {
	logger *zap.Logger
	now    func() time.Time
}

// NewHandler creates a new mock directory handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{
		logger: logger,
		now:    time.Now,
	}
}

// Users handles GET /api/mock/users. Optional parameters:
//   - count: number of users to generate (default 50, max 500)
//   - seed: RNG seed for a reproducible feed
func (h *Handler) Users(w http.ResponseWriter, r *http.Request) {
	count := defaultUserCount
	if v := query.Get(r, "count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > maxUserCount {
			jsonutil.BadRequest(w, fmt.Sprintf("count must be between 1 and %d", maxUserCount))
			return
		}
		count = n
	}

	rng := rand.New(rand.NewSource(h.now().UnixNano()))
	if v := query.Get(r, "seed"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			jsonutil.BadRequest(w, "seed must be an integer")
			return
		}
		rng = rand.New(rand.NewSource(seed))
	}

	users := Generate(rng, count, h.now())
	jsonutil.OK(w, map[string]any{"users": users, "total": len(users)})
}

// Generate builds count random users with login histories spread over
// the past 30 days. Deterministic for a given rng state and now.
func Generate(rng *rand.Rand, count int, now time.Time) []models.User {
	users := make([]models.User, count)
	for i := range users {
		id := i + 1
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		email := strings.ToLower(fmt.Sprintf("%s.%s.%d@example.com", first, last, id))

		role := models.DefaultRole
		if rng.Intn(5) == 0 { // roughly one in five is an admin
			role = "Admin"
		}
		status := models.StatusOnline
		if rng.Intn(2) == 0 {
			status = models.StatusAway
		}

		history := make([]models.LoginEvent, eventsPerUser)
		var lastActive time.Time
		for j := range history {
			at := now.Add(-time.Duration(rng.Intn(30*24)) * time.Hour)
			history[j] = models.LoginEvent{
				ID:      j + 1,
				Date:    at.UTC(),
				Device:  devices[rng.Intn(len(devices))],
				Browser: browsers[rng.Intn(len(browsers))],
				IP:      randomIP(rng),
			}
			if at.After(lastActive) {
				lastActive = at
			}
		}

		users[i] = models.User{
			ID:           id,
			FirstName:    first,
			LastName:     last,
			Email:        email,
			Image:        "https://robohash.org/" + email,
			Status:       status,
			Role:         role,
			LastActive:   lastActive.UTC(),
			LoginHistory: history,
		}
	}
	return users
}

func randomIP(rng *rand.Rand) string {
	return fmt.Sprintf("%d.%d.%d.%d",
		rng.Intn(223)+1, rng.Intn(256), rng.Intn(256), rng.Intn(254)+1)
}
