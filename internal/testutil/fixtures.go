package testutil

import (
	"fmt"
	"time"

	"github.com/dalemusser/stratapulse/internal/domain/models"
)

// FixedNow is a stable reference time for deterministic window math in
// tests: 2025-03-23 12:00 UTC.
var FixedNow = time.Date(2025, 3, 23, 12, 0, 0, 0, time.UTC)

// User builds a minimal user record with the given ID.
func User(id int) models.User {
	return models.User{
		ID:        id,
		FirstName: fmt.Sprintf("First%d", id),
		LastName:  fmt.Sprintf("Last%d", id),
		Email:     fmt.Sprintf("user%d@example.com", id),
		Image:     fmt.Sprintf("https://robohash.org/user%d@example.com", id),
		Status:    models.StatusOnline,
		Role:      models.DefaultRole,
	}
}

// LoginEvent builds a login event daysAgo days before FixedNow. Multiple
// events on the same day get distinct timestamps via seq minutes. Events
// are anchored an hour before FixedNow so day-0 events stay at or before
// the reference time and inside any window ending there.
func LoginEvent(id, daysAgo, seq int) models.LoginEvent {
	return models.LoginEvent{
		ID:      id,
		Date:    FixedNow.AddDate(0, 0, -daysAgo).Add(-time.Hour).Add(time.Duration(seq) * time.Minute),
		Device:  models.DeviceDesktop,
		Browser: "Chrome",
		IP:      "203.0.113.10",
	}
}

// UserWithLogins builds a user whose history has count logins on each of
// the given day offsets before FixedNow. LastActive tracks the newest
// event.
func UserWithLogins(id int, loginsPerDay map[int]int) models.User {
	u := User(id)
	evID := 1
	for daysAgo, count := range loginsPerDay {
		for i := 0; i < count; i++ {
			ev := LoginEvent(evID, daysAgo, i)
			u.LoginHistory = append(u.LoginHistory, ev)
			if ev.Date.After(u.LastActive) {
				u.LastActive = ev.Date
			}
			evID++
		}
	}
	return u
}
