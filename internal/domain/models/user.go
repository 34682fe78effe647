package models

import (
	"strings"
	"time"
)

// User statuses as the directory reports them. The store does not
// normalize beyond trim/lower; unknown values pass through untouched.
const (
	StatusOnline = "online"
	StatusAway   = "away"
)

// DefaultRole is assigned to operator-created users.
const DefaultRole = "User"

// User represents one directory account together with its login history.
//
// Users arrive from the upstream directory sync or from the operator's
// add-user form. The record is only ever mutated by whole-field
// replacement (patch) or by prepending a login event; nothing edits a
// field or an event in place.
type User struct {
	ID           int          `json:"id"`
	FirstName    string       `json:"firstName"`
	LastName     string       `json:"lastName"`
	Email        string       `json:"email"`
	Image        string       `json:"image"` // avatar URL
	Status       string       `json:"status"`
	Role         string       `json:"role"`
	LastActive   time.Time    `json:"lastActive"`
	LoginHistory []LoginEvent `json:"loginHistory"`
}

// FullName returns the display name.
func (u User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Clone returns a deep copy of the user, including its login history.
// The store hands out clones so a snapshot can never alias live state.
func (u User) Clone() User {
	out := u
	if u.LoginHistory != nil {
		out.LoginHistory = make([]LoginEvent, len(u.LoginHistory))
		copy(out.LoginHistory, u.LoginHistory)
	}
	return out
}
