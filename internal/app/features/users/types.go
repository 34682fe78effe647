// internal/app/features/users/types.go
package users

import (
	"time"

	"github.com/dalemusser/stratapulse/internal/app/system/suspicion"
	"github.com/dalemusser/stratapulse/internal/domain/models"
)

// createUserInput is the request body for POST /api/users.
// ID is optional; when omitted the store assigns the next free ID.
type createUserInput struct {
	ID        int    `json:"id" validate:"omitempty,min=1"`
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Image     string `json:"image" validate:"omitempty,url"`
	Status    string `json:"status" validate:"omitempty,oneof=online away"`
	Role      string `json:"role" validate:"omitempty,oneof=Admin User"`
}

// patchUserInput is the request body for PATCH /api/users/{id}.
// Only fields present in the JSON are applied.
type patchUserInput struct {
	FirstName *string `json:"firstName" validate:"omitempty,min=1"`
	LastName  *string `json:"lastName" validate:"omitempty,min=1"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Image     *string `json:"image" validate:"omitempty,url"`
	Status    *string `json:"status" validate:"omitempty,oneof=online away"`
	Role      *string `json:"role" validate:"omitempty,oneof=Admin User"`
}

// recordLoginInput is the request body for POST /api/users/{id}/logins.
// All fields are optional; missing values are derived from the request.
type recordLoginInput struct {
	Date    *time.Time `json:"date"`
	Device  string     `json:"device" validate:"omitempty,oneof=desktop mobile tablet"`
	Browser string     `json:"browser"`
	IP      string     `json:"ip" validate:"omitempty,ip"`
}

// listResponse is the body of GET /api/users.
type listResponse struct {
	Users []models.User `json:"users"`
	Total int           `json:"total"`
}

// loginFrequency holds the parallel day/count arrays for the 30-day
// activity chart.
type loginFrequency struct {
	Days   []string `json:"days"`
	Counts []int    `json:"counts"`
}

// userStats carries the computed activity figures for the detail view.
type userStats struct {
	Logins72h       int               `json:"logins72h"`
	Logins30d       int               `json:"logins30d"`
	Frequency       loginFrequency    `json:"frequency"`
	Suspicion       suspicion.Result  `json:"suspicion"`
	AvgLoginsPerDay int               `json:"avgLoginsPerDayDisplay"`
}

// detailResponse is the body of GET /api/users/{id}.
type detailResponse struct {
	User  models.User `json:"user"`
	Stats userStats   `json:"stats"`
}
