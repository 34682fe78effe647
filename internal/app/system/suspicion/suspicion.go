// Package suspicion flags user accounts whose recent login pattern
// deviates from their baseline. Two patterns are flagged: sustained
// high-volume activity, and a normally quiet account with a sudden
// burst of logins on a single day.
package suspicion

import (
	"time"

	"github.com/dalemusser/stratapulse/internal/app/system/loginstats"
	"github.com/dalemusser/stratapulse/internal/domain/models"
)

// Window is the span of login history the classifier examines.
const Window = 30 * 24 * time.Hour

const (
	// A day counts as high-volume when it has more than this many logins.
	highVolumeDayLogins = 10
	// Number of high-volume days that makes the pattern sustained.
	sustainedDayThreshold = 3

	// A user is quiet when they average at most this many logins
	// per active day.
	quietAvgLoginsPerDay = 3.0
	// A quiet user's single-day count at or above this is a spike.
	spikeDayLogins = 15
)

// Stats describes a user's login activity inside the window.
type Stats struct {
	TotalLogins     int     `json:"totalLogins"`
	DistinctDays    int     `json:"distinctDays"`
	DaysOver10      int     `json:"daysOver10"`
	MaxLogins       int     `json:"maxLogins"`
	AvgLoginsPerDay float64 `json:"avgLoginsPerDay"`
}

// Result is the classifier's verdict for one user.
type Result struct {
	Suspicious bool  `json:"suspicious"`
	Stats      Stats `json:"stats"`
}

// Classify examines u's login history over the window ending at now.
// A user with no logins in the window is never suspicious.
func Classify(u models.User, now time.Time) Result {
	buckets := loginstats.BucketByDay(u.LoginHistory, Window, now)

	var s Stats
	for _, b := range buckets {
		if b.Count == 0 {
			continue
		}
		s.TotalLogins += b.Count
		s.DistinctDays++
		if b.Count > highVolumeDayLogins {
			s.DaysOver10++
		}
		if b.Count > s.MaxLogins {
			s.MaxLogins = b.Count
		}
	}

	if s.TotalLogins == 0 {
		return Result{Stats: s}
	}
	s.AvgLoginsPerDay = float64(s.TotalLogins) / float64(s.DistinctDays)

	return Result{
		Suspicious: sustainedHighVolume(s) || quietUserSpike(s),
		Stats:      s,
	}
}

func sustainedHighVolume(s Stats) bool {
	return s.DaysOver10 >= sustainedDayThreshold
}

func quietUserSpike(s Stats) bool {
	return s.AvgLoginsPerDay <= quietAvgLoginsPerDay && s.MaxLogins >= spikeDayLogins
}
