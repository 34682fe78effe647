// Package loginstats computes time-windowed login aggregates over
// in-memory user snapshots.
//
// All bucketing uses UTC calendar days. Day keys are "2006-01-02" in
// UTC everywhere, so the two "last 30 days" views (per-user frequency
// and population trend) can never drift apart on local-timezone
// boundaries.
//
// Every function is pure: it reads the supplied slice and the supplied
// clock value, and touches nothing else.
package loginstats

import (
	"sort"
	"time"

	"github.com/dalemusser/stratapulse/internal/domain/models"
)

// DayKeyFormat is the layout of a UTC calendar-day key.
const DayKeyFormat = "2006-01-02"

// DayKey returns t's UTC calendar-day key.
func DayKey(t time.Time) string {
	return t.UTC().Format(DayKeyFormat)
}

// DayBucket is one UTC calendar day and its login count.
type DayBucket struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// CountInWindow returns how many events fall within [now-window, now],
// bounds inclusive. An empty history yields 0. window must be positive;
// a non-positive window counts nothing.
func CountInWindow(history []models.LoginEvent, window time.Duration, now time.Time) int {
	if window <= 0 {
		return 0
	}
	cutoff := now.Add(-window)
	n := 0
	for _, e := range history {
		if !e.Date.Before(cutoff) && !e.Date.After(now) {
			n++
		}
	}
	return n
}

// BucketByDay groups the events in [now-window, now] by UTC calendar
// day. The result has exactly one bucket per day from the window start
// through now, in ascending day order, zero-filled so charting
// consumers get a continuous series. Events outside the window are
// ignored.
func BucketByDay(history []models.LoginEvent, window time.Duration, now time.Time) []DayBucket {
	if window <= 0 {
		return nil
	}
	start := now.Add(-window)
	first := truncateToDay(start)
	last := truncateToDay(now)

	var buckets []DayBucket
	index := make(map[string]int)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		key := DayKey(d)
		index[key] = len(buckets)
		buckets = append(buckets, DayBucket{Day: key})
	}

	for _, e := range history {
		if e.Date.Before(start) || e.Date.After(now) {
			continue
		}
		if i, ok := index[DayKey(e.Date)]; ok {
			buckets[i].Count++
		}
	}
	return buckets
}

// SumAcrossUsers returns the population-wide login count within
// [now-window, now], summing CountInWindow over every user's history.
func SumAcrossUsers(users []models.User, window time.Duration, now time.Time) int {
	total := 0
	for _, u := range users {
		total += CountInWindow(u.LoginHistory, window, now)
	}
	return total
}

// TopByLastActive returns the n most recently active users, most
// recent first. The sort is stable so ties keep their list order and
// results stay deterministic.
func TopByLastActive(users []models.User, n int) []models.User {
	out := make([]models.User, len(users))
	copy(out, users)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastActive.After(out[j].LastActive)
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// DailyLoginTrend flattens every user's full history into per-UTC-day
// counts, sorted ascending by day key. Unlike BucketByDay there is no
// window and no zero fill: only days with at least one login appear.
func DailyLoginTrend(users []models.User) []DayBucket {
	counts := make(map[string]int)
	for _, u := range users {
		for _, e := range u.LoginHistory {
			counts[DayKey(e.Date)]++
		}
	}

	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	buckets := make([]DayBucket, 0, len(keys))
	for _, k := range keys {
		buckets = append(buckets, DayBucket{Day: k, Count: counts[k]})
	}
	return buckets
}

// truncateToDay returns midnight UTC of the day containing t.
func truncateToDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
