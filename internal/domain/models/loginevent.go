package models

import "time"

// Device values reported by the directory and by User-Agent parsing.
const (
	DeviceDesktop = "desktop"
	DeviceMobile  = "mobile"
	DeviceTablet  = "tablet"
)

// LoginEvent captures a single recorded authentication for a user,
// with the device/browser/source metadata the directory supplies.
//
// Events are immutable once recorded. No ordering is guaranteed on a
// stored history; every consumer re-derives the grouping it needs from
// the timestamps.
type LoginEvent struct {
	ID      int       `json:"id"` // unique within one user's history
	Date    time.Time `json:"date"`
	Device  string    `json:"device"`
	Browser string    `json:"browser"`
	IP      string    `json:"ip"`
}

// IsValidDevice checks if a device value is one the API accepts.
func IsValidDevice(device string) bool {
	switch device {
	case DeviceDesktop, DeviceMobile, DeviceTablet:
		return true
	}
	return false
}
