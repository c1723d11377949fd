package util

import (
	"time"
)

const ClockFormat = "15:04"

// ClockTime formats t as HH:MM in its own location
func ClockTime(t time.Time) string {
	return t.Format(ClockFormat)
}
