package timeago

import (
	"fmt"
	"time"
)

// Fixed-length units, matching the notification feed's display contract:
// a month is always 30 days and a year 365, regardless of calendar position.
var intervals = []struct {
	label   string
	seconds int64
}{
	{"year", 31536000},
	{"month", 2592000},
	{"day", 86400},
	{"hour", 3600},
	{"minute", 60},
}

// Format renders the elapsed time since t as "N unit[s] ago" using the largest
// applicable unit, or "Just now" when under a minute.
func Format(t time.Time, now time.Time) string {
	seconds := int64(now.Sub(t) / time.Second)

	for _, interval := range intervals {
		count := seconds / interval.seconds
		if count >= 1 {
			label := interval.label
			if count > 1 {
				label += "s"
			}
			return fmt.Sprintf("%d %s ago", count, label)
		}
	}
	return "Just now"
}

// Since is Format against the current clock.
func Since(t time.Time) string {
	return Format(t, time.Now())
}
