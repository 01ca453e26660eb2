package github

import (
	"fmt"
	"time"
)

// Bucket sizes in seconds. A month is approximated as 30 days.
const (
	minuteSeconds = 60
	hourSeconds   = 3600
	daySeconds    = 86400
	monthSeconds  = 2592000
)

// FormatTimeAgo renders an RFC 3339 timestamp as a relative-time
// string against now: "just now", "N minutes ago", "N hours ago",
// "N days ago", or "N months ago" (floor division per unit).
func FormatTimeAgo(timestamp string, now time.Time) string {
	t, err := time.Parse(time.RFC3339, timestamp)
	if err != nil {
		return "just now"
	}

	diff := int64(now.Sub(t).Seconds())

	switch {
	case diff < minuteSeconds:
		return "just now"
	case diff < hourSeconds:
		return fmt.Sprintf("%d minutes ago", diff/minuteSeconds)
	case diff < daySeconds:
		return fmt.Sprintf("%d hours ago", diff/hourSeconds)
	case diff < monthSeconds:
		return fmt.Sprintf("%d days ago", diff/daySeconds)
	default:
		return fmt.Sprintf("%d months ago", diff/monthSeconds)
	}
}
