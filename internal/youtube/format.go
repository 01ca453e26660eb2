package youtube

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var durationRegex = regexp.MustCompile(`PT(\d+H)?(\d+M)?(\d+S)?`)

// FormatDuration renders an ISO-8601 video duration for display.
// With an hour component the result is H:MM:SS (hours unpadded);
// otherwise M:SS with minutes defaulting to "0" when absent.
// Unrecognized input renders as "0:00".
func FormatDuration(duration string) string {
	match := durationRegex.FindStringSubmatch(duration)
	if match == nil {
		return "0:00"
	}

	hours := strings.TrimSuffix(match[1], "H")
	minutes := strings.TrimSuffix(match[2], "M")
	seconds := strings.TrimSuffix(match[3], "S")

	if hours != "" {
		return fmt.Sprintf("%s:%s:%s", hours, pad2(minutes), pad2(seconds))
	}

	if minutes == "" {
		minutes = "0"
	}

	return fmt.Sprintf("%s:%s", minutes, pad2(seconds))
}

// FormatViewCount abbreviates a numeric view-count string:
// 1500000 -> "1.5M", 1000 -> "1.0K", 999 -> "999".
func FormatViewCount(viewCount string) string {
	count, err := strconv.ParseInt(viewCount, 10, 64)
	if err != nil {
		return "0"
	}

	switch {
	case count >= 1000000:
		return fmt.Sprintf("%.1fM", float64(count)/1000000)
	case count >= 1000:
		return fmt.Sprintf("%.1fK", float64(count)/1000)
	default:
		return strconv.FormatInt(count, 10)
	}
}

func pad2(s string) string {
	for len(s) < 2 {
		s = "0" + s
	}

	return s
}
