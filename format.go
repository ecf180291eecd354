package pagecache

import (
	"fmt"
	"time"
)

var byteUnits = []string{"B", "KB", "MB", "GB"}

// FormatBytes renders n using base-1024 units with one decimal place,
// e.g. "1.5 KB". Zero renders as "0 B".
func FormatBytes(n int64) string {
	if n == 0 {
		return "0 B"
	}
	if n < 0 {
		return "-" + FormatBytes(-n)
	}

	i := 0
	v := float64(n)
	for v >= 1024 && i < len(byteUnits)-1 {
		v /= 1024
		i++
	}

	return fmt.Sprintf("%.1f %s", v, byteUnits[i])
}

// TimeAgo renders an epoch-millisecond timestamp relative to now.
func TimeAgo(ts int64) string {
	return TimeAgoAt(ts, time.Now())
}

// TimeAgoAt renders an epoch-millisecond timestamp relative to now,
// e.g. "5m ago". Anything under a minute, including future timestamps,
// is "just now".
func TimeAgoAt(ts int64, now time.Time) string {
	seconds := (now.UnixMilli() - ts) / 1000
	if seconds < 60 {
		return "just now"
	}
	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%dm ago", minutes)
	}
	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%dh ago", hours)
	}
	return fmt.Sprintf("%dd ago", hours/24)
}

// TruncateURL shortens a URL for display, keeping the end which is more informative.
func TruncateURL(url string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if len(url) <= maxLen {
		return url
	}
	if maxLen < 4 {
		return url[:maxLen]
	}
	return "..." + url[len(url)-maxLen+3:]
}
