// Package display formats sizes and durations for progress output and
// prints the startup banner.
package display

import (
	"fmt"
	"time"
)

var byteSuffixes = []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB"}

// FormatBytes returns a human-readable size (B, KiB, MiB, ...).
func FormatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	v := float64(bytes) / unit
	i := 0
	for v >= unit && i < len(byteSuffixes)-1 {
		v /= unit
		i++
	}
	return fmt.Sprintf("%.1f %s", v, byteSuffixes[i])
}

// FormatElapsed renders d as "850ms", "12.3s" or "4m05s".
func FormatElapsed(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		m := int(d / time.Minute)
		s := int((d % time.Minute) / time.Second)
		return fmt.Sprintf("%dm%02ds", m, s)
	}
}
