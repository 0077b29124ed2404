// Package timeutil provides small time formatting helpers.
package timeutil

import (
	"fmt"
	"time"
)

// FormatDuration formats a duration in the compact style used by the debug
// npm package: "3ms", "2s", "5m", "1h". Sub-millisecond durations round to
// "0ms".
func FormatDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	default:
		return fmt.Sprintf("%dh", int(d.Hours()))
	}
}
