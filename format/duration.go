// Package format provides human-readable renderings of the quantities a
// progress tracker reports: durations, byte counts, and large numbers.
package format

import (
	"fmt"
	"time"
)

// HumanDuration renders d using its single coarsest unit, truncating the
// remainder. Anything under a second, including negative durations, is "0s".
func HumanDuration(d time.Duration) string {
	switch {
	case d < time.Second:
		return "0s"
	case d < time.Minute:
		return fmt.Sprintf("%ds", int64(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int64(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh", int64(d.Hours()))
	default:
		return fmt.Sprintf("%dd", int64(d.Hours()/24))
	}
}
