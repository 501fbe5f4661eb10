package format

import "fmt"

// HumanBytes renders n as a decimal (base 1000) byte count, e.g. "1.5 KB".
// Values under a kilobyte are rendered exactly, without a fraction.
func HumanBytes(n int64) string {
	const unit = 1000
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
