package format

import "fmt"

const (
	thousand = 1000
	million  = thousand * 1000
	billion  = million * 1000
	trillion = billion * 1000
)

// HumanNumber renders n with a K/M/B/T suffix and three significant
// figures, e.g. "3.45M". Values under a thousand are rendered exactly.
func HumanNumber(n int64) string {
	switch {
	case n >= trillion:
		return fmt.Sprintf("%sT", significant(float64(n)/trillion))
	case n >= billion:
		return fmt.Sprintf("%sB", significant(float64(n)/billion))
	case n >= million:
		return fmt.Sprintf("%sM", significant(float64(n)/million))
	case n >= thousand:
		return fmt.Sprintf("%sK", significant(float64(n)/thousand))
	default:
		return fmt.Sprintf("%d", n)
	}
}

func significant(f float64) string {
	switch {
	case f >= 100:
		return fmt.Sprintf("%.0f", f)
	case f >= 10:
		return fmt.Sprintf("%.1f", f)
	default:
		return fmt.Sprintf("%.2f", f)
	}
}
