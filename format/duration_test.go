package format

import (
	"strings"
	"testing"
	"time"
)

func TestHumanDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{0, "0s"},
		{-5 * time.Second, "0s"},
		{999 * time.Millisecond, "0s"},
		{time.Second, "1s"},
		{59*time.Second + 900*time.Millisecond, "59s"},
		{time.Minute, "1m"},
		{98 * time.Second, "1m"},
		{59*time.Minute + 59*time.Second, "59m"},
		{time.Hour, "1h"},
		{23*time.Hour + 59*time.Minute, "23h"},
		{24 * time.Hour, "1d"},
		{47 * time.Hour, "1d"},
		{30 * 24 * time.Hour, "30d"},
	}

	for _, tt := range cases {
		t.Run(tt.d.String(), func(t *testing.T) {
			if got := HumanDuration(tt.d); got != tt.want {
				t.Errorf("HumanDuration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}

// Growing durations must never fall back to a finer unit.
func TestHumanDurationUnitNeverRegresses(t *testing.T) {
	rank := map[byte]int{'s': 0, 'm': 1, 'h': 2, 'd': 3}

	prev := -1
	for d := time.Second; d < 48*time.Hour; d += 17 * time.Second {
		s := HumanDuration(d)
		r, ok := rank[s[len(s)-1]]
		if !ok {
			t.Fatalf("HumanDuration(%v) = %q: unexpected unit", d, s)
		}
		if r < prev {
			t.Fatalf("HumanDuration(%v) = %q: unit regressed", d, s)
		}
		if strings.HasPrefix(s, "-") {
			t.Fatalf("HumanDuration(%v) = %q: negative rendering", d, s)
		}
		prev = r
	}
}
