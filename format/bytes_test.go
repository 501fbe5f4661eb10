package format

import (
	"fmt"
	"testing"
)

func TestHumanBytes(t *testing.T) {
	cases := []struct {
		n    int64
		want string
	}{
		{0, "0 B"},
		{-42, "-42 B"},
		{512, "512 B"},
		{999, "999 B"},
		{1000, "1.0 KB"},
		{1500, "1.5 KB"},
		{999999, "1000.0 KB"},
		{1000000, "1.0 MB"},
		{1234567890, "1.2 GB"},
		{5000000000000, "5.0 TB"},
	}

	for _, tt := range cases {
		t.Run(fmt.Sprint(tt.n), func(t *testing.T) {
			if got := HumanBytes(tt.n); got != tt.want {
				t.Errorf("HumanBytes(%d) = %q, want %q", tt.n, got, tt.want)
			}
		})
	}
}
