package format_test

import (
	"fmt"
	"time"

	"github.com/paceline/paceline/format"
)

func ExampleHumanDuration() {
	fmt.Println(format.HumanDuration(98 * time.Second))
	// Output: 1m
}

func ExampleHumanBytes() {
	fmt.Println(format.HumanBytes(1500000))
	// Output: 1.5 MB
}

func ExampleHumanNumber() {
	fmt.Println(format.HumanNumber(3450000))
	// Output: 3.45M
}
