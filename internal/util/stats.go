// Package util provides shared logging and formatting helpers.
package util

import (
	"fmt"
	"time"
)

// countUnits defines the decimal suffixes for formatting large counts.
var countUnits = []string{"", "K", "M", "G"}

// formatCount formats a count with one decimal and a decimal suffix,
// for example: "999.0", "15.5M".
func formatCount(n float64) string {
	unitIdx := 0

	for n >= 1000 && unitIdx < len(countUnits)-1 {
		n /= 1000
		unitIdx++
	}

	return fmt.Sprintf("%.1f%s", n, countUnits[unitIdx])
}

// FormatRun returns a one-line summary of a generation run for the logger.
func FormatRun(candidates, primes int, elapsed time.Duration) string {
	rate := "n/a"
	if secs := elapsed.Seconds(); secs > 0 {
		rate = formatCount(float64(candidates)/secs) + "/s"
	}

	return fmt.Sprintf("Tested: %s | Primes: %s | Time: %s | Rate: %s",
		formatCount(float64(candidates)),
		formatCount(float64(primes)),
		elapsed.Round(time.Millisecond),
		rate,
	)
}
