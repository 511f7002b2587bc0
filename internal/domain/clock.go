package domain

import (
	"fmt"
	"math"
)

// MinutesToSeconds converts a minute value to a whole number of seconds.
// Negative durations clamp to zero.
func MinutesToSeconds(minutes float64) int {
	return int(math.Max(0, math.Round(minutes*60)))
}

// FormatTimer renders a second count as a zero-padded MM:SS string.
// Negative input renders as "00:00". The minutes field has no upper
// bound, so 3600 seconds renders as "60:00".
func FormatTimer(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
