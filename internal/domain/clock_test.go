package domain

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMinutesToSeconds(t *testing.T) {
	tests := []struct {
		name    string
		minutes float64
		want    int
	}{
		{"standard focus session", 25, 1500},
		{"zero", 0, 0},
		{"negative clamps to zero", -1, 0},
		{"fractional minutes round", 0.5, 30},
		{"rounds to nearest second", 0.0251, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MinutesToSeconds(tt.minutes))
		})
	}
}

func TestFormatTimer(t *testing.T) {
	tests := []struct {
		name    string
		seconds int
		want    string
	}{
		{"full session", 1500, "25:00"},
		{"under a minute", 59, "00:59"},
		{"negative clamps", -1, "00:00"},
		{"zero", 0, "00:00"},
		{"minutes field unbounded", 3600, "60:00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTimer(tt.seconds))
		})
	}
}

func TestFormatTimer_AlwaysTwoFields(t *testing.T) {
	shape := regexp.MustCompile(`^\d{2,}:\d{2}$`)
	for _, s := range []int{-100, 0, 1, 59, 60, 61, 599, 600, 5999, 6000} {
		assert.Regexp(t, shape, FormatTimer(s), "seconds=%d", s)
	}
}
