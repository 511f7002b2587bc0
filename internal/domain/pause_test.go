package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePauseAction(t *testing.T) {
	tests := []struct {
		input string
		want  PauseAction
	}{
		{"s", ActionSkip},
		{"S", ActionSkip},
		{" s ", ActionSkip},
		{"q", ActionQuit},
		{"Q", ActionQuit},
		{"r", ActionResume},
		{"  R  ", ActionResume},
		{"", ActionResume},
		{"x", ActionResume},
		{"skip", ActionResume}, // only single-letter commands are recognized
	}
	for _, tt := range tests {
		t.Run("input "+tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePauseAction(tt.input))
		})
	}
}
