package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlanBreak(t *testing.T) {
	tests := []struct {
		name        string
		count       int
		wantMinutes int
		wantLabel   string
		wantKind    SessionKind
	}{
		{"first session", 1, 5, "Short Break", KindShortBreak},
		{"second session", 2, 5, "Short Break", KindShortBreak},
		{"third session", 3, 5, "Short Break", KindShortBreak},
		{"fourth earns long break", 4, 15, "Long Break", KindLongBreak},
		{"fifth back to short", 5, 5, "Short Break", KindShortBreak},
		{"eighth earns long break again", 8, 15, "Long Break", KindLongBreak},
		{"count zero never long", 0, 5, "Short Break", KindShortBreak},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := PlanBreak(tt.count, 4, 5, 15)
			assert.Equal(t, tt.wantMinutes, plan.Minutes)
			assert.Equal(t, tt.wantLabel, plan.Label)
			assert.Equal(t, tt.wantKind, plan.Kind)
		})
	}
}

func TestPlanBreak_NonPositiveFrequency(t *testing.T) {
	// A broken frequency must not divide by zero; everything is a short break.
	plan := PlanBreak(4, 0, 5, 15)
	assert.Equal(t, KindShortBreak, plan.Kind)
}
