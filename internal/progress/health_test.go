package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var (
	createdAt  = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	targetDate = createdAt.Add(100 * time.Hour)
	midpoint   = createdAt.Add(50 * time.Hour)
)

func TestTimeProgress(t *testing.T) {
	assert.Equal(t, 50, TimeProgress(createdAt, targetDate, midpoint))
	assert.Equal(t, 0, TimeProgress(createdAt, targetDate, createdAt))
	assert.Equal(t, 100, TimeProgress(createdAt, targetDate, targetDate))

	// Clamped outside the window.
	assert.Equal(t, 0, TimeProgress(createdAt, targetDate, createdAt.Add(-time.Hour)))
	assert.Equal(t, 100, TimeProgress(createdAt, targetDate, targetDate.Add(time.Hour)))

	// Degenerate window counts as fully elapsed.
	assert.Equal(t, 100, TimeProgress(createdAt, createdAt, midpoint))
}

func TestEvaluateHealthAtMidpoint(t *testing.T) {
	tests := []struct {
		name     string
		progress int
		want     Health
	}{
		{"slightly behind is on-track", 45, HealthOnTrack}, // delta -5
		{"delta -10 boundary is on-track", 40, HealthOnTrack},
		{"moderately behind is at-risk", 30, HealthAtRisk}, // delta -20
		{"delta -11 is at-risk", 39, HealthAtRisk},
		{"delta -25 boundary is at-risk", 25, HealthAtRisk},
		{"far behind is blocked", 10, HealthBlocked}, // delta -40
		{"delta -26 is blocked", 24, HealthBlocked},
		{"ahead of schedule is on-track", 80, HealthOnTrack},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EvaluateHealth(createdAt, targetDate, tt.progress, midpoint))
		})
	}
}

func TestEvaluateHealthPastDeadline(t *testing.T) {
	after := targetDate.Add(time.Hour)

	// Binary outcome once time is exhausted: never at-risk.
	assert.Equal(t, HealthOnTrack, EvaluateHealth(createdAt, targetDate, 100, after))
	assert.Equal(t, HealthOnTrack, EvaluateHealth(createdAt, targetDate, 120, after))
	assert.Equal(t, HealthBlocked, EvaluateHealth(createdAt, targetDate, 99, after))
	assert.Equal(t, HealthBlocked, EvaluateHealth(createdAt, targetDate, 0, after))
}

func TestEvaluateHealthDegenerateWindow(t *testing.T) {
	// Target date at or before creation behaves like an expired deadline.
	assert.Equal(t, HealthBlocked, EvaluateHealth(createdAt, createdAt, 50, midpoint))
	assert.Equal(t, HealthOnTrack, EvaluateHealth(createdAt, createdAt, 100, midpoint))
	assert.Equal(t, HealthBlocked, EvaluateHealth(createdAt, createdAt.Add(-time.Hour), 99, midpoint))
}

func TestEvaluateHealthDeterministic(t *testing.T) {
	first := EvaluateHealth(createdAt, targetDate, 37, midpoint)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, EvaluateHealth(createdAt, targetDate, 37, midpoint))
	}
}
