package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQuarter(t *testing.T) {
	assert.Equal(t, "2025-Q1", Quarter(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-Q1", Quarter(time.Date(2025, 3, 31, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2025-Q3", Quarter(time.Date(2025, 8, 28, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2026-Q4", Quarter(time.Date(2026, 12, 15, 0, 0, 0, 0, time.UTC)))
}

func TestWave(t *testing.T) {
	// Waves count quarters from 2025-Q1.
	assert.Equal(t, "Wave 1", Wave(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Wave 3", Wave(time.Date(2025, 8, 28, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "Wave 5", Wave(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)))
}

func TestNextQuarter(t *testing.T) {
	assert.Equal(t, "2025-Q3", NextQuarter("2025-Q2"))
	assert.Equal(t, "2026-Q1", NextQuarter("2025-Q4"))
	assert.Equal(t, "2025-Q2", NextQuarter("garbage"))
}

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2025, 8, 28, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, 7, DaysRemaining(now.AddDate(0, 0, 7), now))
	assert.Equal(t, 1, DaysRemaining(now.Add(6*time.Hour), now))
	assert.Equal(t, 0, DaysRemaining(now, now))
	assert.Equal(t, -3, DaysRemaining(now.AddDate(0, 0, -3), now))
}
