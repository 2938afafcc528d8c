package progress

import (
	"math"
	"time"
)

// Health classifies an objective by comparing its progress to how much of
// its time window has elapsed.
type Health string

const (
	HealthOnTrack Health = "on-track"
	HealthAtRisk  Health = "at-risk"
	HealthBlocked Health = "blocked"
	HealthUnknown Health = "unknown" // display fallback for missing data
)

// TimeProgress returns the elapsed share of the objective's window as a
// percentage clamped to [0, 100]. A window of zero or negative length counts
// as fully elapsed.
func TimeProgress(createdAt, targetDate, now time.Time) int {
	total := targetDate.Sub(createdAt)
	if total <= 0 {
		return 100
	}
	pct := int(math.Floor(float64(now.Sub(createdAt))/float64(total)*100 + 0.5))
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return pct
}

// EvaluateHealth derives the qualitative status from progress versus elapsed
// time. Past the deadline the outcome is binary: the objective either made
// it or it is blocked, never at-risk. Before the deadline the verdict
// depends on how far progress trails the elapsed-time percentage.
func EvaluateHealth(createdAt, targetDate time.Time, progressPercent int, now time.Time) Health {
	// A target date at or before creation has no meaningful window; treat it
	// as an already-expired deadline.
	if targetDate.Sub(createdAt) <= 0 || now.After(targetDate) {
		if progressPercent >= 100 {
			return HealthOnTrack
		}
		return HealthBlocked
	}

	delta := progressPercent - TimeProgress(createdAt, targetDate, now)
	switch {
	case delta >= -10:
		return HealthOnTrack
	case delta >= -25:
		return HealthAtRisk
	default:
		return HealthBlocked
	}
}
