// Package progress holds the pure derivation logic for the OKR dashboard:
// percent-complete from (current, target) pairs, objective-level
// aggregation, time-adjusted health evaluation, and planning-period labels.
// Nothing here touches the store or the wall clock; callers pass now in.
package progress

import (
	"math"

	"github.com/mfalcone/okrdeck-api/internal/models"
)

// PercentComplete converts a (current, target) pair into a percentage
// clamped to [0, 100], rounded half-up. A zero target means the target is
// undefined, not already met, and always yields 0.
func PercentComplete(current, target float64) int {
	if target == 0 {
		return 0
	}
	pct := current / target * 100
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return int(math.Floor(pct + 0.5))
}

// ObjectiveProgress is the arithmetic mean of the key results' individual
// percentages, rounded half-up. An objective with no key results has zero
// progress. Key results are weighted equally regardless of target size.
func ObjectiveProgress(keyResults []models.KeyResult) int {
	if len(keyResults) == 0 {
		return 0
	}
	sum := 0
	for _, kr := range keyResults {
		sum += PercentComplete(kr.Current, kr.Target)
	}
	return int(math.Floor(float64(sum)/float64(len(keyResults)) + 0.5))
}

// AllComplete reports whether every key result individually sits at 100%.
// Views use it as a "Done" overlay on top of the evaluated health; it is
// derived on demand from key result data and never stored.
func AllComplete(keyResults []models.KeyResult) bool {
	if len(keyResults) == 0 {
		return false
	}
	for _, kr := range keyResults {
		if PercentComplete(kr.Current, kr.Target) < 100 {
			return false
		}
	}
	return true
}
