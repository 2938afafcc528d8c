package progress

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// waves are quarters numbered consecutively, starting from 2025-Q1 as Wave 1
const (
	waveReferenceYear    = 2025
	waveReferenceQuarter = 1
)

// Quarter returns the planning-period label for now, e.g. "2025-Q3".
func Quarter(now time.Time) string {
	q := (int(now.Month())-1)/3 + 1
	return fmt.Sprintf("%d-Q%d", now.Year(), q)
}

// Wave returns the wave label for now, e.g. "Wave 3".
func Wave(now time.Time) string {
	q := (int(now.Month())-1)/3 + 1
	n := (now.Year()-waveReferenceYear)*4 + q - waveReferenceQuarter + 1
	return fmt.Sprintf("Wave %d", n)
}

// NextQuarter returns the label following the given one. Unparseable input
// falls back to 2025-Q1 semantics rather than failing.
func NextQuarter(current string) string {
	year, q := waveReferenceYear, waveReferenceQuarter
	if parts := strings.SplitN(current, "-Q", 2); len(parts) == 2 {
		if y, err := strconv.Atoi(parts[0]); err == nil {
			year = y
		}
		if n, err := strconv.Atoi(parts[1]); err == nil {
			q = n
		}
	}
	if q >= 4 {
		return fmt.Sprintf("%d-Q1", year+1)
	}
	return fmt.Sprintf("%d-Q%d", year, q+1)
}

// DaysRemaining counts whole days between now and the target date, rounding
// up so a deadline later today still reads as one day left. Negative once
// the deadline has passed.
func DaysRemaining(targetDate, now time.Time) int {
	return int(math.Ceil(targetDate.Sub(now).Hours() / 24))
}
