package calculation

import "time"

// nowFunc returns the current time (override in tests for determinism).
var nowFunc = time.Now

// SetNowFunc overrides the time provider used to pick the first ledger year (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }

// startYear resolves the calendar year of the first ledger row
func startYear(override int) int {
	if override > 0 {
		return override
	}
	return nowFunc().Year()
}
