package calculation

import "time"

// nowFunc stamps batch reports (override in tests for stable output).
var nowFunc = func() time.Time { return time.Now().UTC() }

// SetNowFunc overrides the time provider (use only in tests).
func SetNowFunc(f func() time.Time) { nowFunc = f }
