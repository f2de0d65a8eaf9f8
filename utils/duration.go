package utils

import (
	"math"
	"time"
)

// MaxDurationSeconds is the longest span, in seconds, a time.Duration can hold.
const MaxDurationSeconds = float64(math.MaxInt64) / float64(time.Second)

// SecondsToDuration converts a number of (possibly fractional) seconds into a time.Duration,
// rounding to the nearest nanosecond. ok is false when seconds is not finite or its magnitude
// is at or beyond MaxDurationSeconds.
func SecondsToDuration(seconds float64) (d time.Duration, ok bool) {
	nanos := math.Round(seconds * float64(time.Second))
	if math.IsNaN(nanos) || math.Abs(nanos) >= float64(math.MaxInt64) {
		return 0, false
	}
	return time.Duration(nanos), true
}
