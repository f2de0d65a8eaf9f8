package utils

import (
	"math"
	"testing"
	"time"

	"go.viam.com/test"
)

func TestSecondsToDuration(t *testing.T) {
	for _, tc := range []struct {
		seconds  float64
		expected time.Duration
	}{
		{0, 0},
		{0.1, 100 * time.Millisecond},
		{0.3 - 0.1, 200 * time.Millisecond},
		{-0.5, -500 * time.Millisecond},
		{3600, time.Hour},
	} {
		d, ok := SecondsToDuration(tc.seconds)
		test.That(t, ok, test.ShouldBeTrue)
		test.That(t, d, test.ShouldEqual, tc.expected)
	}
}

func TestSecondsToDurationOutOfRange(t *testing.T) {
	for _, seconds := range []float64{1e10, -1e10, MaxDurationSeconds, math.Inf(1), math.NaN()} {
		d, ok := SecondsToDuration(seconds)
		test.That(t, ok, test.ShouldBeFalse)
		test.That(t, d, test.ShouldEqual, time.Duration(0))
	}

	d, ok := SecondsToDuration(9e9)
	test.That(t, ok, test.ShouldBeTrue)
	test.That(t, d, test.ShouldBeGreaterThan, time.Duration(0))
}
