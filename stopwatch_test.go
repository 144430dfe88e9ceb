package dieroll

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSampleTime(t *testing.T) {
	t1 := SampleTime()
	t1a := time.Now()
	time.Sleep(300 * time.Millisecond)
	t2 := SampleTime()
	t2a := time.Now()

	diff := DiffTimeStamps(t1, t2)
	diffa := t2a.Sub(t1a)
	assert.InEpsilon(t, float64(diffa), float64(diff), 0.01, "values diverge to much: %v vs. %v", time.Duration(diff), diffa)
	assert.Negative(t, DiffTimeStamps(t2, t1))
}

func TestTicksToNanos(t *testing.T) {
	cases := []struct {
		ticks, freq, want int64
	}{
		{0, 10_000_000, 0},
		{1, 10_000_000, 100},
		{10_000_000, 10_000_000, 1_000_000_000},
		{15_000_001, 10_000_000, 1_500_000_100},
		{3, 3_000_000_000, 1},
		// a year of uptime at 10MHz overflows ticks*1e9 but not the result
		{365 * 24 * 3600 * 10_000_000, 10_000_000, 365 * 24 * 3600 * 1_000_000_000},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ticksToNanos(c.ticks, c.freq), "ticks=%d freq=%d", c.ticks, c.freq)
	}
}
