//go:build !windows

package dieroll

import "time"

// TimeStamp is a relative point in time with the best precision the platform offers.
// Values are only comparable within one run of a program on one machine.
type TimeStamp = time.Time

// SampleTime returns the current TimeStamp.
func SampleTime() TimeStamp {
	return time.Now()
}

// DiffTimeStamps returns later - earlier in nanoseconds. The result is negative
// if the arguments are swapped.
func DiffTimeStamps(earlier, later TimeStamp) int64 {
	return later.Sub(earlier).Nanoseconds()
}
