package dieroll

import (
	"errors"
	"time"
)

// ErrClock is the panic value of TimeSeed when the wall clock reads earlier than the Unix epoch.
var ErrClock = errors.New("dieroll: system clock is before the unix epoch")

// SeedFunc supplies the initial seed of a generator. It is called exactly once per construction.
type SeedFunc func() uint64

// TimeSeed returns the current wall-clock time in milliseconds since the Unix epoch.
// This is the seed source used by every constructor unless an Option overrides it.
// There is no relationship between two consecutive seeds other than the passing of time,
// so two generators constructed within the same millisecond produce the same sequence.
// TimeSeed panics with ErrClock if the clock is set before 1970; there is no retry.
func TimeSeed() uint64 {
	return seedFromClock(time.Now)
}

func seedFromClock(now func() time.Time) uint64 {
	ms := now().UnixMilli()
	if ms < 0 {
		panic(ErrClock)
	}
	return uint64(ms)
}
