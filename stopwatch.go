package dieroll

// ticksToNanos converts a counter reading at freq ticks per second into
// nanoseconds. Whole seconds and the remainder are scaled separately so the
// intermediate product stays within int64 for any uptime.
func ticksToNanos(ticks, freq int64) int64 {
	secs, rem := ticks/freq, ticks%freq
	return secs*1_000_000_000 + rem*1_000_000_000/freq
}
