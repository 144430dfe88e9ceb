//go:build windows

package dieroll

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// TimeStamp is a relative point in time with the best precision the platform offers.
// On Windows it is the QueryPerformanceCounter reading converted to nanoseconds.
type TimeStamp = int64

var (
	kernel32    = windows.NewLazySystemDLL("kernel32.dll")
	qpcFreqProc = kernel32.NewProc("QueryPerformanceFrequency")
	qpcProc     = kernel32.NewProc("QueryPerformanceCounter")

	qpcFrequency = mustQPCFrequency()
)

func mustQPCFrequency() int64 {
	var freq int64
	if ok, _, err := qpcFreqProc.Call(uintptr(unsafe.Pointer(&freq))); ok == 0 || freq <= 0 {
		panic(fmt.Sprintf("no performance counter: %v", err))
	}
	return freq
}

// SampleTime returns the current TimeStamp.
func SampleTime() TimeStamp {
	var ticks int64
	qpcProc.Call(uintptr(unsafe.Pointer(&ticks)))
	return ticksToNanos(ticks, qpcFrequency)
}

// DiffTimeStamps returns later - earlier in nanoseconds. The result is negative
// if the arguments are swapped.
func DiffTimeStamps(earlier, later TimeStamp) int64 {
	return later - earlier
}
