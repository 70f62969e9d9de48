//go:build linux
// +build linux

// File: internal/concurrency/pin_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux implementation of worker thread pinning via sched_setaffinity.
// Pure Go through golang.org/x/sys; NUMA node binding proper would need
// libnuma, so numaNode only selects which CPU the worker lands on.

package concurrency

import (
	"log"
	"runtime"

	"golang.org/x/sys/unix"
)

// PinCurrentThread locks the calling goroutine to its OS thread and
// binds that thread to the given CPU core.
func PinCurrentThread(numaNode int, cpuID int) {
	runtime.LockOSThread()
	if cpuID < 0 || cpuID >= runtime.NumCPU() {
		return
	}
	var set unix.CPUSet
	set.Zero()
	set.Set(cpuID)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		log.Printf("pin: failed to set thread affinity: %v", err)
	}
}
