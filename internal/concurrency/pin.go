//go:build !linux
// +build !linux

// File: internal/concurrency/pin.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-generic stub for the CPU/NUMA pinning dispatcher.

package concurrency

import "runtime"

// PinCurrentThread pins the calling goroutine to an OS thread. CPU and
// NUMA placement is only applied on supported platforms (see
// pin_linux.go); elsewhere the thread is merely locked.
func PinCurrentThread(numaNode int, cpuID int) {
	runtime.LockOSThread()
}
