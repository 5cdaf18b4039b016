package lasterror

import "sync/atomic"

// Sentinel is returned by Last when no failure has been recorded since
// startup or the most recent Clear.
const Sentinel = "No error"

var slot atomic.Pointer[string]

// Record stores msg as the most recent failure, overwriting any
// previous message. Recording an empty message is equivalent to Clear.
func Record(msg string) {
	if msg == "" {
		Clear()
		return
	}
	slot.Store(&msg)
}

// Last returns the most recent failure message, or Sentinel when the
// slot is empty.
func Last() string {
	if p := slot.Load(); p != nil {
		return *p
	}
	return Sentinel
}

// Clear empties the slot. Messages previously returned by Last remain
// valid; only the internal state is reset.
func Clear() {
	slot.Store(nil)
}
