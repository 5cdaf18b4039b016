// Package lasterror holds the boundary's last-failure message.
//
// The slot is a single overwritable value scoped to the process. Go
// has no per-thread storage a library contract could lean on, so the
// per-thread variant of this channel is not expressible here; the
// process-wide slot is an atomic pointer, which guarantees that racing
// writers never produce a torn message: the last complete write
// stands. Callers that need a stronger association between a failing
// call and its message should use the error values the boundary
// returns directly; this slot exists for foreign callers that only
// speak the call/return shape.
//
// Clearing the slot never invalidates a message a caller already read.
package lasterror
