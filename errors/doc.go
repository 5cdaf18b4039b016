// Package errors provides structured error types for the bridge.
//
// Errors are categorized by Phase (where the failure occurred) and
// Kind (failure category). The Error type carries a human-readable
// detail and an optional cause chain; the detail doubles as the text
// recorded in the last-error slot so foreign callers see the same
// message Go callers do.
//
// Use the Builder for structured construction:
//
//	err := errors.New(errors.PhaseBuffer, errors.KindBufferTooSmall).
//		Detail("output buffer too small: need %d, have %d", need, have).
//		Build()
//
// Or the convenience constructors for common patterns:
//
//	err := errors.InvalidConfig(errors.PhaseConvert, 9999)
//	err := errors.NilArgument(errors.PhaseConvert, "handle")
//
// All errors implement the standard error interface and support
// errors.Is/As.
package errors
