package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in the boundary the error occurred
type Phase string

const (
	PhaseInit    Phase = "init"    // engine construction
	PhaseConvert Phase = "convert" // conversion entry points
	PhaseBuffer  Phase = "buffer"  // caller-buffer protocol
	PhaseRuntime Phase = "runtime" // handle table and lifecycle
)

// Kind categorizes the error
type Kind string

const (
	KindConstruction   Kind = "construction"
	KindInvalidConfig  Kind = "invalid_config"
	KindNilArgument    Kind = "nil_argument"
	KindAllocation     Kind = "allocation"
	KindBufferTooSmall Kind = "buffer_too_small"
	KindIntegrity      Kind = "integrity"
	KindClosed         Kind = "closed"
)

// Error is the structured error type used throughout the bridge
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Detail string
	Value  any
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Construction creates an engine construction failure
func Construction(cause error) *Error {
	return &Error{
		Phase:  PhaseInit,
		Kind:   KindConstruction,
		Detail: "construct engine",
		Cause:  cause,
	}
}

// InvalidConfig creates an invalid config id error. The detail text is
// the exact message surfaced to foreign callers and recorded in the
// last-error slot.
func InvalidConfig(phase Phase, id uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidConfig,
		Detail: fmt.Sprintf("Invalid config: %d", id),
		Value:  id,
	}
}

// NilArgument creates an absent handle/input error
func NilArgument(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNilArgument,
		Detail: fmt.Sprintf("%s is nil or absent", what),
	}
}

// AllocationFailed creates an allocation failure error
func AllocationFailed(phase Phase, size uint32) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("failed to allocate %d bytes", size),
	}
}

// BufferTooSmall creates a buffer capacity error. required includes
// the trailing terminator byte.
func BufferTooSmall(required, capacity int) *Error {
	return &Error{
		Phase:  PhaseBuffer,
		Kind:   KindBufferTooSmall,
		Detail: fmt.Sprintf("Output buffer too small: need %d bytes, have %d", required, capacity),
		Value:  required,
	}
}

// Integrity creates a malformed-result error (for example an embedded
// terminator byte before the logical end of the output)
func Integrity(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindIntegrity,
		Detail: detail,
	}
}

// Closed creates an error for operations on a closed object
func Closed(phase Phase, what string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindClosed,
		Detail: fmt.Sprintf("%s is closed", what),
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
