// Package boundary exposes the conversion engine through the flat,
// handle-based surface foreign callers bind to.
//
// Two calling conventions coexist, deliberately split into distinctly
// named operations:
//
//   - Lenient (name-based): Convert and ConvertLen resolve a direction
//     name and silently substitute the default direction when the name
//     is unknown. They never record an error.
//   - Strict (id-based): ConvertCfg and ConvertCfgInto take a numeric
//     direction id; an invalid id produces the descriptive text
//     "Invalid config: <id>" and records the same message in the
//     last-error slot.
//
// Results of the owned-string operations belong to the caller. The
// caller-buffer operation never takes ownership of anything: the
// buffer is caller-allocated and caller-freed, and the protocol always
// reports the required size, success or failure.
//
// Empty input short-circuits every conversion entry point: the engine
// is not invoked and the error state is untouched.
package boundary
