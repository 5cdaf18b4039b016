package bridge

import (
	"context"

	"github.com/zhoconv/bridge/config"
)

// ScriptCode reports the dominant script of a text as classified by
// the engine.
type ScriptCode int

const (
	// ScriptInvalid means the input could not be classified.
	ScriptInvalid ScriptCode = -1
	// ScriptMixed means the input is mixed or undetermined.
	ScriptMixed ScriptCode = 0
	// ScriptTraditional means the input is Traditional Chinese.
	ScriptTraditional ScriptCode = 1
	// ScriptSimplified means the input is Simplified Chinese.
	ScriptSimplified ScriptCode = 2
)

func (c ScriptCode) String() string {
	switch c {
	case ScriptInvalid:
		return "invalid"
	case ScriptMixed:
		return "mixed"
	case ScriptTraditional:
		return "traditional"
	case ScriptSimplified:
		return "simplified"
	}
	return "unknown"
}

// Engine is the opaque conversion engine behind the boundary.
//
// Convert takes a numeric direction id (see the config package) that
// is already validated by the caller; punctuation conversion is an
// orthogonal flag some directions ignore. ZhoCheck classifies the
// dominant script of the input.
//
// Implementations decide their own concurrency strategy: Parallel
// reports whether the engine accepts concurrent Convert calls, and
// SetParallel flips that strategy. SetParallel is not synchronized
// against in-flight conversions at this layer.
type Engine interface {
	Convert(input string, cfg config.Config, punctuation bool) string
	ZhoCheck(input string) ScriptCode
	Parallel() bool
	SetParallel(parallel bool)
	Close(ctx context.Context) error
}
