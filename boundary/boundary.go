package boundary

import (
	"context"

	"github.com/zhoconv/bridge"
	"github.com/zhoconv/bridge/config"
	"github.com/zhoconv/bridge/errors"
	"github.com/zhoconv/bridge/handle"
	"github.com/zhoconv/bridge/lasterror"
)

// EngineFactory constructs one engine instance. engine.Factory adapts
// engine.Options into one; tests substitute fakes.
type EngineFactory func(ctx context.Context) (bridge.Engine, error)

// Bridge routes the boundary operations to engine instances tracked in
// a handle table.
type Bridge struct {
	table     *handle.Table
	newEngine EngineFactory
}

// New creates a Bridge that constructs instances with newEngine.
func New(newEngine EngineFactory) *Bridge {
	return &Bridge{
		table:     handle.NewTable(),
		newEngine: newEngine,
	}
}

// NewInstance constructs an engine instance and returns its handle.
// Construction failure is recorded in the last-error slot and
// returned; the handle is 0 in that case.
func (b *Bridge) NewInstance(ctx context.Context) (handle.Handle, error) {
	if b.newEngine == nil {
		err := errors.Construction(errors.NilArgument(errors.PhaseInit, "engine factory"))
		lasterror.Record(err.Detail)
		return 0, err
	}

	eng, err := b.newEngine(ctx)
	if err != nil {
		werr := errors.Wrap(errors.PhaseInit, errors.KindConstruction, err, "construct engine")
		lasterror.Record(werr.Error())
		return 0, werr
	}

	h := b.table.Insert(eng)
	if h == 0 {
		_ = eng.Close(ctx)
		err := errors.Closed(errors.PhaseRuntime, "bridge")
		lasterror.Record(err.Detail)
		return 0, err
	}
	return h, nil
}

// Delete disposes the instance behind h. Zero or unknown handles are a
// defined no-op, so disposing twice is always safe.
func (b *Bridge) Delete(ctx context.Context, h handle.Handle) {
	if eng, ok := b.table.Remove(h); ok {
		_ = eng.Close(ctx)
	}
}

// Parallel reports the engine's concurrency strategy, or false for an
// invalid handle.
func (b *Bridge) Parallel(h handle.Handle) bool {
	eng, ok := b.table.Get(h)
	if !ok {
		return false
	}
	return eng.Parallel()
}

// SetParallel flips the engine's concurrency strategy. Not
// synchronized against in-flight conversions; callers serialize
// configuration changes externally.
func (b *Bridge) SetParallel(h handle.Handle, parallel bool) {
	if eng, ok := b.table.Get(h); ok {
		eng.SetParallel(parallel)
	}
}

// Convert converts input under the named direction. Unknown names
// silently fall back to the default direction; this entry point never
// records an error. An invalid handle yields the empty string.
func (b *Bridge) Convert(h handle.Handle, input, name string, punctuation bool) string {
	if input == "" {
		return ""
	}
	eng, ok := b.table.Get(h)
	if !ok {
		return ""
	}
	return eng.Convert(input, resolveName(name), punctuation)
}

// ConvertLen converts a byte slice that need not be terminator-shaped
// or even a full string; semantics otherwise match Convert.
func (b *Bridge) ConvertLen(h handle.Handle, input []byte, name string, punctuation bool) string {
	if len(input) == 0 {
		return ""
	}
	eng, ok := b.table.Get(h)
	if !ok {
		return ""
	}
	return eng.Convert(string(input), resolveName(name), punctuation)
}

// ConvertCfg converts input under a numeric direction id. This is the
// strict entry point: an invalid id returns the descriptive text
// "Invalid config: <id>" as the result, records the same message in
// the last-error slot, and reports an invalid_config error. This is
// the one case where the returned text describes a failure instead of
// converted output.
func (b *Bridge) ConvertCfg(h handle.Handle, input string, id config.Config, punctuation bool) (string, error) {
	if input == "" {
		return "", nil
	}
	eng, ok := b.table.Get(h)
	if !ok {
		return "", errors.NilArgument(errors.PhaseConvert, "handle")
	}
	if !config.IsValid(id) {
		err := errors.InvalidConfig(errors.PhaseConvert, uint32(id))
		lasterror.Record(err.Detail)
		return err.Detail, err
	}
	return eng.Convert(input, id, punctuation), nil
}

// ZhoCheck classifies the dominant script of input, or ScriptInvalid
// for an invalid handle. Empty-input behavior is the engine's; the
// client package layers its own convention on top.
func (b *Bridge) ZhoCheck(h handle.Handle, input string) bridge.ScriptCode {
	eng, ok := b.table.Get(h)
	if !ok {
		return bridge.ScriptInvalid
	}
	return eng.ZhoCheck(input)
}

// LastError returns the most recent boundary failure message, or the
// "No error" sentinel.
func (b *Bridge) LastError() string {
	return lasterror.Last()
}

// ClearLastError resets the last-error slot. Messages already returned
// by LastError stay valid.
func (b *Bridge) ClearLastError() {
	lasterror.Clear()
}

// Len reports the number of live instances.
func (b *Bridge) Len() int {
	return b.table.Len()
}

// Close disposes every live instance and rejects further NewInstance
// calls.
func (b *Bridge) Close(ctx context.Context) error {
	return b.table.Close(ctx)
}

// resolveName maps a direction name to its id, substituting the
// default direction for unknown names.
func resolveName(name string) config.Config {
	if id, ok := config.NameToID(name); ok {
		return id
	}
	return config.Default
}
