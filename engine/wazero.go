package engine

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/zhoconv/bridge"
	"github.com/zhoconv/bridge/config"
	"github.com/zhoconv/bridge/errors"
	"github.com/zhoconv/bridge/lasterror"
)

// Exports the engine wasm build must provide. The signatures mirror
// the engine's C surface: pointers and handles travel as i32.
const (
	exportNew         = "opencc_new"
	exportDelete      = "opencc_delete"
	exportConvertCfg  = "opencc_convert_cfg"
	exportZhoCheck    = "opencc_zho_check"
	exportGetParallel = "opencc_get_parallel"
	exportSetParallel = "opencc_set_parallel"
	exportStringFree  = "opencc_string_free"
	exportMalloc      = "malloc"
	exportFree        = "free"
)

var requiredExports = []string{
	exportNew, exportDelete, exportConvertCfg, exportZhoCheck,
	exportGetParallel, exportSetParallel, exportStringFree,
	exportMalloc, exportFree,
}

// wasmEngine adapts a wazero-hosted engine build to bridge.Engine.
//
// The guest is single-threaded, so all calls into it are serialized by
// a mutex regardless of the engine's own parallel flag; that flag
// controls the guest's internal strategy (how it segments work), not
// host-side call concurrency.
type wasmEngine struct {
	runtime wazero.Runtime
	module  api.Module
	inst    uint32 // guest instance pointer from opencc_new

	mu         sync.Mutex
	fnDelete   api.Function
	fnConvert  api.Function
	fnZhoCheck api.Function
	fnGetPar   api.Function
	fnSetPar   api.Function
	fnStrFree  api.Function
	fnMalloc   api.Function
	fnFree     api.Function
}

// New constructs the wazero-backed engine from opts. It fails when no
// wasm build is configured, the build does not compile, a required
// export is missing, or the guest refuses to initialize.
func New(ctx context.Context, opts Options) (bridge.Engine, error) {
	wasmBytes := opts.WasmBytes
	if wasmBytes == nil {
		if opts.WasmPath == "" {
			return nil, errors.Construction(fmt.Errorf("no engine wasm build configured"))
		}
		data, err := os.ReadFile(opts.WasmPath)
		if err != nil {
			return nil, errors.Construction(fmt.Errorf("read engine build: %w", err))
		}
		wasmBytes = data
	}

	runtimeCfg := wazero.NewRuntimeConfig()
	if opts.MemoryLimitPages > 0 {
		runtimeCfg = runtimeCfg.WithMemoryLimitPages(opts.MemoryLimitPages)
	}
	runtime := wazero.NewRuntimeWithConfig(ctx, runtimeCfg)

	module, err := runtime.Instantiate(ctx, wasmBytes)
	if err != nil {
		_ = runtime.Close(ctx)
		return nil, errors.Construction(fmt.Errorf("instantiate engine build: %w", err))
	}

	for _, name := range requiredExports {
		if module.ExportedFunction(name) == nil {
			_ = runtime.Close(ctx)
			return nil, errors.Construction(fmt.Errorf("engine build missing export %q", name))
		}
	}

	e := &wasmEngine{
		runtime:    runtime,
		module:     module,
		fnDelete:   module.ExportedFunction(exportDelete),
		fnConvert:  module.ExportedFunction(exportConvertCfg),
		fnZhoCheck: module.ExportedFunction(exportZhoCheck),
		fnGetPar:   module.ExportedFunction(exportGetParallel),
		fnSetPar:   module.ExportedFunction(exportSetParallel),
		fnStrFree:  module.ExportedFunction(exportStringFree),
		fnMalloc:   module.ExportedFunction(exportMalloc),
		fnFree:     module.ExportedFunction(exportFree),
	}

	res, err := module.ExportedFunction(exportNew).Call(ctx)
	if err != nil || len(res) == 0 || uint32(res[0]) == 0 {
		_ = runtime.Close(ctx)
		if err == nil {
			err = fmt.Errorf("%s returned a null instance", exportNew)
		}
		return nil, errors.Construction(err)
	}
	e.inst = uint32(res[0])

	e.SetParallel(opts.Parallel)

	Logger().Debug("engine constructed",
		zap.Uint32("guest_instance", e.inst),
		zap.Bool("parallel", opts.Parallel))

	return e, nil
}

// Factory returns a constructor closure over opts, for callers that
// create instances on demand.
func Factory(opts Options) func(ctx context.Context) (bridge.Engine, error) {
	return func(ctx context.Context) (bridge.Engine, error) {
		return New(ctx, opts)
	}
}

func (e *wasmEngine) Convert(input string, cfg config.Config, punctuation bool) string {
	if input == "" {
		return ""
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	ctx := context.Background()

	inPtr, ok := e.writeCString(ctx, input)
	if !ok {
		return ""
	}
	defer e.guestFree(ctx, inPtr)

	punct := uint64(0)
	if punctuation {
		punct = 1
	}
	res, err := e.fnConvert.Call(ctx, uint64(e.inst), uint64(inPtr), uint64(cfg), punct)
	if err != nil || len(res) == 0 {
		Logger().Warn("guest convert trapped", zap.Error(err))
		return ""
	}
	outPtr := uint32(res[0])
	if outPtr == 0 {
		return ""
	}
	out := e.readCString(outPtr)
	if _, err := e.fnStrFree.Call(ctx, uint64(outPtr)); err != nil {
		Logger().Warn("guest string free trapped", zap.Error(err))
	}
	return out
}

func (e *wasmEngine) ZhoCheck(input string) bridge.ScriptCode {
	e.mu.Lock()
	defer e.mu.Unlock()

	ctx := context.Background()

	inPtr, ok := e.writeCString(ctx, input)
	if !ok {
		return bridge.ScriptInvalid
	}
	defer e.guestFree(ctx, inPtr)

	res, err := e.fnZhoCheck.Call(ctx, uint64(e.inst), uint64(inPtr))
	if err != nil || len(res) == 0 {
		return bridge.ScriptInvalid
	}
	return bridge.ScriptCode(int32(uint32(res[0])))
}

func (e *wasmEngine) Parallel() bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	res, err := e.fnGetPar.Call(context.Background(), uint64(e.inst))
	if err != nil || len(res) == 0 {
		return false
	}
	return res[0] != 0
}

func (e *wasmEngine) SetParallel(parallel bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	v := uint64(0)
	if parallel {
		v = 1
	}
	if _, err := e.fnSetPar.Call(context.Background(), uint64(e.inst), v); err != nil {
		Logger().Warn("guest set_parallel trapped", zap.Error(err))
	}
}

func (e *wasmEngine) Close(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.inst != 0 {
		if _, err := e.fnDelete.Call(ctx, uint64(e.inst)); err != nil {
			Logger().Warn("guest delete trapped", zap.Error(err))
		}
		e.inst = 0
	}
	return e.runtime.Close(ctx)
}

// writeCString copies s into guest memory as a NUL-terminated string
// and returns the guest pointer. Caller must guestFree the pointer.
func (e *wasmEngine) writeCString(ctx context.Context, s string) (uint32, bool) {
	size := uint32(len(s)) + 1
	res, err := e.fnMalloc.Call(ctx, uint64(size))
	if err != nil || len(res) == 0 || uint32(res[0]) == 0 {
		aerr := errors.AllocationFailed(errors.PhaseConvert, size)
		lasterror.Record(aerr.Detail)
		Logger().Warn("guest malloc failed", zap.Uint32("size", size), zap.Error(err))
		return 0, false
	}
	ptr := uint32(res[0])

	mem := e.module.Memory()
	if !mem.WriteString(ptr, s) || !mem.WriteByte(ptr+uint32(len(s)), 0) {
		e.guestFree(ctx, ptr)
		return 0, false
	}
	return ptr, true
}

func (e *wasmEngine) guestFree(ctx context.Context, ptr uint32) {
	if ptr == 0 {
		return
	}
	if _, err := e.fnFree.Call(ctx, uint64(ptr)); err != nil {
		Logger().Warn("guest free trapped", zap.Error(err))
	}
}

// readCString reads a NUL-terminated string from guest memory in
// bounded chunks, never past the end of linear memory.
func (e *wasmEngine) readCString(ptr uint32) string {
	const chunk = 256

	mem := e.module.Memory()
	size := mem.Size()
	var out []byte
	for off := ptr; off < size; {
		n := uint32(chunk)
		if off+n > size {
			n = size - off
		}
		data, ok := mem.Read(off, n)
		if !ok {
			break
		}
		for i, b := range data {
			if b == 0 {
				return string(append(out, data[:i]...))
			}
		}
		out = append(out, data...)
		off += n
	}
	// Unterminated output: surface what was readable.
	return string(out)
}
