package engine

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Options holds configuration for engine construction.
type Options struct {
	// WasmPath locates the engine's wasm build on disk. Ignored when
	// WasmBytes is set.
	WasmPath string `toml:"wasm_path"`

	// WasmBytes is the engine's wasm build, already in memory.
	WasmBytes []byte `toml:"-"`

	// Parallel is the engine's initial concurrency strategy.
	Parallel bool `toml:"parallel"`

	// MemoryLimitPages caps the engine's linear memory in 64KB pages.
	// 0 means the runtime default.
	MemoryLimitPages uint32 `toml:"memory_limit_pages"`
}

// LoadOptions parses an engine options file in TOML format.
func LoadOptions(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, fmt.Errorf("read options file: %w", err)
	}
	var opts Options
	if err := toml.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("parse options file: %w", err)
	}
	return opts, nil
}
