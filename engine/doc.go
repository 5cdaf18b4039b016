// Package engine constructs the opaque conversion engine behind the
// bridge.
//
// The engine ships as a core WebAssembly build exposing a fixed set of
// C-shaped exports; this package hosts it with wazero and adapts those
// exports to the bridge.Engine interface. Engine options can be given
// directly or loaded from a TOML file.
//
// The conversion algorithm itself is entirely the guest's business;
// nothing in this package inspects or reimplements it.
package engine
