// Package bridge defines the interop contract for driving an opaque
// Chinese-script conversion engine from Go and, through Go, from
// foreign callers that cannot link the engine directly.
//
// The engine itself (dictionaries, segmentation, phrase tables) is a
// black box behind the Engine interface. This module covers only the
// boundary: instance lifecycle, the conversion entry points, the
// two-phase caller-buffer protocol, and the last-error channel.
//
// # Architecture Overview
//
//	bridge/           Root package with the Engine interface and script codes
//	├── config/       Conversion-direction registry (16 names <-> stable ids)
//	├── errors/       Structured error types for the boundary
//	├── lasterror/    Last-failure message slot read by foreign callers
//	├── engine/       Engine construction: options, logging, wazero hosting
//	├── handle/       Instance handle table (handle 0 is always invalid)
//	├── boundary/     The conversion entry points and buffer protocol
//	└── client/       High-level ownership-safe converter
//
// # Quick Start
//
//	br := boundary.New(engine.Factory(opts))
//	defer br.Close(ctx)
//
//	h, err := br.NewInstance(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer br.Delete(ctx, h)
//
//	out := br.Convert(h, "意大利面", "s2twp", true)
//
// # Thread Safety
//
// The handle table and the error slot are safe for concurrent use.
// Sharing one handle across goroutines for conversions is an explicit
// opt-in via SetParallel; flipping the parallel flag concurrently with
// conversions is not synchronized at this layer and must be serialized
// by the caller.
package bridge
