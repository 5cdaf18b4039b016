// Package client is the ownership-safe, high-level face of the bridge.
//
// A Converter owns exactly one engine instance together with a
// remembered direction and punctuation flag. It is not duplicable:
// ownership moves with Handoff, which leaves the source holding
// nothing so its Close becomes a no-op. Configuration setters
// self-protect (an unknown direction silently becomes the default),
// so a Converter never fails after construction.
package client
