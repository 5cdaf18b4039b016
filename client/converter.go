package client

import (
	"context"
	"sync"

	"github.com/zhoconv/bridge"
	"github.com/zhoconv/bridge/boundary"
	"github.com/zhoconv/bridge/config"
	"github.com/zhoconv/bridge/handle"
	"github.com/zhoconv/bridge/lasterror"
)

// Converter composes one engine instance with a remembered
// (direction, punctuation) pair.
//
// The conversion methods may be called concurrently once the engine's
// parallel mode is enabled; the configuration setters are not
// synchronized against in-flight conversions and must be serialized by
// the caller, matching the boundary contract.
type Converter struct {
	mu     sync.Mutex
	bridge *boundary.Bridge
	h      handle.Handle

	cfg   config.Config
	punct bool
}

// New constructs a Converter on br with the default direction and
// punctuation off. Fails only when the engine itself cannot be
// constructed.
func New(ctx context.Context, br *boundary.Bridge) (*Converter, error) {
	h, err := br.NewInstance(ctx)
	if err != nil {
		return nil, err
	}
	return &Converter{
		bridge: br,
		h:      h,
		cfg:    config.Default,
	}, nil
}

// SetConfig remembers the direction named by name. Self-protecting:
// an unknown name silently becomes the default direction.
func (c *Converter) SetConfig(name string) {
	id, ok := config.NameToID(name)
	if !ok {
		id = config.Default
	}
	c.mu.Lock()
	c.cfg = id
	c.mu.Unlock()
}

// SetConfigID remembers a numeric direction id. Self-protecting like
// SetConfig.
func (c *Converter) SetConfigID(id config.Config) {
	if !config.IsValid(id) {
		id = config.Default
	}
	c.mu.Lock()
	c.cfg = id
	c.mu.Unlock()
}

// ConfigID returns the remembered direction.
func (c *Converter) ConfigID() config.Config {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cfg
}

// SetPunctuation remembers whether punctuation is converted.
func (c *Converter) SetPunctuation(enabled bool) {
	c.mu.Lock()
	c.punct = enabled
	c.mu.Unlock()
}

// Punctuation returns the remembered punctuation flag.
func (c *Converter) Punctuation() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.punct
}

// Convert converts input under the remembered direction and
// punctuation flag.
func (c *Converter) Convert(input string) string {
	c.mu.Lock()
	h, cfg, punct := c.h, c.cfg, c.punct
	c.mu.Unlock()

	out, _ := c.bridge.ConvertCfg(h, input, cfg, punct)
	return out
}

// ConvertWith converts input under an explicit direction name and
// punctuation flag, leaving the remembered configuration untouched.
// Unknown names fall back to the default direction.
func (c *Converter) ConvertWith(input, name string, punctuation bool) string {
	c.mu.Lock()
	h := c.h
	c.mu.Unlock()

	return c.bridge.Convert(h, input, name, punctuation)
}

// ZhoCheck classifies the dominant script of input. Empty input
// classifies as ScriptMixed by this package's convention; the engine
// is not consulted. That convention is a wrapper default, not an
// engine guarantee.
func (c *Converter) ZhoCheck(input string) bridge.ScriptCode {
	if input == "" {
		return bridge.ScriptMixed
	}
	c.mu.Lock()
	h := c.h
	c.mu.Unlock()

	return c.bridge.ZhoCheck(h, input)
}

// SetParallel flips the engine's concurrency strategy.
func (c *Converter) SetParallel(parallel bool) {
	c.mu.Lock()
	h := c.h
	c.mu.Unlock()
	c.bridge.SetParallel(h, parallel)
}

// Parallel reports the engine's concurrency strategy.
func (c *Converter) Parallel() bool {
	c.mu.Lock()
	h := c.h
	c.mu.Unlock()
	return c.bridge.Parallel(h)
}

// Handoff transfers engine ownership to a fresh Converter and empties
// the source, whose Close becomes a no-op. The remembered
// configuration moves with the engine.
func (c *Converter) Handoff() *Converter {
	c.mu.Lock()
	defer c.mu.Unlock()

	moved := &Converter{
		bridge: c.bridge,
		h:      c.h,
		cfg:    c.cfg,
		punct:  c.punct,
	}
	c.h = 0
	return moved
}

// Close disposes the owned engine instance. Idempotent: closing twice,
// or closing an emptied source after Handoff, does nothing.
func (c *Converter) Close() error {
	c.mu.Lock()
	h := c.h
	c.h = 0
	c.mu.Unlock()

	if h != 0 {
		c.bridge.Delete(context.Background(), h)
	}
	return nil
}

// LastError returns the most recent boundary failure message, or the
// "No error" sentinel.
func LastError() string {
	return lasterror.Last()
}

// ClearLastError resets the last-error slot without invalidating
// messages already returned by LastError.
func ClearLastError() {
	lasterror.Clear()
}
