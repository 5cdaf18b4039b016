// Package enginetest provides a deterministic in-memory engine for
// exercising the boundary without a real engine build.
package enginetest

import (
	"context"
	"strings"
	"sync"

	"github.com/zhoconv/bridge"
	"github.com/zhoconv/bridge/config"
)

// Engine is a fake bridge.Engine. Conversion applies a per-direction
// rune substitution table; classification is derived from which table
// matches the input. The zero value converts nothing; New returns an
// engine with a small built-in lexicon.
type Engine struct {
	mu       sync.Mutex
	parallel bool
	closed   bool

	// Tables maps a direction id to its rune substitutions.
	Tables map[config.Config]map[rune]rune

	// Punct maps punctuation runes, applied only when the punctuation
	// flag is set.
	Punct map[rune]rune

	// Call counters, for asserting the empty-input shortcut.
	ConvertCalls  int
	ZhoCheckCalls int
	CloseCalls    int
}

// New returns a fake engine with a minimal simplified/traditional
// lexicon covering both directions.
func New() *Engine {
	s2t := map[rune]rune{'汉': '漢', '国': '國', '体': '體', '们': '們', '么': '麼', '发': '發'}
	t2s := make(map[rune]rune, len(s2t))
	for s, t := range s2t {
		t2s[t] = s
	}
	return &Engine{
		Tables: map[config.Config]map[rune]rune{
			config.S2T:   s2t,
			config.S2TW:  s2t,
			config.S2TWP: s2t,
			config.S2HK:  s2t,
			config.T2S:   t2s,
			config.TW2S:  t2s,
			config.TW2SP: t2s,
			config.HK2S:  t2s,
		},
		Punct: map[rune]rune{'“': '「', '”': '」'},
	}
}

func (e *Engine) Convert(input string, cfg config.Config, punctuation bool) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.ConvertCalls++
	if e.closed {
		return ""
	}

	table := e.Tables[cfg]
	var b strings.Builder
	b.Grow(len(input))
	for _, r := range input {
		if mapped, ok := table[r]; ok {
			r = mapped
		} else if punctuation {
			if mapped, ok := e.Punct[r]; ok {
				r = mapped
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (e *Engine) ZhoCheck(input string) bridge.ScriptCode {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.ZhoCheckCalls++
	if e.closed || input == "" {
		return bridge.ScriptInvalid
	}

	simplified := e.Tables[config.S2T]
	traditional := e.Tables[config.T2S]
	for _, r := range input {
		if _, ok := simplified[r]; ok {
			return bridge.ScriptSimplified
		}
		if _, ok := traditional[r]; ok {
			return bridge.ScriptTraditional
		}
	}
	return bridge.ScriptMixed
}

func (e *Engine) Parallel() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.parallel
}

func (e *Engine) SetParallel(parallel bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.parallel = parallel
}

func (e *Engine) Close(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.CloseCalls++
	e.closed = true
	return nil
}

var _ bridge.Engine = (*Engine)(nil)
