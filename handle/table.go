package handle

import (
	"context"
	"sync"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/zhoconv/bridge"
	"github.com/zhoconv/bridge/engine"
)

// Handle is an opaque reference to an engine instance in a table.
// Handle 0 is reserved and always invalid.
type Handle uint32

type entry struct {
	eng bridge.Engine
	id  ulid.ULID // correlation id for lifecycle logs
}

// Table is an in-memory registry of live engine instances.
// Safe for concurrent use.
type Table struct {
	mu      sync.RWMutex
	entries map[Handle]entry
	next    Handle
	closed  bool
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		entries: make(map[Handle]entry, 4),
	}
}

// Insert registers eng and returns its handle, or 0 when the table is
// closed or eng is nil.
func (t *Table) Insert(eng bridge.Engine) Handle {
	if eng == nil {
		return 0
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return 0
	}

	t.next++
	h := t.next
	id := ulid.Make()
	t.entries[h] = entry{eng: eng, id: id}

	engine.Logger().Debug("instance registered",
		zap.Uint32("handle", uint32(h)),
		zap.String("instance_id", id.String()))

	return h
}

// Get retrieves the engine for h.
func (t *Table) Get(h Handle) (bridge.Engine, bool) {
	if h == 0 {
		return nil, false
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	e, ok := t.entries[h]
	if !ok {
		return nil, false
	}
	return e.eng, true
}

// Remove drops h and returns its engine. Unknown or zero handles are a
// no-op returning false, so disposing twice is always safe.
func (t *Table) Remove(h Handle) (bridge.Engine, bool) {
	if h == 0 {
		return nil, false
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	e, ok := t.entries[h]
	if !ok {
		return nil, false
	}
	delete(t.entries, h)

	engine.Logger().Debug("instance removed",
		zap.Uint32("handle", uint32(h)),
		zap.String("instance_id", e.id.String()))

	return e.eng, true
}

// Len returns the number of live instances.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Close disposes every live instance and stops accepting inserts.
// The first engine close error is returned; the sweep always finishes.
func (t *Table) Close(ctx context.Context) error {
	t.mu.Lock()
	t.closed = true
	remaining := t.entries
	t.entries = make(map[Handle]entry)
	t.mu.Unlock()

	var firstErr error
	for h, e := range remaining {
		if err := e.eng.Close(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
		engine.Logger().Debug("instance disposed at table close",
			zap.Uint32("handle", uint32(h)),
			zap.String("instance_id", e.id.String()))
	}
	return firstErr
}
