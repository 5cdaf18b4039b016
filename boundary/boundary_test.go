package boundary

import (
	"context"
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zhoconv/bridge"
	"github.com/zhoconv/bridge/config"
	"github.com/zhoconv/bridge/engine/enginetest"
	"github.com/zhoconv/bridge/errors"
	"github.com/zhoconv/bridge/handle"
	"github.com/zhoconv/bridge/lasterror"
)

func newTestBridge(t *testing.T) (*Bridge, *enginetest.Engine, handle.Handle) {
	t.Helper()
	lasterror.Clear()

	var eng *enginetest.Engine
	br := New(func(ctx context.Context) (bridge.Engine, error) {
		eng = enginetest.New()
		return eng, nil
	})
	t.Cleanup(func() { _ = br.Close(context.Background()) })

	h, err := br.NewInstance(context.Background())
	require.NoError(t, err)
	require.NotEqual(t, handle.Handle(0), h)
	return br, eng, h
}

func TestLifecycle(t *testing.T) {
	br, eng, h := newTestBridge(t)

	assert.Equal(t, 1, br.Len())
	br.Delete(context.Background(), h)
	assert.Equal(t, 0, br.Len())
	assert.Equal(t, 1, eng.CloseCalls)

	// Disposing again is a defined no-op.
	br.Delete(context.Background(), h)
	assert.Equal(t, 1, eng.CloseCalls)
}

func TestNewInstanceFailureRecordsLastError(t *testing.T) {
	lasterror.Clear()
	br := New(func(ctx context.Context) (bridge.Engine, error) {
		return nil, fmt.Errorf("dictionaries unavailable")
	})

	h, err := br.NewInstance(context.Background())
	require.Error(t, err)
	assert.Equal(t, handle.Handle(0), h)
	assert.True(t, stderrors.Is(err, &errors.Error{Phase: errors.PhaseInit, Kind: errors.KindConstruction}))
	assert.Contains(t, br.LastError(), "dictionaries unavailable")
}

func TestConvertByName(t *testing.T) {
	br, _, h := newTestBridge(t)

	assert.Equal(t, "漢", br.Convert(h, "汉", "s2t", false))
	assert.Equal(t, "汉", br.Convert(h, "漢", "t2s", false))
}

func TestConvertUnknownNameFallsBackSilently(t *testing.T) {
	br, _, h := newTestBridge(t)
	br.ClearLastError()

	want := br.Convert(h, "汉们", "s2t", false)
	got := br.Convert(h, "汉们", "zh2piglatin", false)
	assert.Equal(t, want, got, "unknown name must behave as the default direction")
	assert.Equal(t, lasterror.Sentinel, br.LastError(), "lenient entry point must not record an error")
}

func TestConvertEmptyInputSkipsEngine(t *testing.T) {
	br, eng, h := newTestBridge(t)
	br.ClearLastError()

	assert.Equal(t, "", br.Convert(h, "", "s2t", true))
	assert.Equal(t, "", br.ConvertLen(h, nil, "s2t", true))
	out, err := br.ConvertCfg(h, "", config.S2T, true)
	require.NoError(t, err)
	assert.Equal(t, "", out)

	assert.Equal(t, 0, eng.ConvertCalls, "empty input must not reach the engine")
	assert.Equal(t, lasterror.Sentinel, br.LastError())
}

func TestConvertInvalidHandle(t *testing.T) {
	br, _, _ := newTestBridge(t)

	assert.Equal(t, "", br.Convert(0, "汉", "s2t", false))
	assert.Equal(t, "", br.Convert(999, "汉", "s2t", false))

	_, err := br.ConvertCfg(999, "汉", config.S2T, false)
	assert.True(t, stderrors.Is(err, &errors.Error{Phase: errors.PhaseConvert, Kind: errors.KindNilArgument}))
}

func TestConvertLen(t *testing.T) {
	br, _, h := newTestBridge(t)

	// A subslice of a larger byte region, no terminator anywhere.
	raw := []byte("汉汉汉")
	assert.Equal(t, "漢", br.ConvertLen(h, raw[:3], "s2t", false))
	assert.Equal(t, "漢", br.ConvertLen(h, raw[:3], "ZH2PIGLATIN", false))
}

func TestConvertCfg(t *testing.T) {
	br, _, h := newTestBridge(t)

	out, err := br.ConvertCfg(h, "汉", config.S2T, false)
	require.NoError(t, err)
	assert.Equal(t, "漢", out)
}

func TestConvertCfgInvalidIDIsStrict(t *testing.T) {
	br, eng, h := newTestBridge(t)
	br.ClearLastError()

	out, err := br.ConvertCfg(h, "汉", 9999, true)
	require.Error(t, err)
	assert.Equal(t, "Invalid config: 9999", out)
	assert.Equal(t, "Invalid config: 9999", br.LastError())
	assert.True(t, stderrors.Is(err, &errors.Error{Phase: errors.PhaseConvert, Kind: errors.KindInvalidConfig}))
	assert.Equal(t, 0, eng.ConvertCalls)
}

func TestZhoCheck(t *testing.T) {
	br, _, h := newTestBridge(t)

	assert.Equal(t, bridge.ScriptSimplified, br.ZhoCheck(h, "汉"))
	assert.Equal(t, bridge.ScriptTraditional, br.ZhoCheck(h, "漢"))
	assert.Equal(t, bridge.ScriptMixed, br.ZhoCheck(h, "hello"))
	assert.Equal(t, bridge.ScriptInvalid, br.ZhoCheck(0, "汉"))
}

func TestParallelFlag(t *testing.T) {
	br, _, h := newTestBridge(t)

	assert.False(t, br.Parallel(h))
	br.SetParallel(h, true)
	assert.True(t, br.Parallel(h))

	// Invalid handle: defined no-op / false.
	br.SetParallel(0, true)
	assert.False(t, br.Parallel(0))
}

func TestClearLastErrorSentinel(t *testing.T) {
	br, _, h := newTestBridge(t)

	_, _ = br.ConvertCfg(h, "汉", 9999, false)
	held := br.LastError()
	br.ClearLastError()

	assert.Equal(t, lasterror.Sentinel, br.LastError())
	assert.Equal(t, "Invalid config: 9999", held, "previously read message stays intact")
}

func TestCloseRejectsNewInstances(t *testing.T) {
	br, eng, _ := newTestBridge(t)

	require.NoError(t, br.Close(context.Background()))
	assert.Equal(t, 1, eng.CloseCalls)

	_, err := br.NewInstance(context.Background())
	require.Error(t, err)
}
