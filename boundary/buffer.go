package boundary

import (
	"strings"

	"github.com/zhoconv/bridge/config"
	"github.com/zhoconv/bridge/errors"
	"github.com/zhoconv/bridge/handle"
	"github.com/zhoconv/bridge/lasterror"
)

// ConvertCfgInto converts input under a numeric direction id into a
// caller-owned buffer, following the two-phase size-query protocol.
//
// The returned required size counts the converted bytes plus one
// terminator byte and is reported on every call, success or failure:
//
//   - buf nil or empty: size query. The conversion runs, required is
//     reported, nothing is copied, err is nil.
//   - len(buf) >= required: the result plus a 0x00 terminator is
//     copied into buf, err is nil.
//   - 0 < len(buf) < required: nothing is written, the last-error slot
//     records a buffer-too-small message, and err reports it.
//
// An invalid id follows the self-protected convention of this entry
// point: the "Invalid config: <id>" text becomes the result (sized and
// copied like any other), the last-error slot records it, and the call
// itself succeeds.
//
// A result with an interior terminator byte would be silently
// truncated by C-shaped readers, so it fails distinctly with an
// integrity error instead of being copied.
//
// buf is caller-allocated and caller-freed; it never passes through
// any release operation of this package.
func (b *Bridge) ConvertCfgInto(h handle.Handle, input string, id config.Config, punctuation bool, buf []byte) (int, error) {
	eng, ok := b.table.Get(h)
	if !ok {
		return 0, errors.NilArgument(errors.PhaseBuffer, "handle")
	}

	var result string
	switch {
	case input == "":
		// Empty input converts to empty output without the engine.
	case !config.IsValid(id):
		err := errors.InvalidConfig(errors.PhaseBuffer, uint32(id))
		lasterror.Record(err.Detail)
		result = err.Detail
	default:
		result = eng.Convert(input, id, punctuation)
	}

	required := len(result) + 1

	if strings.IndexByte(result, 0) >= 0 {
		err := errors.Integrity(errors.PhaseBuffer, "conversion result contains an embedded terminator")
		lasterror.Record(err.Detail)
		return required, err
	}

	if len(buf) == 0 {
		return required, nil
	}
	if len(buf) < required {
		err := errors.BufferTooSmall(required, len(buf))
		lasterror.Record(err.Detail)
		return required, err
	}

	copy(buf, result)
	buf[len(result)] = 0
	return required, nil
}
