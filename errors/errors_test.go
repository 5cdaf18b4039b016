package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorFormat(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			"phase_kind_only",
			&Error{Phase: PhaseConvert, Kind: KindNilArgument},
			"[convert] nil_argument",
		},
		{
			"with_detail",
			InvalidConfig(PhaseConvert, 9999),
			"[convert] invalid_config: Invalid config: 9999",
		},
		{
			"with_cause",
			Wrap(PhaseInit, KindConstruction, fmt.Errorf("oom"), "construct engine"),
			"[init] construction: construct engine (caused by: oom)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsMatchesPhaseAndKind(t *testing.T) {
	err := BufferTooSmall(10, 4)
	if !stderrors.Is(err, &Error{Phase: PhaseBuffer, Kind: KindBufferTooSmall}) {
		t.Error("Is should match on phase+kind")
	}
	if stderrors.Is(err, &Error{Phase: PhaseConvert, Kind: KindBufferTooSmall}) {
		t.Error("Is should not match a different phase")
	}
}

func TestUnwrap(t *testing.T) {
	cause := fmt.Errorf("no memory")
	err := Construction(cause)
	if !stderrors.Is(err, cause) {
		t.Error("cause should be reachable through Unwrap")
	}
}

func TestBuilder(t *testing.T) {
	err := New(PhaseBuffer, KindIntegrity).
		Detail("embedded terminator at byte %d", 7).
		Value(7).
		Build()
	if err.Phase != PhaseBuffer || err.Kind != KindIntegrity {
		t.Fatalf("builder lost phase/kind: %+v", err)
	}
	if !strings.Contains(err.Error(), "embedded terminator at byte 7") {
		t.Errorf("detail not formatted: %q", err.Error())
	}
}

func TestInvalidConfigDetailIsStable(t *testing.T) {
	// The detail is part of the foreign-caller contract.
	if got := InvalidConfig(PhaseConvert, 42).Detail; got != "Invalid config: 42" {
		t.Errorf("detail = %q", got)
	}
}

func TestAllocationFailedDetail(t *testing.T) {
	err := AllocationFailed(PhaseConvert, 128)
	if !stderrors.Is(err, &Error{Phase: PhaseConvert, Kind: KindAllocation}) {
		t.Error("Is should match on phase+kind")
	}
	if got := err.Detail; got != "failed to allocate 128 bytes" {
		t.Errorf("detail = %q", got)
	}
}
