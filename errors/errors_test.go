package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhasePack,
				Kind:   KindInvalidObject,
				Path:   []string{"mems", "2"},
				Object: "mem",
				Detail: "released",
			},
			contains: []string{"[pack]", "invalid_object", "mems.2", "object mem", " - released"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseMarshal,
				Kind:  KindOutOfBounds,
			},
			contains: []string{"[marshal]", "out_of_bounds"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseGuest,
				Kind:   KindAllocation,
				Detail: "memory full",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[guest]", "allocation", ": memory full", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Destructor("kernel", cause)

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the cause through Unwrap")
	}
}

func TestError_Is(t *testing.T) {
	err := NonASCII([]string{"s"}, 3, 0xE9)

	if !errors.Is(err, &Error{Phase: PhaseMarshal, Kind: KindNonASCII}) {
		t.Error("Is should match same phase and kind")
	}
	if errors.Is(err, &Error{Phase: PhasePack, Kind: KindNonASCII}) {
		t.Error("Is should not match different phase")
	}
	if errors.Is(err, &Error{Phase: PhaseMarshal, Kind: KindOutOfBounds}) {
		t.Error("Is should not match different kind")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseRelease, KindDestructor).
		Path("context", "programs").
		Object("program").
		Value(42).
		Cause(cause).
		Detail("attempt %d of %d", 3, 5).
		Build()

	if err.Phase != PhaseRelease {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseRelease)
	}
	if err.Kind != KindDestructor {
		t.Errorf("Kind = %v, want %v", err.Kind, KindDestructor)
	}
	if len(err.Path) != 2 || err.Path[0] != "context" || err.Path[1] != "programs" {
		t.Errorf("Path = %v, want [context programs]", err.Path)
	}
	if err.Object != "program" {
		t.Errorf("Object = %v, want 'program'", err.Object)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "attempt 3 of 5" {
		t.Errorf("Detail = %q", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	t.Run("NonASCII", func(t *testing.T) {
		err := NonASCII(nil, 7, 0xC3)
		if err.Kind != KindNonASCII || err.Phase != PhaseMarshal {
			t.Errorf("got %v/%v", err.Phase, err.Kind)
		}
		if !strings.Contains(err.Detail, "0xC3") || !strings.Contains(err.Detail, "index 7") {
			t.Errorf("Detail = %q", err.Detail)
		}
	})

	t.Run("InvalidObject", func(t *testing.T) {
		err := InvalidObject(PhasePack, []string{"mems", "0"}, "mem")
		if err.Kind != KindInvalidObject || err.Object != "mem" {
			t.Errorf("got %+v", err)
		}
	})

	t.Run("RetryExhausted", func(t *testing.T) {
		err := RetryExhausted("event", 16, nil)
		if err.Value != 16 {
			t.Errorf("Value = %v, want 16", err.Value)
		}
		if !strings.Contains(err.Error(), "16 release attempts") {
			t.Errorf("message = %q", err.Error())
		}
	})

	t.Run("Overflow", func(t *testing.T) {
		err := Overflow(PhaseGuest, nil, uint64(1)<<40, "u32")
		if err.Kind != KindOverflow || !strings.Contains(err.Detail, "overflows u32") {
			t.Errorf("got %+v", err)
		}
	})

	t.Run("NotInitialized", func(t *testing.T) {
		err := NotInitialized(PhaseRelease, "destructor for kernel")
		if err.Detail != "destructor for kernel not initialized" {
			t.Errorf("Detail = %q", err.Detail)
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		cause := errors.New("boom")
		err := Wrap(PhaseScan, KindInvalidInput, cause, "table")
		if !errors.Is(err, cause) {
			t.Error("Wrap should keep the cause")
		}
	})
}
