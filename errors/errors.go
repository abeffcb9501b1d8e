package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in processing the error occurred
type Phase string

const (
	PhaseMarshal Phase = "marshal" // text to scratch buffers
	PhasePack    Phase = "pack"    // native callback argument packing
	PhaseRelease Phase = "release" // hierarchical teardown
	PhaseScan    Phase = "scan"    // token table collection
	PhaseGuest   Phase = "guest"   // guest linear memory staging
	PhaseConfig  Phase = "config"  // option and flag validation
)

// Kind categorizes the error
type Kind string

const (
	KindNonASCII       Kind = "non_ascii"
	KindInvalidObject  Kind = "invalid_object"
	KindRetryExhausted Kind = "retry_exhausted"
	KindDestructor     Kind = "destructor"
	KindInvalidInput   Kind = "invalid_input"
	KindNotInitialized Kind = "not_initialized"
	KindOutOfBounds    Kind = "out_of_bounds"
	KindOverflow       Kind = "overflow"
	KindAllocation     Kind = "allocation"
	KindNotFound       Kind = "not_found"
)

// Error is the structured error type used throughout the module
type Error struct {
	Value  any
	Cause  error
	Phase  Phase
	Kind   Kind
	Object string
	Detail string
	Path   []string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if len(e.Path) > 0 {
		b.WriteString(" at ")
		b.WriteString(strings.Join(e.Path, "."))
	}

	if e.Object != "" {
		b.WriteString(": object ")
		b.WriteString(e.Object)
	}

	if e.Detail != "" {
		if e.Object != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Path sets the argument path
func (b *Builder) Path(path ...string) *Builder {
	b.err.Path = path
	return b
}

// Object sets the native object kind involved
func (b *Builder) Object(kind string) *Builder {
	b.err.Object = kind
	return b
}

// Value sets the offending value
func (b *Builder) Value(v any) *Builder {
	b.err.Value = v
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// NonASCII creates an error for a byte outside 7-bit ASCII
func NonASCII(path []string, index int, c byte) *Error {
	return &Error{
		Phase:  PhaseMarshal,
		Kind:   KindNonASCII,
		Path:   path,
		Detail: fmt.Sprintf("byte 0x%02X at index %d is not ASCII", c, index),
		Value:  c,
	}
}

// InvalidObject creates an error for a released or otherwise invalid native object
func InvalidObject(phase Phase, path []string, object string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidObject,
		Path:   path,
		Object: object,
		Detail: "an invalid object was specified",
	}
}

// RetryExhausted creates an error for a handle that stayed valid through every release attempt
func RetryExhausted(object string, attempts int, cause error) *Error {
	return &Error{
		Phase:  PhaseRelease,
		Kind:   KindRetryExhausted,
		Object: object,
		Detail: fmt.Sprintf("still valid after %d release attempts", attempts),
		Value:  attempts,
		Cause:  cause,
	}
}

// Destructor wraps an error reported by a native release operation
func Destructor(object string, cause error) *Error {
	return &Error{
		Phase:  PhaseRelease,
		Kind:   KindDestructor,
		Object: object,
		Detail: "native release failed",
		Cause:  cause,
	}
}

// OutOfBounds creates an out of bounds error
func OutOfBounds(phase Phase, path []string, index, length int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOutOfBounds,
		Path:   path,
		Detail: fmt.Sprintf("index %d out of bounds (length %d)", index, length),
		Value:  index,
	}
}

// Overflow creates an overflow error
func Overflow(phase Phase, path []string, value any, targetType string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Path:   path,
		Detail: fmt.Sprintf("value %v overflows %s", value, targetType),
		Value:  value,
	}
}

// AllocationFailed creates an allocation failure error
func AllocationFailed(phase Phase, size, align uint32, cause error) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindAllocation,
		Detail: fmt.Sprintf("failed to allocate %d bytes (align %d)", size, align),
		Cause:  cause,
	}
}

// NotInitialized creates a not-initialized error for a missing collaborator
func NotInitialized(phase Phase, component string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotInitialized,
		Detail: fmt.Sprintf("%s not initialized", component),
	}
}

// NotFound creates a not-found error
func NotFound(phase Phase, what, name string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNotFound,
		Detail: fmt.Sprintf("%s %q not found", what, name),
	}
}

// InvalidInput creates an invalid input error
func InvalidInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidInput,
		Detail: detail,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(phase Phase, kind Kind, cause error, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   kind,
		Detail: detail,
		Cause:  cause,
	}
}
