// Package errors provides structured error types for the cl-interop library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: argument path, offending value, and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseMarshal, errors.KindNonASCII).
//		Path("strings", "3").
//		Value(byte(0xE9)).
//		Detail("byte 0xE9 at index %d", 7).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NonASCII(path, 7, 0xE9)
//	err := errors.InvalidObject(errors.PhasePack, path, "mem")
//
// Caller-contract violations (non-ASCII text, released handles handed to the
// packer) are reported as errors at the point of misuse. Nothing in this
// module retries them.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
