// Package clinterop is the interop utility layer of a native compute-API binding.
//
// It sits between generated call bindings and the native library and
// provides the pieces every binding call needs but none of them should
// implement on its own.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	clinterop/          Root package with the Object contract and PointerSize
//	├── scratch/        Per-context scratch buffers that grow and never shrink
//	├── marshal/        ASCII string encoders, length tables, callback arguments
//	├── resource/       Handle-keyed child registries and a reference object model
//	├── release/        Reference-count gated cascading release of child objects
//	├── tokens/         Static token tables and extension-list parsing
//	├── guestmem/       Staging of scratch buffers into wazero guest memory
//	├── errors/         Structured error types
//	└── cmd/cltokens/   Diagnostic CLI for token tables
//
// # Quick Start
//
// Encode a program source for a native call:
//
//	st := scratch.Acquire()
//	defer scratch.Release(st)
//
//	m := marshal.New(st)
//	src, err := m.EncodeAll(sources)
//	if err != nil {
//	    return err
//	}
//	lengths := m.Lengths(sources)
//	// pass src.Ptr() and lengths.Ptr() to the native call
//
// Tear down a context's children when its last reference goes away:
//
//	r := release.New(release.CLDestructors(api))
//	if err := r.ReleaseContext(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
// # Thread Safety
//
// Scratch state is per execution context and never shared: give every
// goroutine that issues native calls its own scratch.State. Registries and
// the reference object model are safe for concurrent use. A Releaser
// re-checks handle validity before every release call but does not make a
// teardown linearizable against concurrent registration.
package clinterop
