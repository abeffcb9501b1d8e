// Package scratch provides per-execution-context scratch buffers for native calls.
//
// Every call into the native library needs a little natively addressable
// memory: encoded strings, length tables, out-parameters. Allocating that
// memory per call is wasteful, so each caller owns a State whose buffers
// are reused across calls and only ever grow.
//
// # Ownership
//
// A State belongs to exactly one goroutine at a time. Nothing in this package
// locks; two goroutines must never share a State. Callers either keep a
// long-lived State, borrow one from the package pool, or carry one through
// a context.Context:
//
//	st := scratch.Acquire()
//	defer scratch.Release(st)
//
//	ctx = scratch.WithState(ctx, st)
//	...
//	st = scratch.FromContext(ctx)
//
// # Growth
//
// When a request exceeds a buffer's capacity the capacity doubles until it
// fits and a fresh backing array is allocated; the old one is dropped.
// Otherwise the existing buffer is cleared (position 0, limit = capacity)
// and handed back with its old bytes still in place.
//
//	Buffer        Initial   Accessor
//	──────────────────────────────────────────
//	chars         256       CharArray(n)
//	bytes         256       ByteBuffer(n), ByteBufferOffset(n)
//	pointers      256       PointerBuffer(n)
//	lengths       4         Lengths(n)
//	bundle        32 each   Shorts, Ints, Longs, Floats, Doubles, Pointers
//	intsDebug     1         IntsDebug
//
// # Reentrancy
//
// Requesting a buffer kind again returns the same backing storage. A caller
// must finish with a buffer before asking the same State for another buffer
// of the same kind.
package scratch
