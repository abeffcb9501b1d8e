// Package guestmem stages scratch buffers into WebAssembly linear memory.
//
// Some native libraries are shipped as WebAssembly modules and run under
// wazero. Their "native" pointers are offsets into the module's linear
// memory, so a buffer produced by marshal must be copied there before the
// call and pointer-width tables must be narrowed to 32-bit guest pointers.
//
// # Memory
//
// Wraps wazero api.Memory:
//
//	mem := guestmem.Wrap(mod.ExportedMemory("memory"))
//	n, err := mem.WriteBuffer(ptr, buf)
//
// # Allocator
//
// Wraps the guest's realloc-style export (ptr, oldSize, align, newSize) -> ptr:
//
//	alloc := guestmem.WrapAllocator(ctx, mod.ExportedFunction("cabi_realloc"))
//	ptr, err := guestmem.Stage(mem, alloc, buf)
package guestmem
