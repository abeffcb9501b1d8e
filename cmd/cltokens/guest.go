package main

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/tetratelabs/wazero"

	"github.com/wippyai/cl-interop/guestmem"
	"github.com/wippyai/cl-interop/scratch"
)

// guestWASM is a minimal WASM module with 1 page of memory exported as "memory"
var guestWASM = []byte{
	0x00, 0x61, 0x73, 0x6d, // magic
	0x01, 0x00, 0x00, 0x00, // version
	0x05, 0x03, 0x01, 0x00, 0x01, // memory section: 1 page, no max
	0x07, 0x0a, 0x01, // export section: 10 bytes, 1 export
	0x06, 0x6d, 0x65, 0x6d, 0x6f, 0x72, 0x79, // name: "memory" (6 bytes + string)
	0x02, 0x00, // kind: memory, index 0
}

// guestHeapBase is where the demo allocator starts handing out memory.
const guestHeapBase = 0x1000

// stageExtensions copies the encoded extension list into the linear memory
// of an in-process guest module and reads it back.
func stageExtensions(w io.Writer, opts options, buf *scratch.ByteBuffer) error {
	ctx := context.Background()
	rt := wazero.NewRuntime(ctx)
	defer rt.Close(ctx)

	compiled, err := rt.CompileModule(ctx, guestWASM)
	if err != nil {
		return fmt.Errorf("compile guest: %w", err)
	}
	mod, err := rt.InstantiateModule(ctx, compiled, wazero.NewModuleConfig())
	if err != nil {
		return fmt.Errorf("instantiate guest: %w", err)
	}

	next := uint32(guestHeapBase)
	host, err := rt.NewHostModuleBuilder("alloc").
		NewFunctionBuilder().
		WithFunc(func(_ context.Context, ptr, oldSize, align, newSize uint32) uint32 {
			if newSize == 0 {
				return 0
			}
			if align > 1 {
				next = (next + align - 1) &^ (align - 1)
			}
			p := next
			next += newSize
			return p
		}).
		Export("cabi_realloc").
		Instantiate(ctx)
	if err != nil {
		return fmt.Errorf("allocator: %w", err)
	}

	mem := guestmem.Wrap(mod.ExportedMemory("memory"))
	alloc := guestmem.WrapAllocator(ctx, host.ExportedFunction("cabi_realloc"))

	ptr, err := guestmem.Stage(mem, alloc, buf)
	if err != nil {
		return err
	}
	n := bytes.IndexByte(buf.Bytes(), 0)
	if n < 0 {
		n = buf.Remaining()
	}
	first, err := mem.ReadASCII(ptr, uint32(n))
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s\n", styled(opts, titleStyle, "Guest"))
	fmt.Fprintf(w, "  staged %d bytes at 0x%X, first %s\n", buf.Remaining(), ptr, styled(opts, nameStyle, first))
	return nil
}
