package guestmem

import (
	"context"
	"math"
	"strconv"

	"github.com/tetratelabs/wazero/api"
	"go.uber.org/zap"

	"github.com/wippyai/cl-interop/errors"
	"github.com/wippyai/cl-interop/scratch"
)

// Memory adapts wazero api.Memory for staging scratch buffers.
type Memory struct {
	mem api.Memory
}

// Wrap wraps a wazero api.Memory. It returns nil for a nil memory.
func Wrap(mem api.Memory) *Memory {
	if mem == nil {
		return nil
	}
	return &Memory{mem: mem}
}

// Size returns the current size of the linear memory in bytes.
func (m *Memory) Size() uint32 {
	return m.mem.Size()
}

// Read returns a view of length bytes at offset. The view aliases guest memory.
func (m *Memory) Read(offset, length uint32) ([]byte, error) {
	data, ok := m.mem.Read(offset, length)
	if !ok {
		return nil, outOfBounds(offset, length, m.mem.Size())
	}
	return data, nil
}

// Write copies data to offset.
func (m *Memory) Write(offset uint32, data []byte) error {
	if !m.mem.Write(offset, data) {
		return outOfBounds(offset, uint32(len(data)), m.mem.Size())
	}
	return nil
}

// ReadU32 reads an unsigned 32-bit little-endian value.
func (m *Memory) ReadU32(offset uint32) (uint32, error) {
	v, ok := m.mem.ReadUint32Le(offset)
	if !ok {
		return 0, outOfBounds(offset, 4, m.mem.Size())
	}
	return v, nil
}

// WriteU32 writes an unsigned 32-bit little-endian value.
func (m *Memory) WriteU32(offset, value uint32) error {
	if !m.mem.WriteUint32Le(offset, value) {
		return outOfBounds(offset, 4, m.mem.Size())
	}
	return nil
}

// WriteBuffer copies the readable window of buf to offset and returns its length.
// buf's position is not moved.
func (m *Memory) WriteBuffer(offset uint32, buf *scratch.ByteBuffer) (uint32, error) {
	data := buf.Bytes()
	if err := m.Write(offset, data); err != nil {
		return 0, err
	}
	return uint32(len(data)), nil
}

// WritePointers writes the readable window of buf as 32-bit little-endian
// guest pointers starting at offset.
func (m *Memory) WritePointers(offset uint32, buf *scratch.PointerBuffer) error {
	vals := buf.Values()
	if uint64(offset)+uint64(len(vals))*4 > uint64(m.mem.Size()) {
		return outOfBounds(offset, uint32(len(vals)*4), m.mem.Size())
	}
	for i, v := range vals {
		if uint64(v) > math.MaxUint32 {
			return errors.Overflow(errors.PhaseGuest, []string{"pointers", strconv.Itoa(i)}, uint64(v), "u32")
		}
		m.mem.WriteUint32Le(offset+uint32(i)*4, uint32(v))
	}
	return nil
}

// ReadASCII copies length bytes at offset into a new string.
func (m *Memory) ReadASCII(offset, length uint32) (string, error) {
	data, err := m.Read(offset, length)
	if err != nil {
		return "", err
	}
	for i, c := range data {
		if c >= 0x80 {
			return "", errors.NonASCII([]string{"guest", strconv.FormatUint(uint64(offset), 10)}, i, c)
		}
	}
	return string(data), nil
}

func outOfBounds(offset, length, size uint32) error {
	return errors.New(errors.PhaseGuest, errors.KindOutOfBounds).
		Detail("offset=%d length=%d memory=%d", offset, length, size).
		Build()
}

// Allocator adapts a guest realloc-style export to allocate guest memory.
type Allocator struct {
	ctx context.Context
	fn  api.Function
}

// WrapAllocator wraps fn. It returns nil for a nil function.
func WrapAllocator(ctx context.Context, fn api.Function) *Allocator {
	if fn == nil {
		return nil
	}
	return &Allocator{ctx: ctx, fn: fn}
}

// Alloc allocates size bytes aligned to align in guest memory.
func (a *Allocator) Alloc(size, align uint32) (uint32, error) {
	results, err := a.fn.Call(a.ctx, 0, 0, uint64(align), uint64(size))
	if err != nil {
		return 0, errors.AllocationFailed(errors.PhaseGuest, size, align, err)
	}
	if len(results) == 0 {
		return 0, errors.AllocationFailed(errors.PhaseGuest, size, align, nil)
	}
	return uint32(results[0]), nil
}

// Free releases a guest allocation.
func (a *Allocator) Free(ptr, size, align uint32) {
	if _, err := a.fn.Call(a.ctx, uint64(ptr), uint64(size), uint64(align), 0); err != nil {
		Logger().Warn("guest free failed",
			zap.Uint32("ptr", ptr),
			zap.Uint32("size", size),
			zap.Error(err))
	}
}

// Stage allocates guest memory for the readable window of buf, copies it
// there and returns the guest pointer.
func Stage(mem *Memory, alloc *Allocator, buf *scratch.ByteBuffer) (uint32, error) {
	if mem == nil || alloc == nil {
		return 0, errors.NotInitialized(errors.PhaseGuest, "guest memory")
	}
	size := uint32(buf.Remaining())
	ptr, err := alloc.Alloc(size, 1)
	if err != nil {
		return 0, err
	}
	if _, err := mem.WriteBuffer(ptr, buf); err != nil {
		alloc.Free(ptr, size, 1)
		return 0, err
	}
	Logger().Debug("staged buffer",
		zap.Uint32("ptr", ptr),
		zap.Uint32("size", size))
	return ptr, nil
}
