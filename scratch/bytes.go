package scratch

import (
	"encoding/binary"
	"unsafe"
)

// ByteBuffer is a fixed-capacity byte sequence with a read/write position and limit.
// Relative puts advance the position; absolute puts use native byte order and
// leave the position alone.
type ByteBuffer struct {
	data []byte
	pos  int
	lim  int
}

func newByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{data: make([]byte, capacity), lim: capacity}
}

// Capacity returns the size of the backing array.
func (b *ByteBuffer) Capacity() int { return len(b.data) }

// Position returns the index of the next byte to read or write.
func (b *ByteBuffer) Position() int { return b.pos }

// Limit returns the index of the first byte that must not be read or written.
func (b *ByteBuffer) Limit() int { return b.lim }

// Remaining returns Limit - Position.
func (b *ByteBuffer) Remaining() int { return b.lim - b.pos }

// SetPosition moves the position. It panics if p is negative or past the limit.
func (b *ByteBuffer) SetPosition(p int) {
	if p < 0 || p > b.lim {
		panic("scratch: position out of range")
	}
	b.pos = p
}

// SetLimit moves the limit, pulling the position back if needed.
// It panics if l is negative or past the capacity.
func (b *ByteBuffer) SetLimit(l int) {
	if l < 0 || l > len(b.data) {
		panic("scratch: limit out of range")
	}
	b.lim = l
	if b.pos > l {
		b.pos = l
	}
}

// Clear resets position to 0 and limit to capacity. Contents are untouched.
func (b *ByteBuffer) Clear() {
	b.pos = 0
	b.lim = len(b.data)
}

// Flip sets the limit to the current position and rewinds to 0.
func (b *ByteBuffer) Flip() {
	b.lim = b.pos
	b.pos = 0
}

// Put writes c at the position and advances it.
func (b *ByteBuffer) Put(c byte) {
	if b.pos >= b.lim {
		panic("scratch: buffer overflow")
	}
	b.data[b.pos] = c
	b.pos++
}

// PutBytes writes p at the position and advances past it.
func (b *ByteBuffer) PutBytes(p []byte) {
	if len(p) > b.lim-b.pos {
		panic("scratch: buffer overflow")
	}
	b.pos += copy(b.data[b.pos:], p)
}

// Writable returns the unwritten window [Position, Limit).
// Use Advance after filling part of it.
func (b *ByteBuffer) Writable() []byte { return b.data[b.pos:b.lim] }

// Advance moves the position forward by n bytes.
func (b *ByteBuffer) Advance(n int) { b.SetPosition(b.pos + n) }

// Bytes returns the readable window [Position, Limit). The slice aliases the buffer.
func (b *ByteBuffer) Bytes() []byte { return b.data[b.pos:b.lim] }

// At returns the byte at absolute index i.
func (b *ByteBuffer) At(i int) byte { return b.data[i] }

// PutInt32At writes v at absolute index i in native byte order.
func (b *ByteBuffer) PutInt32At(i int, v int32) {
	binary.NativeEndian.PutUint32(b.data[i:i+4], uint32(v))
}

// PutInt64At writes v at absolute index i in native byte order.
func (b *ByteBuffer) PutInt64At(i int, v int64) {
	binary.NativeEndian.PutUint64(b.data[i:i+8], uint64(v))
}

// Int32At reads a native-order int32 at absolute index i.
func (b *ByteBuffer) Int32At(i int) int32 {
	return int32(binary.NativeEndian.Uint32(b.data[i : i+4]))
}

// Int64At reads a native-order int64 at absolute index i.
func (b *ByteBuffer) Int64At(i int) int64 {
	return int64(binary.NativeEndian.Uint64(b.data[i : i+8]))
}

// Ptr returns the address of the byte at Position, for handing to native code.
// The buffer must stay reachable for the duration of the native call.
func (b *ByteBuffer) Ptr() unsafe.Pointer {
	if len(b.data) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(b.data[b.pos:]))
}
