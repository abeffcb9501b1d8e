package scratch

import "unsafe"

// Element is the set of primitive types a typed scratch buffer can hold.
type Element interface {
	~int16 | ~int32 | ~int64 | ~float32 | ~float64 | ~uintptr
}

// Buffer is a fixed-capacity typed sequence with the same position/limit
// model as ByteBuffer.
type Buffer[T Element] struct {
	data []T
	pos  int
	lim  int
}

// PointerBuffer holds pointer-width integers (sizes, lengths, addresses).
type PointerBuffer = Buffer[uintptr]

func newBuffer[T Element](capacity int) *Buffer[T] {
	return &Buffer[T]{data: make([]T, capacity), lim: capacity}
}

// Capacity returns the number of elements in the backing array.
func (b *Buffer[T]) Capacity() int { return len(b.data) }

// Position returns the index of the next element to read or write.
func (b *Buffer[T]) Position() int { return b.pos }

// Limit returns the index of the first element that must not be read or written.
func (b *Buffer[T]) Limit() int { return b.lim }

// Remaining returns Limit - Position.
func (b *Buffer[T]) Remaining() int { return b.lim - b.pos }

// SetPosition moves the position. It panics if p is negative or past the limit.
func (b *Buffer[T]) SetPosition(p int) {
	if p < 0 || p > b.lim {
		panic("scratch: position out of range")
	}
	b.pos = p
}

// SetLimit moves the limit, pulling the position back if needed.
func (b *Buffer[T]) SetLimit(l int) {
	if l < 0 || l > len(b.data) {
		panic("scratch: limit out of range")
	}
	b.lim = l
	if b.pos > l {
		b.pos = l
	}
}

// Clear resets position to 0 and limit to capacity.
func (b *Buffer[T]) Clear() {
	b.pos = 0
	b.lim = len(b.data)
}

// Flip sets the limit to the current position and rewinds to 0.
func (b *Buffer[T]) Flip() {
	b.lim = b.pos
	b.pos = 0
}

// Put writes v at the position and advances it.
func (b *Buffer[T]) Put(v T) {
	if b.pos >= b.lim {
		panic("scratch: buffer overflow")
	}
	b.data[b.pos] = v
	b.pos++
}

// PutAt writes v at absolute index i.
func (b *Buffer[T]) PutAt(i int, v T) { b.data[i] = v }

// At returns the element at absolute index i.
func (b *Buffer[T]) At(i int) T { return b.data[i] }

// Values returns the readable window [Position, Limit). The slice aliases the buffer.
func (b *Buffer[T]) Values() []T { return b.data[b.pos:b.lim] }

// Ptr returns the address of the element at Position.
func (b *Buffer[T]) Ptr() unsafe.Pointer {
	if len(b.data) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(b.data[b.pos:]))
}
