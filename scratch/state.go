package scratch

import (
	"go.uber.org/zap"
)

const (
	initialBufferSize  = 256
	initialLengthsSize = 4
	bundleSize         = 32
)

// State is one execution context's set of scratch buffers.
// It is not safe for concurrent use.
type State struct {
	chars    []byte
	bytes    *ByteBuffer
	pointers *PointerBuffer
	lengths  *PointerBuffer
	bundle   *bundle
}

// bundle is the fixed set of small typed buffers used for out-parameters.
type bundle struct {
	shorts    *Buffer[int16]
	ints      *Buffer[int32]
	intsDebug *Buffer[int32]
	longs     *Buffer[int64]
	floats    *Buffer[float32]
	doubles   *Buffer[float64]
	pointers  *PointerBuffer
}

// NewState creates a State with every buffer at its initial capacity.
func NewState() *State {
	return &State{
		chars:    make([]byte, initialBufferSize),
		bytes:    newByteBuffer(initialBufferSize),
		pointers: newBuffer[uintptr](initialBufferSize),
		lengths:  newBuffer[uintptr](initialLengthsSize),
	}
}

// grownCapacity doubles current until it is at least size.
func grownCapacity(current, size int) int {
	n := current << 1
	if n <= 0 {
		n = 1
	}
	for n < size {
		n <<= 1
	}
	return n
}

func logGrowth(buffer string, from, to int) {
	Logger().Debug("scratch buffer grown",
		zap.String("buffer", buffer),
		zap.Int("from", from),
		zap.Int("to", to))
}

// CharArray returns the character array, grown to hold at least size bytes.
// The array is used for decoding; its contents are not cleared.
func (s *State) CharArray(size int) []byte {
	if len(s.chars) < size {
		n := grownCapacity(len(s.chars), size)
		logGrowth("chars", len(s.chars), n)
		s.chars = make([]byte, n)
	}
	return s.chars
}

// ByteBuffer returns the byte buffer with capacity of at least size,
// cleared and ready for writing.
func (s *State) ByteBuffer(size int) *ByteBuffer {
	if s.bytes.Capacity() < size {
		n := grownCapacity(s.bytes.Capacity(), size)
		logGrowth("bytes", s.bytes.Capacity(), n)
		s.bytes = newByteBuffer(n)
	} else {
		s.bytes.Clear()
	}
	return s.bytes
}

// ByteBufferOffset returns the byte buffer with capacity of at least size
// while keeping its existing contents. On growth the old bytes are copied
// into the new backing array. The returned buffer is positioned at the old
// limit with its limit at capacity.
func (s *State) ByteBufferOffset(size int) *ByteBuffer {
	old := s.bytes
	if old.Capacity() < size {
		n := grownCapacity(old.Capacity(), size)
		logGrowth("bytes", old.Capacity(), n)
		grown := newByteBuffer(n)
		copy(grown.data, old.data)
		grown.pos = old.lim
		s.bytes = grown
		return grown
	}
	old.pos = old.lim
	old.lim = old.Capacity()
	return old
}

// PointerBuffer returns the pointer buffer with capacity of at least size, cleared.
func (s *State) PointerBuffer(size int) *PointerBuffer {
	if s.pointers.Capacity() < size {
		n := grownCapacity(s.pointers.Capacity(), size)
		logGrowth("pointers", s.pointers.Capacity(), n)
		s.pointers = newBuffer[uintptr](n)
	} else {
		s.pointers.Clear()
	}
	return s.pointers
}

// Lengths returns the lengths buffer with room for at least count entries, cleared.
// A count below one is treated as one.
func (s *State) Lengths(count int) *PointerBuffer {
	if count < 1 {
		count = 1
	}
	if s.lengths.Capacity() < count {
		n := grownCapacity(s.lengths.Capacity(), count)
		logGrowth("lengths", s.lengths.Capacity(), n)
		s.lengths = newBuffer[uintptr](n)
	} else {
		s.lengths.Clear()
	}
	return s.lengths
}

func (s *State) buffers() *bundle {
	if s.bundle == nil {
		s.bundle = &bundle{
			shorts:    newBuffer[int16](bundleSize),
			ints:      newBuffer[int32](bundleSize),
			intsDebug: newBuffer[int32](1),
			longs:     newBuffer[int64](bundleSize),
			floats:    newBuffer[float32](bundleSize),
			doubles:   newBuffer[float64](bundleSize),
			pointers:  newBuffer[uintptr](bundleSize),
		}
	}
	return s.bundle
}

// Shorts returns the 16-bit bundle buffer, cleared.
func (s *State) Shorts() *Buffer[int16] {
	b := s.buffers().shorts
	b.Clear()
	return b
}

// Ints returns the 32-bit bundle buffer, cleared.
func (s *State) Ints() *Buffer[int32] {
	b := s.buffers().ints
	b.Clear()
	return b
}

// IntsDebug returns the single-element 32-bit buffer reserved for error-code
// out-parameters, cleared.
func (s *State) IntsDebug() *Buffer[int32] {
	b := s.buffers().intsDebug
	b.Clear()
	return b
}

// Longs returns the 64-bit bundle buffer, cleared.
func (s *State) Longs() *Buffer[int64] {
	b := s.buffers().longs
	b.Clear()
	return b
}

// Floats returns the float32 bundle buffer, cleared.
func (s *State) Floats() *Buffer[float32] {
	b := s.buffers().floats
	b.Clear()
	return b
}

// Doubles returns the float64 bundle buffer, cleared.
func (s *State) Doubles() *Buffer[float64] {
	b := s.buffers().doubles
	b.Clear()
	return b
}

// Pointers returns the small pointer-width bundle buffer, cleared.
func (s *State) Pointers() *PointerBuffer {
	b := s.buffers().pointers
	b.Clear()
	return b
}
