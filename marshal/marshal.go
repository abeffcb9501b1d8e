package marshal

import (
	"strconv"

	"github.com/wippyai/cl-interop/errors"
	"github.com/wippyai/cl-interop/scratch"
)

// Marshaler encodes text into a scratch.State's buffers.
type Marshaler struct {
	st  *scratch.State
	win window
}

// New binds a Marshaler to st. A nil st gets a fresh State.
func New(st *scratch.State) *Marshaler {
	if st == nil {
		st = scratch.NewState()
	}
	return &Marshaler{st: st}
}

// State returns the scratch state the Marshaler writes into.
func (m *Marshaler) State() *scratch.State {
	return m.st
}

func (m *Marshaler) encode(buf *scratch.ByteBuffer, s string, path []string) error {
	m.win.bind(s)
	bad, ok := m.win.encodeTo(buf)
	if !ok {
		err := m.win.nonASCII(path, bad)
		m.win.clear()
		return err
	}
	m.win.clear()
	return nil
}

// Encode returns a buffer holding the ASCII bytes of s.
func (m *Marshaler) Encode(s string) (*scratch.ByteBuffer, error) {
	buf := m.st.ByteBuffer(len(s))
	if err := m.encode(buf, s, nil); err != nil {
		return nil, err
	}
	buf.Flip()
	return buf, nil
}

// EncodeAt returns a buffer holding the ASCII bytes of s starting at offset.
// Bytes before offset are whatever the byte buffer already held; growth
// copies them forward, so a prefix written by an earlier call survives.
// The caller fills the prefix itself.
func (m *Marshaler) EncodeAt(s string, offset int) (*scratch.ByteBuffer, error) {
	if offset < 0 {
		return nil, errors.InvalidInput(errors.PhaseMarshal, "negative offset "+strconv.Itoa(offset))
	}
	buf := m.st.ByteBufferOffset(offset + len(s))
	buf.SetLimit(buf.Capacity())
	buf.SetPosition(offset)
	if err := m.encode(buf, s, nil); err != nil {
		return nil, err
	}
	buf.Flip()
	return buf, nil
}

// EncodeNT returns a buffer holding the ASCII bytes of s followed by a zero byte.
func (m *Marshaler) EncodeNT(s string) (*scratch.ByteBuffer, error) {
	buf := m.st.ByteBuffer(len(s) + 1)
	if err := m.encode(buf, s, nil); err != nil {
		return nil, err
	}
	buf.Put(0)
	buf.Flip()
	return buf, nil
}

// TotalLength returns the sum of the lengths of ss.
func TotalLength(ss []string) int {
	n := 0
	for _, s := range ss {
		n += len(s)
	}
	return n
}

// EncodeAll returns a buffer holding every string of ss back to back.
func (m *Marshaler) EncodeAll(ss []string) (*scratch.ByteBuffer, error) {
	return m.encodeAll(ss, false)
}

// EncodeAllNT returns a buffer holding every string of ss, each followed by
// its own zero byte.
func (m *Marshaler) EncodeAllNT(ss []string) (*scratch.ByteBuffer, error) {
	return m.encodeAll(ss, true)
}

func (m *Marshaler) encodeAll(ss []string, terminate bool) (*scratch.ByteBuffer, error) {
	size := TotalLength(ss)
	if terminate {
		size += len(ss)
	}
	buf := m.st.ByteBuffer(size)

	for i, s := range ss {
		m.win.bind(s)
		bad, ok := m.win.encodeTo(buf)
		if !ok {
			err := m.win.nonASCII([]string{"texts", strconv.Itoa(i)}, bad)
			m.win.clear()
			return nil, err
		}
		if terminate {
			buf.Put(0)
		}
	}
	m.win.clear()

	buf.Flip()
	return buf, nil
}

// Lengths returns a buffer with the length of each string of ss, in order.
func (m *Marshaler) Lengths(ss []string) *scratch.PointerBuffer {
	lengths := m.st.Lengths(len(ss))
	for _, s := range ss {
		lengths.Put(uintptr(len(s)))
	}
	lengths.Flip()
	return lengths
}

// LengthsOf returns a buffer with the remaining byte count of each buffer of bufs.
func (m *Marshaler) LengthsOf(bufs []*scratch.ByteBuffer) *scratch.PointerBuffer {
	lengths := m.st.Lengths(len(bufs))
	for _, b := range bufs {
		lengths.Put(uintptr(b.Remaining()))
	}
	lengths.Flip()
	return lengths
}

// TotalRemaining sums the entries of lengths between its position and limit.
func TotalRemaining(lengths *scratch.PointerBuffer) int {
	var total uintptr
	for _, n := range lengths.Values() {
		total += n
	}
	return int(total)
}

// Decode returns the remaining bytes of buf as a string without moving its position.
func (m *Marshaler) Decode(buf *scratch.ByteBuffer) string {
	n := buf.Remaining()
	chars := m.st.CharArray(n)
	copy(chars, buf.Bytes())
	return string(chars[:n])
}
