// Package marshal converts text into scratch byte buffers for native calls.
//
// A Marshaler is bound to one scratch.State and inherits its ownership rule:
// one goroutine at a time. Every encoder returns a buffer flipped for
// reading (position 0, limit at the end of the written bytes). The returned
// buffer is the State's byte buffer, so it is only valid until the next
// byte-buffer request on the same State.
//
//	Encode(s)          s
//	EncodeAt(s, off)   <prefix kept from earlier writes> s
//	EncodeNT(s)        s 0x00
//	EncodeAll(ss)      s0 s1 ... sn
//	EncodeAllNT(ss)    s0 0x00 s1 0x00 ... sn 0x00
//
// Lengths and LengthsOf fill the State's lengths buffer with one
// pointer-width entry per input; TotalRemaining sums such a buffer.
//
// # Encoding
//
// Text is strict 7-bit ASCII, one byte per character. A byte at or above
// 0x80 is a caller bug and fails the call with errors.KindNonASCII.
//
// # Callback Arguments
//
// KernelArgs packs the argument block of a native-kernel enqueue:
//
//	Offset            Size    Content
//	──────────────────────────────────────────────
//	0                 8       callback reference
//	8                 4       memory object count n
//	12 + i*(4+P)      4       size of memory object i
//	16 + i*(4+P)      P       reserved for the object's address
//
// where P is clinterop.PointerSize.
package marshal
