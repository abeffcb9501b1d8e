package marshal

import (
	"unicode/utf8"

	"github.com/wippyai/cl-interop/errors"
	"github.com/wippyai/cl-interop/scratch"
)

// window is a reusable bounded view over one input string.
// It must be cleared as soon as the encoder is done with it so the
// Marshaler does not keep the caller's text alive.
type window struct {
	text string
	pos  int
	lim  int
}

func (w *window) bind(s string) {
	w.text = s
	w.pos = 0
	w.lim = len(s)
}

func (w *window) clear() {
	w.text = ""
	w.pos = 0
	w.lim = 0
}

func (w *window) len() int { return w.lim - w.pos }

// encodeTo writes the window's bytes at dst's position and advances it.
// On a non-ASCII byte nothing is committed and the index within the window
// is reported.
func (w *window) encodeTo(dst *scratch.ByteBuffer) (bad int, ok bool) {
	n := w.len()
	out := dst.Writable()
	if len(out) < n {
		panic("marshal: scratch buffer too small for encode")
	}
	for i := 0; i < n; i++ {
		c := w.text[w.pos+i]
		if c >= utf8.RuneSelf {
			return i, false
		}
		out[i] = c
	}
	dst.Advance(n)
	return 0, true
}

func (w *window) nonASCII(path []string, bad int) error {
	return errors.NonASCII(path, bad, w.text[w.pos+bad])
}
