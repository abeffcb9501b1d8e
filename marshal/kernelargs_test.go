package marshal

import (
	stderrors "errors"
	"math"
	"testing"

	clinterop "github.com/wippyai/cl-interop"
	"github.com/wippyai/cl-interop/errors"
)

type memStub struct {
	valid bool
}

func (m *memStub) ReferenceCount() int { return 1 }
func (m *memStub) IsValid() bool       { return m.valid }

func TestKernelArgs_Layout(t *testing.T) {
	m := New(nil)
	mems := []clinterop.Object{&memStub{valid: true}, &memStub{valid: true}, &memStub{valid: true}}
	sizes := []uint64{16, 4096, 1}

	buf, err := m.KernelArgs(0xDEADBEEFCAFE, mems, sizes)
	if err != nil {
		t.Fatalf("KernelArgs: %v", err)
	}

	stride := 4 + clinterop.PointerSize
	wantSize := 12 + len(mems)*stride
	if buf.Position() != 0 || buf.Limit() != wantSize {
		t.Fatalf("pos=%d lim=%d, want 0/%d", buf.Position(), buf.Limit(), wantSize)
	}
	if KernelArgsSize(len(mems)) != wantSize {
		t.Fatalf("KernelArgsSize = %d, want %d", KernelArgsSize(len(mems)), wantSize)
	}
	if got := uint64(buf.Int64At(0)); got != 0xDEADBEEFCAFE {
		t.Fatalf("ref = %#x", got)
	}
	if got := buf.Int32At(8); got != 3 {
		t.Fatalf("count = %d, want 3", got)
	}
	for i, size := range sizes {
		if got := buf.Int32At(12 + i*stride); got != int32(size) {
			t.Errorf("size %d = %d, want %d", i, got, size)
		}
	}
}

func TestKernelArgs_NoMems(t *testing.T) {
	m := New(nil)
	buf, err := m.KernelArgs(7, nil, nil)
	if err != nil {
		t.Fatal(err)
	}
	if buf.Remaining() != 12 || buf.Int32At(8) != 0 || buf.Int64At(0) != 7 {
		t.Fatalf("unexpected header: remaining=%d count=%d ref=%d", buf.Remaining(), buf.Int32At(8), buf.Int64At(0))
	}
}

func TestKernelArgs_InvalidMem(t *testing.T) {
	m := New(nil)
	mems := []clinterop.Object{&memStub{valid: true}, &memStub{valid: false}}

	_, err := m.KernelArgs(1, mems, []uint64{1, 2})
	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("expected *errors.Error, got %v", err)
	}
	if e.Kind != errors.KindInvalidObject || e.Phase != errors.PhasePack {
		t.Fatalf("got %v/%v", e.Phase, e.Kind)
	}
	if len(e.Path) != 2 || e.Path[1] != "1" {
		t.Fatalf("path = %v", e.Path)
	}
}

func TestKernelArgs_BadSizes(t *testing.T) {
	m := New(nil)
	mems := []clinterop.Object{&memStub{valid: true}}

	if _, err := m.KernelArgs(1, mems, nil); !stderrors.Is(err, &errors.Error{Phase: errors.PhasePack, Kind: errors.KindInvalidInput}) {
		t.Fatalf("short sizes: err = %v", err)
	}
	if _, err := m.KernelArgs(1, mems, []uint64{math.MaxInt32 + 1}); !stderrors.Is(err, &errors.Error{Phase: errors.PhasePack, Kind: errors.KindOverflow}) {
		t.Fatalf("oversized: err = %v", err)
	}
}
