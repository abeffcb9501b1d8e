package marshal

import (
	"math"
	"strconv"

	clinterop "github.com/wippyai/cl-interop"
	"github.com/wippyai/cl-interop/errors"
	"github.com/wippyai/cl-interop/scratch"
)

const (
	kernelArgsHeader = 8 + 4
	kernelArgsStride = 4 + clinterop.PointerSize
)

// KernelArgsSize returns the byte size of a native-kernel argument block for n memory objects.
func KernelArgsSize(n int) int {
	return kernelArgsHeader + n*kernelArgsStride
}

// KernelArgs packs ref, the memory object count and each object's size into
// the byte buffer. The pointer slot after every size is left for the native
// layer to fill. Every memory object must still be valid.
func (m *Marshaler) KernelArgs(ref uint64, mems []clinterop.Object, sizes []uint64) (*scratch.ByteBuffer, error) {
	if len(sizes) < len(mems) {
		return nil, errors.New(errors.PhasePack, errors.KindInvalidInput).
			Path("sizes").
			Detail("%d sizes for %d memory objects", len(sizes), len(mems)).
			Build()
	}

	size := KernelArgsSize(len(mems))
	buf := m.st.ByteBuffer(size)
	buf.SetLimit(size)

	buf.PutInt64At(0, int64(ref))
	buf.PutInt32At(8, int32(len(mems)))

	idx := kernelArgsHeader
	for i, mem := range mems {
		if mem == nil || !mem.IsValid() {
			return nil, errors.InvalidObject(errors.PhasePack, []string{"mems", strconv.Itoa(i)}, "mem")
		}
		if sizes[i] > math.MaxInt32 {
			return nil, errors.Overflow(errors.PhasePack, []string{"sizes", strconv.Itoa(i)}, sizes[i], "int32")
		}
		buf.PutInt32At(idx, int32(sizes[i]))
		idx += kernelArgsStride
	}

	return buf, nil
}
