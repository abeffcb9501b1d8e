package scratch

import (
	"context"
	"sync"
)

// Pooled states whose byte buffer grew beyond this are left to the GC
// instead of being kept alive by the pool.
const maxPooledByteCapacity = 1 << 20

var statePool = sync.Pool{
	New: func() any {
		return NewState()
	},
}

// Acquire returns a State from the package pool. The caller owns it until Release.
func Acquire() *State {
	return statePool.Get().(*State)
}

// Release returns st to the pool. st must not be used afterwards.
func Release(st *State) {
	if st == nil || st.bytes.Capacity() > maxPooledByteCapacity {
		return
	}
	statePool.Put(st)
}

type stateKey struct{}

// WithState returns a context carrying st.
func WithState(ctx context.Context, st *State) context.Context {
	return context.WithValue(ctx, stateKey{}, st)
}

// FromContext returns the State carried by ctx, or nil.
func FromContext(ctx context.Context) *State {
	st, _ := ctx.Value(stateKey{}).(*State)
	return st
}
