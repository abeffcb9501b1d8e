package release

import (
	stderrors "errors"
	"fmt"

	clinterop "github.com/wippyai/cl-interop"
	"github.com/wippyai/cl-interop/errors"
	"github.com/wippyai/cl-interop/resource"
)

var errInvalidObject = errors.New(errors.PhaseRelease, errors.KindInvalidObject).Build()

// API is the set of native release calls the teardown needs.
type API interface {
	ReleaseDeviceEXT(clinterop.Object) error
	ReleaseMemObject(clinterop.Object) error
	ReleaseCommandQueue(clinterop.Object) error
	ReleaseSampler(clinterop.Object) error
	ReleaseProgram(clinterop.Object) error
	ReleaseKernel(clinterop.Object) error
	ReleaseEvent(clinterop.Object) error
}

// CLDestructors maps every child kind to the matching native release call of api.
func CLDestructors(api API) Destructors {
	return Destructors{
		resource.KindSubDevice:    api.ReleaseDeviceEXT,
		resource.KindMem:          api.ReleaseMemObject,
		resource.KindCommandQueue: api.ReleaseCommandQueue,
		resource.KindSampler:      api.ReleaseSampler,
		resource.KindProgram:      api.ReleaseProgram,
		resource.KindKernel:       api.ReleaseKernel,
		resource.KindEvent:        api.ReleaseEvent,
	}
}

// ObjectDestructors releases resource.Object children through their own
// reference count. It is what a binding backed by the reference object
// model uses, and what the diagnostic tooling runs against.
func ObjectDestructors() Destructors {
	d := func(o clinterop.Object) error {
		obj, ok := o.(*resource.Object)
		if !ok {
			return errors.InvalidInput(errors.PhaseRelease, fmt.Sprintf("child %T is not a resource.Object", o))
		}
		// Another path may release the object between the validity check and this call.
		if err := obj.Release(); err != nil && !stderrors.Is(err, errInvalidObject) {
			return err
		}
		return nil
	}
	ds := make(Destructors)
	for _, parent := range resource.Kinds() {
		for _, kind := range childOrder[parent] {
			ds[kind] = d
		}
	}
	return ds
}
