package release

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"

	clinterop "github.com/wippyai/cl-interop"
	"github.com/wippyai/cl-interop/errors"
	"github.com/wippyai/cl-interop/resource"
)

// DefaultMaxAttempts bounds the release calls made on a single child.
const DefaultMaxAttempts = 1 << 20

// Parent is a native object that owns child registries.
type Parent interface {
	clinterop.Object

	// Children returns a snapshot of the children of kind. It is empty if there are none.
	Children(kind resource.Kind) []clinterop.Object
}

// Destructor is the native release operation for one object kind.
type Destructor func(clinterop.Object) error

// Destructors maps child kinds to their native release operations.
type Destructors map[resource.Kind]Destructor

var childOrder = map[resource.Kind][]resource.Kind{
	resource.KindDevice:       {resource.KindSubDevice},
	resource.KindSubDevice:    {resource.KindSubDevice},
	resource.KindContext:      {resource.KindEvent, resource.KindProgram, resource.KindSampler, resource.KindMem, resource.KindCommandQueue},
	resource.KindProgram:      {resource.KindKernel},
	resource.KindCommandQueue: {resource.KindEvent},
}

// ChildKinds returns the child kinds of parent in release order.
// Leaf kinds have none.
func ChildKinds(parent resource.Kind) []resource.Kind {
	return childOrder[parent]
}

// Option configures a Releaser.
type Option func(*Releaser)

// WithMaxAttempts bounds the destructor calls per child. Values below one are ignored.
func WithMaxAttempts(n int) Option {
	return func(r *Releaser) {
		if n > 0 {
			r.maxAttempts = n
		}
	}
}

// WithCascade controls whether container children are torn down before their final release.
func WithCascade(on bool) Option {
	return func(r *Releaser) {
		r.cascade = on
	}
}

// WithDestructor sets the destructor for one child kind.
func WithDestructor(kind resource.Kind, d Destructor) Option {
	return func(r *Releaser) {
		r.destructors[kind] = d
	}
}

// Releaser performs reference-count gated teardown of child objects.
// It holds no per-call state and is safe for concurrent use if its
// destructors are.
type Releaser struct {
	destructors Destructors
	maxAttempts int
	cascade     bool
}

// New creates a Releaser using destructors for the native release operations.
func New(destructors Destructors, opts ...Option) *Releaser {
	r := &Releaser{
		destructors: make(Destructors, len(destructors)),
		maxAttempts: DefaultMaxAttempts,
		cascade:     true,
	}
	for k, d := range destructors {
		r.destructors[k] = d
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ReleaseDevice releases the sub-devices of device.
func (r *Releaser) ReleaseDevice(device Parent) error {
	return r.ReleaseAll(device, resource.KindDevice)
}

// ReleaseContext releases the events, programs, samplers, memory objects
// and command queues of context, in that order.
func (r *Releaser) ReleaseContext(context Parent) error {
	return r.ReleaseAll(context, resource.KindContext)
}

// ReleaseProgram releases the kernels of program.
func (r *Releaser) ReleaseProgram(program Parent) error {
	return r.ReleaseAll(program, resource.KindProgram)
}

// ReleaseQueue releases the events of queue.
func (r *Releaser) ReleaseQueue(queue Parent) error {
	return r.ReleaseAll(queue, resource.KindCommandQueue)
}

// ReleaseAll releases every child of parent, treating parent as an object of kind.
// Nothing happens while parent has more than one reference.
func (r *Releaser) ReleaseAll(parent Parent, kind resource.Kind) error {
	if !kind.Valid() {
		return errors.InvalidInput(errors.PhaseRelease, "unknown parent kind "+kind.String())
	}
	if parent == nil {
		return errors.NotInitialized(errors.PhaseRelease, "parent")
	}
	return r.releaseAll(parent, kind)
}

func (r *Releaser) releaseAll(parent Parent, kind resource.Kind) error {
	if parent.ReferenceCount() > 1 {
		return nil
	}

	var errs error
	for _, childKind := range childOrder[kind] {
		errs = multierr.Append(errs, r.releaseKind(parent, childKind))
	}
	return errs
}

func (r *Releaser) releaseKind(parent Parent, kind resource.Kind) error {
	children := parent.Children(kind)
	if len(children) == 0 {
		return nil
	}

	destroy := r.destructors[kind]
	if destroy == nil {
		return errors.NotInitialized(errors.PhaseRelease, "destructor for "+kind.String())
	}

	var errs error
	for _, child := range children {
		errs = multierr.Append(errs, r.releaseChild(child, kind, destroy))
	}
	return errs
}

// releaseChild calls destroy until child reports itself invalid.
func (r *Releaser) releaseChild(child clinterop.Object, kind resource.Kind, destroy Destructor) error {
	log := Logger()

	var errs error
	attempts := 0
	for child.IsValid() {
		if attempts == r.maxAttempts {
			log.Warn("child still valid after release attempts",
				zap.Stringer("kind", kind),
				zap.Int("attempts", attempts))
			return multierr.Append(errs, errors.RetryExhausted(kind.String(), attempts, nil))
		}

		if r.cascade && len(childOrder[kind]) > 0 {
			if p, ok := child.(Parent); ok {
				errs = multierr.Append(errs, r.releaseAll(p, kind))
			}
		}

		attempts++
		log.Debug("releasing child",
			zap.Stringer("kind", kind),
			zap.Int("attempt", attempts))

		if err := destroy(child); err != nil {
			log.Error("native release failed",
				zap.Stringer("kind", kind),
				zap.Int("attempt", attempts),
				zap.Error(err))
			return multierr.Append(errs, errors.Destructor(kind.String(), err))
		}
	}
	return errs
}
