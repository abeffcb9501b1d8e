package resource

import (
	"sync"

	clinterop "github.com/wippyai/cl-interop"
	"github.com/wippyai/cl-interop/errors"
)

// Object is an in-process model of a reference-counted native object.
// It keeps one child Registry per child kind and registers itself with its
// parent on creation. It is safe for concurrent use.
type Object struct {
	parent   *Object
	children map[Kind]*Registry[*Object]
	mu       sync.Mutex
	refs     int
	handle   Handle
	kind     Kind
	valid    bool
}

// New creates a root object of the given kind with a reference count of one.
func New(kind Kind) *Object {
	return &Object{kind: kind, refs: 1, valid: true}
}

// NewChild creates a child of kind under o and registers it in o's registry for that kind.
func (o *Object) NewChild(kind Kind) (*Object, error) {
	if !o.IsValid() {
		return nil, errors.InvalidObject(errors.PhaseRelease, []string{"parent"}, o.kind.String())
	}
	child := &Object{parent: o, kind: kind, refs: 1, valid: true}
	child.handle = o.Registry(kind).Register(child)
	return child, nil
}

// Kind returns the object's kind.
func (o *Object) Kind() Kind { return o.kind }

// Handle returns the object's handle in its parent's registry, or 0 for a root.
func (o *Object) Handle() Handle { return o.handle }

// Parent returns the owning object, or nil for a root.
func (o *Object) Parent() *Object { return o.parent }

// ReferenceCount returns the current reference count.
func (o *Object) ReferenceCount() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.refs
}

// IsValid reports whether the object has not reached a zero reference count.
func (o *Object) IsValid() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.valid
}

// Retain increments the reference count.
func (o *Object) Retain() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if !o.valid {
		return errors.InvalidObject(errors.PhaseRelease, nil, o.kind.String())
	}
	o.refs++
	return nil
}

// Release decrements the reference count. At zero the object becomes invalid
// and is removed from its parent's registry.
func (o *Object) Release() error {
	o.mu.Lock()
	if !o.valid {
		o.mu.Unlock()
		return errors.InvalidObject(errors.PhaseRelease, nil, o.kind.String())
	}
	o.refs--
	dead := o.refs == 0
	if dead {
		o.valid = false
	}
	o.mu.Unlock()

	if dead && o.parent != nil {
		o.parent.Registry(o.kind).Unregister(o.handle)
	}
	return nil
}

// Registry returns o's registry for children of kind, creating it on first use.
func (o *Object) Registry(kind Kind) *Registry[*Object] {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.children == nil {
		o.children = make(map[Kind]*Registry[*Object])
	}
	reg, ok := o.children[kind]
	if !ok {
		reg = NewRegistry[*Object](kind)
		o.children[kind] = reg
	}
	return reg
}

// Children returns a snapshot of o's children of kind. It is empty if there are none.
func (o *Object) Children(kind Kind) []clinterop.Object {
	o.mu.Lock()
	reg := o.children[kind]
	o.mu.Unlock()
	if reg == nil {
		return nil
	}

	snap := reg.Snapshot()
	out := make([]clinterop.Object, len(snap))
	for i, c := range snap {
		out[i] = c
	}
	return out
}
