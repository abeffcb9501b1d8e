package resource

import (
	"sync"
)

// Registry is an owning, handle-keyed collection of one kind of child object.
// Entries live in a slab indexed by Handle-1; freed slots are reused.
type Registry[T any] struct {
	entries   []entry[T]
	freeList  []Handle
	observers []Observer
	count     int
	kind      Kind
	mu        sync.RWMutex
	obsMu     sync.RWMutex
}

type entry[T any] struct {
	value T
	valid bool
}

// NewRegistry creates an empty registry for children of the given kind.
func NewRegistry[T any](kind Kind) *Registry[T] {
	return &Registry[T]{
		kind:     kind,
		entries:  make([]entry[T], 0, 8),
		freeList: make([]Handle, 0, 4),
	}
}

// Kind returns the kind of object the registry holds.
func (r *Registry[T]) Kind() Kind { return r.kind }

// Register stores value and returns its handle.
func (r *Registry[T]) Register(value T) Handle {
	r.mu.Lock()
	e := entry[T]{value: value, valid: true}

	var handle Handle
	if len(r.freeList) > 0 {
		handle = r.freeList[len(r.freeList)-1]
		r.freeList = r.freeList[:len(r.freeList)-1]
		r.entries[handle-1] = e
	} else {
		r.entries = append(r.entries, e)
		handle = Handle(len(r.entries))
	}
	r.count++
	r.mu.Unlock()

	r.notify(Event{
		Type:   EventRegistered,
		Handle: handle,
		Kind:   r.kind,
		Value:  value,
	})
	return handle
}

// Get retrieves a value by handle.
func (r *Registry[T]) Get(handle Handle) (T, bool) {
	var zero T
	if handle == 0 {
		return zero, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := handle - 1
	if int(idx) >= len(r.entries) || !r.entries[idx].valid {
		return zero, false
	}
	return r.entries[idx].value, true
}

// Unregister removes a value and returns (value, true) if it was present.
func (r *Registry[T]) Unregister(handle Handle) (T, bool) {
	var zero T
	if handle == 0 {
		return zero, false
	}

	r.mu.Lock()
	idx := handle - 1
	if int(idx) >= len(r.entries) || !r.entries[idx].valid {
		r.mu.Unlock()
		return zero, false
	}
	value := r.entries[idx].value
	r.entries[idx] = entry[T]{}
	r.freeList = append(r.freeList, handle)
	r.count--
	r.mu.Unlock()

	r.notify(Event{
		Type:   EventUnregistered,
		Handle: handle,
		Kind:   r.kind,
		Value:  value,
	})
	return value, true
}

// Len returns the number of registered values.
func (r *Registry[T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count
}

// IsEmpty reports whether the registry holds no values.
func (r *Registry[T]) IsEmpty() bool {
	return r.Len() == 0
}

// Snapshot returns a copy of the registered values in handle order.
// Later registrations and removals do not affect the returned slice.
func (r *Registry[T]) Snapshot() []T {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]T, 0, r.count)
	for _, e := range r.entries {
		if e.valid {
			out = append(out, e.value)
		}
	}
	return out
}

// Each iterates over registered values in handle order while holding the read lock.
// fn must not call back into the registry.
func (r *Registry[T]) Each(fn func(Handle, T) bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i, e := range r.entries {
		if e.valid {
			if !fn(Handle(i+1), e.value) {
				break
			}
		}
	}
}

// Subscribe adds an observer for lifecycle events.
func (r *Registry[T]) Subscribe(o Observer) {
	r.obsMu.Lock()
	defer r.obsMu.Unlock()
	r.observers = append(r.observers, o)
}

// Unsubscribe removes an observer.
func (r *Registry[T]) Unsubscribe(o Observer) {
	r.obsMu.Lock()
	defer r.obsMu.Unlock()
	for i, obs := range r.observers {
		if obs == o {
			r.observers = append(r.observers[:i], r.observers[i+1:]...)
			return
		}
	}
}

func (r *Registry[T]) notify(e Event) {
	r.obsMu.RLock()
	defer r.obsMu.RUnlock()
	for _, o := range r.observers {
		o.OnRegistryEvent(e)
	}
}
