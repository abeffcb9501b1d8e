package clinterop

import "unsafe"

// PointerSize is the width in bytes of a native pointer on this platform.
const PointerSize = int(unsafe.Sizeof(uintptr(0)))

// Object is a native handle as seen by the interop layer.
// The surrounding object model owns the reference count; this module only reads it.
type Object interface {
	// ReferenceCount returns the logical number of holders of the handle.
	ReferenceCount() int

	// IsValid reports whether the native handle has not yet been released.
	IsValid() bool
}
