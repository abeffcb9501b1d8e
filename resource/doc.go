// Package resource provides handle-keyed child registries for native objects.
//
// A native object that owns other objects (a context owns its programs,
// queues, memory objects; a program owns its kernels) keeps one Registry
// per child kind. Registries are slab-backed: a Handle is an index into the
// slab, and freed slots are reused.
//
//	reg := resource.NewRegistry[*Program](resource.KindProgram)
//	h := reg.Register(prog)
//	...
//	reg.Unregister(h)
//
// # Snapshots
//
// Teardown iterates children while their release calls remove them from the
// same registry. Snapshot copies the current members so iteration sees a
// stable set; children registered after the snapshot are not included.
//
// # Observers
//
// Observers receive EventRegistered and EventUnregistered notifications:
//
//	reg.Subscribe(obs)
//
// # Reference Object Model
//
// Object is an in-process model of a reference-counted native object graph.
// Bindings without a richer object model, tests, and the diagnostic CLI use
// it directly:
//
//	ctx := resource.New(resource.KindContext)
//	prog, _ := ctx.NewChild(resource.KindProgram)
//	kern, _ := prog.NewChild(resource.KindKernel)
//
// Release decrements the count; at zero the object turns invalid and leaves
// its parent's registry.
package resource
