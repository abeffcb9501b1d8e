// Package release tears down the children of reference-counted native objects.
//
// When the binding is about to drop the last reference to a container
// object (device, context, program, command queue), every child the
// container still owns must be released first. ReleaseAll does that work
// and nothing else:
//
//  1. If the parent's reference count is above one, return. Some other
//     holder will observe the last reference and do the teardown.
//  2. For each child kind of the parent, in a fixed order, snapshot the
//     children and release each one until it reports itself invalid.
//  3. Children that are already invalid are skipped.
//
// Child order per parent kind:
//
//	Parent          Children (in release order)
//	─────────────────────────────────────────────────────────
//	device          sub-device
//	sub-device      sub-device
//	context         event, program, sampler, mem, command-queue
//	program         kernel
//	command-queue   event
//
// # Retries
//
// A native release call does not always flip validity right away, and an
// object with several references needs several calls. The Releaser keeps
// calling the destructor while the child is valid, up to the WithMaxAttempts bound
// (DefaultMaxAttempts unless configured).
// A child that is still valid after that is reported with
// errors.KindRetryExhausted and teardown moves on.
//
// # Cascading
//
// A child that is itself a container (a program under a context, a queue,
// a sub-device) has its own children torn down before its final release
// call, so the walk is post-order. Disable with WithCascade(false) when the
// destructors already cascade on their own.
//
// # Errors
//
// A destructor error stops the calls for that child at once and is reported
// as errors.KindDestructor wrapping the native cause. Failures of individual
// children never stop the walk; they are combined with go.uber.org/multierr
// and returned together.
package release
