// Package uniqueres provides a deterministic, single-owner resource
// wrapper for Go.
//
// A [Handle] binds a resource value (a descriptor, allocation, lock,
// connection, anything with manual-lifetime semantics) to a cleanup
// action and guarantees that action runs exactly once: when the handle
// is closed, reset to a new resource, or overwritten by move transfer,
// unless ownership was explicitly released to the caller. It exists for
// code that cannot or should not lean on garbage collection timing and
// must still guarantee cleanup on early returns and panics.
//
// # Creating Handles
//
// [Make] builds an armed handle unconditionally:
//
//	f, err := os.Create(path)
//	if err != nil {
//	    return err
//	}
//	h := uniqueres.Make(f, func(f *os.File) error { return f.Close() })
//	defer h.Close()
//
// [MakeChecked] compares the incoming value against an "invalid"
// sentinel and starts disarmed on a match, so APIs that signal
// acquisition failure through a sentinel return value never trigger a
// spurious cleanup:
//
//	fd, _ := unix.Open(path, unix.O_RDONLY, 0)
//	h := uniqueres.MakeChecked(fd, -1, func(fd int) error { return unix.Close(fd) })
//
// [MakeCheckedFunc] generalizes the sentinel to a predicate for resource
// types that are not comparable. The zero value of [Handle] is a valid
// disarmed handle, matching default construction.
//
// # Lifecycle
//
// While a handle is armed ([Handle.Valid] reports true), exactly one
// deleter invocation is owed:
//
//   - [Handle.Close] pays it and disarms; further calls are no-ops.
//   - [Handle.Reset] pays it against the old value, then stores a new
//     value and re-arms unconditionally.
//   - [Handle.Release] cancels it, handing the value (and the cleanup
//     responsibility) back to the caller.
//
// [Handle.Get] always returns the last stored value, armed or not;
// [Handle.Ptr] exposes its address without affecting ownership.
//
// # Move-Only Ownership
//
// Handles are never copied; copying would alias the armed flag and risk
// a double cleanup (go vet's copylocks check flags it). Ownership moves:
//
//   - [Handle.Move] transfers everything into a fresh handle and disarms
//     the source, with no deleter call.
//   - [Handle.MoveFrom] first cleans up whatever the destination owned,
//     then takes over the source's resource. Self-move is a no-op.
//
// # Scoped Acquisition
//
// Go has no destructors, so scope-bound cleanup is expressed as a
// callback with a guaranteed close on exit. [With] and [WithChecked]
// build the handle, run the body, and always close, joining the body
// error and the close error via [errors.Join], including when the body
// panics.
//
// # Multiple Resources
//
// [Stack] collects cleanup obligations and runs them in reverse order on
// close, for constructors that acquire several resources and must unwind
// the partial set on failure. [Adopt] moves a handle's obligation onto a
// stack; [Stack.Release] discards all obligations once ownership has
// safely moved on.
//
// # Errors and Failure Policy
//
// The package introduces no error types of its own. A deleter's error is
// returned verbatim from the call that triggered cleanup (Close, Reset,
// MoveFrom, With, Stack.Close) and is never swallowed or retried; the
// handle disarms regardless, so a failed cleanup does not turn into a
// double one. A deleter that panics propagates to the caller.
//
// # Observability
//
// Construction options attach lifecycle hooks:
//
//   - [WithOnCleanup]: after every deleter run, with the cleaned value
//     and the deleter's error.
//   - [WithOnRelease]: when Release hands the value back.
//   - [WithLeakFunc]: best-effort detection, via finalizer, of an armed
//     handle that became unreachable without Close or Release.
//
// # Concurrency
//
// The ownership model is single-threaded and synchronous: every
// operation runs to completion on the calling goroutine and the package
// takes no locks. A handle shared across goroutines requires external
// synchronization, exactly as a raw resource would.
package uniqueres
