package uniqueres

import "runtime"

// hooks carries the observability callbacks attached at construction.
// They travel with ownership: Move and MoveFrom transfer them alongside
// the resource and deleter.
type hooks[R any] struct {
	onCleanup func(R, error)
	onRelease func(R)
	onLeak    func(R)
}

// Option configures a [Handle] at construction time.
type Option[R any] func(*hooks[R])

// WithOnCleanup registers a hook invoked after every deleter run, with
// the value that was cleaned and the deleter's error (nil on success).
// The hook runs synchronously on the goroutine performing the cleanup.
// It panics if fn is nil.
func WithOnCleanup[R any](fn func(R, error)) Option[R] {
	if fn == nil {
		panic("uniqueres: nil cleanup hook")
	}
	return func(h *hooks[R]) {
		h.onCleanup = fn
	}
}

// WithOnRelease registers a hook invoked when [Handle.Release] hands the
// resource back to the caller. It panics if fn is nil.
func WithOnRelease[R any](fn func(R)) Option[R] {
	if fn == nil {
		panic("uniqueres: nil release hook")
	}
	return func(h *hooks[R]) {
		h.onRelease = fn
	}
}

// WithLeakFunc registers a hook invoked if an armed handle becomes
// unreachable without Close or Release having run, i.e. a lost cleanup
// obligation. Detection rides the garbage collector, so it is
// best-effort and fires on the finalizer goroutine at an unspecified
// time; use it for diagnostics, not as a cleanup path. It panics if fn
// is nil.
func WithLeakFunc[R any](fn func(R)) Option[R] {
	if fn == nil {
		panic("uniqueres: nil leak hook")
	}
	return func(h *hooks[R]) {
		h.onLeak = fn
	}
}

// arm registers the leak finalizer on h if a leak hook is set. A
// finalizer fires at most once per registration, so every handle that
// takes ownership (construction, Move, MoveFrom) arms its own.
func (hs *hooks[R]) arm(h *Handle[R]) {
	if hs.onLeak == nil {
		return
	}
	runtime.SetFinalizer(h, func(h *Handle[R]) {
		if h.armed {
			h.hooks.onLeak(h.value)
		}
	})
}
