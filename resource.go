// Handle binds a resource value to a cleanup action and guarantees the
// action runs exactly once: when the handle is closed, reset to a new
// resource, or overwritten by move transfer, unless ownership was
// explicitly released to the caller.
//
// A Handle must be created via [Make], [MakeChecked], or [MakeCheckedFunc]
// (the zero value is a valid disarmed handle). The caller finalizes it by
// deferring [Handle.Close]; for a guaranteed-on-exit pattern use [With].
//
// Ownership is strictly single-owner: handles are move-only. [Handle.Move]
// and [Handle.MoveFrom] are the only transfer mechanisms, and both fully
// disarm the source before returning.
//
// Example usage:
//
//	f, err := os.Open(path)
//	if err != nil { ... }
//	h := uniqueres.Make(f, func(f *os.File) error { return f.Close() })
//	defer h.Close()
package uniqueres

// Handle owns one resource value and the deleter that cleans it up.
// While armed, exactly one deleter invocation is owed; [Handle.Close],
// [Handle.Reset], and [Handle.MoveFrom] pay that debt, [Handle.Release]
// cancels it.
//
// The zero value is a disarmed handle holding zero-valued resource and no
// deleter; closing it does nothing.
//
// A Handle must not be copied after first use; transfer ownership with
// [Handle.Move] or [Handle.MoveFrom] instead. Handles perform no internal
// locking: sharing one across goroutines requires external synchronization.
type Handle[R any] struct {
	noCopy noCopy

	value R
	del   func(R) error
	armed bool

	hooks hooks[R]
}

// Make returns an armed [Handle] owning value, cleaned up by deleter.
// No validation of value is performed; use [MakeChecked] when a sentinel
// return signals a failed acquisition. Make panics if deleter is nil.
func Make[R any](value R, deleter func(R) error, opts ...Option[R]) *Handle[R] {
	return newHandle(value, deleter, true, opts)
}

// MakeChecked compares value against sentinel and returns a disarmed
// [Handle] when they are equal, so cleanup never runs for a resource that
// was never actually acquired. Otherwise it behaves exactly like [Make].
//
// Only construction performs the sentinel comparison; [Handle.Reset] arms
// unconditionally.
func MakeChecked[R comparable](value, sentinel R, deleter func(R) error, opts ...Option[R]) *Handle[R] {
	return newHandle(value, deleter, value != sentinel, opts)
}

// MakeCheckedFunc is [MakeChecked] with the sentinel comparison replaced
// by a predicate, for resource types that are not comparable or whose
// invalid marker has a different type. The handle starts disarmed iff
// invalid(value) reports true.
func MakeCheckedFunc[R any](value R, invalid func(R) bool, deleter func(R) error, opts ...Option[R]) *Handle[R] {
	if invalid == nil {
		panic("uniqueres: nil invalid predicate")
	}
	return newHandle(value, deleter, !invalid(value), opts)
}

func newHandle[R any](value R, deleter func(R) error, armed bool, opts []Option[R]) *Handle[R] {
	if deleter == nil {
		panic("uniqueres: nil deleter")
	}

	h := &Handle[R]{
		value: value,
		del:   deleter,
		armed: armed,
	}
	for _, opt := range opts {
		opt(&h.hooks)
	}
	h.hooks.arm(h)

	return h
}

// Get returns the stored resource value. It is defined even when the
// handle is disarmed; the value is whatever was stored last, possibly
// already cleaned up or released.
func (h *Handle[R]) Get() R {
	return h.value
}

// Ptr returns the address of the stored resource value. Reading or
// mutating through the pointer never changes the armed state; the deleter
// still runs against whatever the stored value is at cleanup time.
func (h *Handle[R]) Ptr() *R {
	return &h.value
}

// Deleter returns the stored deleter for inspection. A zero-value handle
// returns nil.
func (h *Handle[R]) Deleter() func(R) error {
	return h.del
}

// Valid reports whether the handle currently owes a cleanup invocation.
func (h *Handle[R]) Valid() bool {
	return h.armed
}

// Close invokes the deleter on the stored value if the handle is armed,
// then disarms it. It is idempotent: subsequent calls do nothing and
// return nil. The stored value remains readable via [Handle.Get].
//
// Any error from the deleter is returned as-is; the handle is disarmed
// regardless, so cleanup is never retried.
func (h *Handle[R]) Close() error {
	if !h.armed {
		return nil
	}
	h.armed = false

	return h.invoke()
}

// Reset replaces the owned resource: if armed, the deleter runs on the
// current value first, then value is stored and the handle is armed
// unconditionally, with no sentinel check. The deleter's error, if any,
// is returned after the new value is in place.
func (h *Handle[R]) Reset(value R) error {
	err := h.Close()
	h.value = value
	h.armed = true

	return err
}

// Release disarms the handle without invoking the deleter and returns the
// resource value, transferring cleanup responsibility to the caller. The
// handle never cleans this value afterwards, though [Handle.Get] still
// exposes it.
func (h *Handle[R]) Release() R {
	h.armed = false
	if h.hooks.onRelease != nil {
		h.hooks.onRelease(h.value)
	}

	return h.value
}

// Move transfers the resource, deleter, and armed state into a fresh
// handle and disarms the receiver. No deleter invocation occurs; closing
// the moved-from handle is a no-op.
func (h *Handle[R]) Move() *Handle[R] {
	dst := &Handle[R]{
		value: h.value,
		del:   h.del,
		armed: h.armed,
		hooks: h.hooks,
	}
	h.armed = false
	dst.hooks.arm(dst)

	return dst
}

// MoveFrom overwrites the receiver with src's resource, deleter, and
// armed state, disarming src. If the receiver was armed, its deleter runs
// on its current value first (cleanup of the handle being overwritten)
// and any error is returned after the transfer completes.
//
// MoveFrom on itself is a no-op.
func (h *Handle[R]) MoveFrom(src *Handle[R]) error {
	if h == src {
		return nil
	}

	err := h.Close()

	h.value = src.value
	h.del = src.del
	h.armed = src.armed
	h.hooks = src.hooks
	src.armed = false
	h.hooks.arm(h)

	return err
}

// invoke runs the deleter on the current value and fires the cleanup
// hook. The armed flag must already be cleared by the caller.
func (h *Handle[R]) invoke() error {
	var err error
	if h.del != nil {
		err = h.del(h.value)
	}
	if h.hooks.onCleanup != nil {
		h.hooks.onCleanup(h.value, err)
	}

	return err
}
