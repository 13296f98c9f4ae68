package uniqueres

import "errors"

// Stack accumulates cleanup obligations and runs them in reverse order
// on [Stack.Close], joining their errors. It is the multi-resource
// companion to [Handle]: a constructor that acquires several resources
// pushes each teardown as it goes, closes the stack on any early return,
// and calls [Stack.Release] once every acquisition succeeded and
// ownership moves to the constructed object.
//
// The zero value is ready to use. Like [Handle], a Stack is single-owner
// and performs no internal locking.
type Stack struct {
	noCopy noCopy

	fns []func() error
}

// Defer pushes a cleanup to run on [Stack.Close]. Cleanups run in LIFO
// order, mirroring acquisition order. It panics if fn is nil.
func (s *Stack) Defer(fn func() error) {
	if fn == nil {
		panic("uniqueres: nil cleanup")
	}
	s.fns = append(s.fns, fn)
}

// Len returns the number of pending cleanups.
func (s *Stack) Len() int {
	return len(s.fns)
}

// Close runs every pending cleanup in LIFO order and returns their
// errors joined via [errors.Join]. All cleanups run even when earlier
// ones fail. Close is idempotent.
func (s *Stack) Close() error {
	fns := s.fns
	s.fns = nil

	var errs []error
	for i := len(fns) - 1; i >= 0; i-- {
		if err := fns[i](); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Release discards all pending cleanups without running them,
// transferring responsibility for the underlying resources to the
// caller. A subsequent Close does nothing.
func (s *Stack) Release() {
	s.fns = nil
}

// Adopt moves a handle's cleanup obligation onto the stack. The handle
// is disarmed; the stack now owes its deleter invocation. Adopting a
// disarmed handle pushes nothing to pay, so it is harmless.
func Adopt[R any](s *Stack, h *Handle[R]) {
	m := h.Move()
	s.Defer(m.Close)
}
