package uniqueres

import "errors"

// With runs fn with a freshly armed [Handle] owning value, then closes
// the handle on the way out, even if fn panics. It returns fn's error
// joined with the close error via [errors.Join].
//
// With is the scoped-acquisition entry point: cleanup is guaranteed on
// exit without the caller wiring up a defer.
//
//	err := uniqueres.With(f, closeFile, func(h *uniqueres.Handle[*os.File]) error {
//	    return consume(h.Get())
//	})
func With[R any](value R, deleter func(R) error, fn func(*Handle[R]) error, opts ...Option[R]) (err error) {
	h := Make(value, deleter, opts...)

	defer func() {
		err = errors.Join(err, h.Close())
	}()

	return fn(h)
}

// WithChecked is [With] with sentinel-checked construction: when value
// equals sentinel the handle starts disarmed and fn still runs, but no
// cleanup ever fires for it.
func WithChecked[R comparable](value, sentinel R, deleter func(R) error, fn func(*Handle[R]) error, opts ...Option[R]) (err error) {
	h := MakeChecked(value, sentinel, deleter, opts...)

	defer func() {
		err = errors.Join(err, h.Close())
	}()

	return fn(h)
}
