package check

import (
	"errors"
	"fmt"
	"reflect"
)

// outcome is the memoized result of running a guarded expression. The
// expression runs exactly once; every branch below inspects the capture.
type outcome struct {
	panicked bool
	value    any
}

func capture(fn func()) (o outcome) {
	defer func() {
		if r := recover(); r != nil {
			o.panicked = true
			o.value = r
		}
	}()
	fn()
	return
}

// recoveredError narrows a captured panic value to the catchable kind.
// Panic values that are not errors propagate: asserting on them is out
// of contract, and swallowing them would hide real bugs.
func recoveredError(o outcome) error {
	err, ok := o.value.(error)
	if !ok {
		panic(o.value)
	}
	return err
}

// Panics checks that fn panics with an error value. Wrapped and derived
// errors all pass; use PanicsExactly to pin the dynamic type.
func Panics(fn func(), opts ...Option) error {
	o := buildOptions(opts)
	out := capture(fn)
	if !out.panicked {
		return fail(o, "expression did not panic")
	}
	recoveredError(out)
	return nil
}

// PanicsAs checks that fn panics with an error matching E, following
// wrapped errors the way errors.As does.
func PanicsAs[E error](fn func(), opts ...Option) error {
	o := buildOptions(opts)
	out := capture(fn)
	if !out.panicked {
		return fail(o, "expression did not panic")
	}
	err := recoveredError(out)
	var target E
	if errors.As(err, &target) {
		return nil
	}
	want := reflect.TypeOf((*E)(nil)).Elem()
	if o.cause == nil {
		o.cause = err
	}
	return fail(o, fmt.Sprintf("expression panicked with %T instead of %s", err, want))
}

// PanicsExactly checks that fn panics with exactly the dynamic type E.
// A wrapped or derived error fails; acceptance of related kinds is
// reserved for PanicsAs.
func PanicsExactly[E error](fn func(), opts ...Option) error {
	o := buildOptions(opts)
	out := capture(fn)
	if !out.panicked {
		return fail(o, "expression did not panic")
	}
	err := recoveredError(out)
	want := reflect.TypeOf((*E)(nil)).Elem()
	if reflect.TypeOf(err) == want {
		return nil
	}
	if o.cause == nil {
		o.cause = err
	}
	return fail(o, fmt.Sprintf("expression panicked with %T instead of exactly %s", err, want))
}

// NotPanics checks that fn returns without panicking.
func NotPanics(fn func(), opts ...Option) error {
	o := buildOptions(opts)
	out := capture(fn)
	if !out.panicked {
		return nil
	}
	err := recoveredError(out)
	if o.cause == nil {
		o.cause = err
	}
	return fail(o, fmt.Sprintf("expression panicked: %v", err))
}
