package check

import (
	"cmp"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/abelmx/affirm/packages/compare"
)

// True checks that v is true.
func True(v bool, opts ...Option) error {
	if v {
		return nil
	}
	o := buildOptions(opts)
	return fail(o, compare.Diff(v, true)...)
}

// False checks that v is false.
func False(v bool, opts ...Option) error {
	if !v {
		return nil
	}
	o := buildOptions(opts)
	return fail(o, compare.Diff(v, false)...)
}

// Equal checks deep equality of value against expected and renders a
// two-sided diff on mismatch.
func Equal(value, expected any, opts ...Option) error {
	o := buildOptions(opts)
	if compare.Values(value, expected, o.compareOptions()...) {
		return nil
	}
	return fail(o, compare.Diff(value, expected)...)
}

// NotEqual is the exact negation of Equal.
func NotEqual(value, expected any, opts ...Option) error {
	o := buildOptions(opts)
	if !compare.Values(value, expected, o.compareOptions()...) {
		return nil
	}
	return fail(o, fmt.Sprintf("%s is equal to %s", compare.Form(value), compare.Form(expected)))
}

// Nil checks that v is the nil sentinel (nil interface, or a nil
// pointer, map, slice, channel or function).
func Nil(v any, opts ...Option) error {
	if isNil(v) {
		return nil
	}
	o := buildOptions(opts)
	return fail(o, "value is not nil: "+compare.Form(v))
}

// NotNil checks that v is not nil.
func NotNil(v any, opts ...Option) error {
	if !isNil(v) {
		return nil
	}
	o := buildOptions(opts)
	return fail(o, "value is nil")
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// In checks membership: a key lookup when container is a map, a
// substring test when both are strings, otherwise a linear scan. A
// non-container never panics; the value is simply not in it.
func In(value, container any, opts ...Option) error {
	if contains(container, value) {
		return nil
	}
	o := buildOptions(opts)
	return fail(o, fmt.Sprintf("%s not in %s", compare.Form(value), compare.Form(container)))
}

// NotIn is the exact negation of In.
func NotIn(value, container any, opts ...Option) error {
	if !contains(container, value) {
		return nil
	}
	o := buildOptions(opts)
	return fail(o, fmt.Sprintf("%s is in %s", compare.Form(value), compare.Form(container)))
}

func contains(container, value any) bool {
	rc := reflect.ValueOf(container)
	switch rc.Kind() {
	case reflect.Map:
		iter := rc.MapRange()
		for iter.Next() {
			if compare.Values(iter.Key().Interface(), value) {
				return true
			}
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < rc.Len(); i++ {
			if compare.Values(rc.Index(i).Interface(), value) {
				return true
			}
		}
	case reflect.String:
		if s, ok := value.(string); ok {
			return strings.Contains(rc.String(), s)
		}
	}
	return false
}

// Greater checks t > u under the natural ordering.
func Greater[T cmp.Ordered](t, u T, opts ...Option) error {
	if t > u {
		return nil
	}
	o := buildOptions(opts)
	return fail(o, fmt.Sprintf("%s is not > %s", compare.Form(t), compare.Form(u)))
}

// Less checks t < u under the natural ordering.
func Less[T cmp.Ordered](t, u T, opts ...Option) error {
	if t < u {
		return nil
	}
	o := buildOptions(opts)
	return fail(o, fmt.Sprintf("%s is not < %s", compare.Form(t), compare.Form(u)))
}

// Empty checks that v is a zero-length sequence, map or string.
func Empty(v any, opts ...Option) error {
	n, err := length(v)
	if err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	o := buildOptions(opts)
	return fail(o, "value not empty: "+compare.Form(v))
}

// NotEmpty checks that v has at least one element.
func NotEmpty(v any, opts ...Option) error {
	n, err := length(v)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	o := buildOptions(opts)
	return fail(o, "value is empty")
}

// length returns a configuration error, not a Failure, for types that
// have no length.
func length(v any) (int, error) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array, reflect.Map, reflect.String, reflect.Chan:
		return rv.Len(), nil
	}
	return 0, fmt.Errorf("check: %T has no length", v)
}

// SameSet checks that two sequences hold equal multisets of elements,
// order-independent. Both sides are sorted by their rendered form and
// compared with the equality engine, so a mismatch diffs the sorted
// forms.
func SameSet(value, expected any, opts ...Option) error {
	o := buildOptions(opts)
	a, ok := sortedElems(value)
	if !ok {
		return fail(o, "not a sequence: "+compare.Form(value))
	}
	b, ok := sortedElems(expected)
	if !ok {
		return fail(o, "not a sequence: "+compare.Form(expected))
	}
	if compare.Values(a, b, o.compareOptions()...) {
		return nil
	}
	return fail(o, compare.Diff(a, b)...)
}

// NotSameSet is the exact negation of SameSet.
func NotSameSet(value, expected any, opts ...Option) error {
	o := buildOptions(opts)
	a, ok := sortedElems(value)
	if !ok {
		return fail(o, "not a sequence: "+compare.Form(value))
	}
	b, ok := sortedElems(expected)
	if !ok {
		return fail(o, "not a sequence: "+compare.Form(expected))
	}
	if !compare.Values(a, b, o.compareOptions()...) {
		return nil
	}
	return fail(o, fmt.Sprintf("%s is the same set as %s", compare.Form(value), compare.Form(expected)))
}

func sortedElems(v any) ([]any, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	sort.SliceStable(out, func(i, j int) bool {
		return compare.Form(out[i]) < compare.Form(out[j])
	})
	return out, true
}
