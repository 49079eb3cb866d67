package compare

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

const (
	// A sequence is "big" when it has more than bigLen elements and every
	// element's form is wider than bigElemWidth, or when any single
	// element's form is wider than wideElemWidth.
	bigLen        = 5
	bigElemWidth  = 5
	wideElemWidth = 10

	gutterWidth = 14
	closeWidth  = 10
)

const (
	expectedPrefix = "Expected: "
	gotPrefix      = "     Got: "
)

// Diff renders the two sides of a failed comparison as an aligned block:
//
//	Expected: [1, 2, 3]
//	     Got: [1, 2, 4]
func Diff(value, expected any) []string {
	lines := Render(expectedPrefix, expected)
	return append(lines, Render(gotPrefix, value)...)
}

// Render produces the line-oriented form of v, prefixed on the first
// line. Small values render on a single line; a big sequence spills into
// a bracketed block with one element per line.
func Render(prefix string, v any) []string {
	return render(prefix, reflect.ValueOf(v))
}

func render(prefix string, v reflect.Value) []string {
	v = unwrap(v)
	if !v.IsValid() || !isSequence(v.Kind()) || !isBig(v) {
		return []string{prefix + form(v)}
	}

	gutter := strings.Repeat(" ", gutterWidth)
	lines := []string{prefix + "["}
	for i := 0; i < v.Len(); i++ {
		el := unwrap(v.Index(i))
		if el.IsValid() && isSequence(el.Kind()) && isBig(el) {
			// Big nested sequence: same rule, prefix blanked out.
			sub := render(gutter, el)
			sub[len(sub)-1] += ","
			lines = append(lines, sub...)
			continue
		}
		lines = append(lines, gutter+form(el)+",")
	}
	return append(lines, strings.Repeat(" ", closeWidth)+"]")
}

// Form is the single-line textual form of v: strings double-quoted,
// sequences bracketed, maps braced with sorted keys, scalars natural.
func Form(v any) string {
	return form(reflect.ValueOf(v))
}

func form(v reflect.Value) string {
	v = unwrap(v)
	if !v.IsValid() {
		return "<nil>"
	}

	switch {
	case v.Kind() == reflect.String:
		return strconv.Quote(v.String())
	case isSequence(v.Kind()):
		elems := make([]string, v.Len())
		for i := range elems {
			elems[i] = form(v.Index(i))
		}
		return "[" + strings.Join(elems, ", ") + "]"
	case v.Kind() == reflect.Map:
		return mapForm(v)
	}

	if v.CanInterface() {
		if s, ok := v.Interface().(fmt.Stringer); ok {
			return s.String()
		}
		if v.Kind() == reflect.Struct {
			return fmt.Sprintf("%+v", v.Interface())
		}
		return fmt.Sprintf("%v", v.Interface())
	}
	return fmt.Sprintf("%v", v)
}

// mapForm renders with keys sorted by their form so message text is
// deterministic regardless of iteration order.
func mapForm(v reflect.Value) string {
	pairs := make([]string, 0, v.Len())
	iter := v.MapRange()
	for iter.Next() {
		pairs = append(pairs, form(iter.Key())+": "+form(iter.Value()))
	}
	sort.Strings(pairs)
	return "{" + strings.Join(pairs, ", ") + "}"
}

func isBig(v reflect.Value) bool {
	n := v.Len()
	if n == 0 {
		return false
	}
	allWide := n > bigLen
	for i := 0; i < n; i++ {
		f := form(v.Index(i))
		if len(f) <= bigElemWidth {
			allWide = false
		}
		if len(f) > wideElemWidth {
			return true
		}
	}
	return allWide
}
