package compare

import (
	"reflect"
)

type Options struct {
	strict bool
}

// Option is a functional option for configuring a comparison.
type Option func(*Options)

// Strict disables cross-kind numeric coercion: scalar operands must have
// the same dynamic type to compare equal. Sequences and maps always use
// the recursive rule regardless of this option.
func Strict() Option {
	return func(o *Options) {
		o.strict = true
	}
}

func buildOptions(opts []Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Values reports whether value and expected are equal.
//
// Strings compare by content, maps by key set and recursive value
// equality, sequences element-wise in lock step (a shorter sequence is
// unequal, not truncated). Sequences of different concrete element types
// ([]int against []any, say) compare by the same rule. Comparing a
// sequence against a non-sequence, or a map against a non-map, is
// inequality, never a panic.
func Values(value, expected any, opts ...Option) bool {
	o := buildOptions(opts)
	return equal(reflect.ValueOf(value), reflect.ValueOf(expected), o)
}

func equal(a, b reflect.Value, o *Options) bool {
	a = unwrap(a)
	b = unwrap(b)
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}

	ak, bk := a.Kind(), b.Kind()
	switch {
	case ak == reflect.String && bk == reflect.String:
		return a.String() == b.String()
	case ak == reflect.Map && bk == reflect.Map:
		return mapsEqual(a, b, o)
	case isSequence(ak) && isSequence(bk):
		return sequencesEqual(a, b, o)
	case isSequence(ak) != isSequence(bk),
		(ak == reflect.Map) != (bk == reflect.Map),
		(ak == reflect.String) != (bk == reflect.String):
		return false
	}

	if o.strict && a.Type() != b.Type() {
		return false
	}
	if !o.strict {
		if af, aok := toFloat(a); aok {
			if bf, bok := toFloat(b); bok {
				return af == bf
			}
		}
	}

	return reflect.DeepEqual(a.Interface(), b.Interface())
}

// sequencesEqual walks both sequences in lock step. Two sequences are
// equal only if they exhaust simultaneously.
func sequencesEqual(a, b reflect.Value, o *Options) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !equal(a.Index(i), b.Index(i), o) {
			return false
		}
	}
	return true
}

func mapsEqual(a, b reflect.Value, o *Options) bool {
	if a.Len() != b.Len() {
		return false
	}
	direct := a.Type().Key().AssignableTo(b.Type().Key())
	iter := a.MapRange()
	for iter.Next() {
		var bv reflect.Value
		if direct {
			bv = b.MapIndex(iter.Key())
		} else {
			bv = lookupKey(b, iter.Key(), o)
		}
		if !bv.IsValid() || !equal(iter.Value(), bv, o) {
			return false
		}
	}
	return true
}

// lookupKey scans m for a key equal to key under the recursive rule.
// Used when the key types are not directly assignable.
func lookupKey(m, key reflect.Value, o *Options) reflect.Value {
	iter := m.MapRange()
	for iter.Next() {
		if equal(iter.Key(), key, o) {
			return iter.Value()
		}
	}
	return reflect.Value{}
}

// unwrap peels interface wrappers so dispatch sees the concrete shape.
func unwrap(v reflect.Value) reflect.Value {
	for v.Kind() == reflect.Interface {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func isSequence(k reflect.Kind) bool {
	return k == reflect.Slice || k == reflect.Array
}

func toFloat(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	}
	return 0, false
}
