// attribute holds field names and the normalization of field values into
// comparable lookup keys.

package joins

import (
	"fmt"
	"math"
	"reflect"
)

// Attribute represents a particular field's name in a record
type Attribute string

// Of returns the value of the attribute in rec, and whether the field was
// present.  A field holding nil is reported as absent.
func (att Attribute) Of(rec Record) (any, bool) {
	v, ok := rec[string(att)]
	if !ok || v == nil {
		return nil, false
	}
	return v, true
}

// Key is a normalized, comparable form of a key field's value.  Two records
// match when their keys are equal.
type Key struct {
	kind keyKind
	v    any
}

type keyKind uint8

const (
	// absentKey groups every record whose key field is missing or nil
	absentKey keyKind = iota
	intKey
	uintKey
	floatKey
	stringKey
	boolKey
	otherKey
	textKey
	nanKey
)

// String returns a text representation of the key
func (k Key) String() string {
	switch k.kind {
	case absentKey:
		return "<absent>"
	case stringKey, textKey:
		return fmt.Sprintf("%q", k.v)
	default:
		return fmt.Sprint(k.v)
	}
}

// Absent reports whether the key stands for a missing key field.
func (k Key) Absent() bool {
	return k.kind == absentKey
}

// KeyFunc turns the value read from a key field into a Key.  ok is false
// when the field was missing.
type KeyFunc func(v any, ok bool) Key

// nanSeq holds a fresh pointer so that no two NaN keys are equal
type nanSeq struct{ p *byte }

// StrictKey is the default key policy.  Integral numbers are equal whatever
// their Go type (1, int64(1), uint8(1) and float64(1) all match), other
// floats compare by value, strings and booleans compare by value whatever
// their named type, and other comparable values compare with ==.  A number
// never matches a string.  NaN matches nothing.  Values that are not
// comparable, such as slices or structs holding slices, are keyed by their
// %#v text.
func StrictKey(v any, ok bool) Key {
	if !ok || v == nil {
		return Key{kind: absentKey}
	}
	if n, isNum := normalizeNumber(v); isNum {
		switch x := n.(type) {
		case int64:
			return Key{kind: intKey, v: x}
		case uint64:
			return Key{kind: uintKey, v: x}
		case float64:
			if math.IsNaN(x) {
				return Key{kind: nanKey, v: nanSeq{new(byte)}}
			}
			return Key{kind: floatKey, v: x}
		}
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return Key{kind: stringKey, v: rv.String()}
	case reflect.Bool:
		return Key{kind: boolKey, v: rv.Bool()}
	}
	// an interface field holding a slice makes an otherwise comparable
	// type unhashable
	if rv.Comparable() {
		return Key{kind: otherKey, v: v}
	}
	return Key{kind: textKey, v: fmt.Sprintf("%#v", v)}
}

// LooseKey compares the fmt.Sprint form of values, so 1 and "1" are the same
// key.  This matches the behavior of joining on stringified keys.
func LooseKey(v any, ok bool) Key {
	if !ok || v == nil {
		return Key{kind: absentKey}
	}
	return Key{kind: stringKey, v: fmt.Sprint(v)}
}

// normalizeNumber converts any Go number into int64, uint64 or float64.
// Integral floats become int64 when they fit, and uint64 values that fit in
// an int64 become int64, so equal numbers always normalize to equal values.
func normalizeNumber(v any) (any, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u <= math.MaxInt64 {
			return int64(u), true
		}
		return u, true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
			return int64(f), true
		}
		if f == math.Trunc(f) && f >= math.MaxInt64 && f < math.MaxUint64 {
			return uint64(f), true
		}
		return f, true
	}
	return nil, false
}

// toFloat returns the value of a normalized number as a float64
func toFloat(n any) float64 {
	switch x := n.(type) {
	case int64:
		return float64(x)
	case uint64:
		return float64(x)
	case float64:
		return x
	}
	return math.NaN()
}
