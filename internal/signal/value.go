// Package signal implements the typed signal bus: the shared keyed store
// of live values that blocks read from and write to every scan.
package signal

import (
	"encoding/json"
	"fmt"
	"math"
)

// Kind tags the ground type carried by a Value.
type Kind int

const (
	KindBool Kind = iota
	KindInt
	KindFloat
	KindString
)

// Value is a tagged union over the four ground types a signal can hold.
type Value struct {
	kind Kind
	b    bool
	i    int32
	f    float64
	s    string
}

func Bool(v bool) Value    { return Value{kind: KindBool, b: v} }
func Int(v int32) Value    { return Value{kind: KindInt, i: v} }
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }
func String(v string) Value { return Value{kind: KindString, s: v} }

// Kind reports the ground type stored.
func (v Value) Kind() Kind { return v.kind }

// TypeName returns the lowercase name of the stored ground type.
func (v Value) TypeName() string {
	switch v.kind {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// AsBool coerces the value to bool. Bool is identity, Int is nonzero-test;
// Float and String have no defined coercion.
func (v Value) AsBool() (bool, bool) {
	switch v.kind {
	case KindBool:
		return v.b, true
	case KindInt:
		return v.i != 0, true
	default:
		return false, false
	}
}

// AsInt coerces the value to int32. Int is identity, Bool maps to 0/1,
// Float truncates toward zero; String has no defined coercion.
func (v Value) AsInt() (int32, bool) {
	switch v.kind {
	case KindInt:
		return v.i, true
	case KindBool:
		if v.b {
			return 1, true
		}
		return 0, true
	case KindFloat:
		return int32(v.f), true
	default:
		return 0, false
	}
}

// AsFloat coerces the value to float64. Float is identity, Int widens;
// Bool and String have no defined coercion.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	default:
		return 0, false
	}
}

// AsString returns the string form of the value for String kind only.
func (v Value) AsString() (string, bool) {
	if v.kind == KindString {
		return v.s, true
	}
	return "", false
}

// Raw returns the stored value as its native Go type (bool, int32, float64,
// or string), for callers that need an untyped snapshot — JSON encoding,
// policy evaluation — rather than a coercing accessor.
func (v Value) Raw() interface{} {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	default:
		return nil
	}
}

// MarshalJSON encodes a Value as its raw native JSON representation.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Raw())
}

func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return fmt.Sprintf("%t", v.b)
	case KindInt:
		return fmt.Sprintf("%d", v.i)
	case KindFloat:
		return fmt.Sprintf("%g", v.f)
	case KindString:
		return v.s
	default:
		return "<invalid>"
	}
}

// Equal implements the EQ block's comparison rule: like-typed values
// compare structurally, with float equality within epsilon; mixed types
// are never equal (and never an error).
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == other.b
	case KindInt:
		return v.i == other.i
	case KindFloat:
		diff := v.f - other.f
		if diff < 0 {
			diff = -diff
		}
		// math.SmallestNonzeroFloat64 is the spec's epsilon. NaN operands
		// always fail this comparison (NaN < anything is false), which is
		// accepted as correct rather than special-cased (see DESIGN.md).
		return diff < math.SmallestNonzeroFloat64
	case KindString:
		return v.s == other.s
	default:
		return false
	}
}
