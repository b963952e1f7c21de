package yay

import (
	"math"
	"math/big"

	"go.yay.dev/yay/internal/omap"
)

// Kind discriminates the eight cases a Value can hold.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindStr
	KindBytes
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindStr:
		return "string"
	case KindBytes:
		return "bytes"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Object is an insertion-ordered string-to-Value mapping. Iteration and
// re-serialization preserve the order keys were first written.
type Object = omap.Map[Value]

// Value is a closed tagged variant over the eight YAY data types. The zero
// Value is Null. Exactly one of the typed fields is meaningful for a given
// Kind; callers should switch on Kind rather than inspect the fields
// directly.
type Value struct {
	kind Kind

	boolVal  bool
	intVal   *big.Int
	floatVal float64
	strVal   string
	bytesVal []byte
	arrVal   []Value
	objVal   *Object
}

// Null is the single Null value.
var Null = Value{kind: KindNull}

// Kind reports which of the eight cases v holds.
func (v Value) Kind() Kind { return v.kind }

// Bool constructs a Bool value.
func Bool(b bool) Value { return Value{kind: KindBool, boolVal: b} }

// Int constructs an Int value from an arbitrary-precision integer. The
// *big.Int is stored by reference, not copied; IntFromInt64 is a
// convenience constructor.
func Int(n *big.Int) Value { return Value{kind: KindInt, intVal: n} }

// IntFromInt64 constructs an Int value from an int64.
func IntFromInt64(n int64) Value { return Int(big.NewInt(n)) }

// Float constructs a Float value. NaN and +/-Inf are representable.
func Float(f float64) Value { return Value{kind: KindFloat, floatVal: f} }

// Str constructs a Str value.
func Str(s string) Value { return Value{kind: KindStr, strVal: s} }

// Bytes constructs a Bytes value. A nil or empty slice both denote the
// zero-length byte string.
func Bytes(b []byte) Value {
	if b == nil {
		b = []byte{}
	}
	return Value{kind: KindBytes, bytesVal: b}
}

// Array constructs an Array value. The given slice is retained, not copied.
func Array(items []Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: KindArray, arrVal: items}
}

// NewObject constructs an empty Object-kind Value ready for Set calls.
func NewObject() Value { return Value{kind: KindObject, objVal: omap.New[Value](0)} }

// ObjectValue constructs an Object-kind Value wrapping an existing Object.
func ObjectValue(o *Object) Value {
	if o == nil {
		o = omap.New[Value](0)
	}
	return Value{kind: KindObject, objVal: o}
}

// AsBool returns the bool payload; only meaningful when Kind() == KindBool.
func (v Value) AsBool() bool { return v.boolVal }

// AsInt returns the *big.Int payload; only meaningful when Kind() == KindInt.
func (v Value) AsInt() *big.Int { return v.intVal }

// AsFloat returns the float64 payload; only meaningful when Kind() == KindFloat.
func (v Value) AsFloat() float64 { return v.floatVal }

// AsStr returns the string payload; only meaningful when Kind() == KindStr.
func (v Value) AsStr() string { return v.strVal }

// AsBytes returns the []byte payload; only meaningful when Kind() == KindBytes.
func (v Value) AsBytes() []byte { return v.bytesVal }

// AsArray returns the []Value payload; only meaningful when Kind() == KindArray.
func (v Value) AsArray() []Value { return v.arrVal }

// AsObject returns the Object payload; only meaningful when Kind() == KindObject.
func (v Value) AsObject() *Object { return v.objVal }

// Equal reports whether v and other are structurally equal, treating NaN
// as equal to NaN (per the round-trip invariant in the format's testable
// properties) and comparing big integers by value rather than pointer.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.boolVal == other.boolVal
	case KindInt:
		return bigIntEqual(v.intVal, other.intVal)
	case KindFloat:
		if math.IsNaN(v.floatVal) && math.IsNaN(other.floatVal) {
			return true
		}
		return v.floatVal == other.floatVal
	case KindStr:
		return v.strVal == other.strVal
	case KindBytes:
		return bytesEqual(v.bytesVal, other.bytesVal)
	case KindArray:
		if len(v.arrVal) != len(other.arrVal) {
			return false
		}
		for i := range v.arrVal {
			if !v.arrVal[i].Equal(other.arrVal[i]) {
				return false
			}
		}
		return true
	case KindObject:
		return objectEqual(v.objVal, other.objVal)
	default:
		return false
	}
}

func bigIntEqual(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
}

func bytesEqual(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func objectEqual(a, b *Object) bool {
	if a.Len() != b.Len() {
		return false
	}
	ae, be := a.Entries(), b.Entries()
	for i := range ae {
		if ae[i].Key != be[i].Key {
			return false
		}
		if !ae[i].Value.Equal(be[i].Value) {
			return false
		}
	}
	return true
}
