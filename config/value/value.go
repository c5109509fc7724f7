package value

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies the variant held by a Value.
type Kind uint8

// Value kinds.
const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindSeq
	KindMap
)

var kindNames = [...]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindInt:    "int",
	KindFloat:  "float",
	KindString: "string",
	KindSeq:    "sequence",
	KindMap:    "map",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Map is a mapping of keys to configuration values.
type Map map[string]Value

// Value is a configuration scalar, sequence or mapping.
// The zero Value is Null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	seq  []Value
	m    Map
}

// Null returns the null Value.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a boolean Value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Int returns an integer Value.
func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// Float returns a floating point Value.
func Float(f float64) Value {
	return Value{kind: KindFloat, f: f}
}

// String returns a string Value.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Seq returns a sequence Value holding vs.
func Seq(vs ...Value) Value {
	if vs == nil {
		vs = []Value{}
	}

	return Value{kind: KindSeq, seq: vs}
}

// Mapping returns a mapping Value holding m.
func Mapping(m Map) Value {
	if m == nil {
		m = Map{}
	}

	return Value{kind: KindMap, m: m}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull reports whether v is the null Value.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

// AsBool returns the boolean held by v.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.kind == KindBool
}

// AsInt returns the integer held by v.
func (v Value) AsInt() (int64, bool) {
	return v.i, v.kind == KindInt
}

// AsFloat returns the float held by v. Integers are widened.
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

// AsString returns the string held by v.
func (v Value) AsString() (string, bool) {
	return v.s, v.kind == KindString
}

// AsSeq returns the sequence held by v.
func (v Value) AsSeq() ([]Value, bool) {
	return v.seq, v.kind == KindSeq
}

// AsMap returns the mapping held by v.
func (v Value) AsMap() (Map, bool) {
	return v.m, v.kind == KindMap
}

// Interface converts v into plain Go values: nil, bool, int64, float64,
// string, []any and map[string]any.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindSeq:
		out := make([]any, len(v.seq))
		for i, elem := range v.seq {
			out[i] = elem.Interface()
		}

		return out
	case KindMap:
		return v.m.Interface()
	default:
		return nil
	}
}

// String implements fmt.Stringer.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindString:
		return v.s
	case KindSeq:
		parts := make([]string, len(v.seq))
		for i, elem := range v.seq {
			parts[i] = elem.String()
		}

		return "[" + strings.Join(parts, " ") + "]"
	case KindMap:
		return fmt.Sprint(v.m.Interface())
	default:
		return v.kind.String()
	}
}

// Interface converts m into a map[string]any tree.
func (m Map) Interface() map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v.Interface()
	}

	return out
}

// Lookup walks nested mappings following path.
// An empty path returns m itself as a mapping Value.
func (m Map) Lookup(path ...string) (Value, bool) {
	current := Mapping(m)

	for _, key := range path {
		inner, ok := current.AsMap()
		if !ok {
			return Value{}, false
		}

		current, ok = inner[key]
		if !ok {
			return Value{}, false
		}
	}

	return current, true
}
