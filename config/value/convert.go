package value

import (
	"fmt"
	"math"
	"reflect"
	"time"
)

// UnsupportedTypeError is returned by FromAny when a Go value has no
// configuration representation.
type UnsupportedTypeError struct {
	Type reflect.Type
}

// Error implements the error interface.
func (e UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported configuration value type: %v", e.Type)
}

// number matches decimal number types such as json.Number.
type number interface {
	Int64() (int64, error)
	Float64() (float64, error)
}

// FromAny converts a decoded Go value into a Value.
//
//nolint:cyclop // type switch over every supported input kind
func FromAny(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case Map:
		return Mapping(x), nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint:
		return fromUint(uint64(x)), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case uint64:
		return fromUint(x), nil
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case number:
		if i, err := x.Int64(); err == nil {
			return Int(i), nil
		}

		f, err := x.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("invalid number %v: %w", x, err)
		}

		return Float(f), nil
	case time.Time:
		return String(x.Format(time.RFC3339Nano)), nil
	case map[string]any:
		return fromStringMap(x)
	case map[any]any:
		m := make(Map, len(x))
		for k, elem := range x {
			converted, err := FromAny(elem)
			if err != nil {
				return Value{}, err
			}

			m[fmt.Sprint(k)] = converted
		}

		return Mapping(m), nil
	case []any:
		return fromSlice(reflect.ValueOf(x))
	case fmt.Stringer:
		// date and time scalars from TOML and similar formats
		return String(x.String()), nil
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() { //nolint:exhaustive // remaining kinds are unsupported
	case reflect.Slice, reflect.Array:
		return fromSlice(rv)
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Value{}, UnsupportedTypeError{Type: rv.Type()}
		}

		m := make(Map, rv.Len())
		iter := rv.MapRange()

		for iter.Next() {
			converted, err := FromAny(iter.Value().Interface())
			if err != nil {
				return Value{}, err
			}

			m[iter.Key().String()] = converted
		}

		return Mapping(m), nil
	default:
		return Value{}, UnsupportedTypeError{Type: rv.Type()}
	}
}

// FromMap converts a decoded document root into a Map.
func FromMap(m map[string]any) (Map, error) {
	v, err := fromStringMap(m)
	if err != nil {
		return nil, err
	}

	out, _ := v.AsMap()

	return out, nil
}

func fromStringMap(x map[string]any) (Value, error) {
	m := make(Map, len(x))
	for k, elem := range x {
		converted, err := FromAny(elem)
		if err != nil {
			return Value{}, err
		}

		m[k] = converted
	}

	return Mapping(m), nil
}

func fromSlice(rv reflect.Value) (Value, error) {
	seq := make([]Value, rv.Len())
	for i := range seq {
		converted, err := FromAny(rv.Index(i).Interface())
		if err != nil {
			return Value{}, err
		}

		seq[i] = converted
	}

	return Seq(seq...), nil
}

func fromUint(u uint64) Value {
	if u > math.MaxInt64 {
		return Float(float64(u))
	}

	return Int(int64(u))
}
