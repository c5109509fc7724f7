package value

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_ZeroIsNull(t *testing.T) {
	t.Parallel()

	var v Value

	assert.True(t, v.IsNull())
	assert.Equal(t, KindNull, v.Kind())
	assert.Nil(t, v.Interface())
	assert.Equal(t, "null", v.String())
}

func TestValue_Accessors(t *testing.T) {
	t.Parallel()

	b, ok := Bool(true).AsBool()
	require.True(t, ok)
	assert.True(t, b)

	i, ok := Int(42).AsInt()
	require.True(t, ok)
	assert.Equal(t, int64(42), i)

	f, ok := Int(2).AsFloat()
	require.True(t, ok, "integers widen to float")
	assert.InDelta(t, 2.0, f, 0)

	s, ok := String("hello").AsString()
	require.True(t, ok)
	assert.Equal(t, "hello", s)

	_, ok = String("hello").AsInt()
	assert.False(t, ok)

	seq, ok := Seq(Int(1), Int(2)).AsSeq()
	require.True(t, ok)
	assert.Len(t, seq, 2)

	m, ok := Mapping(nil).AsMap()
	require.True(t, ok)
	assert.NotNil(t, m)
	assert.Empty(t, m)
}

func TestValue_Interface(t *testing.T) {
	t.Parallel()

	v := Mapping(Map{
		"name":  String("app"),
		"port":  Int(8080),
		"ratio": Float(0.5),
		"debug": Bool(false),
		"tags":  Seq(String("a"), String("b")),
		"empty": Null(),
	})

	expected := map[string]any{
		"name":  "app",
		"port":  int64(8080),
		"ratio": 0.5,
		"debug": false,
		"tags":  []any{"a", "b"},
		"empty": nil,
	}

	assert.Equal(t, expected, v.Interface())
}

func TestValue_String(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		value    Value
		expected string
	}{
		{"bool", Bool(true), "true"},
		{"int", Int(-3), "-3"},
		{"float", Float(1.25), "1.25"},
		{"string", String("x"), "x"},
		{"sequence", Seq(Int(1), String("a")), "[1 a]"},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, tc.value.String())
		})
	}
}

func TestMap_Lookup(t *testing.T) {
	t.Parallel()

	m := Map{
		"database": Mapping(Map{
			"connection": Mapping(Map{
				"host": String("db.example.com"),
			}),
		}),
		"name": String("app"),
	}

	v, ok := m.Lookup("database", "connection", "host")
	require.True(t, ok)
	assert.Equal(t, String("db.example.com"), v)

	v, ok = m.Lookup()
	require.True(t, ok)
	assert.Equal(t, Mapping(m), v)

	_, ok = m.Lookup("database", "missing")
	assert.False(t, ok)

	_, ok = m.Lookup("name", "nested")
	assert.False(t, ok, "cannot descend into a scalar")
}

type stringerDate struct{}

func (stringerDate) String() string { return "2024-01-02" }

type fakeNumber string

func (n fakeNumber) Int64() (int64, error) {
	var i int64

	for _, r := range n {
		if r < '0' || r > '9' {
			return 0, assert.AnError
		}

		i = i*10 + int64(r-'0')
	}

	return i, nil
}

func (n fakeNumber) Float64() (float64, error) {
	if n == "1.5" {
		return 1.5, nil
	}

	return 0, assert.AnError
}

func TestFromAny(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	testCases := []struct {
		name     string
		input    any
		expected Value
	}{
		{"nil", nil, Null()},
		{"bool", true, Bool(true)},
		{"string", "s", String("s")},
		{"int", 7, Int(7)},
		{"int32", int32(-7), Int(-7)},
		{"uint64 fits", uint64(9), Int(9)},
		{"uint64 overflows to float", uint64(math.MaxUint64), Float(float64(uint64(math.MaxUint64)))},
		{"float32", float32(0.5), Float(0.5)},
		{"integer number", fakeNumber("12"), Int(12)},
		{"float number", fakeNumber("1.5"), Float(1.5)},
		{"time", ts, String("2024-01-02T03:04:05Z")},
		{"stringer", stringerDate{}, String("2024-01-02")},
		{"any slice", []any{1, "a"}, Seq(Int(1), String("a"))},
		{"typed slice", []string{"a", "b"}, Seq(String("a"), String("b"))},
		{"empty slice", []any{}, Seq()},
		{
			"string map",
			map[string]any{"a": map[string]any{"b": 1}},
			Mapping(Map{"a": Mapping(Map{"b": Int(1)})}),
		},
		{
			"any map",
			map[any]any{1: "one", "two": 2},
			Mapping(Map{"1": String("one"), "two": Int(2)}),
		},
		{
			"typed map",
			map[string]int{"a": 1},
			Mapping(Map{"a": Int(1)}),
		},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			v, err := FromAny(tc.input)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, v)
		})
	}
}

func TestFromAny_Unsupported(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		input any
	}{
		{"channel", make(chan int)},
		{"nested func", map[string]any{"f": func() {}}},
		{"int keyed map", map[int]string{1: "a"}},
		{"struct", struct{ A int }{A: 1}},
	}

	for _, tc := range testCases {
		tc := tc

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := FromAny(tc.input)

			var typeErr UnsupportedTypeError

			require.ErrorAs(t, err, &typeErr)
			assert.NotEmpty(t, typeErr.Error())
		})
	}
}

func TestFromMap(t *testing.T) {
	t.Parallel()

	m, err := FromMap(map[string]any{"port": 80})

	require.NoError(t, err)
	assert.Equal(t, Map{"port": Int(80)}, m)

	_, err = FromMap(map[string]any{"bad": make(chan int)})
	require.Error(t, err)

	var typeErr UnsupportedTypeError

	require.ErrorAs(t, err, &typeErr)
	assert.Equal(t, reflect.TypeOf(make(chan int)), typeErr.Type)
}
