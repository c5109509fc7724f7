package config

import (
	"errors"
	"testing"
	"time"

	"github.com/0xalexb/hjarta-config/config/value"
)

type mockSource struct {
	collectFunc func() (value.Map, error)
}

func (m *mockSource) Collect() (value.Map, error) {
	return m.collectFunc()
}

func staticSource(m value.Map) *mockSource {
	return &mockSource{
		collectFunc: func() (value.Map, error) {
			return m, nil
		},
	}
}

type simpleConfig struct {
	Name string
}

type configWithDefaults struct {
	Name    string
	changed bool
}

func (c *configWithDefaults) SetDefaults() bool {
	return c.changed
}

type configWithValidator struct {
	Name string
	err  error
}

func (c *configWithValidator) Validate() error {
	return c.err
}

type configWithBoth struct {
	Name    string
	changed bool
	err     error
}

func (c *configWithBoth) SetDefaults() bool {
	return c.changed
}

func (c *configWithBoth) Validate() error {
	return c.err
}

func TestProvider_Success(t *testing.T) {
	t.Parallel()

	target := &simpleConfig{}
	src := staticSource(value.Map{"name": value.String("test")})

	provider := Provider(target, "")

	result, err := provider(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result != target {
		t.Error("expected result to be the same as target")
	}

	if result.Name != "test" {
		t.Errorf("expected Name to be 'test', got %q", result.Name)
	}
}

func TestProvider_Section(t *testing.T) {
	t.Parallel()

	src := staticSource(value.Map{
		"services": value.Mapping(value.Map{
			"api": value.Mapping(value.Map{
				"name": value.String("api"),
			}),
		}),
	})

	result, err := Provider(&simpleConfig{}, "services:api")(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Name != "api" {
		t.Errorf("expected Name to be 'api', got %q", result.Name)
	}
}

func TestProvider_WithValidation_Success(t *testing.T) {
	t.Parallel()

	target := &configWithValidator{err: nil}

	provider := Provider(target, "")

	result, err := provider(staticSource(value.Map{}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result != target {
		t.Error("expected result to be the same as target")
	}
}

func TestProvider_WithDefaultsAndValidation_Success(t *testing.T) {
	t.Parallel()

	target := &configWithBoth{changed: true, err: nil}

	provider := Provider(target, "")

	result, err := provider(staticSource(value.Map{"name": value.String("x")}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result != target {
		t.Error("expected result to be the same as target")
	}

	if !result.changed {
		t.Error("expected unexported fields to survive decoding")
	}
}

func TestProvider_Errors(t *testing.T) {
	t.Parallel()

	collectErr := errors.New("collect failed")
	validationErr := errors.New("validation failed")

	tests := []struct {
		name        string
		collectFunc func() (value.Map, error)
		path        string
		targetErr   error
		wantErr     error
	}{
		{
			name: "collect error",
			collectFunc: func() (value.Map, error) {
				return nil, collectErr
			},
			targetErr: nil,
			wantErr:   collectErr,
		},
		{
			name: "missing section",
			collectFunc: func() (value.Map, error) {
				return value.Map{}, nil
			},
			path:      "missing",
			targetErr: nil,
			wantErr:   ErrPathNotFound,
		},
		{
			name: "section is a scalar",
			collectFunc: func() (value.Map, error) {
				return value.Map{"name": value.String("x")}, nil
			},
			path:      "name",
			targetErr: nil,
			wantErr:   ErrNotSection,
		},
		{
			name: "validation error",
			collectFunc: func() (value.Map, error) {
				return value.Map{}, nil
			},
			targetErr: validationErr,
			wantErr:   validationErr,
		},
	}

	for _, testInfo := range tests {
		testInfo := testInfo

		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			target := &configWithBoth{err: testInfo.targetErr}
			src := &mockSource{collectFunc: testInfo.collectFunc}

			provider := Provider(target, testInfo.path)

			result, err := provider(src)

			if result != nil {
				t.Error("expected result to be nil")
			}

			if err == nil {
				t.Fatal("expected error, got nil")
			}

			if !errors.Is(err, testInfo.wantErr) {
				t.Errorf("expected error to wrap %v, got %v", testInfo.wantErr, err)
			}
		})
	}
}

func TestProvider_DecodeError(t *testing.T) {
	t.Parallel()

	var target struct {
		Port int
	}

	src := staticSource(value.Map{"port": value.String("not-a-number")})

	_, err := Provider(&target, "")(src)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestProvider_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		changed bool
	}{
		{
			name:    "defaults changed",
			changed: true,
		},
		{
			name:    "defaults not changed",
			changed: false,
		},
	}

	for _, testInfo := range tests {
		testInfo := testInfo

		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			target := &configWithDefaults{changed: testInfo.changed}

			provider := Provider(target, "")

			result, err := provider(staticSource(value.Map{}))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result != target {
				t.Error("expected result to be the same as target")
			}
		})
	}
}

type level int

func (l *level) UnmarshalText(b []byte) error {
	switch string(b) {
	case "low":
		*l = 1
	case "high":
		*l = 2
	default:
		return errors.New("unknown level")
	}

	return nil
}

func TestDecode_Conversions(t *testing.T) {
	t.Parallel()

	var cfg struct {
		Host    string        `config:"host"`
		Port    int           `config:"port"`
		Timeout time.Duration `config:"timeout"`
		Retry   time.Duration `config:"retry"`
		Level   level         `config:"level"`
		Debug   bool          `config:"debug"`
		Tags    []string      `config:"tags"`
	}

	m := value.Map{
		"host":    value.String("localhost"),
		"port":    value.String("8080"),
		"timeout": value.String("5s"),
		"retry":   value.Int(int64(time.Second)),
		"level":   value.String("high"),
		"debug":   value.String("true"),
		"tags":    value.Seq(value.String("a"), value.String("b")),
	}

	err := Decode(m, &cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Host != "localhost" || cfg.Port != 8080 || !cfg.Debug {
		t.Errorf("unexpected scalar fields: %+v", cfg)
	}

	if cfg.Timeout != 5*time.Second || cfg.Retry != time.Second {
		t.Errorf("unexpected durations: %v %v", cfg.Timeout, cfg.Retry)
	}

	if cfg.Level != 2 {
		t.Errorf("expected level 2, got %d", cfg.Level)
	}

	if len(cfg.Tags) != 2 || cfg.Tags[0] != "a" || cfg.Tags[1] != "b" {
		t.Errorf("unexpected tags: %v", cfg.Tags)
	}
}

func TestDecode_NilTarget(t *testing.T) {
	t.Parallel()

	var target any

	err := Decode(value.Map{}, target)
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestSourceFunc_Collect(t *testing.T) {
	t.Parallel()

	src := SourceFunc(func() (value.Map, error) {
		return value.Map{"a": value.Int(1)}, nil
	})

	m, err := src.Collect()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v, ok := m["a"].AsInt(); !ok || v != 1 {
		t.Errorf("expected a=1, got %v", m["a"])
	}
}
