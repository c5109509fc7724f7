package format

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/0xalexb/hjarta-config/config/value"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// ErrBlockConflict is returned when an HCL block is declared where a non-block attribute already exists.
var ErrBlockConflict = errors.New("block conflicts with attribute")

// ErrDuplicateBlock is returned when two HCL blocks share a type and labels.
var ErrDuplicateBlock = errors.New("duplicate block")

// ErrUnsupportedHCLValue is returned for HCL values with no configuration representation.
var ErrUnsupportedHCLValue = errors.New("unsupported hcl value")

// decodeHCL evaluates attributes without variables or functions. Blocks are
// nested by type and then by each label, so `service "web" { port = 80 }`
// becomes {"service": {"web": {"port": 80}}}. A block repeating the type and
// labels of an earlier one is an error.
func decodeHCL(text string) (value.Map, error) {
	file, diags := hclsyntax.ParseConfig([]byte(text), "", hcl.InitialPos)
	if diags.HasErrors() {
		return nil, diags
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected body type %T", ErrUnsupportedHCLValue, file.Body)
	}

	return decodeHCLBody(body)
}

func decodeHCLBody(body *hclsyntax.Body) (value.Map, error) {
	m := make(value.Map, len(body.Attributes))

	for name, attr := range body.Attributes {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, diags
		}

		converted, err := fromCty(val)
		if err != nil {
			return nil, fmt.Errorf("attribute %q: %w", name, err)
		}

		m[name] = converted
	}

	for _, block := range body.Blocks {
		inner, err := decodeHCLBody(block.Body)
		if err != nil {
			return nil, err
		}

		path := append([]string{block.Type}, block.Labels...)

		err = insertBlock(m, path, inner)
		if err != nil {
			return nil, err
		}
	}

	return m, nil
}

// insertBlock stores inner at path, sharing intermediate maps with blocks
// already declared under the same type or leading labels.
func insertBlock(m value.Map, path []string, inner value.Map) error {
	key := path[0]

	existing, found := m[key]
	if !found {
		if len(path) == 1 {
			m[key] = value.Mapping(inner)

			return nil
		}

		target := make(value.Map)
		m[key] = value.Mapping(target)

		return insertBlock(target, path[1:], inner)
	}

	target, isMap := existing.AsMap()
	if !isMap {
		return fmt.Errorf("%w: %q", ErrBlockConflict, key)
	}

	if len(path) == 1 {
		return fmt.Errorf("%w: %q", ErrDuplicateBlock, key)
	}

	return insertBlock(target, path[1:], inner)
}

func fromCty(val cty.Value) (value.Value, error) {
	val, _ = val.Unmark()

	if val.IsNull() {
		return value.Null(), nil
	}

	if !val.IsWhollyKnown() {
		return value.Value{}, fmt.Errorf("%w: unknown value", ErrUnsupportedHCLValue)
	}

	ty := val.Type()

	switch {
	case ty.Equals(cty.Bool):
		return value.Bool(val.True()), nil
	case ty.Equals(cty.String):
		return value.String(val.AsString()), nil
	case ty.Equals(cty.Number):
		return fromCtyNumber(val.AsBigFloat()), nil
	case ty.IsListType(), ty.IsSetType(), ty.IsTupleType():
		seq := make([]value.Value, 0, val.LengthInt())

		for it := val.ElementIterator(); it.Next(); {
			_, elem := it.Element()

			converted, err := fromCty(elem)
			if err != nil {
				return value.Value{}, err
			}

			seq = append(seq, converted)
		}

		return value.Seq(seq...), nil
	case ty.IsMapType(), ty.IsObjectType():
		m := make(value.Map, val.LengthInt())

		for it := val.ElementIterator(); it.Next(); {
			key, elem := it.Element()

			converted, err := fromCty(elem)
			if err != nil {
				return value.Value{}, err
			}

			m[key.AsString()] = converted
		}

		return value.Mapping(m), nil
	default:
		return value.Value{}, fmt.Errorf("%w: %s", ErrUnsupportedHCLValue, ty.FriendlyName())
	}
}

func fromCtyNumber(bf *big.Float) value.Value {
	if bf.IsInt() {
		i, accuracy := bf.Int64()
		if accuracy == big.Exact {
			return value.Int(i)
		}
	}

	f, _ := bf.Float64()

	return value.Float(f)
}
