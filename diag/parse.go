package diag

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/minio/simdjson-go"
	vcell "github.com/starfederation/vcell-go"
)

var ErrLiteral = errors.New("diag: invalid cell literal")

// ParseJSON parses a JSON array of cell literals such as
//
//	[{"type":"double","value":2.5},{"type":"point","value":[1,2]}]
//
// into owning cells. The caller releases them with Release.
func ParseJSON(data []byte) ([]*vcell.Value, error) {
	root, err := decodeJSON(data)
	if err != nil {
		return nil, err
	}
	items, ok := root.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: root is not an array", ErrLiteral)
	}
	out := make([]*vcell.Value, 0, len(items))
	for i, item := range items {
		v := &vcell.Value{}
		if err := setLiteral(v, item); err != nil {
			v.ReleaseAndReset()
			Release(out)
			return nil, fmt.Errorf("literal %d: %w", i, err)
		}
		out = append(out, v)
	}
	return out, nil
}

// Release releases every cell in values.
func Release(values []*vcell.Value) {
	for _, v := range values {
		v.ReleaseAndReset()
	}
}

func decodeJSON(data []byte) (any, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("json input is empty")
	}
	if !simdjson.SupportedCPU() || (trimmed[0] != '[' && trimmed[0] != '{') {
		dec := json.NewDecoder(bytes.NewReader(trimmed))
		dec.UseNumber()
		var out any
		if err := dec.Decode(&out); err != nil {
			return nil, err
		}
		return out, nil
	}
	parsed, err := simdjson.Parse(trimmed, nil)
	if err != nil {
		return nil, err
	}
	it := parsed.Iter()
	if it.Advance() != simdjson.TypeRoot {
		return nil, fmt.Errorf("json root not found")
	}
	typ, root, err := it.Root(nil)
	if err != nil {
		return nil, err
	}
	return anyFromJSONIter(typ, root)
}

func anyFromJSONIter(typ simdjson.Type, it *simdjson.Iter) (any, error) {
	switch typ {
	case simdjson.TypeNull:
		return nil, nil
	case simdjson.TypeBool:
		return it.Bool()
	case simdjson.TypeInt:
		return it.Int()
	case simdjson.TypeUint:
		return it.Uint()
	case simdjson.TypeFloat:
		return it.Float()
	case simdjson.TypeString:
		b, err := it.StringBytes()
		if err != nil {
			return nil, err
		}
		return string(b), nil
	case simdjson.TypeArray:
		arr, err := it.Array(nil)
		if err != nil {
			return nil, err
		}
		var out []any
		iter := arr.Iter()
		for {
			t := iter.Advance()
			if t == simdjson.TypeNone {
				break
			}
			elem := iter
			val, err := anyFromJSONIter(t, &elem)
			if err != nil {
				return nil, err
			}
			out = append(out, val)
		}
		if out == nil {
			out = []any{}
		}
		return out, nil
	case simdjson.TypeObject:
		obj, err := it.Object(nil)
		if err != nil {
			return nil, err
		}
		out := make(map[string]any)
		var parseErr error
		err = obj.ForEach(func(key []byte, elem simdjson.Iter) {
			if parseErr != nil {
				return
			}
			val, err := anyFromJSONIter(elem.Type(), &elem)
			if err != nil {
				parseErr = err
				return
			}
			out[string(key)] = val
		}, nil)
		if err != nil {
			return nil, err
		}
		if parseErr != nil {
			return nil, parseErr
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported json type: %v", typ)
	}
}

func setLiteral(v *vcell.Value, item any) error {
	obj, ok := item.(map[string]any)
	if !ok {
		return fmt.Errorf("%w: not an object", ErrLiteral)
	}
	name, ok := obj["type"].(string)
	if !ok {
		return fmt.Errorf("%w: missing type", ErrLiteral)
	}
	t, ok := vcell.ParseType(name)
	if !ok {
		return fmt.Errorf("%w: unknown type %q", ErrLiteral, name)
	}
	value := obj["value"]
	if err := setTyped(v, t, value, obj); err != nil {
		return err
	}
	if raw, ok := obj["custom"]; ok {
		c, err := asUint64(raw)
		if err != nil || c > 7 {
			v.ReleaseAndReset()
			return fmt.Errorf("%w: custom must be 0-7", ErrLiteral)
		}
		v.SetCustomData(vcell.CustomData(c))
	}
	return nil
}

func setTyped(v *vcell.Value, t vcell.Type, value any, obj map[string]any) error {
	switch t {
	case vcell.TypeAny:
		v.ReleaseAndReset()
	case vcell.TypeNull:
		v.SetNull()
	case vcell.TypeBool:
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("%w: bool value %v", ErrLiteral, value)
		}
		vcell.BoolKind.Set(v, b)
	case vcell.TypeSigned:
		n, err := asInt32(value)
		if err != nil {
			return err
		}
		vcell.SignedKind.Set(v, n)
	case vcell.TypeUnsigned:
		n, err := asUint64(value)
		if err != nil || n > math.MaxUint32 {
			return fmt.Errorf("%w: unsigned value %v", ErrLiteral, value)
		}
		vcell.UnsignedKind.Set(v, uint32(n))
	case vcell.TypeInt64:
		n, err := asInt64(value)
		if err != nil {
			return err
		}
		vcell.Int64Kind.Set(v, n)
	case vcell.TypeUInt64:
		n, err := asUint64(value)
		if err != nil {
			return err
		}
		vcell.UInt64Kind.Set(v, n)
	case vcell.TypeFloat:
		f, err := asFloat64(value)
		if err != nil {
			return err
		}
		vcell.FloatKind.Set(v, float32(f))
	case vcell.TypeDouble:
		f, err := asFloat64(value)
		if err != nil {
			return err
		}
		vcell.DoubleKind.Set(v, f)
	case vcell.TypeEnum, vcell.TypeEnum8:
		return setEnum(v, t, value, obj)
	case vcell.TypeColor:
		c, err := asColor(value)
		if err != nil {
			return err
		}
		vcell.ColorKind.Set(v, c)
	case vcell.TypeDateTime:
		n, err := asInt64(value)
		if err != nil {
			return err
		}
		vcell.DateTimeKind.Set(v, vcell.DateTime{UniversalTime: n})
	case vcell.TypeTimeSpan:
		n, err := asInt64(value)
		if err != nil {
			return err
		}
		vcell.TimeSpanKind.Set(v, vcell.TimeSpan{Duration: n})
	case vcell.TypeTextRange:
		items, ok := value.([]any)
		if !ok || len(items) != 2 {
			return fmt.Errorf("%w: textrange value %v", ErrLiteral, value)
		}
		start, err := asInt32(items[0])
		if err != nil {
			return err
		}
		length, err := asInt32(items[1])
		if err != nil {
			return err
		}
		vcell.TextRangeKind.Set(v, vcell.TextRange{Start: start, Length: length})
	case vcell.TypeTypeHandle:
		n, err := asUint64(value)
		if err != nil || n > math.MaxUint16 {
			return fmt.Errorf("%w: type handle %v", ErrLiteral, value)
		}
		vcell.TypeHandleKind.Set(v, vcell.KnownTypeIndex(n))
	case vcell.TypeString:
		if value == nil {
			v.SetEncodedString(vcell.NullString())
			return nil
		}
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("%w: string value %v", ErrLiteral, value)
		}
		v.SetString(s)
	case vcell.TypePoint:
		return setRef(vcell.PointKind, v, value, 2, func(f []float32) vcell.Point {
			return vcell.Point{X: f[0], Y: f[1]}
		})
	case vcell.TypeSize:
		return setRef(vcell.SizeKind, v, value, 2, func(f []float32) vcell.Size {
			return vcell.Size{Width: f[0], Height: f[1]}
		})
	case vcell.TypeRect:
		return setRef(vcell.RectKind, v, value, 4, func(f []float32) vcell.Rect {
			return vcell.Rect{X: f[0], Y: f[1], Width: f[2], Height: f[3]}
		})
	case vcell.TypeThickness:
		return setRef(vcell.ThicknessKind, v, value, 4, func(f []float32) vcell.Thickness {
			return vcell.Thickness{Left: f[0], Top: f[1], Right: f[2], Bottom: f[3]}
		})
	case vcell.TypeCornerRadius:
		return setRef(vcell.CornerRadiusKind, v, value, 4, func(f []float32) vcell.CornerRadius {
			return vcell.CornerRadius{TopLeft: f[0], TopRight: f[1], BottomRight: f[2], BottomLeft: f[3]}
		})
	case vcell.TypeGridLength:
		return setRef(vcell.GridLengthKind, v, value, 2, func(f []float32) vcell.GridLength {
			return vcell.GridLength{Type: vcell.GridUnitType(f[0]), Value: f[1]}
		})
	case vcell.TypeSignedArray:
		return setArray(vcell.SignedArrayKind, v, value, asInt32)
	case vcell.TypeFloatArray:
		return setArray(vcell.FloatArrayKind, v, value, func(x any) (float32, error) {
			f, err := asFloat64(x)
			return float32(f), err
		})
	case vcell.TypeDoubleArray:
		return setArray(vcell.DoubleArrayKind, v, value, asFloat64)
	case vcell.TypePointArray:
		return setArray(vcell.PointArrayKind, v, value, func(x any) (vcell.Point, error) {
			f, err := asFloats(x, 2)
			if err != nil {
				return vcell.Point{}, err
			}
			return vcell.Point{X: f[0], Y: f[1]}, nil
		})
	default:
		return fmt.Errorf("%w: %s has no literal form", ErrLiteral, t)
	}
	return nil
}

func setEnum(v *vcell.Value, t vcell.Type, value any, obj map[string]any) error {
	n, err := asUint64(value)
	if err != nil || n > math.MaxUint32 || (t == vcell.TypeEnum8 && n > math.MaxUint8) {
		return fmt.Errorf("%w: %s value %v", ErrLiteral, t, value)
	}
	var typeIndex vcell.KnownTypeIndex
	if raw, ok := obj["typeIndex"]; ok {
		ti, err := asUint64(raw)
		if err != nil || ti > math.MaxUint16 {
			return fmt.Errorf("%w: typeIndex %v", ErrLiteral, raw)
		}
		typeIndex = vcell.KnownTypeIndex(ti)
	}
	if t == vcell.TypeEnum8 {
		v.SetEnum8WithType(uint8(n), typeIndex)
	} else {
		v.SetEnumWithType(uint32(n), typeIndex)
	}
	return nil
}

func setRef[T comparable](kind *vcell.Ref[T], v *vcell.Value, value any, n int, build func([]float32) T) error {
	if value == nil {
		kind.Set(v, nil)
		return nil
	}
	f, err := asFloats(value, n)
	if err != nil {
		return err
	}
	kind.SetValue(v, build(f))
	return nil
}

func setArray[E any](kind *vcell.Array[E], v *vcell.Value, value any, elem func(any) (E, error)) error {
	if value == nil {
		kind.SetArray(v, nil)
		return nil
	}
	items, ok := value.([]any)
	if !ok {
		return fmt.Errorf("%w: %s value is not an array", ErrLiteral, kind.Type())
	}
	buf := kind.New(len(items))
	for i, item := range items {
		x, err := elem(item)
		if err != nil {
			kind.Free(buf)
			return err
		}
		buf[i] = x
	}
	kind.SetArray(v, buf)
	return nil
}

func asFloats(value any, n int) ([]float32, error) {
	items, ok := value.([]any)
	if !ok || len(items) != n {
		return nil, fmt.Errorf("%w: want %d numbers, have %v", ErrLiteral, n, value)
	}
	out := make([]float32, n)
	for i, item := range items {
		f, err := asFloat64(item)
		if err != nil {
			return nil, err
		}
		out[i] = float32(f)
	}
	return out, nil
}

func asColor(value any) (vcell.Color, error) {
	if s, ok := value.(string); ok {
		hex := strings.TrimPrefix(s, "#")
		n, err := strconv.ParseUint(hex, 16, 32)
		if err != nil || len(hex) != 8 {
			return 0, fmt.Errorf("%w: color %q", ErrLiteral, s)
		}
		return vcell.Color(n), nil
	}
	n, err := asUint64(value)
	if err != nil || n > math.MaxUint32 {
		return 0, fmt.Errorf("%w: color %v", ErrLiteral, value)
	}
	return vcell.Color(n), nil
}

func asInt64(value any) (int64, error) {
	switch x := value.(type) {
	case int64:
		return x, nil
	case uint64:
		if x > math.MaxInt64 {
			break
		}
		return int64(x), nil
	case float64:
		if x != math.Trunc(x) || x < math.MinInt64 || x >= math.MaxInt64 {
			break
		}
		return int64(x), nil
	case json.Number:
		if n, err := strconv.ParseInt(x.String(), 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: integer %v", ErrLiteral, value)
}

func asInt32(value any) (int32, error) {
	n, err := asInt64(value)
	if err != nil || n < math.MinInt32 || n > math.MaxInt32 {
		return 0, fmt.Errorf("%w: int32 %v", ErrLiteral, value)
	}
	return int32(n), nil
}

func asUint64(value any) (uint64, error) {
	switch x := value.(type) {
	case int64:
		if x < 0 {
			break
		}
		return uint64(x), nil
	case uint64:
		return x, nil
	case float64:
		if x != math.Trunc(x) || x < 0 || x >= math.MaxUint64 {
			break
		}
		return uint64(x), nil
	case json.Number:
		if n, err := strconv.ParseUint(x.String(), 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, fmt.Errorf("%w: unsigned integer %v", ErrLiteral, value)
}

func asFloat64(value any) (float64, error) {
	switch x := value.(type) {
	case int64:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case float64:
		return x, nil
	case json.Number:
		if f, err := x.Float64(); err == nil {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: number %v", ErrLiteral, value)
}
