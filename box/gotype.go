package box

import (
	"fmt"
	"time"

	vcell "github.com/starfederation/vcell-go"
)

// ticksPerSecond is the DateTime and TimeSpan resolution.
const ticksPerSecond = 10_000_000

// unixEpochTicks is 1970-01-01 UTC in ticks since 1601-01-01 UTC.
const unixEpochTicks = 116_444_736_000_000_000

// DateTimeFromTime converts t to ticks, truncating below 100ns.
func DateTimeFromTime(t time.Time) vcell.DateTime {
	return vcell.DateTime{UniversalTime: unixEpochTicks + t.Unix()*ticksPerSecond + int64(t.Nanosecond())/100}
}

func TimeFromDateTime(d vcell.DateTime) time.Time {
	ticks := d.UniversalTime - unixEpochTicks
	return time.Unix(ticks/ticksPerSecond, (ticks%ticksPerSecond)*100).UTC()
}

func TimeSpanFromDuration(d time.Duration) vcell.TimeSpan {
	return vcell.TimeSpan{Duration: int64(d / 100)}
}

func DurationFromTimeSpan(s vcell.TimeSpan) time.Duration {
	return time.Duration(s.Duration) * 100
}

// FromGo stores a Go value in dst. Slices are copied into owned pooled
// buffers; objects are stored with an added reference.
func FromGo(dst *vcell.Value, v any) error {
	switch x := v.(type) {
	case nil:
		dst.SetNull()
	case bool:
		vcell.BoolKind.Set(dst, x)
	case int32:
		vcell.SignedKind.Set(dst, x)
	case uint32:
		vcell.UnsignedKind.Set(dst, x)
	case int:
		vcell.Int64Kind.Set(dst, int64(x))
	case int64:
		vcell.Int64Kind.Set(dst, x)
	case uint64:
		vcell.UInt64Kind.Set(dst, x)
	case float32:
		vcell.FloatKind.Set(dst, x)
	case float64:
		vcell.DoubleKind.Set(dst, x)
	case string:
		dst.SetString(x)
	case vcell.Color:
		vcell.ColorKind.Set(dst, x)
	case time.Time:
		vcell.DateTimeKind.Set(dst, DateTimeFromTime(x))
	case time.Duration:
		vcell.TimeSpanKind.Set(dst, TimeSpanFromDuration(x))
	case vcell.DateTime:
		vcell.DateTimeKind.Set(dst, x)
	case vcell.TimeSpan:
		vcell.TimeSpanKind.Set(dst, x)
	case vcell.TextRange:
		vcell.TextRangeKind.Set(dst, x)
	case vcell.KnownTypeIndex:
		vcell.TypeHandleKind.Set(dst, x)
	case vcell.Point:
		vcell.PointKind.SetValue(dst, x)
	case vcell.Size:
		vcell.SizeKind.SetValue(dst, x)
	case vcell.Rect:
		vcell.RectKind.SetValue(dst, x)
	case vcell.Thickness:
		vcell.ThicknessKind.SetValue(dst, x)
	case vcell.GridLength:
		vcell.GridLengthKind.SetValue(dst, x)
	case vcell.CornerRadius:
		vcell.CornerRadiusKind.SetValue(dst, x)
	case []int32:
		setArrayCopy(vcell.SignedArrayKind, dst, x)
	case []float32:
		setArrayCopy(vcell.FloatArrayKind, dst, x)
	case []float64:
		setArrayCopy(vcell.DoubleArrayKind, dst, x)
	case []vcell.Point:
		setArrayCopy(vcell.PointArrayKind, dst, x)
	case vcell.Object:
		vcell.ObjectKind.SetAddRef(dst, x)
	case vcell.Inspectable:
		vcell.InspectableKind.SetAddRef(dst, x)
	default:
		return fmt.Errorf("unsupported go type %T", v)
	}
	return nil
}

func setArrayCopy[E any](kind *vcell.Array[E], dst *vcell.Value, src []E) {
	if src == nil {
		kind.SetArray(dst, nil)
		return
	}
	buf := kind.New(len(src))
	copy(buf, src)
	kind.SetArray(dst, buf)
}

// ToGo returns the Go form of src. Slices are copied. Objects are returned
// without an added reference and are only valid while src holds them.
func ToGo(src *vcell.Value) (any, error) {
	switch t := src.Type(); t {
	case vcell.TypeAny, vcell.TypeNull:
		return nil, nil
	case vcell.TypeBool:
		return vcell.BoolKind.As(src), nil
	case vcell.TypeSigned:
		return vcell.SignedKind.As(src), nil
	case vcell.TypeUnsigned:
		return vcell.UnsignedKind.As(src), nil
	case vcell.TypeInt64:
		return vcell.Int64Kind.As(src), nil
	case vcell.TypeUInt64:
		return vcell.UInt64Kind.As(src), nil
	case vcell.TypeFloat:
		return vcell.FloatKind.As(src), nil
	case vcell.TypeDouble:
		return vcell.DoubleKind.As(src), nil
	case vcell.TypeString:
		if src.IsNull() {
			return nil, nil
		}
		return src.AsString(), nil
	case vcell.TypeEnum, vcell.TypeEnum8:
		return src.AsEnum(), nil
	case vcell.TypeColor:
		return vcell.ColorKind.As(src), nil
	case vcell.TypeDateTime:
		return TimeFromDateTime(vcell.DateTimeKind.As(src)), nil
	case vcell.TypeTimeSpan:
		return DurationFromTimeSpan(vcell.TimeSpanKind.As(src)), nil
	case vcell.TypeTextRange:
		return vcell.TextRangeKind.As(src), nil
	case vcell.TypeTypeHandle:
		return vcell.TypeHandleKind.As(src), nil
	case vcell.TypePoint:
		return refToGo(vcell.PointKind, src), nil
	case vcell.TypeSize:
		return refToGo(vcell.SizeKind, src), nil
	case vcell.TypeRect:
		return refToGo(vcell.RectKind, src), nil
	case vcell.TypeThickness:
		return refToGo(vcell.ThicknessKind, src), nil
	case vcell.TypeGridLength:
		return refToGo(vcell.GridLengthKind, src), nil
	case vcell.TypeCornerRadius:
		return refToGo(vcell.CornerRadiusKind, src), nil
	case vcell.TypeSignedArray:
		return arrayToGo(vcell.SignedArrayKind, src), nil
	case vcell.TypeFloatArray:
		return arrayToGo(vcell.FloatArrayKind, src), nil
	case vcell.TypeDoubleArray:
		return arrayToGo(vcell.DoubleArrayKind, src), nil
	case vcell.TypePointArray:
		return arrayToGo(vcell.PointArrayKind, src), nil
	case vcell.TypeObject:
		return vcell.ObjectKind.As(src), nil
	case vcell.TypeInspectable:
		return vcell.InspectableKind.As(src), nil
	default:
		return nil, fmt.Errorf("unsupported value type %s", t)
	}
}

func refToGo[T comparable](kind *vcell.Ref[T], src *vcell.Value) any {
	if p := kind.As(src); p != nil {
		return *p
	}
	return nil
}

func arrayToGo[E any](kind *vcell.Array[E], src *vcell.Value) any {
	s := kind.AsArray(src)
	if s == nil {
		return []E(nil)
	}
	return append([]E(nil), s...)
}
