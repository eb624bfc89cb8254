package vcell

//go:generate go run ./cmd/vcellgen

import (
	"math"
	"unsafe"
)

// Scalar tags.
var (
	BoolKind     = newScalar[bool](TypeBool, loadBool, storeBool)
	SignedKind   = newScalar[int32](TypeSigned, loadInt32, storeInt32)
	UnsignedKind = newScalar[uint32](TypeUnsigned, loadUint32, storeUint32)
	Int64Kind    = newScalar[int64](TypeInt64, loadInt64, storeInt64,
		convertFrom(TypeSigned, func(p *payload) int64 { return int64(loadInt32(p)) }),
	)
	UInt64Kind = newScalar[uint64](TypeUInt64, loadUint64, storeUint64,
		convertFrom(TypeUnsigned, func(p *payload) uint64 { return uint64(loadUint32(p)) }),
	)
	FloatKind = newScalar[float32](TypeFloat, loadFloat32, storeFloat32,
		convertFrom(TypeDouble, func(p *payload) float32 { return float32(loadFloat64(p)) }),
	)
	DoubleKind = newScalar[float64](TypeDouble, loadFloat64, storeFloat64,
		convertFrom(TypeFloat, func(p *payload) float64 { return float64(loadFloat32(p)) }),
		convertFrom(TypeSigned, func(p *payload) float64 { return float64(loadInt32(p)) }),
	)
	ColorKind = newScalar[Color](TypeColor,
		func(p *payload) Color { return Color(p.num) },
		func(p *payload, c Color) { p.num = uint64(c) },
	)
	DateTimeKind = newScalar[DateTime](TypeDateTime,
		func(p *payload) DateTime { return DateTime{UniversalTime: loadInt64(p)} },
		func(p *payload, d DateTime) { storeInt64(p, d.UniversalTime) },
	)
	TimeSpanKind = newScalar[TimeSpan](TypeTimeSpan,
		func(p *payload) TimeSpan { return TimeSpan{Duration: loadInt64(p)} },
		func(p *payload, d TimeSpan) { storeInt64(p, d.Duration) },
	)
	TextRangeKind = newScalar[TextRange](TypeTextRange,
		func(p *payload) TextRange {
			return TextRange{Start: int32(uint32(p.num)), Length: int32(uint32(p.num >> 32))}
		},
		func(p *payload, r TextRange) {
			p.num = uint64(uint32(r.Start)) | uint64(uint32(r.Length))<<32
		},
	)
	TypeHandleKind = newScalar[KnownTypeIndex](TypeTypeHandle,
		func(p *payload) KnownTypeIndex { return KnownTypeIndex(p.num) },
		func(p *payload, t KnownTypeIndex) { p.num = uint64(t) },
	)
	PointerKind = newOpaque[unsafe.Pointer](TypePointer,
		func(p *payload) unsafe.Pointer { return p.ptr },
		func(p *payload, x unsafe.Pointer) { p.ptr = x },
	)
	InternalHandlerKind = newOpaque[InternalHandler](TypeInternalHandler,
		func(p *payload) InternalHandler { return *(*InternalHandler)(unsafe.Pointer(&p.ptr)) },
		func(p *payload, h InternalHandler) { p.ptr = *(*unsafe.Pointer)(unsafe.Pointer(&h)) },
	)
)

// Struct tags held by pointer.
var (
	PointKind        = newRef[Point](TypePoint)
	SizeKind         = newRef[Size](TypeSize)
	RectKind         = newRef[Rect](TypeRect)
	ThicknessKind    = newRef[Thickness](TypeThickness)
	GridLengthKind   = newRef[GridLength](TypeGridLength)
	CornerRadiusKind = newRef[CornerRadius](TypeCornerRadius)
)

// Array tags.
var (
	SignedArrayKind = newArray[int32](TypeSignedArray, int32Pool)
	FloatArrayKind  = newArray[float32](TypeFloatArray, float32Pool)
	DoubleArrayKind = newArray[float64](TypeDoubleArray, float64Pool)
	PointArrayKind  = newArray[Point](TypePointArray, pointPool)
)

// Reference-counted tags.
var (
	ObjectKind        = newCounted[Object](TypeObject)
	RefCountedKind    = newCounted[RefCounted](TypeRefCounted)
	InspectableKind   = newCounted[Inspectable](TypeInspectable)
	ThemeResourceKind = newCounted[ThemeResource](TypeThemeResource)
	VOKind            = newCounted[ValueObject](TypeVO)
)

func loadBool(p *payload) bool { return p.num != 0 }

func storeBool(p *payload, b bool) {
	if b {
		p.num = 1
	} else {
		p.num = 0
	}
}

func loadInt32(p *payload) int32 { return int32(uint32(p.num)) }
func storeInt32(p *payload, x int32) { p.num = uint64(uint32(x)) }
func loadUint32(p *payload) uint32 { return uint32(p.num) }
func storeUint32(p *payload, x uint32) { p.num = uint64(x) }
func loadInt64(p *payload) int64 { return int64(p.num) }
func storeInt64(p *payload, x int64) { p.num = uint64(x) }
func loadUint64(p *payload) uint64 { return p.num }
func storeUint64(p *payload, x uint64) { p.num = x }
func loadFloat32(p *payload) float32 { return math.Float32frombits(uint32(p.num)) }
func storeFloat32(p *payload, x float32) { p.num = uint64(math.Float32bits(x)) }
func loadFloat64(p *payload) float64 { return math.Float64frombits(p.num) }
func storeFloat64(p *payload, x float64) { p.num = math.Float64bits(x) }
