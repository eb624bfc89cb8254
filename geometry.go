package vcell

// Point is a 2D position in device-independent pixels.
type Point struct {
	X, Y float32
}

type Size struct {
	Width, Height float32
}

type Rect struct {
	X, Y, Width, Height float32
}

// Thickness describes the four edges of a frame, such as a margin.
type Thickness struct {
	Left, Top, Right, Bottom float32
}

type CornerRadius struct {
	TopLeft, TopRight, BottomRight, BottomLeft float32
}

// GridUnitType selects how a GridLength value is interpreted.
type GridUnitType uint8

const (
	GridUnitAuto GridUnitType = iota
	GridUnitPixel
	GridUnitStar
)

type GridLength struct {
	Type  GridUnitType
	Value float32
}

// Color is a packed 0xAARRGGBB value.
type Color uint32

// ARGB splits c into its channels.
func (c Color) ARGB() (a, r, g, b uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// ColorFromARGB packs four channels into a Color.
func ColorFromARGB(a, r, g, b uint8) Color {
	return Color(a)<<24 | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// DateTime is a point in time in 100ns ticks since 1601-01-01 UTC.
type DateTime struct {
	UniversalTime int64
}

// TimeSpan is a duration in 100ns ticks.
type TimeSpan struct {
	Duration int64
}

// TextRange is a run of characters within a text buffer.
type TextRange struct {
	Start, Length int32
}
