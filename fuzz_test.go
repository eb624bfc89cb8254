package vcell

import (
	"encoding/binary"
	"math"
	"testing"
)

func FuzzScalarRoundTrip(f *testing.F) {
	seeds := [][]byte{
		{0x00},
		{0x01, 0x01},
		{0x02, 0xff, 0xff, 0xff, 0xff},
		{0x05, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xf8, 0x7f},
		{0x06, 0x00, 0x00, 0xc0, 0x7f},
		{0x09, 'h', 'i'},
	}
	for _, seed := range seeds {
		f.Add(seed)
	}
	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) == 0 {
			return
		}
		var v, moved, copied Value
		defer v.ReleaseAndReset()
		defer moved.ReleaseAndReset()
		defer copied.ReleaseAndReset()

		var word [8]byte
		copy(word[:], data[1:])
		bits := binary.LittleEndian.Uint64(word[:])

		switch data[0] % 10 {
		case 0:
			BoolKind.Set(&v, bits&1 == 1)
			if BoolKind.As(&v) != (bits&1 == 1) {
				t.Fatalf("bool mismatch")
			}
		case 1:
			SignedKind.Set(&v, int32(bits))
			if got, err := Int64Kind.Get(&v); err != nil || got != int64(int32(bits)) {
				t.Fatalf("int64 from signed = %d, %v", got, err)
			}
		case 2:
			UnsignedKind.Set(&v, uint32(bits))
			if got := UInt64Kind.As(&v); got != uint64(uint32(bits)) {
				t.Fatalf("uint64 from unsigned = %d", got)
			}
		case 3:
			Int64Kind.Set(&v, int64(bits))
			if Int64Kind.As(&v) != int64(bits) {
				t.Fatalf("int64 mismatch")
			}
		case 4:
			UInt64Kind.Set(&v, bits)
			if UInt64Kind.As(&v) != bits {
				t.Fatalf("uint64 mismatch")
			}
		case 5:
			x := math.Float64frombits(bits)
			DoubleKind.Set(&v, x)
			if got := DoubleKind.As(&v); math.Float64bits(got) != bits {
				t.Fatalf("double bits %#x != %#x", math.Float64bits(got), bits)
			}
			if got := FloatKind.As(&v); !math.IsNaN(x) && got != float32(x) {
				t.Fatalf("float from double = %v, want %v", got, float32(x))
			}
		case 6:
			x := math.Float32frombits(uint32(bits))
			FloatKind.Set(&v, x)
			if got := FloatKind.As(&v); math.Float32bits(got) != uint32(bits) {
				t.Fatalf("float bits mismatch")
			}
		case 7:
			r := TextRange{Start: int32(bits), Length: int32(bits >> 32)}
			TextRangeKind.Set(&v, r)
			if TextRangeKind.As(&v) != r {
				t.Fatalf("text range mismatch")
			}
		case 8:
			v.SetEnumWithType(uint32(bits), KnownTypeIndex(bits>>32))
			value, typeIndex, err := v.GetEnumWithType()
			if err != nil || value != uint32(bits) || typeIndex != KnownTypeIndex(bits>>32) {
				t.Fatalf("enum mismatch")
			}
		case 9:
			s := string(data[1:])
			v.SetString(s)
			if v.AsString() != s {
				t.Fatalf("string mismatch")
			}
		}

		copied.CopyFrom(&v)
		nan := v.IsFloatingPoint() && math.IsNaN(DoubleKind.As(&v))
		if !nan && !copied.Equal(&v) {
			t.Fatalf("copy %s != %s", copied.String(), v.String())
		}
		want := v.Type()
		moved.MoveFrom(&v)
		if !v.IsUnset() || moved.Type() != want {
			t.Fatalf("move: src=%s dst=%s", v.Type(), moved.Type())
		}
	})
}
