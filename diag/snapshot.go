// Package diag renders cells for inspection and parses cell literals for
// tools and tests. The formats here belong to diag, not to the cells.
package diag

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/delaneyj/toolbelt/bytebufferpool"
	"github.com/fxamacker/cbor/v2"
	vcell "github.com/starfederation/vcell-go"
	"github.com/starfederation/vcell-go/box"
)

// Snapshot is a self-describing copy of a cell's observable state.
type Snapshot struct {
	Type      string `json:"type" cbor:"1,keyasint"`
	Owns      bool   `json:"owns,omitempty" cbor:"2,keyasint,omitempty"`
	Custom    uint8  `json:"custom,omitempty" cbor:"3,keyasint,omitempty"`
	TypeIndex uint16 `json:"typeIndex,omitempty" cbor:"4,keyasint,omitempty"`
	Count     int    `json:"count,omitempty" cbor:"5,keyasint,omitempty"`
	Value     any    `json:"value" cbor:"6,keyasint"`
}

// Take captures v. Objects are described by their runtime class name
// rather than captured.
func Take(v *vcell.Value) (Snapshot, error) {
	s := Snapshot{
		Type:   v.Type().String(),
		Owns:   v.OwnsValue(),
		Custom: uint8(v.GetCustomData()),
		Count:  v.ArrayElementCount(),
	}
	switch t := v.Type(); {
	case t.IsRefCounted(), t == vcell.TypePointer, t == vcell.TypeInternalHandler:
		if !v.IsNull() {
			s.Value = describeObject(v)
		}
		return s, nil
	case v.IsEnum():
		_, typeIndex, _ := v.GetEnumWithType()
		s.TypeIndex = uint16(typeIndex)
	}
	value, err := box.ToGo(v)
	if err != nil {
		return Snapshot{}, err
	}
	s.Value = literalValue(value)
	return s, nil
}

func describeObject(v *vcell.Value) string {
	if obj := vcell.InspectableKind.As(v); obj != nil {
		return obj.RuntimeClassName()
	}
	return v.String()
}

// literalValue reshapes Go values into the forms ParseJSON accepts.
func literalValue(value any) any {
	switch x := value.(type) {
	case vcell.Point:
		return []float32{x.X, x.Y}
	case vcell.Size:
		return []float32{x.Width, x.Height}
	case vcell.Rect:
		return []float32{x.X, x.Y, x.Width, x.Height}
	case vcell.Thickness:
		return []float32{x.Left, x.Top, x.Right, x.Bottom}
	case vcell.CornerRadius:
		return []float32{x.TopLeft, x.TopRight, x.BottomRight, x.BottomLeft}
	case vcell.GridLength:
		return []float32{float32(x.Type), x.Value}
	case vcell.TextRange:
		return []int32{x.Start, x.Length}
	case []vcell.Point:
		if x == nil {
			return nil
		}
		out := make([][]float32, len(x))
		for i, p := range x {
			out[i] = []float32{p.X, p.Y}
		}
		return out
	case vcell.Color:
		return fmt.Sprintf("#%08X", uint32(x))
	case vcell.KnownTypeIndex:
		return uint16(x)
	case time.Time:
		return box.DateTimeFromTime(x).UniversalTime
	case time.Duration:
		return box.TimeSpanFromDuration(x).Duration
	default:
		return value
	}
}

// MarshalJSON renders the values as a JSON array of snapshots.
func MarshalJSON(values ...*vcell.Value) ([]byte, error) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	buf.WriteByte('[')
	for i, v := range values {
		if i > 0 {
			buf.WriteByte(',')
		}
		s, err := Take(v)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		data, err := json.Marshal(s)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		buf.Write(data)
	}
	buf.WriteByte(']')
	out := append([]byte{}, buf.Bytes()...)
	return out, nil
}

// MarshalCBOR renders the values as a CBOR array of snapshots.
func MarshalCBOR(values ...*vcell.Value) ([]byte, error) {
	snaps := make([]Snapshot, len(values))
	for i, v := range values {
		s, err := Take(v)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		snaps[i] = s
	}
	return cbor.Marshal(snaps)
}

// UnmarshalCBOR decodes snapshots written by MarshalCBOR.
func UnmarshalCBOR(data []byte) ([]Snapshot, error) {
	var snaps []Snapshot
	if err := cbor.Unmarshal(data, &snaps); err != nil {
		return nil, err
	}
	return snaps, nil
}
