package diag

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	vcell "github.com/starfederation/vcell-go"
)

func TestParseJSONLiterals(t *testing.T) {
	src := `[
		{"type":"double","value":2.5},
		{"type":"enum","value":3,"typeIndex":7},
		{"type":"point","value":[1,2]},
		{"type":"string","value":null},
		{"type":"string","value":"hello"},
		{"type":"null"},
		{"type":"any"},
		{"type":"color","value":"#80FF0000"},
		{"type":"uint64","value":18446744073709551615},
		{"type":"signedarray","value":[1,-2,3]},
		{"type":"pointarray","value":[[1,2],[3,4]]},
		{"type":"textrange","value":[5,6]},
		{"type":"bool","value":true,"custom":2}
	]`
	values, err := ParseJSON([]byte(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	defer Release(values)
	if len(values) != 13 {
		t.Fatalf("got %d values", len(values))
	}

	if got := vcell.DoubleKind.As(values[0]); got != 2.5 {
		t.Fatalf("double = %v", got)
	}
	if value, typeIndex, err := values[1].GetEnumWithType(); err != nil || value != 3 || typeIndex != 7 {
		t.Fatalf("enum = %d/%d/%v", value, typeIndex, err)
	}
	if got := vcell.PointKind.Value(values[2]); got != (vcell.Point{X: 1, Y: 2}) {
		t.Fatalf("point = %+v", got)
	}
	if values[3].Type() != vcell.TypeString || !values[3].IsNull() {
		t.Fatalf("null string = %s", values[3])
	}
	if got := values[4].AsString(); got != "hello" {
		t.Fatalf("string = %q", got)
	}
	if values[5].Type() != vcell.TypeNull || !values[6].IsUnset() {
		t.Fatalf("null/any = %s/%s", values[5], values[6])
	}
	if got := vcell.ColorKind.As(values[7]); got != vcell.ColorFromARGB(0x80, 0xff, 0, 0) {
		t.Fatalf("color = %#x", uint32(got))
	}
	if got := vcell.UInt64Kind.As(values[8]); got != 1<<64-1 {
		t.Fatalf("uint64 = %d", got)
	}
	if diff := cmp.Diff([]int32{1, -2, 3}, vcell.SignedArrayKind.AsArray(values[9])); diff != "" {
		t.Fatalf("signed array mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]vcell.Point{{X: 1, Y: 2}, {X: 3, Y: 4}}, vcell.PointArrayKind.AsArray(values[10])); diff != "" {
		t.Fatalf("point array mismatch (-want +got):\n%s", diff)
	}
	if got := vcell.TextRangeKind.As(values[11]); got != (vcell.TextRange{Start: 5, Length: 6}) {
		t.Fatalf("text range = %+v", got)
	}
	if !vcell.BoolKind.As(values[12]) || values[12].GetCustomData() != vcell.CustomSetLocally {
		t.Fatalf("bool = %s custom %d", values[12], values[12].GetCustomData())
	}
	for i, v := range values {
		if v.Type() != vcell.TypeAny && v.Type() != vcell.TypeNull && !v.OwnsValue() {
			t.Fatalf("value %d (%s) is not owned", i, v)
		}
	}
}

func TestParseJSONRoundTrip(t *testing.T) {
	var d, th, fa, s vcell.Value
	vcell.DoubleKind.Set(&d, -0.125)
	vcell.ThicknessKind.SetValue(&th, vcell.Thickness{Left: 1, Top: 2, Right: 3, Bottom: 4})
	vcell.FloatArrayKind.SetArray(&fa, []float32{0.5, 1.5})
	s.SetString("round")
	defer th.ReleaseAndReset()
	defer fa.ReleaseAndReset()

	data, err := MarshalJSON(&d, &th, &fa, &s)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	values, err := ParseJSON(data)
	if err != nil {
		t.Fatalf("parse %s: %v", data, err)
	}
	defer Release(values)

	// Arrays compare by identity, so the round trip is checked on snapshots.
	originals := []*vcell.Value{&d, &th, &fa, &s}
	for i, orig := range originals {
		want, err := Take(orig)
		if err != nil {
			t.Fatalf("take original %d: %v", i, err)
		}
		got, err := Take(values[i])
		if err != nil {
			t.Fatalf("take parsed %d: %v", i, err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("value %d mismatch (-want +got):\n%s", i, diff)
		}
	}
	if !d.Equal(values[0]) || !th.Equal(values[1]) || fa.Equal(values[2]) {
		t.Fatal("equality rules do not hold across the round trip")
	}
}

func TestParseJSONErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"not array", `{"type":"double"}`},
		{"unknown type", `[{"type":"quaternion","value":1}]`},
		{"missing type", `[{"value":1}]`},
		{"signed overflow", `[{"type":"signed","value":4294967296}]`},
		{"textrange overflow", `[{"type":"textrange","value":[0,2147483648]}]`},
		{"textrange underflow", `[{"type":"textrange","value":[-2147483649,1]}]`},
		{"array element", `[{"type":"signedarray","value":[1,"two",3]}]`},
		{"fractional int", `[{"type":"int64","value":1.5}]`},
		{"short point", `[{"type":"point","value":[1]}]`},
		{"bad color", `[{"type":"color","value":"#GG000000"}]`},
		{"enum8 overflow", `[{"type":"enum8","value":256}]`},
		{"object tag", `[{"type":"inspectable","value":null}]`},
		{"bad custom", `[{"type":"bool","value":true,"custom":9}]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			values, err := ParseJSON([]byte(tc.src))
			if err == nil {
				Release(values)
				t.Fatalf("expected error for %s", tc.src)
			}
		})
	}
}

func TestParseJSONErrorIsLiteral(t *testing.T) {
	_, err := ParseJSON([]byte(`[{"type":"bool","value":1}]`))
	if !errors.Is(err, ErrLiteral) {
		t.Fatalf("error = %v, want ErrLiteral", err)
	}
}

func TestParseJSONEmpty(t *testing.T) {
	if _, err := ParseJSON([]byte("  ")); err == nil {
		t.Fatal("expected error for empty input")
	}
	values, err := ParseJSON([]byte(`[]`))
	if err != nil || len(values) != 0 {
		t.Fatalf("empty array = %v, %v", values, err)
	}
}

func TestSetLiteralLeavesCellUnsetOnError(t *testing.T) {
	cases := []struct {
		name string
		item map[string]any
	}{
		{"bad custom on array", map[string]any{"type": "doublearray", "value": []any{1.0, 2.0}, "custom": int64(9)}},
		{"bad custom on string", map[string]any{"type": "string", "value": "x", "custom": int64(8)}},
		{"bad array element", map[string]any{"type": "floatarray", "value": []any{1.0, "x"}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var v vcell.Value
			defer v.ReleaseAndReset()
			if err := setLiteral(&v, tc.item); !errors.Is(err, ErrLiteral) {
				t.Fatalf("error = %v, want ErrLiteral", err)
			}
			if !v.IsUnset() {
				t.Fatalf("cell after failed literal = %s, want unset", &v)
			}
		})
	}
}
