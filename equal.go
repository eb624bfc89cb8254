package vcell

// Equal reports whether v and other hold equal values.
//
// With the same tag: unset and null cells are equal; scalars, enums, ref
// structs and strings compare by value; arrays compare by data pointer
// and count; objects compare by identity, except inspectables that both
// box a PropertyValue, which compare by their unboxed values. Across
// tags only float and double compare, numerically.
func (v *Value) Equal(other *Value) bool {
	t, ot := v.Type(), other.Type()
	if t != ot {
		if v.IsFloatingPoint() && other.IsFloatingPoint() {
			return DoubleKind.As(v) == DoubleKind.As(other)
		}
		return false
	}
	if typeInfos[t].family == familyEmpty {
		return true
	}
	return kinds[t].equal(v, other)
}

// EqualWithoutUnboxing is Equal except that inspectables compare by
// identity only, even when both box a PropertyValue.
func (v *Value) EqualWithoutUnboxing(other *Value) bool {
	if v.Type() == TypeInspectable && other.Type() == TypeInspectable {
		return v.p == other.p
	}
	return v.Equal(other)
}

func equalInspectable(a, b *Value) bool {
	if a.p == b.p {
		return true
	}
	pa, ok := InspectableKind.As(a).(PropertyValue)
	if !ok {
		return false
	}
	pb, ok := InspectableKind.As(b).(PropertyValue)
	if !ok {
		return false
	}
	var ua, ub Value
	defer ua.ReleaseAndReset()
	defer ub.ReleaseAndReset()
	if !pa.Unbox(&ua) || !pb.Unbox(&ub) {
		return false
	}
	return ua.Equal(&ub)
}

func init() {
	kinds[TypeInspectable].equal = equalInspectable
}
