package vcell

// Value is a dynamically typed property value cell. The zero Value is
// unset (TypeAny), which is distinct from an explicit null.
//
// A Value may own the resource it refers to or borrow it. Owning cells
// release their resource exactly once in ReleaseAndReset; borrowing cells
// never do. Values must not be copied by assignment: use CopyFrom,
// CopyValue, WrapValue or MoveFrom.
type Value struct {
	_ noCopy
	p payload
	f flags
}

type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// kindOps is the per-tag behaviour registered by the descriptors.
type kindOps struct {
	// retain makes v hold an independent reference to its payload.
	retain  func(v *Value)
	release func(v *Value)
	equal   func(a, b *Value) bool
	format  func(v *Value) string
}

var kinds [typeSentinel]kindOps

func register(t Type, ops kindOps) {
	if kinds[t].equal != nil {
		panic("vcell: duplicate registration for " + t.String())
	}
	kinds[t] = ops
}

// Type returns the current tag.
func (v *Value) Type() Type {
	return v.f.state().typ()
}

// OwnsValue reports whether the cell releases its payload on reset.
func (v *Value) OwnsValue() bool {
	return v.f.state().owns()
}

// IsUnset reports whether no value has been assigned.
func (v *Value) IsUnset() bool {
	return v.Type() == TypeAny
}

// IsNull reports whether the cell holds an explicit null: the null tag, a
// nil pointer-backed payload, an unknown type handle, or the null string.
func (v *Value) IsNull() bool {
	t := v.Type()
	switch {
	case t == TypeNull:
		return true
	case t == TypeString:
		return v.p.num&stringPresent == 0
	case t == TypeTypeHandle:
		return KnownTypeIndex(v.p.num) == UnknownType
	case typeInfos[t].ptrBacked:
		return v.p.ptr == nil
	}
	return false
}

func (v *Value) IsNullOrUnset() bool {
	return v.IsUnset() || v.IsNull()
}

// IsFloatingPoint reports whether the cell holds a float or double scalar.
// Float and double arrays are not floating point values.
func (v *Value) IsFloatingPoint() bool {
	t := v.Type()
	return t == TypeFloat || t == TypeDouble
}

func (v *Value) IsArray() bool {
	return v.Type().IsArray()
}

func (v *Value) IsEnum() bool {
	t := v.Type()
	return t == TypeEnum || t == TypeEnum8
}

// ArrayElementCount returns the element count of an array payload, or 0.
func (v *Value) ArrayElementCount() int {
	if !v.IsArray() {
		return 0
	}
	return int(v.f.arrayCount(&v.p))
}

// SetNull releases the current payload and stores an explicit null.
func (v *Value) SetNull() {
	v.ReleaseAndReset()
	v.f.setState(makeState(TypeNull, false))
}

// Unset releases the current payload and returns the cell to TypeAny.
func (v *Value) Unset() {
	v.ReleaseAndReset()
}

// ReleaseAndReset releases an owned payload and returns the cell to the
// zero state, custom data included.
func (v *Value) ReleaseAndReset() {
	if v.OwnsValue() {
		if release := kinds[v.Type()].release; release != nil {
			release(v)
		}
	}
	v.clear()
}

func (v *Value) clear() {
	v.p = payload{}
	v.f = flags{}
}

func (v *Value) setState(t Type, owns bool) {
	v.f.setState(makeState(t, owns))
}

// GetCustomData returns the property store's flags.
func (v *Value) GetCustomData() CustomData {
	return v.f.state().custom()
}

// SetCustomData replaces the property store's flags without touching the
// tag or ownership.
func (v *Value) SetCustomData(c CustomData) {
	v.f.setState(v.f.state().withCustom(c))
}

// CopyFrom makes v a copy of src. An owning source yields an owning copy
// that holds its own reference; a borrowing source yields a borrowing copy.
func (v *Value) CopyFrom(src *Value) {
	v.copyFrom(src, src.OwnsValue())
}

// CopyValue makes v an owning copy of src regardless of src's ownership.
func (v *Value) CopyValue(src *Value) {
	v.copyFrom(src, true)
}

// WrapValue makes v a borrowing view of src's payload.
func (v *Value) WrapValue(src *Value) {
	v.copyFrom(src, false)
}

func (v *Value) copyFrom(src *Value, owns bool) {
	if v == src {
		return
	}
	v.ReleaseAndReset()
	v.p = src.p
	v.f = src.f
	t := v.Type()
	if typeInfos[t].family == familyEmpty {
		owns = false
	}
	st := v.f.state()
	if owns {
		st |= ownsBit
	} else {
		st &^= ownsBit
	}
	v.f.setState(st)
	if owns && !v.IsNull() {
		if retain := kinds[t].retain; retain != nil {
			retain(v)
		}
	}
}

// MoveFrom transfers src's payload, ownership and custom data to v and
// leaves src unset.
func (v *Value) MoveFrom(src *Value) {
	if v == src {
		return
	}
	v.ReleaseAndReset()
	v.p = src.p
	v.f = src.f
	src.clear()
}

// Swap exchanges the contents of v and other.
func (v *Value) Swap(other *Value) {
	v.p, other.p = other.p, v.p
	v.f, other.f = other.f, v.f
}

// DetachObject hands the held object to the caller and resets the cell.
// An owning cell transfers its reference without touching the count; a
// borrowing cell adds a reference for the caller. Other tags return nil
// and leave the cell unchanged.
func (v *Value) DetachObject() Object {
	if v.Type() != TypeObject {
		return nil
	}
	obj := ObjectKind.As(v)
	if obj != nil && !v.OwnsValue() {
		obj.AddRef()
	}
	v.clear()
	return obj
}

// Empty returns a fresh unset cell.
func Empty() *Value {
	return &Value{}
}
