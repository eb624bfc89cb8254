package box

import (
	"errors"
	"fmt"

	vcell "github.com/starfederation/vcell-go"
)

// RuntimeClassName is reported by every boxed value.
const RuntimeClassName = "vcell.PropertyValue"

var (
	ErrNotBoxable = errors.New("box: value cannot be boxed")
	ErrUnbox      = errors.New("box: boxed value cannot be unboxed")
)

// PropertyValue is a reference-counted object holding an owned copy of a
// primitive cell value.
type PropertyValue struct {
	Ref
	cell vcell.Value
}

var _ vcell.PropertyValue = (*PropertyValue)(nil)

func newPropertyValue(src *vcell.Value) *PropertyValue {
	pv := &PropertyValue{}
	pv.cell.CopyValue(src)
	pv.Init(pv.cell.ReleaseAndReset)
	return pv
}

func (pv *PropertyValue) RuntimeClassName() string { return RuntimeClassName }

// Type returns the tag of the boxed value.
func (pv *PropertyValue) Type() vcell.Type { return pv.cell.Type() }

// Unbox stores an owning copy of the boxed value in dst.
func (pv *PropertyValue) Unbox(dst *vcell.Value) bool {
	dst.CopyValue(&pv.cell)
	return true
}

func (pv *PropertyValue) String() string {
	return "box:" + pv.cell.String()
}

// Box wraps src in a new PropertyValue holding one reference. Inspectable
// cells are returned with an added reference; unset and null cells box to
// nil.
func Box(src *vcell.Value) (vcell.Inspectable, error) {
	t := src.Type()
	switch {
	case src.IsNullOrUnset():
		return nil, nil
	case t == vcell.TypeInspectable:
		obj := vcell.InspectableKind.As(src)
		obj.AddRef()
		return obj, nil
	case t.IsRefCounted(), t == vcell.TypePointer, t == vcell.TypeInternalHandler:
		return nil, fmt.Errorf("%w: %s", ErrNotBoxable, t)
	}
	return newPropertyValue(src), nil
}

// Unbox stores the value boxed by obj in dst. Objects that are not
// property values are stored as owned inspectables; nil stores null.
func Unbox(obj vcell.Inspectable, dst *vcell.Value) {
	if obj == nil {
		dst.SetNull()
		return
	}
	if pv, ok := obj.(vcell.PropertyValue); ok && pv.Unbox(dst) {
		return
	}
	vcell.InspectableKind.SetAddRef(dst, obj)
}

// CopyConverted makes dst an owning copy of src, unboxing a boxed primitive
// on the way so dst receives the primitive rather than the box. On error
// dst is left unchanged.
func CopyConverted(dst, src *vcell.Value) error {
	if src.Type() == vcell.TypeInspectable {
		if pv, ok := vcell.InspectableKind.As(src).(vcell.PropertyValue); ok {
			var tmp vcell.Value
			if !pv.Unbox(&tmp) {
				tmp.ReleaseAndReset()
				return fmt.Errorf("%w: %s", ErrUnbox, pv.RuntimeClassName())
			}
			dst.MoveFrom(&tmp)
			return nil
		}
	}
	dst.CopyValue(src)
	return nil
}
