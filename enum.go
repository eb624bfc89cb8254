package vcell

import "fmt"

// Enumerations keep the value in the low 32 bits of payload.num and the
// declaring type index in the 16 bits above it.

func (v *Value) loadEnum() (uint32, KnownTypeIndex) {
	return uint32(v.p.num), KnownTypeIndex(v.p.num >> 32)
}

func (v *Value) setEnum(t Type, value uint32, typeIndex KnownTypeIndex) {
	v.ReleaseAndReset()
	v.p.num = uint64(value) | uint64(typeIndex)<<32
	v.setState(t, true)
}

// AsEnum returns the value of an enum or enum8 cell, or 0.
func (v *Value) AsEnum() uint32 {
	value, _, _ := v.GetEnumWithType()
	return value
}

// AsEnum8 returns the value of an enum or enum8 cell truncated to 8 bits,
// or 0.
func (v *Value) AsEnum8() uint8 {
	return uint8(v.AsEnum())
}

// GetEnum returns the value of an enum or enum8 cell, or ErrInvalidType.
func (v *Value) GetEnum() (uint32, error) {
	value, _, err := v.GetEnumWithType()
	return value, err
}

// GetEnumWithType also returns the declaring type index, which is
// UnknownType when none was attached.
func (v *Value) GetEnumWithType() (uint32, KnownTypeIndex, error) {
	if !v.IsEnum() {
		return 0, UnknownType, ErrInvalidType
	}
	value, typeIndex := v.loadEnum()
	return value, typeIndex, nil
}

func (v *Value) SetEnum(value uint32) {
	v.setEnum(TypeEnum, value, UnknownType)
}

func (v *Value) SetEnumWithType(value uint32, typeIndex KnownTypeIndex) {
	v.setEnum(TypeEnum, value, typeIndex)
}

func (v *Value) SetEnum8(value uint8) {
	v.setEnum(TypeEnum8, uint32(value), UnknownType)
}

func (v *Value) SetEnum8WithType(value uint8, typeIndex KnownTypeIndex) {
	v.setEnum(TypeEnum8, uint32(value), typeIndex)
}

func init() {
	enumOps := kindOps{
		equal: func(a, b *Value) bool {
			return a.p.num == b.p.num
		},
		format: func(v *Value) string {
			value, typeIndex := v.loadEnum()
			if typeIndex == UnknownType {
				return fmt.Sprint(value)
			}
			return fmt.Sprintf("%d@%d", value, typeIndex)
		},
	}
	register(TypeEnum, enumOps)
	register(TypeEnum8, enumOps)
}
