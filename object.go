package vcell

// RefCounted is implemented by every object a Value can hold by reference.
// AddRef and Release return the new count.
type RefCounted interface {
	AddRef() uint32
	Release() uint32
}

// KnownTypeIndex identifies a framework type. UnknownType is the null
// type handle.
type KnownTypeIndex uint16

const UnknownType KnownTypeIndex = 0

// Object is a framework object handle.
type Object interface {
	RefCounted
	TypeIndex() KnownTypeIndex
}

// Inspectable is an object exposed through the platform object model.
type Inspectable interface {
	RefCounted
	RuntimeClassName() string
}

// PropertyValue is an Inspectable boxing a primitive value. Unbox writes
// the boxed value into dst and reports whether it could.
type PropertyValue interface {
	Inspectable
	Unbox(dst *Value) bool
}

// ThemeResource is a value resolved from the active theme dictionary.
type ThemeResource interface {
	RefCounted
	ResourceKey() string
}

// ValueObject is an immutable shared aggregate value.
type ValueObject interface {
	RefCounted
	Hash() uint64
}

// InternalHandler is a framework-internal event callback.
type InternalHandler func(sender Object, args *Value) error
