package vcell

// Type identifies the payload representation a Value currently holds.
type Type uint8

const (
	TypeAny Type = iota // unset
	TypeNull
	TypeBool
	TypeEnum
	TypeEnum8
	TypeSigned
	TypeUnsigned
	TypeInt64
	TypeUInt64
	TypeFloat
	TypeDouble
	TypeColor
	TypeDateTime
	TypeTimeSpan
	TypeTextRange
	TypePoint
	TypeSize
	TypeRect
	TypeThickness
	TypeGridLength
	TypeCornerRadius
	TypeSignedArray
	TypeFloatArray
	TypeDoubleArray
	TypePointArray
	TypeString
	TypeObject
	TypeRefCounted
	TypeInspectable
	TypeThemeResource
	TypeVO
	TypeTypeHandle
	TypeInternalHandler
	TypePointer
	typeSentinel
)

// typeBits is the width of the tag field in the state word.
const typeBits = 6

// Fails to compile once the tag set no longer fits in typeBits.
const _ Type = 1<<typeBits - 1 - typeSentinel

type family uint8

const (
	familyEmpty family = iota
	familyScalar
	familyRef
	familyArray
	familyCounted
	familyString
)

type typeInfo struct {
	name   string
	family family
	// ptrBacked tags are null when the payload pointer is nil.
	ptrBacked bool
}

var typeInfos = [typeSentinel]typeInfo{
	TypeAny:             {name: "any", family: familyEmpty},
	TypeNull:            {name: "null", family: familyEmpty},
	TypeBool:            {name: "bool", family: familyScalar},
	TypeEnum:            {name: "enum", family: familyScalar},
	TypeEnum8:           {name: "enum8", family: familyScalar},
	TypeSigned:          {name: "signed", family: familyScalar},
	TypeUnsigned:        {name: "unsigned", family: familyScalar},
	TypeInt64:           {name: "int64", family: familyScalar},
	TypeUInt64:          {name: "uint64", family: familyScalar},
	TypeFloat:           {name: "float", family: familyScalar},
	TypeDouble:          {name: "double", family: familyScalar},
	TypeColor:           {name: "color", family: familyScalar},
	TypeDateTime:        {name: "datetime", family: familyScalar},
	TypeTimeSpan:        {name: "timespan", family: familyScalar},
	TypeTextRange:       {name: "textrange", family: familyScalar},
	TypePoint:           {name: "point", family: familyRef, ptrBacked: true},
	TypeSize:            {name: "size", family: familyRef, ptrBacked: true},
	TypeRect:            {name: "rect", family: familyRef, ptrBacked: true},
	TypeThickness:       {name: "thickness", family: familyRef, ptrBacked: true},
	TypeGridLength:      {name: "gridlength", family: familyRef, ptrBacked: true},
	TypeCornerRadius:    {name: "cornerradius", family: familyRef, ptrBacked: true},
	TypeSignedArray:     {name: "signedarray", family: familyArray, ptrBacked: true},
	TypeFloatArray:      {name: "floatarray", family: familyArray, ptrBacked: true},
	TypeDoubleArray:     {name: "doublearray", family: familyArray, ptrBacked: true},
	TypePointArray:      {name: "pointarray", family: familyArray, ptrBacked: true},
	TypeString:          {name: "string", family: familyString},
	TypeObject:          {name: "object", family: familyCounted, ptrBacked: true},
	TypeRefCounted:      {name: "refcounted", family: familyCounted, ptrBacked: true},
	TypeInspectable:     {name: "inspectable", family: familyCounted, ptrBacked: true},
	TypeThemeResource:   {name: "themeresource", family: familyCounted, ptrBacked: true},
	TypeVO:              {name: "vo", family: familyCounted, ptrBacked: true},
	TypeTypeHandle:      {name: "typehandle", family: familyScalar},
	TypeInternalHandler: {name: "internalhandler", family: familyScalar, ptrBacked: true},
	TypePointer:         {name: "pointer", family: familyScalar, ptrBacked: true},
}

// String returns the lowercase tag name.
func (t Type) String() string {
	if t >= typeSentinel {
		return "invalid"
	}
	return typeInfos[t].name
}

// Valid reports whether t is a member of the tag set.
func (t Type) Valid() bool {
	return t < typeSentinel
}

// IsArray reports whether t stores a pointer and element count.
func (t Type) IsArray() bool {
	return t.Valid() && typeInfos[t].family == familyArray
}

// IsRefCounted reports whether t holds a reference-counted object.
func (t Type) IsRefCounted() bool {
	return t.Valid() && typeInfos[t].family == familyCounted
}

// IsWrappable reports whether t may be borrowed without a copy.
func (t Type) IsWrappable() bool {
	if !t.Valid() {
		return false
	}
	switch typeInfos[t].family {
	case familyRef, familyArray, familyCounted:
		return true
	default:
		return false
	}
}

// ParseType returns the tag with the given lowercase name.
func ParseType(name string) (Type, bool) {
	for t := Type(0); t < typeSentinel; t++ {
		if typeInfos[t].name == name {
			return t, true
		}
	}
	return TypeAny, false
}
