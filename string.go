package vcell

import (
	"fmt"
	"unicode/utf8"
	"unsafe"

	"golang.org/x/text/encoding/unicode"
)

// stringPresent marks a non-null string in payload.num; the low bits hold
// the byte length.
const stringPresent = 1 << 63

// EncodedString is a string in the form a Value stores it. Unlike a Go
// string it distinguishes the null string from the empty string.
type EncodedString struct {
	data *byte
	word uint64
}

// NullString returns the null string.
func NullString() EncodedString {
	return EncodedString{}
}

// EncodeString returns the non-null stored form of s.
func EncodeString(s string) EncodedString {
	return EncodedString{data: unsafe.StringData(s), word: uint64(len(s)) | stringPresent}
}

func (e EncodedString) IsNull() bool {
	return e.word&stringPresent == 0
}

func (e EncodedString) Len() int {
	return int(e.word &^ stringPresent)
}

// String decodes e. The null string decodes to "".
func (e EncodedString) String() string {
	if e.Len() == 0 {
		return ""
	}
	return unsafe.String(e.data, e.Len())
}

// StringHandle is a platform string handle: UTF-16 code units in little
// endian byte order.
type StringHandle []byte

func (v *Value) loadEncoded() EncodedString {
	return EncodedString{data: (*byte)(v.p.ptr), word: v.p.num}
}

// AsString returns the stored string, or "" for any other tag.
func (v *Value) AsString() string {
	return v.AsEncodedString().String()
}

// AsEncodedString returns the stored string without decoding it, or the
// null string for any other tag.
func (v *Value) AsEncodedString() EncodedString {
	if v.Type() != TypeString {
		return NullString()
	}
	return v.loadEncoded()
}

// GetString returns the stored string or ErrInvalidType. No other tag
// converts to a string.
func (v *Value) GetString() (string, error) {
	if v.Type() != TypeString {
		return "", ErrInvalidType
	}
	return v.loadEncoded().String(), nil
}

// SetString releases the previous payload and stores s.
func (v *Value) SetString(s string) {
	v.SetEncodedString(EncodeString(s))
}

// SetEncodedString stores e, preserving null.
func (v *Value) SetEncodedString(e EncodedString) {
	v.ReleaseAndReset()
	v.p.ptr = unsafe.Pointer(e.data)
	v.p.num = e.word
	v.setState(TypeString, true)
}

// Handles are always little-endian; a leading U+FEFF or U+FFFE is content,
// not a byte-order mark.
var utf16Decoder = unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

// SetStringHandle decodes h and stores the result. A nil handle stores the
// null string. On failure the cell is left unchanged and the error wraps
// ErrStringConversion.
func (v *Value) SetStringHandle(h StringHandle) error {
	if h == nil {
		v.SetEncodedString(NullString())
		return nil
	}
	if len(h)%2 != 0 {
		return fmt.Errorf("%w: odd handle length %d", ErrStringConversion, len(h))
	}
	if err := checkSurrogates(h); err != nil {
		return err
	}
	decoded, err := utf16Decoder.NewDecoder().Bytes(h)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStringConversion, err)
	}
	if !utf8.Valid(decoded) {
		return fmt.Errorf("%w: invalid utf-8 after decoding", ErrStringConversion)
	}
	v.SetString(string(decoded))
	return nil
}

// checkSurrogates rejects unpaired UTF-16 surrogates, which the decoder
// would otherwise replace silently.
func checkSurrogates(h []byte) error {
	for i := 0; i+1 < len(h); i += 2 {
		u := uint16(h[i]) | uint16(h[i+1])<<8
		switch {
		case u >= 0xd800 && u < 0xdc00:
			if i+3 >= len(h) {
				return fmt.Errorf("%w: unpaired high surrogate at %d", ErrStringConversion, i/2)
			}
			next := uint16(h[i+2]) | uint16(h[i+3])<<8
			if next < 0xdc00 || next >= 0xe000 {
				return fmt.Errorf("%w: unpaired high surrogate at %d", ErrStringConversion, i/2)
			}
			i += 2
		case u >= 0xdc00 && u < 0xe000:
			return fmt.Errorf("%w: unpaired low surrogate at %d", ErrStringConversion, i/2)
		}
	}
	return nil
}

func init() {
	register(TypeString, kindOps{
		equal: func(a, b *Value) bool {
			return a.loadEncoded().String() == b.loadEncoded().String()
		},
		format: func(v *Value) string {
			e := v.loadEncoded()
			if e.IsNull() {
				return "nil"
			}
			return fmt.Sprintf("%q", e.String())
		},
	})
}
