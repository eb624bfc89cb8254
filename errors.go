package vcell

import "errors"

var (
	// ErrInvalidType is reported by strict accessors when the stored tag
	// neither matches nor converts to the requested one.
	ErrInvalidType = errors.New("vcell: invalid type")
	// ErrStringConversion is reported when a platform string handle cannot
	// be decoded.
	ErrStringConversion = errors.New("vcell: string conversion failed")
)
