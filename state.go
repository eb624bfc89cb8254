package vcell

// stateWord packs the tag, the owns bit and the property store's custom
// data into one uint32. The two views use disjoint bits: the cell owns
// bits 0-6, the property store owns bits 7-9.
type stateWord uint32

const (
	typeMask    stateWord = 1<<typeBits - 1
	ownsBit     stateWord = 1 << typeBits
	customShift           = typeBits + 1
	customMask  stateWord = stateWord(customAll) << customShift
)

func makeState(t Type, owns bool) stateWord {
	w := stateWord(t) & typeMask
	if owns {
		w |= ownsBit
	}
	return w
}

func (w stateWord) typ() Type {
	return Type(w & typeMask)
}

func (w stateWord) owns() bool {
	return w&ownsBit != 0
}

func (w stateWord) custom() CustomData {
	return CustomData((w & customMask) >> customShift)
}

func (w stateWord) withCustom(c CustomData) stateWord {
	return w&^customMask | stateWord(c&customAll)<<customShift
}

// CustomData holds the three auxiliary flags the property store keeps
// beside a stored value.
type CustomData uint8

const (
	CustomIndependent CustomData = 1 << iota
	CustomSetLocally
	CustomSetByStyle

	customAll = CustomIndependent | CustomSetLocally | CustomSetByStyle
)

// IsIndependent reports whether the value is independently animated.
func (c CustomData) IsIndependent() bool { return c&CustomIndependent != 0 }

// IsSetLocally reports whether the value was assigned on the instance.
func (c CustomData) IsSetLocally() bool { return c&CustomSetLocally != 0 }

// IsSetByStyle reports whether the value came from a style setter.
func (c CustomData) IsSetByStyle() bool { return c&CustomSetByStyle != 0 }

func (c *CustomData) SetIsIndependent(on bool) { c.set(CustomIndependent, on) }
func (c *CustomData) SetIsSetLocally(on bool)  { c.set(CustomSetLocally, on) }
func (c *CustomData) SetIsSetByStyle(on bool)  { c.set(CustomSetByStyle, on) }

func (c *CustomData) set(bit CustomData, on bool) {
	if on {
		*c |= bit
	} else {
		*c &^= bit
	}
}
