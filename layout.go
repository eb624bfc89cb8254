package vcell

import "unsafe"

// payload is the storage shared by every tag. The collector must see
// every pointer, so there is exactly one pointer word: scalars live in
// num, pointer-shaped payloads in ptr, strings and interfaces use both.
type payload struct {
	ptr unsafe.Pointer
	num uint64
}

// wideFlags reserves a dedicated word for array element counts.
type wideFlags struct {
	word  stateWord
	count uint32
}

func (f *wideFlags) state() stateWord     { return f.word }
func (f *wideFlags) setState(w stateWord) { f.word = w }

func (f *wideFlags) arrayCount(*payload) uint32 { return f.count }

func (f *wideFlags) setArrayCount(_ *payload, n uint32) { f.count = n }

// narrowFlags has no room for a count; arrays keep it in the low half of
// payload.num beside the data pointer.
type narrowFlags struct {
	word stateWord
}

func (f *narrowFlags) state() stateWord     { return f.word }
func (f *narrowFlags) setState(w stateWord) { f.word = w }

func (f *narrowFlags) arrayCount(p *payload) uint32 { return uint32(p.num) }

func (f *narrowFlags) setArrayCount(p *payload, n uint32) {
	p.num = p.num&^0xffffffff | uint64(n)
}

const (
	wideValueSize   = 24
	narrowValueSize = 16
)

// The build breaks if Value outgrows the budget of the selected layout
// or needs stricter alignment than a pointer.
const (
	_ = uintptr(maxValueSize - unsafe.Sizeof(Value{}))
	_ = uintptr(unsafe.Sizeof(uintptr(0)) - unsafe.Alignof(Value{}))
)

// LayoutInfo describes the cell layout selected for the target.
type LayoutInfo struct {
	Wide   bool
	Size   uintptr
	Align  uintptr
	Budget uintptr
}

func Layout() LayoutInfo {
	return LayoutInfo{
		Wide:   wideLayout,
		Size:   unsafe.Sizeof(Value{}),
		Align:  unsafe.Alignof(Value{}),
		Budget: maxValueSize,
	}
}
