package box

import "sync/atomic"

// Ref is an embeddable atomic reference count. The creator holds the first
// reference; free runs when the last one is released.
type Ref struct {
	count atomic.Int32
	free  func()
}

// Init sets the count to one and installs the free hook.
func (r *Ref) Init(free func()) {
	r.count.Store(1)
	r.free = free
}

func (r *Ref) AddRef() uint32 {
	return uint32(r.count.Add(1))
}

func (r *Ref) Release() uint32 {
	n := r.count.Add(-1)
	switch {
	case n < 0:
		panic("box: release of a freed object")
	case n == 0 && r.free != nil:
		r.free()
	}
	return uint32(n)
}

// Count returns the current reference count.
func (r *Ref) Count() uint32 {
	return uint32(r.count.Load())
}
