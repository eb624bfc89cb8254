// Package property keeps sparse per-object dependency property values and
// records where each value came from in the cells' custom data.
package property

import (
	"slices"

	vcell "github.com/starfederation/vcell-go"
)

// Index identifies a dependency property.
type Index uint16

// BaseValueSource says which layer supplied a stored value.
type BaseValueSource uint8

const (
	SourceDefault BaseValueSource = iota
	SourceStyle
	SourceLocal
)

func (s BaseValueSource) String() string {
	switch s {
	case SourceDefault:
		return "default"
	case SourceStyle:
		return "style"
	case SourceLocal:
		return "local"
	default:
		return "unknown"
	}
}

// Store holds the values set on one object. The zero Store is empty and
// ready to use. A Store is not safe for concurrent use.
type Store struct {
	slots map[Index]*vcell.Value
}

func (s *Store) slot(idx Index) *vcell.Value {
	if s.slots == nil {
		s.slots = make(map[Index]*vcell.Value)
	}
	v, ok := s.slots[idx]
	if !ok {
		v = &vcell.Value{}
		s.slots[idx] = v
	}
	return v
}

// SetValue moves src into the slot for idx, leaving src unset, and records
// source. The independent flag survives the assignment.
func (s *Store) SetValue(idx Index, src *vcell.Value, source BaseValueSource) {
	v := s.slot(idx)
	independent := v.GetCustomData().IsIndependent()
	v.MoveFrom(src)
	c := v.GetCustomData()
	c.SetIsIndependent(independent)
	applySource(&c, source)
	v.SetCustomData(c)
}

func applySource(c *vcell.CustomData, source BaseValueSource) {
	switch source {
	case SourceStyle:
		c.SetIsSetLocally(true)
		c.SetIsSetByStyle(true)
	case SourceLocal:
		c.SetIsSetLocally(true)
		c.SetIsSetByStyle(false)
	default:
		c.SetIsSetLocally(false)
		c.SetIsSetByStyle(false)
	}
}

// GetValue stores an owning copy of the value for idx in dst, or leaves
// dst unset when nothing was set. It reports whether a slot exists.
func (s *Store) GetValue(idx Index, dst *vcell.Value) bool {
	v, ok := s.slots[idx]
	if !ok {
		dst.ReleaseAndReset()
		return false
	}
	dst.CopyValue(v)
	return true
}

// Lookup returns the stored cell for idx. The cell stays owned by the
// store and is invalidated by SetValue, ClearValue and Release.
func (s *Store) Lookup(idx Index) (*vcell.Value, bool) {
	v, ok := s.slots[idx]
	return v, ok
}

// BaseValueSource reports which layer set idx.
func (s *Store) BaseValueSource(idx Index) BaseValueSource {
	v, ok := s.slots[idx]
	if !ok {
		return SourceDefault
	}
	c := v.GetCustomData()
	switch {
	case c.IsSetByStyle():
		return SourceStyle
	case !c.IsSetLocally():
		return SourceDefault
	default:
		return SourceLocal
	}
}

// IsPropertyDefault reports whether idx still has its default value.
func (s *Store) IsPropertyDefault(idx Index) bool {
	return s.BaseValueSource(idx) == SourceDefault
}

// SetIsIndependent marks the value for idx as independently animated.
func (s *Store) SetIsIndependent(idx Index, on bool) {
	v := s.slot(idx)
	c := v.GetCustomData()
	c.SetIsIndependent(on)
	v.SetCustomData(c)
}

func (s *Store) IsIndependent(idx Index) bool {
	v, ok := s.slots[idx]
	return ok && v.GetCustomData().IsIndependent()
}

// ClearValue releases the value for idx and forgets the slot.
func (s *Store) ClearValue(idx Index) {
	if v, ok := s.slots[idx]; ok {
		v.ReleaseAndReset()
		delete(s.slots, idx)
	}
}

func (s *Store) Len() int {
	return len(s.slots)
}

// Range calls fn for each slot in index order until fn returns false.
func (s *Store) Range(fn func(idx Index, v *vcell.Value) bool) {
	keys := make([]Index, 0, len(s.slots))
	for idx := range s.slots {
		keys = append(keys, idx)
	}
	slices.Sort(keys)
	for _, idx := range keys {
		if !fn(idx, s.slots[idx]) {
			return
		}
	}
}

// Release releases every stored value and empties the store.
func (s *Store) Release() {
	for _, v := range s.slots {
		v.ReleaseAndReset()
	}
	clear(s.slots)
}
